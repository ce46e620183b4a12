/*
Copyright © 2024 The parse24 authors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package parser

import "strings"

// signatures is the complete IPPcode24 instruction set: lower-case
// opcode to the ordered operand categories it takes. Built once,
// never modified.
var signatures = map[string][]OperandCategory{
	// frames and variables
	"move":        {CatVariable, CatSymbol},
	"createframe": {},
	"pushframe":   {},
	"popframe":    {},
	"defvar":      {CatVariable},
	"call":        {CatLabel},
	"return":      {},

	// data stack
	"pushs": {CatSymbol},
	"pops":  {CatVariable},

	// arithmetic, relational, boolean, conversion
	"add":      {CatVariable, CatSymbol, CatSymbol},
	"sub":      {CatVariable, CatSymbol, CatSymbol},
	"mul":      {CatVariable, CatSymbol, CatSymbol},
	"idiv":     {CatVariable, CatSymbol, CatSymbol},
	"lt":       {CatVariable, CatSymbol, CatSymbol},
	"gt":       {CatVariable, CatSymbol, CatSymbol},
	"eq":       {CatVariable, CatSymbol, CatSymbol},
	"and":      {CatVariable, CatSymbol, CatSymbol},
	"or":       {CatVariable, CatSymbol, CatSymbol},
	"not":      {CatVariable, CatSymbol},
	"int2char": {CatVariable, CatSymbol},
	"stri2int": {CatVariable, CatSymbol, CatSymbol},

	// input/output
	"read":  {CatVariable, CatType},
	"write": {CatSymbol},

	// strings
	"concat":  {CatVariable, CatSymbol, CatSymbol},
	"strlen":  {CatVariable, CatSymbol},
	"getchar": {CatVariable, CatSymbol, CatSymbol},
	"setchar": {CatVariable, CatSymbol, CatSymbol},

	// dynamic types
	"type": {CatVariable, CatSymbol},

	// control flow
	"label":     {CatLabel},
	"jump":      {CatLabel},
	"jumpifeq":  {CatLabel, CatSymbol, CatSymbol},
	"jumpifneq": {CatLabel, CatSymbol, CatSymbol},
	"exit":      {CatSymbol},

	// debugging
	"dprint": {CatSymbol},
	"break":  {},
}

// signatureFor looks up the signature for a mnemonic, case-insensitively.
func signatureFor(mnemonic string) ([]OperandCategory, bool) {
	sig, ok := signatures[strings.ToLower(mnemonic)]
	return sig, ok
}
