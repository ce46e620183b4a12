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

// Package parser implements the IPPcode24 front end: lexical
// classification of operand tokens, grammar validation of instructions
// against a static signature table, and assembly of a whole source unit
// into an ordered instruction sequence. It performs no semantic
// analysis; jump targets are not checked and nothing is executed.
package parser

// OperandCategory is the abstract operand expectation an instruction
// signature declares for one position. Categories appear only in the
// signature table; a resolved operand carries an OperandKind instead.
type OperandCategory int

const (
	CatVariable OperandCategory = iota
	CatSymbol
	CatLabel
	CatType
)

var categoryToString = []string{
	"variable",
	"symbol",
	"label",
	"type",
}

func (c OperandCategory) String() string {
	return categoryToString[c]
}

// OperandKind is the concrete classification of a resolved operand
// token. Exactly one kind applies to any operand that survives
// resolution.
type OperandKind int

const (
	KindVar OperandKind = iota
	KindInt
	KindBool
	KindString
	KindNil
	KindLabel
	KindType
)

var kindToString = []string{
	"var",
	"int",
	"bool",
	"string",
	"nil",
	"label",
	"type",
}

// String returns the lower-case kind name, which is also the value of
// the type attribute in the XML rendering.
func (k OperandKind) String() string {
	return kindToString[k]
}

// Operand is one resolved operand. Value holds the full frame@name text
// for variables, the post-@ payload for literals, and the bare token
// for labels and type keywords.
type Operand struct {
	Kind  OperandKind
	Value string
}

// Instruction is one validated source instruction. Order is 1-based and
// strictly increasing across a program; Opcode is always upper-case.
type Instruction struct {
	Order    int
	Opcode   string
	Operands []Operand
}

// Program is the result of assembling one source unit. CommentLines
// counts source lines that carried a # comment; it feeds the optional
// statistics output and has no effect on parsing.
type Program struct {
	Instructions []Instruction
	CommentLines int
}
