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

var literalKinds = map[string]OperandKind{
	"int":    KindInt,
	"bool":   KindBool,
	"string": KindString,
	"nil":    KindNil,
}

// resolve classifies a raw operand token. The dispatch order is part of
// the language, not an optimization: a Label slot only ever tries the
// label grammar, and elsewhere a bare type keyword wins over everything
// even though it would also pass the label grammar. Reordering these
// checks changes which programs are accepted.
func resolve(token string, expected OperandCategory) (Operand, *Error) {
	if expected == CatLabel {
		if isLabel(token) {
			return Operand{Kind: KindLabel, Value: token}, nil
		}
		return Operand{}, errorf(ErrInvalidOperandSyntax, "invalid label %q", token)
	}
	switch {
	case isTypeKeyword(token):
		return Operand{Kind: KindType, Value: token}, nil
	case isVariable(token):
		return Operand{Kind: KindVar, Value: token}, nil
	case isLiteral(token):
		typ, value, _ := strings.Cut(token, "@")
		return Operand{Kind: literalKinds[typ], Value: value}, nil
	}
	return Operand{}, errorf(ErrInvalidOperandSyntax, "unrecognized operand %q", token)
}

// compatible reports whether a resolved kind satisfies the category the
// signature expects. Resolution succeeding is not enough: a type
// keyword in a symbol slot resolves fine and is still rejected here.
func compatible(expected OperandCategory, kind OperandKind) bool {
	switch expected {
	case CatVariable:
		return kind == KindVar
	case CatSymbol:
		switch kind {
		case KindVar, KindInt, KindBool, KindString, KindNil:
			return true
		}
		return false
	case CatLabel:
		return kind == KindLabel
	case CatType:
		return kind == KindType
	}
	return false
}
