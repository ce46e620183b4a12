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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader1(t *testing.T) {
	assert.True(t, isHeader(".IPPcode24"))
	assert.True(t, isHeader("  .ippCODE24\t"))
	assert.True(t, isHeader(".ippcode24"))
}

func TestHeader2(t *testing.T) {
	assert.False(t, isHeader(".IPPcode23"))
	assert.False(t, isHeader(".IPPcode24 extra"))
	assert.False(t, isHeader("IPPcode24"))
	assert.False(t, isHeader(""))
}

func TestVariable1(t *testing.T) {
	assert.True(t, isVariable("GF@x"))
	assert.True(t, isVariable("LF@loop_counter"))
	assert.True(t, isVariable("TF@_tmp"))
	assert.True(t, isVariable("GF@-$&%*!?"))
	assert.True(t, isVariable("GF@x2"))
}

func TestVariable2(t *testing.T) {
	assert.False(t, isVariable("gf@x"), "frame must be upper-case")
	assert.False(t, isVariable("XF@x"))
	assert.False(t, isVariable("GF@2x"), "name may not start with a digit")
	assert.False(t, isVariable("GF@"))
	assert.False(t, isVariable("GF@a@b"))
	assert.False(t, isVariable("x"))
	assert.False(t, isVariable("@x"))
}

func TestLabel(t *testing.T) {
	assert.True(t, isLabel("end"))
	assert.True(t, isLabel("_start"))
	assert.True(t, isLabel("-?!*"))
	assert.True(t, isLabel("while"))
	assert.True(t, isLabel("int"), "type keywords are valid label text")

	assert.False(t, isLabel("1st"))
	assert.False(t, isLabel("a b"))
	assert.False(t, isLabel("GF@x"))
	assert.False(t, isLabel(""))
}

func TestTypeKeyword(t *testing.T) {
	for _, k := range []string{"int", "bool", "string", "nil"} {
		assert.True(t, isTypeKeyword(k), k)
	}
	assert.False(t, isTypeKeyword("float"))
	assert.False(t, isTypeKeyword("INT"))
	assert.False(t, isTypeKeyword(""))
}

func TestIntLiteral(t *testing.T) {
	valid := []string{
		"int@42", "int@-42", "int@+42", "int@0",
		"int@0x2A", "int@0X2a", "int@-0x2A",
		"int@0o17", "int@0O17", "int@-0o17",
	}
	for _, tok := range valid {
		assert.True(t, isLiteral(tok), tok)
	}

	invalid := []string{
		"int@", "int@4.2", "int@abc", "int@0b101",
		"int@+0x2A", "int@+0o17", // a plus is decimal-only
		"int@0x", "int@0o8", "int@--1",
	}
	for _, tok := range invalid {
		assert.False(t, isLiteral(tok), tok)
	}
}

func TestBoolNilLiteral(t *testing.T) {
	assert.True(t, isLiteral("bool@true"))
	assert.True(t, isLiteral("bool@false"))
	assert.False(t, isLiteral("bool@TRUE"))
	assert.False(t, isLiteral("bool@1"))

	assert.True(t, isLiteral("nil@nil"))
	assert.False(t, isLiteral("nil@null"))
	assert.False(t, isLiteral("nil@"))
}

func TestStringLiteral(t *testing.T) {
	assert.True(t, isLiteral("string@"))
	assert.True(t, isLiteral("string@hello"))
	assert.True(t, isLiteral(`string@hello\032world`))
	assert.True(t, isLiteral(`string@\092`))
	assert.True(t, isLiteral("string@a@b"), "value may contain @")
	assert.True(t, isLiteral(`string@\1234`), `\123 escape followed by plain 4`)

	assert.False(t, isLiteral(`string@a b`))
	assert.False(t, isLiteral(`string@back\slash`))
	assert.False(t, isLiteral(`string@\12`))
	assert.False(t, isLiteral(`string@\`))
}

func TestLiteralUnknownType(t *testing.T) {
	assert.False(t, isLiteral("float@1.0"))
	assert.False(t, isLiteral("label@foo"))
	assert.False(t, isLiteral("noat"))
}
