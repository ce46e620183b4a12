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

package xmlgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parse24/pkg/parser"
)

func render(t *testing.T, data string) string {
	prog, err := parser.Assemble(t.Name(), strings.NewReader(data))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, prog))
	return buf.String()
}

func TestWrite1(t *testing.T) {
	got := render(t, ".IPPcode24\nMOVE GF@x int@42\nBREAK\n")
	want := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode24">
  <instruction order="1" opcode="MOVE">
    <arg1 type="var">GF@x</arg1>
    <arg2 type="int">42</arg2>
  </instruction>
  <instruction order="2" opcode="BREAK"></instruction>
</program>
`
	assert.Equal(t, want, got)
}

func TestWriteEmptyProgram(t *testing.T) {
	got := render(t, ".IPPcode24\n")
	want := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode24"></program>
`
	assert.Equal(t, want, got)
}

// Operand elements are numbered by position and typed by the resolved
// kind's lower-case name.
func TestWriteArgNumbering(t *testing.T) {
	got := render(t, ".IPPcode24\nJUMPIFEQ end GF@x nil@nil\nREAD GF@y bool\n")
	assert.Contains(t, got, `<arg1 type="label">end</arg1>`)
	assert.Contains(t, got, `<arg2 type="var">GF@x</arg2>`)
	assert.Contains(t, got, `<arg3 type="nil">nil</arg3>`)
	assert.Contains(t, got, `<arg2 type="type">bool</arg2>`)
}

func TestWriteEscaping(t *testing.T) {
	got := render(t, ".IPPcode24\nWRITE string@a<b&c>d\n")
	assert.Contains(t, got, `<arg1 type="string">a&lt;b&amp;c&gt;d</arg1>`)
}

func TestWriteEmptyStringValue(t *testing.T) {
	got := render(t, ".IPPcode24\nWRITE string@\n")
	assert.Contains(t, got, `<arg1 type="string"></arg1>`)
}
