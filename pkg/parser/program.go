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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Assembler consumes one source unit line by line. It has two states:
// waiting for the header, then in the instruction body. The first
// failure in either state ends the run; an Assembler is not reusable
// after Feed returns an error.
type Assembler struct {
	source     string
	line       int
	haveHeader bool
	order      int
	prog       Program
}

// NewAssembler returns an assembler for one source unit. The source
// name appears in diagnostics only.
func NewAssembler(source string) *Assembler {
	return &Assembler{source: source}
}

// stripComment removes a # comment suffix and reports whether one
// was present.
func stripComment(line string) (string, bool) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i], true
	}
	return line, false
}

// Feed consumes one raw source line: strips any comment, skips blanks,
// demands the header first, and parses everything after it as an
// instruction with the next order number.
func (a *Assembler) Feed(raw string) error {
	a.line++
	code, comment := stripComment(raw)
	if comment {
		a.prog.CommentLines++
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}

	if !a.haveHeader {
		if isHeader(code) {
			a.haveHeader = true
			return nil
		}
		return a.fail(errorf(ErrMissingHeader,
			"expected %s header, found %q", headerWord, code))
	}

	a.order++
	inst, perr := parseInstruction(code, a.order)
	if perr != nil {
		return a.fail(perr)
	}
	a.prog.Instructions = append(a.prog.Instructions, inst)
	return nil
}

// Finish ends the source unit. Reaching end of input without ever
// seeing the header is a failure; a header with no instructions is a
// valid empty program.
func (a *Assembler) Finish() (*Program, error) {
	if !a.haveHeader {
		e := errorf(ErrMissingHeader, "source ended without %s header", headerWord)
		e.Source = a.source
		return nil, e
	}
	return &a.prog, nil
}

// fail stamps the current source position onto a parse error.
func (a *Assembler) fail(e *Error) error {
	e.Source = a.source
	e.Line = a.line
	return e
}

// Assemble runs the whole pipeline over a line source. Errors from the
// reader itself come back wrapped and are not *Error values; everything
// the language rejects is a *Error.
func Assemble(source string, r io.Reader) (*Program, error) {
	a := NewAssembler(source)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := a.Feed(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return a.Finish()
}
