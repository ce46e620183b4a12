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

import "fmt"

// ErrorCode identifies one of the ways a source unit can be rejected.
// Every failure is fatal for the whole run; there are no warnings.
type ErrorCode int

const (
	ErrMissingHeader ErrorCode = iota
	ErrUnknownOpcode
	ErrArityMismatch
	ErrInvalidOperandSyntax
	ErrOperandTypeMismatch
)

var codeToString = []string{
	"missing header",
	"unknown opcode",
	"wrong operand count",
	"invalid operand",
	"operand type mismatch",
}

func (c ErrorCode) String() string {
	return codeToString[c]
}

// Error is the single error type produced by this package. Source and
// Line are stamped on by the assembler when it knows them; Line 0 means
// no particular line (e.g. the header was never seen at all).
type Error struct {
	Code   ErrorCode
	Source string
	Line   int
	Detail string
}

func (e *Error) Error() string {
	switch {
	case e.Source != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s: %s", e.Source, e.Line, e.Code, e.Detail)
	case e.Source != "":
		return fmt.Sprintf("%s: %s: %s", e.Source, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// Structural reports whether the failure concerns the overall shape of
// the program rather than the content of one instruction. The CLI maps
// structural and content failures to different exit statuses.
func (e *Error) Structural() bool {
	return e.Code == ErrMissingHeader
}

func errorf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Detail: fmt.Sprintf(format, args...)}
}
