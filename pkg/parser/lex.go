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
	"regexp"
	"strings"
)

// headerWord is the mandatory first line of every source unit,
// matched case-insensitively.
const headerWord = ".IPPcode24"

// Identifier grammar shared by variable names and labels: a restricted
// symbol set for the first character, alphanumerics plus the same set
// afterwards.
var identPattern = regexp.MustCompile(`^[a-zA-Z_\-$&%*!?][a-zA-Z0-9_\-$&%*!?]*$`)

// The four accepted integer literal shapes. A leading + is legal for
// plain decimals only; +0x2A and +0o17 are rejected. The asymmetry is
// part of the language.
var intPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^-?[0-9]+$`),
	regexp.MustCompile(`^-?0[xX][0-9a-fA-F]+$`),
	regexp.MustCompile(`^-?0[oO][0-7]+$`),
	regexp.MustCompile(`^\+?[0-9]+$`),
}

// String literal values: any run of non-whitespace, non-backslash
// characters and \DDD three-digit escapes. No other escape form exists.
var stringPattern = regexp.MustCompile(`^([^\\\s]|\\[0-9]{3})*$`)

// isHeader reports whether line, after trimming, is the header.
func isHeader(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), headerWord)
}

// isTypeKeyword reports whether tok is one of the four type names.
func isTypeKeyword(tok string) bool {
	switch tok {
	case "int", "bool", "string", "nil":
		return true
	}
	return false
}

// isLabel reports whether tok is a bare identifier.
func isLabel(tok string) bool {
	return identPattern.MatchString(tok)
}

// isVariable reports whether tok is frame@name with a known frame.
// The name alphabet excludes @, so a second @ can never sneak in.
func isVariable(tok string) bool {
	frame, name, ok := strings.Cut(tok, "@")
	if !ok {
		return false
	}
	switch frame {
	case "GF", "TF", "LF":
	default:
		return false
	}
	return identPattern.MatchString(name)
}

// isLiteral reports whether tok is type@value with a well-formed value
// for that type. The split is on the first @; string values may
// themselves contain @, the other value grammars cannot.
func isLiteral(tok string) bool {
	typ, value, ok := strings.Cut(tok, "@")
	return ok && isTypeKeyword(typ) && literalValueOK(typ, value)
}

func literalValueOK(typ, value string) bool {
	switch typ {
	case "nil":
		return value == "nil"
	case "int":
		for _, p := range intPatterns {
			if p.MatchString(value) {
				return true
			}
		}
		return false
	case "bool":
		return value == "true" || value == "false"
	case "string":
		return stringPattern.MatchString(value)
	}
	return false
}
