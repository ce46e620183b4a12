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

// Package xmlgen renders an assembled program as the XML document the
// downstream interpreter consumes.
package xmlgen

import (
	"encoding/xml"
	"fmt"
	"io"

	"parse24/pkg/parser"
)

const language = "IPPcode24"

type programElem struct {
	XMLName      xml.Name    `xml:"program"`
	Language     string      `xml:"language,attr"`
	Instructions []instrElem `xml:"instruction"`
}

type instrElem struct {
	Order  int    `xml:"order,attr"`
	Opcode string `xml:"opcode,attr"`
	Args   []argElem
}

// argElem carries its own XMLName because operand elements are named
// by position: arg1, arg2, arg3.
type argElem struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Value   string `xml:",chardata"`
}

// Write renders the program to w as a UTF-8 XML document with a
// 2-space indent.
func Write(w io.Writer, prog *parser.Program) error {
	doc := programElem{Language: language}
	for _, inst := range prog.Instructions {
		ie := instrElem{Order: inst.Order, Opcode: inst.Opcode}
		for i, op := range inst.Operands {
			ie.Args = append(ie.Args, argElem{
				XMLName: xml.Name{Local: fmt.Sprintf("arg%d", i+1)},
				Type:    op.Kind.String(),
				Value:   op.Value,
			})
		}
		doc.Instructions = append(doc.Instructions, ie)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
