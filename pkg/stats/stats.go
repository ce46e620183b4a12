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

// Package stats derives code metrics from an assembled program.
// Collection is a pure read of the program; it never changes parse
// results.
package stats

import (
	"os"

	"gopkg.in/yaml.v3"

	"parse24/pkg/parser"
)

// Report holds the metrics for one source unit.
type Report struct {
	Loc      int            `yaml:"loc"`
	Comments int            `yaml:"comments"`
	Labels   int            `yaml:"labels"`
	Jumps    int            `yaml:"jumps"`
	Opcodes  map[string]int `yaml:"opcodes"`
}

// jumpOpcodes are the instructions that transfer control.
var jumpOpcodes = map[string]bool{
	"CALL":      true,
	"RETURN":    true,
	"JUMP":      true,
	"JUMPIFEQ":  true,
	"JUMPIFNEQ": true,
}

// Collect computes the report for a program.
func Collect(prog *parser.Program) *Report {
	r := &Report{
		Loc:      len(prog.Instructions),
		Comments: prog.CommentLines,
		Opcodes:  make(map[string]int),
	}
	for _, inst := range prog.Instructions {
		r.Opcodes[inst.Opcode]++
		if inst.Opcode == "LABEL" {
			r.Labels++
		}
		if jumpOpcodes[inst.Opcode] {
			r.Jumps++
		}
	}
	return r
}

// WriteFile writes the report to path as a YAML document.
func (r *Report) WriteFile(path string) error {
	out, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}
