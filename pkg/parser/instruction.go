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

// parseInstruction validates one comment-stripped, non-empty source
// line and builds its Instruction. The caller supplies the order
// number; this function never touches program-level state.
func parseInstruction(line string, order int) (Instruction, *Error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Instruction{}, errorf(ErrUnknownOpcode, "empty instruction")
	}
	mnemonic := fields[0]
	sig, ok := signatureFor(mnemonic)
	if !ok {
		return Instruction{}, errorf(ErrUnknownOpcode, "unknown instruction %q", mnemonic)
	}

	opcode := strings.ToUpper(mnemonic)
	tokens := fields[1:]
	if len(tokens) != len(sig) {
		return Instruction{}, errorf(ErrArityMismatch,
			"%s expects %d operand(s), got %d", opcode, len(sig), len(tokens))
	}

	inst := Instruction{Order: order, Opcode: opcode}
	for i, tok := range tokens {
		op, err := resolve(tok, sig[i])
		if err != nil {
			return Instruction{}, err
		}
		if !compatible(sig[i], op.Kind) {
			return Instruction{}, errorf(ErrOperandTypeMismatch,
				"operand %d of %s: expected %s, got %s", i+1, opcode, sig[i], op.Kind)
		}
		inst.Operands = append(inst.Operands, op)
	}
	return inst, nil
}
