// This file is part of mos6502.
//
// mos6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6502.  If not, see <https://www.gnu.org/licenses/>.

package execution

import (
	"fmt"

	"github.com/m65xx/mos6502/hardware/cpu/instructions"
)

// Result records everything of interest that happened during the decode and
// execution of a single instruction. A debugger or test harness can inspect
// the CPU's LastResult field, or the Result passed to a Step() caller,
// without needing to instrument the CPU itself.
type Result struct {
	// Address is the address of the opcode byte, before any operand bytes
	// were read.
	Address uint16

	// Defn is the instruction descriptor that was dispatched.
	Defn instructions.Definition

	// InstructionData is the raw operand value read for the instruction, as
	// applicable to its addressing mode (unused for Implied/Accumulator).
	InstructionData uint16

	// ByteCount is the number of bytes consumed from the program stream,
	// including the opcode byte.
	ByteCount int

	// Cycles is the total number of cycles the instruction consumed,
	// including any page-cross or branch-taken penalty.
	Cycles int

	// PageFault is true if the addressing mode's effective-address
	// computation crossed a page boundary.
	PageFault bool

	// BranchSuccess is true if a branch instruction's condition was met and
	// the branch was taken.
	BranchSuccess bool

	// CPUBug names a hardware quirk that was reproduced during this
	// instruction, if any.
	CPUBug Bug

	// InterruptService is true if this Result describes interrupt or BRK
	// servicing rather than the execution of a fetched opcode.
	InterruptService bool

	// Final is true once the instruction has been completely decoded and
	// executed. Step stores the final Result in LastResult before it runs
	// the per-cycle callback, so a callback also sees Final true; the zero
	// Result that LastResult holds after Reset has Final false.
	Final bool
}

// String returns a short human readable summary of the result, suitable for
// disassembly output.
func (r Result) String() string {
	if !r.Final {
		return fmt.Sprintf("%#04x %s (in progress)", r.Address, r.Defn.Mnemonic)
	}
	return fmt.Sprintf("%#04x %s (%d bytes, %d cycles)", r.Address, r.Defn.Mnemonic, r.ByteCount, r.Cycles)
}
