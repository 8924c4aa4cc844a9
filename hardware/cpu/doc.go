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

// Package cpu emulates the MOS 6502 microprocessor. Like all 8-bit
// processors of the era, it executes instructions according to the single
// byte value read from the address pointed to by the program counter. This
// single byte is the opcode and is looked up in the instruction table. The
// instruction definition for that opcode is then used to move execution of
// the program forward.
//
// An instance of the CPU type requires an implementation of cpubus.Memory as
// its bus, and a Config selecting construction-time behaviour (undocumented
// opcode support, the CMOS indirect-JMP fix, and so on).
//
// The bread-and-butter of the CPU type is the Step() function, which
// executes exactly one instruction (or one interrupt service). SetCycleCallback
// registers a function to be called once per elapsed cycle, useful for a
// host driving a peripheral clock faster or slower than the CPU clock.
//
//	mc, _ := cpu.NewCPU(mem, cpu.DefaultConfig())
//
//	for {
//		alive, _, err := mc.Step()
//		if err != nil || !alive {
//			break
//		}
//	}
//
// The CPU type's LastResult field can be probed for information about the
// last instruction executed, or about the current instruction being
// executed if accessed from within a cycle callback. See the execution
// package for more information. Very useful for debuggers.
package cpu
