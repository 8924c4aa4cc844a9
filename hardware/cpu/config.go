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

package cpu

// Config selects construction-time behaviour of a CPU instance. A Config is
// consumed once, at NewCPU(), and has no effect on an already-constructed
// CPU.
type Config struct {
	// RandomizeOnReset fills A, X and Y with pseudo-random values on Reset
	// instead of zeroing them, mimicking the indeterminate power-on state of
	// real silicon.
	RandomizeOnReset bool

	// Undocumented enables decoding of the undocumented NMOS opcodes: the
	// stable ones, the unstable ones (ANE, LXA, SHA, SHX, SHY, TAS) and the
	// 12 JAM codes. When false, those opcodes decode to the illegal-opcode
	// trap.
	Undocumented bool

	// CMOSIndirectFix selects the corrected (65C02) behaviour for indirect
	// JMP at a page boundary instead of reproducing the NMOS page-wrap bug.
	CMOSIndirectFix bool

	// InterruptServiceCycles is the number of cycles accounted for servicing
	// an NMI or IRQ. BRK is charged its instruction-table cycle count
	// instead. The NMOS datasheet says 7; some source revisions disagree and
	// use 6.
	InterruptServiceCycles int
}

// DefaultConfig returns the NMOS-accurate configuration: registers zeroed on
// reset, undocumented opcodes trapped as illegal, the page-wrap indirect-JMP
// bug reproduced, and 7 cycles charged for interrupt service.
func DefaultConfig() Config {
	return Config{
		RandomizeOnReset:       false,
		Undocumented:           false,
		CMOSIndirectFix:        false,
		InterruptServiceCycles: 7,
	}
}
