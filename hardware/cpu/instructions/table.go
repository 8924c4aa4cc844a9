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

package instructions

// NewTable builds the fixed 256-entry opcode dispatch table. It is built
// once per CPU instance (or shared as an immutable value across instances
// with identical Config) rather than as a package-level mutable singleton,
// per the CPU core's own construction convention.
//
// undocumented selects whether the illegal opcodes (stable and unstable
// ones, and the JAM codes) decode to their documented behaviour or fall
// through to the illegal-opcode trap alongside the genuinely undefined
// opcodes.
func NewTable(undocumented bool) [256]Definition {
	var t [256]Definition

	// undefined opcodes default to the illegal trap: zero value Definition
	// with an empty Mnemonic, caught by Definition.String() and by the CPU's
	// dispatch as a fatal condition.

	setOfficial(&t)
	if undocumented {
		setUndocumented(&t)
	}

	return t
}

func setOfficial(t *[256]Definition) {
	t[0x00] = Definition{OpCode: 0x00, Mnemonic: "BRK", Bytes: 1, Cycles: 7, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt, Undocumented: false, JAM: false}
	t[0x01] = Definition{OpCode: 0x01, Mnemonic: "ORA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x05] = Definition{OpCode: 0x05, Mnemonic: "ORA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x06] = Definition{OpCode: 0x06, Mnemonic: "ASL", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x08] = Definition{OpCode: 0x08, Mnemonic: "PHP", Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x09] = Definition{OpCode: 0x09, Mnemonic: "ORA", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x0a] = Definition{OpCode: 0x0a, Mnemonic: "ASL", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x0d] = Definition{OpCode: 0x0d, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x0e] = Definition{OpCode: 0x0e, Mnemonic: "ASL", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x10] = Definition{OpCode: 0x10, Mnemonic: "BPL", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false, JAM: false}
	t[0x11] = Definition{OpCode: 0x11, Mnemonic: "ORA", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0x15] = Definition{OpCode: 0x15, Mnemonic: "ORA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x16] = Definition{OpCode: 0x16, Mnemonic: "ASL", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x18] = Definition{OpCode: 0x18, Mnemonic: "CLC", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x19] = Definition{OpCode: 0x19, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0x1d] = Definition{OpCode: 0x1d, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0x1e] = Definition{OpCode: 0x1e, Mnemonic: "ASL", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x20] = Definition{OpCode: 0x20, Mnemonic: "JSR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: Subroutine, Undocumented: false, JAM: false}
	t[0x21] = Definition{OpCode: 0x21, Mnemonic: "AND", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x24] = Definition{OpCode: 0x24, Mnemonic: "BIT", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x25] = Definition{OpCode: 0x25, Mnemonic: "AND", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x26] = Definition{OpCode: 0x26, Mnemonic: "ROL", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x28] = Definition{OpCode: 0x28, Mnemonic: "PLP", Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x29] = Definition{OpCode: 0x29, Mnemonic: "AND", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x2a] = Definition{OpCode: 0x2a, Mnemonic: "ROL", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x2c] = Definition{OpCode: 0x2c, Mnemonic: "BIT", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x2d] = Definition{OpCode: 0x2d, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x2e] = Definition{OpCode: 0x2e, Mnemonic: "ROL", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x30] = Definition{OpCode: 0x30, Mnemonic: "BMI", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false, JAM: false}
	t[0x31] = Definition{OpCode: 0x31, Mnemonic: "AND", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0x35] = Definition{OpCode: 0x35, Mnemonic: "AND", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x36] = Definition{OpCode: 0x36, Mnemonic: "ROL", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x38] = Definition{OpCode: 0x38, Mnemonic: "SEC", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x39] = Definition{OpCode: 0x39, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0x3d] = Definition{OpCode: 0x3d, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0x3e] = Definition{OpCode: 0x3e, Mnemonic: "ROL", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x40] = Definition{OpCode: 0x40, Mnemonic: "RTI", Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Subroutine, Undocumented: false, JAM: false}
	t[0x41] = Definition{OpCode: 0x41, Mnemonic: "EOR", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x45] = Definition{OpCode: 0x45, Mnemonic: "EOR", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x46] = Definition{OpCode: 0x46, Mnemonic: "LSR", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x48] = Definition{OpCode: 0x48, Mnemonic: "PHA", Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x49] = Definition{OpCode: 0x49, Mnemonic: "EOR", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x4a] = Definition{OpCode: 0x4a, Mnemonic: "LSR", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x4c] = Definition{OpCode: 0x4c, Mnemonic: "JMP", Bytes: 3, Cycles: 3, AddressingMode: Absolute, PageSensitive: false, Effect: Flow, Undocumented: false, JAM: false}
	t[0x4d] = Definition{OpCode: 0x4d, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x4e] = Definition{OpCode: 0x4e, Mnemonic: "LSR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x50] = Definition{OpCode: 0x50, Mnemonic: "BVC", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false, JAM: false}
	t[0x51] = Definition{OpCode: 0x51, Mnemonic: "EOR", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0x55] = Definition{OpCode: 0x55, Mnemonic: "EOR", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x56] = Definition{OpCode: 0x56, Mnemonic: "LSR", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x58] = Definition{OpCode: 0x58, Mnemonic: "CLI", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x59] = Definition{OpCode: 0x59, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0x5d] = Definition{OpCode: 0x5d, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0x5e] = Definition{OpCode: 0x5e, Mnemonic: "LSR", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x60] = Definition{OpCode: 0x60, Mnemonic: "RTS", Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Subroutine, Undocumented: false, JAM: false}
	t[0x61] = Definition{OpCode: 0x61, Mnemonic: "ADC", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x65] = Definition{OpCode: 0x65, Mnemonic: "ADC", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x66] = Definition{OpCode: 0x66, Mnemonic: "ROR", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x68] = Definition{OpCode: 0x68, Mnemonic: "PLA", Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x69] = Definition{OpCode: 0x69, Mnemonic: "ADC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x6a] = Definition{OpCode: 0x6a, Mnemonic: "ROR", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x6c] = Definition{OpCode: 0x6c, Mnemonic: "JMP", Bytes: 3, Cycles: 5, AddressingMode: Indirect, PageSensitive: false, Effect: Flow, Undocumented: false, JAM: false}
	t[0x6d] = Definition{OpCode: 0x6d, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x6e] = Definition{OpCode: 0x6e, Mnemonic: "ROR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x70] = Definition{OpCode: 0x70, Mnemonic: "BVS", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false, JAM: false}
	t[0x71] = Definition{OpCode: 0x71, Mnemonic: "ADC", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0x75] = Definition{OpCode: 0x75, Mnemonic: "ADC", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x76] = Definition{OpCode: 0x76, Mnemonic: "ROR", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x78] = Definition{OpCode: 0x78, Mnemonic: "SEI", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x79] = Definition{OpCode: 0x79, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0x7d] = Definition{OpCode: 0x7d, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0x7e] = Definition{OpCode: 0x7e, Mnemonic: "ROR", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0x81] = Definition{OpCode: 0x81, Mnemonic: "STA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write, Undocumented: false, JAM: false}
	t[0x84] = Definition{OpCode: 0x84, Mnemonic: "STY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write, Undocumented: false, JAM: false}
	t[0x85] = Definition{OpCode: 0x85, Mnemonic: "STA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write, Undocumented: false, JAM: false}
	t[0x86] = Definition{OpCode: 0x86, Mnemonic: "STX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write, Undocumented: false, JAM: false}
	t[0x88] = Definition{OpCode: 0x88, Mnemonic: "DEY", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x8a] = Definition{OpCode: 0x8a, Mnemonic: "TXA", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x8c] = Definition{OpCode: 0x8c, Mnemonic: "STY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write, Undocumented: false, JAM: false}
	t[0x8d] = Definition{OpCode: 0x8d, Mnemonic: "STA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write, Undocumented: false, JAM: false}
	t[0x8e] = Definition{OpCode: 0x8e, Mnemonic: "STX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write, Undocumented: false, JAM: false}
	t[0x90] = Definition{OpCode: 0x90, Mnemonic: "BCC", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false, JAM: false}
	t[0x91] = Definition{OpCode: 0x91, Mnemonic: "STA", Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write, Undocumented: false, JAM: false}
	t[0x94] = Definition{OpCode: 0x94, Mnemonic: "STY", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write, Undocumented: false, JAM: false}
	t[0x95] = Definition{OpCode: 0x95, Mnemonic: "STA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write, Undocumented: false, JAM: false}
	t[0x96] = Definition{OpCode: 0x96, Mnemonic: "STX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write, Undocumented: false, JAM: false}
	t[0x98] = Definition{OpCode: 0x98, Mnemonic: "TYA", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x99] = Definition{OpCode: 0x99, Mnemonic: "STA", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write, Undocumented: false, JAM: false}
	t[0x9a] = Definition{OpCode: 0x9a, Mnemonic: "TXS", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0x9d] = Definition{OpCode: 0x9d, Mnemonic: "STA", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write, Undocumented: false, JAM: false}
	t[0xa0] = Definition{OpCode: 0xa0, Mnemonic: "LDY", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xa1] = Definition{OpCode: 0xa1, Mnemonic: "LDA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xa2] = Definition{OpCode: 0xa2, Mnemonic: "LDX", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xa4] = Definition{OpCode: 0xa4, Mnemonic: "LDY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xa5] = Definition{OpCode: 0xa5, Mnemonic: "LDA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xa6] = Definition{OpCode: 0xa6, Mnemonic: "LDX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xa8] = Definition{OpCode: 0xa8, Mnemonic: "TAY", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xa9] = Definition{OpCode: 0xa9, Mnemonic: "LDA", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xaa] = Definition{OpCode: 0xaa, Mnemonic: "TAX", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xac] = Definition{OpCode: 0xac, Mnemonic: "LDY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xad] = Definition{OpCode: 0xad, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xae] = Definition{OpCode: 0xae, Mnemonic: "LDX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xb0] = Definition{OpCode: 0xb0, Mnemonic: "BCS", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false, JAM: false}
	t[0xb1] = Definition{OpCode: 0xb1, Mnemonic: "LDA", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0xb4] = Definition{OpCode: 0xb4, Mnemonic: "LDY", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xb5] = Definition{OpCode: 0xb5, Mnemonic: "LDA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xb6] = Definition{OpCode: 0xb6, Mnemonic: "LDX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xb8] = Definition{OpCode: 0xb8, Mnemonic: "CLV", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xb9] = Definition{OpCode: 0xb9, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0xba] = Definition{OpCode: 0xba, Mnemonic: "TSX", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xbc] = Definition{OpCode: 0xbc, Mnemonic: "LDY", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0xbd] = Definition{OpCode: 0xbd, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0xbe] = Definition{OpCode: 0xbe, Mnemonic: "LDX", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0xc0] = Definition{OpCode: 0xc0, Mnemonic: "CPY", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xc1] = Definition{OpCode: 0xc1, Mnemonic: "CMP", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xc4] = Definition{OpCode: 0xc4, Mnemonic: "CPY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xc5] = Definition{OpCode: 0xc5, Mnemonic: "CMP", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xc6] = Definition{OpCode: 0xc6, Mnemonic: "DEC", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0xc8] = Definition{OpCode: 0xc8, Mnemonic: "INY", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xc9] = Definition{OpCode: 0xc9, Mnemonic: "CMP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xca] = Definition{OpCode: 0xca, Mnemonic: "DEX", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xcc] = Definition{OpCode: 0xcc, Mnemonic: "CPY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xcd] = Definition{OpCode: 0xcd, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xce] = Definition{OpCode: 0xce, Mnemonic: "DEC", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0xd0] = Definition{OpCode: 0xd0, Mnemonic: "BNE", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false, JAM: false}
	t[0xd1] = Definition{OpCode: 0xd1, Mnemonic: "CMP", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0xd5] = Definition{OpCode: 0xd5, Mnemonic: "CMP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xd6] = Definition{OpCode: 0xd6, Mnemonic: "DEC", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0xd8] = Definition{OpCode: 0xd8, Mnemonic: "CLD", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xd9] = Definition{OpCode: 0xd9, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0xdd] = Definition{OpCode: 0xdd, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0xde] = Definition{OpCode: 0xde, Mnemonic: "DEC", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0xe0] = Definition{OpCode: 0xe0, Mnemonic: "CPX", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xe1] = Definition{OpCode: 0xe1, Mnemonic: "SBC", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xe4] = Definition{OpCode: 0xe4, Mnemonic: "CPX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xe5] = Definition{OpCode: 0xe5, Mnemonic: "SBC", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xe6] = Definition{OpCode: 0xe6, Mnemonic: "INC", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0xe8] = Definition{OpCode: 0xe8, Mnemonic: "INX", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xe9] = Definition{OpCode: 0xe9, Mnemonic: "SBC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xea] = Definition{OpCode: 0xea, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xec] = Definition{OpCode: 0xec, Mnemonic: "CPX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xed] = Definition{OpCode: 0xed, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xee] = Definition{OpCode: 0xee, Mnemonic: "INC", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0xf0] = Definition{OpCode: 0xf0, Mnemonic: "BEQ", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow, Undocumented: false, JAM: false}
	t[0xf1] = Definition{OpCode: 0xf1, Mnemonic: "SBC", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0xf5] = Definition{OpCode: 0xf5, Mnemonic: "SBC", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xf6] = Definition{OpCode: 0xf6, Mnemonic: "INC", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
	t[0xf8] = Definition{OpCode: 0xf8, Mnemonic: "SED", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false, JAM: false}
	t[0xf9] = Definition{OpCode: 0xf9, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0xfd] = Definition{OpCode: 0xfd, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false, JAM: false}
	t[0xfe] = Definition{OpCode: 0xfe, Mnemonic: "INC", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false, JAM: false}
}

func setUndocumented(t *[256]Definition) {
	t[0x02] = Definition{OpCode: 0x02, Mnemonic: "JAM", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: true}
	t[0x03] = Definition{OpCode: 0x03, Mnemonic: "SLO", Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x04] = Definition{OpCode: 0x04, Mnemonic: "NOP", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x07] = Definition{OpCode: 0x07, Mnemonic: "SLO", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x0b] = Definition{OpCode: 0x0b, Mnemonic: "ANC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x0c] = Definition{OpCode: 0x0c, Mnemonic: "NOP", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x0f] = Definition{OpCode: 0x0f, Mnemonic: "SLO", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x12] = Definition{OpCode: 0x12, Mnemonic: "JAM", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: true}
	t[0x13] = Definition{OpCode: 0x13, Mnemonic: "SLO", Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x14] = Definition{OpCode: 0x14, Mnemonic: "NOP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x17] = Definition{OpCode: 0x17, Mnemonic: "SLO", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x1a] = Definition{OpCode: 0x1a, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x1b] = Definition{OpCode: 0x1b, Mnemonic: "SLO", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x1c] = Definition{OpCode: 0x1c, Mnemonic: "NOP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true, JAM: false}
	t[0x1f] = Definition{OpCode: 0x1f, Mnemonic: "SLO", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x22] = Definition{OpCode: 0x22, Mnemonic: "JAM", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: true}
	t[0x23] = Definition{OpCode: 0x23, Mnemonic: "RLA", Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x27] = Definition{OpCode: 0x27, Mnemonic: "RLA", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x2b] = Definition{OpCode: 0x2b, Mnemonic: "ANC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x2f] = Definition{OpCode: 0x2f, Mnemonic: "RLA", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x32] = Definition{OpCode: 0x32, Mnemonic: "JAM", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: true}
	t[0x33] = Definition{OpCode: 0x33, Mnemonic: "RLA", Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x34] = Definition{OpCode: 0x34, Mnemonic: "NOP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x37] = Definition{OpCode: 0x37, Mnemonic: "RLA", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x3a] = Definition{OpCode: 0x3a, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x3b] = Definition{OpCode: 0x3b, Mnemonic: "RLA", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x3c] = Definition{OpCode: 0x3c, Mnemonic: "NOP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true, JAM: false}
	t[0x3f] = Definition{OpCode: 0x3f, Mnemonic: "RLA", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x42] = Definition{OpCode: 0x42, Mnemonic: "JAM", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: true}
	t[0x43] = Definition{OpCode: 0x43, Mnemonic: "SRE", Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x44] = Definition{OpCode: 0x44, Mnemonic: "NOP", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x47] = Definition{OpCode: 0x47, Mnemonic: "SRE", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x4b] = Definition{OpCode: 0x4b, Mnemonic: "ALR", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x4f] = Definition{OpCode: 0x4f, Mnemonic: "SRE", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x52] = Definition{OpCode: 0x52, Mnemonic: "JAM", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: true}
	t[0x53] = Definition{OpCode: 0x53, Mnemonic: "SRE", Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x54] = Definition{OpCode: 0x54, Mnemonic: "NOP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x57] = Definition{OpCode: 0x57, Mnemonic: "SRE", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x5a] = Definition{OpCode: 0x5a, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x5b] = Definition{OpCode: 0x5b, Mnemonic: "SRE", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x5c] = Definition{OpCode: 0x5c, Mnemonic: "NOP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true, JAM: false}
	t[0x5f] = Definition{OpCode: 0x5f, Mnemonic: "SRE", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x62] = Definition{OpCode: 0x62, Mnemonic: "JAM", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: true}
	t[0x63] = Definition{OpCode: 0x63, Mnemonic: "RRA", Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x64] = Definition{OpCode: 0x64, Mnemonic: "NOP", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x67] = Definition{OpCode: 0x67, Mnemonic: "RRA", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x6b] = Definition{OpCode: 0x6b, Mnemonic: "ARR", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x6f] = Definition{OpCode: 0x6f, Mnemonic: "RRA", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x72] = Definition{OpCode: 0x72, Mnemonic: "JAM", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: true}
	t[0x73] = Definition{OpCode: 0x73, Mnemonic: "RRA", Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x74] = Definition{OpCode: 0x74, Mnemonic: "NOP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x77] = Definition{OpCode: 0x77, Mnemonic: "RRA", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x7a] = Definition{OpCode: 0x7a, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x7b] = Definition{OpCode: 0x7b, Mnemonic: "RRA", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x7c] = Definition{OpCode: 0x7c, Mnemonic: "NOP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true, JAM: false}
	t[0x7f] = Definition{OpCode: 0x7f, Mnemonic: "RRA", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0x80] = Definition{OpCode: 0x80, Mnemonic: "NOP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x82] = Definition{OpCode: 0x82, Mnemonic: "NOP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x83] = Definition{OpCode: 0x83, Mnemonic: "SAX", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write, Undocumented: true, JAM: false}
	t[0x87] = Definition{OpCode: 0x87, Mnemonic: "SAX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write, Undocumented: true, JAM: false}
	t[0x89] = Definition{OpCode: 0x89, Mnemonic: "NOP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x8b] = Definition{OpCode: 0x8b, Mnemonic: "ANE", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x8f] = Definition{OpCode: 0x8f, Mnemonic: "SAX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write, Undocumented: true, JAM: false}
	t[0x92] = Definition{OpCode: 0x92, Mnemonic: "JAM", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: true}
	t[0x93] = Definition{OpCode: 0x93, Mnemonic: "SHA", Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write, Undocumented: true, JAM: false}
	t[0x97] = Definition{OpCode: 0x97, Mnemonic: "SAX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write, Undocumented: true, JAM: false}
	t[0x9b] = Definition{OpCode: 0x9b, Mnemonic: "TAS", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0x9c] = Definition{OpCode: 0x9c, Mnemonic: "SHY", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write, Undocumented: true, JAM: false}
	t[0x9e] = Definition{OpCode: 0x9e, Mnemonic: "SHX", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write, Undocumented: true, JAM: false}
	t[0x9f] = Definition{OpCode: 0x9f, Mnemonic: "SHA", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write, Undocumented: true, JAM: false}
	t[0xa3] = Definition{OpCode: 0xa3, Mnemonic: "LAX", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0xa7] = Definition{OpCode: 0xa7, Mnemonic: "LAX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0xab] = Definition{OpCode: 0xab, Mnemonic: "LXA", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0xaf] = Definition{OpCode: 0xaf, Mnemonic: "LAX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0xb2] = Definition{OpCode: 0xb2, Mnemonic: "JAM", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: true}
	t[0xb3] = Definition{OpCode: 0xb3, Mnemonic: "LAX", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: true, JAM: false}
	t[0xb7] = Definition{OpCode: 0xb7, Mnemonic: "LAX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0xbb] = Definition{OpCode: 0xbb, Mnemonic: "LAS", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: true, JAM: false}
	t[0xbf] = Definition{OpCode: 0xbf, Mnemonic: "LAX", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: true, JAM: false}
	t[0xc2] = Definition{OpCode: 0xc2, Mnemonic: "NOP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0xc3] = Definition{OpCode: 0xc3, Mnemonic: "DCP", Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0xc7] = Definition{OpCode: 0xc7, Mnemonic: "DCP", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0xcb] = Definition{OpCode: 0xcb, Mnemonic: "SBX", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0xcf] = Definition{OpCode: 0xcf, Mnemonic: "DCP", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0xd2] = Definition{OpCode: 0xd2, Mnemonic: "JAM", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: true}
	t[0xd3] = Definition{OpCode: 0xd3, Mnemonic: "DCP", Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0xd4] = Definition{OpCode: 0xd4, Mnemonic: "NOP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0xd7] = Definition{OpCode: 0xd7, Mnemonic: "DCP", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0xda] = Definition{OpCode: 0xda, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0xdb] = Definition{OpCode: 0xdb, Mnemonic: "DCP", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0xdc] = Definition{OpCode: 0xdc, Mnemonic: "NOP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true, JAM: false}
	t[0xdf] = Definition{OpCode: 0xdf, Mnemonic: "DCP", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0xe2] = Definition{OpCode: 0xe2, Mnemonic: "NOP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0xe3] = Definition{OpCode: 0xe3, Mnemonic: "ISC", Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0xe7] = Definition{OpCode: 0xe7, Mnemonic: "ISC", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0xeb] = Definition{OpCode: 0xeb, Mnemonic: "SBC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0xef] = Definition{OpCode: 0xef, Mnemonic: "ISC", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0xf2] = Definition{OpCode: 0xf2, Mnemonic: "JAM", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: true}
	t[0xf3] = Definition{OpCode: 0xf3, Mnemonic: "ISC", Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0xf4] = Definition{OpCode: 0xf4, Mnemonic: "NOP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0xf7] = Definition{OpCode: 0xf7, Mnemonic: "ISC", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0xfa] = Definition{OpCode: 0xfa, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true, JAM: false}
	t[0xfb] = Definition{OpCode: 0xfb, Mnemonic: "ISC", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
	t[0xfc] = Definition{OpCode: 0xfc, Mnemonic: "NOP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true, JAM: false}
	t[0xff] = Definition{OpCode: 0xff, Mnemonic: "ISC", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true, JAM: false}
}
