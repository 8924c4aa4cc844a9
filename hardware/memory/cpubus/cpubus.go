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

// Package cpubus defines the interface a host's address space must satisfy
// to be driven by the cpu package, plus the fixed vector addresses and a
// handful of convenience helpers built on top of the interface.
package cpubus

// Memory defines the operations required by the CPU of the memory system it
// is wired to. The CPU never interprets address semantics; peripheral
// mapping (keyboard latch, display register, ROM write protection) is
// entirely the host's responsibility, and writes to read-only regions
// should be dropped silently at this layer rather than surfaced as errors.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error

	// IRQAsserted reports the current level of the /IRQ line. The core
	// polls this between instructions; it is never latched by the bus.
	IRQAsserted() bool

	// NMIAsserted reports the current level of the /NMI line. The core
	// edge-detects transitions of this value itself; the bus only ever
	// reports the instantaneous level.
	NMIAsserted() bool
}

// Fixed vector addresses. The 16-bit value stored little-endian at each pair
// of addresses is loaded into PC when the corresponding condition occurs.
const (
	NMIVector   uint16 = 0xfffa
	ResetVector uint16 = 0xfffc
	IRQVector   uint16 = 0xfffe
)

// StackBase is the fixed address of page one, within which the hardware
// stack lives at StackBase+SP.
const StackBase uint16 = 0x0100

// LoadWord reads a little-endian 16-bit value from address and address+1.
// Used only by vector fetches and by test scaffolding; not on the hot path
// of instruction execution.
func LoadWord(mem Memory, address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// StoreWord writes a little-endian 16-bit value to address and address+1.
func StoreWord(mem Memory, address uint16, value uint16) error {
	if err := mem.Write(address, uint8(value)); err != nil {
		return err
	}
	return mem.Write(address+1, uint8(value>>8))
}

// Debugger is an optional interface a Memory implementation may satisfy to
// give a host non-destructive inspection of memory. It is discovered with a
// type assertion; its absence never affects emulation correctness.
type Debugger interface {
	// Peek reads a byte without triggering any read-side effect a real
	// Read might have (e.g. clearing a status register on read).
	Peek(address uint16) (uint8, error)

	// Poke writes a byte without triggering any write-side effect a real
	// Write might have, and regardless of write-protection.
	Poke(address uint16, data uint8) error
}

// BreakpointBus is an optional interface a Memory implementation may
// satisfy to mark PC breakpoints without the CPU needing any knowledge of
// how those are represented. The CPU queries it before fetching each opcode
// and logs a hit; execution is not halted. Write protection is not part of
// this interface.
type BreakpointBus interface {
	// Breakpoint reports whether a breakpoint is set on the opcode at
	// address.
	Breakpoint(address uint16) bool
}
