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

// Package ram provides a minimal flat memory implementation of the
// cpubus.Memory interface, for use by tests and by hosts that don't need a
// segmented memory map (peripheral registers, cartridge banking, ROM write
// protection).
package ram

import (
	"github.com/m65xx/mos6502/curated"
)

// Flat is a fixed 64KiB byte array satisfying cpubus.Memory. The host (or a
// test) sets the IRQ and NMI line levels with SetIRQ and SetNMI.
type Flat struct {
	data [65536]byte

	irq bool
	nmi bool
}

// NewFlat returns a Flat memory filled with fillValue.
func NewFlat(fillValue uint8) *Flat {
	m := &Flat{}
	m.Fill(fillValue)
	return m
}

// Fill sets every byte of memory to value.
func (m *Flat) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Load copies data into memory starting at address. It returns an error if
// data would overrun the end of the address space.
func (m *Flat) Load(address uint16, data []byte) error {
	if int(address)+len(data) > len(m.data) {
		return curated.Errorf("ram: load of %d bytes at %#04x overruns address space", len(data), address)
	}
	copy(m.data[address:], data)
	return nil
}

// Read implements cpubus.Memory.
func (m *Flat) Read(address uint16) (uint8, error) {
	return m.data[address], nil
}

// Write implements cpubus.Memory.
func (m *Flat) Write(address uint16, data uint8) error {
	m.data[address] = data
	return nil
}

// Peek implements cpubus.Debugger.
func (m *Flat) Peek(address uint16) (uint8, error) {
	return m.data[address], nil
}

// Poke implements cpubus.Debugger.
func (m *Flat) Poke(address uint16, data uint8) error {
	m.data[address] = data
	return nil
}

// IRQAsserted implements cpubus.Memory.
func (m *Flat) IRQAsserted() bool {
	return m.irq
}

// NMIAsserted implements cpubus.Memory.
func (m *Flat) NMIAsserted() bool {
	return m.nmi
}

// SetIRQ sets the level of the /IRQ line.
func (m *Flat) SetIRQ(asserted bool) {
	m.irq = asserted
}

// SetNMI sets the level of the /NMI line.
func (m *Flat) SetNMI(asserted bool) {
	m.nmi = asserted
}
