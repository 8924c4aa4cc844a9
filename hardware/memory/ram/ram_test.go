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

package ram_test

import (
	"testing"

	"github.com/m65xx/mos6502/hardware/memory/ram"
	"github.com/m65xx/mos6502/test"
)

func TestFlat_fill(t *testing.T) {
	m := ram.NewFlat(0xea)
	v, err := m.Read(0x1234)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, int(v), 0xea)
}

func TestFlat_readWrite(t *testing.T) {
	m := ram.NewFlat(0x00)

	if err := m.Write(0x0200, 0x42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := m.Read(0x0200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, int(v), 0x42)
}

func TestFlat_load(t *testing.T) {
	m := ram.NewFlat(0x00)

	if err := m.Load(0xfffc, []byte{0x00, 0x80}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lo, _ := m.Read(0xfffc)
	hi, _ := m.Read(0xfffd)
	test.Equate(t, int(lo), 0x00)
	test.Equate(t, int(hi), 0x80)
}

func TestFlat_loadOverrun(t *testing.T) {
	m := ram.NewFlat(0x00)

	err := m.Load(0xfffe, []byte{0x00, 0x80, 0x00})
	if err == nil {
		t.Fatalf("expected an overrun error, got nil")
	}
}

func TestFlat_peekPokeDoNotDiffer(t *testing.T) {
	m := ram.NewFlat(0x00)

	if err := m.Poke(0x10, 0x99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := m.Peek(0x10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, int(v), 0x99)
}

func TestFlat_interruptLines(t *testing.T) {
	m := ram.NewFlat(0x00)

	test.Equate(t, m.IRQAsserted(), false)
	test.Equate(t, m.NMIAsserted(), false)

	m.SetIRQ(true)
	m.SetNMI(true)

	test.Equate(t, m.IRQAsserted(), true)
	test.Equate(t, m.NMIAsserted(), true)
}
