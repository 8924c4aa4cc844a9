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

package cpu_test

import (
	"testing"

	"github.com/m65xx/mos6502/hardware/cpu"
	"github.com/m65xx/mos6502/hardware/memory/ram"
	"github.com/m65xx/mos6502/test"
)

// newCPU builds a Flat-memory CPU with the reset vector pointed at 0x0200,
// the conventional load address used throughout these tests.
func newCPU(t *testing.T, config cpu.Config) (*cpu.CPU, *ram.Flat) {
	t.Helper()

	mem := ram.NewFlat(0xea)
	if err := mem.Load(0xfffc, []byte{0x00, 0x02}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mc, err := cpu.NewCPU(mem, config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return mc, mem
}

func TestReset_loadsPCFromVector(t *testing.T) {
	mc, _ := newCPU(t, cpu.DefaultConfig())
	test.Equate(t, mc.PC.Address(), 0x0200)
}

func TestReset_clearsRegistersAndSetsInterruptDisable(t *testing.T) {
	mc, _ := newCPU(t, cpu.DefaultConfig())
	test.Equate(t, int(mc.A.Value()), 0x00)
	test.Equate(t, int(mc.X.Value()), 0x00)
	test.Equate(t, int(mc.Y.Value()), 0x00)
	test.Equate(t, int(mc.SP.Value()), 0xfd)
	test.Equate(t, mc.P.InterruptDisable, true)
}

func TestStep_LDAImmediate(t *testing.T) {
	mc, mem := newCPU(t, cpu.DefaultConfig())
	if err := mem.Load(0x0200, []byte{0xa9, 0x42}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alive, result, err := mc.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, alive, true)
	test.Equate(t, int(mc.A.Value()), 0x42)
	test.Equate(t, mc.P.Zero, false)
	test.Equate(t, mc.P.Sign, false)
	test.Equate(t, result.Cycles, 2)
	test.Equate(t, result.ByteCount, 2)
}

func TestStep_LDAImmediateSetsZeroFlag(t *testing.T) {
	mc, mem := newCPU(t, cpu.DefaultConfig())
	if err := mem.Load(0x0200, []byte{0xa9, 0x00}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := mc.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, mc.P.Zero, true)
}

func TestStep_STAAbsolute(t *testing.T) {
	mc, mem := newCPU(t, cpu.DefaultConfig())
	if err := mem.Load(0x0200, []byte{0xa9, 0x99, 0x8d, 0x00, 0x03}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := mc.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := mc.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := mem.Read(0x0300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, int(v), 0x99)
}

func TestStep_ADCSignedOverflow(t *testing.T) {
	mc, mem := newCPU(t, cpu.DefaultConfig())
	// 0x50 + 0x50 overflows into the sign bit despite both operands being
	// positive, the textbook signed-overflow example.
	if err := mem.Load(0x0200, []byte{0xa9, 0x50, 0x69, 0x50}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := mc.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := mc.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	test.Equate(t, int(mc.A.Value()), 0xa0)
	test.Equate(t, mc.P.Overflow, true)
	test.Equate(t, mc.P.Sign, true)
	test.Equate(t, mc.P.Carry, false)
}

func TestStep_ADCDecimalMode(t *testing.T) {
	mc, mem := newCPU(t, cpu.DefaultConfig())
	// SED; LDA #$58; ADC #$46 -- the 6502.org decimal-mode tutorial's
	// worked example: 58 + 46 = 104, which doesn't fit in two BCD digits,
	// so the result wraps to 04 with carry set.
	if err := mem.Load(0x0200, []byte{0xf8, 0xa9, 0x58, 0x69, 0x46}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, _, err := mc.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	test.Equate(t, int(mc.A.Value()), 0x04)
	test.Equate(t, mc.P.Carry, true)
}

func TestStep_illegalOpcodeLatches(t *testing.T) {
	mc, mem := newCPU(t, cpu.DefaultConfig())
	// 0x02 is a JAM/KIL opcode with undocumented support disabled, so it is
	// simply absent from the table.
	if err := mem.Write(0x0200, 0x02); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alive, _, err := mc.Step()
	if err == nil {
		t.Fatalf("expected an error executing a JAM opcode")
	}
	test.Equate(t, alive, false)
	test.Equate(t, mc.Alive(), false)
}

func TestStep_branchTakenAndPageCrossPenalty(t *testing.T) {
	mem := ram.NewFlat(0xea)
	if err := mem.Load(0xfffc, []byte{0xf0, 0x02}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mc, err := cpu.NewCPU(mem, cpu.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// BNE with the zero flag clear (LDA #$01 sets it clear), branching
	// from 0x02f4 forward by 16 bytes to 0x0304, crossing a page boundary.
	if err := mem.Load(0x02f0, []byte{0xa9, 0x01, 0xd0, 0x10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := mc.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, result, err := mc.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	test.Equate(t, result.BranchSuccess, true)
	test.Equate(t, result.PageFault, true)
	test.Equate(t, result.Cycles, 4)
	test.Equate(t, mc.PC.Address(), 0x0304)
}

func TestStep_JMPIndirectPageWrapBug(t *testing.T) {
	mc, mem := newCPU(t, cpu.DefaultConfig())
	// the pointer sits at a page boundary (0x05ff) away from the
	// instruction stream, so the wrap can be observed cleanly: the high
	// byte should come from 0x0500, not 0x0600, on NMOS silicon.
	if err := mem.Load(0x0200, []byte{0x6c, 0xff, 0x05}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mem.Write(0x05ff, 0x00); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mem.Write(0x0500, 0x40); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mem.Write(0x0600, 0x80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, result, err := mc.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	test.Equate(t, mc.PC.Address(), 0x4000)
	test.Equate(t, string(result.CPUBug), "indirect JMP page-wrap bug")
}

func TestStep_JMPIndirectCMOSFixDisablesBug(t *testing.T) {
	config := cpu.DefaultConfig()
	config.CMOSIndirectFix = true

	mc, mem := newCPU(t, config)
	if err := mem.Load(0x0200, []byte{0x6c, 0xff, 0x05}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mem.Write(0x05ff, 0x00); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mem.Write(0x0600, 0x80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, result, err := mc.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	test.Equate(t, mc.PC.Address(), 0x8000)
	test.Equate(t, string(result.CPUBug), "")
}

func TestStack_wrapsWithinPageOne(t *testing.T) {
	mc, mem := newCPU(t, cpu.DefaultConfig())
	mc.SP.Load(0x00)

	// PHA with SP already at the bottom of the page must wrap to 0xff
	// rather than overrun into page two.
	if err := mem.Load(0x0200, []byte{0x48}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := mc.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	test.Equate(t, int(mc.SP.Value()), 0xff)

	v, err := mem.Read(0x0100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, int(v), 0x00)
}

func TestNMI_isServicedOnceThenLatchedUntilRTI(t *testing.T) {
	mc, mem := newCPU(t, cpu.DefaultConfig())
	if err := mem.Load(0xfffa, []byte{0x00, 0x09}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// an RTI at the NMI handler so the sequencer can re-arm.
	if err := mem.Write(0x0900, 0x40); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// two NOPs at the main program location, in case the NMI is missed.
	if err := mem.Load(0x0200, []byte{0xea, 0xea}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mem.SetNMI(true)

	_, result, err := mc.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, result.InterruptService, true)
	test.Equate(t, mc.PC.Address(), 0x0900)

	// still asserted, but the sequencer must not re-enter until RTI runs.
	_, result, err = mc.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, result.InterruptService, false)
}
