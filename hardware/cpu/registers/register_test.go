package registers_test

import (
	"github.com/m65xx/mos6502/hardware/cpu/registers"
	"github.com/m65xx/mos6502/test"
	"testing"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.Equate(t, r8.IsZero(), true)
	test.Equate(t, int(r8.Value()), 0)

	// loading & addition
	r8.Load(127)
	test.Equate(t, int(r8.Value()), 127)
	r8.Add(2, false)
	test.Equate(t, int(r8.Value()), 129)

	// addtion boundary
	r8.Load(255)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), true)
	test.Equate(t, int(r8.Value()), 0)

	// addition boundary with carry
	r8.Load(254)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), true)
	test.Equate(t, int(r8.Value()), 0)

	// addition boundary with carry
	r8.Load(255)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), false)
	test.Equate(t, int(r8.Value()), 1)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	test.Equate(t, int(r8.Value()), 10)

	r8.Load(12)
	r8.Subtract(1, false)
	test.Equate(t, int(r8.Value()), 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	test.Equate(t, int(r8.Value()), 0xFA)

	// subtract on boundary
	r8.Load(0)
	r8.Subtract(1, true)
	test.Equate(t, int(r8.Value()), 255)
	r8.Load(1)
	r8.Subtract(1, false)
	test.Equate(t, int(r8.Value()), 255)
	r8.Load(1)
	r8.Subtract(2, true)
	test.Equate(t, int(r8.Value()), 255)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.Equate(t, int(r8.Value()), 0x01)
	r8.EOR(0xFF)
	test.Equate(t, int(r8.Value()), 0xFE)
	r8.ORA(0x1)
	test.Equate(t, int(r8.Value()), 0xFF)

	// shifts
	carry = r8.ASL()
	test.Equate(t, int(r8.Value()), 0xFE)
	test.Equate(t, carry, true)
	carry = r8.LSR()
	test.Equate(t, int(r8.Value()), 0x7F)
	test.Equate(t, carry, false)
	carry = r8.LSR()
	test.Equate(t, carry, true)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.Equate(t, int(r8.Value()), 0xfe)
	test.Equate(t, carry, true)
	carry = r8.ROR(true)
	test.Equate(t, int(r8.Value()), 0xff)
	test.Equate(t, carry, false)
}
