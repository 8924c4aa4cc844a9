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

import (
	"github.com/m65xx/mos6502/curated"
	"github.com/m65xx/mos6502/hardware/cpu/execution"
	"github.com/m65xx/mos6502/hardware/cpu/instructions"
)

// readPCByte reads the byte at PC and advances PC by one.
func (c *CPU) readPCByte() (uint8, error) {
	v, err := c.mem.Read(c.PC.Address())
	if err != nil {
		return 0, err
	}
	c.PC.Add(1)
	return v, nil
}

// readPCWord reads a little-endian word starting at PC and advances PC by
// two.
func (c *CPU) readPCWord() (uint16, error) {
	lo, err := c.readPCByte()
	if err != nil {
		return 0, err
	}
	hi, err := c.readPCByte()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func pageCrossed(base, effective uint16) bool {
	return base&0xff00 != effective&0xff00
}

// evaluateAddress consumes whatever operand bytes the addressing mode
// requires, advancing PC, and returns the effective address (0 and unused
// for Implied/Accumulator), whether the computation crossed a page
// boundary, and any hardware bug it reproduced along the way.
func (c *CPU) evaluateAddress(mode instructions.AddressingMode) (uint16, bool, execution.Bug, error) {
	switch mode {
	case instructions.Implied, instructions.Accumulator:
		return 0, false, execution.NoBug, nil

	case instructions.Immediate:
		addr := c.PC.Address()
		c.PC.Add(1)
		return addr, false, execution.NoBug, nil

	case instructions.ZeroPage:
		b, err := c.readPCByte()
		return uint16(b), false, execution.NoBug, err

	case instructions.ZeroPageIndexedX:
		b, err := c.readPCByte()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		return uint16(b + c.X.Value()), false, execution.NoBug, nil

	case instructions.ZeroPageIndexedY:
		b, err := c.readPCByte()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		return uint16(b + c.Y.Value()), false, execution.NoBug, nil

	case instructions.Absolute:
		addr, err := c.readPCWord()
		return addr, false, execution.NoBug, err

	case instructions.AbsoluteIndexedX:
		base, err := c.readPCWord()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		addr := base + uint16(c.X.Value())
		return addr, pageCrossed(base, addr), execution.NoBug, nil

	case instructions.AbsoluteIndexedY:
		base, err := c.readPCWord()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		addr := base + uint16(c.Y.Value())
		return addr, pageCrossed(base, addr), execution.NoBug, nil

	case instructions.Indirect:
		ptr, err := c.readPCWord()
		if err != nil {
			return 0, false, execution.NoBug, err
		}

		if c.config.CMOSIndirectFix || ptr&0x00ff != 0x00ff {
			addr, err := loadWordWrapped(c, ptr, ptr+1)
			return addr, false, execution.NoBug, err
		}

		// NMOS page-wrap bug: the high byte is fetched from the start of
		// the same page instead of crossing into the next one.
		addr, err := loadWordWrapped(c, ptr, ptr&0xff00)
		return addr, false, execution.JmpIndirectPageWrap, err

	case instructions.IndexedIndirect:
		b, err := c.readPCByte()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		ptr := b + c.X.Value()
		addr, err := c.readZeroPageWord(ptr)
		bug := execution.NoBug
		if ptr == 0xff {
			bug = execution.ZeroPageIndirectWrap
		}
		return addr, false, bug, err

	case instructions.IndirectIndexed:
		ptr, err := c.readPCByte()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		base, err := c.readZeroPageWord(ptr)
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		addr := base + uint16(c.Y.Value())
		bug := execution.NoBug
		if ptr == 0xff {
			bug = execution.ZeroPageIndirectWrap
		}
		return addr, pageCrossed(base, addr), bug, nil

	case instructions.Relative:
		b, err := c.readPCByte()
		if err != nil {
			return 0, false, execution.NoBug, err
		}
		base := c.PC.Address()
		addr := uint16(int32(base) + int32(int8(b)))
		return addr, pageCrossed(base, addr), execution.NoBug, nil
	}

	return 0, false, execution.NoBug, curated.Errorf("cpu: unhandled addressing mode %d", mode)
}

// readZeroPageWord reads a little-endian word from a zero-page pointer,
// reproducing the hardware's zero-page wrap: the high byte is read from
// (ptr+1) mod 256, never from page one.
func (c *CPU) readZeroPageWord(ptr uint8) (uint16, error) {
	lo, err := c.mem.Read(uint16(ptr))
	if err != nil {
		return 0, err
	}
	hi, err := c.mem.Read(uint16(ptr + 1))
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// loadWordWrapped reads the low byte from loAddr and the high byte from
// hiAddr, which may or may not be loAddr+1 depending on whether the
// indirect-JMP page-wrap bug is being reproduced.
func loadWordWrapped(c *CPU, loAddr, hiAddr uint16) (uint16, error) {
	lo, err := c.mem.Read(loAddr)
	if err != nil {
		return 0, err
	}
	hi, err := c.mem.Read(hiAddr)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
