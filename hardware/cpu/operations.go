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
	"github.com/m65xx/mos6502/hardware/cpu/registers"
	"github.com/m65xx/mos6502/hardware/memory/cpubus"
	"github.com/m65xx/mos6502/logger"
)

// unstableMagic stands in for the physically indeterminate "magic constant"
// of the unstable undocumented opcodes ANE and LXA, whose real value depends
// on bus capacitance and analog timing that varies between individual chips.
// It is ORed into A before the AND. The other unstable opcodes (SHA, SHX,
// SHY, TAS) do not use it.
const unstableMagic uint8 = 0xee

func (c *CPU) updateFlags(reg *registers.Register) {
	c.P.Zero = reg.IsZero()
	c.P.Sign = reg.IsNegative()
}

func (c *CPU) updateFlagsByte(v uint8) {
	c.P.Zero = v == 0
	c.P.Sign = v&0x80 != 0
}

func (c *CPU) push(v uint8) error {
	err := c.mem.Write(c.SP.Address(), v)
	c.SP.Fall()
	return err
}

func (c *CPU) pull() (uint8, error) {
	c.SP.Rise()
	return c.mem.Read(c.SP.Address())
}

func (c *CPU) pushWord(v uint16) error {
	if err := c.push(uint8(v >> 8)); err != nil {
		return err
	}
	return c.push(uint8(v))
}

func (c *CPU) pullWord() (uint16, error) {
	lo, err := c.pull()
	if err != nil {
		return 0, err
	}
	hi, err := c.pull()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// execute fetches, decodes and executes the instruction at PC. It is only
// called once Step has determined no interrupt is due.
func (c *CPU) execute() (execution.Result, error) {
	opAddr := c.PC.Address()

	if c.breakpoints != nil && c.breakpoints.Breakpoint(opAddr) {
		logger.Logf(logger.Allow, "cpu", "breakpoint hit at %#04x", opAddr)
	}

	opcode, err := c.readPCByte()
	if err != nil {
		return execution.Result{}, err
	}

	defn := c.table[opcode]
	if defn.Mnemonic == "" || defn.JAM {
		return execution.Result{Address: opAddr, Defn: defn, ByteCount: 1, Final: true},
			curated.Errorf("cpu: illegal opcode %#02x at %#04x", opcode, opAddr)
	}

	address, pageCross, bug, err := c.evaluateAddress(defn.AddressingMode)
	if err != nil {
		return execution.Result{}, err
	}

	cycles := defn.Cycles
	if pageCross && defn.PageSensitive && !defn.IsBranch() {
		cycles++
	}

	var branchTaken bool
	if err := c.dispatch(defn, address, &branchTaken); err != nil {
		return execution.Result{}, err
	}

	if defn.IsBranch() && branchTaken {
		c.PC.Load(address)
		cycles++
		if pageCross {
			cycles++
		}
	}

	return execution.Result{
		Address:       opAddr,
		Defn:          defn,
		ByteCount:     defn.Bytes,
		Cycles:        cycles,
		PageFault:     pageCross,
		BranchSuccess: branchTaken,
		CPUBug:        bug,
		Final:         true,
	}, nil
}

// dispatch executes the operation handler named by defn.Mnemonic. address
// is the effective address computed by evaluateAddress (meaningless for
// Implied/Accumulator). branchTaken is written to when defn is a branch.
func (c *CPU) dispatch(defn instructions.Definition, address uint16, branchTaken *bool) error {
	switch defn.Mnemonic {

	case "LDA":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.A.Load(v)
		c.updateFlags(c.A)

	case "LDX":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.X.Load(v)
		c.updateFlags(c.X)

	case "LDY":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.Y.Load(v)
		c.updateFlags(c.Y)

	case "STA":
		return c.mem.Write(address, c.A.Value())

	case "STX":
		return c.mem.Write(address, c.X.Value())

	case "STY":
		return c.mem.Write(address, c.Y.Value())

	case "TAX":
		c.X.Load(c.A.Value())
		c.updateFlags(c.X)

	case "TAY":
		c.Y.Load(c.A.Value())
		c.updateFlags(c.Y)

	case "TXA":
		c.A.Load(c.X.Value())
		c.updateFlags(c.A)

	case "TYA":
		c.A.Load(c.Y.Value())
		c.updateFlags(c.A)

	case "TSX":
		c.X.Load(c.SP.Value())
		c.updateFlags(c.X)

	case "TXS":
		c.SP.Load(c.X.Value())

	case "ADC":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.adc(v)

	case "SBC":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.sbc(v)

	case "AND":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.A.AND(v)
		c.updateFlags(c.A)

	case "ORA":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.A.ORA(v)
		c.updateFlags(c.A)

	case "EOR":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.A.EOR(v)
		c.updateFlags(c.A)

	case "ASL":
		return c.shiftRotate(defn, address, func(reg *registers.Register) bool { return reg.ASL() })

	case "LSR":
		return c.shiftRotate(defn, address, func(reg *registers.Register) bool { return reg.LSR() })

	case "ROL":
		carry := c.P.Carry
		return c.shiftRotate(defn, address, func(reg *registers.Register) bool { return reg.ROL(carry) })

	case "ROR":
		carry := c.P.Carry
		return c.shiftRotate(defn, address, func(reg *registers.Register) bool { return reg.ROR(carry) })

	case "BIT":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.P.Zero = c.A.Value()&v == 0
		c.P.Sign = v&0x80 != 0
		c.P.Overflow = v&0x40 != 0

	case "CMP":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.compare(c.A.Value(), v)

	case "CPX":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.compare(c.X.Value(), v)

	case "CPY":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.compare(c.Y.Value(), v)

	case "INC":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		v++
		if err := c.mem.Write(address, v); err != nil {
			return err
		}
		c.updateFlagsByte(v)

	case "DEC":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		v--
		if err := c.mem.Write(address, v); err != nil {
			return err
		}
		c.updateFlagsByte(v)

	case "INX":
		c.X.Add(1, false)
		c.updateFlags(c.X)

	case "INY":
		c.Y.Add(1, false)
		c.updateFlags(c.Y)

	case "DEX":
		c.X.Subtract(1, false)
		c.updateFlags(c.X)

	case "DEY":
		c.Y.Subtract(1, false)
		c.updateFlags(c.Y)

	case "BCC":
		*branchTaken = !c.P.Carry
	case "BCS":
		*branchTaken = c.P.Carry
	case "BEQ":
		*branchTaken = c.P.Zero
	case "BNE":
		*branchTaken = !c.P.Zero
	case "BMI":
		*branchTaken = c.P.Sign
	case "BPL":
		*branchTaken = !c.P.Sign
	case "BVC":
		*branchTaken = !c.P.Overflow
	case "BVS":
		*branchTaken = c.P.Overflow

	case "JMP":
		c.PC.Load(address)

	case "JSR":
		if err := c.pushWord(c.PC.Address() - 1); err != nil {
			return err
		}
		c.PC.Load(address)

	case "RTS":
		v, err := c.pullWord()
		if err != nil {
			return err
		}
		c.PC.Load(v + 1)

	case "RTI":
		v, err := c.pull()
		if err != nil {
			return err
		}
		c.P.FromValue(v &^ 0x10)
		pc, err := c.pullWord()
		if err != nil {
			return err
		}
		c.PC.Load(pc)
		c.rtiReturn()

	case "BRK":
		c.PC.Add(1)
		if err := c.pushWord(c.PC.Address()); err != nil {
			return err
		}
		sr := c.P
		sr.Break = true
		if err := c.push(sr.Value()); err != nil {
			return err
		}
		c.P.InterruptDisable = true
		vec, err := cpubus.LoadWord(c.mem, cpubus.IRQVector)
		if err != nil {
			return err
		}
		c.PC.Load(vec)

	case "CLC":
		c.P.Carry = false
	case "SEC":
		c.P.Carry = true
	case "CLD":
		c.P.DecimalMode = false
	case "SED":
		c.P.DecimalMode = true
	case "CLI":
		c.P.InterruptDisable = false
	case "SEI":
		c.P.InterruptDisable = true
	case "CLV":
		c.P.Overflow = false

	case "PHA":
		return c.push(c.A.Value())

	case "PHP":
		sr := c.P
		sr.Break = true
		return c.push(sr.Value())

	case "PLA":
		v, err := c.pull()
		if err != nil {
			return err
		}
		c.A.Load(v)
		c.updateFlags(c.A)

	case "PLP":
		v, err := c.pull()
		if err != nil {
			return err
		}
		c.P.FromValue(v &^ 0x10)

	case "NOP":
		if defn.AddressingMode != instructions.Implied && defn.AddressingMode != instructions.Accumulator {
			// phantom read for the undocumented multi-byte NOPs
			if _, err := c.mem.Read(address); err != nil {
				return err
			}
		}

	case "LAX":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.A.Load(v)
		c.X.Load(v)
		c.updateFlags(c.A)

	case "SAX":
		return c.mem.Write(address, c.A.Value()&c.X.Value())

	case "DCP":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		v--
		if err := c.mem.Write(address, v); err != nil {
			return err
		}
		c.compare(c.A.Value(), v)

	case "ISC":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		v++
		if err := c.mem.Write(address, v); err != nil {
			return err
		}
		c.sbc(v)

	case "SLO":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		reg := registers.NewAnonRegister(v)
		carry := reg.ASL()
		if err := c.mem.Write(address, reg.Value()); err != nil {
			return err
		}
		c.P.Carry = carry
		c.A.ORA(reg.Value())
		c.updateFlags(c.A)

	case "RLA":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		reg := registers.NewAnonRegister(v)
		carry := reg.ROL(c.P.Carry)
		if err := c.mem.Write(address, reg.Value()); err != nil {
			return err
		}
		c.P.Carry = carry
		c.A.AND(reg.Value())
		c.updateFlags(c.A)

	case "SRE":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		reg := registers.NewAnonRegister(v)
		carry := reg.LSR()
		if err := c.mem.Write(address, reg.Value()); err != nil {
			return err
		}
		c.P.Carry = carry
		c.A.EOR(reg.Value())
		c.updateFlags(c.A)

	case "RRA":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		reg := registers.NewAnonRegister(v)
		carry := reg.ROR(c.P.Carry)
		if err := c.mem.Write(address, reg.Value()); err != nil {
			return err
		}
		c.P.Carry = carry
		c.adc(reg.Value())

	case "ANC":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.A.AND(v)
		c.updateFlags(c.A)
		c.P.Carry = c.A.IsNegative()

	case "ALR":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.A.AND(v)
		carry := c.A.LSR()
		c.P.Carry = carry
		c.updateFlags(c.A)

	case "ARR":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		c.A.AND(v)
		result := c.A.Value() >> 1
		if c.P.Carry {
			result |= 0x80
		}
		c.A.Load(result)
		c.updateFlagsByte(result)
		c.P.Carry = result&0x40 != 0
		c.P.Overflow = (result>>6)&1^(result>>5)&1 != 0

	case "SBX":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		t := c.A.Value() & c.X.Value()
		c.P.Carry = t >= v
		result := t - v
		c.X.Load(result)
		c.updateFlagsByte(result)

	case "LAS":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		result := v & c.SP.Value()
		c.A.Load(result)
		c.X.Load(result)
		c.SP.Load(result)
		c.updateFlagsByte(result)

	case "ANE":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		result := (c.A.Value() | unstableMagic) & c.X.Value() & v
		c.A.Load(result)
		c.updateFlagsByte(result)

	case "LXA":
		v, err := c.mem.Read(address)
		if err != nil {
			return err
		}
		result := (c.A.Value() | unstableMagic) & v
		c.A.Load(result)
		c.X.Load(result)
		c.updateFlagsByte(result)

	case "SHA":
		result := c.A.Value() & c.X.Value() & uint8(address>>8+1)
		return c.mem.Write(address, result)

	case "SHX":
		result := c.X.Value() & uint8(address>>8+1)
		return c.mem.Write(address, result)

	case "SHY":
		result := c.Y.Value() & uint8(address>>8+1)
		return c.mem.Write(address, result)

	case "TAS":
		c.SP.Load(c.A.Value() & c.X.Value())
		result := c.SP.Value() & uint8(address>>8+1)
		return c.mem.Write(address, result)

	default:
		return curated.Errorf("cpu: unimplemented mnemonic %s", defn.Mnemonic)
	}

	return nil
}

func (c *CPU) adc(v uint8) {
	if c.P.DecimalMode {
		carry, zero, overflow, sign := c.A.AddDecimal(v, c.P.Carry)
		c.P.Carry = carry
		c.P.Zero = zero
		c.P.Overflow = overflow
		c.P.Sign = sign
		return
	}
	carry, overflow := c.A.Add(v, c.P.Carry)
	c.P.Carry = carry
	c.P.Overflow = overflow
	c.updateFlags(c.A)
}

func (c *CPU) sbc(v uint8) {
	if c.P.DecimalMode {
		carry, zero, overflow, sign := c.A.SubtractDecimal(v, c.P.Carry)
		c.P.Carry = carry
		c.P.Zero = zero
		c.P.Overflow = overflow
		c.P.Sign = sign
		return
	}
	carry, overflow := c.A.Subtract(v, c.P.Carry)
	c.P.Carry = carry
	c.P.Overflow = overflow
	c.updateFlags(c.A)
}

func (c *CPU) compare(reg, v uint8) {
	diff := reg - v
	c.P.Carry = reg >= v
	c.P.Zero = diff == 0
	c.P.Sign = diff&0x80 != 0
}

// shiftRotate applies op either to the accumulator (Accumulator addressing
// mode) or to the byte at address (every other mode used by ASL/LSR/ROL/ROR).
func (c *CPU) shiftRotate(defn instructions.Definition, address uint16, op func(*registers.Register) bool) error {
	if defn.AddressingMode == instructions.Accumulator {
		carry := op(c.A)
		c.P.Carry = carry
		c.updateFlags(c.A)
		return nil
	}

	v, err := c.mem.Read(address)
	if err != nil {
		return err
	}
	reg := registers.NewAnonRegister(v)
	carry := op(reg)
	if err := c.mem.Write(address, reg.Value()); err != nil {
		return err
	}
	c.P.Carry = carry
	c.updateFlagsByte(reg.Value())
	return nil
}
