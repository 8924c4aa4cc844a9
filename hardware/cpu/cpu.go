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

// nmiState models the edge-triggered NMI line as a small state machine
// rather than a bare boolean, so that "no re-entry until RTI" is a state
// transition rather than an ad hoc flag check.
type nmiState int

const (
	nmiArmed nmiState = iota
	nmiPending
	nmiInService
)

// CPU implements the MOS 6502 microprocessor. Register logic is implemented
// by the types in the registers sub-package; the CPU owns one instance of
// each and never shares them between CPU instances.
type CPU struct {
	config Config

	mem   cpubus.Memory
	table [256]instructions.Definition

	debugger    cpubus.Debugger
	breakpoints cpubus.BreakpointBus

	A  *registers.Register
	X  *registers.Register
	Y  *registers.Register
	SP *registers.StackPointer
	PC *registers.ProgramCounter
	P  registers.StatusRegister

	// Cycles is the observable, monotonically increasing cycle counter.
	// Reset by Reset.
	Cycles uint64

	// LastResult describes the most recently completed instruction or
	// interrupt service.
	LastResult execution.Result

	nmi     nmiState
	prevNMI bool

	// illegal latches once an undecodable or JAM opcode is dispatched. It
	// is only cleared by Reset.
	illegal bool

	cycleCallback func()
}

// NewCPU constructs a CPU bound to mem, with the given construction-time
// Config. The instruction table is built once, per instance, from the
// Config's Undocumented toggle - it is never shared as mutable global state.
func NewCPU(mem cpubus.Memory, config Config) (*CPU, error) {
	if mem == nil {
		return nil, curated.Errorf("cpu: no memory bus given")
	}

	c := &CPU{
		config: config,
		mem:    mem,
		table:  instructions.NewTable(config.Undocumented),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(0xfd),
		PC:     registers.NewProgramCounter(0),
	}

	if d, ok := mem.(cpubus.Debugger); ok {
		c.debugger = d
	}
	if b, ok := mem.(cpubus.BreakpointBus); ok {
		c.breakpoints = b
	}

	logger.Logf(logger.Allow, "cpu", "constructed (undocumented=%t cmos indirect fix=%t)", config.Undocumented, config.CMOSIndirectFix)

	if err := c.Reset(); err != nil {
		return nil, err
	}

	return c, nil
}

// SetCycleCallback registers a function to be invoked once per elapsed
// cycle during Step. Pass nil to remove a previously registered callback.
func (c *CPU) SetCycleCallback(f func()) {
	c.cycleCallback = f
}

// Reset reinitialises the register file, clears the illegal-opcode latch
// and the interrupt sequencer, and loads PC from the reset vector.
func (c *CPU) Reset() error {
	if c.config.RandomizeOnReset {
		c.A.Load(randomByte())
		c.X.Load(randomByte())
		c.Y.Load(randomByte())
	} else {
		c.A.Load(0)
		c.X.Load(0)
		c.Y.Load(0)
	}

	c.SP.Load(0xfd)
	c.P.Reset()
	c.P.InterruptDisable = true

	c.nmi = nmiArmed
	c.prevNMI = c.mem.NMIAsserted()
	c.illegal = false
	c.Cycles = 0
	c.LastResult = execution.Result{}

	vec, err := cpubus.LoadWord(c.mem, cpubus.ResetVector)
	if err != nil {
		return curated.Errorf("cpu: reset: %v", err)
	}
	c.PC.Load(vec)

	logger.Logf(logger.Allow, "cpu", "reset, PC=%#04x", vec)

	return nil
}

// Alive reports whether the CPU has not latched the illegal-opcode/JAM
// condition. Once false, only Reset restores it to true.
func (c *CPU) Alive() bool {
	return !c.illegal
}

// IRQLine sets the level of the host's connection to the /IRQ pin, as
// observed the next time the bus's IRQAsserted() is polled. It forwards the
// level to the Memory implementation's SetIRQ(bool) method (ram.Flat has
// one) and has no effect on a Memory without that method; hosts are free to
// ignore it and answer IRQAsserted() directly.
func (c *CPU) IRQLine(asserted bool) {
	if setter, ok := c.mem.(interface{ SetIRQ(bool) }); ok {
		setter.SetIRQ(asserted)
	}
}

// NMILine sets the level of the host's connection to the /NMI pin. See
// IRQLine for the same caveat about hosts tracking the line themselves.
func (c *CPU) NMILine(asserted bool) {
	if setter, ok := c.mem.(interface{ SetNMI(bool) }); ok {
		setter.SetNMI(asserted)
	}
}

// sampleInterrupts edge-detects the /NMI line and latches a pending service
// request on a low-to-high (asserted) transition, provided no NMI is
// already pending or undergoing service.
func (c *CPU) sampleInterrupts() {
	nmiNow := c.mem.NMIAsserted()
	if nmiNow && !c.prevNMI && c.nmi == nmiArmed {
		c.nmi = nmiPending
	}
	c.prevNMI = nmiNow
}

// serviceInterrupt pushes PC and P (with B forced to brk) and vectors PC
// from vector. Step calls it for hardware NMI and IRQ service, always with
// brk false; the BRK instruction does its own pushes and vector fetch in
// operations.go.
func (c *CPU) serviceInterrupt(vector uint16, brk bool) (execution.Result, error) {
	addr := c.PC.Address()

	if err := c.pushWord(c.PC.Address()); err != nil {
		return execution.Result{}, err
	}

	sr := c.P
	sr.Break = brk
	if err := c.push(sr.Value()); err != nil {
		return execution.Result{}, err
	}

	c.P.InterruptDisable = true

	pc, err := cpubus.LoadWord(c.mem, vector)
	if err != nil {
		return execution.Result{}, err
	}
	c.PC.Load(pc)

	result := execution.Result{
		Address:          addr,
		Cycles:           c.config.InterruptServiceCycles,
		InterruptService: true,
		Final:            true,
	}

	return result, nil
}

// Step executes exactly one instruction, including any interrupt service
// dispatched at the start of the step. It returns whether the CPU is still
// alive.
func (c *CPU) Step() (bool, execution.Result, error) {
	if c.illegal {
		return false, c.LastResult, nil
	}

	c.sampleInterrupts()

	var result execution.Result
	var err error

	switch {
	case c.nmi == nmiPending:
		c.nmi = nmiInService
		result, err = c.serviceInterrupt(cpubus.NMIVector, false)
	case c.mem.IRQAsserted() && !c.P.InterruptDisable:
		result, err = c.serviceInterrupt(cpubus.IRQVector, false)
	default:
		result, err = c.execute()
	}

	if err != nil {
		c.illegal = true
		logger.Logf(logger.Allow, "cpu", "halted: %v", err)
		return false, result, err
	}

	c.Cycles += uint64(result.Cycles)
	c.LastResult = result

	if c.cycleCallback != nil {
		for i := 0; i < result.Cycles; i++ {
			c.cycleCallback()
		}
	}

	return c.Alive(), result, nil
}

// rtiReturn is called by the RTI operation handler to clear the NMI
// in-service inhibit, permitting a further edge to be latched.
func (c *CPU) rtiReturn() {
	if c.nmi == nmiInService {
		c.nmi = nmiArmed
	}
}
