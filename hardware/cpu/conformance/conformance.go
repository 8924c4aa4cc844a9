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

// Package conformance drives fixed, in-source test vectors through the CPU
// one instruction at a time and checks both the resulting register state
// and the exact sequence of bus accesses the instruction performed. It is
// the same architectural shape as a SingleStepTests-style runner, but the
// vectors are literal Go values rather than an external JSON fixture
// directory.
package conformance

import (
	"fmt"

	"github.com/m65xx/mos6502/hardware/cpu"
	"github.com/m65xx/mos6502/hardware/cpu/registers"
	"github.com/m65xx/mos6502/hardware/memory/cpubus"
	"github.com/m65xx/mos6502/hardware/memory/ram"
)

// Access records one bus transaction, in the order the CPU performed it.
type Access struct {
	Address uint16
	Value   uint8
	Write   bool
}

// State is the subset of CPU state a Vector cares about, before and after
// its instruction runs.
type State struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       uint8
}

// Vector is one hand-authored conformance test: an initial machine state
// plus RAM contents, and the bus accesses and final state a correct
// implementation must produce after exactly one Step.
type Vector struct {
	Name    string
	Initial State
	RAM     map[uint16]uint8
	Access  []Access
	Final   State
}

// recorder wraps a ram.Flat, logging every Read and Write in the order the
// CPU issues them.
type recorder struct {
	*ram.Flat
	log []Access
}

func (r *recorder) Read(address uint16) (uint8, error) {
	v, err := r.Flat.Read(address)
	r.log = append(r.log, Access{Address: address, Value: v, Write: false})
	return v, err
}

func (r *recorder) Write(address uint16, data uint8) error {
	r.log = append(r.log, Access{Address: address, Value: data, Write: true})
	return r.Flat.Write(address, data)
}

// Run constructs a fresh CPU from v's initial state, executes exactly one
// instruction, and reports every way in which the observed behaviour
// diverges from v's expectations. A nil-length return means the vector
// passed.
func Run(v Vector) []string {
	var mismatches []string

	mem := &recorder{Flat: ram.NewFlat(0x00)}
	if err := mem.Load(cpubus.ResetVector, []byte{uint8(v.Initial.PC), uint8(v.Initial.PC >> 8)}); err != nil {
		return []string{fmt.Sprintf("%s: could not set up reset vector: %v", v.Name, err)}
	}
	for addr, val := range v.RAM {
		if err := mem.Write(addr, val); err != nil {
			return []string{fmt.Sprintf("%s: could not set up RAM: %v", v.Name, err)}
		}
	}
	mem.log = nil // the reset-vector setup above must not appear in the trace

	mc, err := cpu.NewCPU(mem, cpu.DefaultConfig())
	if err != nil {
		return []string{fmt.Sprintf("%s: construction failed: %v", v.Name, err)}
	}
	mem.log = nil // nor must Reset's own vector fetch

	mc.A.Load(v.Initial.A)
	mc.X.Load(v.Initial.X)
	mc.Y.Load(v.Initial.Y)
	mc.SP.Load(v.Initial.SP)
	mc.PC.Load(v.Initial.PC)
	var p registers.StatusRegister
	p.FromValue(v.Initial.P)
	mc.P = p

	if _, _, err := mc.Step(); err != nil {
		return []string{fmt.Sprintf("%s: step failed: %v", v.Name, err)}
	}

	if len(mem.log) != len(v.Access) {
		mismatches = append(mismatches, fmt.Sprintf("%s: got %d bus accesses, want %d", v.Name, len(mem.log), len(v.Access)))
	} else {
		for i, got := range mem.log {
			want := v.Access[i]
			if got != want {
				mismatches = append(mismatches, fmt.Sprintf("%s: access %d: got %+v, want %+v", v.Name, i, got, want))
			}
		}
	}

	got := State{A: mc.A.Value(), X: mc.X.Value(), Y: mc.Y.Value(), SP: mc.SP.Value(), PC: mc.PC.Address(), P: mc.P.Value()}
	if got != v.Final {
		mismatches = append(mismatches, fmt.Sprintf("%s: final state: got %+v, want %+v", v.Name, got, v.Final))
	}

	return mismatches
}
