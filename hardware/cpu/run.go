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
	"context"

	"github.com/m65xx/mos6502/curated"
)

// BudgetMethod selects how Run interprets its budget argument.
type BudgetMethod int

const (
	// CycleCount treats the budget as a number of cycles.
	CycleCount BudgetMethod = iota

	// InstructionCount treats the budget as a number of completed
	// instructions (interrupt service steps do not count as instructions).
	InstructionCount
)

// Run executes instructions until budget is exhausted, the illegal-opcode
// latch is set, or ctx is cancelled. It returns the number of cycles and
// instructions actually executed.
func (c *CPU) Run(ctx context.Context, budget int, method BudgetMethod) (cycles int, instructions int, err error) {
	for {
		select {
		case <-ctx.Done():
			return cycles, instructions, ctx.Err()
		default:
		}

		alive, result, stepErr := c.Step()
		if stepErr != nil {
			return cycles, instructions, curated.Errorf("cpu: run: %v", stepErr)
		}

		cycles += result.Cycles
		if !result.InterruptService {
			instructions++
		}

		if !alive {
			return cycles, instructions, nil
		}

		switch method {
		case CycleCount:
			if cycles >= budget {
				return cycles, instructions, nil
			}
		case InstructionCount:
			if instructions >= budget {
				return cycles, instructions, nil
			}
		}
	}
}

// RunEternally executes instructions until the illegal-opcode latch is set,
// the supplied powerOff function reports true (checked once per instruction
// boundary), or ctx is cancelled.
func (c *CPU) RunEternally(ctx context.Context, powerOff func() bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		alive, _, err := c.Step()
		if err != nil {
			return curated.Errorf("cpu: run eternally: %v", err)
		}
		if !alive {
			return nil
		}
		if powerOff != nil && powerOff() {
			return nil
		}
	}
}
