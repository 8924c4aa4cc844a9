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

package instructions_test

import (
	"testing"

	"github.com/m65xx/mos6502/hardware/cpu/instructions"
	"github.com/m65xx/mos6502/test"
)

func TestNewTable_officialOnly(t *testing.T) {
	table := instructions.NewTable(false)

	var decoded, undocumented int
	for opcode, defn := range table {
		if defn.Mnemonic == "" {
			continue
		}
		decoded++
		if defn.Undocumented {
			undocumented++
		}
		if int(defn.OpCode) != opcode {
			t.Errorf("table[%#02x] has mismatched OpCode field %#02x", opcode, defn.OpCode)
		}
	}

	test.Equate(t, decoded, 151)
	test.Equate(t, undocumented, 0)
}

func TestNewTable_undocumented(t *testing.T) {
	table := instructions.NewTable(true)

	var decoded int
	for _, defn := range table {
		if defn.Mnemonic == "" {
			continue
		}
		decoded++
	}
	test.Equate(t, decoded, 256)

	var jam int
	for _, defn := range table {
		if defn.JAM {
			jam++
		}
	}
	test.Equate(t, jam, 12)
}

func TestNewTable_isBranchOnlyMatchesRelativeFlowOpcodes(t *testing.T) {
	table := instructions.NewTable(false)

	branches := map[string]bool{
		"BCC": true, "BCS": true, "BEQ": true, "BNE": true,
		"BMI": true, "BPL": true, "BVC": true, "BVS": true,
	}

	for _, defn := range table {
		if defn.Mnemonic == "" {
			continue
		}
		if defn.IsBranch() != branches[defn.Mnemonic] {
			t.Errorf("IsBranch() disagrees with mnemonic table for %s", defn.Mnemonic)
		}
	}
}

func TestNewTable_accumulatorModeOpcodesHaveOneByte(t *testing.T) {
	table := instructions.NewTable(false)

	for opcode, defn := range table {
		if defn.AddressingMode == instructions.Accumulator {
			if defn.Bytes != 1 {
				t.Errorf("accumulator-mode opcode %#02x (%s) has Bytes=%d, want 1", opcode, defn.Mnemonic, defn.Bytes)
			}
		}
	}
}
