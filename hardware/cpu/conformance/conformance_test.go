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

package conformance_test

import (
	"testing"

	"github.com/m65xx/mos6502/hardware/cpu/conformance"
)

var vectors = []conformance.Vector{
	{
		Name:    "LDA immediate",
		Initial: conformance.State{PC: 0x0200, P: 0x24},
		RAM:     map[uint16]uint8{0x0200: 0xa9, 0x0201: 0x42},
		Access: []conformance.Access{
			{Address: 0x0200, Value: 0xa9},
			{Address: 0x0201, Value: 0x42},
		},
		Final: conformance.State{A: 0x42, PC: 0x0202, P: 0x24},
	},
	{
		Name:    "STA absolute",
		Initial: conformance.State{A: 0x77, PC: 0x0200, P: 0x24},
		RAM:     map[uint16]uint8{0x0200: 0x8d, 0x0201: 0x00, 0x0202: 0x03},
		Access: []conformance.Access{
			{Address: 0x0200, Value: 0x8d},
			{Address: 0x0201, Value: 0x00},
			{Address: 0x0202, Value: 0x03},
			{Address: 0x0300, Value: 0x77, Write: true},
		},
		Final: conformance.State{A: 0x77, PC: 0x0203, P: 0x24},
	},
	{
		Name:    "INC zero page wraps to zero",
		Initial: conformance.State{PC: 0x0200, P: 0x24},
		RAM:     map[uint16]uint8{0x0200: 0xe6, 0x0201: 0x10, 0x0010: 0xff},
		Access: []conformance.Access{
			{Address: 0x0200, Value: 0xe6},
			{Address: 0x0201, Value: 0x10},
			{Address: 0x0010, Value: 0xff},
			{Address: 0x0010, Value: 0x00, Write: true},
		},
		Final: conformance.State{PC: 0x0202, P: 0x26},
	},
}

func TestVectors(t *testing.T) {
	for _, v := range vectors {
		t.Run(v.Name, func(t *testing.T) {
			for _, msg := range conformance.Run(v) {
				t.Error(msg)
			}
		})
	}
}
