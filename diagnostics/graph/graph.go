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

// Package graph renders a Graphviz dot representation of a CPU instance's
// live memory graph - the register file, the interrupt sequencer state, and
// the 256-entry instruction dispatch table - for documentation and for
// spotting dispatch-table gaps at a glance. It has no effect on emulation
// and is entirely optional; nothing in the cpu package depends on it.
package graph

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/m65xx/mos6502/hardware/cpu"
	"github.com/m65xx/mos6502/hardware/cpu/instructions"
)

// Dump writes a dot-format rendering of c's current state to w. The output
// is suitable for piping through the "dot" command line tool to produce an
// image.
func Dump(w io.Writer, c *cpu.CPU) error {
	memviz.Map(w, c)
	return nil
}

// DumpTable writes a dot-format rendering of an instruction dispatch table
// to w, useful for comparing the official-only and undocumented-enabled
// tables side by side.
func DumpTable(w io.Writer, table *[256]instructions.Definition) error {
	memviz.Map(w, table)
	return nil
}
