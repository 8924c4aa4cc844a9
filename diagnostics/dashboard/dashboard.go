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

//go:build dashboard
// +build dashboard

// Package dashboard is an optional package that is built only when the
// +dashboard build constraint is present.
//
//	It provides a HTTP server running locally offering a live view of CPU
//	throughput. General runtime statistics are provided by
//	"github.com/go-echarts/statsview"; the cycles/second and
//	instructions/second series are rendered with a dedicated
//	"github.com/go-echarts/go-echarts/v2" line chart, served behind
//	"github.com/rs/cors" so the page can be embedded from a separate origin.
//
//	After launch, graphical statistics will be viewable at:
//
//		localhost:12600/debug/statsview
//
//	And the CPU throughput chart at:
//
//		localhost:12601/debug/throughput
package dashboard

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/rs/cors"

	"github.com/m65xx/mos6502/hardware/cpu"
)

// StatsAddress is where the general runtime statsview is served.
const StatsAddress = "localhost:12600"

// ThroughputAddress is where the CPU throughput chart is served.
const ThroughputAddress = "localhost:12601"

const statsURL = "/debug/statsview"
const throughputURL = "/debug/throughput"

// sample is one point on the throughput line.
type sample struct {
	label string
	cps   float64
	ips   float64
}

// throughput accumulates cycles/second and instructions/second samples
// taken from a CPU instance on a ticker.
type throughput struct {
	c       *cpu.CPU
	samples []sample
}

func (t *throughput) chart() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "6502 throughput"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "sample"}),
	)

	labels := make([]string, len(t.samples))
	cps := make([]opts.LineData, len(t.samples))
	ips := make([]opts.LineData, len(t.samples))
	for i, s := range t.samples {
		labels[i] = s.label
		cps[i] = opts.LineData{Value: s.cps}
		ips[i] = opts.LineData{Value: s.ips}
	}

	line.SetXAxis(labels).
		AddSeries("cycles/sec", cps).
		AddSeries("instructions/sec", ips)

	return line
}

func (t *throughput) serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	_ = t.chart().Render(w)
}

// run polls the CPU's cycle counter once per second, converting successive
// deltas into cycles/second and instructions/second samples. It keeps the
// most recent 60 samples.
func (t *throughput) run(instructions func() uint64) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var lastCycles, lastInstructions uint64
	var tick int

	for range ticker.C {
		cycles := t.c.Cycles
		insns := instructions()

		t.samples = append(t.samples, sample{
			label: fmt.Sprintf("%ds", tick),
			cps:   float64(cycles - lastCycles),
			ips:   float64(insns - lastInstructions),
		})
		if len(t.samples) > 60 {
			t.samples = t.samples[1:]
		}

		lastCycles = cycles
		lastInstructions = insns
		tick++
	}
}

// Launch starts a goroutine running the general runtime statsview, and a
// second goroutine serving a live cycles/second and instructions/second
// chart sampled from mc. instructions should return the number of
// instructions the caller has completed so far; it is polled once a second.
func Launch(output io.Writer, mc *cpu.CPU, instructions func() uint64) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(StatsAddress))
		mgr := statsview.New()
		mgr.Start()
	}()

	t := &throughput{c: mc}
	go t.run(instructions)

	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc(throughputURL, t.serve)
		handler := cors.Default().Handler(mux)
		_ = http.ListenAndServe(ThroughputAddress, handler)
	}()

	output.Write([]byte(fmt.Sprintf("stats server available at %s%s\n", StatsAddress, statsURL)))
	output.Write([]byte(fmt.Sprintf("throughput chart available at %s%s\n", ThroughputAddress, throughputURL)))
}

// Available returns true if a dashboard is available to launch.
func Available() bool {
	return true
}
