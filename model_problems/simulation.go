package model_problems

import (
	"fmt"
	"time"

	"github.com/notargets/gofdm/FD1D"
	"github.com/notargets/gofdm/FD2D"
	"github.com/notargets/gofdm/utils"
)

const logFrequency = 50

// runDriver1D is the interactive loop behind each 1D model problem's Run,
// logging progress and optionally animating the solution against the cell
// index coordinate.
func runDriver1D(g *FD1D.Grid1D, step func(), Nsteps int, showGraph bool, graphDelay ...time.Duration) {
	var (
		chart *utils.LineChart
		delay time.Duration
		W     = g.InteriorWidth()
		X     = utils.Linspace(0, float64(W-1), W)
	)
	if showGraph {
		f := g.Field()
		chart = utils.NewLineChart(1024, 768, 0, float64(W-1), f.Min()-1, f.Max()+1)
		if len(graphDelay) != 0 {
			delay = graphDelay[0]
		}
	}
	for tstep := 0; tstep < Nsteps; tstep++ {
		step()
		if showGraph {
			chart.Plot(delay, X.Data(), g.Field().Data(), 0.7, "U")
		}
		if tstep%logFrequency == 0 {
			f := g.Field()
			fmt.Printf("tstep = %5d, umin = %8.4f, umax = %8.4f\n", tstep, f.Min(), f.Max())
		}
	}
}

// runDriver2D logs progress only. Surface plotting needs a triangulated
// mesh, which a uniform grid run has no reason to build.
func runDriver2D(g *FD2D.Grid2D, step func(), Nsteps int, showGraph bool, graphDelay ...time.Duration) {
	for tstep := 0; tstep < Nsteps; tstep++ {
		step()
		if tstep%logFrequency == 0 {
			f := g.Field()
			fmt.Printf("tstep = %5d, umin = %8.4f, umax = %8.4f\n", tstep, f.Min(), f.Max())
		}
	}
}
