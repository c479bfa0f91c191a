package model_problems

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofdm/FD1D"
	"github.com/notargets/gofdm/FD2D"
	"github.com/notargets/gofdm/utils"
)

// Diffusion advances the heat equation with diffusivity p.Nu using the
// explicit central second difference, on the same grid and boundary
// infrastructure as convection. p.Speed must be nil.
func Diffusion(initial mat.Matrix, p Parameters) (result mat.Matrix, err error) {
	if p.Speed != nil {
		err = fmt.Errorf("%w: diffusion takes no wave speed", ErrUnsupportedConfiguration)
		return
	}
	switch f := initial.(type) {
	case utils.Vector:
		var d *Diffusion1D
		if d, err = NewDiffusion1D(f, p); err != nil {
			return
		}
		for tstep := 0; tstep < p.NumSteps; tstep++ {
			d.Step()
		}
		result = d.Solution()
	case utils.Matrix:
		var d *Diffusion2D
		if d, err = NewDiffusion2D(f, p); err != nil {
			return
		}
		for tstep := 0; tstep < p.NumSteps; tstep++ {
			d.Step()
		}
		result = d.Solution()
	default:
		err = fmt.Errorf("%w: field must be a utils.Vector or utils.Matrix, got %T",
			ErrUnsupportedConfiguration, initial)
	}
	return
}

type Diffusion1D struct {
	P Parameters
	G *FD1D.Grid1D
}

func NewDiffusion1D(initial utils.Vector, p Parameters, NbO ...int) (d *Diffusion1D, err error) {
	var (
		Nb int
		g  *FD1D.Grid1D
	)
	if err = p.validate(1); err != nil {
		return
	}
	if Nb, err = checkNb(NbO); err != nil {
		return
	}
	if g, err = FD1D.NewGrid1D(initial, Nb); err != nil {
		return
	}
	d = &Diffusion1D{
		P: p,
		G: g,
	}
	return
}

func (d *Diffusion1D) Step() {
	d.G.UpdateBoundary(d.P.bcType(), d.P.BCValue)
	d.G.StepDiffusion(d.P.Dt, d.P.Dx[0], d.P.Nu)
}

func (d *Diffusion1D) Solution() utils.Vector { return d.G.Field() }

func (d *Diffusion1D) Run(showGraph bool, graphDelay ...time.Duration) {
	runDriver1D(d.G, d.Step, d.P.NumSteps, showGraph, graphDelay...)
}

type Diffusion2D struct {
	P Parameters
	G *FD2D.Grid2D
}

func NewDiffusion2D(initial utils.Matrix, p Parameters, NbO ...int) (d *Diffusion2D, err error) {
	var (
		Nb int
		g  *FD2D.Grid2D
	)
	if err = p.validate(2); err != nil {
		return
	}
	if Nb, err = checkNb(NbO); err != nil {
		return
	}
	if g, err = FD2D.NewGrid2D(initial, Nb); err != nil {
		return
	}
	d = &Diffusion2D{
		P: p,
		G: g,
	}
	return
}

func (d *Diffusion2D) Step() {
	d.G.UpdateBoundary(d.P.bcType(), d.P.BCValue)
	d.G.StepDiffusion(d.P.Dt, d.P.Dx[0], d.P.Dx[1], d.P.Nu)
}

func (d *Diffusion2D) Solution() utils.Matrix { return d.G.Field() }

func (d *Diffusion2D) Run(showGraph bool, graphDelay ...time.Duration) {
	runDriver2D(d.G, d.Step, d.P.NumSteps, showGraph, graphDelay...)
}
