package model_problems

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofdm/FD1D"
	"github.com/notargets/gofdm/FD2D"
	"github.com/notargets/gofdm/utils"
)

// Burgers advances viscous Burgers, upwind self-advection plus central
// diffusion with diffusivity p.Nu. The transported quantity is its own wave
// speed, so p.Speed must be nil.
func Burgers(initial mat.Matrix, p Parameters) (result mat.Matrix, err error) {
	if p.Speed != nil {
		err = fmt.Errorf("%w: Burgers is self-advecting, no wave speed applies", ErrUnsupportedConfiguration)
		return
	}
	switch f := initial.(type) {
	case utils.Vector:
		var b *Burgers1D
		if b, err = NewBurgers1D(f, p); err != nil {
			return
		}
		for tstep := 0; tstep < p.NumSteps; tstep++ {
			b.Step()
		}
		result = b.Solution()
	case utils.Matrix:
		var b *Burgers2D
		if b, err = NewBurgers2D(f, p); err != nil {
			return
		}
		for tstep := 0; tstep < p.NumSteps; tstep++ {
			b.Step()
		}
		result = b.Solution()
	default:
		err = fmt.Errorf("%w: field must be a utils.Vector or utils.Matrix, got %T",
			ErrUnsupportedConfiguration, initial)
	}
	return
}

type Burgers1D struct {
	P Parameters
	G *FD1D.Grid1D
}

func NewBurgers1D(initial utils.Vector, p Parameters, NbO ...int) (b *Burgers1D, err error) {
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
	b = &Burgers1D{
		P: p,
		G: g,
	}
	return
}

func (b *Burgers1D) Step() {
	b.G.UpdateBoundary(b.P.bcType(), b.P.BCValue)
	b.G.StepBurgers(b.P.Dt, b.P.Dx[0], b.P.Nu)
}

func (b *Burgers1D) Solution() utils.Vector { return b.G.Field() }

func (b *Burgers1D) Run(showGraph bool, graphDelay ...time.Duration) {
	runDriver1D(b.G, b.Step, b.P.NumSteps, showGraph, graphDelay...)
}

type Burgers2D struct {
	P Parameters
	G *FD2D.Grid2D
}

func NewBurgers2D(initial utils.Matrix, p Parameters, NbO ...int) (b *Burgers2D, err error) {
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
	b = &Burgers2D{
		P: p,
		G: g,
	}
	return
}

func (b *Burgers2D) Step() {
	b.G.UpdateBoundary(b.P.bcType(), b.P.BCValue)
	b.G.StepBurgers(b.P.Dt, b.P.Dx[0], b.P.Dx[1], b.P.Nu)
}

func (b *Burgers2D) Solution() utils.Matrix { return b.G.Field() }

func (b *Burgers2D) Run(showGraph bool, graphDelay ...time.Duration) {
	runDriver2D(b.G, b.Step, b.P.NumSteps, showGraph, graphDelay...)
}
