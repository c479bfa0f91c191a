package model_problems

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofdm/FD1D"
	"github.com/notargets/gofdm/FD2D"
	"github.com/notargets/gofdm/utils"
)

// Convection advances the initial field p.NumSteps explicit upwind steps and
// returns a field of the same shape and concrete type. A non-nil p.Speed
// selects linear convection at constant speed, nil selects the
// self-advecting (nonlinear) form. The four specializations are
// {linear, nonlinear} x {utils.Vector, utils.Matrix}; any other field type
// fails with ErrUnsupportedConfiguration before allocation.
func Convection(initial mat.Matrix, p Parameters) (result mat.Matrix, err error) {
	switch f := initial.(type) {
	case utils.Vector:
		var c *Convection1D
		if c, err = NewConvection1D(f, p); err != nil {
			return
		}
		for tstep := 0; tstep < p.NumSteps; tstep++ {
			c.Step()
		}
		result = c.Solution()
	case utils.Matrix:
		var c *Convection2D
		if c, err = NewConvection2D(f, p); err != nil {
			return
		}
		for tstep := 0; tstep < p.NumSteps; tstep++ {
			c.Step()
		}
		result = c.Solution()
	default:
		err = fmt.Errorf("%w: field must be a utils.Vector or utils.Matrix, got %T",
			ErrUnsupportedConfiguration, initial)
	}
	return
}

type Convection1D struct {
	// Input parameters
	P Parameters
	G *FD1D.Grid1D
}

func NewConvection1D(initial utils.Vector, p Parameters, NbO ...int) (c *Convection1D, err error) {
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
	c = &Convection1D{
		P: p,
		G: g,
	}
	return
}

// Step refreshes the ghost cells, then advances the interior one time step
func (c *Convection1D) Step() {
	c.G.UpdateBoundary(c.P.bcType(), c.P.BCValue)
	if c.P.Speed != nil {
		c.G.StepConvection(c.P.Dt, c.P.Dx[0], c.P.Speed[0])
	} else {
		c.G.StepConvectionNL(c.P.Dt, c.P.Dx[0])
	}
}

func (c *Convection1D) Solution() utils.Vector { return c.G.Field() }

func (c *Convection1D) Run(showGraph bool, graphDelay ...time.Duration) {
	runDriver1D(c.G, c.Step, c.P.NumSteps, showGraph, graphDelay...)
}

type Convection2D struct {
	// Input parameters
	P Parameters
	G *FD2D.Grid2D
}

func NewConvection2D(initial utils.Matrix, p Parameters, NbO ...int) (c *Convection2D, err error) {
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
	c = &Convection2D{
		P: p,
		G: g,
	}
	return
}

// Step refreshes the ghost frame, then advances the interior one time step
func (c *Convection2D) Step() {
	c.G.UpdateBoundary(c.P.bcType(), c.P.BCValue)
	if c.P.Speed != nil {
		c.G.StepConvection(c.P.Dt, c.P.Dx[0], c.P.Dx[1], c.P.Speed[0], c.P.Speed[1])
	} else {
		c.G.StepConvectionNL(c.P.Dt, c.P.Dx[0], c.P.Dx[1])
	}
}

func (c *Convection2D) Solution() utils.Matrix { return c.G.Field() }

func (c *Convection2D) Run(showGraph bool, graphDelay ...time.Duration) {
	runDriver2D(c.G, c.Step, c.P.NumSteps, showGraph, graphDelay...)
}
