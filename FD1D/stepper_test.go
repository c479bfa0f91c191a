package FD1D

import (
	"testing"

	"github.com/james-bowman/sparse"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofdm/utils"
)

func TestStepConvection(t *testing.T) {
	// A unit spike advecting right at speed 1 with dt/dx = 0.5 splits
	// between its cell and the next one
	{
		f := utils.NewVector(5, []float64{0, 0, 1, 0, 0})
		g, _ := NewGrid1D(f, 1)
		g.UpdateBoundary(utils.BCDirichlet, 0)
		g.StepConvection(0.5, 1, 1)
		assert.Equal(t, []float64{0, 0, 0.5, 0.5, 0}, g.Field().Data())
	}
	// The stencil must read pre-step values: an in-place left to right
	// update would give 0.25 in the cell right of the spike
	{
		f := utils.NewVector(5, []float64{0, 0, 1, 0, 0})
		g, _ := NewGrid1D(f, 1)
		g.UpdateBoundary(utils.BCDirichlet, 0)
		g.StepConvection(0.5, 1, 1)
		assert.Equal(t, 0.5, g.Field().AtVec(3))
	}
	// Zero speed leaves the field alone
	{
		f := utils.NewVector(4, []float64{1, 2, 3, 4})
		g, _ := NewGrid1D(f, 1)
		g.UpdateBoundary(utils.BCDirichlet, 0)
		g.StepConvection(0.5, 1, 0)
		assert.Equal(t, f.Data(), g.Field().Data())
	}
}

func TestPeriodicMassConservation(t *testing.T) {
	var (
		f = utils.NewVector(8, []float64{1, 1, 2, 3, 2, 1, 1, 1})
	)
	g, _ := NewGrid1D(f, 1)
	mass := g.Field().Sum()
	for tstep := 0; tstep < 50; tstep++ {
		g.UpdateBoundary(utils.BCPeriodic, 0)
		g.StepConvection(0.4, 1, 1)
	}
	// Upwind periodic advection conserves total mass discretely
	assert.InDelta(t, mass, g.Field().Sum(), 1.e-10)
}

// One periodic upwind step is multiplication of the interior by the
// circulant matrix (1-lam) I + lam S, S the cyclic left neighbor shift.
// Cross-check the stepper against the assembled sparse operator.
func TestStepConvectionAgainstSparseOperator(t *testing.T) {
	var (
		W   = 8
		lam = 0.3 // a*dt/dx
		f   = utils.NewVector(W, []float64{1, 4, 2, 8, 5, 7, 1, 3})
	)
	A := sparse.NewDOK(W, W)
	for i := 0; i < W; i++ {
		A.Set(i, i, 1-lam)
		A.Set(i, (i-1+W)%W, lam)
	}
	var want mat.VecDense
	want.MulVec(A.ToCSR(), mat.NewVecDense(W, f.Copy().Data()))

	g, _ := NewGrid1D(f, 1)
	g.UpdateBoundary(utils.BCPeriodic, 0)
	g.StepConvection(0.3, 1, 1)
	got := g.Field()
	for i := 0; i < W; i++ {
		assert.InDelta(t, want.AtVec(i), got.AtVec(i), utils.NODETOL)
	}
}

func TestStepConvectionNL(t *testing.T) {
	// The local value is the wave speed, so a non-constant field diverges
	// from the linear speed-1 result after one step
	{
		f := utils.NewVector(5, []float64{1, 2, 3, 2, 1})
		gLin, _ := NewGrid1D(f, 1)
		gNL, _ := NewGrid1D(f, 1)
		gLin.UpdateBoundary(utils.BCPeriodic, 0)
		gNL.UpdateBoundary(utils.BCPeriodic, 0)
		gLin.StepConvection(0.1, 1, 1)
		gNL.StepConvectionNL(0.1, 1)
		assert.NotEqual(t, gLin.Field().Data(), gNL.Field().Data())
	}
	// Hand check: u = [1, 2] periodic, dt/dx = 0.1
	// u0 <- 1 - 1*0.1*(1-2) = 1.1, u1 <- 2 - 2*0.1*(2-1) = 1.8
	{
		f := utils.NewVector(2, []float64{1, 2})
		g, _ := NewGrid1D(f, 1)
		g.UpdateBoundary(utils.BCPeriodic, 0)
		g.StepConvectionNL(0.1, 1)
		got := g.Field()
		assert.InDelta(t, 1.1, got.AtVec(0), utils.NODETOL)
		assert.InDelta(t, 1.8, got.AtVec(1), utils.NODETOL)
	}
	// A constant field self-advects without change
	{
		f := utils.NewVectorConst(5, 3)
		g, _ := NewGrid1D(f, 1)
		g.UpdateBoundary(utils.BCPeriodic, 0)
		g.StepConvectionNL(0.1, 1)
		assert.Equal(t, f.Data(), g.Field().Data())
	}
}

func TestStepDiffusion(t *testing.T) {
	// A point pulse spreads symmetrically
	{
		f := utils.NewVector(5, []float64{0, 0, 1, 0, 0})
		g, _ := NewGrid1D(f, 1)
		g.UpdateBoundary(utils.BCDirichlet, 0)
		g.StepDiffusion(0.1, 1, 1) // lam = 0.1
		got := g.Field()
		assert.InDelta(t, 0.1, got.AtVec(1), utils.NODETOL)
		assert.InDelta(t, 0.8, got.AtVec(2), utils.NODETOL)
		assert.InDelta(t, 0.1, got.AtVec(3), utils.NODETOL)
		assert.Equal(t, got.AtVec(1), got.AtVec(3))
	}
	// A uniform field is a steady state
	{
		f := utils.NewVectorConst(6, 4)
		g, _ := NewGrid1D(f, 1)
		for tstep := 0; tstep < 10; tstep++ {
			g.UpdateBoundary(utils.BCPeriodic, 0)
			g.StepDiffusion(0.1, 1, 1)
		}
		assert.Equal(t, f.Data(), g.Field().Data())
	}
}

func TestStepBurgers(t *testing.T) {
	// With nu = 0 Burgers reduces to nonlinear convection
	{
		f := utils.NewVector(5, []float64{1, 2, 3, 2, 1})
		gB, _ := NewGrid1D(f, 1)
		gNL, _ := NewGrid1D(f, 1)
		gB.UpdateBoundary(utils.BCPeriodic, 0)
		gNL.UpdateBoundary(utils.BCPeriodic, 0)
		gB.StepBurgers(0.1, 1, 0)
		gNL.StepConvectionNL(0.1, 1)
		assert.Equal(t, gNL.Field().Data(), gB.Field().Data())
	}
	// Viscosity damps the peak relative to the inviscid step
	{
		f := utils.NewVector(5, []float64{1, 2, 3, 2, 1})
		gB, _ := NewGrid1D(f, 1)
		gNL, _ := NewGrid1D(f, 1)
		gB.UpdateBoundary(utils.BCPeriodic, 0)
		gNL.UpdateBoundary(utils.BCPeriodic, 0)
		gB.StepBurgers(0.1, 1, 0.5)
		gNL.StepConvectionNL(0.1, 1)
		assert.Less(t, gB.Field().Max(), gNL.Field().Max())
	}
}
