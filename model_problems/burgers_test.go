package model_problems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofdm/utils"
)

func TestBurgersDispatch(t *testing.T) {
	// With nu = 0 Burgers matches the nonlinear convection branch
	{
		f := utils.NewVector(6, []float64{1, 2, 3, 3, 2, 1})
		pB := Parameters{NumSteps: 5, Dt: 0.05, Dx: []float64{1}, Periodic: true}
		outB, err := Burgers(f, pB)
		assert.NoError(t, err)
		outC, err := Convection(f, pB)
		assert.NoError(t, err)
		assert.Equal(t, outC.(utils.Vector).Data(), outB.(utils.Vector).Data())
	}
	// Viscosity flattens the profile relative to the inviscid run
	{
		f := utils.NewVector(8, []float64{1, 1, 2, 3, 3, 2, 1, 1})
		pVisc := Parameters{NumSteps: 10, Dt: 0.05, Dx: []float64{1}, Nu: 0.5, Periodic: true}
		pInv := Parameters{NumSteps: 10, Dt: 0.05, Dx: []float64{1}, Periodic: true}
		outVisc, err := Burgers(f, pVisc)
		assert.NoError(t, err)
		outInv, err := Burgers(f, pInv)
		assert.NoError(t, err)
		assert.Less(t, outVisc.(utils.Vector).Max(), outInv.(utils.Vector).Max())
	}
	// Shape preservation in 2D
	{
		f := utils.NewMatrixConst(4, 5, 1)
		out, err := Burgers(f, Parameters{NumSteps: 3, Dt: 0.05, Dx: []float64{1, 1}, Nu: 0.1})
		assert.NoError(t, err)
		nr, nc := out.(utils.Matrix).Dims()
		assert.Equal(t, 4, nr)
		assert.Equal(t, 5, nc)
	}
	// Burgers is self-advecting, a wave speed is a configuration error
	{
		f := utils.NewVector(5, []float64{1, 2, 3, 2, 1})
		_, err := Burgers(f, Parameters{NumSteps: 1, Dt: 0.05, Dx: []float64{1}, Speed: []float64{1}})
		assert.ErrorIs(t, err, ErrUnsupportedConfiguration)
	}
}
