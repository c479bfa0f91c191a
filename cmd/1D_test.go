package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofdm/InputParameters"
)

func TestParseInputConditions(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
Equation: Convection
N: [41, 41]
NumSteps: 80
Dt: 0.0025
Dx: [0.05, 0.05]
Speed: [1., 1.]
BCType: Periodic
BCValue: 1.
InitType: SquareWave
`)
	var input InputParameters.SimParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, "Convection", input.Equation)
	assert.Equal(t, []int{41, 41}, input.N)
	assert.Equal(t, 80, input.NumSteps)
	assert.Equal(t, 0.0025, input.Dt)
	assert.Equal(t, []float64{0.05, 0.05}, input.Dx)
	assert.Equal(t, []float64{1, 1}, input.Speed)
	assert.Equal(t, "Periodic", input.BCType)
	input.Print()
	// Speed omitted selects the self-advecting form downstream
	var nlInput InputParameters.SimParameters
	err = nlInput.Parse([]byte("Equation: Burgers\nNu: 0.07"))
	assert.NoError(t, err)
	assert.Nil(t, nlInput.Speed)
	assert.Equal(t, 0.07, nlInput.Nu)
}

func TestInitialConditions(t *testing.T) {
	// The square wave hat covers the middle quarter of the domain
	{
		U := InitialCondition1D("SquareWave", 41, 2.0)
		assert.Equal(t, 41, U.Len())
		assert.Equal(t, 1., U.AtVec(0))
		assert.Equal(t, 2., U.AtVec(15)) // x = 0.75
		assert.Equal(t, 1., U.AtVec(40))
	}
	// The sine profile stays positive for stable nonlinear runs
	{
		U := InitialCondition1D("Sine", 81, 2.0)
		assert.Greater(t, U.Min(), 0.)
		assert.InDelta(t, 1., U.AtVec(0), 1.e-12)
	}
	{
		U := InitialCondition2D("SquareWave", 21, 21, 0.1, 0.1)
		nr, nc := U.Dims()
		assert.Equal(t, 21, nr)
		assert.Equal(t, 21, nc)
		assert.Equal(t, 2., U.At(7, 7))  // (0.7, 0.7) inside the hat
		assert.Equal(t, 1., U.At(0, 0))
		assert.Equal(t, 1., U.At(15, 7)) // x = 1.5 outside
	}
}

func TestDefaults1D(t *testing.T) {
	N, NumSteps, Dt, Nu := Defaults1D(M_1DDiffusion)
	assert.Equal(t, 41, N)
	assert.Equal(t, 20, NumSteps)
	assert.Greater(t, Dt, 0.)
	assert.Greater(t, Nu, 0.)
}
