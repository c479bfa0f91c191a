package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	// Copy does not alias the source
	{
		v := NewVector(3, []float64{1, 2, 3})
		c := v.Copy()
		c.Set(0, 99)
		assert.Equal(t, []float64{1, 2, 3}, v.Data())
		assert.Equal(t, []float64{99, 2, 3}, c.Data())
	}
	// Chainable Scale / AddScalar / Apply
	{
		v := NewVector(3, []float64{1, 2, 3}).Scale(2).AddScalar(1)
		assert.Equal(t, []float64{3, 5, 7}, v.Data())
		v.Apply(func(x float64) float64 { return -x })
		assert.Equal(t, []float64{-3, -5, -7}, v.Data())
	}
	// Min / Max / Sum
	{
		v := NewVector(4, []float64{3, -1, 7, 2})
		assert.Equal(t, -1., v.Min())
		assert.Equal(t, 7., v.Max())
		assert.Equal(t, 11., v.Sum())
	}
	// Linspace endpoints and spacing
	{
		x := Linspace(0, 2, 5)
		assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, x.Data())
	}
	// Allocation mismatch panics
	{
		assert.Panics(t, func() { NewVector(2, []float64{1, 2, 3}) })
	}
}
