package model_problems

import (
	"errors"
	"fmt"

	"github.com/notargets/gofdm/utils"
)

var (
	// ErrUnsupportedConfiguration reports a field rank or parameter
	// combination with no implemented specialization. Raised before any
	// buffer is allocated.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")

	// ErrInvalidBoundaryWidth reports a boundary width too small for the
	// stencil, which needs one ghost cell on each side.
	ErrInvalidBoundaryWidth = errors.New("invalid boundary width")
)

// NbDefault is the ghost cell width the equation drivers allocate. One cell
// is what the first order upwind and central stencils read past the
// interior.
const NbDefault = 1

// Parameters is the immutable per-run bundle driving one solve.
type Parameters struct {
	NumSteps int       // Number of explicit Euler steps
	Dt       float64   // Time step size, stability is the caller's responsibility
	Dx       []float64 // Grid spacing per axis, length must match the field rank
	Speed    []float64 // Constant wave speed per axis, nil selects the self-advecting form
	Nu       float64   // Diffusivity, used by diffusion and Burgers
	Periodic bool      // Wrap the domain instead of holding the boundary fixed
	BCValue  float64   // Ghost cell value for the fixed value boundary
}

func (p Parameters) bcType() utils.BCType {
	if p.Periodic {
		return utils.BCPeriodic
	}
	return utils.BCDirichlet
}

func (p Parameters) validate(ndim int) (err error) {
	if p.NumSteps < 0 {
		return fmt.Errorf("%w: negative step count %d", ErrUnsupportedConfiguration, p.NumSteps)
	}
	if len(p.Dx) != ndim {
		return fmt.Errorf("%w: %d step lengths for a rank %d field", ErrUnsupportedConfiguration, len(p.Dx), ndim)
	}
	for _, dx := range p.Dx {
		if dx <= 0 {
			return fmt.Errorf("%w: step lengths must be positive, got %v", ErrUnsupportedConfiguration, dx)
		}
	}
	if p.Speed != nil && len(p.Speed) != ndim {
		return fmt.Errorf("%w: %d speed components for a rank %d field", ErrUnsupportedConfiguration, len(p.Speed), ndim)
	}
	return
}

// checkNb validates an override of the default ghost cell width
func checkNb(NbO []int) (Nb int, err error) {
	Nb = NbDefault
	if len(NbO) != 0 {
		Nb = NbO[0]
	}
	if Nb < 1 {
		err = fmt.Errorf("%w: stencils need at least one ghost cell, got %d", ErrInvalidBoundaryWidth, Nb)
	}
	return
}
