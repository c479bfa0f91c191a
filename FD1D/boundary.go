package FD1D

import "github.com/notargets/gofdm/utils"

// UpdateBoundary restores the ghost cell invariant for the selected policy.
// Unknown policies fall back to Dirichlet.
func (g *Grid1D) UpdateBoundary(bc utils.BCType, value float64) {
	switch bc {
	case utils.BCPeriodic:
		g.periodic()
	default:
		g.constant(value)
	}
}

func (g *Grid1D) constant(value float64) {
	var (
		u = g.U.Data()
		L = len(u)
	)
	for i := 0; i < g.Nb; i++ {
		u[i] = value
		u[L-1-i] = value
	}
}

// periodic fills each margin from the interior cells one interior width W
// away, so the ghost cells are windows onto the adjacent periodic tile.
// When Nb exceeds half the extent the source ranges overlap cells written
// earlier in the same pass; the fixed iteration order keeps the result
// deterministic.
func (g *Grid1D) periodic() {
	var (
		u = g.U.Data()
		L = len(u)
		W = L - 2*g.Nb
	)
	for i := 0; i < g.Nb; i++ {
		u[i] = u[i+W]
		u[L-1-i] = u[L-1-i-W]
	}
}
