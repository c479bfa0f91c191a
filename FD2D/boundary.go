package FD2D

import "github.com/notargets/gofdm/utils"

// UpdateBoundary restores the ghost frame invariant for the selected policy.
// Unknown policies fall back to Dirichlet.
func (g *Grid2D) UpdateBoundary(bc utils.BCType, value float64) {
	switch bc {
	case utils.BCPeriodic:
		g.periodic()
	default:
		g.constant(value)
	}
}

// constant stamps the fixed value into the full row slabs on top and bottom
// and the full column slabs on left and right. Each pass covers the corner
// cells, the column pass rewrites corners already set by the row pass with
// the same value.
func (g *Grid2D) constant(value float64) {
	var (
		nr, nc = g.U.Dims()
		u      = g.U.Data()
	)
	for i := 0; i < g.Nb; i++ {
		for j := 0; j < nc; j++ {
			u[i*nc+j] = value
			u[(nr-1-i)*nc+j] = value
		}
	}
	for j := 0; j < g.Nb; j++ {
		for i := 0; i < nr; i++ {
			u[i*nc+j] = value
			u[i*nc+(nc-1-j)] = value
		}
	}
}

// periodic tiles the interior across the ghost frame. The frame splits into
// the nine regions (xr, yr) in {-1,0,1}^2; every margin and corner region is
// a window onto the interior shifted by one interior width per wrapped axis.
// The (0,0) region is the interior itself and is skipped. Source ranges lie
// inside the interior, so region order does not matter.
func (g *Grid2D) periodic() {
	var (
		nr, nc = g.U.Dims()
		Wx     = nr - 2*g.Nb
		Wy     = nc - 2*g.Nb
		u      = g.U.Data()
	)
	for xr := -1; xr <= 1; xr++ {
		x0 := g.Nb + max(xr*Wx, -g.Nb)
		x1 := g.Nb + min((xr+1)*Wx, Wx+g.Nb)
		for yr := -1; yr <= 1; yr++ {
			if xr == 0 && yr == 0 {
				continue
			}
			y0 := g.Nb + max(yr*Wy, -g.Nb)
			y1 := g.Nb + min((yr+1)*Wy, Wy+g.Nb)
			for i := x0; i < x1; i++ {
				for j := y0; j < y1; j++ {
					u[i*nc+j] = u[(i-xr*Wx)*nc+(j-yr*Wy)]
				}
			}
		}
	}
}
