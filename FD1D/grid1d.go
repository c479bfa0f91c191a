package FD1D

import (
	"fmt"

	"github.com/notargets/gofdm/utils"
)

// Grid1D embeds a rank-1 field in a working array padded with Nb ghost cells
// on each side. The interior range [Nb, len-Nb) is the physical field; the
// ghost cells carry the boundary condition and are rewritten by
// UpdateBoundary before every time step.
type Grid1D struct {
	U  utils.Vector // Working array, interior plus ghost cells
	Nb int          // Ghost cell width on each side
}

func NewGrid1D(f utils.Vector, Nb int) (g *Grid1D, err error) {
	if Nb < 0 {
		err = fmt.Errorf("invalid boundary width %d", Nb)
		return
	}
	g = &Grid1D{
		U:  utils.NewVector(f.Len() + 2*Nb),
		Nb: Nb,
	}
	copy(g.U.Data()[Nb:Nb+f.Len()], f.Data())
	return
}

// InteriorWidth returns the number of physical cells
func (g *Grid1D) InteriorWidth() int { return g.U.Len() - 2*g.Nb }

// Field copies the interior back out, shaped like the field the grid was
// allocated from
func (g *Grid1D) Field() (f utils.Vector) {
	var (
		W = g.InteriorWidth()
	)
	f = utils.NewVector(W)
	copy(f.Data(), g.U.Data()[g.Nb:g.Nb+W])
	return
}

// UniformGrid1D produces the cell coordinates of a uniform grid covering
// [xmin, xmax] with N points, and the grid spacing
func UniformGrid1D(xmin, xmax float64, N int) (X utils.Vector, dx float64) {
	X = utils.Linspace(xmin, xmax, N)
	dx = (xmax - xmin) / float64(N-1)
	return
}
