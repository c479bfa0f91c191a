package FD2D

import (
	"fmt"

	"github.com/notargets/gofdm/utils"
)

// Grid2D embeds a rank-2 field in a working array padded with Nb ghost cells
// on every side of both axes. The interior block [Nb, nr-Nb) x [Nb, nc-Nb)
// is the physical field; the ghost frame carries the boundary condition and
// is rewritten by UpdateBoundary before every time step.
type Grid2D struct {
	U  utils.Matrix // Working array, interior plus ghost frame
	Nb int          // Ghost cell width on each side of each axis
}

func NewGrid2D(f utils.Matrix, Nb int) (g *Grid2D, err error) {
	if Nb < 0 {
		err = fmt.Errorf("invalid boundary width %d", Nb)
		return
	}
	var (
		nr, nc = f.Dims()
	)
	g = &Grid2D{
		U:  utils.NewMatrix(nr+2*Nb, nc+2*Nb),
		Nb: Nb,
	}
	var (
		u     = g.U.Data()
		uf    = f.Data()
		ncPad = nc + 2*Nb
	)
	for i := 0; i < nr; i++ {
		copy(u[(i+Nb)*ncPad+Nb:(i+Nb)*ncPad+Nb+nc], uf[i*nc:(i+1)*nc])
	}
	return
}

// InteriorWidths returns the physical cell counts per axis
func (g *Grid2D) InteriorWidths() (Wx, Wy int) {
	nr, nc := g.U.Dims()
	return nr - 2*g.Nb, nc - 2*g.Nb
}

// Field copies the interior back out, shaped like the field the grid was
// allocated from
func (g *Grid2D) Field() (f utils.Matrix) {
	var (
		Wx, Wy = g.InteriorWidths()
		_, nc  = g.U.Dims()
		u      = g.U.Data()
	)
	f = utils.NewMatrix(Wx, Wy)
	for i := 0; i < Wx; i++ {
		copy(f.Data()[i*Wy:(i+1)*Wy], u[(i+g.Nb)*nc+g.Nb:(i+g.Nb)*nc+g.Nb+Wy])
	}
	return
}
