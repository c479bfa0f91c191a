package FD2D

/*
Explicit Euler steppers over the grid interior, dimensional splitting of the
1D stencils: the upwind backward difference is applied independently along
each axis and the two contributions summed, with per-axis spacing and, for
linear convection, per-axis speed.

Every stepper reads from a snapshot of the previous field, see the FD1D
package note on the in-place aliasing hazard. Nb >= 1 is a precondition.
*/

// StepConvection advances linear convection at constant speed (ax, ay)
func (g *Grid2D) StepConvection(dt, dx, dy, ax, ay float64) {
	var (
		nr, nc = g.U.Dims()
		u      = g.U.Data()
		uOld   = g.U.Copy().Data()
		lamX   = ax * dt / dx
		lamY   = ay * dt / dy
	)
	for i := g.Nb; i < nr-g.Nb; i++ {
		for j := g.Nb; j < nc-g.Nb; j++ {
			u[i*nc+j] = uOld[i*nc+j] -
				lamX*(uOld[i*nc+j]-uOld[(i-1)*nc+j]) -
				lamY*(uOld[i*nc+j]-uOld[i*nc+(j-1)])
		}
	}
}

// StepConvectionNL advances the self-advecting form, the local field value
// replaces the constant wave speed on both axes
func (g *Grid2D) StepConvectionNL(dt, dx, dy float64) {
	var (
		nr, nc = g.U.Dims()
		u      = g.U.Data()
		uOld   = g.U.Copy().Data()
		lamX   = dt / dx
		lamY   = dt / dy
	)
	for i := g.Nb; i < nr-g.Nb; i++ {
		for j := g.Nb; j < nc-g.Nb; j++ {
			uc := uOld[i*nc+j]
			u[i*nc+j] = uc -
				uc*lamX*(uc-uOld[(i-1)*nc+j]) -
				uc*lamY*(uc-uOld[i*nc+(j-1)])
		}
	}
}

// StepDiffusion advances the heat equation with diffusivity nu
func (g *Grid2D) StepDiffusion(dt, dx, dy, nu float64) {
	var (
		nr, nc = g.U.Dims()
		u      = g.U.Data()
		uOld   = g.U.Copy().Data()
		lamX   = nu * dt / (dx * dx)
		lamY   = nu * dt / (dy * dy)
	)
	for i := g.Nb; i < nr-g.Nb; i++ {
		for j := g.Nb; j < nc-g.Nb; j++ {
			uc := uOld[i*nc+j]
			u[i*nc+j] = uc +
				lamX*(uOld[(i+1)*nc+j]-2*uc+uOld[(i-1)*nc+j]) +
				lamY*(uOld[i*nc+(j+1)]-2*uc+uOld[i*nc+(j-1)])
		}
	}
}

// StepBurgers advances viscous Burgers, self-advection plus diffusion
func (g *Grid2D) StepBurgers(dt, dx, dy, nu float64) {
	var (
		nr, nc = g.U.Dims()
		u      = g.U.Data()
		uOld   = g.U.Copy().Data()
		lamCX  = dt / dx
		lamCY  = dt / dy
		lamDX  = nu * dt / (dx * dx)
		lamDY  = nu * dt / (dy * dy)
	)
	for i := g.Nb; i < nr-g.Nb; i++ {
		for j := g.Nb; j < nc-g.Nb; j++ {
			uc := uOld[i*nc+j]
			u[i*nc+j] = uc -
				uc*lamCX*(uc-uOld[(i-1)*nc+j]) -
				uc*lamCY*(uc-uOld[i*nc+(j-1)]) +
				lamDX*(uOld[(i+1)*nc+j]-2*uc+uOld[(i-1)*nc+j]) +
				lamDY*(uOld[i*nc+(j+1)]-2*uc+uOld[i*nc+(j-1)])
		}
	}
}
