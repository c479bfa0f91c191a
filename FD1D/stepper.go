package FD1D

/*
Explicit Euler steppers over the grid interior. Convection uses a first order
upwind (backward) difference:

	u_new(i) = u_old(i) - c * (dt/dx) * (u_old(i) - u_old(i-1))

with c the constant wave speed for the linear form and u_old(i) itself for
the self-advecting form. Diffusion uses the central second difference.

Every stepper reads from a snapshot of the previous field: updating the
working array left to right in place would feed a freshly written value into
the next cell's stencil. Nb >= 1 is a precondition, the backward difference
at the first interior cell reads one ghost cell.
*/

// StepConvection advances linear convection at constant speed a
func (g *Grid1D) StepConvection(dt, dx, a float64) {
	var (
		u    = g.U.Data()
		uOld = g.U.Copy().Data()
		lam  = a * dt / dx
	)
	for i := g.Nb; i < len(u)-g.Nb; i++ {
		u[i] = uOld[i] - lam*(uOld[i]-uOld[i-1])
	}
}

// StepConvectionNL advances the self-advecting (inviscid Burgers convection)
// form, the local field value replaces the constant wave speed
func (g *Grid1D) StepConvectionNL(dt, dx float64) {
	var (
		u    = g.U.Data()
		uOld = g.U.Copy().Data()
		lam  = dt / dx
	)
	for i := g.Nb; i < len(u)-g.Nb; i++ {
		u[i] = uOld[i] - uOld[i]*lam*(uOld[i]-uOld[i-1])
	}
}

// StepDiffusion advances the heat equation with diffusivity nu
func (g *Grid1D) StepDiffusion(dt, dx, nu float64) {
	var (
		u    = g.U.Data()
		uOld = g.U.Copy().Data()
		lam  = nu * dt / (dx * dx)
	)
	for i := g.Nb; i < len(u)-g.Nb; i++ {
		u[i] = uOld[i] + lam*(uOld[i+1]-2*uOld[i]+uOld[i-1])
	}
}

// StepBurgers advances viscous Burgers, self-advection plus diffusion
func (g *Grid1D) StepBurgers(dt, dx, nu float64) {
	var (
		u    = g.U.Data()
		uOld = g.U.Copy().Data()
		lamC = dt / dx
		lamD = nu * dt / (dx * dx)
	)
	for i := g.Nb; i < len(u)-g.Nb; i++ {
		u[i] = uOld[i] - uOld[i]*lamC*(uOld[i]-uOld[i-1]) +
			lamD*(uOld[i+1]-2*uOld[i]+uOld[i-1])
	}
}
