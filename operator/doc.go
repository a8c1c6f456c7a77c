// Package operator assembles sparse finite-difference operators for
// one-dimensional linear stability problems.
//
// The central entry point is [Diffusion], which discretizes the diffusion
// operator nu * d²u/dx² on a uniform grid of n points over [0, L] using the
// second-order central stencil
//
//	(u[i-1] - 2*u[i] + u[i+1]) * nu / dx²
//
// with dx = L/(n-1). The result is a [Matrix] in compressed sparse row form,
// chosen so that assembly is cheap and boundary rows can later be rewritten
// in place without touching the interior.
//
// # Boundary conditions
//
// [Matrix.ApplyDirichlet] encodes u(0) = 0 and u(L) = 0 by replacing the
// first and last rows with unit rows. This decouples the boundary unknowns
// from the interior system and is more robust than eliminating them
// algebraically, at the cost of two spurious eigenvalues exactly equal to
// 1.0. Spectrum consumers must filter these artifact modes; the stability
// package does so automatically.
//
// # Usage
//
//	op, err := operator.Diffusion(200, 1.0, 1e-3)
//	if err != nil {
//		// invalid grid parameters
//	}
//	op.ApplyDirichlet()
//
// The enforced operator implements the matrix-vector product interface
// expected by the eigen package.
package operator
