// Package eigen computes a few eigenvalues of largest real part of a large
// sparse real operator using restarted Arnoldi iteration.
//
// The operator enters through the minimal [MatVec] interface, so any backend
// able to form dst = A*x can be analyzed without exposing its storage.
//
// # Algorithm
//
// Each cycle builds an orthonormal Krylov basis V of the configured subspace
// dimension m with modified Gram-Schmidt and a second orthogonalization pass,
// producing the projected Hessenberg matrix H with
//
//	A*V[j] = sum_i H[i][j]*V[i] + H[j+1][j]*V[j+1]
//
// The eigenpairs of H (Ritz pairs) approximate eigenpairs of A; the residual
// of a Ritz pair (θ, V*s) is bounded by
//
//	|H[m][m-1]| * |s[m-1]|
//
// Converged pairs with the largest real parts are locked: their directions
// join a deflation basis that all later cycles orthogonalize against, so the
// iteration keeps hunting the remaining part of the spectrum. A cycle that
// fails to lock everything restarts from the sum of the still-wanted Ritz
// directions. When H[j+1][j] vanishes the Krylov space is invariant and every
// projected eigenvalue is exact; the solver locks what it wants from the
// invariant subspace and restarts from a fresh random direction if more
// modes remain.
//
// Complex eigenvalues of real operators arrive in conjugate pairs and are
// locked together as a two-dimensional real subspace; a request for k modes
// may therefore return k+1 values rather than split a pair.
//
// # Ordering and determinism
//
// Returned values appear in lock order, which follows convergence, not any
// guaranteed sort. Callers needing sorted output must sort explicitly. The
// start vector derives from a seeded PCG generator, so repeated solves with
// identical inputs and configuration produce identical results.
package eigen
