// Package stability runs linear stability analysis of one-dimensional
// diffusion problems: it assembles the constrained spatial operator, solves
// for the dominant part of its spectrum, and classifies the physical modes.
//
// A perturbation mode evolving as exp(λt) grows when Re(λ) > 0 and decays
// when Re(λ) < 0. The pipeline requests the eigenvalues of largest real
// part, which are the least stable and therefore the ones of engineering
// interest.
//
// # Usage
//
//	res, err := stability.Analyze(stability.Case{
//		Points:    200,
//		Length:    1.0,
//		Viscosity: 1e-3,
//		Modes:     4,
//	})
//	if err != nil {
//		// invalid case or convergence failure
//	}
//	for _, m := range res.Modes {
//		fmt.Println(m.GrowthRate(), m.Label)
//	}
//
// # Conventions
//
// The Dirichlet rows of the constrained operator contribute two artifact
// eigenvalues exactly 1.0; they are filtered from every result and counted
// in Result.Filtered. A growth rate of exactly zero is classified
// [Unstable]: the threshold sits at zero and a neutrally stable mode is
// reported as not decaying. Modes keep the solver's return order, which
// follows convergence rather than magnitude; sort explicitly when a sorted
// spectrum is needed.
package stability
