package eigen

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Errors returned by the solver.
var (
	ErrBadOperator   = errors.New("eigen: operator dimension must be positive")
	ErrBadModeCount  = errors.New("eigen: mode count out of range")
	ErrNoConvergence = errors.New("eigen: no convergence")
	ErrStartVector   = errors.New("eigen: no start vector outside the locked subspace")
)

const (
	defaultTol         = 1e-8
	defaultMaxRestarts = 1000
	defaultSeed        = 42
	minSubspace        = 20

	// breakdownRel classifies a Krylov residual as an invariant-subspace
	// breakdown, relative to the norm of A*v before orthogonalization.
	breakdownRel = 1e-14
)

// MatVec is the operator interface consumed by the solver. Dim reports the
// square operator dimension n; MulVec computes dst = A*x for slices of
// length n, treating x as read-only and fully overwriting dst.
type MatVec interface {
	Dim() int
	MulVec(dst, x []float64)
}

// Config holds solver parameters. Zero fields select defaults.
type Config struct {
	// Modes is the number of eigenvalues of largest real part to compute.
	// Must satisfy 1 <= Modes <= n.
	Modes int

	// Subspace is the Krylov subspace dimension per cycle. Default
	// min(n, max(2*Modes+1, 20)).
	Subspace int

	// Tol is the residual tolerance; a Ritz pair converges when its
	// residual bound falls below Tol*max(1, |θ|). Default 1e-8.
	Tol float64

	// MaxRestarts bounds the number of restart cycles. Default 1000.
	MaxRestarts int

	// Seed drives the deterministic start vector. Default 42.
	Seed uint64
}

// Ritz is a converged eigenvalue estimate and its residual bound.
type Ritz struct {
	Value    complex128
	Residual float64
}

// Largest computes the modes eigenvalues of largest real part with default
// configuration.
func Largest(a MatVec, modes int) ([]Ritz, error) {
	return Solve(a, Config{Modes: modes})
}

// Solve computes cfg.Modes eigenvalues of largest real part of a.
// Values are returned in lock order; see the package documentation for
// ordering and conjugate-pair semantics.
func Solve(a MatVec, cfg Config) ([]Ritz, error) {
	if a == nil || a.Dim() < 1 {
		return nil, ErrBadOperator
	}

	n := a.Dim()

	if cfg.Modes < 1 || cfg.Modes > n {
		return nil, fmt.Errorf("%w: requested %d of dimension %d", ErrBadModeCount, cfg.Modes, n)
	}

	cfg = normalizeConfig(cfg, n)

	s := &solver{
		cfg:     cfg,
		n:       n,
		rng:     rand.New(rand.NewPCG(cfg.Seed, 0)),
		scratch: make([]float64, n),
	}

	return s.run(a)
}

func normalizeConfig(cfg Config, n int) Config {
	if cfg.Subspace <= 0 {
		cfg.Subspace = max(2*cfg.Modes+1, minSubspace)
	}

	if cfg.Subspace <= cfg.Modes {
		cfg.Subspace = cfg.Modes + 1
	}

	if cfg.Subspace > n {
		cfg.Subspace = n
	}

	if cfg.Tol <= 0 {
		cfg.Tol = defaultTol
	}

	if cfg.MaxRestarts <= 0 {
		cfg.MaxRestarts = defaultMaxRestarts
	}

	if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}

	return cfg
}

// solver carries per-invocation state: the locked spectrum, its orthonormal
// deflation basis, and a shared scratch buffer. A solver is used by exactly
// one goroutine.
type solver struct {
	cfg     Config
	n       int
	rng     *rand.Rand
	scratch []float64

	basis  [][]float64  // locked orthonormal directions
	values []complex128 // locked Ritz values, conjugate pairs adjacent
	res    []float64    // residual bound per locked value
}

func (s *solver) run(a MatVec) ([]Ritz, error) {
	v, err := s.freshStart()
	if err != nil {
		return nil, err
	}

	restarts := 0

	for {
		next, exact, err := s.cycle(a, v)
		if err != nil {
			return nil, err
		}

		if len(s.values) >= s.cfg.Modes {
			return s.collect(), nil
		}

		restarts++
		if restarts > s.cfg.MaxRestarts {
			return nil, fmt.Errorf("%w: locked %d of %d modes after %d restarts (n=%d, subspace=%d, tol=%g)",
				ErrNoConvergence, len(s.values), s.cfg.Modes, s.cfg.MaxRestarts, s.n, s.cfg.Subspace, s.cfg.Tol)
		}

		if exact || next == nil {
			v, err = s.freshStart()
		} else {
			v, err = s.recycle(next)
		}

		if err != nil {
			return nil, err
		}
	}
}

// collect returns the first Modes locked values, widened by one when the cut
// would split a conjugate pair.
func (s *solver) collect() []Ritz {
	cut := s.cfg.Modes
	if cut < len(s.values) && isConjPair(s.values[cut-1], s.values[cut]) {
		cut++
	}

	out := make([]Ritz, cut)
	for i := range cut {
		out[i] = Ritz{Value: s.values[i], Residual: s.res[i]}
	}

	return out
}

func isConjPair(a, b complex128) bool {
	return imag(a) != 0 && real(a) == real(b) && imag(a) == -imag(b)
}

// freshStart draws a random unit vector orthogonal to the locked basis.
func (s *solver) freshStart() ([]float64, error) {
	for range 5 {
		v := make([]float64, s.n)
		for i := range v {
			v[i] = s.rng.NormFloat64()
		}

		s.project(v)
		s.project(v)

		if nrm := norm(v); nrm > 1e-8*math.Sqrt(float64(s.n)) {
			vecmath.ScaleBlockInPlace(v, 1/nrm)
			return v, nil
		}
	}

	return nil, ErrStartVector
}

// recycle turns an accumulated Ritz direction into the next start vector,
// falling back to a fresh random start when it collapses.
func (s *solver) recycle(v []float64) ([]float64, error) {
	s.project(v)
	s.project(v)

	nrm := norm(v)
	if nrm <= 1e-12 {
		return s.freshStart()
	}

	vecmath.ScaleBlockInPlace(v, 1/nrm)

	return v, nil
}

// project subtracts from w its components along the locked basis.
func (s *solver) project(w []float64) {
	for _, u := range s.basis {
		c := vecmath.DotProduct(u, w)
		if c != 0 {
			s.axpy(w, u, -c)
		}
	}
}

// axpy computes dst += alpha*src through the shared scratch buffer.
func (s *solver) axpy(dst, src []float64, alpha float64) {
	vecmath.ScaleBlock(s.scratch, src, alpha)
	vecmath.AddBlockInPlace(dst, s.scratch)
}

func norm(v []float64) float64 {
	return math.Sqrt(vecmath.DotProduct(v, v))
}
