package stability

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-stability/eigen"
	"github.com/cwbudde/algo-stability/operator"
)

// ErrBadModeCount is returned when the requested mode count does not fit
// the grid.
var ErrBadModeCount = errors.New("stability: mode count out of range")

// Case describes one stability problem: the grid, the diffusivity, and how
// many dominant modes to extract. Requests with Modes close to Points risk
// slow convergence; Modes well below Points-2 is the intended regime.
type Case struct {
	Points    int
	Length    float64
	Viscosity float64
	Modes     int
}

// Validate checks the case parameters.
func (c Case) Validate() error {
	if c.Points < 3 {
		return fmt.Errorf("%w: need at least 3 grid points, got %d", operator.ErrInvalidGrid, c.Points)
	}

	if c.Length <= 0 {
		return fmt.Errorf("%w: domain length must be positive, got %g", operator.ErrInvalidGrid, c.Length)
	}

	if c.Modes < 1 || c.Modes > c.Points {
		return fmt.Errorf("%w: requested %d of %d grid points", ErrBadModeCount, c.Modes, c.Points)
	}

	return nil
}

// Option adjusts solver behavior without touching the physical case.
type Option func(*config)

type config struct {
	tol         float64
	maxRestarts int
	subspace    int
	seed        uint64
}

// WithTolerance sets the residual tolerance of the eigenvalue iteration.
func WithTolerance(tol float64) Option {
	return func(c *config) { c.tol = tol }
}

// WithMaxRestarts bounds the restart cycles of the eigenvalue iteration.
func WithMaxRestarts(n int) Option {
	return func(c *config) { c.maxRestarts = n }
}

// WithSubspace overrides the Krylov subspace dimension.
func WithSubspace(m int) Option {
	return func(c *config) { c.subspace = m }
}

// WithSeed changes the deterministic start-vector seed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// Result is the filtered, classified spectrum of one case.
type Result struct {
	// Modes holds the physically valid modes in solver return order.
	Modes []Mode

	// Filtered counts boundary-artifact eigenvalues removed from view.
	Filtered int
}

// Analyze runs the full pipeline for one case: assemble the diffusion
// operator, enforce the Dirichlet rows, solve for the dominant eigenvalues,
// filter artifacts, and classify what remains.
func Analyze(c Case, opts ...Option) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}

	op, err := operator.Diffusion(c.Points, c.Length, c.Viscosity)
	if err != nil {
		return Result{}, err
	}

	op.ApplyDirichlet()

	return Solve(op, c.Modes, opts...)
}

// Solve computes the filtered spectrum of an already-enforced operator
// without mutating it. Convergence failures are surfaced, never converted
// into an empty spectrum: an empty result must always mean "no unstable
// modes found", not "gave up".
func Solve(op *operator.Matrix, modes int, opts ...Option) (Result, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	rs, err := eigen.Solve(op, eigen.Config{
		Modes:       modes,
		Subspace:    cfg.subspace,
		Tol:         cfg.tol,
		MaxRestarts: cfg.maxRestarts,
		Seed:        cfg.seed,
	})
	if err != nil {
		return Result{}, fmt.Errorf("stability: spectrum failed for points=%d modes=%d viscosity=%g: %w",
			op.Dim(), modes, op.Viscosity, err)
	}

	valid, filtered := classify(rs)

	return Result{Modes: valid, Filtered: filtered}, nil
}
