package stability

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SweepResult pairs a case with its outcome.
type SweepResult struct {
	Case   Case
	Result Result
	Err    error
}

// Sweep analyzes cases with at most parallel concurrent solves. Results
// keep the input order and per-case failures land in SweepResult.Err
// without stopping the rest. Cancelling ctx skips cases that have not
// started; a solve already running is not interruptible.
func Sweep(ctx context.Context, cases []Case, parallel int, opts ...Option) []SweepResult {
	if parallel < 1 {
		parallel = 1
	}

	out := make([]SweepResult, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, c := range cases {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i] = SweepResult{Case: c, Err: err}
				return nil
			}

			res, err := Analyze(c, opts...)
			out[i] = SweepResult{Case: c, Result: res, Err: err}

			return nil
		})
	}

	_ = g.Wait() // per-case errors live in SweepResult.Err

	return out
}
