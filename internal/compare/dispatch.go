package compare

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/mathduel/internal/solver"
)

// Solver solves a problem with one model variant.
type Solver interface {
	Solve(ctx context.Context, v solver.Variant, problem string) (*solver.Result, error)
}

// VariantOutcome is the settled result of one variant's request.
// Exactly one of Result and Err is set.
type VariantOutcome struct {
	Variant solver.Variant
	Result  *solver.Result
	Err     error

	// Settled is the 1-based position at which this request finished
	// relative to its sibling.
	Settled int
}

// Failed reports whether the request ended in an error.
func (o VariantOutcome) Failed() bool { return o.Err != nil }

// Outcome is the joined result of one submission.
type Outcome struct {
	Generation uint64
	Problem    string
	Base       VariantOutcome
	Optimized  VariantOutcome
}

// Variant returns the outcome for v.
func (o Outcome) Variant(v solver.Variant) VariantOutcome {
	if v == solver.VariantOptimized {
		return o.Optimized
	}
	return o.Base
}

// Failure returns the earliest-settled failed variant, if any.
func (o Outcome) Failure() (VariantOutcome, bool) {
	var first VariantOutcome
	found := false
	for _, v := range solver.Variants {
		vo := o.Variant(v)
		if !vo.Failed() {
			continue
		}
		if !found || vo.Settled < first.Settled {
			first = vo
			found = true
		}
	}
	return first, found
}

var errNoResult = errors.New(MsgSolveFailed)

// Dispatch sends problem to every variant concurrently and waits for all
// of them to settle. A failing variant does not cut its sibling short.
func Dispatch(ctx context.Context, s Solver, generation uint64, problem string) Outcome {
	var (
		g       errgroup.Group
		settled atomic.Int32
		results [len(solver.Variants)]VariantOutcome
	)

	for i, v := range solver.Variants {
		g.Go(func() error {
			res, err := s.Solve(ctx, v, problem)
			if err == nil && res == nil {
				err = errNoResult
			}
			if err != nil {
				res = nil
			}
			results[i] = VariantOutcome{
				Variant: v,
				Result:  res,
				Err:     err,
				Settled: int(settled.Add(1)),
			}
			return nil
		})
	}
	_ = g.Wait()

	return Outcome{
		Generation: generation,
		Problem:    problem,
		Base:       results[0],
		Optimized:  results[1],
	}
}
