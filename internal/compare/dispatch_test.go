package compare

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathduel/internal/solver"
)

// gatedSolver blocks each variant until its gate is closed. When returned
// is set, each variant is sent on it as its request returns.
type gatedSolver struct {
	gates    map[solver.Variant]chan struct{}
	errs     map[solver.Variant]error
	returned chan solver.Variant
}

func (g *gatedSolver) Solve(ctx context.Context, v solver.Variant, problem string) (*solver.Result, error) {
	select {
	case <-g.gates[v]:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if g.returned != nil {
		defer func() { g.returned <- v }()
	}
	if err := g.errs[v]; err != nil {
		return nil, err
	}
	return &solver.Result{Answer: string(v)}, nil
}

type nilSolver struct{}

func (nilSolver) Solve(context.Context, solver.Variant, string) (*solver.Result, error) {
	return nil, nil
}

func TestDispatch_WaitsForBothToSettle(t *testing.T) {
	g := &gatedSolver{
		gates: map[solver.Variant]chan struct{}{
			solver.VariantBase:      make(chan struct{}),
			solver.VariantOptimized: make(chan struct{}),
		},
		errs: map[solver.Variant]error{solver.VariantBase: errors.New("base down")},
	}

	done := make(chan Outcome, 1)
	go func() { done <- Dispatch(context.Background(), g, 7, "p") }()

	// The base failure settles first but must not end the join early.
	close(g.gates[solver.VariantBase])
	select {
	case <-done:
		t.Fatal("dispatch returned before the optimized request settled")
	case <-time.After(50 * time.Millisecond):
	}

	close(g.gates[solver.VariantOptimized])
	o := <-done

	assert.Equal(t, uint64(7), o.Generation)
	assert.Equal(t, "p", o.Problem)
	assert.True(t, o.Base.Failed())
	assert.Equal(t, 1, o.Base.Settled)
	assert.False(t, o.Optimized.Failed())
	assert.Equal(t, 2, o.Optimized.Settled)
	require.NotNil(t, o.Optimized.Result)
	assert.Equal(t, "optimized", o.Optimized.Result.Answer)
}

func TestDispatch_RunsVariantsConcurrently(t *testing.T) {
	for _, first := range solver.Variants {
		t.Run(string(first)+" settles first", func(t *testing.T) {
			g := &gatedSolver{
				gates: map[solver.Variant]chan struct{}{
					solver.VariantBase:      make(chan struct{}),
					solver.VariantOptimized: make(chan struct{}),
				},
				returned: make(chan solver.Variant, len(solver.Variants)),
			}

			done := make(chan Outcome, 1)
			go func() { done <- Dispatch(context.Background(), g, 1, "p") }()

			// Only one gate opens. Its request can return only if the
			// other is already in flight rather than queued behind it.
			close(g.gates[first])
			select {
			case v := <-g.returned:
				require.Equal(t, first, v)
			case <-time.After(2 * time.Second):
				t.Fatalf("%s never returned while its sibling was blocked", first)
			}

			for _, v := range solver.Variants {
				if v != first {
					close(g.gates[v])
				}
			}
			o := <-done

			assert.Equal(t, 1, o.Variant(first).Settled)
			for _, v := range solver.Variants {
				assert.False(t, o.Variant(v).Failed(), v)
			}
		})
	}
}

func TestDispatch_NilResultIsFailure(t *testing.T) {
	o := Dispatch(context.Background(), nilSolver{}, 1, "p")

	require.True(t, o.Base.Failed())
	require.True(t, o.Optimized.Failed())
	assert.Equal(t, MsgSolveFailed, o.Base.Err.Error())
}

func TestOutcome_FailurePicksEarliestSettled(t *testing.T) {
	baseErr := errors.New("base")
	optErr := errors.New("optimized")

	tests := []struct {
		name    string
		outcome Outcome
		want    error
		wantOK  bool
	}{
		{
			name: "no failure",
			outcome: Outcome{
				Base:      VariantOutcome{Variant: solver.VariantBase, Result: &solver.Result{}, Settled: 1},
				Optimized: VariantOutcome{Variant: solver.VariantOptimized, Result: &solver.Result{}, Settled: 2},
			},
		},
		{
			name: "only optimized failed",
			outcome: Outcome{
				Base:      VariantOutcome{Variant: solver.VariantBase, Result: &solver.Result{}, Settled: 1},
				Optimized: VariantOutcome{Variant: solver.VariantOptimized, Err: optErr, Settled: 2},
			},
			want:   optErr,
			wantOK: true,
		},
		{
			name: "both failed, optimized first",
			outcome: Outcome{
				Base:      VariantOutcome{Variant: solver.VariantBase, Err: baseErr, Settled: 2},
				Optimized: VariantOutcome{Variant: solver.VariantOptimized, Err: optErr, Settled: 1},
			},
			want:   optErr,
			wantOK: true,
		},
		{
			name: "both failed, base first",
			outcome: Outcome{
				Base:      VariantOutcome{Variant: solver.VariantBase, Err: baseErr, Settled: 1},
				Optimized: VariantOutcome{Variant: solver.VariantOptimized, Err: optErr, Settled: 2},
			},
			want:   baseErr,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.outcome.Failure()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.Err)
			}
		})
	}
}
