// Package compare implements the problem solver controller: it captures a
// problem, dispatches it to both model variants, joins the two outcomes and
// renders them into a set of UI handles.
package compare

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/mathduel/internal/solver"
)

const (
	// MsgEmptyProblem is shown when a submission has no problem text.
	MsgEmptyProblem = "Please enter a math problem"

	// MsgSolveFailed is shown when a failed request carried no message.
	MsgSolveFailed = "An error occurred while solving the problem"

	// TimePlaceholder fills the time fields while no result is shown.
	TimePlaceholder = "-"
)

// Examples are the problems offered by the example affordance.
var Examples = [3]string{
	"What is the smallest integer value of c such that the function f(x) = (x^2 + 1)/(x^2 - x + c) has domain of all real numbers?",
	"If |4x+2|=10 and x<0, what is the value of x?",
	"The doctor has told Cal O'Ree that during his ten weeks of working out at the gym, he can expect each week's weight loss to be 1% of his weight at the end of the previous week. His weight at the beginning of the workouts is 244 pounds. How many pounds does he expect to weigh at the end of the ten weeks? Express your answer to the nearest whole number.",
}

// Typesetter re-renders math in the displayed results.
type Typesetter interface {
	Typeset()
}

// Job performs a submission's network work. It blocks until both variants
// settle and is meant to run off the UI loop.
type Job func() Outcome

// Controller owns one problem-vs-two-models comparison flow.
type Controller struct {
	ui         Handles
	solver     Solver
	typesetter Typesetter
	logger     zerolog.Logger
	pick       func(n int) int

	generation uint64
	state      State
}

// Option configures a Controller.
type Option func(*Controller)

// WithTypesetter injects the math typesetting pass run after rendering.
func WithTypesetter(t Typesetter) Option {
	return func(c *Controller) { c.typesetter = t }
}

// WithLogger sets the controller's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithPicker replaces the uniform random index source used by FillExample.
func WithPicker(pick func(n int) int) Option {
	return func(c *Controller) { c.pick = pick }
}

// New creates a Controller bound to ui and s.
func New(ui Handles, s Solver, opts ...Option) (*Controller, error) {
	if err := ui.validate(); err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}
	if s == nil {
		return nil, fmt.Errorf("compare: solver is required")
	}

	c := &Controller{
		ui:     ui,
		solver: s,
		logger: zerolog.Nop(),
		pick:   rand.IntN,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// State returns the current presentation state.
func (c *Controller) State() State {
	return c.state
}

// Generation returns the id of the latest submission.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// Submit reads the input and starts a submission. It returns nil when the
// input is blank; otherwise the display is reset, the loading indicator is
// shown and the returned Job performs the dispatch.
//
// A blank submission also supersedes any submission still in flight.
func (c *Controller) Submit(ctx context.Context) Job {
	problem := strings.TrimSpace(c.ui.Input.Value())
	c.generation++
	gen := c.generation

	if problem == "" {
		err := &solver.ValidationError{Message: MsgEmptyProblem}
		c.showError(err.Message)
		c.state = State{Phase: PhaseError, Generation: gen, Message: err.Message, Err: err}
		c.logger.Debug().Uint64("generation", gen).Msg("blank problem rejected")
		return nil
	}

	c.Reset()
	c.ui.Loading.SetVisible(true)
	c.ui.Error.SetVisible(false)
	c.state = State{Phase: PhaseLoading, Generation: gen, Problem: problem}

	requestID := uuid.NewString()
	c.logger.Info().
		Uint64("generation", gen).
		Str("request_id", requestID).
		Int("problem_len", len(problem)).
		Msg("dispatching problem")

	s := c.solver
	ctx = solver.WithRequestID(ctx, requestID)
	return func() Outcome {
		return Dispatch(ctx, s, gen, problem)
	}
}

// Apply reconciles a joined outcome into the display. Outcomes from a
// superseded submission are dropped and Apply returns false.
func (c *Controller) Apply(o Outcome) bool {
	if o.Generation != c.generation {
		c.logger.Debug().
			Uint64("generation", o.Generation).
			Uint64("latest", c.generation).
			Msg("dropping stale outcome")
		return false
	}
	defer c.ui.Loading.SetVisible(false)

	if failed, ok := o.Failure(); ok {
		msg := failed.Err.Error()
		if msg == "" {
			msg = MsgSolveFailed
		}
		c.logger.Warn().
			Err(failed.Err).
			Str("variant", string(failed.Variant)).
			Uint64("generation", o.Generation).
			Msg("submission failed")
		c.showError(msg)
		c.state = State{Phase: PhaseError, Generation: o.Generation, Problem: o.Problem, Message: msg, Err: failed.Err}
		return true
	}

	c.render(o.Base.Result, o.Optimized.Result)
	c.state = State{
		Phase:      PhaseDisplaying,
		Generation: o.Generation,
		Problem:    o.Problem,
		Base:       o.Base.Result,
		Optimized:  o.Optimized.Result,
	}
	c.logger.Info().
		Uint64("generation", o.Generation).
		Bool("answers_differ", c.state.AnswersDiffer()).
		Msg("submission rendered")

	if c.typesetter != nil {
		c.typesetter.Typeset()
	}
	return true
}

// Reset clears every result region, puts the time placeholders back and
// removes the difference marker.
func (c *Controller) Reset() {
	for _, v := range solver.Variants {
		p := c.ui.panel(v)
		p.Reasoning.SetText("")
		p.Answer.SetText("")
		p.Time.SetText(TimePlaceholder)
		p.Answer.SetMarked(false)
	}
}

// FillExample writes a randomly chosen example problem into the input
// and returns it. It never submits.
func (c *Controller) FillExample() string {
	example := Examples[c.pick(len(Examples))]
	c.ui.Input.SetValue(example)
	return example
}

func (c *Controller) render(base, optimized *solver.Result) {
	for v, res := range map[solver.Variant]*solver.Result{
		solver.VariantBase:      base,
		solver.VariantOptimized: optimized,
	} {
		p := c.ui.panel(v)
		p.Reasoning.SetText(res.Reasoning)
		p.Answer.SetText(res.Answer)
		p.Time.SetText(res.ExecutionTime.String())
	}

	differ := base.Answer != optimized.Answer
	c.ui.Base.Answer.SetMarked(differ)
	c.ui.Optimized.Answer.SetMarked(differ)
}

func (c *Controller) showError(msg string) {
	c.ui.Error.SetText(msg)
	c.ui.Error.SetVisible(true)
	c.ui.Loading.SetVisible(false)
}
