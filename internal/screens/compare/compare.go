package compare

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	ctrl "github.com/abhisek/mathduel/internal/compare"
	"github.com/abhisek/mathduel/internal/mathtext"
	"github.com/abhisek/mathduel/internal/router"
	"github.com/abhisek/mathduel/internal/screen"
	"github.com/abhisek/mathduel/internal/screens/status"
	"github.com/abhisek/mathduel/internal/ui/components"
	"github.com/abhisek/mathduel/internal/ui/layout"
)

const spinnerInterval = 100 * time.Millisecond

// outcomeMsg delivers a joined submission outcome back to the event loop.
type outcomeMsg ctrl.Outcome

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time

// Options configures a CompareScreen.
type Options struct {
	// Status, when set, backs the status screen opened with ctrl+t.
	Status status.Source
	Server string
	Logger zerolog.Logger
	// Raw disables LaTeX typesetting of results.
	Raw bool
}

// CompareScreen sends a problem to both model variants and shows the two
// results side by side.
type CompareScreen struct {
	board      *ctrl.Board
	controller *ctrl.Controller
	input      components.TextInput
	solve      components.Button
	opts       Options

	ticking bool
	frame   int
}

var _ screen.Screen = (*CompareScreen)(nil)
var _ screen.KeyHintProvider = (*CompareScreen)(nil)

// New creates a CompareScreen dispatching through s.
func New(s ctrl.Solver, opts Options) (*CompareScreen, error) {
	cs := &CompareScreen{
		board: ctrl.NewBoard(),
		input: components.NewTextInput("Problem ▸ ", "Enter a math problem..."),
		opts:  opts,
	}
	cs.solve = components.NewButton("Solve", "ctrl+s", cs.submit)

	ctrlOpts := []ctrl.Option{ctrl.WithLogger(opts.Logger)}
	if !opts.Raw {
		ctrlOpts = append(ctrlOpts, ctrl.WithTypesetter(mathtext.Over(cs.board.TextRegions())))
	}

	c, err := ctrl.New(cs.board.Handles(&inputHandle{input: &cs.input}), s, ctrlOpts...)
	if err != nil {
		return nil, err
	}
	cs.controller = c
	return cs, nil
}

func (s *CompareScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *CompareScreen) Title() string {
	return "Base vs Optimized"
}

func (s *CompareScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Solve"},
		{Key: "Tab", Description: "Example"},
	}
	if s.opts.Status != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+T", Description: "Status"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Controller exposes the screen's controller.
func (s *CompareScreen) Controller() *ctrl.Controller {
	return s.controller
}

func (s *CompareScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg:
		s.controller.Apply(ctrl.Outcome(msg))
		return s, nil

	case spinnerTickMsg:
		if !s.board.Loading.Visible() {
			s.ticking = false
			return s, nil
		}
		s.frame++
		return s, spinnerTick()

	case tea.KeyPressMsg:
		if cmd, handled := s.handleKey(msg); handled {
			return s, cmd
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *CompareScreen) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if s.solve.Pressed(msg) {
		var cmd tea.Cmd
		s.solve, cmd = s.solve.Update(msg)
		return cmd, true
	}

	switch msg.String() {
	case "enter":
		return s.submit(), true
	case "tab":
		s.controller.FillExample()
		return nil, true
	case "ctrl+t":
		if s.opts.Status == nil {
			return nil, true
		}
		next := status.New(s.opts.Status, s.opts.Server)
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }, true
	}
	return nil, false
}

// submit starts a submission. The dispatch runs as a command off the event
// loop and resolves into one outcomeMsg.
func (s *CompareScreen) submit() tea.Cmd {
	job := s.controller.Submit(context.Background())
	if job == nil {
		return nil
	}

	dispatch := func() tea.Msg { return outcomeMsg(job()) }
	if s.ticking {
		return dispatch
	}
	s.ticking = true
	return tea.Batch(dispatch, spinnerTick())
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// inputHandle adapts the screen's text input to the controller's Input.
type inputHandle struct {
	input *components.TextInput
}

func (h *inputHandle) Value() string         { return h.input.Value() }
func (h *inputHandle) SetValue(value string) { h.input.SetValue(value) }
