package status

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathduel/internal/screen"
	"github.com/abhisek/mathduel/internal/solver"
	"github.com/abhisek/mathduel/internal/ui/layout"
	"github.com/abhisek/mathduel/internal/ui/theme"
)

const fetchTimeout = 5 * time.Second

// Source reports which model variants the server has loaded.
type Source interface {
	Status(ctx context.Context) (*solver.Status, error)
}

// statusMsg carries the result of one status fetch.
type statusMsg struct {
	Status *solver.Status
	Err    error
	At     time.Time
}

// StatusScreen shows the solve server's model status.
type StatusScreen struct {
	source    Source
	server    string
	status    *solver.Status
	err       error
	loading   bool
	checkedAt time.Time
}

var _ screen.Screen = (*StatusScreen)(nil)
var _ screen.KeyHintProvider = (*StatusScreen)(nil)

// New creates a StatusScreen querying source. server is shown as the
// address being checked.
func New(source Source, server string) *StatusScreen {
	return &StatusScreen{source: source, server: server}
}

func (s *StatusScreen) Init() tea.Cmd {
	return s.fetch()
}

func (s *StatusScreen) Title() string {
	return "Server Status"
}

func (s *StatusScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatusScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		s.loading = false
		s.status = msg.Status
		s.err = msg.Err
		s.checkedAt = msg.At
		return s, nil

	case tea.KeyPressMsg:
		if msg.String() == "r" && !s.loading {
			return s, s.fetch()
		}
	}
	return s, nil
}

func (s *StatusScreen) fetch() tea.Cmd {
	s.loading = true
	source := s.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		st, err := source.Status(ctx)
		return statusMsg{Status: st, Err: err, At: time.Now()}
	}
}

func (s *StatusScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Label.Render("Server: "))
	b.WriteString(theme.Body.Render(s.server))
	b.WriteString("\n\n")

	switch {
	case s.loading:
		b.WriteString(theme.Hint.Render("Checking..."))
	case s.err != nil:
		b.WriteString(theme.ErrorBox.Render("Could not fetch status: " + s.err.Error()))
	case s.status != nil:
		for _, v := range solver.Variants {
			mark := theme.NotLoaded.Render("✗ not loaded")
			if s.status.Loaded(v) {
				mark = theme.Loaded.Render("✓ loaded")
			}
			b.WriteString(fmt.Sprintf("%-18s %s\n", v.Label(), mark))
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Checked at " + s.checkedAt.Format("15:04:05")))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(theme.Card.Render(b.String()))
}
