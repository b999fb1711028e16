package status

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathduel/internal/solver"
)

type stubSource struct {
	status *solver.Status
	err    error
	calls  int
}

func (s *stubSource) Status(context.Context) (*solver.Status, error) {
	s.calls++
	return s.status, s.err
}

// run executes cmd and feeds its message back into the screen.
func run(t *testing.T, s *StatusScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a fetch command")
	}
	s.Update(cmd())
}

func TestStatusScreen_ShowsLoadedVariants(t *testing.T) {
	src := &stubSource{status: &solver.Status{BaseLoaded: true, OptimizedLoaded: false}}
	s := New(src, "http://localhost:8000")

	cmd := s.Init()
	if !strings.Contains(s.View(80, 20), "Checking") {
		t.Error("expected checking indicator before the fetch returns")
	}
	run(t, s, cmd)

	view := s.View(80, 20)
	if !strings.Contains(view, "Base model") || !strings.Contains(view, "✓ loaded") {
		t.Errorf("expected base model loaded in view:\n%s", view)
	}
	if !strings.Contains(view, "✗ not loaded") {
		t.Errorf("expected optimized model not loaded in view:\n%s", view)
	}
}

func TestStatusScreen_ShowsError(t *testing.T) {
	src := &stubSource{err: errors.New("connection refused")}
	s := New(src, "http://localhost:8000")

	run(t, s, s.Init())

	if !strings.Contains(s.View(80, 20), "connection refused") {
		t.Error("expected fetch error in view")
	}
}

func TestStatusScreen_Refresh(t *testing.T) {
	src := &stubSource{status: &solver.Status{}}
	s := New(src, "http://localhost:8000")
	run(t, s, s.Init())

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	run(t, s, cmd)

	if src.calls != 2 {
		t.Errorf("status calls = %d, want 2", src.calls)
	}
}

func TestStatusScreen_KeyHints(t *testing.T) {
	s := New(&stubSource{}, "")
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
	if s.Title() != "Server Status" {
		t.Errorf("Title = %q", s.Title())
	}
}
