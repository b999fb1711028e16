package compare

import (
	"strings"
	"unicode"

	"charm.land/lipgloss/v2"

	ctrl "github.com/abhisek/mathduel/internal/compare"
	"github.com/abhisek/mathduel/internal/solver"
	"github.com/abhisek/mathduel/internal/ui/components"
	"github.com/abhisek/mathduel/internal/ui/layout"
	"github.com/abhisek/mathduel/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// fixedRows is the height taken by everything except the reasoning text.
const fixedRows = 16

func (s *CompareScreen) View(width, height int) string {
	contentWidth := width - 4
	s.input.SetWidth(contentWidth - lipgloss.Width(s.solve.View()) - 2)

	top := lipgloss.JoinHorizontal(lipgloss.Center, s.input.View(), "  ", s.solve.View())

	var status string
	switch {
	case s.board.Loading.Visible():
		frame := spinnerFrames[s.frame%len(spinnerFrames)]
		status = theme.Spinner.Render(frame + " Solving with both models...")
	case s.board.Error.Visible():
		status = theme.ErrorBox.Render(sanitize(s.board.Error.Text()))
	default:
		status = theme.Hint.Render("Press Tab for an example problem")
	}

	panels := s.renderPanels(contentWidth, height)

	body := lipgloss.JoinVertical(lipgloss.Left, top, "", status, "", panels)
	return lipgloss.NewStyle().Padding(0, 2).Render(body)
}

func (s *CompareScreen) renderPanels(width, height int) string {
	compact := layout.IsCompactWidth(width)

	panelWidth := (width - 1) / 2
	reasoningLines := height - fixedRows
	if compact {
		panelWidth = width
		reasoningLines = (height - 2*fixedRows + 4) / 2
	}
	if reasoningLines < 2 {
		reasoningLines = 2
	}

	views := make([]string, 0, len(solver.Variants))
	for _, v := range solver.Variants {
		views = append(views, resultPanel(v, s.board.Panel(v)).View(panelWidth, reasoningLines))
	}

	if compact {
		return lipgloss.JoinVertical(lipgloss.Left, views...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views[0], " ", views[1])
}

func resultPanel(v solver.Variant, p *ctrl.PanelRegions) components.ResultPanel {
	return components.ResultPanel{
		Title:     v.Label(),
		Optimized: v == solver.VariantOptimized,
		Reasoning: sanitize(p.Reasoning.Text()),
		Answer:    sanitize(p.Answer.Text()),
		Time:      sanitize(p.Time.Text()),
		Marked:    p.Answer.Marked(),
	}
}

// sanitize drops control characters so server text is shown literally and
// cannot drive the terminal.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}
