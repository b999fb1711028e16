package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathduel/internal/ui/theme"
)

// ResultPanel renders one model variant's reasoning, answer and time.
type ResultPanel struct {
	Title     string
	Optimized bool
	Reasoning string
	Answer    string
	Time      string
	Marked    bool
}

// View renders the panel inside a card of the given outer width. Long
// reasoning is cut to maxReasoningLines lines; zero means no limit.
func (p ResultPanel) View(width, maxReasoningLines int) string {
	inner := width - theme.Card.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}
	wrap := lipgloss.NewStyle().Width(inner)

	reasoning := p.Reasoning
	if reasoning == "" {
		reasoning = theme.Hint.Render("No reasoning yet")
	}
	reasoning = truncateLines(wrap.Render(reasoning), maxReasoningLines)

	answerStyle := theme.Body
	marker := ""
	if p.Marked {
		answerStyle = theme.Different
		marker = " " + theme.Different.Render("≠ different")
	}

	var b strings.Builder
	b.WriteString(theme.PanelTitle(p.Optimized).Render(p.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render("Reasoning"))
	b.WriteString("\n")
	b.WriteString(reasoning)
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render("Answer") + marker)
	b.WriteString("\n")
	b.WriteString(wrap.Inherit(answerStyle).Render(p.Answer))
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render("Time: ") + theme.Body.Render(p.Time+timeUnit(p.Time)))

	return theme.Card.Width(width).Render(b.String())
}

func timeUnit(t string) string {
	if t == "" || t == "-" {
		return ""
	}
	return "s"
}

func truncateLines(s string, max int) string {
	if max <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	return strings.Join(lines[:max-1], "\n") + "\n" + theme.Hint.Render("…")
}
