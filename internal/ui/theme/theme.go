package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Base and Optimized tint the two result panels.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Base      = lipgloss.Color("#14B8A6") // Teal
	Optimized = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Warning   = lipgloss.Color("#EAB308") // Amber
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Bold(true)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	ErrorBox = lipgloss.NewStyle().
			Foreground(Error).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Error).
			PaddingLeft(1)
)

// States
var (
	// Different highlights answers that disagree between the two models.
	Different = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	Loaded = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	NotLoaded = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Spinner = lipgloss.NewStyle().
		Foreground(Primary)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Padding(0, 2)
)

// PanelTitle returns the heading style of a result panel.
func PanelTitle(optimized bool) lipgloss.Style {
	c := Base
	if optimized {
		c = Optimized
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
