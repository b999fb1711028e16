package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathduel/internal/ui/theme"
)

// MaxProblemLength caps how much text the problem input accepts.
const MaxProblemLength = 2000

// TextInput wraps bubbles/textinput with Mathduel styling.
type TextInput struct {
	Model  textinput.Model
	Prompt string
}

// NewTextInput creates a focused text input.
func NewTextInput(prompt, placeholder string) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = MaxProblemLength
	ti.Focus()

	return TextInput{Model: ti, Prompt: prompt}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the prompt and the input.
func (t TextInput) View() string {
	prompt := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(t.Prompt)
	return prompt + t.Model.View()
}

// SetWidth sets the visible width of the input, excluding the prompt.
func (t *TextInput) SetWidth(width int) {
	w := width - lipgloss.Width(t.Prompt)
	if w < 1 {
		w = 1
	}
	t.Model.SetWidth(w)
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value and moves the cursor to the end.
func (t *TextInput) SetValue(value string) {
	t.Model.SetValue(value)
	t.Model.CursorEnd()
}
