package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathduel/internal/ui/theme"
)

// Button is a styled action bound to a key.
type Button struct {
	Label   string
	Key     string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button triggered by key.
func NewButton(label, key string, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Key:     key,
		Active:  true,
		OnPress: onPress,
	}
}

// Pressed reports whether msg triggers the button.
func (b Button) Pressed(msg tea.Msg) bool {
	kmsg, ok := msg.(tea.KeyPressMsg)
	return ok && b.Active && kmsg.String() == b.Key
}

// Update fires OnPress when the button's key is pressed.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if b.Pressed(msg) && b.OnPress != nil {
		return b, b.OnPress()
	}
	return b, nil
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
