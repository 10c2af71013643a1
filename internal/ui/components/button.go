package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/ui/theme"
)

// Button is a labelled action bound to one key.
type Button struct {
	Label   string
	Key     string // tea key string, e.g. "enter"
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates an active button bound to key.
func NewButton(label, key string, onPress func() tea.Cmd) Button {
	return Button{Label: label, Key: key, Active: true, OnPress: onPress}
}

// Update fires OnPress when the bound key is pressed on an active button.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == b.Key {
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
	return theme.ButtonInactive.Foreground(theme.TextDim).Render(label)
}

// Centered renders the button centered in width.
func (b Button) Centered(width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.View())
}
