package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/ui/theme"
)

// ProgressBar shows one cell per item, each in its own color, followed
// by a done/total count.
type ProgressBar struct {
	Label string
	Cells []color.Color // nil cells render as pending
	Done  int
}

// View renders the bar.
func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}
	for _, c := range p.Cells {
		if c == nil {
			c = theme.Border
		}
		b.WriteString(lipgloss.NewStyle().Background(c).Render("  "))
		b.WriteString(" ")
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %d/%d", p.Done, len(p.Cells))))
	return b.String()
}
