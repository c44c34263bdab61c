// Package placeholder shows a short notice in place of a screen that has
// nothing to display.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/a11ytutor/internal/screen"
	"github.com/abhisek/a11ytutor/internal/ui/theme"
)

// Screen is a titled notice.
type Screen struct {
	title   string
	message string
}

var _ screen.Screen = (*Screen)(nil)

// New creates a notice screen.
func New(title, message string) *Screen {
	return &Screen{title: title, message: message}
}

func (p *Screen) Init() tea.Cmd {
	return nil
}

func (p *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *Screen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ " + p.title + " ╌╌\n\n" + p.message + "\n\nPress Esc to go back.")
}

func (p *Screen) Title() string {
	return p.title
}
