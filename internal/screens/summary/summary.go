// Package summary shows what the learner did this session before the
// program exits.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/a11ytutor/internal/router"
	"github.com/abhisek/a11ytutor/internal/screen"
	"github.com/abhisek/a11ytutor/internal/session"
	"github.com/abhisek/a11ytutor/internal/ui/components"
	"github.com/abhisek/a11ytutor/internal/ui/layout"
	"github.com/abhisek/a11ytutor/internal/ui/theme"
)

// Screen displays the session summary. Enter quits, Esc goes back and h
// returns to the home menu.
type Screen struct {
	summary *session.SessionSummary
	quit    components.Button
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a summary screen.
func New(summary *session.SessionSummary) *Screen {
	return &Screen{
		summary: summary,
		quit:    components.NewButton("Quit", true, func() tea.Cmd { return tea.Quit }),
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Session Summary"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Quit"},
		{Key: "Esc", Description: "Keep learning"},
		{Key: "h", Description: "Home"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "h" {
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	var cmd tea.Cmd
	s.quit, cmd = s.quit.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Session complete"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).Render(fmt.Sprintf(
		"Submissions: %d        Passed: %d        Mastered: %d/%d",
		sum.Attempts, sum.Passed, len(sum.Mastered), sum.Total)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Progress", float64(sum.Percent)/100, true, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if len(sum.Mastered) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Mastered")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, layout.Divider(min(width-8, 60))))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Success).Render("✓ " + strings.Join(sum.Mastered, "  ✓ ")))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.quit.View()))
	return b.String()
}
