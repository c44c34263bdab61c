package exercise

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/a11ytutor/internal/mastery"
	"github.com/abhisek/a11ytutor/internal/session"
	"github.com/abhisek/a11ytutor/internal/ui/layout"
	"github.com/abhisek/a11ytutor/internal/ui/theme"
)

type tone int

const (
	toneNeutral tone = iota
	tonePass
	toneFail
	toneDone
)

// statusLine is the feedback line under the work area.
type statusLine struct {
	text string
	tone tone
}

func (l statusLine) render(width int) string {
	style := lipgloss.NewStyle().Width(width).PaddingLeft(2)
	switch l.tone {
	case tonePass:
		return style.Inherit(theme.Correct).Render(l.text)
	case toneFail:
		// The cross keeps failures readable without color.
		return style.Inherit(theme.Incorrect).Render("✗ " + l.text)
	case toneDone:
		return style.Foreground(theme.ArcadeYellow).Bold(true).Render(l.text)
	default:
		return style.Foreground(theme.TextDim).Render(l.text)
	}
}

// renderHeading draws the exercise title line, its position in the
// curriculum and the requirement text.
func renderHeading(d session.Descriptor, width int) string {
	state := mastery.StateUnattempted
	if d.Mastered {
		state = mastery.StateMastered
	}
	icon := mastery.ResolveDisplayState(state, d.Exercise.IsQuiz()).Icon()

	left := theme.Title.Render(fmt.Sprintf("  %s %s", icon, d.Exercise.Label()))
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d  %s", d.Position, d.Total, d.Group))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 2; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width - 4).
		PaddingLeft(2).
		Foreground(theme.Text).
		Render(d.Prompt))
	b.WriteString("\n")
	if d.Understanding != "" {
		b.WriteString(theme.Subtitle.Render("  Learn: ") + theme.Link.Render(d.Understanding) + "\n")
	}
	if d.Video != "" {
		b.WriteString(theme.Subtitle.Render("  Video: ") + theme.Link.Render(d.Video) + "\n")
	}
	b.WriteString("  " + layout.Divider(width-4))
	return b.String()
}
