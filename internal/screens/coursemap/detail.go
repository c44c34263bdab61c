package coursemap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/a11ytutor/internal/curriculum"
	"github.com/abhisek/a11ytutor/internal/mastery"
	"github.com/abhisek/a11ytutor/internal/screen"
	"github.com/abhisek/a11ytutor/internal/session"
	"github.com/abhisek/a11ytutor/internal/ui/layout"
	"github.com/abhisek/a11ytutor/internal/ui/theme"
)

// DetailScreen shows one exercise without opening it.
type DetailScreen struct {
	ex       curriculum.Exercise
	links    curriculum.Links
	mastered bool
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

func newDetail(ex curriculum.Exercise, sess *session.Session) *DetailScreen {
	return &DetailScreen{
		ex:       ex,
		links:    sess.Registry().Links(),
		mastered: sess.IsMastered(ex.ID),
	}
}

func (d *DetailScreen) Init() tea.Cmd { return nil }
func (d *DetailScreen) Title() string { return d.ex.ID }

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DetailScreen) View(width, height int) string {
	contentWidth := min(width-8, 70)

	state := mastery.StateUnattempted
	label := "Not mastered yet"
	if d.mastered {
		state = mastery.StateMastered
		label = "Mastered"
	}
	icon := mastery.ResolveDisplayState(state, d.ex.IsQuiz()).Icon()

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text)
	section := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("  %s  %s", icon, d.ex.Label())))
	b.WriteString("\n")
	b.WriteString(dim.Render("  " + label))
	b.WriteString("\n\n")

	b.WriteString(dim.Render("  Group:  ") + val.Render(d.ex.Group) + "\n")
	b.WriteString(dim.Render("  Kind:   ") + val.Render(string(d.ex.Kind)) + "\n\n")

	if d.ex.IsQuiz() {
		b.WriteString(section.Render(fmt.Sprintf("  Questions (pass at %d%%)", d.ex.PassPercent)))
		b.WriteString("\n")
		for i, q := range d.ex.Questions {
			b.WriteString(lipgloss.NewStyle().
				Width(contentWidth).
				PaddingLeft(2).
				Foreground(theme.Text).
				Render(fmt.Sprintf("%d. %s", i+1, q.Prompt)))
			b.WriteString("\n")
		}
		return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "\n"+b.String())
	}

	b.WriteString(section.Render("  Requirement"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		PaddingLeft(2).
		Foreground(theme.Text).
		Render(d.ex.Requirement))
	b.WriteString("\n\n")

	u, hasU := d.links.Understanding(d.ex.ID)
	v, hasV := d.links.Video(d.ex.ID)
	if hasU || hasV {
		b.WriteString(section.Render("  Resources"))
		b.WriteString("\n")
		if hasU {
			b.WriteString(dim.Render("  Understanding: ") + theme.Link.Render(u) + "\n")
		}
		if hasV {
			b.WriteString(dim.Render("  Video:         ") + theme.Link.Render(v) + "\n")
		}
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "\n"+b.String())
}
