// Package home is the landing screen: progress at a glance and the main
// menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/a11ytutor/internal/router"
	"github.com/abhisek/a11ytutor/internal/screen"
	"github.com/abhisek/a11ytutor/internal/screens/coursemap"
	"github.com/abhisek/a11ytutor/internal/screens/exercise"
	"github.com/abhisek/a11ytutor/internal/screens/history"
	"github.com/abhisek/a11ytutor/internal/screens/placeholder"
	"github.com/abhisek/a11ytutor/internal/screens/summary"
	"github.com/abhisek/a11ytutor/internal/session"
	"github.com/abhisek/a11ytutor/internal/ui/components"
	"github.com/abhisek/a11ytutor/internal/ui/layout"
)

// Screen is the main menu.
type Screen struct {
	sess *session.Session
	menu components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the home screen for sess.
func New(sess *session.Session) *Screen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			next := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}

	items := []components.MenuItem{
		{Label: "CONTINUE", Action: push(func() screen.Screen {
			return exercise.Open(sess)
		})},
		{Label: "CURRICULUM", Action: push(func() screen.Screen {
			return coursemap.New(sess)
		})},
		{Label: "HISTORY", Action: push(func() screen.Screen {
			if sess.Journal() == nil {
				return placeholder.New("History", "The attempt journal is turned off.")
			}
			return history.New(sess.Journal(), sess.ID())
		})},
		{Label: "QUIT", Action: push(func() screen.Screen {
			return summary.New(sess.Summary())
		})},
	}

	return &Screen{
		sess: sess,
		menu: components.NewMenu(items),
	}
}

func (h *Screen) Init() tea.Cmd {
	return nil
}

func (h *Screen) Title() string {
	return "Home"
}

func (h *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *Screen) View(width, height int) string {
	// height is the content area; add back header and footer
	compact := layout.IsCompactHeight(height+6) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(h.sess), cw))
	}
	sections = append(sections, renderStatsBar(h.sess, cw, compact))
	sections = append(sections, renderCurrent(h.sess, cw))
	if compact {
		sections = append(sections, renderMenuCompact(h.menu, cw))
	} else {
		sections = append(sections, renderMenu(h.menu, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func mascotFor(sess *session.Session) MascotVariant {
	switch {
	case sess.MasteredCount() == sess.Registry().Len():
		return MascotCelebrating
	case sess.MasteredCount() > 0:
		return MascotHappy
	default:
		return MascotIdle
	}
}
