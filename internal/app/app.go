// Package app is the root Bubble Tea model: it owns the screen router and
// draws the frame around the active screen.
package app

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/a11ytutor/internal/router"
	"github.com/abhisek/a11ytutor/internal/screen"
	"github.com/abhisek/a11ytutor/internal/screens/home"
	"github.com/abhisek/a11ytutor/internal/screens/welcome"
	"github.com/abhisek/a11ytutor/internal/session"
	"github.com/abhisek/a11ytutor/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Session *session.Session
	Logger  *slog.Logger
	// SkipSplash opens the home menu directly.
	SkipSplash bool
}

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	sess   *session.Session
	width  int
	height int
}

// NewModel creates the root model, starting at the splash screen unless
// opts.SkipSplash is set.
func NewModel(opts Options) Model {
	sess := opts.Session
	homeFactory := func() screen.Screen { return home.New(sess) }

	var first screen.Screen = welcome.New(homeFactory)
	if opts.SkipSplash {
		first = homeFactory()
	}
	return Model{
		router: router.New(first),
		sess:   sess,
	}
}

func (m Model) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	return m, m.router.Update(msg)
}

// Router exposes the screen stack.
func (m Model) Router() *router.Router {
	return m.router
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, active screen and footer at the current size.
func (m Model) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, m.sess.MasteredCount(), m.sess.Registry().Len(), m.sess.Percent(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m Model) footerHints() []layout.KeyHint {
	if hints := m.router.KeyHints(); len(hints) > 0 {
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the TUI and blocks until the learner quits.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Info("tui started", "session_id", opts.Session.ID(), "exercises", opts.Session.Registry().Len())

	p := tea.NewProgram(NewModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	sum := opts.Session.Summary()
	logger.Info("tui finished",
		"session_id", sum.SessionID,
		"attempts", sum.Attempts,
		"mastered", len(sum.Mastered),
		"percent", sum.Percent,
	)
	return nil
}
