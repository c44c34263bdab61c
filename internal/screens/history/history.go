// Package history lists the submissions recorded in the attempt journal.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/a11ytutor/internal/screen"
	"github.com/abhisek/a11ytutor/internal/store"
	"github.com/abhisek/a11ytutor/internal/ui/layout"
	"github.com/abhisek/a11ytutor/internal/ui/theme"
)

const pageSize = 100

type historyLoadedMsg struct {
	Attempts []store.Attempt
	Stats    store.AttemptStats
	Err      error
}

// Screen displays journal rows, newest first. Enter expands a row to show
// its diagnostic.
type Screen struct {
	repo      store.AttemptRepo
	sessionID string
	attempts  []store.Attempt
	stats     store.AttemptStats
	selected  int
	offset    int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a history screen for one session's attempts. An empty
// sessionID lists every session in the journal.
func New(repo store.AttemptRepo, sessionID string) *Screen {
	return &Screen{
		repo:      repo,
		sessionID: sessionID,
		expanded:  make(map[int]bool),
	}
}

func (s *Screen) Init() tea.Cmd {
	repo, sessionID := s.repo, s.sessionID
	return func() tea.Msg {
		ctx := context.Background()
		attempts, err := repo.Attempts(ctx, store.QueryOpts{Limit: pageSize, SessionID: sessionID})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		stats, err := repo.Stats(ctx, store.QueryOpts{SessionID: sessionID})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Attempts: attempts, Stats: stats}
	}
}

func (s *Screen) Title() string {
	return "History"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\nLoading history...")
	}
	if len(s.attempts) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\nNo submissions yet. Check an exercise with Ctrl+S.")
	}

	stats := center.Foreground(theme.TextDim).Render(fmt.Sprintf(
		"%d submissions  %d passed  %d exercises tried",
		s.stats.Attempts, s.stats.Passed, s.stats.Exercises))

	var lines []string
	for i, a := range s.attempts {
		lines = append(lines, s.renderRow(i, a))
		if s.expanded[i] {
			lines = append(lines, s.renderDetail(a, width)...)
		}
	}

	return stats + "\n\n" + strings.Join(s.window(lines, height-2), "\n")
}

func (s *Screen) renderRow(i int, a store.Attempt) string {
	mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗ fail")
	if a.Passed {
		mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ pass")
	}
	score := ""
	if a.Kind == "quiz" {
		score = fmt.Sprintf("  %d%%", a.Score)
	}

	prefix := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		prefix = "▸ "
		style = theme.Selected
	}
	text := style.Render(fmt.Sprintf("%s%s  %-8s %-5s", prefix, a.Timestamp.Format("15:04:05"), a.ExerciseID, a.Kind))
	return "  " + text + " " + mark + score
}

func (s *Screen) renderDetail(a store.Attempt, width int) []string {
	text := a.Diagnostic
	if text == "" {
		text = "No diagnostic."
	}
	detail := lipgloss.NewStyle().
		Width(min(width-12, 70)).
		Foreground(theme.TextDim).
		Italic(true).
		Render(text)
	var out []string
	for _, l := range strings.Split(detail, "\n") {
		out = append(out, "        "+l)
	}
	return out
}

// window returns the slice of lines that keeps the selected row visible.
// Row i starts at or after line i, so scrolling by the row index is enough.
func (s *Screen) window(lines []string, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+height {
		s.offset = s.selected - height + 1
	}
	end := min(s.offset+height, len(lines))
	return lines[s.offset:end]
}
