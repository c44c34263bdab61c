// Package coursemap is the sidebar view of the whole curriculum: groups
// that fold open, each exercise with its completion mark.
package coursemap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/a11ytutor/internal/router"
	"github.com/abhisek/a11ytutor/internal/screen"
	"github.com/abhisek/a11ytutor/internal/screens/exercise"
	"github.com/abhisek/a11ytutor/internal/session"
	"github.com/abhisek/a11ytutor/internal/ui/layout"
	"github.com/abhisek/a11ytutor/internal/ui/theme"
)

type rowKind int

const (
	rowGroupHeader rowKind = iota
	rowExercise
)

type row struct {
	kind  rowKind
	group string
	entry session.OutlineEntry
}

// Screen lists the curriculum by group. Groups start collapsed.
type Screen struct {
	sess         *session.Session
	expanded     map[string]bool
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the curriculum screen for sess.
func New(sess *session.Session) *Screen {
	s := &Screen{
		sess:     sess,
		expanded: make(map[string]bool),
	}
	s.rebuild()
	s.cursorToActive()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Curriculum"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open / Fold"},
		{Key: "Tab", Description: "Group"},
		{Key: "i", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.jumpGroup(1)
		case "shift+tab":
			s.jumpGroup(-1)
		case "space", " ":
			s.toggle()
		case "enter":
			return s, s.activate()
		case "i", "right", "l":
			return s, s.details()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// rebuild recomputes the visible rows from the session outline.
func (s *Screen) rebuild() {
	var rows []row
	var last string
	for _, e := range s.sess.Outline() {
		if e.Group != last {
			rows = append(rows, row{kind: rowGroupHeader, group: e.Group})
			last = e.Group
		}
		if s.expanded[e.Group] {
			rows = append(rows, row{kind: rowExercise, group: e.Group, entry: e})
		}
	}
	s.rows = rows
	if s.cursor >= len(s.rows) {
		s.cursor = len(s.rows) - 1
	}
}

// cursorToActive places the cursor on the active exercise, or on its group
// header while the group is folded.
func (s *Screen) cursorToActive() {
	g, _ := s.sess.Registry().GroupOf(s.sess.Current().ID)
	for i, r := range s.rows {
		if r.kind == rowExercise && r.entry.Active {
			s.cursor = i
			return
		}
		if r.kind == rowGroupHeader && r.group == g {
			s.cursor = i
		}
	}
}

func (s *Screen) moveCursor(delta int) {
	next := s.cursor + delta
	if next >= 0 && next < len(s.rows) {
		s.cursor = next
	}
}

// jumpGroup moves the cursor to the next or previous group header.
func (s *Screen) jumpGroup(delta int) {
	for i := s.cursor + delta; i >= 0 && i < len(s.rows); i += delta {
		if s.rows[i].kind == rowGroupHeader {
			s.cursor = i
			return
		}
	}
}

// toggle folds or unfolds the group under the cursor, keeping the cursor on
// its header.
func (s *Screen) toggle() {
	if len(s.rows) == 0 {
		return
	}
	g := s.rows[s.cursor].group
	s.expanded[g] = !s.expanded[g]
	s.rebuild()
	for i, r := range s.rows {
		if r.kind == rowGroupHeader && r.group == g {
			s.cursor = i
			return
		}
	}
}

// activate folds a header or opens the exercise under the cursor.
func (s *Screen) activate() tea.Cmd {
	if len(s.rows) == 0 {
		return nil
	}
	r := s.rows[s.cursor]
	if r.kind == rowGroupHeader {
		s.toggle()
		return nil
	}
	if !s.sess.GoTo(r.entry.ID) {
		return nil
	}
	s.rebuild()
	next := exercise.Open(s.sess)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *Screen) details() tea.Cmd {
	if len(s.rows) == 0 || s.rows[s.cursor].kind != rowExercise {
		return nil
	}
	ex, ok := s.sess.Registry().Get(s.rows[s.cursor].entry.ID)
	if !ok {
		return nil
	}
	d := newDetail(ex, s.sess)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: d}
	}
}

func (s *Screen) View(width, height int) string {
	// Progress may have changed while an exercise screen was on top.
	s.rebuild()
	if len(s.rows) == 0 {
		return ""
	}
	s.adjustScroll(height)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < height; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowGroupHeader:
			lines = append(lines, s.renderGroupHeader(r.group, i == s.cursor, width))
		case rowExercise:
			lines = append(lines, s.renderExerciseRow(r.entry, i == s.cursor, width))
		}
	}
	return strings.Join(lines, "\n")
}

func (s *Screen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *Screen) renderGroupHeader(group string, selected bool, width int) string {
	fold := "▸"
	if s.expanded[group] {
		fold = "▾"
	}
	done, total := 0, 0
	for _, e := range s.sess.Outline() {
		if e.Group != group {
			continue
		}
		total++
		if e.Mastered {
			done++
		}
	}

	style := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	if selected {
		style = theme.Selected
	}
	cursor := "  "
	if selected {
		cursor = "› "
	}
	name := style.Render(fmt.Sprintf("%s %s", fold, strings.ToUpper(group)))
	count := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d/%d", done, total))

	line := cursor + name
	if pad := width - lipgloss.Width(line) - lipgloss.Width(count) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + count
	}
	return line
}

func (s *Screen) renderExerciseRow(e session.OutlineEntry, selected bool, width int) string {
	icon := e.Display().Icon()

	nameWidth := width - 16
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := e.ID + "  " + e.Title
	if r := []rune(name); len(r) > nameWidth {
		name = string(r[:nameWidth-1]) + "…"
	}

	var style lipgloss.Style
	switch {
	case selected:
		style = theme.Selected
	case e.Mastered:
		style = lipgloss.NewStyle().Foreground(theme.Success)
	default:
		style = theme.Unselected
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}
	active := ""
	if e.Active {
		active = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("  ◂ current")
	}
	return fmt.Sprintf("    %s%s %s%s", cursor, icon, style.Render(name), active)
}
