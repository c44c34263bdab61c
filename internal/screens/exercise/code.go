package exercise

import (
	"context"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/a11ytutor/internal/dom"
	"github.com/abhisek/a11ytutor/internal/screen"
	"github.com/abhisek/a11ytutor/internal/session"
	"github.com/abhisek/a11ytutor/internal/ui/layout"
	"github.com/abhisek/a11ytutor/internal/ui/theme"
)

// CodeScreen edits and checks the markup of a code exercise.
type CodeScreen struct {
	sess    *session.Session
	desc    session.Descriptor
	editor  textarea.Model
	parser  dom.Parser
	preview string
	status  statusLine
}

var _ screen.Screen = (*CodeScreen)(nil)
var _ screen.KeyHintProvider = (*CodeScreen)(nil)

// NewCode opens the active exercise of sess in the editor, seeded with its
// initial source.
func NewCode(sess *session.Session) *CodeScreen {
	desc := sess.Descriptor()

	ed := textarea.New()
	ed.ShowLineNumbers = true
	ed.CharLimit = 0
	ed.Placeholder = "<!-- markup -->"
	ed.SetValue(desc.Exercise.Initial)
	ed.Focus()

	s := &CodeScreen{
		sess:   sess,
		desc:   desc,
		editor: ed,
		parser: dom.HTMLParser{},
		status: statusLine{text: desc.Status},
	}
	s.refreshPreview()
	return s
}

func (s *CodeScreen) Init() tea.Cmd {
	return nil
}

func (s *CodeScreen) Title() string {
	return "Exercise " + s.desc.Exercise.ID
}

func (s *CodeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Check"},
		{Key: "Ctrl+N", Description: "Next"},
		{Key: "Ctrl+P", Description: "Prev"},
		{Key: "Ctrl+R", Description: "Reset"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CodeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "ctrl+s":
			s.check()
			return s, nil
		case "ctrl+n":
			return s, navigate(s.sess, 1, &s.status)
		case "ctrl+p":
			return s, navigate(s.sess, -1, &s.status)
		case "ctrl+r":
			s.reset()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.editor, cmd = s.editor.Update(msg)
	s.refreshPreview()
	return s, cmd
}

// Source returns the editor contents.
func (s *CodeScreen) Source() string {
	return s.editor.Value()
}

// SetSource replaces the editor contents.
func (s *CodeScreen) SetSource(src string) {
	s.editor.SetValue(src)
	s.refreshPreview()
}

func (s *CodeScreen) check() {
	fb := s.sess.SubmitCode(context.Background(), s.editor.Value())
	s.desc = s.sess.Descriptor()
	if fb.Passed {
		s.status = statusLine{text: fb.Message, tone: tonePass}
		return
	}
	s.status = statusLine{text: fb.Message, tone: toneFail}
}

func (s *CodeScreen) reset() {
	s.SetSource(s.desc.Exercise.Initial)
	s.status = statusLine{text: session.MsgCodePrompt}
}

func (s *CodeScreen) refreshPreview() {
	s.preview = dom.Outline(s.parser.Parse(s.editor.Value()))
}

func (s *CodeScreen) View(width, height int) string {
	heading := renderHeading(s.desc, width)
	status := s.status.render(width)

	paneHeight := height - lipgloss.Height(heading) - lipgloss.Height(status) - 3
	if paneHeight < 3 {
		paneHeight = 3
	}
	editorWidth := width * 3 / 5
	previewWidth := width - editorWidth - 6

	s.editor.SetWidth(editorWidth - 4)
	s.editor.SetHeight(paneHeight)

	editor := theme.FocusedCard.
		Width(editorWidth).
		Render(s.editor.View())

	tree := s.preview
	if tree == "" {
		tree = theme.Hint.Render("(empty document)")
	}
	preview := theme.Card.
		Width(previewWidth).
		Height(paneHeight).
		MaxHeight(paneHeight + 2).
		Render(theme.Subtitle.Render("Structure") + "\n" + theme.Code.Render(tree))

	panes := lipgloss.JoinHorizontal(lipgloss.Top, " ", editor, " ", preview)
	return heading + "\n" + panes + "\n" + status
}
