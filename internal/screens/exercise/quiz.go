package exercise

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/a11ytutor/internal/screen"
	"github.com/abhisek/a11ytutor/internal/session"
	"github.com/abhisek/a11ytutor/internal/ui/components"
	"github.com/abhisek/a11ytutor/internal/ui/layout"
	"github.com/abhisek/a11ytutor/internal/ui/theme"
)

const answerLimit = 500

// QuizScreen collects one free-text answer per question and grades them
// together.
type QuizScreen struct {
	sess   *session.Session
	desc   session.Descriptor
	inputs []components.TextInput
	focus  int
	offset int
	score  string
	status statusLine
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// NewQuiz opens the active quiz of sess with empty answers.
func NewQuiz(sess *session.Session) *QuizScreen {
	desc := sess.Descriptor()
	inputs := make([]components.TextInput, len(desc.Exercise.Questions))
	for i := range inputs {
		inputs[i] = components.NewTextInput("Your answer...", answerLimit)
	}
	return &QuizScreen{
		sess:   sess,
		desc:   desc,
		inputs: inputs,
		status: statusLine{text: desc.Status},
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	if len(s.inputs) == 0 {
		return nil
	}
	return s.inputs[s.focus].Focus()
}

func (s *QuizScreen) Title() string {
	return "Quiz " + s.desc.Exercise.ID
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Ctrl+N", Description: "Next"},
		{Key: "Ctrl+P", Description: "Prev"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down", "enter":
			return s, s.moveFocus(1)
		case "shift+tab", "up":
			return s, s.moveFocus(-1)
		case "ctrl+s":
			s.submit()
			return s, nil
		case "ctrl+n":
			return s, navigate(s.sess, 1, &s.status)
		case "ctrl+p":
			return s, navigate(s.sess, -1, &s.status)
		}
	}

	if len(s.inputs) == 0 {
		return s, nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

// Answers returns the current answers in question order.
func (s *QuizScreen) Answers() []string {
	answers := make([]string, len(s.inputs))
	for i, in := range s.inputs {
		answers[i] = in.Value()
	}
	return answers
}

// SetAnswer fills the answer field for question i.
func (s *QuizScreen) SetAnswer(i int, answer string) {
	if i >= 0 && i < len(s.inputs) {
		s.inputs[i].SetValue(answer)
	}
}

// Focused returns the index of the focused question.
func (s *QuizScreen) Focused() int {
	return s.focus
}

func (s *QuizScreen) moveFocus(delta int) tea.Cmd {
	next := s.focus + delta
	if next < 0 || next >= len(s.inputs) {
		return nil
	}
	s.inputs[s.focus].Blur()
	s.focus = next
	return s.inputs[s.focus].Focus()
}

func (s *QuizScreen) submit() {
	fb := s.sess.SubmitQuiz(context.Background(), s.Answers())
	s.desc = s.sess.Descriptor()
	if fb.Score == nil {
		s.status = statusLine{text: fb.Message, tone: toneFail}
		return
	}
	for i := range s.inputs {
		s.inputs[i].Submit(fb.Score.PerQuestion[i])
	}
	s.score = fb.Score.String()
	if fb.Passed {
		s.status = statusLine{text: fb.Message, tone: tonePass}
		return
	}
	s.status = statusLine{text: fb.Message, tone: toneFail}
}

func (s *QuizScreen) View(width, height int) string {
	heading := renderHeading(s.desc, width)

	var footer strings.Builder
	if s.score != "" {
		footer.WriteString(lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render(s.score))
		footer.WriteString("\n")
	}
	footer.WriteString(s.status.render(width))

	avail := height - lipgloss.Height(heading) - lipgloss.Height(footer.String()) - 2
	body := s.renderQuestions(width, avail)
	return heading + "\n" + body + "\n" + footer.String()
}

// renderQuestions lays out every question with its input and scrolls so
// the focused one stays visible.
func (s *QuizScreen) renderQuestions(width, height int) string {
	promptStyle := lipgloss.NewStyle().Width(width - 6).Foreground(theme.Text)

	var blocks [][]string
	for i, q := range s.desc.Exercise.Questions {
		marker := "  "
		style := promptStyle
		if i == s.focus {
			marker = "▸ "
			style = style.Inherit(theme.Selected)
		}
		prompt := style.Render(fmt.Sprintf("%d. %s", i+1, q.Prompt))
		lines := strings.Split(prompt, "\n")
		lines[0] = marker + lines[0]
		for j := 1; j < len(lines); j++ {
			lines[j] = "  " + lines[j]
		}
		lines = append(lines, "     "+s.inputs[i].View(), "")
		blocks = append(blocks, lines)
	}

	s.adjustScroll(blocks, height)

	var out []string
	for i := s.offset; i < len(blocks); i++ {
		if len(out)+len(blocks[i]) > height && len(out) > 0 {
			break
		}
		out = append(out, blocks[i]...)
	}
	return strings.Join(out, "\n")
}

func (s *QuizScreen) adjustScroll(blocks [][]string, height int) {
	if s.focus < s.offset {
		s.offset = s.focus
	}
	for s.offset < s.focus {
		used := 0
		for i := s.offset; i <= s.focus; i++ {
			used += len(blocks[i])
		}
		if used <= height {
			return
		}
		s.offset++
	}
}
