package exercise

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/a11ytutor/internal/curriculum"
	"github.com/abhisek/a11ytutor/internal/router"
	"github.com/abhisek/a11ytutor/internal/screen"
	"github.com/abhisek/a11ytutor/internal/session"
	"github.com/abhisek/a11ytutor/internal/validation"
)

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSession(t *testing.T) *session.Session {
	t.Helper()
	reg, err := curriculum.Default()
	require.NoError(t, err)
	return session.New(reg, validation.New(nil))
}

func replaced(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	return msg.Screen
}

func TestOpen_PicksScreenByKind(t *testing.T) {
	sess := testSession(t)
	_, ok := Open(sess).(*CodeScreen)
	assert.True(t, ok, "1.1.1 should open the editor")

	require.True(t, sess.GoTo("Q1"))
	_, ok = Open(sess).(*QuizScreen)
	assert.True(t, ok, "Q1 should open the quiz form")
}

func TestCode_SeededWithInitialSource(t *testing.T) {
	sess := testSession(t)
	s := NewCode(sess)
	assert.Equal(t, sess.Current().Initial, s.Source())
	assert.Equal(t, "Exercise 1.1.1", s.Title())
	assert.Contains(t, s.preview, "<img")
}

func TestCode_CheckInitialFails(t *testing.T) {
	sess := testSession(t)
	s := NewCode(sess)

	s.Update(ctrl('s'))

	assert.Equal(t, toneFail, s.status.tone)
	assert.Equal(t, "The image needs a descriptive 'alt' attribute.", s.status.text)
	assert.False(t, sess.IsMastered("1.1.1"))
}

func TestCode_CheckFixedPasses(t *testing.T) {
	sess := testSession(t)
	s := NewCode(sess)
	s.SetSource(`<img src="dog.jpg" alt="My pet dog">`)

	s.Update(ctrl('s'))

	assert.Equal(t, tonePass, s.status.tone)
	assert.Equal(t, session.MsgMastered, s.status.text)
	assert.True(t, sess.IsMastered("1.1.1"))
	assert.True(t, s.desc.Mastered)
}

func TestCode_Reset(t *testing.T) {
	sess := testSession(t)
	s := NewCode(sess)
	s.SetSource("<p>scratch</p>")

	s.Update(ctrl('r'))

	assert.Equal(t, sess.Current().Initial, s.Source())
	assert.Equal(t, session.MsgCodePrompt, s.status.text)
}

func TestCode_NextReplacesScreen(t *testing.T) {
	sess := testSession(t)
	s := NewCode(sess)

	_, cmd := s.Update(ctrl('n'))
	next := replaced(t, cmd)

	assert.Equal(t, 1, sess.Index())
	code, ok := next.(*CodeScreen)
	require.True(t, ok)
	assert.Equal(t, sess.Current().Initial, code.Source())
}

func TestCode_PrevAtStartIsNoOp(t *testing.T) {
	sess := testSession(t)
	s := NewCode(sess)
	_, cmd := s.Update(ctrl('p'))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, sess.Index())
}

func TestCode_TypingUpdatesPreview(t *testing.T) {
	sess := testSession(t)
	s := NewCode(sess)
	s.SetSource("")
	s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Equal(t, "x", s.Source())
	assert.Contains(t, s.preview, `"x"`)
}

func TestQuiz_FocusMoves(t *testing.T) {
	sess := testSession(t)
	require.True(t, sess.GoTo("Q4"))
	s := NewQuiz(sess)
	s.Init()

	s.Update(specialKey(tea.KeyTab))
	assert.Equal(t, 1, s.Focused())
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, 0, s.Focused())
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, 0, s.Focused(), "focus clamps at the first field")
}

func TestQuiz_SubmitShowsScore(t *testing.T) {
	sess := testSession(t)
	require.True(t, sess.GoTo("Q4"))
	s := NewQuiz(sess)

	answers := []string{
		"compatible with assistive technology",
		"unique so a label can reference them",
		"built-in accessibility",
		"role status",
		"a screen reader",
	}
	for i, a := range answers {
		s.SetAnswer(i, a)
	}
	s.Update(ctrl('s'))

	assert.Equal(t, "Score: 5/5 (100%)", s.score)
	assert.Equal(t, tonePass, s.status.tone)
	assert.True(t, sess.IsMastered("Q4"))
	assert.Contains(t, s.View(100, 40), "Score: 5/5 (100%)")
}

func TestQuiz_SubmitEmptyFails(t *testing.T) {
	sess := testSession(t)
	require.True(t, sess.GoTo("Q2"))
	s := NewQuiz(sess)

	s.Update(ctrl('s'))

	assert.Equal(t, toneFail, s.status.tone)
	assert.Equal(t, session.MsgQuizFailed, s.status.text)
	assert.True(t, strings.HasPrefix(s.score, "Score: 0/"))
}

func TestQuiz_NextAtEndCompletes(t *testing.T) {
	sess := testSession(t)
	require.True(t, sess.GoTo("Q4"))
	s := NewQuiz(sess)

	_, cmd := s.Update(ctrl('n'))

	assert.Nil(t, cmd)
	assert.Equal(t, toneDone, s.status.tone)
	assert.Equal(t, session.MsgCompleted, s.status.text)
	assert.Equal(t, "Q4", sess.Current().ID)
}

func TestViews_NonEmpty(t *testing.T) {
	sess := testSession(t)
	code := NewCode(sess)
	view := code.View(100, 30)
	assert.Contains(t, view, "1.1.1")
	assert.Contains(t, view, "non-text-content")

	require.True(t, sess.GoTo("Q1"))
	quiz := NewQuiz(sess)
	view = quiz.View(100, 30)
	assert.Contains(t, view, session.QuizInstructions)
	assert.NotEmpty(t, quiz.KeyHints())
}
