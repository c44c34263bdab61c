// Package exercise holds the screens a learner works in: the code editor
// for code exercises and the answer form for quizzes.
package exercise

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/a11ytutor/internal/router"
	"github.com/abhisek/a11ytutor/internal/screen"
	"github.com/abhisek/a11ytutor/internal/session"
)

// Open returns the screen for the session's active exercise.
func Open(sess *session.Session) screen.Screen {
	if sess.Current().IsQuiz() {
		return NewQuiz(sess)
	}
	return NewCode(sess)
}

// openCurrent replaces the calling screen with the one for the active
// exercise.
func openCurrent(sess *session.Session) tea.Cmd {
	next := Open(sess)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// navigate moves the session forward (delta > 0) or back and reopens the
// active exercise. At the end of the curriculum it reports completion on
// line instead.
func navigate(sess *session.Session, delta int, line *statusLine) tea.Cmd {
	if delta > 0 {
		if done, msg := sess.Advance(); done {
			*line = statusLine{text: msg, tone: toneDone}
			return nil
		}
		return openCurrent(sess)
	}
	if !sess.Back() {
		return nil
	}
	return openCurrent(sess)
}
