package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/a11ytutor/internal/curriculum"
	"github.com/abhisek/a11ytutor/internal/router"
	"github.com/abhisek/a11ytutor/internal/screens/home"
	"github.com/abhisek/a11ytutor/internal/screens/placeholder"
	"github.com/abhisek/a11ytutor/internal/screens/summary"
	"github.com/abhisek/a11ytutor/internal/screens/welcome"
	"github.com/abhisek/a11ytutor/internal/session"
	"github.com/abhisek/a11ytutor/internal/validation"
)

func testModel(t *testing.T, skipSplash bool) Model {
	t.Helper()
	reg, err := curriculum.Default()
	require.NoError(t, err)
	sess := session.New(reg, validation.New(nil))
	return NewModel(Options{Session: sess, SkipSplash: skipSplash})
}

func resize(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func TestNewModel_InitialScreen(t *testing.T) {
	m := testModel(t, false)
	if _, ok := m.Router().Active().(*welcome.Screen); !ok {
		t.Errorf("Active() = %T, want *welcome.Screen", m.Router().Active())
	}

	m = testModel(t, true)
	if _, ok := m.Router().Active().(*home.Screen); !ok {
		t.Errorf("Active() = %T, want *home.Screen", m.Router().Active())
	}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := testModel(t, true)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestUpdate_EscPopsAboveRoot(t *testing.T) {
	m := testModel(t, true)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd, "esc on the root screen is a no-op")

	m.Update(router.PushScreenMsg{Screen: placeholder.New("History", "empty")})
	require.Equal(t, 2, m.Router().Depth())

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(router.PopScreenMsg)
	require.True(t, ok)

	m.Update(msg)
	assert.Equal(t, 1, m.Router().Depth())
}

func TestView_Frame(t *testing.T) {
	m := resize(t, testModel(t, true), 120, 40)
	out := m.render()

	assert.Contains(t, out, "a11ytutor")
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "0% complete")
	assert.Contains(t, out, "Enter")
	assert.Contains(t, out, "Ctrl+C")
}

func TestView_TooSmall(t *testing.T) {
	m := resize(t, testModel(t, true), 60, 20)
	out := m.render()
	assert.True(t, strings.Contains(out, "Terminal too small"))
}

func TestFooterHints(t *testing.T) {
	m := testModel(t, false)
	hints := m.footerHints()
	require.NotEmpty(t, hints)
	assert.Equal(t, "Ctrl+C", hints[len(hints)-1].Key)
}

func TestUpdate_SummaryHomeReturnsToRoot(t *testing.T) {
	m := testModel(t, true)
	m.Update(router.PushScreenMsg{Screen: placeholder.New("History", "empty")})
	m.Update(router.PushScreenMsg{Screen: summary.New(m.sess.Summary())})
	require.Equal(t, 3, m.Router().Depth())

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, 1, m.Router().Depth())
	if _, ok := m.Router().Active().(*home.Screen); !ok {
		t.Errorf("Active() = %T, want *home.Screen", m.Router().Active())
	}
}
