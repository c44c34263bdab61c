package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/a11ytutor/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
	updates int
	hints   []screen.KeyHint
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

type hintedScreen struct{ stubScreen }

func (h *hintedScreen) KeyHints() []screen.KeyHint { return h.hints }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

func TestPopToRoot(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "curriculum"})
	r.Push(&stubScreen{title: "exercise"})

	r.Update(PopToRootMsg{})

	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("Active = %q, want %q", r.Active().Title(), "home")
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	bottom := &stubScreen{title: "home"}
	top := &stubScreen{title: "exercise"}
	r := New(bottom)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if top.updates != 1 || bottom.updates != 0 {
		t.Errorf("updates top=%d bottom=%d, want 1 and 0", top.updates, bottom.updates)
	}
}

func TestKeyHints(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	if r.KeyHints() != nil {
		t.Error("expected nil hints from a screen without KeyHints")
	}

	h := &hintedScreen{}
	h.hints = []screen.KeyHint{{Key: "Ctrl+S", Description: "Check"}}
	r.Push(h)
	if got := r.KeyHints(); len(got) != 1 || got[0].Key != "Ctrl+S" {
		t.Errorf("KeyHints = %v", got)
	}
}
