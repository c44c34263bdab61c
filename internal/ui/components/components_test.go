package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

type pressedMsg struct{ label string }

func testMenu() Menu {
	item := func(label string, disabled bool) MenuItem {
		return MenuItem{
			Label:    label,
			Disabled: disabled,
			Action: func() tea.Cmd {
				return func() tea.Msg { return pressedMsg{label} }
			},
		}
	}
	return NewMenu([]MenuItem{
		item("CONTINUE", false),
		item("HISTORY", true),
		item("QUIT", false),
	})
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	m := testMenu()
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if got := cmd().(pressedMsg).label; got != "CONTINUE" {
		t.Errorf("pressed = %q, want %q", got, "CONTINUE")
	}
}

func TestMenu_FirstEnabledSelected(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A", Disabled: true}, {Label: "B"}})
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
	if d := m.Disabled(); !d[0] || d[1] {
		t.Errorf("Disabled = %v", d)
	}
}

func TestProgressBar_Clamps(t *testing.T) {
	for _, pct := range []float64{-1, 0, 0.5, 1, 2} {
		view := NewProgressBar("", pct, false, 20).View()
		if strings.Count(view, "█")+strings.Count(view, "░") != 20 {
			t.Errorf("bar(%v) has wrong width: %q", pct, view)
		}
	}
}

func TestTextInput_ResultMark(t *testing.T) {
	in := NewTextInput("answer", 0)
	in.SetValue("alt text")
	if in.Value() != "alt text" {
		t.Errorf("Value = %q", in.Value())
	}
	in.Submit(true)
	if !strings.Contains(in.View(), "✓") {
		t.Error("expected ✓ after a satisfied submission")
	}
	in.Reset()
	if strings.Contains(in.View(), "✓") {
		t.Error("expected no mark after Reset")
	}
}
