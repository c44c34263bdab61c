package history

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/a11ytutor/internal/store"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func seededRepo(t *testing.T) store.EventRepo {
	t.Helper()
	st, err := store.Open(store.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	repo := st.EventRepo()
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for _, d := range []store.AttemptData{
		{SessionID: "s1", ExerciseID: "1.1.1", Kind: "code", Diagnostic: "The image needs a descriptive 'alt' attribute.", Timestamp: ts},
		{SessionID: "s1", ExerciseID: "1.1.1", Kind: "code", Passed: true, Timestamp: ts.Add(time.Minute)},
		{SessionID: "s1", ExerciseID: "Q1", Kind: "quiz", Passed: true, Score: 88, Timestamp: ts.Add(2 * time.Minute)},
		{SessionID: "s2", ExerciseID: "1.2.1", Kind: "code", Timestamp: ts},
	} {
		require.NoError(t, repo.AppendAttempt(ctx, d))
	}
	return repo
}

func loaded(t *testing.T, s *Screen) *Screen {
	t.Helper()
	msg := s.Init()()
	next, _ := s.Update(msg)
	return next.(*Screen)
}

func TestLoadsSessionAttemptsNewestFirst(t *testing.T) {
	s := loaded(t, New(seededRepo(t), "s1"))

	require.Len(t, s.attempts, 3)
	assert.Equal(t, "Q1", s.attempts[0].ExerciseID)
	assert.Equal(t, 3, s.stats.Attempts)
	assert.Equal(t, 2, s.stats.Passed)

	view := s.View(100, 30)
	assert.Contains(t, view, "3 submissions")
	assert.Contains(t, view, "88%")
}

func TestEmptyJournal(t *testing.T) {
	s := loaded(t, New(seededRepo(t), "nobody"))
	assert.Contains(t, s.View(100, 30), "No submissions yet")
}

func TestLoadingState(t *testing.T) {
	s := New(seededRepo(t), "s1")
	assert.Contains(t, s.View(100, 30), "Loading")
}

func TestExpandShowsDiagnostic(t *testing.T) {
	s := loaded(t, New(seededRepo(t), "s1"))
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 2, s.selected)
	s.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 2, s.selected, "selection clamps at the last row")

	s.Update(specialKey(tea.KeyEnter))
	assert.Contains(t, s.View(120, 30), "descriptive 'alt'")
}

func TestKeyHints(t *testing.T) {
	s := New(seededRepo(t), "")
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
	if s.Title() != "History" {
		t.Errorf("Title = %q, want %q", s.Title(), "History")
	}
}
