package session

import (
	"time"

	"github.com/abhisek/a11ytutor/internal/curriculum"
	"github.com/abhisek/a11ytutor/internal/mastery"
)

// Descriptor is everything the presentation layer needs to draw the active
// exercise.
type Descriptor struct {
	Exercise      curriculum.Exercise
	Group         string
	Position      int // 1-based
	Total         int
	Prompt        string // requirement, or quiz instructions
	Status        string // initial feedback line
	Understanding string // code exercises only; empty when unknown
	Video         string // code exercises only; empty when unknown
	Mastered      bool
}

// Descriptor describes the active exercise.
func (s *Session) Descriptor() Descriptor {
	ex := s.nav.Current()
	d := Descriptor{
		Exercise: ex,
		Group:    ex.Group,
		Position: s.nav.Index() + 1,
		Total:    s.reg.Len(),
		Mastered: s.tracker.IsMastered(ex.ID),
	}
	if ex.IsQuiz() {
		d.Prompt = QuizInstructions
		d.Status = MsgQuizPrompt
		return d
	}
	d.Prompt = ex.Requirement
	d.Status = MsgCodePrompt
	links := s.reg.Links()
	d.Understanding, _ = links.Understanding(ex.ID)
	d.Video, _ = links.Video(ex.ID)
	return d
}

// OutlineEntry is one row of the curriculum sidebar.
type OutlineEntry struct {
	ID       string
	Title    string
	Group    string
	Kind     curriculum.Kind
	Mastered bool
	Active   bool
}

// Display resolves how the entry is drawn.
func (e OutlineEntry) Display() mastery.DisplayState {
	state := mastery.StateUnattempted
	if e.Mastered {
		state = mastery.StateMastered
	}
	return mastery.ResolveDisplayState(state, e.Kind == curriculum.KindQuiz)
}

// Outline lists every exercise in curriculum order with its progress.
func (s *Session) Outline() []OutlineEntry {
	all := s.reg.All()
	cur := s.nav.Index()
	out := make([]OutlineEntry, len(all))
	for i, ex := range all {
		out[i] = OutlineEntry{
			ID:       ex.ID,
			Title:    ex.Title,
			Group:    ex.Group,
			Kind:     ex.Kind,
			Mastered: s.tracker.IsMastered(ex.ID),
			Active:   i == cur,
		}
	}
	return out
}

// SessionSummary holds the data displayed when the learner leaves.
type SessionSummary struct {
	SessionID string
	Duration  time.Duration
	Attempts  int
	Passed    int
	Mastered  []string
	Total     int
	Percent   int
}

// Summary reports the session so far.
func (s *Session) Summary() *SessionSummary {
	return &SessionSummary{
		SessionID: s.id,
		Duration:  s.now().Sub(s.started),
		Attempts:  s.attempts,
		Passed:    s.passed,
		Mastered:  s.tracker.Mastered(),
		Total:     s.reg.Len(),
		Percent:   s.tracker.Percent(),
	}
}
