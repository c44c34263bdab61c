// Package mastery tracks which exercises a learner has mastered during a
// session. Mastery is monotonic: nothing un-masters an exercise.
package mastery

import (
	"slices"

	"github.com/abhisek/a11ytutor/internal/grader"
)

// Tracker holds the mastered set for one session.
type Tracker struct {
	total    int
	mastered map[string]bool
}

// NewTracker creates a tracker for a curriculum of total exercises.
func NewTracker(total int) *Tracker {
	if total < 0 {
		total = 0
	}
	return &Tracker{total: total, mastered: make(map[string]bool)}
}

// Master records a successful attempt on id. It returns a transition only the
// first time id is mastered; repeat successes return nil.
func (t *Tracker) Master(id, trigger string) *StateTransition {
	if t.mastered[id] {
		return nil
	}
	t.mastered[id] = true
	return &StateTransition{
		ExerciseID: id,
		From:       StateUnattempted,
		To:         StateMastered,
		Trigger:    trigger,
	}
}

// State returns the current state of id.
func (t *Tracker) State(id string) MasteryState {
	if t.mastered[id] {
		return StateMastered
	}
	return StateUnattempted
}

// IsMastered reports whether id has been mastered.
func (t *Tracker) IsMastered(id string) bool { return t.mastered[id] }

// Count returns the number of mastered exercises.
func (t *Tracker) Count() int { return len(t.mastered) }

// Total returns the curriculum size the tracker was created with.
func (t *Tracker) Total() int { return t.total }

// Fraction returns mastered/total in [0, 1].
func (t *Tracker) Fraction() float64 {
	if t.total == 0 {
		return 0
	}
	return float64(len(t.mastered)) / float64(t.total)
}

// Percent returns the mastery percentage rounded to the nearest integer.
func (t *Tracker) Percent() int {
	return grader.Percent(len(t.mastered), t.total)
}

// Mastered returns the mastered IDs in sorted order.
func (t *Tracker) Mastered() []string {
	ids := make([]string, 0, len(t.mastered))
	for id := range t.mastered {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
