package store

import (
	"context"
	"time"
)

// QueryOpts configures journal queries with filtering and pagination.
type QueryOpts struct {
	Limit      int    // max results (0 = unlimited)
	After      int64  // sequence > After
	Before     int64  // sequence < Before
	SessionID  string // exact match when set
	ExerciseID string // exact match when set
}

// AttemptData captures one submission.
type AttemptData struct {
	SessionID  string
	ExerciseID string
	Kind       string // "code" or "quiz"
	Passed     bool
	Diagnostic string
	Score      int // quiz percent; 0 for code
	Timestamp  time.Time
}

// Attempt is a journaled submission.
type Attempt struct {
	Sequence int64
	AttemptData
}

// MasteryEventData captures a mastery state change.
type MasteryEventData struct {
	SessionID  string
	ExerciseID string
	FromState  string
	ToState    string
	Trigger    string
	Timestamp  time.Time
}

// MasteryEvent is a journaled mastery transition.
type MasteryEvent struct {
	Sequence int64
	MasteryEventData
}

// AttemptStats aggregates the journal.
type AttemptStats struct {
	Attempts  int
	Passed    int
	Exercises int // distinct exercises attempted
}

// AttemptRepo provides append and query access to submissions.
type AttemptRepo interface {
	// AppendAttempt records a submission.
	AppendAttempt(ctx context.Context, data AttemptData) error

	// Attempts returns submissions newest first.
	Attempts(ctx context.Context, opts QueryOpts) ([]Attempt, error)

	// Stats aggregates the submissions matching opts. Limit is ignored.
	Stats(ctx context.Context, opts QueryOpts) (AttemptStats, error)
}

// EventRepo is the full journal: attempts plus mastery transitions.
type EventRepo interface {
	AttemptRepo

	// AppendMasteryEvent records a mastery transition.
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error

	// MasteryEvents returns transitions oldest first.
	MasteryEvents(ctx context.Context, opts QueryOpts) ([]MasteryEvent, error)
}
