package mastery

// MasteryState represents an exercise's position in the mastery lifecycle.
type MasteryState string

const (
	StateUnattempted MasteryState = "unattempted"
	StateMastered    MasteryState = "mastered"
)

// Triggers recorded on transitions.
const (
	TriggerCodeCheck = "code-check"
	TriggerQuizPass  = "quiz-pass"
)

// StateTransition records a mastery state change for display and event logging.
type StateTransition struct {
	ExerciseID string
	From       MasteryState
	To         MasteryState
	Trigger    string // "code-check", "quiz-pass"
}
