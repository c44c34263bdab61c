package mastery

// DisplayState is how an exercise is drawn in the curriculum sidebar.
type DisplayState int

const (
	DisplayPending DisplayState = iota
	DisplayMastered
	DisplayQuiz
	DisplayQuizMastered
)

// ResolveDisplayState maps a mastery state and exercise kind into the
// display state used by the UI.
func ResolveDisplayState(state MasteryState, quiz bool) DisplayState {
	switch {
	case quiz && state == StateMastered:
		return DisplayQuizMastered
	case quiz:
		return DisplayQuiz
	case state == StateMastered:
		return DisplayMastered
	default:
		return DisplayPending
	}
}

// Icon returns the glyph for a display state.
func (d DisplayState) Icon() string {
	switch d {
	case DisplayMastered:
		return "✓"
	case DisplayQuiz:
		return "?"
	case DisplayQuizMastered:
		return "★"
	default:
		return "○"
	}
}
