// Package session owns one learner's run through the curriculum: the
// navigator, the mastery tracker, and the attempt journal.
package session

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/a11ytutor/internal/curriculum"
	"github.com/abhisek/a11ytutor/internal/grader"
	"github.com/abhisek/a11ytutor/internal/mastery"
	"github.com/abhisek/a11ytutor/internal/store"
	"github.com/abhisek/a11ytutor/internal/validation"
)

// Messages shown on the feedback line.
const (
	MsgMastered      = "✅ Mastery Achieved!"
	MsgQuizFailed    = "Not enough to pass yet. Review the Learn notes and try again."
	MsgCompleted     = "🎉 Congratulations! You completed the curriculum."
	MsgNotCode       = "This is a code exercise. Fix the code and check it."
	MsgCodePrompt    = "Fix the code to meet the requirement."
	MsgQuizPrompt    = "Answer the questions and submit."
	QuizInstructions = "Answer all questions below, then submit."
)

// Feedback is the result of one submission.
type Feedback struct {
	Passed     bool
	Message    string
	Transition *mastery.StateTransition // set on first mastery only
	Score      *grader.Score            // quizzes only
}

// Option configures a Session.
type Option func(*Session)

// WithJournal records every submission and mastery transition in repo.
func WithJournal(repo store.EventRepo) Option {
	return func(s *Session) { s.journal = repo }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// Session is the state of one learner run. It is not safe for concurrent use.
type Session struct {
	id      string
	reg     *curriculum.Registry
	engine  *validation.Engine
	nav     *Navigator
	tracker *mastery.Tracker
	journal store.EventRepo
	logger  *slog.Logger
	now     func() time.Time
	started time.Time

	lastScore *grader.Score
	attempts  int
	passed    int
}

// New starts a session at the first exercise of reg.
func New(reg *curriculum.Registry, engine *validation.Engine, opts ...Option) *Session {
	s := &Session{
		id:      uuid.New().String(),
		reg:     reg,
		engine:  engine,
		nav:     NewNavigator(reg),
		tracker: mastery.NewTracker(reg.Len()),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session_id", s.id)
	s.started = s.now()
	return s
}

// ID returns the session UUID.
func (s *Session) ID() string { return s.id }

// Registry returns the curriculum the session runs over.
func (s *Session) Registry() *curriculum.Registry { return s.reg }

// Journal returns the attempt journal, or nil when none is configured.
func (s *Session) Journal() store.EventRepo { return s.journal }

// Current returns the active exercise.
func (s *Session) Current() curriculum.Exercise { return s.nav.Current() }

// Index returns the active position in the flattened curriculum.
func (s *Session) Index() int { return s.nav.Index() }

// GoTo makes id the active exercise. Unknown IDs are ignored.
func (s *Session) GoTo(id string) bool {
	if !s.nav.GoTo(id) {
		s.logger.Debug("ignored unknown exercise", "exercise_id", id)
		return false
	}
	s.lastScore = nil
	return true
}

// Advance moves to the next exercise. On the last exercise it stays put and
// returns MsgCompleted.
func (s *Session) Advance() (completed bool, message string) {
	if s.nav.Advance() {
		return true, MsgCompleted
	}
	s.lastScore = nil
	return false, ""
}

// Back moves to the previous exercise.
func (s *Session) Back() bool {
	if !s.nav.Back() {
		return false
	}
	s.lastScore = nil
	return true
}

// SubmitCode validates source against the active exercise.
func (s *Session) SubmitCode(ctx context.Context, source string) Feedback {
	ex := s.nav.Current()
	if ex.IsQuiz() {
		return Feedback{Message: validation.QuizDiagnostic}
	}

	res := s.engine.Validate(ex, source)
	fb := Feedback{Passed: res.Passed, Message: res.Diagnostic}
	if res.Passed {
		fb.Message = MsgMastered
		fb.Transition = s.master(ctx, ex.ID, mastery.TriggerCodeCheck)
	}
	s.record(ctx, ex, res.Passed, res.Diagnostic, 0)
	return fb
}

// SubmitQuiz grades answers against the active quiz.
func (s *Session) SubmitQuiz(ctx context.Context, answers []string) Feedback {
	ex := s.nav.Current()
	score, err := s.engine.GradeQuiz(ex, answers)
	if err != nil {
		return Feedback{Message: MsgNotCode}
	}
	s.lastScore = &score

	fb := Feedback{Passed: score.Passed, Message: MsgQuizFailed, Score: &score}
	if score.Passed {
		fb.Message = MsgMastered
		fb.Transition = s.master(ctx, ex.ID, mastery.TriggerQuizPass)
	}
	s.record(ctx, ex, score.Passed, "", score.Percent)
	return fb
}

func (s *Session) master(ctx context.Context, id, trigger string) *mastery.StateTransition {
	t := s.tracker.Master(id, trigger)
	if t == nil {
		return nil
	}
	s.logger.Info("exercise mastered",
		"exercise_id", id,
		"trigger", trigger,
		"percent", s.tracker.Percent(),
	)
	if s.journal != nil {
		err := s.journal.AppendMasteryEvent(ctx, store.MasteryEventData{
			SessionID:  s.id,
			ExerciseID: id,
			FromState:  string(t.From),
			ToState:    string(t.To),
			Trigger:    t.Trigger,
			Timestamp:  s.now(),
		})
		if err != nil {
			s.logger.Warn("journal mastery event failed", "exercise_id", id, "error", err)
		}
	}
	return t
}

func (s *Session) record(ctx context.Context, ex curriculum.Exercise, passed bool, diagnostic string, score int) {
	s.attempts++
	if passed {
		s.passed++
	}
	s.logger.Info("submission",
		"exercise_id", ex.ID,
		"kind", string(ex.Kind),
		"passed", passed,
	)
	if s.journal == nil {
		return
	}
	err := s.journal.AppendAttempt(ctx, store.AttemptData{
		SessionID:  s.id,
		ExerciseID: ex.ID,
		Kind:       string(ex.Kind),
		Passed:     passed,
		Diagnostic: diagnostic,
		Score:      score,
		Timestamp:  s.now(),
	})
	if err != nil {
		s.logger.Warn("journal attempt failed", "exercise_id", ex.ID, "error", err)
	}
}

// LastScore returns the most recent quiz score for the active exercise.
func (s *Session) LastScore() (grader.Score, bool) {
	if s.lastScore == nil {
		return grader.Score{}, false
	}
	return *s.lastScore, true
}

// IsMastered reports whether id has been mastered this session.
func (s *Session) IsMastered(id string) bool { return s.tracker.IsMastered(id) }

// Percent returns the overall mastery percentage.
func (s *Session) Percent() int { return s.tracker.Percent() }

// Fraction returns overall mastery in [0, 1].
func (s *Session) Fraction() float64 { return s.tracker.Fraction() }

// MasteredCount returns how many exercises are mastered.
func (s *Session) MasteredCount() int { return s.tracker.Count() }
