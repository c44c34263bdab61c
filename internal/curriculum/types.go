package curriculum

import (
	"github.com/abhisek/a11ytutor/internal/grader"
	"github.com/abhisek/a11ytutor/internal/rules"
)

// Kind distinguishes code exercises from quizzes.
type Kind string

const (
	KindCode Kind = "code"
	KindQuiz Kind = "quiz"
)

// Exercise is one entry of the curriculum. Code exercises carry Initial,
// Requirement, Rule and Failure; quizzes carry Questions and PassPercent.
type Exercise struct {
	ID    string
	Title string
	Kind  Kind
	Group string

	Initial     string
	Requirement string
	Rule        rules.Rule
	Failure     string // reported when the failing rule carries no message

	Questions   []grader.Question
	PassPercent int
}

// IsQuiz reports whether the exercise is graded by keywords.
func (e Exercise) IsQuiz() bool { return e.Kind == KindQuiz }

// Label is the "id. title" form shown in lists.
func (e Exercise) Label() string { return e.ID + ". " + e.Title }

// Group is a named, ordered collection of exercises (a WCAG principle in the
// default curriculum).
type Group struct {
	Name      string
	Exercises []Exercise
}

// Document is the on-disk curriculum format.
type Document struct {
	Groups []GroupSpec `yaml:"groups"`
}

// GroupSpec declares a group in a curriculum document.
type GroupSpec struct {
	Name      string         `yaml:"name"`
	Exercises []ExerciseSpec `yaml:"exercises"`
}

// ExerciseSpec declares an exercise in a curriculum document.
type ExerciseSpec struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Kind        Kind           `yaml:"kind"`
	Initial     string         `yaml:"initial,omitempty"`
	Requirement string         `yaml:"requirement,omitempty"`
	Failure     string         `yaml:"failure,omitempty"`
	Rule        *rules.Spec    `yaml:"rule,omitempty"`
	PassPercent int            `yaml:"pass_percent,omitempty"`
	Questions   []QuestionSpec `yaml:"questions,omitempty"`
}

// QuestionSpec declares a free-text quiz question.
type QuestionSpec struct {
	Prompt string     `yaml:"prompt"`
	Groups [][]string `yaml:"groups"`
}
