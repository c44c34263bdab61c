// Package validation checks learner submissions against the current
// exercise: code exercises through their compiled rule, quizzes through the
// keyword grader.
package validation

import (
	"errors"
	"fmt"

	"github.com/abhisek/a11ytutor/internal/curriculum"
	"github.com/abhisek/a11ytutor/internal/dom"
	"github.com/abhisek/a11ytutor/internal/grader"
)

// QuizDiagnostic is reported when code is submitted for a quiz.
const QuizDiagnostic = "This is a quiz. Answer the questions and submit."

// ErrNotQuiz is returned by GradeQuiz for a code exercise.
var ErrNotQuiz = errors.New("exercise is not a quiz")

// Result is the outcome of checking a code submission. Exactly one of Passed
// or a non-empty Diagnostic holds.
type Result struct {
	Passed     bool
	Diagnostic string
}

// Engine validates submissions. It holds no per-learner state.
type Engine struct {
	parser dom.Parser
}

// New creates an engine that parses submissions with parser. A nil parser
// selects dom.HTMLParser.
func New(parser dom.Parser) *Engine {
	if parser == nil {
		parser = dom.HTMLParser{}
	}
	return &Engine{parser: parser}
}

// Validate parses source and runs the exercise's rule against it.
func (e *Engine) Validate(ex curriculum.Exercise, source string) Result {
	if ex.Kind != curriculum.KindCode || ex.Rule == nil {
		return Result{Diagnostic: QuizDiagnostic}
	}

	out := ex.Rule.Eval(e.parser.Parse(source))
	if out.OK {
		return Result{Passed: true}
	}
	msg := out.Message
	if msg == "" {
		msg = ex.Failure
	}
	if msg == "" {
		msg = fmt.Sprintf("%s is not satisfied yet.", ex.ID)
	}
	return Result{Diagnostic: msg}
}

// GradeQuiz scores answers against a quiz exercise.
func (e *Engine) GradeQuiz(ex curriculum.Exercise, answers []string) (grader.Score, error) {
	if !ex.IsQuiz() {
		return grader.Score{}, fmt.Errorf("grade %s: %w", ex.ID, ErrNotQuiz)
	}
	return grader.Grade(answers, ex.Questions, ex.PassPercent), nil
}
