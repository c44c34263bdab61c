// Package grader scores free-text quiz answers by keyword-group matching.
//
// A question lists keyword groups. It is satisfied when every group has at
// least one keyword that occurs as a substring of the normalized answer.
// Matching is containment, not word-boundary based: "caption" is found
// inside "captions".
package grader

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// DefaultPassPercent is the pass threshold used when a quiz does not set one.
const DefaultPassPercent = 70

// Question is the part of a quiz question the grader needs.
type Question struct {
	Prompt string
	Groups [][]string
}

// Score is the deterministic result of grading a set of answers.
type Score struct {
	Satisfied   int
	Total       int
	Percent     int    // rounded per question count, half up
	Passed      bool   // Percent >= threshold
	Threshold   int    // threshold actually applied
	PerQuestion []bool // satisfied flag per question, in order
}

// String formats the score as shown after a submission.
func (s Score) String() string {
	return fmt.Sprintf("Score: %d/%d (%d%%)", s.Satisfied, s.Total, s.Percent)
}

var folder = cases.Fold()

// Normalize case-folds s, applies NFKC, trims it and collapses runs of
// whitespace into single spaces.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = folder.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// Satisfied reports whether answer satisfies every keyword group.
// A question with no groups is trivially satisfied.
func Satisfied(answer string, groups [][]string) bool {
	a := Normalize(answer)
	for _, group := range groups {
		if !groupMatches(a, group) {
			return false
		}
	}
	return true
}

func groupMatches(normalized string, group []string) bool {
	for _, k := range group {
		if strings.Contains(normalized, Normalize(k)) {
			return true
		}
	}
	return false
}

// Grade scores answers against questions. answers[i] answers questions[i];
// missing answers count as empty. A passPercent <= 0 selects
// DefaultPassPercent.
func Grade(answers []string, questions []Question, passPercent int) Score {
	if passPercent <= 0 {
		passPercent = DefaultPassPercent
	}
	score := Score{
		Total:       len(questions),
		Threshold:   passPercent,
		PerQuestion: make([]bool, len(questions)),
	}
	for i, q := range questions {
		var ans string
		if i < len(answers) {
			ans = answers[i]
		}
		if Satisfied(ans, q.Groups) {
			score.Satisfied++
			score.PerQuestion[i] = true
		}
	}
	score.Percent = Percent(score.Satisfied, score.Total)
	score.Passed = score.Total > 0 && score.Percent >= passPercent
	return score
}

// Percent returns round(100*n/total), rounding halves up. Zero total yields 0.
func Percent(n, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(n)*100/float64(total) + 0.5))
}
