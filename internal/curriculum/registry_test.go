package curriculum

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/a11ytutor/internal/rules"
)

func codeSpec(id string) ExerciseSpec {
	return ExerciseSpec{
		ID:      id,
		Title:   "Title " + id,
		Kind:    KindCode,
		Failure: "fix it",
		Rule:    &rules.Spec{Op: rules.OpExists, Selector: "h1"},
	}
}

func quizSpec(id string) ExerciseSpec {
	return ExerciseSpec{
		ID:    id,
		Title: "Quiz " + id,
		Kind:  KindQuiz,
		Questions: []QuestionSpec{
			{Prompt: "What attribute?", Groups: [][]string{{"alt"}}},
		},
	}
}

func TestDefault_Structure(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	groups := reg.Groups()
	require.Len(t, groups, 4)
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	assert.Equal(t, []string{"1. Perceivable", "2. Operable", "3. Understandable", "4. Robust"}, names)

	all := reg.All()
	assert.Equal(t, reg.Len(), len(all))
	assert.Equal(t, "1.1.1", all[0].ID)
	assert.Equal(t, "Q4", all[len(all)-1].ID)

	total := 0
	for _, g := range groups {
		total += len(g.Exercises)
		last := g.Exercises[len(g.Exercises)-1]
		assert.True(t, last.IsQuiz(), "group %q should end with its quiz", g.Name)
	}
	assert.Equal(t, total, reg.Len())
}

func TestDefault_FlattenedOrderMatchesGroups(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	var want []string
	for _, g := range reg.Groups() {
		for _, ex := range g.Exercises {
			want = append(want, ex.ID)
		}
	}
	var got []string
	for i, ex := range reg.All() {
		got = append(got, ex.ID)
		if reg.Index(ex.ID) != i {
			t.Errorf("Index(%q) = %d, want %d", ex.ID, reg.Index(ex.ID), i)
		}
	}
	assert.Equal(t, want, got)
}

func TestDefault_Exercises(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	ex, ok := reg.Get("1.1.1")
	require.True(t, ok)
	assert.Equal(t, KindCode, ex.Kind)
	assert.Equal(t, "Non-text Content", ex.Title)
	assert.Equal(t, "1. Perceivable", ex.Group)
	assert.Contains(t, ex.Initial, `<img src="https://picsum.photos/id/237/200/200">`)
	assert.NotNil(t, ex.Rule)
	assert.NotEmpty(t, ex.Failure)

	q1, ok := reg.Get("Q1")
	require.True(t, ok)
	assert.True(t, q1.IsQuiz())
	assert.Len(t, q1.Questions, 8)
	assert.Equal(t, 70, q1.PassPercent)

	q4, _ := reg.Get("Q4")
	assert.Equal(t, [][]string{{"screen reader"}}, q4.Questions[4].Groups)

	g, ok := reg.GroupOf("2.4.7")
	assert.True(t, ok)
	assert.Equal(t, "2. Operable", g)
}

func TestDefault_ButtonAlternativesNamedInRequirement(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	for _, id := range []string{"2.5.1", "2.5.4"} {
		ex, ok := reg.Get(id)
		require.True(t, ok, id)
		assert.Contains(t, ex.Requirement, "<button>", id)
	}
}

func TestRegistry_Lookups(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	_, ok := reg.Get("9.9.9")
	assert.False(t, ok)
	assert.Equal(t, -1, reg.Index("9.9.9"))
	_, ok = reg.GroupOf("9.9.9")
	assert.False(t, ok)

	_, err = reg.Lookup("9.9.9")
	assert.True(t, errors.Is(err, ErrNotFound))

	ex, err := reg.Lookup("4.1.3")
	require.NoError(t, err)
	assert.Equal(t, "Status Messages", ex.Title)
	assert.Equal(t, ex, reg.At(reg.Index("4.1.3")))
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	all := reg.All()
	all[0].Title = "changed"
	ex, _ := reg.Get(all[0].ID)
	assert.NotEqual(t, "changed", ex.Title)
}

func TestNew_DefaultsPassPercent(t *testing.T) {
	reg, err := New([]GroupSpec{{Name: "G", Exercises: []ExerciseSpec{quizSpec("Q")}}})
	require.NoError(t, err)
	q, _ := reg.Get("Q")
	assert.Equal(t, 70, q.PassPercent)
}

func TestNew_Rejects(t *testing.T) {
	emptyQuiz := quizSpec("Q")
	emptyQuiz.Questions = nil

	noGroups := quizSpec("Q")
	noGroups.Questions = []QuestionSpec{{Prompt: "p"}}

	emptyGroup := quizSpec("Q")
	emptyGroup.Questions = []QuestionSpec{{Prompt: "p", Groups: [][]string{{}}}}

	emptyKeyword := quizSpec("Q")
	emptyKeyword.Questions = []QuestionSpec{{Prompt: "p", Groups: [][]string{{"  "}}}}

	badPercent := quizSpec("Q")
	badPercent.PassPercent = 150

	noRule := codeSpec("1")
	noRule.Rule = nil

	noFailure := codeSpec("1")
	noFailure.Failure = ""

	badRule := codeSpec("1")
	badRule.Rule = &rules.Spec{Op: rules.OpTextMatches, Selector: "a", Pattern: "(["}

	unknownKind := codeSpec("1")
	unknownKind.Kind = "video"

	tests := []struct {
		name   string
		groups []GroupSpec
		want   string
	}{
		{"no groups", nil, "no groups"},
		{"duplicate ids", []GroupSpec{{Name: "G", Exercises: []ExerciseSpec{codeSpec("1"), codeSpec("1")}}}, `duplicate exercise ID: "1"`},
		{"duplicate across groups", []GroupSpec{
			{Name: "A", Exercises: []ExerciseSpec{codeSpec("1")}},
			{Name: "B", Exercises: []ExerciseSpec{codeSpec("1")}},
		}, "duplicate exercise ID"},
		{"empty id", []GroupSpec{{Name: "G", Exercises: []ExerciseSpec{codeSpec(" ")}}}, "empty ID"},
		{"empty group name", []GroupSpec{{Name: "", Exercises: []ExerciseSpec{codeSpec("1")}}}, "name is empty"},
		{"group without exercises", []GroupSpec{{Name: "G"}}, "has no exercises"},
		{"quiz without questions", []GroupSpec{{Name: "G", Exercises: []ExerciseSpec{emptyQuiz}}}, "quiz has no questions"},
		{"question without groups", []GroupSpec{{Name: "G", Exercises: []ExerciseSpec{noGroups}}}, "no keyword groups"},
		{"empty keyword group", []GroupSpec{{Name: "G", Exercises: []ExerciseSpec{emptyGroup}}}, "keyword group 1 is empty"},
		{"blank keyword", []GroupSpec{{Name: "G", Exercises: []ExerciseSpec{emptyKeyword}}}, "empty keyword"},
		{"pass percent out of range", []GroupSpec{{Name: "G", Exercises: []ExerciseSpec{badPercent}}}, "pass_percent"},
		{"code without rule", []GroupSpec{{Name: "G", Exercises: []ExerciseSpec{noRule}}}, "has no rule"},
		{"code without failure", []GroupSpec{{Name: "G", Exercises: []ExerciseSpec{noFailure}}}, "no failure message"},
		{"rule that does not compile", []GroupSpec{{Name: "G", Exercises: []ExerciseSpec{badRule}}}, "pattern"},
		{"unknown kind", []GroupSpec{{Name: "G", Exercises: []ExerciseSpec{unknownKind}}}, `unknown kind "video"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := New(tt.groups)
			require.Error(t, err)
			assert.Nil(t, reg)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNew_CollectsAllProblems(t *testing.T) {
	noRule := codeSpec("2")
	noRule.Rule = nil
	_, err := New([]GroupSpec{{Name: "G", Exercises: []ExerciseSpec{codeSpec("1"), codeSpec("1"), noRule}}})
	require.Error(t, err)
	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "curriculum validation failed:"))
	assert.Contains(t, msg, "duplicate exercise ID")
	assert.Contains(t, msg, "has no rule")
}

func TestLoad_YAML(t *testing.T) {
	src := `
groups:
  - name: Basics
    exercises:
      - id: h1
        title: Heading
        kind: code
        initial: "<p>Title</p>"
        requirement: Add an h1.
        failure: Add an <h1>.
        rule: { op: exists, selector: h1 }
      - id: q
        title: Quiz
        kind: quiz
        questions:
          - prompt: Which attribute?
            groups: [[alt]]
`
	reg, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
	ex, ok := reg.Get("h1")
	require.True(t, ok)
	assert.Equal(t, "Basics", ex.Group)
	assert.Equal(t, "<p>Title</p>", ex.Initial)
}

func TestLoad_SchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not yaml", "groups: [unterminated"},
		{"missing groups", "title: nothing"},
		{"unknown field", "groups: []\nextra: 1"},
		{"unknown op", `
groups:
  - name: G
    exercises:
      - { id: a, title: A, kind: code, failure: f, rule: { op: sparkle } }
`},
		{"code without rule", `
groups:
  - name: G
    exercises:
      - { id: a, title: A, kind: code, failure: f }
`},
		{"bad kind", `
groups:
  - name: G
    exercises:
      - { id: a, title: A, kind: video }
`},
		{"empty keyword list", `
groups:
  - name: G
    exercises:
      - id: q
        title: Q
        kind: quiz
        questions:
          - { prompt: p, groups: [[]] }
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(path, wcagYAML, 0o644))

	reg, err := LoadFile(path)
	require.NoError(t, err)
	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def.Len(), reg.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
