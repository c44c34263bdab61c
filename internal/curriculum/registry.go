// Package curriculum holds the exercise registry: the ordered, read-only set
// of exercises grouped by principle, plus the reference links for each one.
package curriculum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/a11ytutor/internal/grader"
	"github.com/abhisek/a11ytutor/internal/rules"
)

// ErrNotFound is returned by Lookup for an unknown exercise ID.
var ErrNotFound = errors.New("exercise not found")

// Registry is the validated curriculum. It is immutable after New returns and
// safe for concurrent reads.
type Registry struct {
	groups  []Group
	all     []Exercise
	byID    map[string]int
	groupOf map[string]string
	links   Links
}

// New validates groups and builds a registry. Every problem found is reported
// in a single error.
func New(groups []GroupSpec) (*Registry, error) {
	var errs []string
	reg := &Registry{
		byID:    make(map[string]int),
		groupOf: make(map[string]string),
		links:   DefaultLinks(),
	}

	if len(groups) == 0 {
		errs = append(errs, "curriculum has no groups")
	}

	seenGroup := make(map[string]bool, len(groups))
	for gi, gs := range groups {
		name := strings.TrimSpace(gs.Name)
		if name == "" {
			errs = append(errs, fmt.Sprintf("group %d: name is empty", gi))
		} else if seenGroup[name] {
			errs = append(errs, fmt.Sprintf("duplicate group name: %q", name))
		}
		seenGroup[name] = true
		if len(gs.Exercises) == 0 {
			errs = append(errs, fmt.Sprintf("group %q has no exercises", name))
		}

		group := Group{Name: name}
		for _, es := range gs.Exercises {
			ex, problems := buildExercise(es, name)
			errs = append(errs, problems...)
			if ex.ID == "" {
				continue
			}
			if _, dup := reg.byID[ex.ID]; dup {
				errs = append(errs, fmt.Sprintf("duplicate exercise ID: %q", ex.ID))
				continue
			}
			reg.byID[ex.ID] = len(reg.all)
			reg.groupOf[ex.ID] = name
			reg.all = append(reg.all, ex)
			group.Exercises = append(group.Exercises, ex)
		}
		reg.groups = append(reg.groups, group)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return reg, nil
}

func buildExercise(es ExerciseSpec, group string) (Exercise, []string) {
	var errs []string
	id := strings.TrimSpace(es.ID)
	prefix := fmt.Sprintf("exercise %q", id)
	if id == "" {
		errs = append(errs, fmt.Sprintf("group %q: exercise with empty ID", group))
		return Exercise{}, errs
	}

	ex := Exercise{
		ID:          id,
		Title:       es.Title,
		Kind:        es.Kind,
		Group:       group,
		Initial:     es.Initial,
		Requirement: es.Requirement,
		Failure:     es.Failure,
	}
	if strings.TrimSpace(es.Title) == "" {
		errs = append(errs, prefix+": title is empty")
	}

	switch es.Kind {
	case KindCode:
		if es.Rule == nil {
			errs = append(errs, prefix+": code exercise has no rule")
		} else if r, err := rules.Compile(*es.Rule); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", prefix, err))
		} else {
			ex.Rule = r
		}
		if strings.TrimSpace(es.Failure) == "" {
			errs = append(errs, prefix+": code exercise has no failure message")
		}
		if len(es.Questions) > 0 {
			errs = append(errs, prefix+": code exercise must not have questions")
		}

	case KindQuiz:
		if len(es.Questions) == 0 {
			errs = append(errs, prefix+": quiz has no questions")
		}
		if es.Rule != nil {
			errs = append(errs, prefix+": quiz must not have a rule")
		}
		ex.PassPercent = es.PassPercent
		if ex.PassPercent == 0 {
			ex.PassPercent = grader.DefaultPassPercent
		}
		if ex.PassPercent < 1 || ex.PassPercent > 100 {
			errs = append(errs, fmt.Sprintf("%s: pass_percent must be in 1..100, got %d", prefix, es.PassPercent))
		}
		for qi, qs := range es.Questions {
			qp := fmt.Sprintf("%s question %d", prefix, qi+1)
			if strings.TrimSpace(qs.Prompt) == "" {
				errs = append(errs, qp+": prompt is empty")
			}
			if len(qs.Groups) == 0 {
				errs = append(errs, qp+": no keyword groups")
			}
			for gi, kws := range qs.Groups {
				if len(kws) == 0 {
					errs = append(errs, fmt.Sprintf("%s: keyword group %d is empty", qp, gi+1))
				}
				for _, kw := range kws {
					if grader.Normalize(kw) == "" {
						errs = append(errs, fmt.Sprintf("%s: keyword group %d has an empty keyword", qp, gi+1))
					}
				}
			}
			ex.Questions = append(ex.Questions, grader.Question{Prompt: qs.Prompt, Groups: qs.Groups})
		}

	default:
		errs = append(errs, fmt.Sprintf("%s: unknown kind %q", prefix, es.Kind))
	}
	return ex, errs
}

// Get returns the exercise with the given ID.
func (r *Registry) Get(id string) (Exercise, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Exercise{}, false
	}
	return r.all[i], true
}

// Lookup is Get with an error that wraps ErrNotFound.
func (r *Registry) Lookup(id string) (Exercise, error) {
	ex, ok := r.Get(id)
	if !ok {
		return Exercise{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return ex, nil
}

// All returns the flattened curriculum: every group's exercises in order.
func (r *Registry) All() []Exercise {
	out := make([]Exercise, len(r.all))
	copy(out, r.all)
	return out
}

// At returns the exercise at position i of the flattened curriculum.
func (r *Registry) At(i int) Exercise { return r.all[i] }

// Groups returns the groups in display order.
func (r *Registry) Groups() []Group {
	out := make([]Group, len(r.groups))
	copy(out, r.groups)
	return out
}

// GroupOf returns the name of the group that owns id.
func (r *Registry) GroupOf(id string) (string, bool) {
	g, ok := r.groupOf[id]
	return g, ok
}

// Index returns the position of id in the flattened curriculum, or -1.
func (r *Registry) Index(id string) int {
	if i, ok := r.byID[id]; ok {
		return i
	}
	return -1
}

// Len returns the number of exercises.
func (r *Registry) Len() int { return len(r.all) }

// Links returns the reference link tables.
func (r *Registry) Links() Links { return r.links }
