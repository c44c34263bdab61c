// Package rules implements the small predicate language that code exercises
// use to check a learner's document.
//
// A rule is declared as data (Spec, usually decoded from the curriculum YAML)
// and compiled once into a Rule. Compiled rules are pure: Eval only reads the
// document, so the same document always yields the same Outcome.
package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/a11ytutor/internal/dom"
)

// Op names a rule operation.
type Op string

const (
	OpExists           Op = "exists"
	OpAbsent           Op = "absent"
	OpCount            Op = "count"
	OpHasAttr          Op = "has-attr"
	OpAttrEquals       Op = "attr-equals"
	OpAttrContains     Op = "attr-contains"
	OpAttrMinLength    Op = "attr-min-length"
	OpTextEquals       Op = "text-equals"
	OpTextMatches      Op = "text-matches"
	OpTextContains     Op = "text-contains"
	OpTextMinLength    Op = "text-min-length"
	OpAnyTextMatches   Op = "any-text-matches"
	OpBodyTextMatches  Op = "body-text-matches"
	OpBodyTextExcludes Op = "body-text-excludes"
	OpTextOrder        Op = "text-order"
	OpHTMLContains     Op = "html-contains"
	OpStyleIn          Op = "style-in"
	OpStyleContains    Op = "style-contains"
	OpAll              Op = "all"
	OpAny              Op = "any"
	OpNot              Op = "not"
)

// Ops lists every supported operation.
func Ops() []Op {
	return []Op{
		OpExists, OpAbsent, OpCount, OpHasAttr, OpAttrEquals, OpAttrContains,
		OpAttrMinLength, OpTextEquals, OpTextMatches, OpTextContains,
		OpTextMinLength, OpAnyTextMatches, OpBodyTextMatches, OpBodyTextExcludes,
		OpTextOrder, OpHTMLContains, OpStyleIn, OpStyleContains,
		OpAll, OpAny, OpNot,
	}
}

// Spec is the declarative form of a rule.
type Spec struct {
	Op Op `yaml:"op"`

	// Element targeting. Exactly one of Selector or ID is set for
	// element operations; Index picks the n-th match (default first).
	Selector string `yaml:"selector,omitempty"`
	ID       string `yaml:"id,omitempty"`
	Index    int    `yaml:"index,omitempty"`

	Attr     string   `yaml:"attr,omitempty"`
	Property string   `yaml:"property,omitempty"`
	Value    string   `yaml:"value,omitempty"`
	Values   []string `yaml:"values,omitempty"`
	Pattern  string   `yaml:"pattern,omitempty"`
	Min      int      `yaml:"min,omitempty"`
	Equals   *int     `yaml:"equals,omitempty"`
	Before   string   `yaml:"before,omitempty"`
	After    string   `yaml:"after,omitempty"`

	Rules []Spec `yaml:"rules,omitempty"` // all, any
	Rule  *Spec  `yaml:"rule,omitempty"`  // not

	// Message is the diagnostic reported when this node decides a failure.
	Message string `yaml:"message,omitempty"`
}

// Outcome is the result of evaluating a rule. Message may be empty on
// failure when no node along the failing path carried one.
type Outcome struct {
	OK      bool
	Message string
}

// Rule is a compiled, pure predicate over a document.
type Rule interface {
	Eval(doc dom.Document) Outcome
}

// ErrUnknownOp is returned when a spec names an unsupported operation.
var ErrUnknownOp = errors.New("unknown rule op")

// Compile validates spec and turns it into a Rule.
func Compile(spec Spec) (Rule, error) {
	return compile(spec, "rule")
}

func compile(s Spec, path string) (Rule, error) {
	switch s.Op {
	case OpAll, OpAny:
		if len(s.Rules) == 0 {
			return nil, fmt.Errorf("%s: %s needs at least one rule", path, s.Op)
		}
		children := make([]Rule, 0, len(s.Rules))
		for i, child := range s.Rules {
			r, err := compile(child, fmt.Sprintf("%s.rules[%d]", path, i))
			if err != nil {
				return nil, err
			}
			children = append(children, r)
		}
		if s.Op == OpAll {
			return allRule{children: children, message: s.Message}, nil
		}
		return anyRule{children: children, message: s.Message}, nil

	case OpNot:
		if s.Rule == nil {
			return nil, fmt.Errorf("%s: not needs a rule", path)
		}
		inner, err := compile(*s.Rule, path+".rule")
		if err != nil {
			return nil, err
		}
		return notRule{inner: inner, message: s.Message}, nil
	}

	if !isLeaf(s.Op) {
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownOp, s.Op)
	}
	if err := checkLeaf(s); err != nil {
		return nil, fmt.Errorf("%s (%s): %w", path, s.Op, err)
	}

	l := leaf{
		op:       s.Op,
		target:   target{selector: s.Selector, id: s.ID, index: s.Index},
		attr:     strings.ToLower(s.Attr),
		property: s.Property,
		value:    s.Value,
		values:   s.Values,
		min:      s.Min,
		before:   s.Before,
		after:    s.After,
		message:  s.Message,
	}
	if s.Equals != nil {
		l.equals = *s.Equals
	}
	if s.Pattern != "" {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%s (%s): pattern %q: %w", path, s.Op, s.Pattern, err)
		}
		l.pattern = re
	}
	return l, nil
}

func isLeaf(op Op) bool {
	for _, o := range Ops() {
		if o == op {
			return op != OpAll && op != OpAny && op != OpNot
		}
	}
	return false
}

func needsTarget(op Op) bool {
	switch op {
	case OpBodyTextMatches, OpBodyTextExcludes, OpTextOrder, OpHTMLContains:
		return false
	}
	return true
}

// checkLeaf verifies that a leaf spec carries the fields its op reads.
func checkLeaf(s Spec) error {
	if needsTarget(s.Op) {
		switch {
		case s.Selector == "" && s.ID == "":
			return errors.New("selector or id is required")
		case s.Selector != "" && s.ID != "":
			return errors.New("selector and id are mutually exclusive")
		case s.Index < 0:
			return fmt.Errorf("index must be >= 0, got %d", s.Index)
		}
		if s.Selector != "" {
			if err := dom.ValidSelector(s.Selector); err != nil {
				return fmt.Errorf("selector %q: %w", s.Selector, err)
			}
		}
	}

	switch s.Op {
	case OpCount:
		if s.Equals == nil {
			return errors.New("equals is required")
		}
	case OpHasAttr, OpAttrEquals, OpAttrContains, OpAttrMinLength:
		if s.Attr == "" {
			return errors.New("attr is required")
		}
	case OpStyleIn, OpStyleContains:
		if s.Property == "" {
			return errors.New("property is required")
		}
		if len(s.Values) == 0 {
			return errors.New("values must not be empty")
		}
	case OpBodyTextExcludes:
		if len(s.Values) == 0 {
			return errors.New("values must not be empty")
		}
	case OpTextMatches, OpAnyTextMatches, OpBodyTextMatches:
		if s.Pattern == "" {
			return errors.New("pattern is required")
		}
	case OpTextContains, OpHTMLContains, OpTextEquals:
		if s.Value == "" {
			return errors.New("value is required")
		}
	case OpTextOrder:
		if s.Before == "" || s.After == "" {
			return errors.New("before and after are required")
		}
	}

	switch s.Op {
	case OpAttrMinLength, OpTextMinLength:
		if s.Min < 1 {
			return fmt.Errorf("min must be >= 1, got %d", s.Min)
		}
	case OpAttrContains:
		if s.Value == "" {
			return errors.New("value is required")
		}
	}
	return nil
}
