package rules

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/a11ytutor/internal/dom"
)

type target struct {
	selector string
	id       string
	index    int
}

func (t target) all(doc dom.Document) []dom.Element {
	if t.id != "" {
		if el, ok := doc.ByID(t.id); ok {
			return []dom.Element{el}
		}
		return nil
	}
	return doc.Select(t.selector)
}

func (t target) pick(doc dom.Document) (dom.Element, bool) {
	if t.id != "" {
		return doc.ByID(t.id)
	}
	if t.index == 0 {
		return doc.First(t.selector)
	}
	els := doc.Select(t.selector)
	if t.index >= len(els) {
		return nil, false
	}
	return els[t.index], true
}

type leaf struct {
	op       Op
	target   target
	attr     string
	property string
	value    string
	values   []string
	pattern  *regexp.Regexp
	min      int
	equals   int
	before   string
	after    string
	message  string
}

func (l leaf) Eval(doc dom.Document) Outcome {
	ok := l.holds(doc)
	if ok {
		return Outcome{OK: true}
	}
	return Outcome{Message: l.message}
}

func (l leaf) holds(doc dom.Document) bool {
	switch l.op {
	case OpBodyTextMatches:
		return l.pattern.MatchString(doc.BodyText())
	case OpBodyTextExcludes:
		text := strings.ToLower(doc.BodyText())
		return !slices.ContainsFunc(l.values, func(w string) bool {
			return strings.Contains(text, strings.ToLower(w))
		})
	case OpTextOrder:
		// Both strings must be present; deleting the first one is not a fix.
		text := collapse(doc.BodyText())
		i, j := strings.Index(text, l.before), strings.Index(text, l.after)
		return i >= 0 && j >= 0 && i < j
	case OpHTMLContains:
		return strings.Contains(doc.BodyHTML(), l.value)
	case OpCount:
		return len(l.target.all(doc)) == l.equals
	case OpAnyTextMatches:
		return slices.ContainsFunc(l.target.all(doc), func(el dom.Element) bool {
			return l.pattern.MatchString(el.Text())
		})
	case OpStyleIn, OpStyleContains:
		// A missing element has no inline style; it reads as "".
		var v string
		if el, found := l.target.pick(doc); found {
			v = squash(el.Style(l.property))
		}
		if l.op == OpStyleIn {
			return slices.ContainsFunc(l.values, func(want string) bool { return v == squash(want) })
		}
		return slices.ContainsFunc(l.values, func(want string) bool { return strings.Contains(v, squash(want)) })
	}

	el, found := l.target.pick(doc)
	switch l.op {
	case OpExists:
		return found
	case OpAbsent:
		return !found
	}
	if !found {
		return false
	}

	switch l.op {
	case OpHasAttr:
		_, ok := el.Attr(l.attr)
		return ok
	case OpAttrEquals:
		v, ok := el.Attr(l.attr)
		return ok && v == l.value
	case OpAttrContains:
		v, ok := el.Attr(l.attr)
		return ok && strings.Contains(v, l.value)
	case OpAttrMinLength:
		v, ok := el.Attr(l.attr)
		return ok && utf8.RuneCountInString(strings.TrimSpace(v)) >= l.min
	case OpTextEquals:
		return strings.TrimSpace(el.Text()) == l.value
	case OpTextMatches:
		return l.pattern.MatchString(el.Text())
	case OpTextContains:
		return strings.Contains(el.Text(), l.value)
	case OpTextMinLength:
		return utf8.RuneCountInString(strings.TrimSpace(el.Text())) >= l.min
	}
	return false
}

type allRule struct {
	children []Rule
	message  string
}

func (r allRule) Eval(doc dom.Document) Outcome {
	for _, c := range r.children {
		out := c.Eval(doc)
		if !out.OK {
			if out.Message == "" {
				out.Message = r.message
			}
			return out
		}
	}
	return Outcome{OK: true}
}

type anyRule struct {
	children []Rule
	message  string
}

func (r anyRule) Eval(doc dom.Document) Outcome {
	first := ""
	for _, c := range r.children {
		out := c.Eval(doc)
		if out.OK {
			return out
		}
		if first == "" {
			first = out.Message
		}
	}
	if r.message != "" {
		return Outcome{Message: r.message}
	}
	return Outcome{Message: first}
}

type notRule struct {
	inner   Rule
	message string
}

func (r notRule) Eval(doc dom.Document) Outcome {
	if r.inner.Eval(doc).OK {
		return Outcome{Message: r.message}
	}
	return Outcome{OK: true}
}

// collapse joins whitespace runs into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// squash drops all whitespace and lower-cases, so "rgb(0, 0, 0)" and
// "RGB(0,0,0)" compare equal.
func squash(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
