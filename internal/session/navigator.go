package session

import "github.com/abhisek/a11ytutor/internal/curriculum"

// Navigator tracks the current position in the flattened curriculum.
// Navigation never touches mastery.
type Navigator struct {
	reg   *curriculum.Registry
	index int
}

// NewNavigator starts at the first exercise of reg.
func NewNavigator(reg *curriculum.Registry) *Navigator {
	return &Navigator{reg: reg}
}

// GoTo jumps to id. Unknown IDs are ignored and GoTo reports false.
func (n *Navigator) GoTo(id string) bool {
	i := n.reg.Index(id)
	if i < 0 {
		return false
	}
	n.index = i
	return true
}

// Advance moves to the next exercise. At the last exercise it stays put and
// reports that the curriculum is complete.
func (n *Navigator) Advance() (completed bool) {
	if n.AtEnd() {
		return true
	}
	n.index++
	return false
}

// Back moves to the previous exercise, stopping at the first.
func (n *Navigator) Back() bool {
	if n.index == 0 {
		return false
	}
	n.index--
	return true
}

// Current returns the exercise at the current position.
func (n *Navigator) Current() curriculum.Exercise {
	return n.reg.At(n.index)
}

// Index returns the current position.
func (n *Navigator) Index() int { return n.index }

// AtEnd reports whether the current exercise is the last one.
func (n *Navigator) AtEnd() bool { return n.index >= n.reg.Len()-1 }
