// SPDX-License-Identifier: Unlicense OR MIT

package tree

import "golang.org/x/exp/maps"

// Expansion records which nodes are expanded, keyed by identifier.
// The zero value reports every node collapsed.
type Expansion struct {
	// Initial is reported for identifiers without a recorded state.
	Initial bool
	// Predicate, if set, decides expansion for every identifier and
	// the recorded states are ignored.
	Predicate func(id any) bool

	expanded map[any]bool
}

// Expanded resolves whether the node identified by id is expanded.
func (e *Expansion) Expanded(id any) bool {
	if e.Predicate != nil {
		return e.Predicate(id)
	}
	if v, ok := e.expanded[id]; ok {
		return v
	}
	return e.Initial
}

// Expand records the node identified by id as expanded.
func (e *Expansion) Expand(id any) {
	e.set(id, true)
}

// Collapse records the node identified by id as collapsed.
func (e *Expansion) Collapse(id any) {
	e.set(id, false)
}

// Toggle collapses the node identified by id if it resolves as
// expanded, and expands it otherwise.
func (e *Expansion) Toggle(id any) {
	if e.Expanded(id) {
		e.Collapse(id)
	} else {
		e.Expand(id)
	}
}

// Reset forgets every recorded state.
func (e *Expansion) Reset() {
	e.expanded = make(map[any]bool)
}

// Snapshot returns a copy of the recorded states.
func (e *Expansion) Snapshot() map[any]bool {
	if e.expanded == nil {
		return map[any]bool{}
	}
	return maps.Clone(e.expanded)
}

func (e *Expansion) set(id any, expanded bool) {
	if e.expanded == nil {
		e.expanded = make(map[any]bool)
	}
	e.expanded[id] = expanded
}
