// SPDX-License-Identifier: Unlicense OR MIT

package tree

import "reflect"

// Generation detects when a forest or its Keys change between layouts.
// Forests are compared by reference: a forest mutated in place keeps
// its generation.
//
// A slice carries no identity beyond its pointer, length and capacity.
// Empty forests of zero capacity all share one address, so replacing
// one by another is not a change; a nil forest differs from an empty
// non-nil one.
type Generation struct {
	valid bool
	isNil bool
	ptr   uintptr
	len   int
	cap   int
	keys  Keys
}

// Changed records forest and keys as the current generation and reports
// whether they differ from the previous call. The first call reports
// false; there is no earlier state to invalidate.
func (g *Generation) Changed(forest []Node, keys Keys) bool {
	keys = keys.Normalize()
	var ptr uintptr
	if forest != nil {
		ptr = reflect.ValueOf(forest).Pointer()
	}
	next := Generation{
		valid: true,
		isNil: forest == nil,
		ptr:   ptr,
		len:   len(forest),
		cap:   cap(forest),
		keys:  keys,
	}
	changed := g.valid && *g != next
	*g = next
	return changed
}
