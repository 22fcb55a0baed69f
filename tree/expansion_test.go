// SPDX-License-Identifier: Unlicense OR MIT

package tree

import "testing"

func TestExpansionExpandCollapse(t *testing.T) {
	for _, initial := range []bool{false, true} {
		e := Expansion{Initial: initial}
		for _, id := range []any{1, "b", 2.5, nil} {
			if got := e.Expanded(id); got != initial {
				t.Errorf("initial=%v: Expanded(%v) = %v before any change", initial, id, got)
			}
			e.Expand(id)
			if !e.Expanded(id) {
				t.Errorf("initial=%v: Expanded(%v) = false after Expand", initial, id)
			}
			e.Collapse(id)
			if e.Expanded(id) {
				t.Errorf("initial=%v: Expanded(%v) = true after Collapse", initial, id)
			}
		}
	}
}

func TestExpansionToggleTwice(t *testing.T) {
	for _, initial := range []bool{false, true} {
		e := Expansion{Initial: initial}
		before := e.Expanded("n")
		e.Toggle("n")
		if e.Expanded("n") == before {
			t.Errorf("initial=%v: Toggle did not change state", initial)
		}
		e.Toggle("n")
		if got := e.Expanded("n"); got != before {
			t.Errorf("initial=%v: two toggles gave %v, want %v", initial, got, before)
		}
	}
}

func TestExpansionPredicate(t *testing.T) {
	e := Expansion{Predicate: func(id any) bool { return id == 1 }}
	e.Collapse(1)
	e.Toggle(1)
	e.Toggle(1)
	if !e.Expanded(1) {
		t.Error("predicate was overridden by Collapse/Toggle")
	}
	e.Expand(2)
	e.Toggle(2)
	if e.Expanded(2) {
		t.Error("predicate was overridden by Expand/Toggle")
	}
}

func TestExpansionSharedIdentifier(t *testing.T) {
	var e Expansion
	k := Keys{}
	a := map[string]any{"id": "dup", "name": "a"}
	b := map[string]any{"id": "dup", "name": "b"}
	e.Expand(k.IDOf(a))
	if !e.Expanded(k.IDOf(b)) {
		t.Error("nodes sharing an identifier do not share expansion")
	}
}

func TestExpansionReset(t *testing.T) {
	e := Expansion{Initial: true}
	e.Collapse(1)
	e.Expand(2)
	if got := len(e.Snapshot()); got != 2 {
		t.Fatalf("Snapshot has %d entries, want 2", got)
	}
	e.Reset()
	if got := len(e.Snapshot()); got != 0 {
		t.Errorf("Snapshot has %d entries after Reset, want 0", got)
	}
	if !e.Expanded(1) {
		t.Error("Reset did not restore the initial state")
	}
}

func TestExpansionSnapshotIsCopy(t *testing.T) {
	var e Expansion
	e.Expand(1)
	s := e.Snapshot()
	s[1] = false
	if !e.Expanded(1) {
		t.Error("modifying a snapshot changed the expansion")
	}
}
