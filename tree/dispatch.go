// SPDX-License-Identifier: Unlicense OR MIT

package tree

import (
	"context"
	"errors"
	"sync"
)

// SkipToggle is returned by a PressFunc to leave the pressed node's
// expansion unchanged. It is not reported as an error.
var SkipToggle = errors.New("skip toggle")

// PressEvent describes a press on a node.
type PressEvent struct {
	Node  Node
	Level int
}

// PressFunc is called for a press. It runs on its own goroutine and may
// block. Returning nil toggles the node if it has children, returning
// SkipToggle or any other error does not.
type PressFunc func(ctx context.Context, e PressEvent) error

// Pending tracks a press whose callback has not yet returned.
type Pending struct {
	done chan struct{}
	err  error
}

// Done is closed when the press callback has returned.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Err returns the error of the press callback, or nil if it succeeded
// or returned SkipToggle. Err must only be called after Done is closed.
func (p *Pending) Err() error {
	return p.err
}

// Wait blocks until the press callback returns or ctx is done.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dispatcher routes presses to callbacks and applies their outcome to
// an Expansion. Callbacks run concurrently; their outcomes are applied
// by Update, in the order the callbacks returned.
//
// Presses are not serialized. Two presses of the same node that both
// succeed toggle it twice.
type Dispatcher struct {
	Keys      Keys
	Expansion *Expansion

	OnNodePress PressFunc
	OnLeafPress PressFunc
	OnLongPress func(e PressEvent)
	// OnError, if set, is called by Update with the errors of press
	// callbacks other than SkipToggle.
	OnError func(err error)
	// Invalidate is called from the callback goroutine after an
	// outcome is queued, to request a call to Update.
	Invalidate func()

	mu       sync.Mutex
	outcomes []outcome
}

type outcome struct {
	node Node
	err  error
}

// NodePress calls OnNodePress for node.
func (d *Dispatcher) NodePress(ctx context.Context, node Node, level int) *Pending {
	return d.press(ctx, d.OnNodePress, node, level)
}

// LeafPress calls OnLeafPress for node.
func (d *Dispatcher) LeafPress(ctx context.Context, node Node, level int) *Pending {
	return d.press(ctx, d.OnLeafPress, node, level)
}

// LongPress calls OnLongPress for node. Long presses never change
// expansion.
func (d *Dispatcher) LongPress(node Node, level int) {
	if d.OnLongPress != nil {
		d.OnLongPress(PressEvent{Node: node, Level: level})
	}
}

func (d *Dispatcher) press(ctx context.Context, fn PressFunc, node Node, level int) *Pending {
	p := &Pending{done: make(chan struct{})}
	invalidate := d.Invalidate
	go func() {
		var err error
		if fn != nil {
			err = fn(ctx, PressEvent{Node: node, Level: level})
		}
		d.mu.Lock()
		d.outcomes = append(d.outcomes, outcome{node: node, err: err})
		d.mu.Unlock()
		if errors.Is(err, SkipToggle) {
			err = nil
		}
		p.err = err
		close(p.done)
		if invalidate != nil {
			invalidate()
		}
	}()
	return p
}

// Update applies the outcomes of returned callbacks and reports how
// many nodes were toggled. A node is toggled if its callback succeeded
// and it has children once the callback returned. Update must be called
// from the goroutine that owns the Expansion.
func (d *Dispatcher) Update() int {
	d.mu.Lock()
	outcomes := d.outcomes
	d.outcomes = nil
	d.mu.Unlock()
	n := 0
	for _, o := range outcomes {
		switch {
		case errors.Is(o.err, SkipToggle):
		case o.err != nil:
			if d.OnError != nil {
				d.OnError(o.err)
			}
		case d.Keys.HasChildren(o.node):
			d.Expansion.Toggle(d.Keys.IDOf(o.node))
			n++
		}
	}
	return n
}
