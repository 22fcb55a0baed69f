// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"context"
	"image"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"

	"gioui.org/treeview/tree"
)

// Tree is the state of a collapsible tree. Nodes are laid out twice
// side by side: an indicator column and a content column. Both share
// expansion and differ only in how nodes are drawn and which press
// callback is used.
//
// The exported fields may be changed between frames. A Tree forgets
// its expansion when the forest given to Layout or Keys changes.
type Tree struct {
	// Keys names the identifier and children fields of nodes.
	Keys tree.Keys
	// InitialExpanded is the expansion of nodes never pressed.
	InitialExpanded bool
	// IsNodeExpanded, if set, decides expansion. Presses still invoke
	// callbacks but their toggles are not visible.
	IsNodeExpanded func(id any) bool
	// CollapsedHeight returns the height of a collapsed node. If nil,
	// collapsed nodes are 20dp high.
	CollapsedHeight func(id any, level int) unit.Dp
	// DisableTouch reports whether presses on a node are ignored.
	DisableTouch func(node tree.Node, level int) bool

	// OnNodePress is called for presses in the content column.
	OnNodePress tree.PressFunc
	// OnLeafPress is called for presses in the indicator column.
	OnLeafPress tree.PressFunc
	// OnPressError is called during Layout with errors returned by
	// OnNodePress and OnLeafPress, other than tree.SkipToggle. If nil,
	// such errors are dropped.
	OnPressError func(err error)
	// OnNodeLongPress is called for long presses in either column.
	OnNodeLongPress func(e tree.PressEvent)
	// LongPressDuration overrides DefaultLongPressDuration.
	LongPressDuration time.Duration

	// Context is passed to press callbacks. If nil,
	// context.Background is used.
	Context context.Context
	// Invalidate is called when a press callback returns on another
	// goroutine. Set it to the Invalidate method of the window.
	Invalidate func()

	exp        tree.Expansion
	gen        tree.Generation
	disp       tree.Dispatcher
	nodes      pressables
	indicators pressables
}

// ItemWidget draws a node.
type ItemWidget func(gtx layout.Context, it tree.Item) layout.Dimensions

const defaultCollapsedHeight = unit.Dp(20)

// inf is an infinite height for nodes stacked in a column.
const inf = 1e6

// Expanded reports whether the node identified by id is expanded.
func (t *Tree) Expanded(id any) bool {
	return t.expansion().Expanded(id)
}

// Expand the node identified by id.
func (t *Tree) Expand(id any) {
	t.expansion().Expand(id)
}

// Collapse the node identified by id.
func (t *Tree) Collapse(id any) {
	t.expansion().Collapse(id)
}

// Toggle the expansion of the node identified by id.
func (t *Tree) Toggle(id any) {
	t.expansion().Toggle(id)
}

// ResetExpansion forgets the expansion of every node.
func (t *Tree) ResetExpansion() {
	t.exp.Reset()
}

// NodePress presses node as if it was pressed in the content column.
func (t *Tree) NodePress(node tree.Node, level int) *tree.Pending {
	return t.dispatcher().NodePress(t.context(), node, level)
}

// LeafPress presses node as if it was pressed in the indicator column.
func (t *Tree) LeafPress(node tree.Node, level int) *tree.Pending {
	return t.dispatcher().LeafPress(t.context(), node, level)
}

// Update applies the outcome of returned press callbacks and forgets
// expansion if forest or Keys changed since the previous call. Layout
// calls Update.
func (t *Tree) Update(forest []tree.Node) {
	if t.gen.Changed(forest, t.Keys) {
		t.exp.Reset()
	}
	t.dispatcher().Update()
}

// Layout the forest. node draws the content column, indicator the
// indicator column. A nil indicator leaves the indicator column empty.
func (t *Tree) Layout(gtx layout.Context, forest []tree.Node, node, indicator ItemWidget) layout.Dimensions {
	t.Update(forest)
	if indicator == nil {
		indicator = func(gtx layout.Context, _ tree.Item) layout.Dimensions {
			return layout.Dimensions{}
		}
	}
	d := t.dispatcher()
	indicators := t.compose(forest, &t.indicators, indicator, d.LeafPress)
	nodes := t.compose(forest, &t.nodes, node, d.NodePress)
	dims := layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return column(gtx, indicators)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return column(gtx, nodes)
		}),
	)
	t.indicators.prune()
	t.nodes.prune()
	return dims
}

type pressFunc func(ctx context.Context, node tree.Node, level int) *tree.Pending

func (t *Tree) compose(forest []tree.Node, ps *pressables, draw ItemWidget, press pressFunc) []layout.Widget {
	exp := t.expansion()
	return tree.Compose(t.Keys, exp, forest, 0, func(it tree.Item, children []layout.Widget) layout.Widget {
		p := ps.get(it.Path)
		return func(gtx layout.Context) layout.Dimensions {
			touch := func(gtx layout.Context) layout.Dimensions {
				return t.layoutTouch(gtx, p, it, draw, press)
			}
			m := op.Record(gtx.Ops)
			dims := column(gtx, append([]layout.Widget{touch}, children...))
			c := m.Stop()
			if !it.Expanded {
				dims.Size.Y = gtx.Dp(t.collapsedHeight(it.ID, it.Level))
				dims.Baseline = 0
			}
			defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
			c.Add(gtx.Ops)
			return dims
		}
	})
}

func (t *Tree) layoutTouch(gtx layout.Context, p *pressable, it tree.Item, draw ItemWidget, press pressFunc) layout.Dimensions {
	enabled := t.DisableTouch == nil || !t.DisableTouch(it.Node, it.Level)
	if enabled {
		pressed, long := p.update(gtx, t.longPressDuration())
		if long {
			t.dispatcher().LongPress(it.Node, it.Level)
		}
		if pressed {
			press(t.context(), it.Node, it.Level)
		}
	} else {
		p.reset()
		gtx = gtx.Disabled()
	}
	return p.Layout(gtx, enabled, func(gtx layout.Context) layout.Dimensions {
		return draw(gtx, it)
	})
}

// column stacks widgets vertically without limiting their height.
func column(gtx layout.Context, children []layout.Widget) layout.Dimensions {
	cgtx := gtx
	cgtx.Constraints.Min.Y = 0
	cgtx.Constraints.Max.Y = inf
	var size image.Point
	for _, w := range children {
		trans := op.Offset(image.Pt(0, size.Y)).Push(gtx.Ops)
		dims := w(cgtx)
		trans.Pop()
		size.Y += dims.Size.Y
		if dims.Size.X > size.X {
			size.X = dims.Size.X
		}
	}
	return layout.Dimensions{Size: gtx.Constraints.Constrain(size)}
}

func (t *Tree) expansion() *tree.Expansion {
	t.exp.Initial = t.InitialExpanded
	t.exp.Predicate = t.IsNodeExpanded
	return &t.exp
}

func (t *Tree) dispatcher() *tree.Dispatcher {
	t.disp.Keys = t.Keys
	t.disp.Expansion = t.expansion()
	t.disp.OnNodePress = t.OnNodePress
	t.disp.OnLeafPress = t.OnLeafPress
	t.disp.OnLongPress = t.OnNodeLongPress
	t.disp.OnError = t.OnPressError
	t.disp.Invalidate = t.Invalidate
	return &t.disp
}

func (t *Tree) collapsedHeight(id any, level int) unit.Dp {
	if t.CollapsedHeight == nil {
		return defaultCollapsedHeight
	}
	return t.CollapsedHeight(id, level)
}

func (t *Tree) longPressDuration() time.Duration {
	if t.LongPressDuration <= 0 {
		return DefaultLongPressDuration
	}
	return t.LongPressDuration
}

func (t *Tree) context() context.Context {
	if t.Context == nil {
		return context.Background()
	}
	return t.Context
}
