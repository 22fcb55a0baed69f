// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	giomaterial "gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioui.org/treeview/tree"
	"gioui.org/treeview/widget"
)

var (
	expandedIcon  = mustIcon(icons.NavigationExpandMore)
	collapsedIcon = mustIcon(icons.NavigationChevronRight)
)

func mustIcon(data []byte) *giowidget.Icon {
	ic, err := giowidget.NewIcon(data)
	if err != nil {
		panic(err)
	}
	return ic
}

// TreeStyle draws a tree with chevron indicators and text labels.
type TreeStyle struct {
	State *widget.Tree
	// Indent is the indentation of indicators per level.
	Indent unit.Dp
	// IndicatorSize is the size of the chevron icons.
	IndicatorSize unit.Dp
	// IndicatorColor is the color of the chevron icons.
	IndicatorColor color.NRGBA
	// Label returns the text of a node. The default formats the
	// node identifier.
	Label    func(it tree.Item) string
	TextSize unit.Sp
	Inset    layout.Inset

	theme *giomaterial.Theme
}

// Tree returns a TreeStyle for state. Indicators match the default
// collapsed height of 20dp.
func Tree(th *giomaterial.Theme, state *widget.Tree) TreeStyle {
	return TreeStyle{
		State:          state,
		Indent:         16,
		IndicatorSize:  20,
		IndicatorColor: th.Palette.Fg,
		Label: func(it tree.Item) string {
			return fmt.Sprint(it.ID)
		},
		TextSize: th.TextSize,
		Inset:    layout.Inset{Left: 4, Right: 4},
		theme:    th,
	}
}

// Layout the forest with the default node drawing.
func (t TreeStyle) Layout(gtx layout.Context, forest []tree.Node) layout.Dimensions {
	return t.LayoutNodes(gtx, forest, t.LayoutNode)
}

// LayoutNodes lays out the forest with custom node drawing and the
// style's indicators.
func (t TreeStyle) LayoutNodes(gtx layout.Context, forest []tree.Node, node widget.ItemWidget) layout.Dimensions {
	return t.State.Layout(gtx, forest, node, t.LayoutIndicator)
}

// LayoutIndicator draws a chevron for nodes with children and an
// indented blank otherwise.
func (t TreeStyle) LayoutIndicator(gtx layout.Context, it tree.Item) layout.Dimensions {
	indent := gtx.Dp(t.Indent) * it.Level
	size := gtx.Dp(t.IndicatorSize)
	if !it.HasChildren {
		return layout.Dimensions{Size: image.Pt(indent+size, size)}
	}
	ic := collapsedIcon
	if it.Expanded {
		ic = expandedIcon
	}
	return layout.Inset{Left: unit.Dp(float32(t.Indent) * float32(it.Level))}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints = layout.Exact(image.Pt(size, size))
		return ic.Layout(gtx, t.IndicatorColor)
	})
}

// LayoutNode draws the label of a node.
func (t TreeStyle) LayoutNode(gtx layout.Context, it tree.Item) layout.Dimensions {
	lbl := giomaterial.Body1(t.theme, t.Label(it))
	lbl.TextSize = t.TextSize
	lbl.MaxLines = 1
	return t.Inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min.Y = gtx.Dp(t.IndicatorSize)
		return lbl.Layout(gtx)
	})
}
