// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws trees in the Material design.
//
// The state and event handling of a tree is kept by widget.Tree, while
// TreeStyle draws it with a Theme from gioui.org/widget/material:
//
//	var state widget.Tree
//	th := giomaterial.NewTheme()
//
//	material.Tree(th, &state).Layout(gtx, forest)
//
// Customization
//
// Adjust the TreeStyle fields for a particular tree:
//
//	t := material.Tree(th, &state)
//	t.Label = func(it tree.Item) string { return it.Node.(Dir).Name }
//	t.Layout(gtx, forest)
//
// Use LayoutNodes to keep the chevron indicators but draw the content
// column yourself.
package material
