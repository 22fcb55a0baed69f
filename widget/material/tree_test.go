// SPDX-License-Identifier: Unlicense OR MIT

package material_test

import (
	"image"
	"testing"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	giomaterial "gioui.org/widget/material"

	"gioui.org/treeview/tree"
	"gioui.org/treeview/widget"
	"gioui.org/treeview/widget/material"
)

func newTheme() *giomaterial.Theme {
	th := giomaterial.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	return th
}

func TestTreeIndicator(t *testing.T) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Constraints{Max: image.Pt(300, 300)},
	}
	style := material.Tree(newTheme(), new(widget.Tree))
	tests := []struct {
		name string
		it   tree.Item
		want image.Point
	}{
		{"root leaf", tree.Item{Level: 0}, image.Pt(20, 20)},
		{"nested leaf", tree.Item{Level: 2}, image.Pt(52, 20)},
		{"collapsed parent", tree.Item{Level: 1, HasChildren: true}, image.Pt(36, 20)},
		{"expanded parent", tree.Item{Level: 1, HasChildren: true, Expanded: true}, image.Pt(36, 20)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gtx.Reset()
			if got := style.LayoutIndicator(gtx, tc.it).Size; got != tc.want {
				t.Errorf("size = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTreeLayout(t *testing.T) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Constraints{Max: image.Pt(300, 300)},
	}
	forest := []tree.Node{
		map[string]any{"id": "a", "children": []any{
			map[string]any{"id": "b"},
			map[string]any{"id": "c"},
		}},
		map[string]any{"id": "d"},
	}
	var labels []string
	state := new(widget.Tree)
	style := material.Tree(newTheme(), state)
	style.Label = func(it tree.Item) string {
		labels = append(labels, it.ID.(string))
		return it.ID.(string)
	}

	dims := style.Layout(gtx, forest)
	if got, want := len(labels), 2; got != want {
		t.Fatalf("drew %d labels, want %d", got, want)
	}
	if got, want := dims.Size.Y, 2*20; got != want {
		t.Errorf("height = %d, want %d", got, want)
	}

	state.Expand("a")
	labels = nil
	gtx.Reset()
	dims = style.Layout(gtx, forest)
	if got, want := len(labels), 4; got != want {
		t.Fatalf("drew %d labels, want %d", got, want)
	}
	if dims.Size.Y <= 2*20 {
		t.Errorf("expanded height = %d, want more than %d", dims.Size.Y, 2*20)
	}
}
