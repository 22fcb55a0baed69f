// SPDX-License-Identifier: Unlicense OR MIT

package main

// Treeview shows a forest from a JSON or TOML file and reloads it when
// the file changes.

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	giowidget "gioui.org/widget"
	giomaterial "gioui.org/widget/material"
	"golang.org/x/image/colornames"

	"gioui.org/treeview/internal/forest"
	"gioui.org/treeview/tree"
	"gioui.org/treeview/widget"
	"gioui.org/treeview/widget/material"
)

var (
	file     = flag.String("file", "", "forest file (.json or .toml); a built-in forest is shown if empty")
	expanded = flag.Bool("expanded", false, "expand nodes initially")
	idKey    = flag.String("id", "id", "identifier field")
	childKey = flag.String("children", "children", "children field")
	labelKey = flag.String("label", "name", "label field; the identifier is shown if absent")
)

const sample = `[
	{"id": 1, "name": "src", "children": [
		{"id": 2, "name": "tree", "children": [
			{"id": 3, "name": "keys.go"},
			{"id": 4, "name": "expansion.go"}
		]},
		{"id": 5, "name": "widget", "locked": true, "children": [
			{"id": 6, "name": "tree.go"}
		]}
	]},
	{"id": 7, "name": "README.md"}
]`

func main() {
	flag.Parse()
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Tree"))
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

type ui struct {
	forest   []tree.Node
	selected any
	state    widget.Tree
	list     giowidget.List
	theme    *giomaterial.Theme
	style    material.TreeStyle
}

func newUI(invalidate func(), nodes []tree.Node) *ui {
	u := &ui{forest: nodes}
	u.list.Axis = layout.Vertical
	u.state = widget.Tree{
		Keys:            tree.Keys{ID: *idKey, Children: *childKey},
		InitialExpanded: *expanded,
		OnNodePress:     u.nodePressed,
		OnLeafPress:     u.leafPressed,
		OnPressError: func(err error) {
			log.Print(err)
		},
		OnNodeLongPress: func(e tree.PressEvent) {
			u.selected = u.state.Keys.IDOf(e.Node)
			// Rows drawn earlier in this frame still show the old
			// selection.
			invalidate()
		},
		Invalidate: invalidate,
	}
	u.theme = giomaterial.NewTheme()
	u.theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	u.style = material.Tree(u.theme, &u.state)
	u.style.Label = u.label
	return u
}

func (u *ui) label(it tree.Item) string {
	if m, ok := it.Node.(map[string]any); ok {
		if s, ok := m[*labelKey].(string); ok {
			return s
		}
	}
	return fmt.Sprint(it.ID)
}

// nodePressed refuses to open locked nodes.
func (u *ui) nodePressed(ctx context.Context, e tree.PressEvent) error {
	if m, ok := e.Node.(map[string]any); ok && m["locked"] == true {
		log.Printf("%v is locked", u.state.Keys.IDOf(e.Node))
		return tree.SkipToggle
	}
	return nil
}

func (u *ui) leafPressed(ctx context.Context, e tree.PressEvent) error {
	log.Printf("indicator of %v pressed at level %d", u.state.Keys.IDOf(e.Node), e.Level)
	return nil
}

func (u *ui) Layout(gtx layout.Context) layout.Dimensions {
	return giomaterial.List(u.theme, &u.list).Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
		return u.style.LayoutNodes(gtx, u.forest, u.layoutNode)
	})
}

func (u *ui) layoutNode(gtx layout.Context, it tree.Item) layout.Dimensions {
	m := op.Record(gtx.Ops)
	dims := u.style.LayoutNode(gtx, it)
	c := m.Stop()
	if u.selected != nil && it.ID == u.selected {
		paint.FillShape(gtx.Ops, highlight, clip.Rect{Max: dims.Size}.Op())
	}
	c.Add(gtx.Ops)
	return dims
}

var highlight = color.NRGBAModel.Convert(colornames.Lightsteelblue).(color.NRGBA)

func loop(w *app.Window) error {
	nodes, err := forest.DecodeJSON([]byte(sample))
	if err != nil {
		return err
	}
	if *file != "" {
		if nodes, err = forest.Load(*file); err != nil {
			return err
		}
	}
	u := newUI(w.Invalidate, nodes)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	u.state.Context = ctx
	updates := make(chan []tree.Node, 1)
	if *file != "" {
		go func() {
			err := forest.Watch(ctx, *file, func(nodes []tree.Node, err error) {
				if err != nil {
					log.Print(err)
					return
				}
				select {
				case <-updates:
				default:
				}
				updates <- nodes
				w.Invalidate()
			})
			if err != nil && err != context.Canceled {
				log.Print(err)
			}
		}()
	}

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			select {
			case nodes := <-updates:
				u.forest = nodes
				u.selected = nil
			default:
			}
			gtx := app.NewContext(&ops, e)
			u.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
