// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"strconv"
	"time"

	"gioui.org/gesture"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// DefaultLongPressDuration is how long a press is held before it is
// reported as a long press.
const DefaultLongPressDuration = 500 * time.Millisecond

// pressable is a touch region reporting presses and long presses.
// A press that turned into a long press does not also report a press
// when released.
type pressable struct {
	click   gesture.Click
	start   time.Time
	pressed bool
	long    bool
	seen    bool
}

// update processes events and reports whether a press or long press
// completed.
func (p *pressable) update(gtx layout.Context, longPress time.Duration) (press, long bool) {
	for {
		e, ok := p.click.Update(gtx.Source)
		if !ok {
			break
		}
		switch e.Kind {
		case gesture.KindPress:
			p.start = gtx.Now
			p.pressed = true
			p.long = false
		case gesture.KindClick:
			if !p.long {
				press = true
			}
			p.pressed = false
			p.long = false
		case gesture.KindCancel:
			p.pressed = false
			p.long = false
		}
	}
	if p.pressed && !p.long {
		if at := p.start.Add(longPress); !gtx.Now.Before(at) {
			p.long = true
			long = true
		} else {
			gtx.Execute(op.InvalidateCmd{At: at})
		}
	}
	return press, long
}

func (p *pressable) reset() {
	p.pressed = false
	p.long = false
}

func (p *pressable) Layout(gtx layout.Context, enabled bool, w layout.Widget) layout.Dimensions {
	m := op.Record(gtx.Ops)
	dims := w(gtx)
	c := m.Stop()
	defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
	if enabled {
		p.click.Add(gtx.Ops)
	}
	c.Add(gtx.Ops)
	return dims
}

// pressables maps node positions to their touch regions. Positions
// are used over identifiers so that nodes sharing an identifier are
// pressed separately.
type pressables struct {
	m map[string]*pressable
}

func (ps *pressables) get(path []int) *pressable {
	if ps.m == nil {
		ps.m = make(map[string]*pressable)
	}
	k := pathKey(path)
	p, ok := ps.m[k]
	if !ok {
		p = new(pressable)
		ps.m[k] = p
	}
	p.seen = true
	return p
}

func pathKey(path []int) string {
	b := make([]byte, 0, 4*len(path))
	for i, idx := range path {
		if i > 0 {
			b = append(b, '/')
		}
		b = strconv.AppendInt(b, int64(idx), 10)
	}
	return string(b)
}

// prune drops regions not used since the previous prune.
func (ps *pressables) prune() {
	for id, p := range ps.m {
		if !p.seen {
			delete(ps.m, id)
			continue
		}
		p.seen = false
	}
}
