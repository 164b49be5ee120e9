package ringline

import (
	"image/color"
	"time"
)

type fakeRepainter struct {
	requests    int
	nowRequests int
}

func (f *fakeRepainter) RequestRepaint()    { f.requests++ }
func (f *fakeRepainter) RequestRepaintNow() { f.nowRequests++ }

func (f *fakeRepainter) total() int { return f.requests + f.nowRequests }

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
func newFakeClock() *fakeClock               { return &fakeClock{t: time.Unix(1_700_000_000, 0)} }

type strokeCall struct {
	offset Point
	points []Point
	stroke Stroke
}

// recordingSurface applies translations itself so tests can inspect
// absolute positions.
type recordingSurface struct {
	w, h    float32
	fills   []color.Color
	strokes []strokeCall
	offset  Point
	stack   []Point
	ops     []string
}

func newRecordingSurface(w, h float32) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) Size() (float32, float32) { return s.w, s.h }

func (s *recordingSurface) Fill(c color.Color) {
	s.fills = append(s.fills, c)
	s.ops = append(s.ops, "fill")
}

func (s *recordingSurface) Save() {
	s.stack = append(s.stack, s.offset)
	s.ops = append(s.ops, "save")
}

func (s *recordingSurface) Restore() {
	s.offset = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.ops = append(s.ops, "restore")
}

func (s *recordingSurface) Translate(dx, dy float32) {
	s.offset.X += dx
	s.offset.Y += dy
	s.ops = append(s.ops, "translate")
}

func (s *recordingSurface) StrokePath(points []Point, stroke Stroke) {
	s.strokes = append(s.strokes, strokeCall{offset: s.offset, points: points, stroke: stroke})
	s.ops = append(s.ops, "stroke")
}

// sweep advances the chain until it settles, returning the settle event
// and the number of steps taken. It gives up after limit steps.
func sweep(c *Chain, limit int) (Event, int) {
	for i := 1; i <= limit; i++ {
		if ev := c.Advance(); ev.Kind == EventSettled {
			return ev, i
		}
	}
	return Event{}, limit
}
