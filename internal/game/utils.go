package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/linked-ring-to-line/internal/ringline"
)

// vertexColor converts c to straight-alpha components in [0, 1] as
// expected by ebiten.Vertex.
func vertexColor(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	if ca == 0 {
		return 0, 0, 0, 0
	}
	a = float32(ca) / 0xffff
	r = clamp01(float32(cr) / float32(ca))
	g = clamp01(float32(cg) / float32(ca))
	b = clamp01(float32(cb) / float32(ca))
	return r, g, b, a
}

func lineCap(c ringline.LineCap) vector.LineCap {
	switch c {
	case ringline.CapRound:
		return vector.LineCapRound
	case ringline.CapSquare:
		return vector.LineCapSquare
	default:
		return vector.LineCapButt
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// transformStack is the translate-only transform behind Surface.Save,
// Restore and Translate.
type transformStack struct {
	x, y  float32
	saved [][2]float32
}

func (t *transformStack) reset() {
	t.x, t.y = 0, 0
	t.saved = t.saved[:0]
}

func (t *transformStack) save() {
	t.saved = append(t.saved, [2]float32{t.x, t.y})
}

// restore pops the last save; an unbalanced restore resets to identity.
func (t *transformStack) restore() {
	if len(t.saved) == 0 {
		t.x, t.y = 0, 0
		return
	}
	last := t.saved[len(t.saved)-1]
	t.saved = t.saved[:len(t.saved)-1]
	t.x, t.y = last[0], last[1]
}

func (t *transformStack) translate(dx, dy float32) {
	t.x += dx
	t.y += dy
}

func (t *transformStack) apply(p ringline.Point) (float32, float32) {
	return t.x + p.X, t.y + p.Y
}
