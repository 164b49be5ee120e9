package ringline

import (
	"math"

	"github.com/iburimskiy/linked-ring-to-line/internal/config"
)

// Node is one shape of the chain. Its neighbours are the nodes at
// Index-1 and Index+1 of the owning chain.
type Node struct {
	Index int
	State ScaleState
}

func (n *Node) Advance() Event {
	v, ok := n.State.Advance()
	if !ok {
		return Event{Kind: EventNone, Index: n.Index}
	}
	return Event{Kind: EventSettled, Index: n.Index, Value: v}
}

func (n *Node) Start() Event {
	if !n.State.Start() {
		return Event{Kind: EventNone, Index: n.Index}
	}
	return Event{Kind: EventStarted, Index: n.Index}
}

// Draw strokes the node's shape for a chain of count nodes.
func (n *Node) Draw(s Surface, count int) {
	w, h := s.Size()
	shape := Layout(n.Index, count, n.State.Scale, w, h)

	s.Save()
	s.Translate(shape.X, shape.Y)
	s.StrokePath(shape.Outline(config.OutlineSteps), Stroke{
		Width: StrokeWidth(w, h),
		Cap:   CapRound,
		Color: config.ShapeColor,
	})
	s.Restore()
}

// Shape is the placement of one node: the centre of its outline and
// the two ellipse radii.
type Shape struct {
	X, Y             float32
	RadiusX, RadiusY float32
}

// Phases splits a scale into its two half interpolants. The first
// (a) moves the shape into place during scale 0..0.5, the second (b)
// flattens it during 0.5..1.
func Phases(scale float32) (a, b float32) {
	a = clamp(scale, 0, 0.5) * 2
	b = clamp(scale-0.5, 0, 0.5) * 2
	return a, b
}

// Layout computes where node index of count sits in a width x height
// viewport at the given scale.
func Layout(index, count int, scale, width, height float32) Shape {
	a, b := Phases(scale)
	gap := width / float32(count)
	return Shape{
		X:       gap/2 + float32(index)*gap*a,
		Y:       gap/2 + (height/2-gap/2)*a,
		RadiusX: gap / 2,
		RadiusY: gap / 2 * (1 - b),
	}
}

// Outline samples the ellipse every 360/steps degrees, relative to its
// centre. The first and last points coincide so the stroke closes.
func (sh Shape) Outline(steps int) []Point {
	pts := make([]Point, 0, steps+1)
	for j := 0; j <= steps; j++ {
		rad := float64(j) * 2 * math.Pi / float64(steps)
		pts = append(pts, Point{
			X: sh.RadiusX * float32(math.Cos(rad)),
			Y: sh.RadiusY * float32(math.Sin(rad)),
		})
	}
	return pts
}

func StrokeWidth(width, height float32) float32 {
	return min(width, height) / config.StrokeDivisor
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
