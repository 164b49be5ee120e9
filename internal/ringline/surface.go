package ringline

import "image/color"

type Point struct {
	X, Y float32
}

type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// Stroke describes how StrokePath draws a polyline.
type Stroke struct {
	Width float32
	Cap   LineCap
	Color color.Color
}

// Surface is the drawing target supplied by the host.
//
// Translate accumulates onto the current transform; Save pushes it and
// Restore pops back to the last saved one. Points passed to StrokePath are
// relative to the current transform.
type Surface interface {
	Size() (width, height float32)
	Fill(c color.Color)
	Save()
	Restore()
	Translate(dx, dy float32)
	StrokePath(points []Point, stroke Stroke)
}

// Repainter schedules calls to the host's draw entrypoint.
// RequestRepaint may be coalesced with other pending requests;
// RequestRepaintNow asks for the very next frame.
type Repainter interface {
	RequestRepaint()
	RequestRepaintNow()
}
