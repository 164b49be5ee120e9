package ringline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/linked-ring-to-line/internal/config"
)

func TestPhases(t *testing.T) {
	tests := []struct {
		scale float32
		a, b  float32
	}{
		{0, 0, 0},
		{0.25, 0.5, 0},
		{0.5, 1, 0},
		{0.75, 1, 0.5},
		{1, 1, 1},
	}

	for _, tt := range tests {
		a, b := Phases(tt.scale)
		assert.InDelta(t, tt.a, a, 1e-6, "a at scale %v", tt.scale)
		assert.InDelta(t, tt.b, b, 1e-6, "b at scale %v", tt.scale)
	}
}

func TestLayout(t *testing.T) {
	const w, h = 500, 300
	gap := float32(w) / 5

	rest := Layout(3, 5, 0, w, h)
	assert.Equal(t, Shape{X: gap / 2, Y: gap / 2, RadiusX: gap / 2, RadiusY: gap / 2}, rest)

	half := Layout(3, 5, 0.25, w, h)
	assert.InDelta(t, gap/2+3*gap*0.5, half.X, 1e-3)
	assert.InDelta(t, gap/2+(h/2-gap/2)*0.5, half.Y, 1e-3)
	assert.InDelta(t, gap/2, half.RadiusY, 1e-3)

	squashed := Layout(3, 5, 0.75, w, h)
	assert.InDelta(t, gap/2+3*gap, squashed.X, 1e-3)
	assert.InDelta(t, h/2, squashed.Y, 1e-3)
	assert.InDelta(t, gap/4, squashed.RadiusY, 1e-3)

	line := Layout(3, 5, 1, w, h)
	assert.InDelta(t, 0, line.RadiusY, 1e-6)
	assert.InDelta(t, gap/2, line.RadiusX, 1e-6)
}

func TestOutlineCloses(t *testing.T) {
	pts := Shape{RadiusX: 10, RadiusY: 4}.Outline(360)
	require.Len(t, pts, 361)
	assert.InDelta(t, 10, pts[0].X, 1e-4)
	assert.InDelta(t, 0, pts[0].Y, 1e-4)
	assert.InDelta(t, pts[0].X, pts[360].X, 1e-4)
	assert.InDelta(t, pts[0].Y, pts[360].Y, 1e-4)
	assert.InDelta(t, 4, pts[90].Y, 1e-4)
}

func TestNodeDraw(t *testing.T) {
	s := newRecordingSurface(600, 300)
	n := Node{Index: 2, State: ScaleState{Scale: 1, PrevScale: 1}}
	n.Draw(s, 5)

	assert.Equal(t, []string{"save", "translate", "stroke", "restore"}, s.ops)
	require.Len(t, s.strokes, 1)

	call := s.strokes[0]
	assert.InDelta(t, 60+2*120, call.offset.X, 1e-3)
	assert.InDelta(t, 150, call.offset.Y, 1e-3)
	assert.Equal(t, float32(300)/60, call.stroke.Width)
	assert.Equal(t, CapRound, call.stroke.Cap)
	assert.Equal(t, config.ShapeColor, call.stroke.Color)
	assert.Len(t, call.points, config.OutlineSteps+1)
	assert.Equal(t, Point{}, s.offset, "transform restored")
}

func TestNodeEvents(t *testing.T) {
	n := Node{Index: 4}
	assert.Equal(t, Event{Kind: EventNone, Index: 4}, n.Advance())
	assert.Equal(t, Event{Kind: EventStarted, Index: 4}, n.Start())
	assert.Equal(t, EventNone, n.Start().Kind)

	var ev Event
	for i := 0; i < 10; i++ {
		ev = n.Advance()
	}
	assert.Equal(t, Event{Kind: EventSettled, Index: 4, Value: 1}, ev)
	assert.True(t, ev.Completed())
	assert.False(t, ev.Reset())
}
