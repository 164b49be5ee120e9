package ringline

import "github.com/iburimskiy/linked-ring-to-line/internal/config"

const scaleStep = float32(config.ScaleStep)

// ScaleState holds the animation progress of a single shape.
//
// Scale moves from PrevScale towards the opposite extreme while Dir is
// non-zero. The zero value is a settled shape at scale 0.
//
// Values are float32: the completion test compares the travelled distance
// against 1, which single precision crosses on the tenth 0.1 step in both
// directions.
type ScaleState struct {
	Scale     float32
	PrevScale float32
	Dir       float32
}

// Advancing reports whether a sweep is in flight.
func (s *ScaleState) Advancing() bool {
	return s.Dir != 0
}

// Advance moves the scale one step. When the sweep crosses a full unit it
// snaps to the extreme, goes idle and returns the settled value with ok set.
func (s *ScaleState) Advance() (settled float32, ok bool) {
	if s.Dir == 0 {
		return 0, false
	}
	s.Scale += scaleStep * s.Dir
	dist := s.Scale - s.PrevScale
	if dist < 0 {
		dist = -dist
	}
	if dist > 1 {
		s.Scale = s.PrevScale + s.Dir
		s.Dir = 0
		s.PrevScale = s.Scale
		return s.PrevScale, true
	}
	return 0, false
}

// Start begins a sweep away from the current extreme. It is a no-op and
// returns false while a sweep is already running.
func (s *ScaleState) Start() bool {
	if s.Dir != 0 {
		return false
	}
	s.Dir = 1 - 2*s.PrevScale
	return true
}
