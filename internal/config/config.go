package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
	WindowTitle  = "Linked Ring To Line - click to animate, F: fullscreen, H: HUD, O: chime, M: mute, Esc/Q: quit"

	// Start in fullscreen mode
	Fullscreen = false

	// Chain parameters
	NodeCount    = 5
	ScaleStep    = 0.1
	TickInterval = 50 * time.Millisecond

	// Stroke width is min(width, height) / StrokeDivisor
	StrokeDivisor = 60
	// Degrees sampled per ring outline (0..360 inclusive)
	OutlineSteps = 360

	// Chime parameters
	ChimeSampleRate   = 44100
	ChimeDuration     = 120 * time.Millisecond
	ChimeCompleteFreq = 880.0
	ChimeResetFreq    = 587.33
	ChimeVolume       = -1.0 // log2 gain passed to effects.Volume
	ChimeMaxLength    = 2 * time.Second
)

var (
	ShapeColor      = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF} // #4CAF50
	BackgroundColor = color.RGBA{R: 0xBD, G: 0xBD, B: 0xBD, A: 0xFF} // #BDBDBD
)
