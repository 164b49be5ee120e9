package feedback

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/linked-ring-to-line/internal/config"
	"github.com/iburimskiy/linked-ring-to-line/internal/ringline"
)

var errEmptySample = errors.New("chime: sample has no audio")

// Chime plays a short sound when a sweep settles: a higher tone when a
// ring becomes a line and a lower one when it turns back into a ring.
//
// Sounds are decoded or synthesized up front into buffers, so playing
// only hands a fresh streamer over the buffer to the speaker.
type Chime struct {
	sampleRate beep.SampleRate
	ready      bool
	muted      bool

	complete *beep.Buffer
	reset    *beep.Buffer
}

func NewChime() *Chime {
	sr := beep.SampleRate(config.ChimeSampleRate)
	return &Chime{
		sampleRate: sr,
		complete:   toneBuffer(sr, config.ChimeCompleteFreq, config.ChimeDuration),
		reset:      toneBuffer(sr, config.ChimeResetFreq, config.ChimeDuration),
	}
}

// Init opens the audio device. Until it succeeds the chime stays silent.
func (c *Chime) Init() error {
	bufferSize := c.sampleRate.N(time.Second / 20)
	if err := speaker.Init(c.sampleRate, bufferSize); err != nil {
		return fmt.Errorf("chime: init speaker: %w", err)
	}
	c.ready = true
	return nil
}

func (c *Chime) Muted() bool                 { return c.muted }
func (c *Chime) SetMuted(m bool)             { c.muted = m }
func (c *Chime) SampleRate() beep.SampleRate { return c.sampleRate }

func (c *Chime) Listener() ringline.Listener {
	return ringline.Listener{
		OnComplete: func(int) { c.play(c.complete) },
		OnReset:    func(int) { c.play(c.reset) },
	}
}

func (c *Chime) play(buf *beep.Buffer) {
	if !c.ready || c.muted || buf == nil {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   config.ChimeVolume,
	})
}

// Load replaces both sounds with the first seconds of an audio file.
// Supported formats are wav, mp3 and flac.
func (c *Chime) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return errors.New("unsupported file type: " + ext)
	}
	if err != nil {
		return fmt.Errorf("chime: decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	var s beep.Streamer = beep.Take(format.SampleRate.N(config.ChimeMaxLength), streamer)
	if format.SampleRate != c.sampleRate {
		s = beep.Resample(4, format.SampleRate, c.sampleRate, s)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  c.sampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("chime: read %s: %w", filepath.Base(path), err)
	}
	if buf.Len() == 0 {
		return errEmptySample
	}

	c.complete, c.reset = buf, buf
	return nil
}

func toneBuffer(sr beep.SampleRate, freq float64, d time.Duration) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(tone(sr, freq, d))
	return buf
}

// tone is a sine at freq with a linear fade out over d.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < n; i++ {
			t := float64(pos) / float64(sr)
			env := 1 - float64(pos)/float64(n)
			v := math.Sin(2*math.Pi*freq*t) * env
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return i, true
	})
}
