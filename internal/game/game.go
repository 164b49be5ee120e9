package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/linked-ring-to-line/internal/config"
	"github.com/iburimskiy/linked-ring-to-line/internal/feedback"
	"github.com/iburimskiy/linked-ring-to-line/internal/ringline"
)

// Game hosts the ring-to-line widget in an ebiten window.
//
// The screen is not cleared between frames: Draw only renders when a
// repaint was requested, so the ticker alone decides the animation cadence.
type Game struct {
	renderer *ringline.Renderer
	chime    *feedback.Chime
	surface  surface

	// repaint state
	dirty         bool
	width, height int

	// hud
	showHUD   bool
	lastEvent string
	lastErr   error

	touchIDs []ebiten.TouchID
}

// New builds the widget. listeners receive every complete/reset event in
// addition to the HUD. chime may be nil.
func New(chime *feedback.Chime, listeners ...ringline.Listener) *Game {
	g := &Game{
		chime: chime,
		dirty: true,
	}
	ticker := ringline.NewTicker(g, config.TickInterval)
	g.renderer = ringline.NewRenderer(ringline.NewChain(config.NodeCount), ticker)

	hud := ringline.Listener{
		OnComplete: func(i int) { g.lastEvent = feedback.CompleteMessage(i) },
		OnReset:    func(i int) { g.lastEvent = feedback.ResetMessage(i) },
	}
	g.renderer.SetListener(ringline.Listeners(append([]ringline.Listener{hud}, listeners...)...))
	return g
}

func (g *Game) Renderer() *ringline.Renderer { return g.renderer }

func (g *Game) RequestRepaint()    { g.dirty = true }
func (g *Game) RequestRepaintNow() { g.dirty = true }

func (g *Game) Update() error {
	if g.tapped() {
		g.renderer.HandleTap()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.chime != nil {
		g.chime.SetMuted(!g.chime.Muted())
		g.dirty = g.dirty || g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) && g.chime != nil {
		if err := g.openChimeDialog(); err != nil {
			g.lastErr = err
		}
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.renderer.Ticker().Poll(time.Now())
	return nil
}

// tapped reports a pointer-down from the mouse or any new touch.
func (g *Game) tapped() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	return len(g.touchIDs) > 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.dirty = false

	g.surface.begin(screen)
	g.renderer.Render(&g.surface)

	if g.showHUD {
		ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	}
}

func (g *Game) status() string {
	chain := g.renderer.Chain()
	ticker := "idle"
	if g.renderer.Ticker().Running() {
		ticker = "running"
	}
	s := fmt.Sprintf("node %d/%d  dir %+d  ticker %s", chain.Current()+1, chain.Len(), chain.Direction(), ticker)
	if g.chime != nil && g.chime.Muted() {
		s += "  (muted)"
	}
	if g.lastEvent != "" {
		s += " | " + g.lastEvent
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}

func (g *Game) openChimeDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Chime Sample"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.chime.Load(filename)
}
