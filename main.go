package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/linked-ring-to-line/internal/config"
	"github.com/iburimskiy/linked-ring-to-line/internal/feedback"
	"github.com/iburimskiy/linked-ring-to-line/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(config.Fullscreen)
	// Frames are only redrawn on repaint requests; keep the last one on screen.
	ebiten.SetScreenClearedEveryFrame(false)

	chime := feedback.NewChime()
	if err := chime.Init(); err != nil {
		log.Printf("%v; continuing without sound", err)
	}

	g := game.New(chime, feedback.Toast(), chime.Listener())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
