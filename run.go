package ratingbar

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// Resizable lets the user resize the window; the layout follows it.
	Resizable bool
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "ratingbar"
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	return c
}

// game adapts a Host to ebiten.Game.
type game struct {
	host *Host
	cfg  RunConfig
}

func (g *game) Update() error {
	return g.host.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.host.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Resizable {
		return outsideWidth, outsideHeight
	}
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives host until the window closes or the host's
// update function returns an error. For full control, implement ebiten.Game
// yourself and call Host.Update and Host.Draw directly.
func Run(host *Host, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(&game{host: host, cfg: cfg}); err != nil {
		return fmt.Errorf("ratingbar: run: %w", err)
	}
	return nil
}
