//go:build ebiten

package main

import (
	"errors"
	"fmt"

	"torlife/internal/app"
	"torlife/pkg/universe"

	"github.com/hajimehoshi/ebiten/v2"
)

// runGUI opens the graphical viewer and blocks until the window closes.
func runGUI(cfg *app.Config, uni *universe.Universe, seed app.SeedFunc) error {
	if uni.Width() == 0 || uni.Height() == 0 {
		return fmt.Errorf("cannot open a viewer for a %dx%d grid", uni.Width(), uni.Height())
	}
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}

	game := app.NewGame(uni, scale, cfg.TPS, seed)

	ebiten.SetWindowTitle("torlife")
	ebiten.SetWindowSize(uni.Width()*scale, uni.Height()*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
