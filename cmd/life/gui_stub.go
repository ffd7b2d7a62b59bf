//go:build !ebiten

package main

import (
	"errors"

	"torlife/internal/app"
	"torlife/pkg/universe"
)

// runGUI reports that this binary was built without the graphical viewer.
func runGUI(*app.Config, *universe.Universe, app.SeedFunc) error {
	return errors.New("this build has no viewer; rebuild with `go build -tags ebiten ./cmd/life`")
}
