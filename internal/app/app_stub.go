//go:build !ebiten

// Package app adapts a simulation to an ebiten window, emulating the pixel
// matrix on a desktop display.
package app

import (
	"errors"

	"rainmatrix/internal/core"
)

// Run reports that the binary was built without the windowed display.
func Run(sim core.Sim, scale, tps int, brightness float64, seed int64) error {
	return errors.New("window mode unavailable: rebuild with -tags ebiten")
}
