package app

import (
	"math/rand/v2"

	"torlife/pkg/rle"
)

// SoupCells returns a random scattering of live cells over a width×height
// area. Each cell is included with probability density; the same seed always
// yields the same soup.
func SoupCells(width, height int, density float64, seed int64) []rle.Cell {
	if width <= 0 || height <= 0 || density <= 0 {
		return nil
	}
	if density > 1 {
		density = 1
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	var cells []rle.Cell
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rng.Float64() < density {
				cells = append(cells, rle.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}
