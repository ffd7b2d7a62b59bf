// Package universe implements Conway's Game of Life on a fixed-size grid
// whose edges wrap around, so the opposite sides are neighbors. Cells are
// stored one bit each in row-major order and the next generation is built in
// a scratch buffer, making every tick an all-or-nothing transition.
package universe

import (
	"iter"
	"strings"

	"torlife/pkg/rle"
)

// Glyphs used by the text renderer.
const (
	aliveRune = '◼'
	deadRune  = ' '
)

// Universe is a wrap-around Game of Life grid. It is single-owner: no method
// is safe for concurrent use.
type Universe struct {
	width  int
	height int
	cells  bitset
	next   bitset
}

// New returns a height×width universe with every cell dead. Negative
// dimensions are clamped to zero; a zero-area universe stays inert, ignoring
// seeds and ticks.
func New(height, width int) *Universe {
	u := &Universe{}
	u.alloc(height, width)
	return u
}

func (u *Universe) alloc(height, width int) {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	u.height = height
	u.width = width
	u.cells = newBitset(width * height)
	u.next = newBitset(width * height)
}

// Width reports the number of columns.
func (u *Universe) Width() int { return u.width }

// Height reports the number of rows.
func (u *Universe) Height() int { return u.height }

// Population reports the number of live cells.
func (u *Universe) Population() int { return u.cells.count() }

// SetWidth resizes the universe to the new width. Resizing reallocates the
// grid, so every cell comes back dead.
func (u *Universe) SetWidth(width int) {
	u.alloc(u.height, width)
}

// SetHeight resizes the universe to the new height. Resizing reallocates the
// grid, so every cell comes back dead.
func (u *Universe) SetHeight(height int) {
	u.alloc(height, u.width)
}

// Clear kills every cell without changing the dimensions.
func (u *Universe) Clear() {
	u.cells.clear()
}

// index maps grid coordinates to a row-major bit position.
func (u *Universe) index(x, y int) int { return y*u.width + x }

// Seed turns the given cells alive. Coordinates wrap, so a cell past an edge
// lands on the opposite side; seeding a live cell again is a no-op and
// seeding never kills anything.
func (u *Universe) Seed(cells []rle.Cell) {
	if u.width == 0 || u.height == 0 {
		return
	}
	for _, c := range cells {
		x := ((c.X % u.width) + u.width) % u.width
		y := ((c.Y % u.height) + u.height) % u.height
		u.cells.set(u.index(x, y), true)
	}
}

// SeedRLE decodes a pattern, translates it by (x, y) and seeds the result.
// On a malformed pattern it returns the decoder's *rle.ParseError and leaves
// the universe untouched.
func (u *Universe) SeedRLE(pattern string, x, y int) error {
	p, err := rle.FromString(pattern)
	if err != nil {
		return err
	}
	u.Seed(p.Shift(x, y).Cells)
	return nil
}

// liveNeighbors counts the live cells around (x, y) on the torus. The
// offsets run over {dim-1, 0, 1} per axis and only the literal (0, 0) pair
// is skipped, so on a one-cell axis the collided offsets re-read the same
// cell: a lone live cell on a 1×1 grid counts itself five times. That
// re-reading is part of the ruleset on degenerate grids.
func (u *Universe) liveNeighbors(x, y int) int {
	count := 0
	for _, dy := range [3]int{u.height - 1, 0, 1} {
		for _, dx := range [3]int{u.width - 1, 0, 1} {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx) % u.width
			ny := (y + dy) % u.height
			if u.cells.get(u.index(nx, ny)) {
				count++
			}
		}
	}
	return count
}

// Tick advances the universe one generation. The next state is computed into
// the scratch buffer and swapped in whole, so the update never reads cells it
// has already rewritten.
func (u *Universe) Tick() {
	for y := 0; y < u.height; y++ {
		for x := 0; x < u.width; x++ {
			i := u.index(x, y)
			alive := u.cells.get(i)
			n := u.liveNeighbors(x, y)
			u.next.set(i, n == 3 || (alive && n == 2))
		}
	}
	u.cells, u.next = u.next, u.cells
}

// Cells returns a restartable iterator over every cell state in row-major
// order. Alive yields true.
func (u *Universe) Cells() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		n := u.cells.len()
		for i := 0; i < n; i++ {
			if !yield(u.cells.get(i)) {
				return
			}
		}
	}
}

// String renders the universe one rune per cell with a newline after each
// row, including the last.
func (u *Universe) String() string {
	var sb strings.Builder
	sb.Grow((3*u.width + 1) * u.height)
	col := 0
	for alive := range u.Cells() {
		if alive {
			sb.WriteRune(aliveRune)
		} else {
			sb.WriteRune(deadRune)
		}
		col++
		if col == u.width {
			sb.WriteByte('\n')
			col = 0
		}
	}
	return sb.String()
}
