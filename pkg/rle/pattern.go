package rle

// Cell is one live-cell coordinate. X grows rightwards, Y grows downwards.
type Cell struct {
	X, Y int
}

// Pattern is the ordered list of live cells a decoded input describes.
type Pattern struct {
	Cells []Cell
}

// FromString decodes an input string and expands it into live-cell
// coordinates, filling left to right and top to bottom from (0, 0).
func FromString(input string) (Pattern, error) {
	syms, err := Parse(input)
	if err != nil {
		return Pattern{}, err
	}
	return build(syms), nil
}

// build replays a symbol sequence against a cursor starting at the origin.
func build(syms []Symbol) Pattern {
	var cells []Cell
	x, y := 0, 0
	for _, s := range syms {
		switch s.Kind {
		case DeadRun:
			x += s.Count
		case AliveRun:
			for i := 0; i < s.Count; i++ {
				cells = append(cells, Cell{X: x + i, Y: y})
			}
			x += s.Count
		case EndRow:
			x = 0
			y += s.Count
		}
	}
	return Pattern{Cells: cells}
}

// Shift returns a copy of the pattern translated by (dx, dy). The receiver
// is left untouched.
func (p Pattern) Shift(dx, dy int) Pattern {
	shifted := make([]Cell, len(p.Cells))
	for i, c := range p.Cells {
		shifted[i] = Cell{X: c.X + dx, Y: c.Y + dy}
	}
	return Pattern{Cells: shifted}
}
