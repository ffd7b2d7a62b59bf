package app

import (
	"slices"
	"testing"
)

func TestSoupCellsDeterministic(t *testing.T) {
	a := SoupCells(16, 16, 0.3, 42)
	b := SoupCells(16, 16, 0.3, 42)
	if !slices.Equal(a, b) {
		t.Fatal("identical seeds produced different soups")
	}
	if len(a) == 0 {
		t.Fatal("0.3 density soup came out empty")
	}

	c := SoupCells(16, 16, 0.3, 43)
	if slices.Equal(a, c) {
		t.Fatal("different seeds produced identical soups")
	}
}

func TestSoupCellsBounds(t *testing.T) {
	for _, c := range SoupCells(8, 4, 0.5, 1) {
		if c.X < 0 || c.X >= 8 || c.Y < 0 || c.Y >= 4 {
			t.Fatalf("cell %+v outside the 8x4 area", c)
		}
	}
}

func TestSoupCellsDensityExtremes(t *testing.T) {
	if got := SoupCells(8, 8, 0, 1); got != nil {
		t.Fatalf("zero density produced %d cells", len(got))
	}
	if got := SoupCells(8, 8, -0.5, 1); got != nil {
		t.Fatalf("negative density produced %d cells", len(got))
	}
	if got := len(SoupCells(8, 8, 1, 1)); got != 64 {
		t.Fatalf("full density produced %d cells, want 64", got)
	}
	if got := len(SoupCells(8, 8, 7.5, 1)); got != 64 {
		t.Fatalf("over-unity density produced %d cells, want 64", got)
	}
}

func TestSoupCellsDegenerateArea(t *testing.T) {
	if got := SoupCells(0, 8, 0.5, 1); got != nil {
		t.Fatalf("zero width produced %d cells", len(got))
	}
	if got := SoupCells(8, -1, 0.5, 1); got != nil {
		t.Fatalf("negative height produced %d cells", len(got))
	}
}
