package app

import (
	"testing"

	"torlife/pkg/rle"
)

func TestPatternsDecode(t *testing.T) {
	for name, body := range Patterns {
		p, err := rle.FromString(body)
		if err != nil {
			t.Fatalf("pattern %q does not decode: %v", name, err)
		}
		if len(p.Cells) == 0 {
			t.Fatalf("pattern %q decodes to no live cells", name)
		}
		for _, c := range p.Cells {
			if c.X < 0 || c.Y < 0 {
				t.Fatalf("pattern %q has a negative coordinate %+v", name, c)
			}
		}
	}
}

func TestPatternPopulations(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"block", 4},
		{"blinker", 3},
		{"glider", 5},
		{"r-pentomino", 5},
		{"pulsar", 48},
		{"gosper-gun", 36},
	}
	for _, tc := range tests {
		p, err := rle.FromString(Patterns[tc.name])
		if err != nil {
			t.Fatalf("pattern %q: %v", tc.name, err)
		}
		if len(p.Cells) != tc.want {
			t.Fatalf("pattern %q has %d cells, want %d", tc.name, len(p.Cells), tc.want)
		}
	}
}
