package app

import (
	"fmt"

	"torlife/internal/config"
	"torlife/pkg/rle"
	"torlife/pkg/universe"
)

// SeedFunc applies a prepared set of placements to a universe.
type SeedFunc func(*universe.Universe) error

// Setup resolves the grid dimensions and seeding strategy a Config asks for.
// The returned SeedFunc is reusable; the viewer's restart key replays it
// against a cleared universe.
func Setup(cfg *Config) (width, height int, seed SeedFunc, err error) {
	switch {
	case cfg.Scenario != "":
		sc, err := config.Load(cfg.Scenario)
		if err != nil {
			return 0, 0, nil, err
		}
		return sc.Width, sc.Height, func(u *universe.Universe) error {
			return seedScenario(u, sc)
		}, nil

	case cfg.Soup > 0:
		cells := SoupCells(cfg.Width, cfg.Height, cfg.Soup, cfg.Seed)
		return cfg.Width, cfg.Height, func(u *universe.Universe) error {
			u.Seed(cells)
			return nil
		}, nil

	default:
		pattern := cfg.RLE
		if pattern == "" {
			named, ok := Patterns[cfg.Pattern]
			if !ok {
				return 0, 0, nil, fmt.Errorf("unknown pattern %q", cfg.Pattern)
			}
			pattern = named
		}
		if _, err := rle.FromString(pattern); err != nil {
			return 0, 0, nil, err
		}
		x, y := cfg.X, cfg.Y
		return cfg.Width, cfg.Height, func(u *universe.Universe) error {
			return u.SeedRLE(pattern, x, y)
		}, nil
	}
}

// seedScenario applies every placement of a scenario, decoding them all
// before touching the universe so a bad placement leaves it empty.
func seedScenario(u *universe.Universe, sc *config.Scenario) error {
	shifted := make([]rle.Pattern, 0, len(sc.Placements))
	for _, p := range sc.Placements {
		pattern := p.RLE
		if pattern == "" {
			named, ok := Patterns[p.Name]
			if !ok {
				return fmt.Errorf("placement %q: unknown pattern name", p.Name)
			}
			pattern = named
		}
		decoded, err := rle.FromString(pattern)
		if err != nil {
			return fmt.Errorf("placement %q: %w", placementLabel(p), err)
		}
		shifted = append(shifted, decoded.Shift(p.X, p.Y))
	}
	for _, p := range shifted {
		u.Seed(p.Cells)
	}
	return nil
}

func placementLabel(p config.Placement) string {
	if p.Name != "" {
		return p.Name
	}
	return p.RLE
}
