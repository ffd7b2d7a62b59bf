// Package config loads scenario files that describe a complete board setup:
// grid dimensions plus a list of patterns and where to place them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Placement positions one pattern on the grid. Either Name refers to a
// built-in pattern or RLE carries raw pattern text; RLE wins when both are
// set, and a placement with neither fails validation.
type Placement struct {
	Name string `yaml:"name,omitempty"`
	RLE  string `yaml:"rle,omitempty"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// Scenario is the loadable description of an initial universe.
type Scenario struct {
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Placements []Placement `yaml:"placements"`
}

// Load reads, parses and validates a scenario file.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", sc.Width, sc.Height)
	}
	for i, p := range sc.Placements {
		if p.Name == "" && p.RLE == "" {
			return fmt.Errorf("placement %d: needs a pattern name or rle text", i)
		}
	}
	return nil
}
