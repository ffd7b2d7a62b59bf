package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
width: 40
height: 20
placements:
  - name: glider
    x: 2
    y: 3
  - rle: 2o$2o
    x: 10
    y: 10
`)
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sc.Width != 40 || sc.Height != 20 {
		t.Fatalf("dimensions = %dx%d, want 40x20", sc.Width, sc.Height)
	}
	if len(sc.Placements) != 2 {
		t.Fatalf("placements = %d, want 2", len(sc.Placements))
	}
	first := sc.Placements[0]
	if first.Name != "glider" || first.X != 2 || first.Y != 3 {
		t.Fatalf("first placement = %+v", first)
	}
	second := sc.Placements[1]
	if second.RLE != "2o$2o" || second.X != 10 || second.Y != 10 {
		t.Fatalf("second placement = %+v", second)
	}
}

func TestLoadScenarioWithoutPlacements(t *testing.T) {
	sc, err := Load(writeScenario(t, "width: 8\nheight: 8\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(sc.Placements) != 0 {
		t.Fatalf("placements = %d, want 0", len(sc.Placements))
	}
}

func TestLoadScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		frag string
	}{
		{"zero dimensions", "width: 0\nheight: 10\n", "dimensions"},
		{"negative dimensions", "width: 4\nheight: -1\n", "dimensions"},
		{"empty placement", "width: 4\nheight: 4\nplacements:\n  - x: 1\n    y: 1\n", "placement 0"},
		{"bad yaml", "width: [\n", "parse"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeScenario(t, tc.body))
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if !strings.Contains(err.Error(), tc.frag) {
				t.Fatalf("error %q does not mention %q", err, tc.frag)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load of a missing file succeeded")
	}
}
