//go:build !ebiten

package ui

// Status carries the values the status line reports.
type Status struct {
	Generation int
	Population int
	TPS        int
	Paused     bool
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD() *HUD { return nil }

// ToggleHelp is a no-op in the headless build.
func (h *HUD) ToggleHelp() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, Status) {}
