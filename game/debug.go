package game

// DebugState holds display toggles that persist across simulation resets
type DebugState struct {
	ShowHUD bool // Frame rate, step count and momentum overlay
}

// NewDebugState returns the default toggles
func NewDebugState() *DebugState {
	return &DebugState{ShowHUD: true}
}

// ToggleHUD flips the overlay
func (d *DebugState) ToggleHUD() {
	d.ShowHUD = !d.ShowHUD
}
