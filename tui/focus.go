package tui

// FocusTarget represents which panel receives navigation keys.
type FocusTarget int

const (
	// FocusStrip routes keys to the trim strip.
	FocusStrip FocusTarget = iota
	// FocusSaved routes keys to the saved selections list.
	FocusSaved
)

// next cycles focus between the panels.
func (f FocusTarget) next() FocusTarget {
	if f == FocusStrip {
		return FocusSaved
	}
	return FocusStrip
}
