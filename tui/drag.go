package tui

import tea "github.com/charmbracelet/bubbletea"

// bounds is a rectangle of terminal cells.
type bounds struct {
	x, y, w, h int
}

func (b bounds) contains(x, y int) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// dragEvent is what a mouse message means to the strip.
type dragEvent int

const (
	dragIgnored dragEvent = iota
	dragPressed
	dragMoved
	dragReleased
)

// dragTracker turns bubbletea mouse messages into press, motion and release
// gestures on the strip, reporting horizontal deltas between motion events.
type dragTracker struct {
	dragging bool
	lastX    int
}

// handle classifies msg. For dragPressed the value is the strip-relative pixel;
// for dragMoved it is the x delta since the previous event.
func (d *dragTracker) handle(msg tea.MouseMsg, strip bounds) (dragEvent, int) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !strip.contains(msg.X, msg.Y) {
			return dragIgnored, 0
		}
		d.dragging = true
		d.lastX = msg.X
		return dragPressed, msg.X - strip.x
	case tea.MouseActionMotion:
		if !d.dragging {
			return dragIgnored, 0
		}
		dx := msg.X - d.lastX
		d.lastX = msg.X
		if dx == 0 {
			return dragIgnored, 0
		}
		return dragMoved, dx
	case tea.MouseActionRelease:
		if !d.dragging {
			return dragIgnored, 0
		}
		d.dragging = false
		d.lastX = 0
		return dragReleased, 0
	}
	return dragIgnored, 0
}
