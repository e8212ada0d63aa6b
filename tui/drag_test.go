package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDragTracker(t *testing.T) {
	strip := bounds{x: 2, y: 2, w: 50, h: 4}
	var d dragTracker

	ev, v := d.handle(mouse(tea.MouseActionMotion, 10, 3), strip)
	assert.Equal(t, dragIgnored, ev, "motion without a press")

	ev, v = d.handle(mouse(tea.MouseActionPress, 12, 3), strip)
	assert.Equal(t, dragPressed, ev)
	assert.Equal(t, 10, v)

	ev, v = d.handle(mouse(tea.MouseActionMotion, 15, 9), strip)
	assert.Equal(t, dragMoved, ev, "motion may leave the strip once pressed")
	assert.Equal(t, 3, v)

	ev, _ = d.handle(mouse(tea.MouseActionMotion, 15, 9), strip)
	assert.Equal(t, dragIgnored, ev, "zero delta")

	ev, v = d.handle(mouse(tea.MouseActionMotion, 11, 3), strip)
	assert.Equal(t, dragMoved, ev)
	assert.Equal(t, -4, v)

	ev, _ = d.handle(tea.MouseMsg{X: 11, Y: 3, Action: tea.MouseActionRelease}, strip)
	assert.Equal(t, dragReleased, ev)

	ev, _ = d.handle(tea.MouseMsg{X: 11, Y: 3, Action: tea.MouseActionRelease}, strip)
	assert.Equal(t, dragIgnored, ev)
}

func TestDragTracker_IgnoresOtherButtons(t *testing.T) {
	strip := bounds{x: 2, y: 2, w: 50, h: 4}
	var d dragTracker

	ev, _ := d.handle(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, strip)
	assert.Equal(t, dragIgnored, ev)

	ev, _ = d.handle(mouse(tea.MouseActionPress, 5, 1), strip)
	assert.Equal(t, dragIgnored, ev, "above the strip")
	assert.False(t, d.dragging)
}

func TestBounds(t *testing.T) {
	b := bounds{x: 2, y: 2, w: 3, h: 2}
	assert.True(t, b.contains(2, 2))
	assert.True(t, b.contains(4, 3))
	assert.False(t, b.contains(5, 3))
	assert.False(t, b.contains(2, 4))
}

func TestFocusNext(t *testing.T) {
	assert.Equal(t, FocusSaved, FocusStrip.next())
	assert.Equal(t, FocusStrip, FocusSaved.next())
}
