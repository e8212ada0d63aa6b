package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-trimmer-cli/pkg/timeutil"
	"github.com/user/video-trimmer-cli/trim"
	"github.com/user/video-trimmer-cli/tui/styles"
)

// StatusBarState holds the current playback state for the status bar.
type StatusBarState struct {
	// Playing mirrors the last OnChangePlaybackState report.
	Playing bool
	// Position is the last polled player position.
	Position time.Duration
	// Duration is the video duration.
	Duration time.Duration
	// Step is the nudge step in strip cells.
	Step int
	// Drag is the gesture in progress.
	Drag trim.DragType
	// Video is the file name shown on the right.
	Video string
}

// StatusBar renders the one-line status bar.
func StatusBar(state StatusBarState, width int) string {
	icon := "⏸"
	if state.Playing {
		icon = "▶"
	}

	left := fmt.Sprintf(" %s %s / %s", icon,
		timeutil.FormatShort(state.Position),
		timeutil.FormatShort(state.Duration))
	if state.Drag != trim.DragNone {
		left += "  drag:" + state.Drag.String()
	}
	right := fmt.Sprintf("%s  step: %dpx ", state.Video, state.Step)

	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}

	return lipgloss.NewStyle().
		Background(styles.Surface).
		Foreground(styles.Text).
		Bold(true).
		Width(width).
		Render(left + strings.Repeat(" ", pad) + right)
}
