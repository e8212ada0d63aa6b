package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-trimmer-cli/pkg/timeutil"
	"github.com/user/video-trimmer-cli/tui/styles"
)

// SelectionInfoState is the data behind the selection panel.
type SelectionInfoState struct {
	Start  time.Duration
	End    time.Duration
	Min    time.Duration
	Max    time.Duration
	Cursor time.Duration
}

// SelectionInfo renders the In/Out/Length panel.
func SelectionInfo(state SelectionInfoState, width int) string {
	label := styles.SecondaryText.Width(10)
	value := styles.PrimaryText

	var lines []string
	add := func(name, v string) {
		lines = append(lines, label.Render(name)+value.Render(v))
	}

	add("In", timeutil.FormatDuration(state.Start))
	add("Out", timeutil.FormatDuration(state.End))
	add("Length", timeutil.FormatDuration(state.End-state.Start))
	if state.Min > 0 || state.Max > 0 {
		bounds := "any"
		if state.Min > 0 {
			bounds = ">= " + timeutil.FormatShort(state.Min)
		}
		if state.Max > 0 {
			if state.Min > 0 {
				bounds += ", "
			} else {
				bounds = ""
			}
			bounds += "<= " + timeutil.FormatShort(state.Max)
		}
		add("Bounds", bounds)
	}
	add("Preview", timeutil.FormatDuration(state.Cursor))

	return lipgloss.NewStyle().
		Width(width).
		Render(strings.Join(lines, "\n"))
}
