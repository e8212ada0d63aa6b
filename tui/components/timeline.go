package components

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-trimmer-cli/db"
	"github.com/user/video-trimmer-cli/pkg/timeutil"
	"github.com/user/video-trimmer-cli/tui/styles"
)

// TimelineHeight is the number of lines Timeline renders.
const TimelineHeight = 4

// TimelineState describes the whole-video overview bar.
type TimelineState struct {
	Position time.Duration
	Duration time.Duration
	Start    time.Duration
	End      time.Duration
	Saved    []db.Trim
}

// Timeline renders the full video as one bar. The current selection is drawn
// solid, saved selections start with a marker and the playhead sits below.
func Timeline(state TimelineState, width int) string {
	if width < 20 {
		return ""
	}

	clock := " " + timeutil.FormatShort(state.Position) + " / " + timeutil.FormatShort(state.Duration)
	barWidth := width - 4 - lipgloss.Width(clock)
	if barWidth < 10 {
		barWidth = 10
	}

	col := func(d time.Duration) int {
		if state.Duration <= 0 {
			return 0
		}
		c := int(math.Round(float64(barWidth-1) * float64(d) / float64(state.Duration)))
		return clampCol(c, barWidth)
	}

	marks := make([]bool, barWidth)
	for _, t := range state.Saved {
		marks[col(t.Start)] = true
	}
	from, to := col(state.Start), col(state.End)
	head := col(state.Position)

	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		switch {
		case marks[i]:
			bar.WriteString(styles.ScrubberStyle.Render("◆"))
		case i >= from && i <= to:
			bar.WriteString(styles.HandleStyle.Render("━"))
		default:
			bar.WriteString(styles.FrameLight.Render("─"))
		}
	}

	indicator := strings.Repeat(" ", head) + styles.Highlight.Render("▲")
	return box("Video", []string{
		bar.String() + styles.PrimaryText.Render(clock),
		indicator,
	}, width)
}
