// Package components provides reusable TUI components.
package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-trimmer-cli/trim"
	"github.com/user/video-trimmer-cli/tui/styles"
)

const (
	// StripInsetX is the number of columns between the box edge and the first strip cell.
	StripInsetX = 2
	// StripInsetY is the number of rows above the first strip row (the top border).
	StripInsetY = 1
	// frameCells is the nominal width of one thumbnail frame.
	frameCells = 6
)

// StripState is everything the strip needs to draw one frame.
type StripState struct {
	// Width is the number of strip cells, one cell per pixel of the selection model.
	Width int
	// Height is the number of thumbnail rows.
	Height int
	// Loaded is false until the thumbnails have been laid out once.
	Loaded bool
	// StartPx and EndPx are the selection offsets.
	StartPx float64
	EndPx   float64
	// StartSize and EndSize are the handle widths in cells.
	StartSize float64
	EndSize   float64
	// Active is the drag in progress.
	Active trim.DragType
	// ScrubberPx is the preview offset. ShowScrubber hides it while idle at the start.
	ScrubberPx   float64
	ShowScrubber bool
}

// StripBoxHeight returns the total number of lines Strip renders for a strip of height rows.
func StripBoxHeight(height int) int {
	// top border + rows + indicator row + bottom border
	return height + 3
}

// Strip renders the thumbnail strip with the selection, handles and scrubber in a
// bordered box.
func Strip(state StripState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return ""
	}

	startCol, endCol := handleColumns(state)
	startSpan := spanLeft(startCol, cells(state.StartSize))
	endSpan := spanRight(endCol, cells(state.EndSize), state.Width)

	startStyle, endStyle := styles.HandleStyle, styles.HandleStyle
	switch state.Active {
	case trim.DragLeft:
		startStyle = styles.ActiveHandle
	case trim.DragRight:
		endStyle = styles.ActiveHandle
	case trim.DragCenter:
		startStyle, endStyle = styles.ActiveHandle, styles.ActiveHandle
	}

	scrubCol := -1
	if state.ShowScrubber {
		scrubCol = clampCol(int(math.Floor(state.ScrubberPx)), state.Width)
	}

	rows := make([]string, 0, state.Height+1)
	for r := 0; r < state.Height; r++ {
		var b strings.Builder
		for c := 0; c < state.Width; c++ {
			switch {
			case startSpan.contains(c):
				b.WriteString(startStyle.Render("█"))
			case endSpan.contains(c):
				b.WriteString(endStyle.Render("█"))
			case c == scrubCol:
				b.WriteString(styles.ScrubberStyle.Render("│"))
			default:
				b.WriteString(frameCell(state, c, float64(c) >= state.StartPx && float64(c) < state.EndPx))
			}
		}
		rows = append(rows, b.String())
	}

	var ind strings.Builder
	for c := 0; c < state.Width; c++ {
		switch {
		case c == scrubCol:
			ind.WriteString(styles.ScrubberStyle.Render("▲"))
		case c == startCol:
			ind.WriteString(startStyle.Render("╹"))
		case c == endCol:
			ind.WriteString(endStyle.Render("╹"))
		default:
			ind.WriteString(" ")
		}
	}
	rows = append(rows, ind.String())

	return box("Trim", rows, state.Width+StripInsetX*2)
}

// frameCell draws one thumbnail cell. Frames alternate shade so their edges show.
func frameCell(state StripState, col int, selected bool) string {
	if !state.Loaded {
		return styles.SecondaryText.Render("·")
	}
	if selected {
		return styles.SelectedFrame.Render("▓")
	}
	if (col/frameCells)%2 == 0 {
		return styles.FrameDark.Render("▒")
	}
	return styles.FrameLight.Render("▒")
}

func handleColumns(state StripState) (int, int) {
	start := clampCol(int(math.Floor(state.StartPx)), state.Width)
	end := clampCol(int(math.Ceil(state.EndPx))-1, state.Width)
	if end < start {
		end = start
	}
	return start, end
}

type span struct{ from, to int }

func (s span) contains(c int) bool { return c >= s.from && c <= s.to }

// spanLeft grows a handle leftwards from col.
func spanLeft(col, size int) span {
	from := col - size + 1
	if from < 0 {
		from = 0
	}
	return span{from, col}
}

// spanRight grows a handle rightwards from col.
func spanRight(col, size, width int) span {
	to := col + size - 1
	if to > width-1 {
		to = width - 1
	}
	return span{col, to}
}

func cells(size float64) int {
	n := int(math.Round(size))
	if n < 1 {
		return 1
	}
	return n
}

func clampCol(c, width int) int {
	if c < 0 {
		return 0
	}
	if c > width-1 {
		return width - 1
	}
	return c
}

// box wraps rows in a rounded border with a tab-style title: ╭─ Title ───╮.
func box(title string, rows []string, width int) string {
	inner := width - 2
	header := styles.Header.Render(" " + title + " ")
	fill := inner - 1 - lipgloss.Width(header)
	if fill < 0 {
		fill = 0
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, styles.BorderStyle.Render("╭─")+header+styles.BorderStyle.Render(strings.Repeat("─", fill)+"╮"))
	for _, row := range rows {
		content := " " + row
		pad := inner - lipgloss.Width(content)
		if pad < 0 {
			pad = 0
		}
		lines = append(lines, styles.BorderStyle.Render("│")+content+strings.Repeat(" ", pad)+styles.BorderStyle.Render("│"))
	}
	lines = append(lines, styles.BorderStyle.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(lines, "\n")
}
