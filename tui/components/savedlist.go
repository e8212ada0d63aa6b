package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-trimmer-cli/db"
	"github.com/user/video-trimmer-cli/pkg/timeutil"
	"github.com/user/video-trimmer-cli/tui/styles"
)

// SavedListState holds the saved selections for the current video.
type SavedListState struct {
	Items         []db.Trim
	SelectedIndex int
	ScrollOffset  int
	Focused       bool
}

// Selected returns the highlighted trim, or nil when the list is empty.
func (s *SavedListState) Selected() *db.Trim {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Items) {
		return nil
	}
	return &s.Items[s.SelectedIndex]
}

// Move shifts the highlight by delta rows, stopping at either end.
func (s *SavedListState) Move(delta int) {
	if len(s.Items) == 0 {
		s.SelectedIndex = 0
		return
	}
	s.SelectedIndex += delta
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex > len(s.Items)-1 {
		s.SelectedIndex = len(s.Items) - 1
	}
}

// SetItems replaces the list contents and keeps the highlight in range.
func (s *SavedListState) SetItems(items []db.Trim) {
	s.Items = items
	s.Move(0)
}

// scroll keeps the highlighted row inside a window of rows lines.
func (s *SavedListState) scroll(rows int) {
	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	} else if s.SelectedIndex >= s.ScrollOffset+rows {
		s.ScrollOffset = s.SelectedIndex - rows + 1
	}
	maxOffset := len(s.Items) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

// SavedList renders the saved selections as a table of at most rows entries.
func SavedList(state *SavedListState, width, rows int) string {
	const (
		idWidth   = 5
		timeWidth = 12
	)
	nameWidth := width - idWidth - timeWidth*3 - 5
	if nameWidth < 8 {
		nameWidth = 8
	}

	headerStyle := styles.SecondaryText.Bold(true).Underline(true)
	if state.Focused {
		headerStyle = headerStyle.Foreground(styles.Handle)
	}

	lines := []string{headerStyle.Render(fmt.Sprintf(" %-*s %-*s %-*s %-*s %s",
		idWidth, "ID", timeWidth, "In", timeWidth, "Out", timeWidth, "Length", "Name"))}

	if len(state.Items) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.Border).Italic(true).
			Render(" No saved selections. Press s to save the current one."))
		return strings.Join(lines, "\n")
	}

	state.scroll(rows)
	for i := state.ScrollOffset; i < len(state.Items) && i < state.ScrollOffset+rows; i++ {
		t := state.Items[i]
		row := fmt.Sprintf(" %-*d %-*s %-*s %-*s %s",
			idWidth, t.ID,
			timeWidth, timeutil.FormatDuration(t.Start),
			timeWidth, timeutil.FormatDuration(t.End),
			timeWidth, timeutil.FormatDuration(t.Length()),
			truncate(t.Name, nameWidth))
		if i == state.SelectedIndex && state.Focused {
			row = styles.Highlight.Width(width).Render(row)
		} else {
			row = styles.PrimaryText.Render(row)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
