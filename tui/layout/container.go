// Package layout sizes rendered panels to fixed terminal regions.
package layout

import (
	"strings"

	"github.com/user/video-trimmer-cli/tui/styles"
)

// Container wraps content into an exact Width x Height box so panels below it
// do not move when the content grows or shrinks.
type Container struct {
	Width  int
	Height int
}

// Render returns content constrained to exactly Width columns and Height lines.
// Content taller than the box ends with a "more" marker.
func (c Container) Render(content string) string {
	if c.Height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > c.Height {
		lines = lines[:c.Height]
		lines[c.Height-1] = styles.SecondaryText.Render("↓ more")
	}
	lines = NormalizeLines(lines, c.Height)
	for i, line := range lines {
		lines[i] = PadToWidth(line, c.Width)
	}
	return strings.Join(lines, "\n")
}
