package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-trimmer-cli/tui/styles"
)

type binding struct {
	key  string
	desc string
}

var helpGroups = []struct {
	title    string
	bindings []binding
}{
	{"Selection", []binding{
		{"mouse", "Drag a handle or the selection"},
		{"h / l", "Move start left / right"},
		{"H / L", "Move end left / right"},
		{"← / →", "Move the whole selection"},
		{"[ / ]", "Decrease / increase step"},
	}},
	{"Playback", []binding{
		{"Space", "Play / pause the selection"},
	}},
	{"Saved", []binding{
		{"s", "Save the selection"},
		{"Tab", "Focus the saved list"},
		{"j / k", "Move in the saved list"},
		{"Enter", "Seek to the saved start"},
		{"d", "Delete the saved selection"},
	}},
	{"General", []binding{
		{"?", "Show this help"},
		{"q", "Quit"},
	}},
}

// HelpOverlay renders the keybinding overlay centred in width x height.
func HelpOverlay(width, height int) string {
	groupStyle := styles.Header.MarginTop(1)
	keyStyle := styles.SecondaryText.Bold(true).Width(10)

	lines := []string{styles.ScrubberStyle.Padding(0, 1).Render("Keybindings")}
	for _, g := range helpGroups {
		lines = append(lines, groupStyle.Render(g.title))
		for _, b := range g.bindings {
			lines = append(lines, "  "+keyStyle.Render(b.key)+styles.PrimaryText.Render(b.desc))
		}
	}
	lines = append(lines, "", styles.SecondaryText.Italic(true).Render("Press any key to close"))

	panel := lipgloss.NewStyle().
		Background(styles.Surface).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Accent).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}
