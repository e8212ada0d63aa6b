package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-trimmer-cli/tui/styles"
)

// Theme returns a huh theme matching the TUI palette.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Accent).
		PaddingLeft(1)
	t.Focused.Title = lipgloss.NewStyle().Foreground(styles.Handle).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(styles.Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(styles.Red).Bold(true)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(styles.Red)
	t.Focused.NoteTitle = lipgloss.NewStyle().Foreground(styles.Scrubber).Bold(true)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(styles.Scrubber)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(styles.Border)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(styles.Scrubber)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(styles.Text)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Background(styles.Accent).
		Foreground(styles.Text).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Background(styles.Border).
		Foreground(styles.Muted).
		Padding(0, 1)
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred.Base = t.Blurred.Base.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true).
		PaddingLeft(1)
	t.Blurred.Title = lipgloss.NewStyle().Foreground(styles.Muted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(styles.Border)
	t.Blurred.NoteTitle = lipgloss.NewStyle().Foreground(styles.Muted)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(styles.Muted)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(styles.Border)
	t.Blurred.FocusedButton = lipgloss.NewStyle().
		Background(styles.Border).
		Foreground(styles.Muted).
		Padding(0, 1)
	t.Blurred.BlurredButton = lipgloss.NewStyle().
		Background(styles.Background).
		Foreground(styles.Border).
		Padding(0, 1)
	t.Blurred.Next = t.Blurred.FocusedButton

	return t
}
