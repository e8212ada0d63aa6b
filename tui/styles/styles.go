// Package styles provides Lipgloss styles for the trimmer TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette, taken from the Ciapre theme in Gogh.
const (
	Background = lipgloss.Color("#191C27")
	Surface    = lipgloss.Color("#181818")
	Border     = lipgloss.Color("#5C4F4B")
	Accent     = lipgloss.Color("#724D7C")
	Muted      = lipgloss.Color("#AEA47A")
	Text       = lipgloss.Color("#F3DBB2")
	Handle     = lipgloss.Color("#D33061")
	Scrubber   = lipgloss.Color("#3097C6")
	Amber      = lipgloss.Color("#CC8B3F")
	Red        = lipgloss.Color("#AC3835")
	Green      = lipgloss.Color("#A6A75D")
)

// Frame shades for the thumbnail strip. Alternating shades mark frame boundaries.
var (
	FrameDark  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2A2D38"))
	FrameLight = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3D48"))
)

// SelectedFrame tints frames inside the selection.
var SelectedFrame = lipgloss.NewStyle().
	Foreground(Accent)

// HandleStyle renders the start/end handles.
var HandleStyle = lipgloss.NewStyle().
	Foreground(Handle).
	Bold(true)

// ActiveHandle renders a handle that is being dragged.
var ActiveHandle = lipgloss.NewStyle().
	Foreground(Text).
	Background(Handle).
	Bold(true)

// ScrubberStyle renders the preview position marker.
var ScrubberStyle = lipgloss.NewStyle().
	Foreground(Scrubber).
	Bold(true)

// BorderStyle is used for box-drawing characters around panels.
var BorderStyle = lipgloss.NewStyle().
	Foreground(Border)

// Header is the style for panel titles.
var Header = lipgloss.NewStyle().
	Foreground(Handle).
	Bold(true)

// Highlight is the style for the selected row in a list.
var Highlight = lipgloss.NewStyle().
	Background(Accent).
	Foreground(Text).
	Bold(true)

// PrimaryText is the style for primary text content.
var PrimaryText = lipgloss.NewStyle().
	Foreground(Text)

// SecondaryText is the style for labels and hints.
var SecondaryText = lipgloss.NewStyle().
	Foreground(Muted)

// Warning is the style for errors.
var Warning = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// Success is the style for confirmations.
var Success = lipgloss.NewStyle().
	Foreground(Green).
	Bold(true)
