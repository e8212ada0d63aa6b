// Package forms provides huh-based forms for the TUI.
package forms

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/user/video-trimmer-cli/pkg/timeutil"
)

// ErrNameRequired is reported by the save form when the name is blank.
var ErrNameRequired = errors.New("name is required")

// SaveFormResult holds the data entered in the save form.
type SaveFormResult struct {
	Name string
	Note string
}

// NewSaveForm creates a form naming the selection [start, end] before it is stored.
// The result pointer is bound to the form fields and populated on submit.
func NewSaveForm(start, end time.Duration, result *SaveFormResult) *huh.Form {
	header := fmt.Sprintf("Save %s → %s (%s)",
		timeutil.FormatDuration(start),
		timeutil.FormatDuration(end),
		timeutil.FormatShort(end-start))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(header),

			huh.NewInput().
				Title("Name").
				Description("Required").
				Value(&result.Name).
				Validate(validateName),

			huh.NewInput().
				Title("Note").
				Description("Optional").
				Value(&result.Note),
		),
	).WithTheme(Theme())
}

// NewConfirmDeleteForm asks before a saved selection is removed.
func NewConfirmDeleteForm(name string, confirm *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", name)).
				Affirmative("Delete").
				Negative("Keep").
				Value(confirm),
		),
	).WithTheme(Theme())
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrNameRequired
	}
	return nil
}
