package deps

import (
	"fmt"
	"os/exec"
)

const (
	MpvInstallURL = "https://mpv.io/installation/"
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// DependencyError contains information about a missing dependency
type DependencyError struct {
	Name       string
	InstallURL string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// CheckMpv checks if mpv is installed and available in PATH
func CheckMpv() error {
	if _, err := lookPath("mpv"); err != nil {
		return &DependencyError{
			Name:       "mpv",
			InstallURL: MpvInstallURL,
		}
	}
	return nil
}

// CheckAll checks all dependencies and returns a slice of errors for missing ones
func CheckAll() []error {
	var errs []error
	if err := CheckMpv(); err != nil {
		errs = append(errs, err)
	}
	return errs
}
