package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDuration formats d as H:MM:SS.mmm (e.g. 0:01:30.250).
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	hours := ms / 3_600_000
	mins := (ms % 3_600_000) / 60_000
	secs := (ms % 60_000) / 1000
	return fmt.Sprintf("%d:%02d:%02d.%03d", hours, mins, secs, ms%1000)
}

// FormatShort formats d as M:SS, or H:MM:SS past the hour.
func FormatShort(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	hours := total / 3600
	mins := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// ParseDuration parses HH:MM:SS, MM:SS, raw seconds, or a Go duration string (1m30s).
// Uses colon count: 2 colons = H:M:S, 1 colon = M:S, 0 colons = seconds or Go syntax.
// The seconds field may carry a fraction (1:02.5).
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	colons := strings.Count(s, ":")

	switch colons {
	case 2:
		var hours, minutes int
		var seconds float64
		if n, err := fmt.Sscanf(s, "%d:%d:%f", &hours, &minutes, &seconds); n == 3 && err == nil && valid(minutes, seconds) {
			return clock(hours, minutes, seconds), nil
		}
	case 1:
		var minutes int
		var seconds float64
		if n, err := fmt.Sscanf(s, "%d:%f", &minutes, &seconds); n == 2 && err == nil && valid(0, seconds) && minutes >= 0 {
			return clock(0, minutes, seconds), nil
		}
	case 0:
		if secs, err := strconv.ParseFloat(s, 64); err == nil && secs >= 0 {
			return time.Duration(secs * float64(time.Second)), nil
		}
		if d, err := time.ParseDuration(s); err == nil && d >= 0 {
			return d, nil
		}
	}

	return 0, fmt.Errorf("expected HH:MM:SS, MM:SS, seconds or a duration like 1m30s, got '%s'", s)
}

func valid(minutes int, seconds float64) bool {
	return minutes >= 0 && minutes < 60 && seconds >= 0 && seconds < 60
}

func clock(hours, minutes int, seconds float64) time.Duration {
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds*float64(time.Second))
}
