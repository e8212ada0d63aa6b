// Package trim implements the selection model behind the trim strip: mapping
// between strip pixels and video time, classifying drag gestures, clamping the
// selection against length constraints, and keeping preview playback in step
// with the selection.
package trim

import "time"

// PixelToTime converts an offset on the strip to a video timestamp.
// Offsets outside [0, width] are clamped. Degenerate geometry maps to zero.
func PixelToTime(px, width float64, duration time.Duration) time.Duration {
	if width <= 0 || duration <= 0 {
		return 0
	}
	return time.Duration(clamp(px, 0, width) / width * float64(duration))
}

// TimeToPixel converts a video timestamp to an offset on the strip.
// Timestamps outside [0, duration] are clamped. Degenerate geometry maps to zero.
func TimeToPixel(t time.Duration, width float64, duration time.Duration) float64 {
	if width <= 0 || duration <= 0 {
		return 0
	}
	if t < 0 {
		t = 0
	}
	if t > duration {
		t = duration
	}
	return float64(t) / float64(duration) * width
}

// Fraction returns px as a proportion of the strip width.
func Fraction(px, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return clamp(px, 0, width) / width
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
