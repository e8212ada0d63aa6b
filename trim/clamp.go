package trim

// Limits are the geometric constraints a selection must satisfy.
type Limits struct {
	// Width is the strip width in pixels.
	Width float64
	// MinPx is the shortest allowed selection in pixels.
	MinPx float64
	// MaxPx is the longest allowed selection in pixels.
	MaxPx float64
}

// ClampLeft moves the start handle by delta. It reports false when the update
// is rejected, either because the handle already sits at the limit in the
// direction of travel or because the clamped position does not change.
func (l Limits) ClampLeft(startPx, endPx, delta float64) (float64, bool) {
	leftLimit := endPx - l.MaxPx
	if leftLimit < 0 {
		leftLimit = 0
	}
	rightLimit := endPx - l.MinPx

	if delta < 0 && startPx <= leftLimit {
		return startPx, false
	}
	if delta > 0 && startPx >= rightLimit {
		return startPx, false
	}

	next := clamp(startPx+delta, leftLimit, rightLimit)
	if next == startPx {
		return startPx, false
	}
	return next, true
}

// ClampRight moves the end handle by delta, mirroring ClampLeft.
func (l Limits) ClampRight(startPx, endPx, delta float64) (float64, bool) {
	leftLimit := startPx + l.MinPx
	rightLimit := startPx + l.MaxPx
	if rightLimit > l.Width {
		rightLimit = l.Width
	}

	if delta > 0 && endPx >= rightLimit {
		return endPx, false
	}
	if delta < 0 && endPx <= leftLimit {
		return endPx, false
	}

	next := clamp(endPx+delta, leftLimit, rightLimit)
	if next == endPx {
		return endPx, false
	}
	return next, true
}

// ClampCenter shifts both handles by the same delta, keeping the selection
// length unchanged and both handles on the strip.
func (l Limits) ClampCenter(startPx, endPx, delta float64) (float64, float64, bool) {
	if startPx+delta < 0 {
		delta = -startPx
	}
	if endPx+delta > l.Width {
		delta = l.Width - endPx
	}
	if delta == 0 {
		return startPx, endPx, false
	}
	return startPx + delta, endPx + delta, true
}
