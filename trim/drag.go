package trim

// DragType identifies which part of the selection a gesture moves.
type DragType int

const (
	// DragNone means no drag type has been assigned.
	DragNone DragType = iota
	// DragLeft moves the start handle.
	DragLeft
	// DragCenter moves both handles together.
	DragCenter
	// DragRight moves the end handle.
	DragRight
)

func (d DragType) String() string {
	switch d {
	case DragLeft:
		return "left"
	case DragCenter:
		return "center"
	case DragRight:
		return "right"
	default:
		return "none"
	}
}

// Classify decides which region of the strip a gesture starting at px grabs.
// A gesture is allowed only inside the frame extended by sideTap on both sides.
//
// Near the start handle the pixel-closer handle wins, the middle of the
// selection drags both handles, and the area near the end handle drags the end.
func Classify(px, startPx, endPx, sideTap float64) (DragType, bool) {
	startDiff := startPx - px
	endDiff := endPx - px

	if startDiff > sideTap || endDiff < -sideTap {
		return DragNone, false
	}

	// Zero-length selection: both handles sit on the same pixel.
	if startDiff == endDiff {
		if startDiff > 0 {
			return DragLeft, true
		}
		return DragRight, true
	}

	switch {
	case px <= startPx+sideTap:
		if abs(startDiff) > abs(endDiff) {
			return DragRight, true
		}
		return DragLeft, true
	case px <= endPx-sideTap:
		return DragCenter, true
	default:
		return DragRight, true
	}
}

// DragSession is the state of one gesture, from pointer down to pointer up.
type DragSession struct {
	Type    DragType
	Allowed bool
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
