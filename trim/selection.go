package trim

import "time"

// Selection is a snapshot of the selected range.
type Selection struct {
	StartPx       float64
	EndPx         float64
	StartFraction float64
	EndFraction   float64
	Start         time.Duration
	End           time.Duration
}

// Length returns the selected duration.
func (s Selection) Length() time.Duration {
	return s.End - s.Start
}

// SelectionState owns the current selection. Every mutation reports the new
// time through the change callbacks, rescopes the preview and notifies
// subscribers.
type SelectionState struct {
	width    float64
	duration time.Duration
	startPx  float64
	endPx    float64

	onChangeStart func(time.Duration)
	onChangeEnd   func(time.Duration)
	preview       *PreviewScheduler
	subscribers   subscribers[Selection]
}

// NewSelectionState creates a selection covering [startPx, endPx] on a strip
// of the given width. No callbacks fire until the first mutation.
func NewSelectionState(width float64, duration time.Duration, startPx, endPx float64, preview *PreviewScheduler, onChangeStart, onChangeEnd func(time.Duration)) *SelectionState {
	s := &SelectionState{
		width:         width,
		duration:      duration,
		startPx:       startPx,
		endPx:         endPx,
		onChangeStart: onChangeStart,
		onChangeEnd:   onChangeEnd,
		preview:       preview,
	}
	s.retarget()
	return s
}

// SetStart moves the start handle to px.
func (s *SelectionState) SetStart(px float64) {
	s.startPx = px
	s.onChangeStart(PixelToTime(px, s.width, s.duration))
	s.changed()
}

// SetEnd moves the end handle to px.
func (s *SelectionState) SetEnd(px float64) {
	s.endPx = px
	s.onChangeEnd(PixelToTime(px, s.width, s.duration))
	s.changed()
}

// SetRange moves both handles before any callback or subscriber runs, so
// observers never see the start past the end.
func (s *SelectionState) SetRange(startPx, endPx float64) {
	s.startPx, s.endPx = startPx, endPx
	s.onChangeStart(PixelToTime(startPx, s.width, s.duration))
	s.onChangeEnd(PixelToTime(endPx, s.width, s.duration))
	s.changed()
}

// Snapshot returns the current selection.
func (s *SelectionState) Snapshot() Selection {
	return Selection{
		StartPx:       s.startPx,
		EndPx:         s.endPx,
		StartFraction: Fraction(s.startPx, s.width),
		EndFraction:   Fraction(s.endPx, s.width),
		Start:         PixelToTime(s.startPx, s.width, s.duration),
		End:           PixelToTime(s.endPx, s.width, s.duration),
	}
}

// Subscribe registers fn to be called after every mutation.
// The returned func removes the subscription.
func (s *SelectionState) Subscribe(fn func(Selection)) func() {
	return s.subscribers.add(fn)
}

func (s *SelectionState) changed() {
	s.retarget()
	s.subscribers.notify(s.Snapshot())
}

// retarget rescopes the preview animation to the current bounds.
func (s *SelectionState) retarget() {
	if s.preview == nil {
		return
	}
	sel := s.Snapshot()
	s.preview.Retarget(sel.StartPx, sel.EndPx, sel.Length())
}
