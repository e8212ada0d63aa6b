package trim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionState_SetStartAndEnd(t *testing.T) {
	var starts, ends []time.Duration
	preview := NewPreviewScheduler()
	s := NewSelectionState(400, 10*time.Second, 0, 400, preview,
		func(d time.Duration) { starts = append(starts, d) },
		func(d time.Duration) { ends = append(ends, d) },
	)

	s.SetStart(100)
	s.SetEnd(300)

	require.Equal(t, []time.Duration{2500 * time.Millisecond}, starts)
	require.Equal(t, []time.Duration{7500 * time.Millisecond}, ends)

	sel := s.Snapshot()
	assert.Equal(t, 100.0, sel.StartPx)
	assert.Equal(t, 300.0, sel.EndPx)
	assert.Equal(t, 0.25, sel.StartFraction)
	assert.Equal(t, 0.75, sel.EndFraction)
	assert.Equal(t, 5*time.Second, sel.Length())
}

func TestSelectionState_RetargetsPreview(t *testing.T) {
	preview := NewPreviewScheduler()
	s := NewSelectionState(400, 10*time.Second, 0, 400, preview, func(time.Duration) {}, func(time.Duration) {})

	now := time.Now()
	preview.Start(now)
	preview.Tick(now.Add(time.Second))
	require.Equal(t, 40.0, preview.Offset())

	s.SetStart(100)

	frame := preview.Frame()
	assert.Equal(t, 100.0, frame.OffsetPx)
	assert.Equal(t, 7500*time.Millisecond, frame.Duration)
	assert.True(t, frame.Running)
}

func TestSelectionState_Subscribe(t *testing.T) {
	s := NewSelectionState(400, 10*time.Second, 0, 400, nil, func(time.Duration) {}, func(time.Duration) {})

	var got []Selection
	unsubscribe := s.Subscribe(func(sel Selection) { got = append(got, sel) })

	s.SetEnd(200)
	require.Len(t, got, 1)
	assert.Equal(t, 5*time.Second, got[0].End)

	unsubscribe()
	s.SetEnd(100)
	assert.Len(t, got, 1)
}

func TestSelectionState_SetRange(t *testing.T) {
	var events []string
	preview := NewPreviewScheduler()
	var s *SelectionState
	s = NewSelectionState(400, 10*time.Second, 0, 40, preview,
		func(d time.Duration) {
			sel := s.Snapshot()
			assert.Equal(t, 140.0, sel.EndPx, "end moved before start callback")
			events = append(events, "start")
		},
		func(d time.Duration) { events = append(events, "end") },
	)
	var frames []PreviewFrame
	preview.Subscribe(func(f PreviewFrame) { frames = append(frames, f) })
	var notified int
	s.Subscribe(func(Selection) { notified++ })

	s.SetRange(100, 140)

	assert.Equal(t, []string{"start", "end"}, events)
	assert.Equal(t, 1, notified)
	require.Len(t, frames, 1)
	assert.Equal(t, 100.0, frames[0].OffsetPx)
	assert.Equal(t, time.Second, frames[0].Duration)
}
