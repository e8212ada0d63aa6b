package trim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncFixture struct {
	player  *fakePlayer
	preview *PreviewScheduler
	sync    *PlaybackSync
	states  []bool
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	f := &syncFixture{
		player:  newFakePlayer(10 * time.Second),
		preview: NewPreviewScheduler(),
	}
	selection := NewSelectionState(400, 10*time.Second, 0, 400, f.preview, func(time.Duration) {}, func(time.Duration) {})
	f.sync = NewPlaybackSync(f.player, selection, f.preview, func(p bool) { f.states = append(f.states, p) }, discardLogger())
	return f
}

func TestPlaybackSync_PositionPastEndPauses(t *testing.T) {
	f := newSyncFixture(t)
	f.player.playing = true
	now := time.Now()

	f.sync.OnPosition(time.Second, now)
	require.True(t, f.preview.Running())
	require.Equal(t, []bool{true}, f.states)

	f.sync.OnPosition(10001*time.Millisecond, now.Add(time.Second))
	assert.False(t, f.player.playing)
	assert.False(t, f.preview.Running())
	assert.Equal(t, []bool{true, false}, f.states)
	assert.Equal(t, []string{"pause"}, f.player.calls)
}

func TestPlaybackSync_PastEndFiresOnce(t *testing.T) {
	f := newSyncFixture(t)
	f.player.playing = true
	now := time.Now()

	f.sync.Observe(true, 10001*time.Millisecond, now)
	// The player reports the pause it was just asked for.
	f.sync.Observe(false, 10001*time.Millisecond, now.Add(100*time.Millisecond))

	assert.Equal(t, []bool{false}, f.states)
	assert.False(t, f.preview.Running())
}

func TestPlaybackSync_PositionStartsPreviewOnce(t *testing.T) {
	f := newSyncFixture(t)
	now := time.Now()

	f.sync.OnPosition(time.Second, now)
	f.sync.OnPosition(2*time.Second, now.Add(time.Second))
	f.sync.OnPosition(3*time.Second, now.Add(2*time.Second))

	assert.Equal(t, []bool{true}, f.states)
	assert.True(t, f.preview.Running())
}

func TestPlaybackSync_PauseStopsPreview(t *testing.T) {
	f := newSyncFixture(t)
	now := time.Now()

	f.sync.Observe(true, 0, now)
	f.preview.Tick(now.Add(time.Second))
	f.sync.Observe(false, time.Second, now.Add(time.Second))

	assert.Equal(t, []bool{true, false}, f.states)
	assert.False(t, f.preview.Running())
	assert.Equal(t, 40.0, f.preview.Offset())
}

func TestPlaybackSync_PauseAtEndResetsPreview(t *testing.T) {
	f := newSyncFixture(t)
	now := time.Now()

	f.sync.Observe(true, 0, now)
	f.preview.Tick(now.Add(20 * time.Second))
	require.True(t, f.preview.AtEnd())

	f.sync.OnPause()
	assert.Equal(t, 0.0, f.preview.Offset())
	assert.False(t, f.preview.Running())
}

func TestPlaybackSync_PausedObservationsAreQuiet(t *testing.T) {
	f := newSyncFixture(t)
	now := time.Now()

	f.sync.Observe(false, 0, now)
	f.sync.Observe(false, 0, now.Add(time.Second))
	assert.Empty(t, f.states)
}

func TestPlaybackSync_SeekForDrag(t *testing.T) {
	f := newSyncFixture(t)

	f.sync.SeekForDrag(DragRight)
	f.sync.SeekForDrag(DragLeft)
	f.sync.SeekForDrag(DragCenter)

	assert.Equal(t, []string{"pause", "seek", "pause", "seek", "pause", "seek"}, f.player.calls)
	assert.Equal(t, []time.Duration{10 * time.Second, 0, 0}, f.player.seeks)
}

func TestPlaybackSync_Toggle(t *testing.T) {
	f := newSyncFixture(t)

	// Position at the end of the selection: playback restarts from the start.
	f.player.position = 10 * time.Second
	f.sync.Toggle()
	assert.Equal(t, []string{"seek", "play"}, f.player.calls)
	assert.Equal(t, []time.Duration{0}, f.player.seeks)

	f.sync.Toggle()
	assert.Equal(t, []string{"seek", "play", "pause"}, f.player.calls)

	// Inside the selection: resume in place.
	f.player.position = 4 * time.Second
	f.sync.Toggle()
	assert.Equal(t, []string{"seek", "play", "pause", "play"}, f.player.calls)
}

func TestPlaybackSync_ResumeMidSelectionKeepsScrubberOnPosition(t *testing.T) {
	f := newSyncFixture(t)
	now := time.Now()

	// Paused inside the selection: Toggle resumes in place.
	f.player.position = 4 * time.Second
	f.sync.Toggle()
	require.True(t, f.player.playing)
	assert.Empty(t, f.player.seeks)

	f.sync.Observe(true, 4*time.Second, now)
	require.True(t, f.preview.Running())
	assert.InDelta(t, 160.0, f.preview.Offset(), 1e-9)

	f.preview.Tick(now.Add(time.Second))
	assert.InDelta(t, 200.0, f.preview.Offset(), 1e-9)
}
