package trim

import (
	"errors"
	"io"
	"log/slog"
	"time"
)

// fakePlayer records the commands issued by the control.
type fakePlayer struct {
	duration    time.Duration
	durationErr error
	position    time.Duration
	playing     bool
	volume      float64
	calls       []string
	seeks       []time.Duration
}

func newFakePlayer(d time.Duration) *fakePlayer {
	return &fakePlayer{duration: d}
}

func (p *fakePlayer) Duration() (time.Duration, error) { return p.duration, p.durationErr }
func (p *fakePlayer) Position() (time.Duration, error) { return p.position, nil }
func (p *fakePlayer) IsPlaying() (bool, error)         { return p.playing, nil }

func (p *fakePlayer) Seek(t time.Duration) error {
	p.calls = append(p.calls, "seek")
	p.seeks = append(p.seeks, t)
	p.position = t
	return nil
}

func (p *fakePlayer) Play() error {
	p.calls = append(p.calls, "play")
	p.playing = true
	return nil
}

func (p *fakePlayer) Pause() error {
	p.calls = append(p.calls, "pause")
	p.playing = false
	return nil
}

func (p *fakePlayer) SetVolume(v float64) error {
	p.volume = v
	return nil
}

var errPlayerGone = errors.New("player gone")

// recorder captures host callbacks.
type recorder struct {
	starts  []time.Duration
	ends    []time.Duration
	playing []bool
	thumbs  int
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnChangeStart:              func(d time.Duration) { r.starts = append(r.starts, d) },
		OnChangeEnd:                func(d time.Duration) { r.ends = append(r.ends, d) },
		OnChangePlaybackState:      func(p bool) { r.playing = append(r.playing, p) },
		OnThumbnailLoadingComplete: func() { r.thumbs++ },
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
