package mpv

import (
	"math"
	"time"
)

// Player adapts a Client to the playback interface used by the trim control.
// Positions and durations are converted between mpv seconds and time.Duration.
type Player struct {
	client *Client
}

// NewPlayer wraps a connected client.
func NewPlayer(client *Client) *Player {
	return &Player{client: client}
}

// Duration returns the length of the loaded video.
func (p *Player) Duration() (time.Duration, error) {
	seconds, err := p.client.GetDuration()
	if err != nil {
		return 0, err
	}
	return secondsToDuration(seconds), nil
}

// Position returns the current playback position.
func (p *Player) Position() (time.Duration, error) {
	seconds, err := p.client.GetTimePos()
	if err != nil {
		return 0, err
	}
	return secondsToDuration(seconds), nil
}

// Seek jumps to t.
func (p *Player) Seek(t time.Duration) error {
	return p.client.Seek(t.Seconds())
}

// Play resumes playback.
func (p *Player) Play() error {
	return p.client.Play()
}

// Pause pauses playback.
func (p *Player) Pause() error {
	return p.client.Pause()
}

// SetVolume sets the volume; v is in [0, 1].
func (p *Player) SetVolume(v float64) error {
	return p.client.SetVolume(math.Round(v * 100))
}

// IsPlaying reports whether mpv is playing.
func (p *Player) IsPlaying() (bool, error) {
	paused, err := p.client.GetPaused()
	if err != nil {
		return false, err
	}
	return !paused, nil
}

// Status polls the play state and position in one call.
func (p *Player) Status() (playing bool, position time.Duration, err error) {
	playing, err = p.IsPlaying()
	if err != nil {
		return false, 0, err
	}
	position, err = p.Position()
	if err != nil {
		return false, 0, err
	}
	return playing, position, nil
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
