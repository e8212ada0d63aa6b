package trim

import (
	"log/slog"
	"time"
)

// Player is the external playback collaborator.
type Player interface {
	Duration() (time.Duration, error)
	Position() (time.Duration, error)
	Seek(t time.Duration) error
	Play() error
	Pause() error
	SetVolume(v float64) error
	IsPlaying() (bool, error)
}

// PlaybackSync keeps the player and the preview scheduler in lockstep with
// the selection.
type PlaybackSync struct {
	player    Player
	selection *SelectionState
	preview   *PreviewScheduler
	onChange  func(bool)
	logger    *slog.Logger

	// playing is the last play state reported through onChange.
	playing bool
}

// NewPlaybackSync wires a player to the selection and preview.
func NewPlaybackSync(player Player, selection *SelectionState, preview *PreviewScheduler, onChangePlaybackState func(bool), logger *slog.Logger) *PlaybackSync {
	return &PlaybackSync{
		player:    player,
		selection: selection,
		preview:   preview,
		onChange:  onChangePlaybackState,
		logger:    logger,
	}
}

// OnPosition handles a position update received while the player is playing.
// Playback past the selection end is paused; otherwise the scrubber is started
// at the matching point of the selection if it is not already moving.
func (s *PlaybackSync) OnPosition(position time.Duration, now time.Time) {
	sel := s.selection.Snapshot()
	if position > sel.End {
		s.pause()
		s.playing = false
		s.onChange(false)
		s.preview.Stop()
		return
	}
	if !s.preview.Running() {
		s.playing = true
		s.onChange(true)
		s.preview.StartAt(now, position-sel.Start)
	}
}

// OnPause handles a pause notification from the player.
func (s *PlaybackSync) OnPause() {
	if s.preview.AtEnd() {
		s.preview.Reset()
	}
	s.preview.Stop()
	s.playing = false
	s.onChange(false)
}

// Observe feeds polled player state into the sync. Position updates are
// forwarded while playing; a transition to paused is reported once.
func (s *PlaybackSync) Observe(playing bool, position time.Duration, now time.Time) {
	if playing {
		s.OnPosition(position, now)
		return
	}
	if s.playing {
		s.OnPause()
	}
}

// Toggle pauses a playing player, or plays from the selection start when the
// position lies outside the selection.
func (s *PlaybackSync) Toggle() {
	playing, err := s.player.IsPlaying()
	if err != nil {
		s.logger.Warn("query play state", slog.Any("error", err))
		return
	}
	if playing {
		s.pause()
		return
	}

	sel := s.selection.Snapshot()
	position, err := s.player.Position()
	if err != nil {
		s.logger.Warn("query position", slog.Any("error", err))
		position = sel.End
	}
	if position < sel.Start || position >= sel.End {
		s.seek(sel.Start)
	}
	if err := s.player.Play(); err != nil {
		s.logger.Warn("play", slog.Any("error", err))
	}
}

// SeekForDrag pauses playback and parks the player on the handle being
// dragged: the end for right-handle drags, the start otherwise.
func (s *PlaybackSync) SeekForDrag(dragType DragType) {
	s.pause()
	sel := s.selection.Snapshot()
	if dragType == DragRight {
		s.seek(sel.End)
		return
	}
	s.seek(sel.Start)
}

func (s *PlaybackSync) pause() {
	if err := s.player.Pause(); err != nil {
		s.logger.Warn("pause", slog.Any("error", err))
	}
}

func (s *PlaybackSync) seek(t time.Duration) {
	if err := s.player.Seek(t); err != nil {
		s.logger.Warn("seek", slog.Duration("to", t), slog.Any("error", err))
	}
}
