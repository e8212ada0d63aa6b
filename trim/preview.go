package trim

import "time"

// PreviewFrame is a snapshot of the preview animation.
type PreviewFrame struct {
	OffsetPx float64
	Running  bool
	Duration time.Duration
}

// PreviewScheduler sweeps the scrubber linearly from the selection start to
// the selection end over the selected duration. It does not own a clock: the
// host drives it by calling Tick on every frame or timer callback.
type PreviewScheduler struct {
	begin    float64
	end      float64
	duration time.Duration

	elapsed  time.Duration
	offset   float64
	running  bool
	lastTick time.Time

	subscribers subscribers[PreviewFrame]
}

// NewPreviewScheduler returns an idle scheduler with empty bounds.
func NewPreviewScheduler() *PreviewScheduler {
	return &PreviewScheduler{}
}

// Start begins advancing the scrubber. A finished run restarts from the
// beginning. Calling Start while running does nothing.
func (p *PreviewScheduler) Start(now time.Time) {
	if p.running {
		return
	}
	if p.elapsed >= p.duration {
		p.elapsed = 0
		p.offset = p.begin
	}
	p.running = true
	p.lastTick = now
	p.notify()
}

// StartAt begins advancing the scrubber as if elapsed of the selection had
// already played. It keeps the scrubber on the player's position when playback
// resumes mid-selection. Calling StartAt while running does nothing.
func (p *PreviewScheduler) StartAt(now time.Time, elapsed time.Duration) {
	if p.running {
		return
	}
	p.elapsed = min(max(elapsed, 0), p.duration)
	p.offset = p.offsetAt(p.elapsed)
	p.running = true
	p.lastTick = now
	p.notify()
}

// Stop halts the scrubber where it is.
func (p *PreviewScheduler) Stop() {
	if !p.running {
		return
	}
	p.running = false
	p.notify()
}

// Reset halts the scrubber and snaps it back to the beginning.
func (p *PreviewScheduler) Reset() {
	p.running = false
	p.elapsed = 0
	p.offset = p.begin
	p.notify()
}

// Retarget replaces the bounds and duration. Progress is discarded; a running
// animation continues from the new beginning.
func (p *PreviewScheduler) Retarget(begin, end float64, duration time.Duration) {
	p.begin = begin
	p.end = end
	p.duration = duration
	p.elapsed = 0
	p.offset = begin
	p.lastTick = time.Time{}
	p.notify()
}

// Tick advances the animation to now. When the end is reached the scheduler
// goes idle with the scrubber on the end bound.
func (p *PreviewScheduler) Tick(now time.Time) {
	if !p.running {
		return
	}
	if p.lastTick.IsZero() {
		p.lastTick = now
		return
	}
	if now.After(p.lastTick) {
		p.elapsed += now.Sub(p.lastTick)
	}
	p.lastTick = now

	if p.duration <= 0 || p.elapsed >= p.duration {
		p.elapsed = p.duration
		p.running = false
	}
	p.offset = p.offsetAt(p.elapsed)
	p.notify()
}

// offsetAt interpolates the scrubber position after elapsed.
func (p *PreviewScheduler) offsetAt(elapsed time.Duration) float64 {
	if p.duration <= 0 || elapsed >= p.duration {
		return p.end
	}
	progress := float64(elapsed) / float64(p.duration)
	return p.begin + (p.end-p.begin)*progress
}

// Running reports whether the scrubber is advancing.
func (p *PreviewScheduler) Running() bool {
	return p.running
}

// Offset returns the scrubber position in pixels.
func (p *PreviewScheduler) Offset() float64 {
	return p.offset
}

// AtEnd reports whether the scrubber sits on the end bound.
func (p *PreviewScheduler) AtEnd() bool {
	return p.offset == p.end
}

// Frame returns the current animation state.
func (p *PreviewScheduler) Frame() PreviewFrame {
	return PreviewFrame{
		OffsetPx: p.offset,
		Running:  p.running,
		Duration: p.duration,
	}
}

// Subscribe registers fn to be called whenever the animation state changes.
func (p *PreviewScheduler) Subscribe(fn func(PreviewFrame)) func() {
	return p.subscribers.add(fn)
}

func (p *PreviewScheduler) notify() {
	p.subscribers.notify(p.Frame())
}
