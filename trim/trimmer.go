package trim

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrMissingCallback is returned by New when a mandatory callback is nil.
	ErrMissingCallback = errors.New("trim: missing callback")
	// ErrInvalidOptions is returned by New when the options fail validation.
	ErrInvalidOptions = errors.New("trim: invalid options")
	// ErrNoDuration is returned by New when the player reports no duration.
	ErrNoDuration = errors.New("trim: video has no duration")
)

var validate = validator.New()

// Options configures a Trimmer.
type Options struct {
	// ViewerWidth is the strip width in pixels. It is fixed for the life of the Trimmer.
	ViewerWidth  float64 `validate:"gt=0"`
	ViewerHeight float64 `validate:"gte=0"`
	// MaxVideoLength and MinVideoLength bound the selection. Zero means unconstrained.
	MaxVideoLength time.Duration `validate:"gte=0"`
	MinVideoLength time.Duration `validate:"gte=0"`
	// InitialStart and InitialEnd preselect a range. Values past the video
	// duration are ignored.
	InitialStart *time.Duration
	InitialEnd   *time.Duration
	// SideTapSize is the tolerance band around each handle, in pixels.
	SideTapSize      float64 `validate:"gte=0"`
	CircleSize       float64 `validate:"gte=0"`
	CircleSizeOnDrag float64 `validate:"gte=0"`
}

// Callbacks report selection and playback changes to the host.
// OnThumbnailLoadingComplete is optional; the others are required.
type Callbacks struct {
	OnChangeStart              func(start time.Duration)
	OnChangeEnd                func(end time.Duration)
	OnChangePlaybackState      func(playing bool)
	OnThumbnailLoadingComplete func()
}

func (c Callbacks) validate() error {
	switch {
	case c.OnChangeStart == nil:
		return fmt.Errorf("%w: OnChangeStart", ErrMissingCallback)
	case c.OnChangeEnd == nil:
		return fmt.Errorf("%w: OnChangeEnd", ErrMissingCallback)
	case c.OnChangePlaybackState == nil:
		return fmt.Errorf("%w: OnChangePlaybackState", ErrMissingCallback)
	}
	return nil
}

// Option customizes a Trimmer.
type Option func(*Trimmer)

// WithLogger sets the logger used for player errors and gesture tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Trimmer) {
		t.logger = logger
	}
}

// Trimmer is the trim selection control. It must be driven from a single
// event loop: gestures, player observations and preview ticks are never
// delivered concurrently.
type Trimmer struct {
	opts      Options
	callbacks Callbacks
	duration  time.Duration
	limits    Limits

	selection *SelectionState
	preview   *PreviewScheduler
	sync      *PlaybackSync
	session   *DragSession
	logger    *slog.Logger
}

// New builds a Trimmer for the video loaded in player.
func New(player Player, opts Options, callbacks Callbacks, options ...Option) (*Trimmer, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if err := callbacks.validate(); err != nil {
		return nil, err
	}

	t := &Trimmer{
		opts:      opts,
		callbacks: callbacks,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range options {
		o(t)
	}

	duration, err := player.Duration()
	if err != nil {
		return nil, fmt.Errorf("trim: read duration: %w", err)
	}
	if duration <= 0 {
		return nil, ErrNoDuration
	}
	t.duration = duration
	t.limits = lengthLimits(opts, duration)

	startPx, endPx := t.initialRange()
	t.preview = NewPreviewScheduler()
	t.selection = NewSelectionState(opts.ViewerWidth, duration, startPx, endPx, t.preview, callbacks.OnChangeStart, callbacks.OnChangeEnd)
	t.sync = NewPlaybackSync(player, t.selection, t.preview, callbacks.OnChangePlaybackState, t.logger)

	if err := player.SetVolume(1); err != nil {
		t.logger.Warn("set volume", slog.Any("error", err))
	}

	sel := t.selection.Snapshot()
	t.logger.Debug("trimmer ready",
		slog.Duration("duration", duration),
		slog.Float64("width", opts.ViewerWidth),
		slog.Float64("min_px", t.limits.MinPx),
		slog.Float64("max_px", t.limits.MaxPx),
		slog.Duration("start", sel.Start),
		slog.Duration("end", sel.End),
	)
	callbacks.OnChangeStart(sel.Start)
	callbacks.OnChangeEnd(sel.End)
	return t, nil
}

// lengthLimits converts the configured min/max durations to pixels.
func lengthLimits(opts Options, duration time.Duration) Limits {
	width := opts.ViewerWidth
	l := Limits{Width: width, MaxPx: width}
	if opts.MaxVideoLength > 0 && opts.MaxVideoLength < duration {
		l.MaxPx = TimeToPixel(opts.MaxVideoLength, width, duration)
	}
	if opts.MinVideoLength > 0 {
		l.MinPx = TimeToPixel(opts.MinVideoLength, width, duration)
		if l.MinPx > l.MaxPx {
			l.MinPx = l.MaxPx
		}
	}
	return l
}

// initialRange resolves the configured initial selection against the limits.
func (t *Trimmer) initialRange() (float64, float64) {
	width := t.opts.ViewerWidth

	var startPx float64
	if s := t.opts.InitialStart; s != nil {
		if *s < 0 || *s > t.duration {
			t.logger.Warn("initial start outside video, ignoring", slog.Duration("initial_start", *s))
		} else {
			startPx = TimeToPixel(*s, width, t.duration)
		}
	}

	endPx := startPx + t.limits.MaxPx
	if e := t.opts.InitialEnd; e != nil {
		if *e < 0 || *e > t.duration || TimeToPixel(*e, width, t.duration) < startPx {
			t.logger.Warn("initial end outside video, ignoring", slog.Duration("initial_end", *e))
		} else {
			endPx = TimeToPixel(*e, width, t.duration)
		}
	}
	if endPx > width {
		endPx = width
	}

	if endPx-startPx > t.limits.MaxPx {
		endPx = startPx + t.limits.MaxPx
	}
	if endPx-startPx < t.limits.MinPx {
		endPx = startPx + t.limits.MinPx
		if endPx > width {
			endPx = width
			startPx = endPx - t.limits.MinPx
		}
	}
	return startPx, endPx
}

// DragStart begins a gesture at pointer position px. Any gesture still in
// progress is discarded.
func (t *Trimmer) DragStart(px float64) {
	sel := t.selection.Snapshot()
	dragType, allowed := Classify(px, sel.StartPx, sel.EndPx, t.opts.SideTapSize)
	t.session = &DragSession{Type: dragType, Allowed: allowed}
	t.logger.Debug("drag start", slog.Float64("px", px), slog.String("type", dragType.String()), slog.Bool("allowed", allowed))
}

// DragUpdate moves the grabbed region by dx pixels. Updates for gestures that
// started outside the selection are ignored.
func (t *Trimmer) DragUpdate(dx float64) {
	if t.session == nil || !t.session.Allowed {
		return
	}
	if t.apply(t.session.Type, dx) {
		t.sync.SeekForDrag(t.session.Type)
	}
}

// DragEnd finishes the gesture and parks the player on the dragged handle.
func (t *Trimmer) DragEnd() {
	if t.session == nil {
		return
	}
	if t.session.Allowed {
		t.sync.SeekForDrag(t.session.Type)
	}
	t.session = nil
}

// Nudge moves the given region by dx as a complete gesture.
func (t *Trimmer) Nudge(dragType DragType, dx float64) {
	if dragType == DragNone {
		return
	}
	t.session = &DragSession{Type: dragType, Allowed: true}
	t.DragUpdate(dx)
	t.DragEnd()
}

// apply runs one clamped update and reports whether the selection changed.
func (t *Trimmer) apply(dragType DragType, dx float64) bool {
	sel := t.selection.Snapshot()
	switch dragType {
	case DragLeft:
		start, ok := t.limits.ClampLeft(sel.StartPx, sel.EndPx, dx)
		if ok {
			t.selection.SetStart(start)
		}
		return ok
	case DragRight:
		end, ok := t.limits.ClampRight(sel.StartPx, sel.EndPx, dx)
		if ok {
			t.selection.SetEnd(end)
		}
		return ok
	case DragCenter:
		start, end, ok := t.limits.ClampCenter(sel.StartPx, sel.EndPx, dx)
		if ok {
			t.selection.SetRange(start, end)
		}
		return ok
	}
	return false
}

// TogglePlayback plays or pauses the preview.
func (t *Trimmer) TogglePlayback() {
	t.sync.Toggle()
}

// ObservePlayer reports the polled player state.
func (t *Trimmer) ObservePlayer(playing bool, position time.Duration, now time.Time) {
	t.sync.Observe(playing, position, now)
}

// Tick advances the preview scrubber to now.
func (t *Trimmer) Tick(now time.Time) {
	t.preview.Tick(now)
}

// ThumbnailsLoaded forwards the thumbnail-ready signal to the host.
func (t *Trimmer) ThumbnailsLoaded() {
	if t.callbacks.OnThumbnailLoadingComplete != nil {
		t.callbacks.OnThumbnailLoadingComplete()
	}
}

// Selection returns the current selection.
func (t *Trimmer) Selection() Selection {
	return t.selection.Snapshot()
}

// Preview returns the current scrubber state.
func (t *Trimmer) Preview() PreviewFrame {
	return t.preview.Frame()
}

// Limits returns the selection constraints in pixels.
func (t *Trimmer) Limits() Limits {
	return t.limits
}

// Duration returns the video duration.
func (t *Trimmer) Duration() time.Duration {
	return t.duration
}

// ActiveDrag returns the type of the gesture in progress, or DragNone.
func (t *Trimmer) ActiveDrag() DragType {
	if t.session == nil || !t.session.Allowed {
		return DragNone
	}
	return t.session.Type
}

// HandleSizes returns the start and end handle sizes. A handle grows while
// it is being dragged.
func (t *Trimmer) HandleSizes() (start, end float64) {
	start, end = t.opts.CircleSize, t.opts.CircleSize
	switch t.ActiveDrag() {
	case DragLeft:
		start = t.opts.CircleSizeOnDrag
	case DragRight:
		end = t.opts.CircleSizeOnDrag
	case DragCenter:
		start, end = t.opts.CircleSizeOnDrag, t.opts.CircleSizeOnDrag
	}
	return start, end
}

// OnSelection subscribes fn to selection changes.
func (t *Trimmer) OnSelection(fn func(Selection)) func() {
	return t.selection.Subscribe(fn)
}

// OnPreview subscribes fn to scrubber changes.
func (t *Trimmer) OnPreview(fn func(PreviewFrame)) func() {
	return t.preview.Subscribe(fn)
}
