package tui

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-trimmer-cli/db"
	"github.com/user/video-trimmer-cli/pkg/timeutil"
	"github.com/user/video-trimmer-cli/trim"
	"github.com/user/video-trimmer-cli/tui/components"
	"github.com/user/video-trimmer-cli/tui/forms"
	"github.com/user/video-trimmer-cli/tui/layout"
	"github.com/user/video-trimmer-cli/tui/styles"
)

const (
	// pollInterval is the interval for polling the player state.
	pollInterval = 100 * time.Millisecond
	// frameInterval drives the preview scrubber animation.
	frameInterval = 33 * time.Millisecond
	// resultDisplayDuration is how long to show a result message.
	resultDisplayDuration = 3 * time.Second
	// savedRows is the number of saved selections shown at once.
	savedRows = 6
	// minStripWidth is the narrowest strip the model will build.
	minStripWidth = 20
	// defaultStripHeight is used when no height is configured.
	defaultStripHeight = 3
)

// stepSizes are the nudge steps, in strip cells, cycled with [ and ].
var stepSizes = []int{1, 2, 5, 10, 20}

// ErrNotStarted is returned by Run when the program exits before the trimmer was built.
var ErrNotStarted = errors.New("tui: trimmer was never started")

type pollMsg time.Time

type frameMsg time.Time

type thumbnailsReadyMsg struct{}

type clearResultMsg struct{}

type formKind int

const (
	formSave formKind = iota
	formDelete
)

// Player is the playback collaborator driven by the TUI.
type Player interface {
	trim.Player
	Status() (playing bool, position time.Duration, err error)
}

// Config carries the trimmer settings chosen on the command line.
type Config struct {
	VideoPath string
	// Options are passed to trim.New. A zero ViewerWidth fits the strip to the terminal.
	Options trim.Options
	Logger  *slog.Logger
}

// Model is the Bubbletea model for the trimmer.
type Model struct {
	player Player
	db     *sql.DB
	cfg    Config
	logger *slog.Logger

	// trimmer is built on the first WindowSizeMsg, once the strip width is known.
	trimmer *trim.Trimmer
	err     error

	width  int
	height int

	status   components.StatusBarState
	saved    components.SavedListState
	focus    FocusTarget
	drag     dragTracker
	stepIdx  int
	showHelp bool
	loaded   bool

	form          *huh.Form
	formKind      formKind
	saveResult    forms.SaveFormResult
	confirmDelete bool

	result    string
	resultErr bool
}

// NewModel creates a TUI model for the video loaded in player. database may be nil,
// in which case saving is disabled.
func NewModel(player Player, database *sql.DB, cfg Config) *Model {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Model{
		player: player,
		db:     database,
		cfg:    cfg,
		logger: logger,
		status: components.StatusBarState{
			Step:  stepSizes[0],
			Video: filepath.Base(cfg.VideoPath),
		},
	}
}

// Init starts the player poll and the animation frame ticks.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(pollCmd(), frameCmd())
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func thumbnailsReadyCmd() tea.Msg {
	return thumbnailsReadyMsg{}
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.trimmer != nil {
			return m, nil
		}
		if err := m.startTrimmer(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, thumbnailsReadyCmd

	case pollMsg:
		m.poll(time.Time(msg))
		return m, pollCmd()

	case frameMsg:
		if m.trimmer != nil {
			m.trimmer.Tick(time.Time(msg))
		}
		return m, frameCmd()

	case thumbnailsReadyMsg:
		if m.trimmer != nil && !m.loaded {
			m.loaded = true
			m.trimmer.ThumbnailsLoaded()
		}
		return m, nil

	case clearResultMsg:
		m.result = ""
		m.resultErr = false
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// startTrimmer builds the trim control for the current terminal size.
func (m *Model) startTrimmer() error {
	opts := m.cfg.Options
	if opts.ViewerWidth <= 0 {
		opts.ViewerWidth = float64(max(m.width-components.StripInsetX*2, minStripWidth))
	}
	if opts.ViewerHeight <= 0 {
		opts.ViewerHeight = defaultStripHeight
	}

	t, err := trim.New(m.player, opts, trim.Callbacks{
		OnChangeStart: func(start time.Duration) {
			m.logger.Debug("start changed", slog.Duration("start", start))
		},
		OnChangeEnd: func(end time.Duration) {
			m.logger.Debug("end changed", slog.Duration("end", end))
		},
		OnChangePlaybackState: func(playing bool) {
			m.status.Playing = playing
			m.logger.Debug("playback state changed", slog.Bool("playing", playing))
		},
		OnThumbnailLoadingComplete: func() {
			m.logger.Info("thumbnail strip ready", slog.Float64("width", opts.ViewerWidth))
		},
	}, trim.WithLogger(m.logger))
	if err != nil {
		return fmt.Errorf("start trimmer: %w", err)
	}
	m.trimmer = t
	m.status.Duration = t.Duration()
	return nil
}

// poll reads the player state and feeds it to the trimmer.
func (m *Model) poll(now time.Time) {
	if m.trimmer == nil {
		return
	}
	playing, pos, err := m.player.Status()
	if err != nil {
		m.logger.Debug("poll player", slog.Any("error", err))
		return
	}
	m.status.Position = pos
	m.trimmer.ObservePlayer(playing, pos, now)
}

// stripBounds is the clickable area of the strip: the thumbnail rows plus the
// handle indicator row below them.
func (m *Model) stripBounds() bounds {
	return bounds{
		x: components.StripInsetX,
		y: 1 + components.StripInsetY,
		w: int(m.trimmer.Limits().Width),
		h: m.stripHeight() + 1,
	}
}

func (m *Model) stripHeight() int {
	if h := int(m.cfg.Options.ViewerHeight); h > 0 {
		return h
	}
	return defaultStripHeight
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.trimmer == nil || m.showHelp {
		return
	}
	ev, v := m.drag.handle(msg, m.stripBounds())
	switch ev {
	case dragPressed:
		m.trimmer.DragStart(float64(v))
		m.focus = FocusStrip
	case dragMoved:
		m.trimmer.DragUpdate(float64(v))
	case dragReleased:
		m.trimmer.DragEnd()
	}
	m.status.Drag = m.trimmer.ActiveDrag()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "tab":
		m.focus = m.focus.next()
		m.saved.Focused = m.focus == FocusSaved
		return m, nil
	}

	if m.trimmer == nil {
		return m, nil
	}

	switch msg.String() {
	case " ":
		m.trimmer.TogglePlayback()
		return m, nil
	case "s":
		return m.openSaveForm()
	case "[":
		m.setStep(-1)
		return m, nil
	case "]":
		m.setStep(1)
		return m, nil
	}

	if m.focus == FocusSaved {
		return m.handleSavedKey(msg)
	}
	return m.handleStripKey(msg)
}

func (m *Model) handleStripKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := float64(stepSizes[m.stepIdx])
	switch msg.String() {
	case "h":
		m.trimmer.Nudge(trim.DragLeft, -step)
	case "l":
		m.trimmer.Nudge(trim.DragLeft, step)
	case "H":
		m.trimmer.Nudge(trim.DragRight, -step)
	case "L":
		m.trimmer.Nudge(trim.DragRight, step)
	case "left":
		m.trimmer.Nudge(trim.DragCenter, -step)
	case "right":
		m.trimmer.Nudge(trim.DragCenter, step)
	}
	return m, nil
}

func (m *Model) handleSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.saved.Move(1)
	case "k", "up":
		m.saved.Move(-1)
	case "enter":
		t := m.saved.Selected()
		if t == nil {
			return m, nil
		}
		if err := m.player.Seek(t.Start); err != nil {
			return m, m.showResult(fmt.Sprintf("seek failed: %v", err), true)
		}
		return m, m.showResult(fmt.Sprintf("at %q (%s)", t.Name, timeutil.FormatDuration(t.Start)), false)
	case "d":
		t := m.saved.Selected()
		if t == nil {
			return m, nil
		}
		m.confirmDelete = false
		m.formKind = formDelete
		m.form = forms.NewConfirmDeleteForm(t.Name, &m.confirmDelete)
		return m, m.form.Init()
	}
	return m, nil
}

func (m *Model) setStep(delta int) {
	m.stepIdx += delta
	if m.stepIdx < 0 {
		m.stepIdx = 0
	}
	if m.stepIdx > len(stepSizes)-1 {
		m.stepIdx = len(stepSizes) - 1
	}
	m.status.Step = stepSizes[m.stepIdx]
}

func (m *Model) openSaveForm() (tea.Model, tea.Cmd) {
	if m.db == nil {
		return m, m.showResult("saving is unavailable without a database", true)
	}
	sel := m.trimmer.Selection()
	m.saveResult = forms.SaveFormResult{}
	m.formKind = formSave
	m.form = forms.NewSaveForm(sel.Start, sel.End, &m.saveResult)
	return m, m.form.Init()
}

// updateForm routes messages to the open form until it completes or is aborted.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.form = nil
		return m, m.showResult("cancelled", false)
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.form = nil
		return m, tea.Batch(cmd, m.finishForm())
	case huh.StateAborted:
		m.form = nil
		return m, m.showResult("cancelled", false)
	}
	return m, cmd
}

func (m *Model) finishForm() tea.Cmd {
	switch m.formKind {
	case formSave:
		id, err := m.saveSelection()
		if err != nil {
			m.logger.Error("save selection", slog.Any("error", err))
			return m.showResult(fmt.Sprintf("save failed: %v", err), true)
		}
		m.loadSaved()
		return m.showResult(fmt.Sprintf("saved #%d", id), false)
	case formDelete:
		t := m.saved.Selected()
		if !m.confirmDelete || t == nil {
			return nil
		}
		if err := db.DeleteTrim(m.db, t.ID); err != nil {
			m.logger.Error("delete selection", slog.Int64("id", t.ID), slog.Any("error", err))
			return m.showResult(fmt.Sprintf("delete failed: %v", err), true)
		}
		id := t.ID
		m.loadSaved()
		return m.showResult(fmt.Sprintf("deleted #%d", id), false)
	}
	return nil
}

func (m *Model) saveSelection() (int64, error) {
	sel := m.trimmer.Selection()
	return db.InsertTrim(m.db, m.cfg.VideoPath, m.trimmer.Duration(), db.Trim{
		Name:  strings.TrimSpace(m.saveResult.Name),
		Note:  strings.TrimSpace(m.saveResult.Note),
		Start: sel.Start,
		End:   sel.End,
	})
}

// loadSaved reloads the saved selections for the current video.
func (m *Model) loadSaved() {
	if m.db == nil {
		return
	}
	items, err := db.SelectTrimsByVideoPath(m.db, m.cfg.VideoPath)
	if err != nil {
		m.logger.Error("load saved selections", slog.Any("error", err))
		return
	}
	m.saved.SetItems(items)
}

func (m *Model) showResult(text string, isErr bool) tea.Cmd {
	m.result = text
	m.resultErr = isErr
	return tea.Tick(resultDisplayDuration, func(time.Time) tea.Msg {
		return clearResultMsg{}
	})
}

// Selection returns the current selection, or false before the trimmer was built.
func (m *Model) Selection() (trim.Selection, bool) {
	if m.trimmer == nil {
		return trim.Selection{}, false
	}
	return m.trimmer.Selection(), true
}

// View renders the TUI.
func (m *Model) View() string {
	if m.err != nil {
		return styles.Warning.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.trimmer == nil {
		return "Loading..."
	}
	if m.showHelp {
		return components.HelpOverlay(m.width, m.height)
	}

	sel := m.trimmer.Selection()
	frame := m.trimmer.Preview()
	startSize, endSize := m.trimmer.HandleSizes()
	limits := m.trimmer.Limits()

	strip := components.Strip(components.StripState{
		Width:        int(limits.Width),
		Height:       m.stripHeight(),
		Loaded:       m.loaded,
		StartPx:      sel.StartPx,
		EndPx:        sel.EndPx,
		StartSize:    startSize,
		EndSize:      endSize,
		Active:       m.trimmer.ActiveDrag(),
		ScrubberPx:   frame.OffsetPx,
		ShowScrubber: frame.Running || frame.OffsetPx > sel.StartPx,
	})

	info := components.SelectionInfo(components.SelectionInfoState{
		Start:  sel.Start,
		End:    sel.End,
		Min:    m.cfg.Options.MinVideoLength,
		Max:    m.cfg.Options.MaxVideoLength,
		Cursor: trim.PixelToTime(frame.OffsetPx, limits.Width, m.trimmer.Duration()),
	}, m.width)

	timeline := components.Timeline(components.TimelineState{
		Position: m.status.Position,
		Duration: m.trimmer.Duration(),
		Start:    sel.Start,
		End:      sel.End,
		Saved:    m.saved.Items,
	}, m.width)

	sections := []string{
		components.StatusBar(m.status, m.width),
		strip,
		timeline,
		info,
		"",
	}
	if m.form != nil {
		sections = append(sections, m.form.View())
	} else {
		panel := layout.Container{Width: m.width, Height: savedRows + 1}
		sections = append(sections, panel.Render(
			styles.Header.Render("Saved")+"\n"+components.SavedList(&m.saved, m.width, savedRows)))
	}

	if m.result != "" {
		style := styles.Success
		if m.resultErr {
			style = styles.Warning
		}
		sections = append(sections, "", style.Render(m.result))
	}
	sections = append(sections, styles.SecondaryText.Render("space play · h/l start · H/L end · ←/→ move · s save · ? help · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Run starts the Bubbletea program and returns the selection at exit.
func Run(player Player, database *sql.DB, cfg Config) (trim.Selection, error) {
	model := NewModel(player, database, cfg)
	model.loadSaved()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return trim.Selection{}, err
	}
	if model.err != nil {
		return trim.Selection{}, model.err
	}
	sel, ok := model.Selection()
	if !ok {
		return trim.Selection{}, ErrNotStarted
	}
	return sel, nil
}
