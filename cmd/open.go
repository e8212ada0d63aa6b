package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/video-trimmer-cli/config"
	"github.com/user/video-trimmer-cli/db"
	"github.com/user/video-trimmer-cli/mpv"
	"github.com/user/video-trimmer-cli/pkg/timeutil"
	"github.com/user/video-trimmer-cli/trim"
	"github.com/user/video-trimmer-cli/tui"
)

const (
	// connectTimeout bounds the wait for mpv's IPC socket.
	connectTimeout = 5 * time.Second
	// connectInterval is the delay between connection attempts.
	connectInterval = 100 * time.Millisecond
)

var errNoVideoDuration = errors.New("mpv did not report a duration")

var openCmd = &cobra.Command{
	Use:   "open <video-file>",
	Short: "Open a video and pick a time range",
	Long: `Open a video file in mpv and show the trim strip. Drag the handles or the
selection with the mouse, press space to preview, and s to save the selection.
The final selection is printed on exit.

Durations accept H:MM:SS, M:SS, raw seconds (12.5) or Go syntax (1m30s).`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	addOpenFlags(openCmd)
}

func addOpenFlags(c *cobra.Command) {
	f := c.Flags()
	f.String("min", "", "Minimum selection length")
	f.String("max", "", "Maximum selection length")
	f.String("start", "", "Initial selection start")
	f.String("end", "", "Initial selection end")
	f.Int("width", 0, "Strip width in cells (0 fits the terminal)")
	f.Int("height", 0, "Strip height in rows (default TRIMMER_STRIP_HEIGHT)")
	f.Float64("side-tap", 0, "Handle grab tolerance in cells (default TRIMMER_SIDE_TAP_SIZE)")
	f.String("socket", "", "mpv IPC socket path (default TRIMMER_MPV_SOCKET)")
	f.Bool("no-db", false, "Disable saving selections")
}

func runOpen(cmd *cobra.Command, args []string) error {
	absPath, err := resolveVideo(args[0])
	if err != nil {
		return err
	}

	opts, err := trimOptions(cmd, cfg)
	if err != nil {
		return err
	}

	socket := cfg.MpvSocket
	if cmd.Flags().Changed("socket") {
		socket, _ = cmd.Flags().GetString("socket")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Opening video: %s\n", filepath.Base(absPath))
	process, err := mpv.LaunchMpv(absPath, socket)
	if err != nil {
		return fmt.Errorf("failed to launch mpv: %w", err)
	}
	defer stopMpv(process)

	ctx, cancel := context.WithTimeout(cmd.Context(), connectTimeout)
	defer cancel()

	client := mpv.NewClient(socket)
	if err := client.ConnectWithRetry(ctx, connectInterval); err != nil {
		return fmt.Errorf("failed to connect to mpv: %w", err)
	}
	defer client.Close()

	player := mpv.NewPlayer(client)
	if err := waitForDuration(ctx, player); err != nil {
		return err
	}

	var database *sql.DB
	if noDB, _ := cmd.Flags().GetBool("no-db"); !noDB {
		database, err = db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()
	}

	logger.Info("session started", slog.String("video", absPath), slog.String("socket", socket))
	sel, err := tui.Run(player, database, tui.Config{
		VideoPath: absPath,
		Options:   opts,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	logger.Info("session finished",
		slog.Duration("start", sel.Start),
		slog.Duration("end", sel.End))
	fmt.Fprintf(cmd.OutOrStdout(), "Selection: %s → %s (%s)\n",
		timeutil.FormatDuration(sel.Start),
		timeutil.FormatDuration(sel.End),
		timeutil.FormatDuration(sel.Length()))
	fmt.Fprintf(cmd.OutOrStdout(), "start_ms=%d end_ms=%d\n", sel.Start.Milliseconds(), sel.End.Milliseconds())
	return nil
}

// resolveVideo returns the absolute path of an existing regular file.
func resolveVideo(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	info, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("video file not found: %s", absPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to access video file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a video file: %s", absPath)
	}
	return absPath, nil
}

// trimOptions builds the trim options from the environment defaults and flags.
func trimOptions(cmd *cobra.Command, c *config.Config) (trim.Options, error) {
	flags := cmd.Flags()
	opts := trim.Options{
		ViewerHeight:     float64(c.StripHeight),
		SideTapSize:      c.SideTapSize,
		CircleSize:       c.CircleSize,
		CircleSizeOnDrag: c.CircleSizeOnDrag,
	}

	if flags.Changed("width") {
		w, _ := flags.GetInt("width")
		opts.ViewerWidth = float64(w)
	}
	if flags.Changed("height") {
		h, _ := flags.GetInt("height")
		opts.ViewerHeight = float64(h)
	}
	if flags.Changed("side-tap") {
		opts.SideTapSize, _ = flags.GetFloat64("side-tap")
	}

	var err error
	if opts.MinVideoLength, err = durationFlag(cmd, "min"); err != nil {
		return opts, err
	}
	if opts.MaxVideoLength, err = durationFlag(cmd, "max"); err != nil {
		return opts, err
	}
	if flags.Changed("start") {
		d, err := durationFlag(cmd, "start")
		if err != nil {
			return opts, err
		}
		opts.InitialStart = &d
	}
	if flags.Changed("end") {
		d, err := durationFlag(cmd, "end")
		if err != nil {
			return opts, err
		}
		opts.InitialEnd = &d
	}
	return opts, nil
}

func durationFlag(cmd *cobra.Command, name string) (time.Duration, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return 0, nil
	}
	d, err := timeutil.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return d, nil
}

// waitForDuration polls until mpv has loaded the file far enough to report its length.
func waitForDuration(ctx context.Context, player *mpv.Player) error {
	ticker := time.NewTicker(connectInterval)
	defer ticker.Stop()
	for {
		if d, err := player.Duration(); err == nil && d > 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", errNoVideoDuration, ctx.Err())
		case <-ticker.C:
		}
	}
}

func stopMpv(process *exec.Cmd) {
	if process.Process == nil {
		return
	}
	if err := process.Process.Kill(); err != nil {
		logger.Debug("kill mpv", slog.Any("error", err))
	}
	_ = process.Wait()
}
