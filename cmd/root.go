package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/video-trimmer-cli/config"
	"github.com/user/video-trimmer-cli/deps"
)

var Version = "0.1.0"

var (
	// cfg and logger are set up before every command runs.
	cfg     *config.Config
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "trimmer",
	Short: "Pick a time range of a video from the terminal",
	Long: `trimmer opens a video in mpv and shows a thumbnail strip with a
draggable selection. Playback follows the selection, and chosen ranges can
be saved to a local SQLite store.

Features:
  - Drag the start/end handles or the whole selection with the mouse
  - Nudge the selection from the keyboard
  - Preview the selection in mpv with a scrubber on the strip
  - Save, list and delete named selections`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "trimmer version %s\n", Version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that mpv is installed and available.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Checking dependencies...")
		fmt.Fprintln(out)

		errs := deps.CheckAll()
		if err := deps.CheckMpv(); err != nil {
			fmt.Fprintln(out, "✗ mpv: NOT FOUND")
			fmt.Fprintf(out, "  Install from: %s\n", deps.MpvInstallURL)
		} else {
			fmt.Fprintln(out, "✓ mpv: OK")
		}
		fmt.Fprintf(out, "  data: %s\n  log:  %s\n", cfg.DBPath, cfg.LogFile)

		fmt.Fprintln(out)
		if len(errs) > 0 {
			return fmt.Errorf("%d missing dependencies", len(errs))
		}
		fmt.Fprintln(out, "All dependencies are installed!")
		return nil
	},
}

// setup loads the environment configuration and opens the log file.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	cfg = c

	f, err := cfg.OpenLogFile()
	if err != nil {
		return err
	}
	logFile = f
	logger = cfg.NewLogger(f)
	logger.Debug("command started", slog.String("command", cmd.CommandPath()))
	return nil
}

func teardown(*cobra.Command, []string) error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
