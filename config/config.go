// Package config loads application settings from TRIMMER_* environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

var (
	// ErrInvalidLogLevel is returned when TRIMMER_LOG_LEVEL is not a known level.
	ErrInvalidLogLevel = errors.New("config: invalid log level")
	// ErrInvalidLogFormat is returned when TRIMMER_LOG_FORMAT is neither text nor json.
	ErrInvalidLogFormat = errors.New("config: invalid log format")
)

// Config holds all configuration for the application.
type Config struct {
	// Data directory for the database and log file. Defaults to ~/.local/share/video-trimmer-cli.
	DataDir string `env:"TRIMMER_DATA_DIR"`
	DBPath  string `env:"TRIMMER_DB_PATH"`

	// mpv settings
	MpvSocket string `env:"TRIMMER_MPV_SOCKET, default=/tmp/video-trimmer-mpv.sock"`

	// Strip settings
	StripHeight      int     `env:"TRIMMER_STRIP_HEIGHT, default=3"`
	SideTapSize      float64 `env:"TRIMMER_SIDE_TAP_SIZE, default=2"`
	CircleSize       float64 `env:"TRIMMER_CIRCLE_SIZE, default=1"`
	CircleSizeOnDrag float64 `env:"TRIMMER_CIRCLE_SIZE_ON_DRAG, default=2"`

	// Optional S3 settings for "trimmer backup"
	S3Bucket           string `env:"TRIMMER_S3_BUCKET"`
	S3Region           string `env:"TRIMMER_S3_REGION, default=us-east-1"`
	S3Endpoint         string `env:"TRIMMER_S3_ENDPOINT"`
	S3Prefix           string `env:"TRIMMER_S3_PREFIX, default=trimmer/"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`

	// Logging settings
	LogFile   string `env:"TRIMMER_LOG_FILE"`
	LogFormat string `env:"TRIMMER_LOG_FORMAT, default=text"` // "json" or "text"
	LogLevel  string `env:"TRIMMER_LOG_LEVEL, default=info"`  // "debug", "info", "warn", "error"
}

// Load reads configuration from environment variables using go-envconfig
// and fills in paths derived from the data directory.
func Load(ctx context.Context) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".local", "share", "video-trimmer-cli")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "data.db")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "trimmer.log")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// S3Enabled returns true if a backup bucket is configured.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != "" && c.S3Region != ""
}

// Validate checks the logging settings.
func (c *Config) Validate() error {
	if _, ok := parseLogLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	return nil
}

// NewLogger creates a structured logger writing to w.
// When LogFormat is "json" it emits JSON, otherwise human-readable text.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLogLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(c.LogFormat) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// OpenLogFile opens the log file for appending, creating its directory.
// The TUI owns the terminal, so logs never go to stdout.
func (c *Config) OpenLogFile() (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("config: create log directory: %w", err)
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("config: open log file: %w", err)
	}
	return f, nil
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
