package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/video-trimmer-cli/backup"
	"github.com/user/video-trimmer-cli/db"
)

var errBackupDisabled = errors.New("backup needs TRIMMER_S3_BUCKET and TRIMMER_S3_REGION")

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Upload all saved selections to S3",
	Long: `Write every saved selection as a JSON snapshot to the bucket named by
TRIMMER_S3_BUCKET. TRIMMER_S3_ENDPOINT selects an S3-compatible server.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.S3Enabled() {
			return errBackupDisabled
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		trims, err := db.SelectAllTrims(database)
		if err != nil {
			return fmt.Errorf("failed to read selections: %w", err)
		}

		uploader, err := backup.NewUploader(cmd.Context(), backup.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Prefix:          cfg.S3Prefix,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return err
		}

		key, url, err := uploader.UploadSnapshot(cmd.Context(), backup.NewSnapshot(trims, time.Now()))
		if err != nil {
			return err
		}
		logger.Info("backup uploaded", slog.String("key", key), slog.Int("selections", len(trims)))
		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d selection(s) to %s\n", len(trims), url)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
