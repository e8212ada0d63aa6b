package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/video-trimmer-cli/db"
	"github.com/user/video-trimmer-cli/pkg/timeutil"
	"github.com/user/video-trimmer-cli/tui/forms"
)

var listCmd = &cobra.Command{
	Use:   "list <video-file>",
	Short: "List saved selections for a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		absPath, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		trims, err := db.SelectTrimsByVideoPath(database, absPath)
		if err != nil {
			return fmt.Errorf("failed to list selections: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(trims) == 0 {
			fmt.Fprintln(out, "No saved selections found.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tIn\tOut\tLength\tName\tNote")
		fmt.Fprintln(w, "--\t--\t---\t------\t----\t----")
		for _, t := range trims {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				t.ID,
				timeutil.FormatDuration(t.Start),
				timeutil.FormatDuration(t.End),
				timeutil.FormatDuration(t.Length()),
				t.Name,
				t.Note)
		}
		w.Flush()

		fmt.Fprintf(out, "\n%d selection(s) found.\n", len(trims))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved selection",
	Long:  `Delete a saved selection by ID. Prompts for confirmation unless --force is used.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid selection ID: %s", args[0])
		}
		force, _ := cmd.Flags().GetBool("force")

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		t, err := db.SelectTrimByID(database, id)
		if errors.Is(err, db.ErrTrimNotFound) {
			return fmt.Errorf("selection with ID %d not found", id)
		} else if err != nil {
			return fmt.Errorf("failed to fetch selection: %w", err)
		}

		if !force {
			var confirm bool
			if err := forms.NewConfirmDeleteForm(t.Name, &confirm).Run(); err != nil {
				return fmt.Errorf("confirmation aborted: %w", err)
			}
			if !confirm {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
		}

		if err := db.DeleteTrim(database, id); err != nil {
			return fmt.Errorf("failed to delete selection: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted selection %d (%s).\n", id, t.Name)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolP("force", "f", false, "Delete without confirmation")
}
