package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/refile/refile/internal/journal"
)

func init() {
	rootCmd.AddCommand(undoCmd)
}

var undoCmd = &cobra.Command{
	Use:   "undo [dir]",
	Short: "Revert the most recent applied batch",
	Long: `Undo renames the files of the most recent applied batch back to their
original names, using the folder journal, and removes the batch from it.

Examples:
  refile undo ~/Papers`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUndo,
}

func runUndo(cmd *cobra.Command, args []string) error {
	dir := targetDir(args)

	if _, err := os.Stat(journal.Path(dir)); err != nil {
		exitWithError(ExitDataError, "no journal in %s; nothing to undo", dir)
	}
	j, err := journal.Open(dir)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	defer j.Close()

	entries, err := j.LastBatch()
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	if len(entries) == 0 {
		exitWithError(ExitDataError, "journal is empty; nothing to undo")
	}

	resp := ApplyResponse{Status: "undone", BatchID: entries[0].BatchID}
	for _, e := range entries {
		newPath := filepath.Join(dir, e.NewName)
		oldPath := filepath.Join(dir, e.OldName)
		if err := os.Rename(newPath, oldPath); err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("restoring %s: %v", e.OldName, err))
			continue
		}
		resp.Renamed++
	}

	// Only drop the batch when every file went back; partial failures keep
	// the journal so a re-run can finish the job.
	if len(resp.Errors) == 0 {
		if err := j.DeleteBatch(entries[0].BatchID); err != nil {
			exitWithError(ExitDataError, "files restored but journal not updated: %v", err)
		}
	}

	if humanOutput {
		fmt.Printf("Restored %d files\n", resp.Renamed)
		for _, e := range resp.Errors {
			fmt.Printf("error: %s\n", e)
		}
		return nil
	}
	return outputJSON(resp)
}
