package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refile/refile/internal/journal"
	"github.com/refile/refile/internal/planner"
)

var (
	applyYes    bool
	applyDryRun bool
)

func init() {
	applyCmd.Flags().BoolVar(&applyYes, "yes", false, "Confirm that files may be renamed")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Show what would be renamed without touching files")
	rootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply [dir]",
	Short: "Rename PDFs to their proposed filenames",
	Long: `Apply computes the same proposals as scan and renames the files.
Renaming requires explicit confirmation with --yes; every applied batch is
recorded in the folder journal so 'refile undo' can revert it.

Examples:
  refile apply --dry-run ~/Papers
  refile apply --yes ~/Papers`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

func runApply(cmd *cobra.Command, args []string) error {
	if !applyYes && !applyDryRun {
		exitWithError(ExitError, "refusing to rename without --yes (use --dry-run to preview)")
	}

	dir := targetDir(args)
	proposals := planDir(dir)

	applied, errs := planner.Apply(dir, proposals, applyDryRun)

	var batchID string
	if !applyDryRun && len(applied) > 0 {
		j, err := journal.Open(dir)
		if err != nil {
			exitWithError(ExitDataError, "renames applied but journal unavailable: %v", err)
		}
		defer j.Close()

		batchID, err = j.RecordBatch(applied)
		if err != nil {
			exitWithError(ExitDataError, "renames applied but not journaled: %v", err)
		}
	}

	resp := ApplyResponse{
		Status:  "renamed",
		Renamed: len(applied),
		Skipped: len(proposals) - len(applied),
		BatchID: batchID,
	}
	if applyDryRun {
		resp.Status = "dry-run"
	}
	for _, err := range errs {
		resp.Errors = append(resp.Errors, err.Error())
	}

	if humanOutput {
		if applyDryRun {
			printProposalsHuman(proposals)
			fmt.Printf("\nDry run: %d files would be renamed\n", resp.Renamed)
		} else {
			fmt.Printf("Renamed %d files (%d skipped)\n", resp.Renamed, resp.Skipped)
		}
		for _, e := range resp.Errors {
			fmt.Printf("error: %s\n", e)
		}
		return nil
	}
	return outputJSON(resp)
}
