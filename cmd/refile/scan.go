package main

import (
	"github.com/spf13/cobra"

	"github.com/refile/refile/internal/planner"
)

func init() {
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Preview proposed filenames for a folder of PDFs",
	Long: `Scan extracts fields from every PDF in the directory (default: current
directory) and prints the proposed filenames with per-field confidence.
Rows marked with a warning need manual review; nothing is renamed.

Examples:
  refile scan ~/Papers
  refile scan --human
  refile scan --fallback-year 2026 ~/Papers`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	proposals := planDir(targetDir(args))

	if humanOutput {
		printProposalsHuman(proposals)
		return nil
	}
	if proposals == nil {
		proposals = []planner.Proposal{}
	}
	return outputJSON(proposals)
}
