package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/refile/refile/internal/extract"
	"github.com/refile/refile/internal/planner"
)

// Truncation width for the original filename column in human output.
const originalNameMaxLen = 40

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ApplyResponse summarizes an apply or undo run.
type ApplyResponse struct {
	Status  string   `json:"status"`
	Renamed int      `json:"renamed"`
	Skipped int      `json:"skipped"`
	BatchID string   `json:"batch_id,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// statusIcon renders the per-row review indicator: files needing manual
// attention get the warning marker.
func statusIcon(p planner.Proposal) string {
	if p.Skip {
		return "✗"
	}
	if p.Result.Overall == extract.High && len(p.Reasons) == 0 {
		return "✓"
	}
	return "⚠"
}

// printProposalsHuman prints the review table for scan and dry runs.
func printProposalsHuman(proposals []planner.Proposal) {
	if len(proposals) == 0 {
		fmt.Println("No PDFs found")
		return
	}
	for _, p := range proposals {
		fmt.Printf("%s %-*s -> %s\n", statusIcon(p), originalNameMaxLen,
			truncateString(p.Original, originalNameMaxLen), p.Proposed)
		if p.Note != "" {
			fmt.Printf("    %s\n", p.Note)
		}
		if len(p.Reasons) > 0 {
			fmt.Printf("    fallback: %v\n", p.Reasons)
		}
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
