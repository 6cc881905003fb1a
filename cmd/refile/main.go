// Package main provides the refile CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// fallbackYearFlag overrides the year substituted when none is extracted.
var fallbackYearFlag int

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "refile",
	Short: "Standardized filenames for scientific PDFs",
	Long: `refile proposes standardized filenames for scientific PDFs by reading
each file's first page and inferring first author, year, and title:

  Smith et al. (2020). On the Nature of Things.pdf

Nothing is renamed until you run 'apply --yes'; 'scan' only previews.
All commands output JSON by default for easy scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().IntVar(&fallbackYearFlag, "fallback-year", 0, "Year to use when none is extracted (default: folder config, then current year)")
	rootCmd.Version = Version
}

// targetDir resolves the optional directory argument, defaulting to the
// current directory.
func targetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
