package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refile/refile/internal/config"
	"github.com/refile/refile/internal/extract"
	"github.com/refile/refile/internal/pdfio"
)

func init() {
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Extract author, year, and title from one PDF",
	Long: `Extract runs the first-page heuristics on a single PDF and prints the
resolved fields, their confidence, and the filename that would be proposed.
Nothing is renamed.

Examples:
  refile extract paper.pdf
  refile extract --human paper.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]

	folder, err := config.Load(".")
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	engine, err := extract.NewEngine(folder.EngineConfig())
	if err != nil {
		exitWithError(ExitConfigError, "invalid heuristic configuration: %v", err)
	}

	lines, err := pdfio.FirstPage(path)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	res := engine.ExtractLines(lines)

	if humanOutput {
		fmt.Printf("author:  %s (%s)\n", res.Author.Value, res.Author.Confidence)
		fmt.Printf("year:    %s (%s)\n", res.Year.Value, res.Year.Confidence)
		fmt.Printf("title:   %s (%s)\n", res.Title.Value, res.Title.Confidence)
		fmt.Printf("overall: %s\n", res.Overall)
		fmt.Printf("name:    %s\n", res.Filename)
		return nil
	}
	return outputJSON(res)
}
