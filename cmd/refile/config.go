package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/refile/refile/internal/config"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change folder configuration",
	Long: `Config reads and writes .refile/config.yaml in the current directory.

Supported keys:
  fallback_year    year used when extraction finds none
  year_strategy    topmost (default) or scored`,
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the folder configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a folder configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	folder, err := config.Load(".")
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("fallback_year: %d (effective %d)\n", folder.FallbackYear, folder.EffectiveFallbackYear())
		fmt.Printf("year_strategy: %s\n", folder.YearStrategy)
		return nil
	}
	return outputJSON(folder)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	folder, err := config.Load(".")
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	switch key {
	case "fallback_year":
		year, err := strconv.Atoi(value)
		if err != nil || year < 1900 || year > 2099 {
			exitWithError(ExitConfigError, "fallback_year must be a year between 1900 and 2099")
		}
		folder.FallbackYear = year
	case "year_strategy":
		if value != "topmost" && value != "scored" {
			exitWithError(ExitConfigError, "year_strategy must be topmost or scored")
		}
		folder.YearStrategy = value
	default:
		exitWithError(ExitConfigError, "unknown key %q", key)
	}

	if err := folder.Save("."); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("%s = %s\n", key, value)
		return nil
	}
	return outputJSON(map[string]string{"status": "updated", "key": key, "value": value})
}
