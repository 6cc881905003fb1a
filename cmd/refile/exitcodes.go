package main

// Exit codes returned by the CLI.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (bad config.yaml, invalid flags)
	ExitDataError   = 3 // Data error (directory unreadable, journal empty)
)
