package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig  = "config"
	FlagAnswers = "answers"
	FlagForce   = "force"
	FlagDryRun  = "dry-run"
	FlagVerbose = "verbose"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"

	// Flag descriptions
	DescConfig  = "Path to cro.config file (default: search the working directory)"
	DescAnswers = "Replay answers from a YAML file instead of prompting"
	DescForce   = "Overwrite existing files"
	DescDryRun  = "Show what would be generated without writing files"
	DescVerbose = "Print rendered file content in dry-run mode"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress non-error output"
	DescDebug   = "Enable debug logging"
)
