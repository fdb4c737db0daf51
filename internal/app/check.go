package app

import (
	"context"

	"github.com/tacogips/crogen/internal/config"
	"github.com/tacogips/crogen/internal/debug"
)

// CheckOptions holds options for configuration validation.
type CheckOptions struct {
	// ConfigPath is an explicit config file. Empty searches WorkDir.
	ConfigPath string
	WorkDir    string
}

// CheckResult holds the results of configuration validation.
type CheckResult struct {
	// File is the configuration file checked.
	File string
	// SchemaIssues are structural problems such as wrong value types.
	SchemaIssues []config.SchemaIssue
	// Errors and Warnings come from the semantic validator.
	Errors   []string
	Warnings []string
}

// Valid reports whether the configuration can be used for generation.
func (r *CheckResult) Valid() bool {
	return len(r.SchemaIssues) == 0 && len(r.Errors) == 0
}

// CheckConfig lints the configuration file against the schema, then runs
// the semantic validator when the structure is sound.
func CheckConfig(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	debug.DebugSection("[app] Check config")

	loader := config.NewLoader(opts.WorkDir)
	file, err := loader.Locate(opts.ConfigPath)
	if err != nil {
		return nil, NewConfigError("failed to locate configuration", err)
	}
	result := &CheckResult{File: file}

	issues, err := config.LintFile(file)
	if err != nil {
		return nil, NewConfigError("failed to lint configuration", err)
	}
	result.SchemaIssues = issues
	debug.DebugValue("[app] Schema issues", len(issues))
	if len(issues) > 0 {
		return result, nil
	}

	cfg, err := loader.Load(file)
	if err != nil {
		return nil, NewConfigError("failed to load configuration", err)
	}
	res := config.Validate(cfg)
	result.Errors = res.Errors
	result.Warnings = res.Warnings
	return result, nil
}
