package app

import (
	"context"
	"path/filepath"

	"github.com/tacogips/crogen/internal/config"
	"github.com/tacogips/crogen/internal/debug"
	"github.com/tacogips/crogen/internal/template/provider"
)

// RunContext holds everything loaded once before prompting.
type RunContext struct {
	Config *config.Config
	// Warnings are non-fatal validation findings.
	Warnings []string
	// CustomTemplates lists custom template choices, "default" first.
	CustomTemplates []string
	State           config.State

	Builtin provider.Provider
	Custom  provider.Provider
}

// PrepareOptions configures Prepare.
type PrepareOptions struct {
	// ConfigPath is an explicit config file. Empty searches WorkDir.
	ConfigPath string
	// WorkDir is searched for cro.config.{yaml,yml,json}.
	WorkDir string
}

// Prepare loads and validates the configuration and gathers the inputs the
// prompts depend on. Validation errors abort before any prompt.
func Prepare(ctx context.Context, opts PrepareOptions) (*RunContext, error) {
	debug.DebugSection("[app] Prepare")
	debug.DebugValue("[app] ConfigPath", opts.ConfigPath)
	debug.DebugValue("[app] WorkDir", opts.WorkDir)

	cfg, err := config.NewLoader(opts.WorkDir).Load(opts.ConfigPath)
	if err != nil {
		return nil, NewConfigError("failed to load configuration", err)
	}
	if abs, err := filepath.Abs(cfg.Path); err == nil {
		cfg.Path = abs
	}

	res := config.Validate(cfg)
	for _, w := range res.Warnings {
		debug.Debug("[app] Config warning: %s", w)
	}
	if err := res.Err(cfg.Path); err != nil {
		return nil, NewConfigError("invalid configuration", err)
	}

	rc := &RunContext{
		Config:   cfg,
		Warnings: res.Warnings,
		State:    config.LoadState(cfg.Dir()),
		Builtin:  provider.NewEmbeddedProvider(),
		Custom:   provider.NewLocalProvider(cfg.ResolvePath(cfg.Templates.CustomDirectory)),
	}

	// A missing or unreadable custom template directory only hides the
	// custom template prompts.
	rc.CustomTemplates, err = provider.CustomTemplateChoices(ctx, rc.Custom)
	if err != nil {
		debug.Debug("[app] Ignoring custom templates: %v", err)
		rc.CustomTemplates = nil
	}
	debug.DebugValue("[app] Custom templates", rc.CustomTemplates)
	return rc, nil
}

// OutputRoot is the absolute directory tests are generated under.
func (rc *RunContext) OutputRoot() string {
	return rc.Config.ResolvePath(rc.Config.Output.Destination)
}
