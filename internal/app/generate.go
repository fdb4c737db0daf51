package app

import (
	"context"
	"time"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/tacogips/crogen/internal/config"
	"github.com/tacogips/crogen/internal/debug"
	"github.com/tacogips/crogen/internal/experiment"
	"github.com/tacogips/crogen/internal/prompt"
	"github.com/tacogips/crogen/internal/template/generator"
	"github.com/tacogips/crogen/internal/template/model"
	"github.com/tacogips/crogen/internal/template/provider"
)

// GenerateOptions contains options for one generation run.
type GenerateOptions struct {
	// Asker collects answers, interactively or from a script.
	Asker prompt.Asker
	// Client overrides the experiment API client.
	Client experiment.Client
	// DryRun renders files without writing them.
	DryRun bool
	// Force overwrites existing files instead of skipping them.
	Force bool
	// Now overrides the clock used for the date variable.
	Now func() time.Time
}

// GenerateResult contains the results of a generation run.
type GenerateResult struct {
	// OutputRoot is the directory plan destinations are relative to.
	OutputRoot string
	Answers    model.Answers
	Variables  *model.TemplateVariables
	// Plan destinations are relative to OutputRoot, the resolved
	// output.destination, so they start at the child folder or test ID.
	Plan []model.PlanEntry
	// Experiment is set when the experiment API was called. In a dry run a
	// new experiment is a placeholder without an ID.
	Experiment *experiment.Data
	*generator.GenerateResult
}

// Failed reports whether any file could not be generated.
func (r *GenerateResult) Failed() bool {
	return r.GenerateResult != nil && len(r.Errors) > 0
}

// Generate asks the questions, optionally talks to the experiment API, and
// writes the planned test files. Per-file failures are collected in the
// result rather than returned.
func Generate(ctx context.Context, rc *RunContext, opts GenerateOptions) (*GenerateResult, error) {
	debug.DebugSection("[app] Generate workflow start")
	debug.DebugValue("[app] DryRun", opts.DryRun)
	debug.DebugValue("[app] Force", opts.Force)

	cfg := rc.Config
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	specs := prompt.Build(prompt.Context{
		Config:          cfg,
		CustomTemplates: rc.CustomTemplates,
		State:           rc.State,
	})
	answers, err := prompt.Run(specs, opts.Asker)
	if err != nil {
		return nil, NewPromptError("failed to collect answers", err)
	}
	if !answers.Bool(model.AnswerConfirm) {
		debug.Debug("[app] Confirmation declined")
		return nil, NewAppError(Aborted, "generation cancelled", nil)
	}

	vars, err := BuildTemplateVariables(cfg, answers, now())
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		OutputRoot: rc.OutputRoot(),
		Answers:    answers,
		Variables:  vars,
	}

	if mode := answers.Mode(); mode != model.ModeFiles {
		data, err := callExperimentAPI(ctx, cfg, vars, opts.Client, opts.DryRun)
		if err != nil {
			return nil, err
		}
		ApplyExperiment(vars, data)
		result.Experiment = data
	}

	// The writer is rooted at OutputRoot, so plan below it.
	plan, err := generator.Plan(generator.PlanFromVariables(vars, cfg.FileKinds(), "."))
	if err != nil {
		return nil, NewGenerationError("failed to plan files", err)
	}
	result.Plan = plan
	debug.DebugValue("[app] Planned files", len(plan))

	source, err := provider.Resolve(ctx, rc.Builtin, rc.Custom, vars.CustomTemplate)
	if err != nil {
		return nil, NewGenerationError("failed to open templates", err)
	}

	gen := generator.NewGenerator(generator.NewFSWriter(osfs.New(result.OutputRoot)))
	genOpts := generator.GenerateOptions{
		Plan:      plan,
		Variables: vars,
		Source:    source,
		Overwrite: opts.Force,
	}
	if opts.DryRun {
		result.GenerateResult, err = gen.DryRun(ctx, genOpts)
	} else {
		result.GenerateResult, err = gen.Generate(ctx, genOpts)
	}
	if err != nil {
		return nil, NewGenerationError("generation failed", err)
	}
	debug.DebugValue("[app] Files created", result.FilesCreated)
	debug.DebugValue("[app] Files skipped", result.FilesSkipped)
	debug.DebugValue("[app] Files overwritten", result.FilesOverwritten)

	if !opts.DryRun {
		saveState(cfg, vars)
	}
	return result, nil
}

// callExperimentAPI fetches or creates the experiment. A dry run never
// creates one; fetching is read-only and still happens.
func callExperimentAPI(ctx context.Context, cfg *config.Config, vars *model.TemplateVariables, client experiment.Client, dryRun bool) (*experiment.Data, error) {
	project, ok := selectProject(cfg, vars.Experiment.ProjectName)
	if !ok {
		return nil, NewExperimentError("no credentials for experimentation project "+vars.Experiment.ProjectName, nil)
	}
	if client == nil {
		client = experiment.NewClient(cfg.Experimentation.APIBaseURL)
	}

	var (
		data *experiment.Data
		err  error
	)
	switch vars.Experiment.RequestType {
	case RequestFetch:
		debug.Debug("[app] Fetching experiment %s", vars.Experiment.ExperimentID)
		data, err = client.Fetch(ctx, vars.Experiment.ExperimentID, project.AuthToken)
	default:
		payload := experiment.BuildPayload(experiment.PayloadInput{
			Name:        FormatTestName(cfg.Experimentation.TestNameFormat, vars),
			Description: vars.TestDescription,
			ProjectID:   project.ProjectID,
			TestType:    vars.Experiment.TestType,
			TestURL:     vars.TestURL,
			Variations:  vars.VariationCount,
			Audiences:   project.Audiences,
		})
		if dryRun {
			debug.Debug("[app] Dry run, not creating experiment %q", payload.Name)
			return experiment.Placeholder(payload), nil
		}
		debug.Debug("[app] Creating experiment %q", payload.Name)
		data, err = client.Create(ctx, project.AuthToken, payload)
	}
	if err != nil {
		return nil, NewExperimentError("experiment API request failed", err)
	}
	return data, nil
}

// saveState remembers choices for the next run. Failures are not fatal.
func saveState(cfg *config.Config, vars *model.TemplateVariables) {
	state := config.State{
		Developer:      vars.Developer,
		ChildFolder:    vars.ChildFolder,
		CustomTemplate: vars.CustomTemplate,
	}
	if err := config.SaveState(cfg.Dir(), state); err != nil {
		debug.Debug("[app] Failed to save state: %v", err)
	}
}
