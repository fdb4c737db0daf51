package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/tacogips/crogen/internal/app"
	"github.com/tacogips/crogen/internal/prompt"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new CRO test",
	Long: `Ask about a new test and generate its source files.

The configuration is read from cro.config.{yaml,yml,json} in the working
directory, or from --config. Configuration errors stop the run before any
question is asked; warnings only limit the experiment API features.

Existing files are skipped unless --force is given. With --answers the
questions are answered from a YAML file mapping prompt names to values.

Examples:
  crogen generate
  crogen generate --dry-run --verbose
  crogen generate --config ./cro.config.yaml --force
  crogen generate --answers ./answers.yaml`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

// Generate command flags
var (
	generateConfig  string
	generateAnswers string
	generateForce   bool
	generateDryRun  bool
	generateVerbose bool
)

func init() {
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&generateConfig, FlagConfig, "c", "", DescConfig)
	cmd.Flags().StringVarP(&generateAnswers, FlagAnswers, "a", "", DescAnswers)
	cmd.Flags().BoolVarP(&generateForce, FlagForce, "f", false, DescForce)
	cmd.Flags().BoolVarP(&generateDryRun, FlagDryRun, "d", false, DescDryRun)
	cmd.Flags().BoolVarP(&generateVerbose, FlagVerbose, "v", false, DescVerbose)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rc, err := app.Prepare(ctx, app.PrepareOptions{ConfigPath: generateConfig, WorkDir: "."})
	if err != nil {
		return err
	}
	for _, w := range rc.Warnings {
		printWarning(w)
	}

	var asker prompt.Asker = NewSurveyAsker()
	if generateAnswers != "" {
		scripted, err := prompt.LoadScript(generateAnswers)
		if err != nil {
			return err
		}
		asker = scripted
	}

	if generateForce {
		printWarning("Force mode enabled - existing files will be replaced")
	}

	result, err := app.Generate(ctx, rc, app.GenerateOptions{
		Asker:  asker,
		DryRun: generateDryRun,
		Force:  generateForce,
	})
	if err != nil {
		if app.IsAborted(err) || errors.Is(err, terminal.InterruptErr) {
			printWarning("Generation cancelled - no files were written")
			return nil
		}
		return err
	}

	if result.Experiment != nil {
		printSuccess(fmt.Sprintf("Experiment: %s (%d)", result.Experiment.Name, result.Experiment.ID))
	}

	if generateDryRun {
		printDryRun(result)
		return nil
	}

	printSuccess("Test generated successfully")
	printInfo("")
	printInfo("Summary:")
	printInfo(fmt.Sprintf("  Created: %d files", result.FilesCreated))
	if result.FilesSkipped > 0 {
		printInfo(fmt.Sprintf("  Skipped: %d files (already exist)", result.FilesSkipped))
	}
	if result.FilesOverwritten > 0 {
		printInfo(fmt.Sprintf("  Overwritten: %d files", result.FilesOverwritten))
	}

	if result.Failed() {
		printErrorMsg(fmt.Sprintf("%d files could not be generated:", len(result.Errors)))
		for _, e := range result.Errors {
			printErrorMsg(fmt.Sprintf("  - %v", e))
		}
		return errSilent
	}

	printInfo(fmt.Sprintf("\nTest ready at: %s", result.Variables.DestinationPath))
	return nil
}

func printDryRun(result *app.GenerateResult) {
	printHeader("DRY RUN")
	for _, dir := range result.Directories {
		printProgress(fmt.Sprintf("mkdir %s", filepath.Join(result.OutputRoot, dir)))
	}
	for _, f := range result.DryRunFiles {
		target := filepath.Join(result.OutputRoot, f.Path)
		switch {
		case f.WouldSkip:
			printInfo(fmt.Sprintf("  skip      %s (exists)", target))
		case f.WouldOverwrite:
			printInfo(fmt.Sprintf("  overwrite %s (%d lines)", target, countLines(f.Content)))
		default:
			printInfo(fmt.Sprintf("  create    %s (%d lines)", target, countLines(f.Content)))
		}
		if generateVerbose {
			printContent(f.Content)
		}
	}
	for _, e := range result.Errors {
		printErrorMsg(fmt.Sprintf("  - %v", e))
	}
	printInfo("")
	printInfo("No files written (dry run).")
}
