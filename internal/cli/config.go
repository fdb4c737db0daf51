package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/crogen/internal/app"
)

// configCmd groups configuration commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
}

// configValidateCmd validates the configuration file
var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Check cro.config against its schema, then check required values and
the experiment API credentials.

Errors stop generation. Warnings only disable experiment API features.

Examples:
  crogen config validate
  crogen config validate --config ./cro.config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

var configValidatePath string

func init() {
	configValidateCmd.Flags().StringVarP(&configValidatePath, FlagConfig, "c", "", DescConfig)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	result, err := app.CheckConfig(cmd.Context(), app.CheckOptions{
		ConfigPath: configValidatePath,
		WorkDir:    ".",
	})
	if err != nil {
		return err
	}

	printProgress(fmt.Sprintf("Checking %s", result.File))

	for _, issue := range result.SchemaIssues {
		printErrorMsg(fmt.Sprintf("schema: %s", issue))
	}
	for _, e := range result.Errors {
		printErrorMsg(e)
	}
	for _, w := range result.Warnings {
		printWarning(w)
	}

	if !result.Valid() {
		printErrorMsg(fmt.Sprintf("%d problems found", len(result.SchemaIssues)+len(result.Errors)))
		return errSilent
	}

	printSuccess("Configuration is valid")
	return nil
}
