package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/crogen/internal/app"
	"github.com/tacogips/crogen/internal/greeter"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a starter configuration and install templates",
	Long: `Write cro.config.yaml and copy the built-in templates into
_templates/default so they can be customised.

Existing files are kept unless --force is given.

Examples:
  crogen init
  crogen init ./my-tests
  crogen init --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// Init command flags
var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, FlagForce, "f", false, DescForce)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	if !globalQuiet {
		fmt.Fprint(stdout, greeter.Welcome())
	}

	result, err := app.Init(cmd.Context(), app.InitOptions{Dir: dir, Force: initForce})
	if err != nil {
		return err
	}

	if result.ConfigWritten {
		printSuccess(fmt.Sprintf("Wrote %s", result.ConfigPath))
	} else {
		printInfo(fmt.Sprintf("  Kept existing %s", result.ConfigPath))
	}
	if result.TemplatesWritten {
		printSuccess(fmt.Sprintf("Installed templates into %s", result.TemplateDir))
	} else {
		printInfo(fmt.Sprintf("  Kept existing templates in %s", result.TemplateDir))
	}

	printInfo("")
	printInfo("Next steps:")
	printInfo("  1. Fill in the projects and credentials in the config file")
	printInfo("  2. Run: crogen config validate")
	printInfo("  3. Run: crogen generate")
	return nil
}
