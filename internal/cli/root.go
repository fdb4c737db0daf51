package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tacogips/crogen/internal/debug"
	"github.com/tacogips/crogen/internal/greeter"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// errSilent signals a failure that has already been reported.
var errSilent = errors.New("silent failure")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "crogen",
	Short: "CRO test scaffolding generator",
	Long: `crogen scaffolds conversion rate optimisation tests.

Running "crogen" without a subcommand is the same as "crogen generate":
  1. Load and validate cro.config.yaml
  2. Ask about the test, optionally creating or fetching the experiment
  3. Write source files for the control, shared code and every variation

Use "crogen init" to create a starter configuration and install the
built-in templates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
		color.NoColor = color.NoColor || globalNoColor
		greeter.SetPlain(globalNoColor)
	},
	RunE: runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	addGenerateFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if errors.Is(err, errSilent) {
		return
	}
	fmt.Fprintf(stderr, "%s %v\n", red("Error:"), err)
}
