package cmd

import (
	"fmt"

	"github.com/arcanaland/pokedeck/internal/validator"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a scenario file",
	Long: `Validate checks that a scenario file parses and that its cards, layout and
effect reference each other consistently.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenarioPath := args[0]
		out := cmd.OutOrStdout()

		// Create validator and run validation
		v := validator.NewValidator(scenarioPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		// Display validation results
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "%s Scenario '%s' is valid.\n", colorize.GreenString("✅"), scenarioPath)
		} else {
			fmt.Fprintf(out, "%s Scenario '%s' has %d validation errors:\n", colorize.RedString("❌"), scenarioPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, colorize.YellowString(warn))
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
