package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/pokedeck/internal/config"
	"github.com/arcanaland/pokedeck/internal/scenario"
	"github.com/spf13/cobra"
)

// defaultScenarioFile is the file name init gives the built-in scenario
const defaultScenarioFile = "demo.toml"

// scenarioCmd represents the scenario command group
var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage scenarios in your scenario library",
	Long:  `Commands for managing scenarios in your scenario library.`,
}

// scenarioListCmd represents the scenario ls command
var scenarioListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available scenarios in your scenario library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath, err := config.GetScenarioLibraryPath()
		if err != nil {
			return err
		}

		// Check if scenario library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Scenario library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'pokedeck scenario init' to create it.")
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading scenario library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}

			s, err := scenario.Load(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid scenario, skip
				continue
			}
			found++

			name := strings.TrimSuffix(entry.Name(), ".toml")
			if name == cfg.DefaultScenario || entry.Name() == cfg.DefaultScenario {
				fmt.Fprintf(out, "* %s (%s) [DEFAULT]\n", name, s.Scenario.Name)
			} else {
				fmt.Fprintf(out, "  %s (%s)\n", name, s.Scenario.Name)
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No scenarios found in your scenario library.")
			fmt.Fprintln(out, "You can add scenarios by copying them to:", libraryPath)
		}
		return nil
	},
}

// scenarioSetDefaultCmd represents the scenario set-default command
var scenarioSetDefaultCmd = &cobra.Command{
	Use:   "set-default [scenario_name]",
	Short: "Set the default scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		path, err := config.GetScenarioPath(name)
		if err != nil {
			return err
		}

		// Make sure the scenario builds before making it the default
		s, err := scenario.Load(path)
		if err != nil {
			return fmt.Errorf("not a valid scenario: %w", err)
		}
		g, err := s.Build()
		if err != nil {
			return fmt.Errorf("not a valid scenario: %w", err)
		}
		g.Close()

		if err := config.SetDefaultScenario(name); err != nil {
			return fmt.Errorf("error setting default scenario: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default scenario set to: %s\n", name)
		return nil
	},
}

// scenarioInitCmd represents the scenario init command
var scenarioInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the scenario library with the built-in scenario",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath, err := config.GetScenarioLibraryPath()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating scenario library: %w", err)
		}
		fmt.Fprintln(out, "Scenario library initialized at:", libraryPath)

		demoPath := filepath.Join(libraryPath, defaultScenarioFile)
		if _, err := os.Stat(demoPath); os.IsNotExist(err) {
			if err := writeScenarioFile(demoPath, scenario.Default()); err != nil {
				return err
			}
			fmt.Fprintln(out, "Built-in scenario written to:", demoPath)
		}

		configPath, err := config.InitConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(out, "Config file initialized at:", configPath)
		return nil
	},
}

// scenarioExportCmd represents the scenario export command
var scenarioExportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the built-in scenario as TOML",
	Long: `Export writes the built-in scenario as TOML to the given path, or to the
standard output when no path is given. Use it as a template for new scenarios.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return scenario.Default().Encode(cmd.OutOrStdout())
		}
		return writeScenarioFile(args[0], scenario.Default())
	},
}

func writeScenarioFile(path string, s *scenario.Scenario) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating scenario file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error writing scenario file: %w", cerr)
		}
	}()

	return s.Encode(file)
}

func init() {
	RootCmd.AddCommand(scenarioCmd)
	scenarioCmd.AddCommand(scenarioListCmd)
	scenarioCmd.AddCommand(scenarioSetDefaultCmd)
	scenarioCmd.AddCommand(scenarioInitCmd)
	scenarioCmd.AddCommand(scenarioExportCmd)
}
