package cmd

import (
	"fmt"

	"github.com/arcanaland/pokedeck/internal/config"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario",
	Long: `Run displays the player's bench, then the action cards, then applies the
trainer's healing effect to its targets.

Examples:
  pokedeck run
  pokedeck run --scenario arene --player Regis
  pokedeck run --scenario ./duo.toml --color never`,
	Args: cobra.NoArgs,
	RunE: runScenario,
}

func init() {
	RootCmd.AddCommand(runCmd)
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	s, err := loadScenario(cmd, cfg)
	if err != nil {
		return err
	}

	r, err := newRenderer(cmd, cfg)
	if err != nil {
		return err
	}

	g, err := s.Build()
	if err != nil {
		return fmt.Errorf("error building scenario: %w", err)
	}
	defer g.Close()

	return g.Run(r)
}
