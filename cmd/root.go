package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/arcanaland/pokedeck/internal/config"
	"github.com/arcanaland/pokedeck/internal/render"
	"github.com/arcanaland/pokedeck/internal/scenario"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pokedeck",
	Short: "Display Pokémon card scenarios",
	Long: `Pokedeck builds a small set of Pokémon, energy and trainer cards, places them
on a player's bench and action area, displays them and applies a trainer's
healing effect.

Without a subcommand the default scenario is run.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScenario,
}

func init() {
	RootCmd.PersistentFlags().StringP("scenario", "s", "", "Scenario from your scenario library or a path to a scenario file")
	RootCmd.PersistentFlags().StringP("player", "p", "", "Override the player name")
	RootCmd.PersistentFlags().String("color", "", "Color mode: auto, always or never (default from config)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadScenario resolves the --scenario flag, then the configured default,
// then falls back to the built-in scenario.
func loadScenario(cmd *cobra.Command, cfg *config.Config) (*scenario.Scenario, error) {
	name, _ := cmd.Flags().GetString("scenario")
	if name == "" {
		name = cfg.DefaultScenario
	}

	var s *scenario.Scenario
	if name == "" {
		s = scenario.Default()
	} else {
		path, err := config.GetScenarioPath(name)
		if err != nil {
			return nil, err
		}
		if s, err = scenario.Load(path); err != nil {
			return nil, err
		}
	}

	playerName, _ := cmd.Flags().GetString("player")
	if playerName == "" {
		playerName = cfg.PlayerName
	}
	if playerName != "" {
		s.Player.Name = playerName
	}

	return s, nil
}

// newRenderer creates a renderer for the command output honoring the color mode
func newRenderer(cmd *cobra.Command, cfg *config.Config) (*render.Renderer, error) {
	mode, _ := cmd.Flags().GetString("color")
	if mode == "" {
		mode = cfg.Color
	}

	out := cmd.OutOrStdout()
	switch mode {
	case config.ColorAlways:
		return render.New(out, true), nil
	case config.ColorNever:
		return render.New(out, false), nil
	case config.ColorAuto, "":
		return render.New(out, isTerminal(out) && !color.NoColor), nil
	default:
		return nil, fmt.Errorf("invalid color mode %q (expected auto, always or never)", mode)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w when it is a terminal, 80 otherwise
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
