package cmd

import (
	"fmt"
	"io"

	"github.com/arcanaland/pokedeck/internal/config"
	"github.com/arcanaland/pokedeck/internal/deck"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a single card of a scenario",
	Long: `Show displays one card of the scenario, looked up by the id it has in the
scenario file (the built-in scenario uses pikachu, energy and trainer).
Without a card id it lists every card of the scenario with its id.

Examples:
  pokedeck show
  pokedeck show pikachu
  pokedeck show --scenario ./duo.toml a`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if len(args) == 0 {
			return listCards(cmd.OutOrStdout(), g.Deck)
		}

		c, err := g.Deck.Get(deck.ID(args[0]))
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		title := fmt.Sprintf("%s · %s", c.Name(), c.Kind())
		if err := r.Title(title, terminalWidth(cmd.OutOrStdout())); err != nil {
			return err
		}
		return r.Card(c)
	},
}

// listCards prints the cards of d in insertion order
func listCards(w io.Writer, d *deck.Deck) error {
	fmt.Fprintf(w, "%d cards:\n", d.Len())
	for _, id := range d.IDs() {
		c, err := d.Get(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s  %s (%s)\n", id, c.Name(), c.Kind())
	}
	return nil
}

func init() {
	RootCmd.AddCommand(showCmd)
}
