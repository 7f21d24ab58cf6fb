package scenario

import (
	"github.com/arcanaland/pokedeck/internal/card"
	"github.com/arcanaland/pokedeck/internal/deck"
	"github.com/arcanaland/pokedeck/internal/player"
	"github.com/arcanaland/pokedeck/internal/render"
)

// Game is a built scenario. The deck owns every card until Close.
type Game struct {
	Deck   *deck.Deck
	Player *player.Player

	trainer      *card.TrainerCard
	targets      []*card.PokemonCard
	targetAction bool
}

// Run displays the bench, then the action cards, then applies the effect
func (g *Game) Run(r *render.Renderer) error {
	if err := r.Bench(g.Player); err != nil {
		return err
	}
	if err := r.Blank(); err != nil {
		return err
	}
	if err := r.ActionCards(g.Player); err != nil {
		return err
	}

	if g.trainer == nil {
		return nil
	}

	targets := g.targets
	if g.targetAction {
		var err error
		if targets, err = g.Player.ActionCards(); err != nil {
			return err
		}
	}
	return r.Healed(g.trainer.ApplyEffect(targets))
}

// Close releases every card of the game
func (g *Game) Close() {
	g.Deck.Release()
}
