package player

import (
	"fmt"

	"github.com/arcanaland/pokedeck/internal/card"
	"github.com/arcanaland/pokedeck/internal/deck"
)

// Player holds a bench and an action area. Cards stay owned by the deck.
type Player struct {
	Name string

	deck   *deck.Deck
	bench  []deck.ID
	action []deck.ID
}

// New creates a player whose cards are looked up in d
func New(name string, d *deck.Deck) *Player {
	return &Player{
		Name: name,
		deck: d,
	}
}

// AddToBench appends any card to the bench
func (p *Player) AddToBench(id deck.ID) error {
	if _, err := p.deck.Get(id); err != nil {
		return fmt.Errorf("add to bench: %w", err)
	}
	p.bench = append(p.bench, id)
	return nil
}

// AddToAction appends a Pokémon card to the action area
func (p *Player) AddToAction(id deck.ID) error {
	if _, err := p.deck.Pokemon(id); err != nil {
		return fmt.Errorf("add to action: %w", err)
	}
	p.action = append(p.action, id)
	return nil
}

// Bench returns the bench cards in insertion order
func (p *Player) Bench() ([]card.Card, error) {
	cards := make([]card.Card, 0, len(p.bench))
	for _, id := range p.bench {
		c, err := p.deck.Get(id)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// ActionCards returns the action cards in insertion order
func (p *Player) ActionCards() ([]*card.PokemonCard, error) {
	cards := make([]*card.PokemonCard, 0, len(p.action))
	for _, id := range p.action {
		c, err := p.deck.Pokemon(id)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
