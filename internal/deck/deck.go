package deck

import (
	"errors"
	"fmt"

	"github.com/arcanaland/pokedeck/internal/card"
	"github.com/google/uuid"
)

var (
	ErrCardNotFound = errors.New("card not found")
	ErrWrongKind    = errors.New("wrong card kind")
	ErrDuplicateID  = errors.New("duplicate card id")
	ErrReleased     = errors.New("deck released")
)

// ID is the stable key of a card inside a deck
type ID string

// Deck owns every card of a game. Players and trainers refer to cards by ID.
type Deck struct {
	cards    map[ID]card.Card
	order    []ID
	released bool
}

// New creates an empty deck
func New() *Deck {
	return &Deck{
		cards: make(map[ID]card.Card),
	}
}

// Add stores a card under a freshly generated ID
func (d *Deck) Add(c card.Card) (ID, error) {
	id := ID(uuid.NewString())
	if err := d.AddWithID(id, c); err != nil {
		return "", err
	}
	return id, nil
}

// AddWithID stores a card under the given ID
func (d *Deck) AddWithID(id ID, c card.Card) error {
	if d.released {
		return ErrReleased
	}
	if id == "" {
		return fmt.Errorf("empty card id")
	}
	if c == nil {
		return fmt.Errorf("nil card for id %s", id)
	}
	if _, ok := d.cards[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	d.cards[id] = c
	d.order = append(d.order, id)
	return nil
}

// Get returns the card stored under id
func (d *Deck) Get(id ID) (card.Card, error) {
	if d.released {
		return nil, ErrReleased
	}
	c, ok := d.cards[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	return c, nil
}

// Pokemon returns the Pokémon card stored under id
func (d *Deck) Pokemon(id ID) (*card.PokemonCard, error) {
	c, err := d.Get(id)
	if err != nil {
		return nil, err
	}
	p, ok := c.(*card.PokemonCard)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, not pokemon", ErrWrongKind, id, c.Kind())
	}
	return p, nil
}

// Trainer returns the trainer card stored under id
func (d *Deck) Trainer(id ID) (*card.TrainerCard, error) {
	c, err := d.Get(id)
	if err != nil {
		return nil, err
	}
	t, ok := c.(*card.TrainerCard)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, not trainer", ErrWrongKind, id, c.Kind())
	}
	return t, nil
}

// IDs returns the card IDs in insertion order
func (d *Deck) IDs() []ID {
	ids := make([]ID, len(d.order))
	copy(ids, d.order)
	return ids
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Release drops every card. Calling it again does nothing.
func (d *Deck) Release() {
	if d.released {
		return
	}
	for _, id := range d.order {
		delete(d.cards, id)
	}
	d.order = nil
	d.released = true
}

// Released reports whether Release was called
func (d *Deck) Released() bool {
	return d.released
}
