package player

import (
	"testing"

	"github.com/arcanaland/pokedeck/internal/card"
	"github.com/arcanaland/pokedeck/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeck(t *testing.T) *deck.Deck {
	t.Helper()
	d := deck.New()
	require.NoError(t, d.AddWithID("pikachu", card.NewPokemonCard("Pikachu", "Électrique", "Pikachu", 1, 60, 50, card.Attack{}, card.Attack{})))
	require.NoError(t, d.AddWithID("energy", card.NewEnergyCard("Électrique")))
	require.NoError(t, d.AddWithID("trainer", card.NewTrainerCard("Professeur X")))
	return d
}

func TestPlayer_BenchKeepsInsertionOrder(t *testing.T) {
	p := New("Ash", newTestDeck(t))

	require.NoError(t, p.AddToBench("energy"))
	require.NoError(t, p.AddToBench("trainer"))
	require.NoError(t, p.AddToBench("pikachu"))
	require.NoError(t, p.AddToBench("energy"))

	bench, err := p.Bench()
	require.NoError(t, err)

	var names []string
	for _, c := range bench {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"Energy", "Professeur X", "Pikachu", "Energy"}, names)
}

func TestPlayer_AddToAction(t *testing.T) {
	p := New("Ash", newTestDeck(t))

	require.NoError(t, p.AddToAction("pikachu"))
	assert.ErrorIs(t, p.AddToAction("energy"), deck.ErrWrongKind)
	assert.ErrorIs(t, p.AddToAction("missing"), deck.ErrCardNotFound)
	assert.ErrorIs(t, p.AddToBench("missing"), deck.ErrCardNotFound)

	action, err := p.ActionCards()
	require.NoError(t, err)
	require.Len(t, action, 1)
	assert.Equal(t, "Pikachu", action[0].Name())
}

func TestPlayer_Empty(t *testing.T) {
	p := New("Ash", deck.New())

	bench, err := p.Bench()
	require.NoError(t, err)
	assert.Empty(t, bench)

	action, err := p.ActionCards()
	require.NoError(t, err)
	assert.Empty(t, action)
}
