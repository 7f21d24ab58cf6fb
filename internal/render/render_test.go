package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arcanaland/pokedeck/internal/card"
	"github.com/arcanaland/pokedeck/internal/deck"
	"github.com/arcanaland/pokedeck/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pikachu(hp int) *card.PokemonCard {
	return card.NewPokemonCard("Pikachu", "Électrique", "Pikachu", 1, 60, hp,
		card.Attack{EnergyCost: 3, CurrentEnergyCost: 2, Description: "Lancer de flammes", Damage: 50},
		card.Attack{EnergyCost: 2, CurrentEnergyCost: 1, Description: "Griffure", Damage: 30},
	)
}

const pikachuLines = `Nom du Pokémon : Pikachu
Type : Électrique
Famille : Pikachu
Niveau d'évolution : 1
HP : 50 / 60
Attaque 1 :
  Coût en énergie : 3
  Coût en énergie actuel : 2
  Description : Lancer de flammes
  Dégâts : 50
Attaque 2 :
  Coût en énergie : 2
  Coût en énergie actuel : 1
  Description : Griffure
  Dégâts : 30
`

func TestRenderer_Card(t *testing.T) {
	tests := []struct {
		name string
		card card.Card
		want string
	}{
		{"pokemon", pikachu(50), pikachuLines},
		{"energy", card.NewEnergyCard("Électrique"), "Nom de la carte : Energy\nType d'énergie : Électrique\n"},
		{"trainer", card.NewTrainerCard("Professeur X"), "Nom de l'entraîneur : Professeur X\nEffet de l'entraîneur : heal all your action pokemon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, New(&buf, false).Card(tt.card))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderer_PokemonAlwaysTwoAttacks(t *testing.T) {
	var buf bytes.Buffer
	p := card.NewPokemonCard("Mew", "Psy", "Mew", 0, 0, 0, card.Attack{}, card.Attack{})
	require.NoError(t, New(&buf, false).Card(p))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "Attaque 1 :"))
	assert.Equal(t, 1, strings.Count(out, "Attaque 2 :"))
	assert.Equal(t, 2, strings.Count(out, "  Dégâts : 0\n"))
}

func TestRenderer_BenchAndAction(t *testing.T) {
	d := deck.New()
	require.NoError(t, d.AddWithID("pikachu", pikachu(50)))
	require.NoError(t, d.AddWithID("energy", card.NewEnergyCard("Électrique")))
	require.NoError(t, d.AddWithID("trainer", card.NewTrainerCard("Professeur X")))

	p := player.New("Ash", d)
	require.NoError(t, p.AddToBench("energy"))
	require.NoError(t, p.AddToBench("trainer"))
	require.NoError(t, p.AddToAction("pikachu"))

	var buf bytes.Buffer
	r := New(&buf, false)
	require.NoError(t, r.Bench(p))
	assert.Equal(t, `Cartes en réserve pour Ash :
Carte 1 : Nom de la carte : Energy
Type d'énergie : Électrique

Carte 2 : Nom de l'entraîneur : Professeur X
Effet de l'entraîneur : heal all your action pokemon

`, buf.String())

	buf.Reset()
	require.NoError(t, r.ActionCards(p))
	assert.Equal(t, "Cartes d'action pour Ash :\nCarte 1 : "+pikachuLines+"\n", buf.String())
}

func TestRenderer_EmptyBench(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, false).Bench(player.New("Ash", deck.New())))
	assert.Equal(t, "Cartes en réserve pour Ash :\n", buf.String())
}

func TestRenderer_Healed(t *testing.T) {
	a, b := pikachu(10), card.NewPokemonCard("Salamèche", "Feu", "Salamèche", 1, 50, 70, card.Attack{}, card.Attack{})

	var buf bytes.Buffer
	require.NoError(t, New(&buf, false).Healed([]*card.PokemonCard{a, b}))

	assert.Equal(t, "Les HP de Pikachu ont été restaurés au maximum.\nLes HP de Salamèche ont été restaurés au maximum.\n", buf.String())
	assert.Equal(t, 10, a.HP, "rendering leaves hp untouched")
	assert.Equal(t, 70, b.HP)

	buf.Reset()
	require.NoError(t, New(&buf, false).Healed(nil))
	assert.Empty(t, buf.String())
}

func TestRenderer_Colored(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, true).Card(card.NewEnergyCard("Feu")))

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Feu")
}

func TestRenderer_Title(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, false).Title("Pikachu · pokemon", 30))
	assert.Equal(t, "── Pikachu · pokemon "+strings.Repeat("─", 9)+"\n", buf.String())

	buf.Reset()
	require.NoError(t, New(&buf, false).Title("Pikachu", 3))
	assert.Equal(t, "── Pikachu ──\n", buf.String())
}
