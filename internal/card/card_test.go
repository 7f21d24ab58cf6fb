package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPikachu(maxHP, hp int) *PokemonCard {
	return NewPokemonCard("Pikachu", "Électrique", "Pikachu", 1, maxHP, hp,
		Attack{EnergyCost: 3, CurrentEnergyCost: 2, Description: "Lancer de flammes", Damage: 50},
		Attack{EnergyCost: 2, CurrentEnergyCost: 1, Description: "Griffure", Damage: 30},
	)
}

func TestPokemonCard_RestoreHP(t *testing.T) {
	p := newPikachu(60, 50)

	p.RestoreHP()
	assert.Equal(t, 60, p.HP)

	p.RestoreHP()
	assert.Equal(t, 60, p.HP, "restoring twice keeps maxHP")
}

func TestPokemonCard_KeepsInconsistentHP(t *testing.T) {
	p := newPikachu(60, 70)
	assert.Equal(t, 70, p.HP)

	p.RestoreHP()
	assert.Equal(t, 60, p.HP)
}

func TestPokemonCard_AttackOrder(t *testing.T) {
	p := newPikachu(60, 50)
	assert.Equal(t, "Lancer de flammes", p.Attacks[0].Description)
	assert.Equal(t, "Griffure", p.Attacks[1].Description)
	assert.Equal(t, KindPokemon, p.Kind())
}

func TestEnergyCard_NameIsFixed(t *testing.T) {
	for _, typ := range []string{"Électrique", "Feu", "", "Energy"} {
		t.Run(typ, func(t *testing.T) {
			e := NewEnergyCard(typ)
			assert.Equal(t, "Energy", e.Name())
			assert.Equal(t, typ, e.Type)
		})
	}
}

func TestTrainerCard_ApplyEffect(t *testing.T) {
	tr := NewTrainerCard("Professeur X")
	assert.Equal(t, "Professeur X", tr.Name())
	assert.Equal(t, "heal all your action pokemon", tr.Effect())

	a := newPikachu(60, 10)
	b := NewPokemonCard("Salamèche", "Feu", "Salamèche", 1, 50, 0, Attack{}, Attack{})
	c := newPikachu(60, 60)

	healed := tr.ApplyEffect([]*PokemonCard{a, b, c})
	require.Len(t, healed, 3)
	assert.Same(t, a, healed[0])
	assert.Same(t, b, healed[1])
	assert.Same(t, c, healed[2])
	assert.Equal(t, 60, a.HP)
	assert.Equal(t, 50, b.HP)
	assert.Equal(t, 60, c.HP)

	assert.Empty(t, tr.ApplyEffect(nil))
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindPokemon, KindEnergy, KindTrainer} {
		got, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseKind("supporter")
	assert.False(t, ok)
}
