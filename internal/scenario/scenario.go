package scenario

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/pokedeck/internal/card"
	"github.com/arcanaland/pokedeck/internal/deck"
	"github.com/arcanaland/pokedeck/internal/player"
)

// Scenario describes the cards of a game and where they are placed
type Scenario struct {
	Scenario MetaSection    `toml:"scenario"`
	Player   PlayerSection  `toml:"player"`
	Cards    []CardSection  `toml:"cards"`
	Layout   LayoutSection  `toml:"layout"`
	Effect   *EffectSection `toml:"effect,omitempty"`

	undecoded []string
}

type MetaSection struct {
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`
}

type PlayerSection struct {
	Name string `toml:"name"`
}

type CardSection struct {
	ID             string          `toml:"id,omitempty"`
	Kind           string          `toml:"kind"`
	Name           string          `toml:"name,omitempty"`
	Type           string          `toml:"type,omitempty"`
	Family         string          `toml:"family,omitempty"`
	EvolutionLevel int             `toml:"evolution_level,omitempty"`
	MaxHP          int             `toml:"max_hp,omitempty"`
	HP             int             `toml:"hp,omitempty"`
	Attacks        []AttackSection `toml:"attacks,omitempty"`
}

type AttackSection struct {
	EnergyCost        int    `toml:"energy_cost"`
	CurrentEnergyCost int    `toml:"current_energy_cost"`
	Description       string `toml:"description"`
	Damage            int    `toml:"damage"`
}

type LayoutSection struct {
	Bench  []string `toml:"bench"`
	Action []string `toml:"action"`
}

// EffectSection names the trainer whose effect is applied at the end of a run.
// Without targets the effect applies to the player's action cards.
type EffectSection struct {
	Trainer string   `toml:"trainer"`
	Targets []string `toml:"targets,omitempty"`
}

// Default returns the built-in scenario
func Default() *Scenario {
	return &Scenario{
		Scenario: MetaSection{
			Name:        "Démonstration",
			Description: "Pikachu en action, une énergie et un entraîneur en réserve",
		},
		Player: PlayerSection{Name: "Ash"},
		Cards: []CardSection{
			{
				ID:             "pikachu",
				Kind:           card.KindPokemon.String(),
				Name:           "Pikachu",
				Type:           "Électrique",
				Family:         "Pikachu",
				EvolutionLevel: 1,
				MaxHP:          60,
				HP:             50,
				Attacks: []AttackSection{
					{EnergyCost: 3, CurrentEnergyCost: 2, Description: "Lancer de flammes", Damage: 50},
					{EnergyCost: 2, CurrentEnergyCost: 1, Description: "Griffure", Damage: 30},
				},
			},
			{ID: "energy", Kind: card.KindEnergy.String(), Type: "Électrique"},
			{ID: "trainer", Kind: card.KindTrainer.String(), Name: "Professeur X"},
		},
		Layout: LayoutSection{
			Bench:  []string{"energy", "trainer"},
			Action: []string{"pikachu"},
		},
		Effect: &EffectSection{
			Trainer: "trainer",
			Targets: []string{"pikachu"},
		},
	}
}

// Load reads a scenario from a TOML file
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening scenario: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a scenario from TOML
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("error parsing scenario: %w", err)
	}

	for _, key := range md.Undecoded() {
		s.undecoded = append(s.undecoded, key.String())
	}

	return &s, nil
}

// Encode writes the scenario as TOML
func (s *Scenario) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("error encoding scenario: %w", err)
	}
	return nil
}

// Undecoded returns the keys of the source document that no field consumed
func (s *Scenario) Undecoded() []string {
	return s.undecoded
}

// Build creates the cards, the player and the pending effect
func (s *Scenario) Build() (*Game, error) {
	d := deck.New()
	g := &Game{Deck: d}

	for i, cs := range s.Cards {
		c, err := cs.newCard()
		if err != nil {
			d.Release()
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		// Cards without an id cannot be placed; they get a generated one
		if cs.ID == "" {
			_, err = d.Add(c)
		} else {
			err = d.AddWithID(deck.ID(cs.ID), c)
		}
		if err != nil {
			d.Release()
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
	}

	g.Player = player.New(s.Player.Name, d)
	for _, id := range s.Layout.Bench {
		if err := g.Player.AddToBench(deck.ID(id)); err != nil {
			d.Release()
			return nil, err
		}
	}
	for _, id := range s.Layout.Action {
		if err := g.Player.AddToAction(deck.ID(id)); err != nil {
			d.Release()
			return nil, err
		}
	}

	if s.Effect != nil {
		trainer, err := d.Trainer(deck.ID(s.Effect.Trainer))
		if err != nil {
			d.Release()
			return nil, fmt.Errorf("effect trainer: %w", err)
		}
		g.trainer = trainer

		if s.Effect.Targets != nil {
			for _, id := range s.Effect.Targets {
				p, err := d.Pokemon(deck.ID(id))
				if err != nil {
					d.Release()
					return nil, fmt.Errorf("effect target: %w", err)
				}
				g.targets = append(g.targets, p)
			}
		} else {
			g.targetAction = true
		}
	}

	return g, nil
}

// newCard creates the card variant described by the section
func (cs CardSection) newCard() (card.Card, error) {
	kind, ok := card.ParseKind(cs.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown card kind %q", cs.Kind)
	}

	switch kind {
	case card.KindPokemon:
		if len(cs.Attacks) != 2 {
			return nil, fmt.Errorf("pokemon %s needs exactly 2 attacks, got %d", cs.ID, len(cs.Attacks))
		}
		return card.NewPokemonCard(cs.Name, cs.Type, cs.Family, cs.EvolutionLevel, cs.MaxHP, cs.HP,
			cs.Attacks[0].attack(), cs.Attacks[1].attack()), nil
	case card.KindEnergy:
		return card.NewEnergyCard(cs.Type), nil
	default:
		return card.NewTrainerCard(cs.Name), nil
	}
}

func (a AttackSection) attack() card.Attack {
	return card.Attack{
		EnergyCost:        a.EnergyCost,
		CurrentEnergyCost: a.CurrentEnergyCost,
		Description:       a.Description,
		Damage:            a.Damage,
	}
}
