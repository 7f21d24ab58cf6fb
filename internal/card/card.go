package card

// Kind tags the variant of a card
type Kind int

const (
	KindPokemon Kind = iota
	KindEnergy
	KindTrainer
)

func (k Kind) String() string {
	switch k {
	case KindPokemon:
		return "pokemon"
	case KindEnergy:
		return "energy"
	case KindTrainer:
		return "trainer"
	default:
		return "unknown"
	}
}

// ParseKind returns the Kind for a lower-case tag (pokemon, energy, trainer)
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "pokemon":
		return KindPokemon, true
	case "energy":
		return KindEnergy, true
	case "trainer":
		return KindTrainer, true
	}
	return 0, false
}

// Card is implemented by PokemonCard, EnergyCard and TrainerCard only
type Card interface {
	Name() string
	Kind() Kind

	sealed()
}

// Attack describes one Pokémon move. It carries no combat behavior.
type Attack struct {
	EnergyCost        int
	CurrentEnergyCost int
	Description       string
	Damage            int
}

// PokemonCard represents a Pokémon with exactly two attacks
type PokemonCard struct {
	name           string
	Type           string
	Family         string
	EvolutionLevel int
	MaxHP          int
	HP             int
	Attacks        [2]Attack
}

// NewPokemonCard creates a Pokémon card. Values are taken as given, hp may exceed maxHP.
func NewPokemonCard(name, pokemonType, family string, evolutionLevel, maxHP, hp int, attack1, attack2 Attack) *PokemonCard {
	return &PokemonCard{
		name:           name,
		Type:           pokemonType,
		Family:         family,
		EvolutionLevel: evolutionLevel,
		MaxHP:          maxHP,
		HP:             hp,
		Attacks:        [2]Attack{attack1, attack2},
	}
}

func (p *PokemonCard) Name() string { return p.name }
func (p *PokemonCard) Kind() Kind   { return KindPokemon }
func (p *PokemonCard) sealed()      {}

// RestoreHP resets hp to maxHP
func (p *PokemonCard) RestoreHP() {
	p.HP = p.MaxHP
}

// EnergyName is the name every energy card carries
const EnergyName = "Energy"

// EnergyCard represents an energy of a given type
type EnergyCard struct {
	Type string
}

func NewEnergyCard(energyType string) *EnergyCard {
	return &EnergyCard{Type: energyType}
}

func (e *EnergyCard) Name() string { return EnergyName }
func (e *EnergyCard) Kind() Kind   { return KindEnergy }
func (e *EnergyCard) sealed()      {}

// TrainerEffect is the effect shared by all trainer cards
const TrainerEffect = "heal all your action pokemon"

// TrainerCard represents a trainer whose effect heals active Pokémon
type TrainerCard struct {
	name string
}

func NewTrainerCard(trainerName string) *TrainerCard {
	return &TrainerCard{name: trainerName}
}

func (t *TrainerCard) Name() string { return t.name }
func (t *TrainerCard) Kind() Kind   { return KindTrainer }
func (t *TrainerCard) sealed()      {}

// Effect returns the description of the trainer's effect
func (t *TrainerCard) Effect() string { return TrainerEffect }

// ApplyEffect restores the hp of every card in active, in order, and returns
// the healed cards in that same order.
func (t *TrainerCard) ApplyEffect(active []*PokemonCard) []*PokemonCard {
	healed := make([]*PokemonCard, 0, len(active))
	for _, p := range active {
		p.RestoreHP()
		healed = append(healed, p)
	}
	return healed
}
