package validator

import (
	"fmt"
	"os"

	"github.com/arcanaland/pokedeck/internal/card"
	"github.com/arcanaland/pokedeck/internal/scenario"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ScenarioPath string
	Results      ValidationResults

	kinds map[string]card.Kind
}

func NewValidator(scenarioPath string) *Validator {
	return &Validator{
		ScenarioPath: scenarioPath,
		Results:      ValidationResults{},
		kinds:        make(map[string]card.Kind),
	}
}

// Validate parses the scenario file and checks its structure. The returned
// error is set only when the file cannot be read or parsed.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.ScenarioPath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("scenario file not found: %s", v.ScenarioPath)
	}

	s, err := scenario.Load(v.ScenarioPath)
	if err != nil {
		return v.Results, err
	}

	return v.ValidateScenario(s), nil
}

// ValidateScenario checks an already decoded scenario
func (v *Validator) ValidateScenario(s *scenario.Scenario) ValidationResults {
	for _, key := range s.Undecoded() {
		v.addWarning("unknown key: %s", key)
	}

	if s.Player.Name == "" {
		v.addError("player.name is required")
	}
	if s.Scenario.Name == "" {
		v.addWarning("scenario.name is empty")
	}

	v.validateCards(s.Cards)
	v.validateLayout(s)
	v.validateEffect(s.Effect)

	return v.Results
}

// validateCards checks ids, kinds and per-kind fields
func (v *Validator) validateCards(cards []scenario.CardSection) {
	if len(cards) == 0 {
		v.addWarning("no cards defined")
	}

	for i, c := range cards {
		ref := fmt.Sprintf("cards[%d]", i)
		if c.ID != "" {
			ref = fmt.Sprintf("card %s", c.ID)
			if _, ok := v.kinds[c.ID]; ok {
				v.addError("duplicate card id: %s", c.ID)
				continue
			}
		}

		kind, ok := card.ParseKind(c.Kind)
		if !ok {
			v.addError("%s: unknown kind %q (expected pokemon, energy or trainer)", ref, c.Kind)
			continue
		}
		if c.ID != "" {
			v.kinds[c.ID] = kind
		}

		switch kind {
		case card.KindPokemon:
			if len(c.Attacks) != 2 {
				v.addError("%s: pokemon needs exactly 2 attacks, got %d", ref, len(c.Attacks))
			}
			if c.HP > c.MaxHP {
				v.addWarning("%s: hp %d is above max_hp %d", ref, c.HP, c.MaxHP)
			}
			if c.HP < 0 || c.MaxHP < 0 {
				v.addWarning("%s: negative hp values", ref)
			}
		case card.KindEnergy:
			if c.Name != "" && c.Name != card.EnergyName {
				v.addWarning("%s: name %q is ignored, energy cards are always named %s", ref, c.Name, card.EnergyName)
			}
			if c.Type == "" {
				v.addWarning("%s: energy type is empty", ref)
			}
		case card.KindTrainer:
			if c.Name == "" {
				v.addWarning("%s: trainer name is empty", ref)
			}
		}
	}
}

// validateLayout checks that placed cards exist and fit their area
func (v *Validator) validateLayout(s *scenario.Scenario) {
	placed := make(map[string]bool)

	for _, id := range s.Layout.Bench {
		if id == "" {
			v.addError("layout.bench: empty card id, cards without an id cannot be placed")
		} else if _, ok := v.kinds[id]; !ok {
			v.addError("layout.bench: unknown card %s", id)
		}
		placed[id] = true
	}

	for _, id := range s.Layout.Action {
		kind, ok := v.kinds[id]
		if id == "" {
			v.addError("layout.action: empty card id, cards without an id cannot be placed")
		} else if !ok {
			v.addError("layout.action: unknown card %s", id)
		} else if kind != card.KindPokemon {
			v.addError("layout.action: card %s is %s, only pokemon can be in action", id, kind)
		}
		placed[id] = true
	}

	if len(s.Layout.Bench) == 0 && len(s.Layout.Action) == 0 {
		v.addWarning("layout is empty, nothing will be displayed")
	}

	for _, c := range s.Cards {
		if c.ID == "" || placed[c.ID] {
			continue
		}
		if s.Effect != nil && (s.Effect.Trainer == c.ID || contains(s.Effect.Targets, c.ID)) {
			continue
		}
		v.addWarning("card %s is never used", c.ID)
	}
}

// validateEffect checks the trainer and its targets
func (v *Validator) validateEffect(e *scenario.EffectSection) {
	if e == nil {
		return
	}

	kind, ok := v.kinds[e.Trainer]
	if e.Trainer == "" {
		v.addError("effect.trainer is required")
	} else if !ok {
		v.addError("effect.trainer: unknown card %s", e.Trainer)
	} else if kind != card.KindTrainer {
		v.addError("effect.trainer: card %s is %s, not trainer", e.Trainer, kind)
	}

	for _, id := range e.Targets {
		kind, ok := v.kinds[id]
		if id == "" {
			v.addError("effect.targets: empty card id, cards without an id cannot be targeted")
		} else if !ok {
			v.addError("effect.targets: unknown card %s", id)
		} else if kind != card.KindPokemon {
			v.addError("effect.targets: card %s is %s, not pokemon", id, kind)
		}
	}
}

func (v *Validator) addError(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) addWarning(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// contains checks if a string is in a slice
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
