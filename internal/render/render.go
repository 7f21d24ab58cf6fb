package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/arcanaland/pokedeck/internal/card"
	"github.com/arcanaland/pokedeck/internal/player"
	"github.com/fatih/color"
)

// Renderer writes the French, human-readable view of cards and players
type Renderer struct {
	w      io.Writer
	label  *color.Color
	header *color.Color
	notice *color.Color
}

// New creates a renderer writing to w. With colored unset the output is plain text.
func New(w io.Writer, colored bool) *Renderer {
	r := &Renderer{
		w:      w,
		label:  color.New(color.FgCyan),
		header: color.New(color.FgHiWhite, color.Bold),
		notice: color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{r.label, r.header, r.notice} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Card writes the description of c, one field per line
func (r *Renderer) Card(c card.Card) error {
	switch c := c.(type) {
	case *card.PokemonCard:
		return r.pokemon(c)
	case *card.EnergyCard:
		if err := r.field("Nom de la carte", c.Name()); err != nil {
			return err
		}
		return r.field("Type d'énergie", c.Type)
	case *card.TrainerCard:
		if err := r.field("Nom de l'entraîneur", c.Name()); err != nil {
			return err
		}
		return r.field("Effet de l'entraîneur", c.Effect())
	default:
		return fmt.Errorf("unsupported card type %T", c)
	}
}

func (r *Renderer) pokemon(p *card.PokemonCard) error {
	fields := [][2]string{
		{"Nom du Pokémon", p.Name()},
		{"Type", p.Type},
		{"Famille", p.Family},
		{"Niveau d'évolution", fmt.Sprint(p.EvolutionLevel)},
		{"HP", fmt.Sprintf("%d / %d", p.HP, p.MaxHP)},
	}
	for _, f := range fields {
		if err := r.field(f[0], f[1]); err != nil {
			return err
		}
	}

	for i, a := range p.Attacks {
		if _, err := fmt.Fprintf(r.w, "%s\n", r.label.Sprintf("Attaque %d :", i+1)); err != nil {
			return err
		}
		attackFields := [][2]string{
			{"  Coût en énergie", fmt.Sprint(a.EnergyCost)},
			{"  Coût en énergie actuel", fmt.Sprint(a.CurrentEnergyCost)},
			{"  Description", a.Description},
			{"  Dégâts", fmt.Sprint(a.Damage)},
		}
		for _, f := range attackFields {
			if err := r.field(f[0], f[1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Bench lists the player's bench cards with 1-based indices
func (r *Renderer) Bench(p *player.Player) error {
	cards, err := p.Bench()
	if err != nil {
		return err
	}
	return r.list(fmt.Sprintf("Cartes en réserve pour %s :", p.Name), cards)
}

// ActionCards lists the player's active Pokémon with 1-based indices
func (r *Renderer) ActionCards(p *player.Player) error {
	pokemon, err := p.ActionCards()
	if err != nil {
		return err
	}
	cards := make([]card.Card, len(pokemon))
	for i, c := range pokemon {
		cards[i] = c
	}
	return r.list(fmt.Sprintf("Cartes d'action pour %s :", p.Name), cards)
}

// Healed writes one confirmation line per healed Pokémon, in order
func (r *Renderer) Healed(healed []*card.PokemonCard) error {
	for _, p := range healed {
		line := fmt.Sprintf("Les HP de %s ont été restaurés au maximum.", p.Name())
		if _, err := fmt.Fprintln(r.w, r.notice.Sprint(line)); err != nil {
			return err
		}
	}
	return nil
}

// Title writes s between two rules, padded to width columns
func (r *Renderer) Title(s string, width int) error {
	rest := width - utf8.RuneCountInString(s) - 4
	if rest < 2 {
		rest = 2
	}
	_, err := fmt.Fprintf(r.w, "── %s %s\n", r.header.Sprint(s), strings.Repeat("─", rest))
	return err
}

// Blank writes an empty line
func (r *Renderer) Blank() error {
	_, err := fmt.Fprintln(r.w)
	return err
}

func (r *Renderer) list(title string, cards []card.Card) error {
	if _, err := fmt.Fprintln(r.w, r.header.Sprint(title)); err != nil {
		return err
	}
	for i, c := range cards {
		if _, err := fmt.Fprintf(r.w, "%s", r.header.Sprintf("Carte %d : ", i+1)); err != nil {
			return err
		}
		if err := r.Card(c); err != nil {
			return err
		}
		if err := r.Blank(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) field(label, value string) error {
	_, err := fmt.Fprintf(r.w, "%s %s\n", r.label.Sprint(label+" :"), value)
	return err
}
