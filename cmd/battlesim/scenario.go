package main

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/model"
)

// Scenario is the YAML description of the two parties of a simulation.
type Scenario struct {
	Ally  PartySpec `yaml:"ally"`
	Enemy PartySpec `yaml:"enemy"`
}

// PartySpec lists the creatures of one side. A party without creatures is loaded
// from the database by TrainerID.
type PartySpec struct {
	TrainerID   int            `yaml:"trainer_id"`
	TrainerName string         `yaml:"trainer_name"`
	Creatures   []CreatureSpec `yaml:"creatures"`
}

// CreatureSpec is a creature written by hand. Omitted fields keep the defaults of
// model.NewCreature.
type CreatureSpec struct {
	Species  string         `yaml:"species"`
	Level    int            `yaml:"level"`
	Moves    []string       `yaml:"moves"`
	Ability  string         `yaml:"ability"`
	Item     string         `yaml:"item"`
	Nickname string         `yaml:"nickname"`
	Nature   string         `yaml:"nature"`
	IV       *model.StatSet `yaml:"iv"`
	EV       *model.StatSet `yaml:"ev"`
}

// partyLoader reads a stored party. Satisfied by *db.CreatureRepository.
type partyLoader interface {
	LoadParty(ctx context.Context, trainerID int) ([]*model.Creature, error)
}

func loadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return &sc, nil
}

// build turns the description into creatures; stored parties come from repo, which may be
// nil when every party is written out.
func (p PartySpec) build(ctx context.Context, repo partyLoader) ([]*model.Creature, error) {
	if len(p.Creatures) == 0 {
		if repo == nil {
			return nil, fmt.Errorf("party of trainer %d has no creatures and the database is disabled", p.TrainerID)
		}
		party, err := repo.LoadParty(ctx, p.TrainerID)
		if err != nil {
			return nil, err
		}
		if len(party) == 0 {
			return nil, fmt.Errorf("trainer %d has no stored party", p.TrainerID)
		}
		return party, nil
	}

	party := make([]*model.Creature, 0, len(p.Creatures))
	for i, cs := range p.Creatures {
		c, err := cs.build()
		if err != nil {
			return nil, fmt.Errorf("creature %d: %w", i, err)
		}
		c.TrainerID = p.TrainerID
		c.TrainerName = p.TrainerName
		party = append(party, c)
	}
	return party, nil
}

func (cs CreatureSpec) build() (*model.Creature, error) {
	c, err := model.NewCreature(cs.Species, cs.Level, cs.Moves...)
	if err != nil {
		return nil, err
	}
	if cs.Ability != "" {
		if data.GetAbility(cs.Ability) == nil {
			return nil, &data.UnknownNameError{Kind: "ability", Name: cs.Ability}
		}
		c.Ability = cs.Ability
	}
	if cs.Item != "" {
		if data.GetItem(cs.Item) == nil {
			return nil, &data.UnknownNameError{Kind: "item", Name: cs.Item}
		}
		c.ItemHolding = cs.Item
	}
	if cs.Nature != "" {
		if data.GetNature(cs.Nature) == nil {
			return nil, &data.UnknownNameError{Kind: "nature", Name: cs.Nature}
		}
		c.Nature = cs.Nature
	}
	if cs.IV != nil {
		c.IV = *cs.IV
	}
	if cs.EV != nil {
		c.EV = *cs.EV
	}
	c.Nickname = cs.Nickname
	c.HP = c.Stats().HP
	return c, nil
}
