package model

import (
	"fmt"
	"time"

	"github.com/udisondev/battlecore/internal/data"
)

// StatSet holds one value per permanent stat (IVs, EVs).
type StatSet struct {
	HP  int `yaml:"hp"`
	Atk int `yaml:"atk"`
	Dfe int `yaml:"dfe"`
	Spd int `yaml:"spd"`
	Ats int `yaml:"ats"`
	Dfs int `yaml:"dfs"`
}

// CaptureInfo records how and where the creature was caught.
type CaptureInfo struct {
	Ball  string    `yaml:"ball"`
	Zone  int       `yaml:"zone"`
	At    time.Time `yaml:"at"`
	Level int       `yaml:"level"`
}

// EggInfo records where the creature hatched from.
type EggInfo struct {
	Zone int       `yaml:"zone"`
	At   time.Time `yaml:"at"`
}

// MoveSlot is a learned move with its PP.
type MoveSlot struct {
	Symbol string `yaml:"symbol"`
	PP     int    `yaml:"pp"`
	PPMax  int    `yaml:"pp_max"`
}

// Creature is the persistent creature record.
// The battle core copies a fixed subset of these fields into a battler when it enters
// battle and copies a smaller subset back when the battle ends.
type Creature struct {
	// RecordID is the storage key (0 for records that were never saved).
	RecordID int64 `yaml:"record_id"`

	Species     string  `yaml:"species"`
	Form        int     `yaml:"form"`
	Nickname    string  `yaml:"nickname"`
	Level       int     `yaml:"level"`
	Ability     string  `yaml:"ability"`
	Nature      string  `yaml:"nature"`
	IV          StatSet `yaml:"iv"`
	EV          StatSet `yaml:"ev"`
	TrainerID   int     `yaml:"trainer_id"`
	TrainerName string  `yaml:"trainer_name"`
	// StepRemaining counts steps until an egg hatches.
	StepRemaining int         `yaml:"step_remaining"`
	Loyalty       int         `yaml:"loyalty"`
	Exp           int64       `yaml:"exp"`
	HP            int         `yaml:"hp"`
	Status        data.Status `yaml:"status"`
	// StatusCount is the sleep turns left or the toxic counter.
	StatusCount   int         `yaml:"status_count"`
	ItemHolding   string      `yaml:"item_holding"`
	Capture       CaptureInfo `yaml:"capture"`
	Gender        Gender      `yaml:"gender"`
	SkillLearnt   []string    `yaml:"skill_learnt"`
	Ribbons       []int       `yaml:"ribbons"`
	CharacterID   string      `yaml:"character_id"`
	ExpRate       float64     `yaml:"exp_rate"`
	HPRate        float64     `yaml:"hp_rate"`
	Egg           EggInfo     `yaml:"egg"`
	EvolveCounter int         `yaml:"evolve_counter"`
	Pokerus       int         `yaml:"pokerus"`
	Moves         []MoveSlot  `yaml:"moves"`
}

// NewCreature builds a creature at full health with the given moves at full PP.
func NewCreature(species string, level int, moves ...string) (*Creature, error) {
	tmpl := data.GetSpecies(species)
	if tmpl == nil {
		return nil, fmt.Errorf("new creature: %w", &data.UnknownNameError{Kind: "species", Name: species})
	}
	if level < 1 || level > MaxLevel {
		return nil, fmt.Errorf("new creature %s: level %d out of range", species, level)
	}
	c := &Creature{
		Species: species,
		Level:   level,
		Nature:  "hardy",
		Loyalty: 70,
		HPRate:  1,
	}
	if len(tmpl.Abilities) > 0 {
		c.Ability = tmpl.Abilities[0]
	}
	for _, sym := range moves {
		mv := data.GetMove(sym)
		if mv == nil {
			return nil, fmt.Errorf("new creature %s: %w", species, &data.UnknownNameError{Kind: "move", Name: sym})
		}
		c.Moves = append(c.Moves, MoveSlot{Symbol: sym, PP: mv.PP, PPMax: mv.PP})
	}
	c.HP = c.Stats().HP
	return c, nil
}

// SpeciesTemplate returns the reference data of the creature species, or nil.
func (c *Creature) SpeciesTemplate() *data.SpeciesTemplate {
	return data.GetSpecies(c.Species)
}

// Stats computes the permanent stats of the creature.
func (c *Creature) Stats() Stats {
	tmpl := c.SpeciesTemplate()
	if tmpl == nil {
		return Stats{}
	}
	return CalcStats(tmpl.Base, c.Level, c.IV, c.EV, data.GetNature(c.Nature))
}

// Clone returns a deep copy of the creature.
func (c *Creature) Clone() *Creature {
	cp := *c
	cp.SkillLearnt = append([]string(nil), c.SkillLearnt...)
	cp.Ribbons = append([]int(nil), c.Ribbons...)
	cp.Moves = append([]MoveSlot(nil), c.Moves...)
	return &cp
}

// Name returns the nickname, or the species symbol when there is none.
func (c *Creature) Name() string {
	if c.Nickname != "" {
		return c.Nickname
	}
	return c.Species
}
