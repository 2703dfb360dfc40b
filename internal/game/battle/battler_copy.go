package battle

import (
	"slices"

	"github.com/udisondev/battlecore/internal/model"
)

// copyFromCreature copies the fields a battler works on during a battle.
func (b *Battler) copyFromCreature(c *model.Creature) {
	b.speciesSymbol = c.Species
	b.form = c.Form
	b.nickname = c.Nickname
	b.ability = c.Ability
	b.nature = c.Nature
	b.iv = c.IV
	b.ev = c.EV
	b.trainerID = c.TrainerID
	b.trainerName = c.TrainerName
	b.stepRemaining = c.StepRemaining
	b.loyalty = c.Loyalty
	b.exp = c.Exp
	b.hp = c.HP
	b.status = c.Status
	b.statusCount = c.StatusCount
	b.itemHolding = c.ItemHolding
	b.capture = c.Capture
	b.gender = c.Gender
	b.skillLearnt = slices.Clone(c.SkillLearnt)
	b.ribbons = slices.Clone(c.Ribbons)
	b.characterID = c.CharacterID
	b.expRate = c.ExpRate
	b.hpRate = c.HPRate
	b.egg = c.Egg
	b.evolveCounter = c.EvolveCounter
	b.pokerus = c.Pokerus
	b.level = c.Level
}

// CopyPropertiesBack writes the persisted subset of battle state into the creature.
// IVs, EVs, nature, nickname, experience, learned moves and everything battle-scoped
// stay untouched.
func (b *Battler) CopyPropertiesBack() {
	c := b.original
	c.Species = b.speciesSymbol
	c.Form = b.form
	c.TrainerID = b.trainerID
	c.TrainerName = b.trainerName
	c.StepRemaining = b.stepRemaining
	c.Loyalty = b.loyalty
	c.HP = b.hp
	c.Status = b.status
	c.StatusCount = b.statusCount
	c.ItemHolding = b.battleItem
	c.Capture = b.capture
	c.Gender = b.gender
	c.CharacterID = b.characterID
	c.HPRate = b.hpRate
	c.EvolveCounter = b.evolveCounter
	c.Pokerus = b.pokerus
}
