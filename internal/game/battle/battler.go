package battle

import (
	"fmt"
	"slices"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/model"
)

// Banks.
const (
	BankAlly  = 0
	BankEnemy = 1
)

// Battler is the in-battle wrapper of a persistent creature.
//
// Fields copied from the creature live here for the duration of the battle; only the
// fields listed in CopyPropertiesBack are written back when the battle ends.
type Battler struct {
	original *model.Creature
	species  *data.SpeciesTemplate

	// Copied in from the creature.
	speciesSymbol string
	form          int
	nickname      string
	ability       string
	nature        string
	iv            model.StatSet
	ev            model.StatSet
	trainerID     int
	trainerName   string
	stepRemaining int
	loyalty       int
	exp           int64
	hp            int
	status        data.Status
	statusCount   int
	itemHolding   string
	capture       model.CaptureInfo
	gender        model.Gender
	skillLearnt   []string
	ribbons       []int
	characterID   string
	expRate       float64
	hpRate        float64
	egg           model.EggInfo
	evolveCounter int
	pokerus       int
	level         int

	// Battle-scoped state.
	stats         model.Stats
	type1         data.Type
	type2         data.Type
	type3         data.Type
	battleAbility string
	battleItem    string
	consumedItem  string
	stages        [data.StatCount]int

	bank       int
	position   int // -1 while in the party
	partyIndex int

	turnCount      int
	lastBattleTurn int
	lastSentTurn   int

	moves []*Move

	moveHistory           []MoveHistory
	successfulMoveHistory []MoveHistory
	damageHistory         []DamageHistory
	statHistory           []StatHistory

	abilityEffect Effect
	itemEffect    Effect
	statusEffect  Effect
	effects       *EffectsHandler

	switchRequested bool
}

// NewBattler wraps a creature for a battle. The creature itself is not modified
// until CopyPropertiesBack.
func NewBattler(c *model.Creature, bank, partyIndex int) (*Battler, error) {
	species := data.GetSpecies(c.Species)
	if species == nil {
		return nil, fmt.Errorf("battler %q: %w: %s", c.Name(), ErrUnknownSpecies, c.Species)
	}
	b := &Battler{
		original:       c,
		species:        species,
		bank:           bank,
		position:       -1,
		partyIndex:     partyIndex,
		lastBattleTurn: -1,
		lastSentTurn:   -1,
		effects:        NewEffectsHandler(),
	}
	b.copyFromCreature(c)
	b.stats = model.CalcStats(species.Base, b.level, b.iv, b.ev, data.GetNature(b.nature))
	b.type1, b.type2 = species.Type1, species.Type2
	b.battleAbility = b.ability
	b.battleItem = b.itemHolding
	b.SetHP(b.hp)

	for _, slot := range c.Moves {
		if data.GetMove(slot.Symbol) == nil {
			return nil, fmt.Errorf("battler %q: %w: %s", c.Name(), ErrUnknownMove, slot.Symbol)
		}
		b.moves = append(b.moves, NewMove(slot.Symbol, slot.PP, slot.PPMax))
	}

	b.abilityEffect = createAbilityEffect(b, b.battleAbility)
	b.itemEffect = createItemEffect(b, b.battleItem)
	if b.status.IsMajor() {
		b.statusEffect = createStatusEffect(b, b.status)
	}
	return b, nil
}

// Original returns the wrapped creature.
func (b *Battler) Original() *model.Creature { return b.original }

// Species returns the species symbol.
func (b *Battler) Species() string { return b.speciesSymbol }

// SpeciesTemplate returns the species reference data.
func (b *Battler) SpeciesTemplate() *data.SpeciesTemplate { return b.species }

// Name returns the display name.
func (b *Battler) Name() string {
	if b.nickname != "" {
		return b.nickname
	}
	return DisplayName(b.speciesSymbol)
}

func (b *Battler) String() string {
	return fmt.Sprintf("%s[%d:%d]", b.Name(), b.bank, b.position)
}

func (b *Battler) Level() int           { return b.level }
func (b *Battler) Form() int            { return b.form }
func (b *Battler) Nature() string       { return b.nature }
func (b *Battler) Gender() model.Gender { return b.gender }
func (b *Battler) TrainerID() int       { return b.trainerID }
func (b *Battler) Loyalty() int         { return b.loyalty }
func (b *Battler) Bank() int            { return b.bank }
func (b *Battler) Position() int        { return b.position }
func (b *Battler) PartyIndex() int      { return b.partyIndex }

// OnField reports whether the battler currently occupies a position.
func (b *Battler) OnField() bool { return b.position >= 0 }

// --- types --------------------------------------------------------------------------

func (b *Battler) Type1() data.Type { return b.type1 }
func (b *Battler) Type2() data.Type { return b.type2 }
func (b *Battler) Type3() data.Type { return b.type3 }

// Types returns the non-empty types of the battler.
func (b *Battler) Types() []data.Type {
	types := make([]data.Type, 0, 3)
	for _, t := range []data.Type{b.type1, b.type2, b.type3} {
		if t != data.TypeNone && !slices.Contains(types, t) {
			types = append(types, t)
		}
	}
	return types
}

// HasType reports whether one of the battler types is t.
func (b *Battler) HasType(t data.Type) bool {
	return t != data.TypeNone && (b.type1 == t || b.type2 == t || b.type3 == t)
}

// SetTypes overrides the battler types until it leaves the field.
func (b *Battler) SetTypes(t1, t2 data.Type) {
	b.type1, b.type2 = t1, t2
}

// SetType3 sets the added third type.
func (b *Battler) SetType3(t data.Type) { b.type3 = t }

// --- HP -----------------------------------------------------------------------------

func (b *Battler) HP() int         { return b.hp }
func (b *Battler) MaxHP() int      { return b.stats.HP }
func (b *Battler) HPRate() float64 { return b.hpRate }

// SetHP sets the HP clamped to [0, MaxHP] and keeps the HP rate in sync.
func (b *Battler) SetHP(hp int) {
	b.hp = max(0, min(hp, b.stats.HP))
	if b.stats.HP > 0 {
		b.hpRate = float64(b.hp) / float64(b.stats.HP)
	}
}

// Dead reports whether the battler fainted.
func (b *Battler) Dead() bool { return b.hp <= 0 }

// Alive reports whether the battler can still fight.
func (b *Battler) Alive() bool { return b.hp > 0 }

// --- stats and stages ---------------------------------------------------------------

// RawStat returns the permanent value of a stat (accuracy and evasion have none).
func (b *Battler) RawStat(stat data.Stat) int {
	switch stat {
	case data.StatAtk:
		return b.stats.Atk
	case data.StatDfe:
		return b.stats.Dfe
	case data.StatSpd:
		return b.stats.Spd
	case data.StatAts:
		return b.stats.Ats
	case data.StatDfs:
		return b.stats.Dfs
	}
	return 0
}

// Stage returns the current stage of a stat.
func (b *Battler) Stage(stat data.Stat) int { return b.stages[stat] }

// ChangeStat moves a stage by amount, clamped to [-6, 6], and returns the change
// actually applied. A zero result means the stage could not move further.
func (b *Battler) ChangeStat(stat data.Stat, amount int) int {
	current := b.stages[stat]
	next := data.ClampStage(current + amount)
	b.stages[stat] = next
	return next - current
}

// SetStage forces a stage (clamped).
func (b *Battler) SetStage(stat data.Stat, stage int) {
	b.stages[stat] = data.ClampStage(stage)
}

// ResetStages puts every stage back to 0.
func (b *Battler) ResetStages() {
	b.stages = [data.StatCount]int{}
}

// StageMultiplier returns the stage multiplier of a stat, using the accuracy table
// for accuracy and evasion.
func (b *Battler) StageMultiplier(stat data.Stat) float64 {
	if stat == data.StatAcc || stat == data.StatEva {
		return data.AccuracyStageMultiplier(b.stages[stat])
	}
	return data.StageMultiplier(b.stages[stat])
}

func (b *Battler) AtkModifier() float64 { return b.StageMultiplier(data.StatAtk) }
func (b *Battler) DfeModifier() float64 { return b.StageMultiplier(data.StatDfe) }
func (b *Battler) SpdModifier() float64 { return b.StageMultiplier(data.StatSpd) }
func (b *Battler) AtsModifier() float64 { return b.StageMultiplier(data.StatAts) }
func (b *Battler) DfsModifier() float64 { return b.StageMultiplier(data.StatDfs) }

// --- status -------------------------------------------------------------------------

func (b *Battler) Status() data.Status { return b.status }
func (b *Battler) StatusCount() int    { return b.statusCount }

// SetStatusCount changes the sleep turns or the toxic counter.
func (b *Battler) SetStatusCount(n int) { b.statusCount = n }

// StatusEffect returns the effect backing the major status, or nil.
func (b *Battler) StatusEffect() Effect { return b.statusEffect }

func (b *Battler) setStatus(status data.Status, count int) {
	if b.statusEffect != nil {
		b.statusEffect.Kill()
		b.statusEffect = nil
	}
	b.status = status
	b.statusCount = count
	if status.IsMajor() {
		b.statusEffect = createStatusEffect(b, status)
	}
}

func (b *Battler) Poisoned() bool {
	return b.status == data.StatusPoison || b.status == data.StatusToxic
}
func (b *Battler) Paralyzed() bool { return b.status == data.StatusParalysis }
func (b *Battler) Burnt() bool     { return b.status == data.StatusBurn }
func (b *Battler) Asleep() bool    { return b.status == data.StatusSleep }
func (b *Battler) Frozen() bool    { return b.status == data.StatusFreeze }
func (b *Battler) HasStatus() bool { return b.status != data.StatusNone }
func (b *Battler) Confused() bool  { return b.effects.Has("confusion") }
func (b *Battler) Attracted() bool { return b.effects.Has("attract") }

// --- ability and item ---------------------------------------------------------------

// Ability returns the battle ability, which may differ from the creature's.
func (b *Battler) Ability() string { return b.battleAbility }

// HasAbility reports whether the battle ability is symbol.
func (b *Battler) HasAbility(symbol string) bool {
	return b.battleAbility != "" && b.battleAbility == symbol
}

// AbilityEffect returns the effect of the battle ability, or nil.
func (b *Battler) AbilityEffect() Effect { return b.abilityEffect }

// SetAbility replaces the battle ability and its effect. The creature keeps its own.
func (b *Battler) SetAbility(symbol string) {
	if b.abilityEffect != nil {
		b.abilityEffect.Kill()
	}
	b.battleAbility = symbol
	b.abilityEffect = createAbilityEffect(b, symbol)
}

// Item returns the held item in battle.
func (b *Battler) Item() string { return b.battleItem }

// HasItem reports whether the battler holds symbol.
func (b *Battler) HasItem(symbol string) bool {
	return b.battleItem != "" && b.battleItem == symbol
}

// HoldsItem reports whether the battler holds anything.
func (b *Battler) HoldsItem() bool { return b.battleItem != "" }

// ConsumedItem returns the last item the battler consumed in this battle.
func (b *Battler) ConsumedItem() string { return b.consumedItem }

// ItemEffect returns the effect of the held item, or nil.
func (b *Battler) ItemEffect() Effect { return b.itemEffect }

// SetItem replaces the held item and its effect.
func (b *Battler) SetItem(symbol string) {
	if b.itemEffect != nil {
		b.itemEffect.Kill()
	}
	b.battleItem = symbol
	b.itemEffect = createItemEffect(b, symbol)
}

// Effects returns the volatile effects of the battler.
func (b *Battler) Effects() *EffectsHandler { return b.effects }

// --- moves --------------------------------------------------------------------------

// Moves returns the moveset.
func (b *Battler) Moves() []*Move { return b.moves }

// Move returns the move at index, or nil.
func (b *Battler) Move(index int) *Move {
	if index < 0 || index >= len(b.moves) {
		return nil
	}
	return b.moves[index]
}

// FindMove returns the move with the given symbol, or nil.
func (b *Battler) FindMove(symbol string) *Move {
	for _, m := range b.moves {
		if m.Symbol() == symbol {
			return m
		}
	}
	return nil
}

// HasUsableMove reports whether at least one move has PP left.
func (b *Battler) HasUsableMove() bool {
	return slices.ContainsFunc(b.moves, func(m *Move) bool { return m.PP() > 0 })
}

// --- turn counters ------------------------------------------------------------------

// TurnCount is the number of turn boundaries survived since it was sent in.
func (b *Battler) TurnCount() int      { return b.turnCount }
func (b *Battler) LastBattleTurn() int { return b.lastBattleTurn }
func (b *Battler) LastSentTurn() int   { return b.lastSentTurn }

// SwitchRequested reports whether an effect asked the battler to leave the field.
func (b *Battler) SwitchRequested() bool { return b.switchRequested }

// ResetForSwitch clears everything that does not survive leaving the field:
// volatile effects, stages, turn counters, type changes and the battle ability.
// The major status, HP and the held item stay.
func (b *Battler) ResetForSwitch() {
	b.effects.Clear()
	b.ResetStages()
	b.turnCount = 0
	b.lastBattleTurn = -1
	b.switchRequested = false
	b.type1, b.type2, b.type3 = b.species.Type1, b.species.Type2, data.TypeNone
	if b.battleAbility != b.ability {
		b.SetAbility(b.ability)
	}
	if b.status == data.StatusToxic {
		b.statusCount = 0
	}
	for _, m := range b.moves {
		m.resetUsage()
	}
}
