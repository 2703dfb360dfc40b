package battle

import "github.com/udisondev/battlecore/internal/data"

// Effect is a unit of persistent or transient modification attached either to a
// battler (ability, item, status, volatile) or to the field (weather, terrain,
// bank screens).
//
// The core asks effects questions through the optional interfaces below; an effect
// implements only the ones it cares about and everything else is a no-op.
type Effect interface {
	Name() string
	Dead() bool
	Kill()
}

// BaseEffect provides name, death flag and an optional turn counter.
// Embed it by value in concrete effects.
type BaseEffect struct {
	name    string
	dead    bool
	counter int // -1: no counter
}

// NewBaseEffect returns a base with a turn counter; turns <= 0 means the effect
// lasts until removed.
func NewBaseEffect(name string, turns int) BaseEffect {
	if turns <= 0 {
		turns = -1
	}
	return BaseEffect{name: name, counter: turns}
}

func (e *BaseEffect) Name() string { return e.name }
func (e *BaseEffect) Dead() bool   { return e.dead }
func (e *BaseEffect) Kill()        { e.dead = true }

// Counter returns the remaining turns, -1 if the effect has no counter.
func (e *BaseEffect) Counter() int { return e.counter }

// SetCounter changes the remaining turns.
func (e *BaseEffect) SetCounter(turns int) { e.counter = turns }

// UpdateCounter decrements the counter and kills the effect when it reaches zero.
// Returns true when this call expired the effect.
func (e *BaseEffect) UpdateCounter() bool {
	if e.dead || e.counter <= 0 {
		return false
	}
	e.counter--
	if e.counter == 0 {
		e.dead = true
		return true
	}
	return false
}

// Counted is implemented by effects that expire after a number of turn boundaries.
type Counted interface {
	UpdateCounter() bool
}

// Expirer reacts to its counter reaching zero.
type Expirer interface {
	OnExpire(l *Logic)
}

// Refresher accepts a re-application of an effect with the same name.
// Returning false rejects the new instance.
type Refresher interface {
	Refresh(l *Logic, incoming Effect) bool
}

// --- move resolution -------------------------------------------------------------

// MoveTypeChanger overrides the type a move is resolved with.
type MoveTypeChanger interface {
	OnMoveTypeChange(l *Logic, user, target *Battler, move *Move) (data.Type, bool)
}

// FailureReply is produced by a disabling effect and shows why the move failed.
type FailureReply func(l *Logic, user *Battler, move *Move)

// MoveDisabler disables moves before they are attempted.
type MoveDisabler interface {
	OnMoveDisabledCheck(l *Logic, user *Battler, move *Move) FailureReply
}

// UserMovePreventer blocks a move on the user side (sleep, paralysis, flinch, gravity).
// Returning true prevents the move; the effect emits its own message.
type UserMovePreventer interface {
	OnMovePreventionUser(l *Logic, user *Battler, move *Move) bool
}

// TargetMovePreventer blocks a move for one target (protect, absorbing abilities).
type TargetMovePreventer interface {
	OnMovePreventionTarget(l *Logic, user, target *Battler, move *Move) bool
}

// PPCostModifier adds PP spent by a move aimed at the holder (pressure).
type PPCostModifier interface {
	ExtraPPCost(l *Logic, user *Battler, move *Move) int
}

// HitChanceModifier multiplies the hit chance before the accuracy roll.
type HitChanceModifier interface {
	ChanceOfHitMultiplier(l *Logic, user, target *Battler, move *Move) float64
}

// AccuracyBypasser makes every move of or against its holder hit (no guard).
type AccuracyBypasser interface {
	BypassesAccuracy(l *Logic, user, target *Battler, move *Move) bool
}

// OutOfReach marks a semi-invulnerable battler.
type OutOfReach interface {
	ReachableBy(move *Move) bool
}

// CriticalBooster adds critical stages.
type CriticalBooster interface {
	CriticalStageBonus(l *Logic, user, target *Battler, move *Move) int
}

// BasePowerModifier multiplies a move's base power.
type BasePowerModifier interface {
	BasePowerMultiplier(l *Logic, user, target *Battler, move *Move) float64
}

// AttackModifier multiplies the attacking stat (atk or ats).
type AttackModifier interface {
	SpAtkMultiplier(l *Logic, user, target *Battler, move *Move) float64
}

// DefenseModifier multiplies the defending stat (dfe or dfs).
type DefenseModifier interface {
	SpDefMultiplier(l *Logic, user, target *Battler, move *Move) float64
}

// Mod1Modifier contributes to Mod1 (before the critical multiplier).
type Mod1Modifier interface {
	Mod1Multiplier(l *Logic, user, target *Battler, move *Move) float64
}

// Mod2Modifier contributes to Mod2 (after the critical multiplier).
type Mod2Modifier interface {
	Mod2Multiplier(l *Logic, user, target *Battler, move *Move) float64
}

// Mod3Modifier contributes to Mod3 (after type effectiveness).
type Mod3Modifier interface {
	Mod3Multiplier(l *Logic, user, target *Battler, move *Move) float64
}

// StabModifier replaces the 1.5 same-type bonus.
type StabModifier interface {
	StabMultiplier(l *Logic, user *Battler, move *Move) (float64, bool)
}

// EffectChanceModifier scales the secondary-effect chance of the holder's moves.
type EffectChanceModifier interface {
	EffectChanceMultiplier(l *Logic, user *Battler, move *Move) float64
}

// ExtraHitProvider adds damage passes after the regular hits. Each returned value is
// the power factor of one extra pass.
type ExtraHitProvider interface {
	ExtraHits(l *Logic, user, target *Battler, move *Move, targetCount int) []float64
}

// SpeedModifier multiplies the holder's speed for turn order.
type SpeedModifier interface {
	SpdModifier(l *Logic, holder *Battler) float64
}

// PriorityModifier changes the priority bracket of the holder's move.
type PriorityModifier interface {
	PriorityBonus(l *Logic, holder *Battler, move *Move) int
}

// Grounding tells whether a battler touches the ground.
type Grounding int8

const (
	GroundNoOpinion Grounding = iota
	GroundForced              // gravity, iron ball, smack down, roost
	GroundLifted              // levitate, air balloon, magnet rise
)

// GroundingEffect answers the grounded question for one battler.
type GroundingEffect interface {
	Grounding(l *Logic, b *Battler) Grounding
}

// --- handlers ---------------------------------------------------------------------

// DamageVerdict is the answer of a damage-prevention effect.
type DamageVerdict int8

const (
	DamageAllowed DamageVerdict = iota
	DamageChanged
	DamagePrevented
)

// DamagePreventer may cancel or change HP loss before it is applied.
type DamagePreventer interface {
	OnDamagePrevention(l *Logic, hp int, target, launcher *Battler, move *Move) (int, DamageVerdict)
}

// PostDamageReactor reacts to HP loss of a surviving target.
type PostDamageReactor interface {
	OnPostDamage(l *Logic, hp int, target, launcher *Battler, move *Move)
}

// PostDamageDeathReactor reacts to HP loss that knocked the target out.
type PostDamageDeathReactor interface {
	OnPostDamageDeath(l *Logic, hp int, target, launcher *Battler, move *Move)
}

// StatChangeAdjuster rewrites the power of a stage change aimed at its holder
// (contrary, simple).
type StatChangeAdjuster interface {
	OnStatChangeModify(l *Logic, stat data.Stat, power int, target, launcher *Battler, move *Move) int
}

// StatChangePreventer blocks a stage change.
type StatChangePreventer interface {
	OnStatChangePrevention(l *Logic, stat data.Stat, power int, target, launcher *Battler, move *Move) bool
}

// StatChangeReactor runs after a stage change was applied.
type StatChangeReactor interface {
	OnStatChangePost(l *Logic, stat data.Stat, delta int, target, launcher *Battler, move *Move)
}

// StatusPreventer blocks a status before it is applied.
type StatusPreventer interface {
	OnStatusPrevention(l *Logic, status data.Status, target, launcher *Battler, move *Move) bool
}

// StatusReactor runs after a status was applied or cured.
type StatusReactor interface {
	OnStatusChangePost(l *Logic, status data.Status, target, launcher *Battler, move *Move)
}

// --- turn events ------------------------------------------------------------------

// EndTurnReactor runs once per turn boundary.
type EndTurnReactor interface {
	OnEndTurnEvent(l *Logic, battlers []*Battler)
}

// SwitchReactor runs when a battler leaves (who) and another enters (with).
// who is nil when a battler is sent in at battle start or after a faint.
type SwitchReactor interface {
	OnSwitchEvent(l *Logic, who, with *Battler)
}

// PostActionReactor runs after every move action, whatever branch it took.
type PostActionReactor interface {
	OnPostActionEvent(l *Logic, user *Battler, targets []*Battler, move *Move)
}

// ForcedMoveProvider forces the holder's next action (charge turn of fly/dig).
type ForcedMoveProvider interface {
	ForcedMove() (move *Move, bank, position int)
}

// EvasionIgnorer makes the accuracy roll ignore the target's raised evasion
// (keen eye on the user, foresight on the target).
type EvasionIgnorer interface {
	IgnoresEvasion(l *Logic, user, target *Battler, move *Move) bool
}

// CriticalBlocker prevents critical hits against its holder (battle armor).
type CriticalBlocker interface {
	BlocksCritical(l *Logic, user, target *Battler, move *Move) bool
}
