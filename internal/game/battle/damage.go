package battle

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/hook"
)

// Damage is the outcome of one damage computation.
type Damage struct {
	HP            int
	Critical      bool
	Effectiveness float64
}

// CalcDamage computes the damage of one pass of move from user on target:
//
//	base   = ((Level*2/5 + 2) * Power * Atk / 50) / Def
//	damage = (base * Mod1 + 2) * Crit * Mod2 * Random/100 * STAB * TE1 * TE2 * TE3 * Mod3
//
// Every multiplication and division truncates toward zero before the next step.
// Random is drawn from [85, 100]. A move that is not ineffective deals at least 1 HP.
//
// Parameters:
//   - critical: the pass is a critical hit (negative attack stages and positive
//     defense stages are ignored, damage scaled by the critical multiplier)
//   - targetCount: number of targets of the action (spread reduction in Mod1)
func (l *Logic) CalcDamage(user, target *Battler, move *Move, critical bool, targetCount int) Damage {
	effectiveness := l.TypeEffectiveness(user, target, move)
	if effectiveness == 0 {
		return Damage{Effectiveness: 0}
	}
	args := DamageArgs{L: l, User: user, Target: target, Move: move, Critical: critical, TargetCount: targetCount}

	power := l.BasePower(user, target, move)
	atk := l.AttackStat(user, target, move, critical)
	def := max(1, l.DefenseStat(user, target, move, critical))

	damage := (user.Level()*2/5 + 2) * power * atk / 50
	damage /= def
	damage = truncMul(damage, l.hooks.Mod1.Fold(args, 1, hook.Product))
	damage += 2
	if critical {
		damage = truncMul(damage, l.rules.CriticalMultiplier)
	}
	damage = truncMul(damage, l.hooks.Mod2.Fold(args, 1, hook.Product))
	damage = damage * l.RandomFactor() / 100
	damage = truncMul(damage, l.Stab(user, target, move))
	for _, te := range l.TypeMultipliers(user, target, move) {
		damage = truncMul(damage, te)
	}
	damage = truncMul(damage, l.hooks.Mod3.Fold(args, 1, hook.Product))

	return Damage{HP: max(1, damage), Critical: critical, Effectiveness: effectiveness}
}

// RandomFactor draws the damage variance in [85, 100].
func (l *Logic) RandomFactor() int {
	return 85 + l.rng.IntN(16)
}

func truncMul(v int, m float64) int {
	if m == 1 {
		return v
	}
	return int(float64(v) * m)
}

// MoveType resolves the type move is used with against target.
func (l *Logic) MoveType(user, target *Battler, move *Move) data.Type {
	if t, _, ok := l.hooks.MoveTypeChange.Run(MoveArgs{L: l, User: user, Target: target, Move: move}); ok {
		return t
	}
	return move.Type()
}

// SingleTypeMultiplier returns how effective moveType is against one type of target,
// letting the overwrite hook answer before the type chart.
func (l *Logic) SingleTypeMultiplier(user, target *Battler, move *Move, moveType, targetType data.Type) float64 {
	args := TypeArgs{L: l, User: user, Target: target, Move: move, MoveType: moveType, TargetType: targetType}
	if m, _, ok := l.hooks.SingleTypeMultiplierOverwrite.Run(args); ok {
		return m
	}
	return data.Effectiveness(moveType, targetType)
}

// TypeMultipliers returns one multiplier per type of target.
func (l *Logic) TypeMultipliers(user, target *Battler, move *Move) []float64 {
	moveType := l.MoveType(user, target, move)
	types := target.Types()
	out := make([]float64, 0, len(types))
	for _, t := range types {
		out = append(out, l.SingleTypeMultiplier(user, target, move, moveType, t))
	}
	return out
}

// TypeEffectiveness is the product of TypeMultipliers.
func (l *Logic) TypeEffectiveness(user, target *Battler, move *Move) float64 {
	product := 1.0
	for _, m := range l.TypeMultipliers(user, target, move) {
		product *= m
	}
	return product
}

// Stab returns the same-type attack bonus.
func (l *Logic) Stab(user, target *Battler, move *Move) float64 {
	moveType := l.MoveType(user, target, move)
	if !user.HasType(moveType) {
		return 1
	}
	for e := range EffectsOf[StabModifier](l.Effects(user)) {
		if m, ok := e.StabMultiplier(l, user, move); ok {
			return m
		}
	}
	return 1.5
}

// BasePower returns the power of the current pass after every base power multiplier.
func (l *Logic) BasePower(user, target *Battler, move *Move) int {
	power := move.Power()
	if p, ok := move.procedure.(PowerCalculator); ok {
		power = p.RealBasePower(l, user, target, move)
	}
	power = truncMul(power, move.powerFactor)
	multiplier := 1.0
	for e := range EffectsOf[BasePowerModifier](l.EffectsVs(user, move, user, target)) {
		multiplier *= e.BasePowerMultiplier(l, user, target, move)
	}
	return max(1, truncMul(power, multiplier))
}

// AttackStat returns the attacking stat of user (atk for physical moves, ats
// otherwise) with its stage and every attack multiplier applied.
func (l *Logic) AttackStat(user, target *Battler, move *Move, critical bool) int {
	stat := data.StatAts
	if move.Physical() {
		stat = data.StatAtk
	}
	stage := user.Stage(stat)
	if critical && stage < 0 {
		stage = 0
	}
	value := truncMul(user.RawStat(stat), data.StageMultiplier(stage))
	multiplier := 1.0
	for e := range EffectsOf[AttackModifier](l.EffectsVs(user, move, user, target)) {
		multiplier *= e.SpAtkMultiplier(l, user, target, move)
	}
	return max(1, truncMul(value, multiplier))
}

// DefenseStat returns the defending stat of target (dfe for physical moves, dfs
// otherwise) with its stage and every defense multiplier applied.
func (l *Logic) DefenseStat(user, target *Battler, move *Move, critical bool) int {
	stat := data.StatDfs
	if move.Physical() {
		stat = data.StatDfe
	}
	stage := target.Stage(stat)
	if critical && stage > 0 {
		stage = 0
	}
	value := truncMul(target.RawStat(stat), data.StageMultiplier(stage))
	multiplier := 1.0
	for e := range EffectsOf[DefenseModifier](l.EffectsVs(user, move, user, target)) {
		multiplier *= e.SpDefMultiplier(l, user, target, move)
	}
	return max(1, truncMul(value, multiplier))
}

// Speed returns the effective speed of b for turn order.
func (l *Logic) Speed(b *Battler) int {
	value := truncMul(b.RawStat(data.StatSpd), b.SpdModifier())
	multiplier := 1.0
	for e := range EffectsOf[SpeedModifier](l.Effects(b)) {
		multiplier *= e.SpdModifier(l, b)
	}
	return truncMul(value, multiplier)
}
