package battle

import "github.com/udisondev/battlecore/internal/data"

// AccuracyCheck decides whether move hits target. In order:
//   - self-targeted moves always hit
//   - the procedure may decide on its own (one-hit KO moves)
//   - accuracy bypass effects (no guard) make the move hit
//   - a semi-invulnerable target is missed unless the move reaches it
//   - moves with accuracy 0 never miss
//   - otherwise roll [0, 100) against HitChance
//
// A chance of 100 or more hits without consuming a random value.
func (l *Logic) AccuracyCheck(user, target *Battler, move *Move) bool {
	if user == target {
		return true
	}
	if p, ok := move.procedure.(AccuracyOverrider); ok {
		if hit, handled := p.CheckAccuracy(l, user, target, move); handled {
			return hit
		}
	}
	for e := range EffectsOf[AccuracyBypasser](l.Effects(user, target)) {
		if e.BypassesAccuracy(l, user, target, move) {
			return true
		}
	}
	for e := range EffectsOf[OutOfReach](l.Effects(target)) {
		if !e.ReachableBy(move) {
			return false
		}
	}
	if move.Accuracy() <= 0 {
		return true
	}
	chance := l.HitChance(user, target, move)
	if chance >= 100 {
		return true
	}
	return float64(l.rng.IntN(100)) < chance
}

// HitChance is base_accuracy * acc_stage(user) / eva_stage(target), multiplied by
// every chance_of_hit multiplier of the user, the target and the field.
func (l *Logic) HitChance(user, target *Battler, move *Move) float64 {
	evasion := target.Stage(data.StatEva)
	if evasion > 0 {
		for e := range EffectsOf[EvasionIgnorer](l.EffectsVs(user, move, user, target)) {
			if e.IgnoresEvasion(l, user, target, move) {
				evasion = 0
				break
			}
		}
	}
	chance := float64(move.Accuracy()) *
		data.AccuracyStageMultiplier(user.Stage(data.StatAcc)) /
		data.AccuracyStageMultiplier(evasion)
	for e := range EffectsOf[HitChanceModifier](l.EffectsVs(user, move, user, target)) {
		chance *= e.ChanceOfHitMultiplier(l, user, target, move)
	}
	return chance
}

// CriticalHit rolls for a critical hit. The critical stage is the move's own rate plus
// every booster of the user; blockers on the target cancel the roll entirely.
func (l *Logic) CriticalHit(user, target *Battler, move *Move) bool {
	for e := range EffectsOf[CriticalBlocker](l.EffectsVs(user, move, target)) {
		if e.BlocksCritical(l, user, target, move) {
			return false
		}
	}
	stage := move.CriticalRate()
	for e := range EffectsOf[CriticalBooster](l.Effects(user)) {
		stage += e.CriticalStageBonus(l, user, target, move)
	}
	return l.rng.IntN(data.CriticalRate(stage)) == 0
}
