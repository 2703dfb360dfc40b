package battle

import (
	"context"

	"github.com/udisondev/battlecore/internal/data"
)

// Procedure implements the move-specific parts of the resolution pipeline.
// Procedures are resolved from the registry by the move's method when the move
// instance is created.
type Procedure interface {
	// HitCount returns the number of damage passes on target.
	HitCount(l *Logic, user, target *Battler, move *Move) int
	// DealEffect applies what the move does to target after its damage passes.
	// dealt is the total HP removed from target (0 for status moves).
	DealEffect(l *Logic, user, target *Battler, move *Move, dealt int)
}

// AccuracyOverrider replaces the accuracy roll (one-hit KO moves).
type AccuracyOverrider interface {
	CheckAccuracy(l *Logic, user, target *Battler, move *Move) (hit, handled bool)
}

// PowerCalculator computes a variable base power.
type PowerCalculator interface {
	RealBasePower(l *Logic, user, target *Battler, move *Move) int
}

// Damager replaces the damage formula (fixed damage, one-hit KO).
type Damager interface {
	Damage(l *Logic, user, target *Battler, move *Move) (hp int, ok bool)
}

// Charger runs before the per-target resolution. Returning true ends the action
// there: the move spent this turn charging.
type Charger interface {
	Charge(l *Logic, user *Battler, targets []*Battler, move *Move) bool
}

// FailureChecker fails the move after PP was spent (rest at full HP, protect chains).
// The procedure emits its own message.
type FailureChecker interface {
	MoveFails(l *Logic, user *Battler, targets []*Battler, move *Move) bool
}

// SelfEffectDealer applies an effect on the user once, after every target was
// processed, if at least one target was hit.
type SelfEffectDealer interface {
	DealSelfEffect(l *Logic, user *Battler, hit []*Battler, move *Move)
}

// PipelineOverride takes over the whole resolution (called moves, placeholders).
type PipelineOverride interface {
	Proceed(ctx context.Context, l *Logic, user *Battler, move *Move, bank, position int) (MoveResult, error)
}

// BasicProcedure is a single damage pass followed by the move's own secondary
// effects (status and stage changes). Status-category moves apply them without a
// chance roll. Catalog procedures embed it.
type BasicProcedure struct{}

func (BasicProcedure) HitCount(*Logic, *Battler, *Battler, *Move) int { return 1 }

func (BasicProcedure) DealEffect(l *Logic, user, target *Battler, move *Move, dealt int) {
	l.ApplySecondaryEffects(user, target, move, dealt)
}

// ApplySecondaryEffects applies the status and the stage changes carried by the move
// data. Damaging moves gate the status and the stage changes by separate effect
// chance rolls, and only when they dealt damage; status moves always apply.
func (l *Logic) ApplySecondaryEffects(user, target *Battler, move *Move, dealt int) {
	tmpl := move.Template()
	if target.Dead() || (tmpl.Status == data.StatusNone && len(tmpl.StatChanges) == 0) {
		return
	}
	if !move.Status() && dealt <= 0 {
		return
	}
	gate := func() bool {
		return move.Status() || l.Roll(l.EffectChance(user, move))
	}
	if tmpl.Status != data.StatusNone && gate() {
		l.StatusChange(tmpl.Status, target, user, move)
	}
	if len(tmpl.StatChanges) > 0 && !target.Dead() && gate() {
		for _, sc := range tmpl.StatChanges {
			l.StatChange(sc.Stat, sc.Amount, target, user, move)
		}
	}
}

// EffectChance returns the secondary-effect chance of move used by user, in percent.
func (l *Logic) EffectChance(user *Battler, move *Move) int {
	chance := float64(move.EffectChance())
	for e := range EffectsOf[EffectChanceModifier](l.Effects(user)) {
		chance *= e.EffectChanceMultiplier(l, user, move)
	}
	return min(100, int(chance))
}

// unimplementedProcedure stands in for methods missing from the registry: the move
// does nothing but say so.
type unimplementedProcedure struct {
	BasicProcedure
	method string
}

func (p *unimplementedProcedure) Proceed(_ context.Context, l *Logic, user *Battler, move *Move, _, _ int) (MoveResult, error) {
	l.logger.Warn("unimplemented move used", "battler", user.Name(), "move", move.Symbol(), "method", p.method)
	l.Say("unimplemented", "%s used %s, but it isn't implemented yet.", user.Name(), DisplayName(move.Symbol()))
	return MoveResult{User: user, Move: move, Failure: FailureUnimplemented}, nil
}
