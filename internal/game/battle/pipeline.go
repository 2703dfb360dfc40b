package battle

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// useOptions tune a pipeline run for moves that are not regular player choices.
type useOptions struct {
	skipUsability bool
	skipPP        bool
	targets       []*Battler // forced targets, nil to resolve from the scope
}

type reflection struct {
	user   *Battler
	move   *Move
	target *Battler
}

// UseMove resolves move used by user, aimed at the battler chosen at (bank, position).
//
// Stages, each of which can end the action:
//  1. usability: fainted or leaving user, no PP, disabled move (the disabling effect
//     supplies the failure message), user-side prevention (sleep, paralysis, flinch)
//  2. target resolution from the move scope
//  3. PP decrement (1, plus pressure of targeted foes)
//  4. targeting failure when no target is alive; PP stays spent
//  5. per target, completely before the next one: prevention (absorbing abilities,
//     protect, type immunity), accuracy, animation (once), damage passes,
//     secondary effects
//  6. post-action hooks, whatever branch was taken
//
// Nothing done before an abort is rolled back. The returned error is only set when
// the visual layer fails (context cancelled); battle rule failures are reported
// in the MoveResult.
func (l *Logic) UseMove(ctx context.Context, user *Battler, move *Move, bank, position int) (MoveResult, error) {
	return l.useMove(ctx, user, move, bank, position, useOptions{})
}

// UseCalledMove runs a move borrowed by another move (metronome): no usability
// check and no PP spent.
func (l *Logic) UseCalledMove(ctx context.Context, user *Battler, move *Move, bank, position int) (MoveResult, error) {
	return l.useMove(ctx, user, move, bank, position, useOptions{skipUsability: true, skipPP: true})
}

// ReflectMove queues move to be bounced back by bouncer onto its original user.
// The reflected move runs right after the current one.
func (l *Logic) ReflectMove(bouncer, originalUser *Battler, move *Move) {
	clone := move.Clone()
	clone.reflected = true
	l.reflections = append(l.reflections, reflection{user: bouncer, move: clone, target: originalUser})
}

func (l *Logic) useMove(ctx context.Context, user *Battler, move *Move, bank, position int, opts useOptions) (MoveResult, error) {
	ctx, span := l.tracer.Start(ctx, "battle.move", trace.WithAttributes(
		attribute.String("battle.id", l.id.String()),
		attribute.Int("battle.turn", l.turn),
		attribute.String("user", user.Name()),
		attribute.String("move", move.Symbol()),
	))
	defer span.End()

	if p, ok := move.procedure.(PipelineOverride); ok {
		return p.Proceed(ctx, l, user, move, bank, position)
	}

	res, err := l.resolve(ctx, user, move, bank, position, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}
	span.SetAttributes(
		attribute.String("failure", res.Failure.String()),
		attribute.Int("damage", res.TotalDamage()),
		attribute.Int("targets", len(res.Targets)),
	)

	for len(l.reflections) > 0 {
		r := l.reflections[0]
		l.reflections = l.reflections[1:]
		if r.user.Dead() || r.target.Dead() {
			continue
		}
		l.Say("magic_bounce", "%s bounced the %s back!", r.user.Name(), DisplayName(r.move.Symbol()))
		if _, err := l.useMove(ctx, r.user, r.move, r.target.bank, r.target.position,
			useOptions{skipUsability: true, skipPP: true, targets: []*Battler{r.target}}); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (l *Logic) resolve(ctx context.Context, user *Battler, move *Move, bank, position int, opts useOptions) (MoveResult, error) {
	res := MoveResult{User: user, Move: move}
	proc := move.procedure
	user.lastBattleTurn = l.turn

	// 1. Usability
	if !opts.skipUsability && !l.CheckUsability(user, move) {
		res.Failure = FailureUsage
		l.postAction(user, nil, move)
		return res, nil
	}

	// 2. Targets
	targets := opts.targets
	if targets == nil {
		targets = l.ResolveTargets(user, move, bank, position)
	}
	last := user.LastMove()
	consecutive := last != nil && last.Move.Symbol() == move.Symbol() && last.Turn == l.turn-1
	user.addMoveHistory(l.turn, move, targets)
	move.markUsed(consecutive)
	l.Say("use_move", "%s used %s!", user.Name(), DisplayName(move.Symbol()))

	// 3. PP
	if !opts.skipPP {
		move.DecrementPP(l.ppCost(user, targets, move))
	}

	// 4. Targeting failure
	if len(targets) == 0 {
		l.Say("no_target", "But there was no target...")
		res.Failure = FailureTargeting
		l.postAction(user, nil, move)
		return res, nil
	}

	if c, ok := proc.(Charger); ok && c.Charge(l, user, targets, move) {
		res.Charging = true
		l.postAction(user, targets, move)
		return res, nil
	}
	if f, ok := proc.(FailureChecker); ok && f.MoveFails(l, user, targets, move) {
		res.Failure = FailureUsage
		l.postAction(user, targets, move)
		return res, nil
	}

	// 5. Per target
	animated := false
	var hit []*Battler
	for _, target := range targets {
		out := TargetOutcome{Target: target}
		switch {
		case target.Dead():
			out.Failure = FailureTargeting
		case user.Dead():
			out.Failure = FailureUsage
		default:
			out.Failure = l.PreventionCheck(user, target, move)
		}
		if out.Failure == FailureNone && !l.AccuracyCheck(user, target, move) {
			l.Say("miss", "%s avoided the attack!", target.Name())
			out.Failure = FailureMiss
		}
		if out.Failure != FailureNone {
			res.Targets = append(res.Targets, out)
			continue
		}

		if !animated {
			if err := l.scene.PlayMoveAnimation(ctx, user, move, targets); err != nil {
				return res, fmt.Errorf("playing animation of %s: %w", move.Symbol(), err)
			}
			animated = true
		}

		if !move.Status() {
			l.damagePasses(user, target, move, len(targets), &out)
		}
		hit = append(hit, target)
		proc.DealEffect(l, user, target, move, out.Damage)
		res.Targets = append(res.Targets, out)
	}

	if len(hit) > 0 {
		if s, ok := proc.(SelfEffectDealer); ok {
			s.DealSelfEffect(l, user, hit, move)
		}
		user.addSuccessfulMoveHistory(l.turn, move, hit)
	} else if len(res.Targets) > 0 {
		res.Failure = res.Targets[0].Failure
	}

	// 6. Post action
	l.postAction(user, targets, move)
	return res, nil
}

// CheckUsability runs the usability stage: it reports whether user may attempt move,
// emitting the failure message otherwise.
func (l *Logic) CheckUsability(user *Battler, move *Move) bool {
	if user.Dead() || !user.OnField() || user.switchRequested {
		return false
	}
	if move.PP() <= 0 {
		l.Say("no_pp", "There's no PP left for %s!", DisplayName(move.Symbol()))
		return false
	}
	args := MoveArgs{L: l, User: user, Move: move}
	if reply, _, ok := l.hooks.MoveDisabledCheck.Run(args); ok && reply != nil {
		reply(l, user, move)
		return false
	}
	if prevented, _, ok := l.hooks.MovePrevention.Run(args); ok && prevented {
		return false
	}
	return true
}

// PreventionCheck decides whether target is shielded from move: target-side
// prevention effects first (absorbing abilities unless the user ignores them,
// protect, magic bounce), then type immunity for damaging moves and for status
// moves flagged to honour it.
func (l *Logic) PreventionCheck(user, target *Battler, move *Move) Failure {
	if user == target {
		return FailureNone
	}
	for e := range EffectsOf[TargetMovePreventer](l.EffectsVs(user, move, target)) {
		if e.OnMovePreventionTarget(l, user, target, move) {
			return FailurePrevented
		}
	}
	if (!move.Status() || move.Flags().TypeImmune) && l.TypeEffectiveness(user, target, move) == 0 {
		l.Say("immune", "It doesn't affect %s...", target.Name())
		return FailureImmune
	}
	return FailureNone
}

func (l *Logic) ppCost(user *Battler, targets []*Battler, move *Move) int {
	cost := 1
	for _, t := range targets {
		if t == user || t.bank == user.bank {
			continue
		}
		for e := range EffectsOf[PPCostModifier](l.EffectsVs(user, move, t)) {
			cost += e.ExtraPPCost(l, user, move)
		}
	}
	return cost
}

func (l *Logic) damagePasses(user, target *Battler, move *Move, targetCount int, out *TargetOutcome) {
	proc := move.procedure
	factors := make([]float64, max(1, proc.HitCount(l, user, target, move)))
	for i := range factors {
		factors[i] = 1
	}
	for e := range EffectsOf[ExtraHitProvider](l.Effects(user)) {
		factors = append(factors, e.ExtraHits(l, user, target, move, targetCount)...)
	}

	for _, factor := range factors {
		if target.Dead() || user.Dead() {
			break
		}
		move.powerFactor = factor
		dmg := l.passDamage(user, target, move, targetCount)
		move.powerFactor = 1

		if dmg.Critical {
			out.Critical = true
			l.Say("critical", "A critical hit!")
		}
		out.Effectiveness = dmg.Effectiveness
		out.Damage += l.DamageChange(dmg.HP, target, user, move)
		out.Hits++
	}

	switch {
	case out.Effectiveness > 1:
		l.Say("super_effective", "It's super effective!")
	case out.Effectiveness > 0 && out.Effectiveness < 1:
		l.Say("not_very_effective", "It's not very effective...")
	}
	if out.Hits > 1 {
		l.Say("hit_count", "Hit %d time(s)!", out.Hits)
	}
}

func (l *Logic) passDamage(user, target *Battler, move *Move, targetCount int) Damage {
	if d, ok := move.procedure.(Damager); ok {
		if hp, ok := d.Damage(l, user, target, move); ok {
			return Damage{HP: hp, Effectiveness: 1}
		}
	}
	critical := l.CriticalHit(user, target, move)
	return l.CalcDamage(user, target, move, critical, targetCount)
}

func (l *Logic) postAction(user *Battler, targets []*Battler, move *Move) {
	l.hooks.PostAction.Run(ActionArgs{L: l, User: user, Targets: targets, Move: move})
}
