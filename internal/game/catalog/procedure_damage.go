package catalog

import (
	"log/slog"

	"github.com/udisondev/battlecore/internal/game/battle"
)

func init() {
	battle.RegisterMoveProcedure("s_self_stat", func() battle.Procedure { return selfStatProcedure{} })
	battle.RegisterMoveProcedure("s_multi_hit", func() battle.Procedure { return multiHitProcedure{} })
	battle.RegisterMoveProcedure("s_recoil", func() battle.Procedure { return recoilProcedure{} })
	battle.RegisterMoveProcedure("s_drain", func() battle.Procedure { return drainProcedure{} })
	battle.RegisterMoveProcedure("s_2turns", func() battle.Procedure { return twoTurnProcedure{} })
	battle.RegisterMoveProcedure("s_ohko", func() battle.Procedure { return ohkoProcedure{} })
	battle.RegisterMoveProcedure("s_struggle", func() battle.Procedure { return struggleProcedure{} })
	battle.RegisterMoveProcedure("s_smack_down", func() battle.Procedure { return smackDownProcedure{} })
	battle.RegisterMoveProcedure("s_fixed_damage", func() battle.Procedure { return fixedDamageProcedure{} })
}

// selfStatProcedure applies the move's stage changes to the user once, after
// every target was hit (close combat, overheat).
type selfStatProcedure struct {
	battle.BasicProcedure
}

func (selfStatProcedure) DealEffect(*battle.Logic, *battle.Battler, *battle.Battler, *battle.Move, int) {
}

func (selfStatProcedure) DealSelfEffect(l *battle.Logic, user *battle.Battler, _ []*battle.Battler, move *battle.Move) {
	for _, sc := range move.Template().StatChanges {
		l.StatChange(sc.Stat, sc.Amount, user, user, move)
	}
}

// multiHitProcedure hits hit_min..hit_max times. A 2-5 range lands 2 and 3 hits
// 35% of the time each, 4 and 5 hits 15% each.
type multiHitProcedure struct {
	battle.BasicProcedure
}

func (multiHitProcedure) HitCount(l *battle.Logic, _, _ *battle.Battler, move *battle.Move) int {
	lo, hi := move.Template().HitMin, move.Template().HitMax
	if hi <= lo {
		return max(1, lo)
	}
	if lo == 2 && hi == 5 {
		switch r := l.RNG().IntN(100); {
		case r < 35:
			return 2
		case r < 70:
			return 3
		case r < 85:
			return 4
		default:
			return 5
		}
	}
	return l.RandomRange(lo, hi)
}

// recoilProcedure hurts the user by 1/recoil of the damage dealt.
type recoilProcedure struct {
	battle.BasicProcedure
}

func (p recoilProcedure) DealEffect(l *battle.Logic, user, target *battle.Battler, move *battle.Move, dealt int) {
	p.BasicProcedure.DealEffect(l, user, target, move, dealt)
	n := move.Template().Recoil
	if dealt <= 0 || n <= 0 || user.HasAbility("rock_head") {
		return
	}
	if l.DamageChange(max(1, dealt/n), user, nil, nil) > 0 {
		l.Say("recoil", "%s is damaged by recoil!", user.Name())
	}
}

// drainProcedure heals the user by drain% of the damage dealt.
type drainProcedure struct {
	battle.BasicProcedure
}

func (p drainProcedure) DealEffect(l *battle.Logic, user, target *battle.Battler, move *battle.Move, dealt int) {
	p.BasicProcedure.DealEffect(l, user, target, move, dealt)
	if dealt <= 0 || user.Dead() {
		return
	}
	if l.Heal(user, max(1, dealt*move.Template().Drain/100)) > 0 {
		l.Say("drain", "%s had its energy drained!", target.Name())
	}
}

// twoTurnProcedure charges on the first turn, hiding the user, and strikes on the
// forced second turn.
type twoTurnProcedure struct {
	battle.BasicProcedure
}

var chargeTexts = map[string]string{
	"fly": "%s flew up high!",
	"dig": "%s burrowed its way under the ground!",
}

func (twoTurnProcedure) Charge(l *battle.Logic, user *battle.Battler, targets []*battle.Battler, move *battle.Move) bool {
	if e, ok := user.Effects().Get("two_turn").(*twoTurnEffect); ok && e.move.Symbol() == move.Symbol() {
		user.Effects().Remove("two_turn")
		return false
	}
	user.Effects().Add(l, newTwoTurn(user, move, targets[0], l.Turn()))
	text, ok := chargeTexts[move.Symbol()]
	if !ok {
		text = "%s is charging up!"
	}
	l.Say("charge", text, user.Name())
	slog.Debug("charging move", "battler", user.Name(), "move", move.Symbol())
	return true
}

// ohkoProcedure knocks the target out in one hit. It never hits a higher-level
// target; otherwise the chance is accuracy + level difference.
type ohkoProcedure struct {
	battle.BasicProcedure
}

func (ohkoProcedure) CheckAccuracy(l *battle.Logic, user, target *battle.Battler, move *battle.Move) (bool, bool) {
	if target.Level() > user.Level() {
		return false, true
	}
	for e := range battle.EffectsOf[battle.OutOfReach](l.Effects(target)) {
		if !e.ReachableBy(move) {
			return false, true
		}
	}
	return l.Roll(move.Accuracy() + user.Level() - target.Level()), true
}

func (ohkoProcedure) Damage(_ *battle.Logic, _, target *battle.Battler, _ *battle.Move) (int, bool) {
	return target.HP(), true
}

func (ohkoProcedure) DealEffect(l *battle.Logic, _, target *battle.Battler, _ *battle.Move, _ int) {
	if target.Dead() {
		l.Say("ohko", "It's a one-hit KO!")
	}
}

// struggleProcedure is the typeless fallback move; the user loses 1/4 of its max HP.
type struggleProcedure struct {
	battle.BasicProcedure
}

func (struggleProcedure) DealEffect(l *battle.Logic, user, _ *battle.Battler, _ *battle.Move, _ int) {
	if user.Dead() {
		return
	}
	if l.DamageChange(max(1, user.MaxHP()/4), user, user, nil) > 0 {
		l.Say("recoil", "%s is damaged by recoil!", user.Name())
	}
}

// smackDownProcedure knocks an airborne target to the ground for the rest of its
// stay on the field.
type smackDownProcedure struct {
	battle.BasicProcedure
}

func (p smackDownProcedure) DealEffect(l *battle.Logic, user, target *battle.Battler, move *battle.Move, dealt int) {
	p.BasicProcedure.DealEffect(l, user, target, move, dealt)
	if dealt <= 0 || target.Dead() || target.Effects().Has("smack_down") {
		return
	}
	airborne := !l.IsGrounded(target, user, move)
	down := bringDown(target)
	if !airborne && !down {
		return
	}
	target.Effects().Add(l, &groundedEffect{heldEffect: newHeld(target, "smack_down", 0)})
	l.Say("smack_down", "%s fell straight down!", target.Name())
}

// fixedDamageProcedure removes a fixed amount of HP whatever the stats.
type fixedDamageProcedure struct {
	battle.BasicProcedure
}

func (fixedDamageProcedure) Damage(_ *battle.Logic, _, _ *battle.Battler, move *battle.Move) (int, bool) {
	return move.Template().FixedDamage, true
}
