package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

// maxProtectChain caps the 1/3^n odds of chaining protect.
const maxProtectChain = 6

func init() {
	battle.RegisterMoveProcedure("s_heal", func() battle.Procedure { return healProcedure{} })
	battle.RegisterMoveProcedure("s_roost", func() battle.Procedure { return roostProcedure{} })
	battle.RegisterMoveProcedure("s_rest", func() battle.Procedure { return restProcedure{} })
	battle.RegisterMoveProcedure("s_protect", func() battle.Procedure { return protectProcedure{} })
	battle.RegisterMoveProcedure("s_identify", func() battle.Procedure { return identifyProcedure{} })
	battle.RegisterMoveProcedure("s_magnet_rise", func() battle.Procedure { return magnetRiseProcedure{} })
	battle.RegisterMoveProcedure("s_taunt", func() battle.Procedure { return tauntProcedure{} })
	battle.RegisterMoveProcedure("s_splash", func() battle.Procedure { return splashProcedure{} })
}

func failed(l *battle.Logic) {
	l.Say("move_failed", "But it failed!")
}

// healProcedure restores heal% of the user's max HP.
type healProcedure struct {
	battle.BasicProcedure
}

func (healProcedure) MoveFails(l *battle.Logic, user *battle.Battler, _ []*battle.Battler, _ *battle.Move) bool {
	if user.HP() < user.MaxHP() {
		return false
	}
	l.Say("hp_full", "%s's HP is full!", user.Name())
	return true
}

func (healProcedure) DealEffect(l *battle.Logic, user, _ *battle.Battler, move *battle.Move, _ int) {
	if l.Heal(user, max(1, user.MaxHP()*move.Template().Heal/100)) > 0 {
		l.Say("hp_restored", "%s's HP was restored.", user.Name())
	}
}

// roostProcedure heals like recover and grounds a flying user until the end of
// the turn.
type roostProcedure struct {
	healProcedure
}

func (p roostProcedure) DealEffect(l *battle.Logic, user, target *battle.Battler, move *battle.Move, dealt int) {
	p.healProcedure.DealEffect(l, user, target, move, dealt)
	if user.HasType(data.TypeFlying) && !user.Effects().Has("roost") {
		user.Effects().Add(l, newRoost(user))
	}
}

// restProcedure puts the user to sleep for two turns and fully heals it.
type restProcedure struct {
	battle.BasicProcedure
}

func (restProcedure) MoveFails(l *battle.Logic, user *battle.Battler, _ []*battle.Battler, move *battle.Move) bool {
	switch {
	case user.HP() >= user.MaxHP():
		l.Say("hp_full", "%s's HP is full!", user.Name())
		return true
	case user.Asleep() || !l.CanInflictStatus(data.StatusSleep, user, user, move):
		failed(l)
		return true
	}
	return false
}

func (restProcedure) DealEffect(l *battle.Logic, user, _ *battle.Battler, move *battle.Move, _ int) {
	l.ApplyStatus(data.StatusSleep, user, user, move, battle.StatusOptions{Force: true, Turns: 2})
	l.Say("rest", "%s slept and became healthy!", user.Name())
	l.Heal(user, user.MaxHP())
}

// protectProcedure shields the user for the turn. Chained uses succeed with
// 1/3^n odds, n being the number of successful protections in a row.
type protectProcedure struct {
	battle.BasicProcedure
}

func isProtection(m *battle.Move) bool {
	return m.Method() == "s_protect"
}

func (protectProcedure) MoveFails(l *battle.Logic, user *battle.Battler, _ []*battle.Battler, _ *battle.Move) bool {
	chain := 0
	if last := user.LastSuccessfulMove(); last != nil && last.Turn == l.Turn()-1 {
		chain = min(user.ConsecutiveSuccesses(isProtection), maxProtectChain)
	}
	odds := 1
	for range chain {
		odds *= 3
	}
	if odds == 1 || l.RNG().IntN(odds) == 0 {
		return false
	}
	failed(l)
	return true
}

func (protectProcedure) DealEffect(l *battle.Logic, user, _ *battle.Battler, _ *battle.Move, _ int) {
	user.Effects().Add(l, &protectEffect{heldEffect: newHeld(user, "protect", 1)})
	l.Say("protect", "%s protected itself!", user.Name())
}

// identifyProcedure is foresight and miracle eye: the target's evasion is ignored
// and its type immunity lifted.
type identifyProcedure struct {
	battle.BasicProcedure
}

func (identifyProcedure) DealEffect(l *battle.Logic, user, target *battle.Battler, move *battle.Move, _ int) {
	target.Effects().Add(l, &identifiedEffect{heldEffect: newHeld(target, move.Symbol(), 0)})
	l.Say("identified", "%s was identified!", target.Name())
}

// magnetRiseProcedure levitates the user for five turns.
type magnetRiseProcedure struct {
	battle.BasicProcedure
}

func (magnetRiseProcedure) MoveFails(l *battle.Logic, user *battle.Battler, _ []*battle.Battler, _ *battle.Move) bool {
	if !user.Effects().Has("magnet_rise") && !user.Effects().Has("smack_down") && !l.Gravity() {
		return false
	}
	failed(l)
	return true
}

func (magnetRiseProcedure) DealEffect(l *battle.Logic, user, _ *battle.Battler, _ *battle.Move, _ int) {
	user.Effects().Add(l, &liftedEffect{heldEffect: newHeld(user, "magnet_rise", magnetRiseTurns)})
	l.Say("magnet_rise", "%s levitated with electromagnetism!", user.Name())
}

// tauntProcedure forbids the target's status moves for three turns.
type tauntProcedure struct {
	battle.BasicProcedure
}

func (tauntProcedure) DealEffect(l *battle.Logic, _, target *battle.Battler, _ *battle.Move, _ int) {
	if target.Dead() || !target.Effects().Add(l, &tauntEffect{heldEffect: newHeld(target, "taunt", tauntTurns)}) {
		failed(l)
		return
	}
	l.Say("taunt", "%s fell for the taunt!", target.Name())
}

type splashProcedure struct {
	battle.BasicProcedure
}

func (splashProcedure) DealEffect(l *battle.Logic, _, _ *battle.Battler, _ *battle.Move, _ int) {
	l.Say("splash", "But nothing happened!")
}
