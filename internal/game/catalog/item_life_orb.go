package catalog

import "github.com/udisondev/battlecore/internal/game/battle"

func init() {
	battle.RegisterItem("life_orb", func(holder *battle.Battler, symbol string) battle.Effect {
		return &lifeOrb{multiplierEffect: newMultiplier(holder, symbol, []multiplierRule{rule(kindMod2, sideUser, always(1.3))})}
	})
	battle.RegisterItem("shell_bell", func(holder *battle.Battler, symbol string) battle.Effect {
		return &shellBell{heldEffect: newHeld(holder, symbol, 0)}
	})
}

// lifeOrb boosts damage by 30% and costs 1/10 of the max HP after every action in
// which the holder dealt damage.
type lifeOrb struct {
	multiplierEffect
	dealt bool
}

func (e *lifeOrb) OnPostDamage(_ *battle.Logic, _ int, _, launcher *battle.Battler, move *battle.Move) {
	if launcher == e.holder && move != nil {
		e.dealt = true
	}
}

func (e *lifeOrb) OnPostDamageDeath(l *battle.Logic, hp int, target, launcher *battle.Battler, move *battle.Move) {
	e.OnPostDamage(l, hp, target, launcher, move)
}

func (e *lifeOrb) OnPostActionEvent(l *battle.Logic, user *battle.Battler, _ []*battle.Battler, _ *battle.Move) {
	if user != e.holder || !e.dealt {
		return
	}
	e.dealt = false
	if user.Dead() || user.HasAbility("sheer_force") {
		return
	}
	if chip(l, user, 10) > 0 {
		l.Say("life_orb", "%s lost some of its HP!", user.Name())
	}
}

// shellBell restores 1/8 of the damage its holder dealt during the action.
type shellBell struct {
	heldEffect
	dealt int
}

func (e *shellBell) OnPostDamage(_ *battle.Logic, hp int, target, launcher *battle.Battler, move *battle.Move) {
	if launcher == e.holder && target != e.holder && move != nil {
		e.dealt += hp
	}
}

func (e *shellBell) OnPostDamageDeath(l *battle.Logic, hp int, target, launcher *battle.Battler, move *battle.Move) {
	e.OnPostDamage(l, hp, target, launcher, move)
}

func (e *shellBell) OnPostActionEvent(l *battle.Logic, user *battle.Battler, _ []*battle.Battler, _ *battle.Move) {
	if user != e.holder || e.dealt == 0 {
		return
	}
	dealt := e.dealt
	e.dealt = 0
	if dealt/8 > 0 && l.Heal(user, dealt/8) > 0 {
		l.Say("shell_bell", "%s restored a little HP using its Shell Bell!", user.Name())
	}
}
