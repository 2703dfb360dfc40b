package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

const contactStatusChance = 30

// contactStatuses inflict a status on attackers making contact, 30% of the time.
var contactStatuses = map[string]data.Status{
	"static":       data.StatusParalysis,
	"flame_body":   data.StatusBurn,
	"poison_point": data.StatusPoison,
}

func init() {
	for symbol, status := range contactStatuses {
		battle.RegisterAbility(symbol, func(holder *battle.Battler, sym string) battle.Effect {
			return &contactStatus{heldEffect: newHeld(holder, sym, 0), status: status}
		})
	}
	battle.RegisterAbility("rough_skin", func(holder *battle.Battler, symbol string) battle.Effect {
		return &roughSkin{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterAbility("synchronize", func(holder *battle.Battler, symbol string) battle.Effect {
		return &synchronize{heldEffect: newHeld(holder, symbol, 0)}
	})
}

type contactStatus struct {
	heldEffect
	status data.Status
}

func (e *contactStatus) OnPostDamage(l *battle.Logic, _ int, target, launcher *battle.Battler, move *battle.Move) {
	if target != e.holder || launcher == nil || launcher == target || !contact(move) || launcher.Dead() {
		return
	}
	if !l.Roll(contactStatusChance) {
		return
	}
	if l.CanInflictStatus(e.status, launcher, target, nil) && !launcher.HasStatus() {
		l.Scene().ShowAbility(target)
		l.StatusChange(e.status, launcher, target, nil)
	}
}

// roughSkin hurts attackers making contact by 1/8 of their max HP.
type roughSkin struct {
	heldEffect
}

func (e *roughSkin) OnPostDamage(l *battle.Logic, _ int, target, launcher *battle.Battler, move *battle.Move) {
	if target != e.holder || launcher == nil || launcher == target || !contact(move) || launcher.Dead() {
		return
	}
	l.Scene().ShowAbility(target)
	if l.DamageChange(max(1, launcher.MaxHP()/8), launcher, target, nil) > 0 {
		l.Say("rough_skin", "%s was hurt!", launcher.Name())
	}
}

func (e *roughSkin) OnPostDamageDeath(l *battle.Logic, hp int, target, launcher *battle.Battler, move *battle.Move) {
	e.OnPostDamage(l, hp, target, launcher, move)
}

// synchronize passes burn, poison and paralysis back to the battler that caused them.
type synchronize struct {
	heldEffect
}

func (e *synchronize) OnStatusChangePost(l *battle.Logic, status data.Status, target, launcher *battle.Battler, _ *battle.Move) {
	if target != e.holder || launcher == nil || launcher == target {
		return
	}
	switch status {
	case data.StatusBurn, data.StatusPoison, data.StatusToxic, data.StatusParalysis:
		l.Scene().ShowAbility(target)
		l.StatusChange(status, launcher, target, nil)
	}
}
