package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

func init() {
	battle.RegisterItem("white_herb", func(holder *battle.Battler, symbol string) battle.Effect {
		return &whiteHerb{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterItem("mental_herb", func(holder *battle.Battler, symbol string) battle.Effect {
		return &mentalHerb{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterItem("air_balloon", func(holder *battle.Battler, symbol string) battle.Effect {
		return &airBalloon{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterItem("focus_sash", func(holder *battle.Battler, symbol string) battle.Effect {
		return &focusSash{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterItem("rocky_helmet", func(holder *battle.Battler, symbol string) battle.Effect {
		return &rockyHelmet{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterItem("leftovers", func(holder *battle.Battler, symbol string) battle.Effect {
		return &leftovers{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterItem("black_sludge", func(holder *battle.Battler, symbol string) battle.Effect {
		return &leftovers{heldEffect: newHeld(holder, symbol, 0), sludge: true}
	})
}

// whiteHerb restores every lowered stage once. Drops caused by a move are
// restored after the whole action; drops outside a move (intimidate) at once.
type whiteHerb struct {
	heldEffect
	lowered bool
}

func (e *whiteHerb) OnStatChangePost(l *battle.Logic, _ data.Stat, delta int, target, _ *battle.Battler, move *battle.Move) {
	if target != e.holder || delta >= 0 || e.Dead() {
		return
	}
	e.lowered = true
	if move == nil {
		e.restore(l)
	}
}

func (e *whiteHerb) OnPostActionEvent(l *battle.Logic, _ *battle.Battler, _ []*battle.Battler, _ *battle.Move) {
	e.restore(l)
}

func (e *whiteHerb) OnEndTurnEvent(l *battle.Logic, _ []*battle.Battler) {
	e.restore(l)
}

func (e *whiteHerb) restore(l *battle.Logic) {
	if !e.lowered || e.Dead() || !e.active() {
		return
	}
	e.lowered = false
	target := e.holder
	lowered := false
	for stat := range data.Stat(data.StatCount) {
		if target.Stage(stat) < 0 {
			target.SetStage(stat, 0)
			lowered = true
		}
	}
	if !lowered {
		return
	}
	logTrigger("item", e.Name(), target)
	l.ConsumeItem(target)
	l.Say("white_herb", "%s returned its stats to normal using its White Herb!", target.Name())
}

// mentalHerb cures infatuation and taunt once.
type mentalHerb struct {
	heldEffect
}

func (e *mentalHerb) OnPostActionEvent(l *battle.Logic, _ *battle.Battler, _ []*battle.Battler, _ *battle.Move) {
	if e.Dead() || !e.active() {
		return
	}
	effects := e.holder.Effects()
	if !effects.Has("attract") && !effects.Has("taunt") {
		return
	}
	logTrigger("item", e.Name(), e.holder)
	l.ConsumeItem(e.holder)
	effects.Remove("attract")
	effects.Remove("taunt")
	l.Say("mental_herb", "%s cured its status using its Mental Herb!", e.holder.Name())
}

// airBalloon lifts its holder until the first damaging hit.
type airBalloon struct {
	heldEffect
}

func (e *airBalloon) Grounding(_ *battle.Logic, b *battle.Battler) battle.Grounding {
	if b != e.holder {
		return battle.GroundNoOpinion
	}
	return battle.GroundLifted
}

func (e *airBalloon) OnSwitchEvent(l *battle.Logic, _, with *battle.Battler) {
	if with == e.holder {
		l.Say("air_balloon", "%s floats in the air with its Air Balloon!", with.Name())
	}
}

func (e *airBalloon) OnPostDamage(l *battle.Logic, _ int, target, _ *battle.Battler, move *battle.Move) {
	if target != e.holder || move == nil || e.Dead() {
		return
	}
	l.ConsumeItem(target)
	l.Say("air_balloon_pop", "%s's Air Balloon popped!", target.Name())
}

// focusSash leaves its holder at 1 HP when a hit would knock it out from full HP.
type focusSash struct {
	heldEffect
}

func (e *focusSash) OnDamagePrevention(l *battle.Logic, hp int, target, _ *battle.Battler, move *battle.Move) (int, battle.DamageVerdict) {
	if target != e.holder || move == nil || target.HP() != target.MaxHP() || hp < target.HP() {
		return hp, battle.DamageAllowed
	}
	logTrigger("item", e.Name(), target)
	l.ConsumeItem(target)
	l.Say("focus_sash", "%s hung on using its Focus Sash!", target.Name())
	return target.HP() - 1, battle.DamageChanged
}

// rockyHelmet hurts attackers that make contact by 1/6 of their max HP.
type rockyHelmet struct {
	heldEffect
}

func (e *rockyHelmet) OnPostDamage(l *battle.Logic, _ int, target, launcher *battle.Battler, move *battle.Move) {
	if target != e.holder || launcher == nil || launcher == target || !contact(move) || launcher.Dead() {
		return
	}
	if l.DamageChange(max(1, launcher.MaxHP()/6), launcher, target, nil) > 0 {
		l.Say("rocky_helmet", "%s was hurt by the Rocky Helmet!", launcher.Name())
	}
}

func (e *rockyHelmet) OnPostDamageDeath(l *battle.Logic, hp int, target, launcher *battle.Battler, move *battle.Move) {
	e.OnPostDamage(l, hp, target, launcher, move)
}

// leftovers restore 1/16 of the max HP each turn. Black sludge does the same for
// poison types and hurts everyone else by 1/8.
type leftovers struct {
	heldEffect
	sludge bool
}

func (e *leftovers) OnEndTurnEvent(l *battle.Logic, _ []*battle.Battler) {
	if !e.active() {
		return
	}
	if e.sludge && !e.holder.HasType(data.TypePoison) {
		if chip(l, e.holder, 8) > 0 {
			l.Say("black_sludge", "%s is hurt by its Black Sludge!", e.holder.Name())
		}
		return
	}
	if healFraction(l, e.holder, 16) > 0 {
		l.Say("leftovers", "%s restored a little HP using its %s!", e.holder.Name(), battle.DisplayName(e.Name()))
	}
}
