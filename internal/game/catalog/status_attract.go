package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

const attractImmobilizeChance = 50

func init() {
	battle.RegisterStatus(data.StatusAttract, func(holder *battle.Battler, _ data.Status) battle.Effect {
		return &attractEffect{heldEffect: newHeld(holder, "attract", 0)}
	})
}

// attractEffect lasts while the battler that caused it stays on the field.
type attractEffect struct {
	heldEffect
	source *battle.Battler
}

func (e *attractEffect) SetSource(b *battle.Battler) { e.source = b }

func (e *attractEffect) OnMovePreventionUser(l *battle.Logic, user *battle.Battler, _ *battle.Move) bool {
	if user != e.holder {
		return false
	}
	if e.source == nil || e.source.Dead() || !e.source.OnField() {
		e.Kill()
		return false
	}
	l.Say("in_love", "%s is in love with %s!", user.Name(), e.source.Name())
	if !l.Roll(attractImmobilizeChance) {
		return false
	}
	l.Say("attract_prevents", "%s is immobilized by love!", user.Name())
	return true
}

func (e *attractEffect) OnSwitchEvent(_ *battle.Logic, who, _ *battle.Battler) {
	if who != nil && who == e.source {
		e.Kill()
	}
}
