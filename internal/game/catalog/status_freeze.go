package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

const thawChance = 20

func init() {
	battle.RegisterStatus(data.StatusFreeze, func(holder *battle.Battler, _ data.Status) battle.Effect {
		return &freezeEffect{heldEffect: newHeld(holder, "freeze", 0)}
	})
}

// freezeEffect keeps its holder from moving until it thaws: randomly, by using a
// thawing move, or when hit by a fire move.
type freezeEffect struct {
	heldEffect
}

func (e *freezeEffect) OnMovePreventionUser(l *battle.Logic, user *battle.Battler, move *battle.Move) bool {
	if user != e.holder {
		return false
	}
	if move.Flags().Unfreeze || l.Roll(thawChance) {
		e.thaw(l)
		return false
	}
	l.Say("freeze_prevents", "%s is frozen solid!", user.Name())
	return true
}

func (e *freezeEffect) OnPostDamage(l *battle.Logic, _ int, target, launcher *battle.Battler, move *battle.Move) {
	if target != e.holder || move == nil || l.MoveType(launcher, target, move) != data.TypeFire {
		return
	}
	e.thaw(l)
}

func (e *freezeEffect) thaw(l *battle.Logic) {
	l.Say("thaw", "%s thawed out!", e.holder.Name())
	l.StatusChange(data.StatusNone, e.holder, e.holder, nil)
}
