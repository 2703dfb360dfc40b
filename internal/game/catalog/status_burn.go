package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

func init() {
	battle.RegisterStatus(data.StatusBurn, func(holder *battle.Battler, _ data.Status) battle.Effect {
		return &burnEffect{heldEffect: newHeld(holder, "burn", 0)}
	})
}

// burnEffect removes 1/16 of the max HP each turn and halves the physical attack
// of its holder, unless the holder has guts.
type burnEffect struct {
	heldEffect
}

func (e *burnEffect) OnEndTurnEvent(l *battle.Logic, _ []*battle.Battler) {
	if !e.active() {
		return
	}
	if chip(l, e.holder, 16) > 0 {
		l.Say("burn_damage", "%s is hurt by its burn!", e.holder.Name())
	}
}

func (e *burnEffect) SpAtkMultiplier(_ *battle.Logic, user, _ *battle.Battler, move *battle.Move) float64 {
	if user != e.holder || !move.Physical() || user.HasAbility("guts") {
		return 1
	}
	return 0.5
}
