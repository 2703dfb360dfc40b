package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

func init() {
	battle.RegisterStatus(data.StatusFlinch, func(holder *battle.Battler, _ data.Status) battle.Effect {
		return &flinchEffect{heldEffect: newHeld(holder, "flinch", 1)}
	})
}

// flinchEffect cancels the next move of the turn; it expires at the turn boundary.
type flinchEffect struct {
	heldEffect
}

func (e *flinchEffect) OnMovePreventionUser(l *battle.Logic, user *battle.Battler, _ *battle.Move) bool {
	if user != e.holder {
		return false
	}
	e.Kill()
	l.Say("flinch", "%s flinched and couldn't move!", user.Name())
	return true
}
