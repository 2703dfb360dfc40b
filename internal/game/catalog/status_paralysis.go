package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

// Chance in percent that a paralyzed battler cannot move.
const fullParalysisChance = 25

func init() {
	battle.RegisterStatus(data.StatusParalysis, func(holder *battle.Battler, _ data.Status) battle.Effect {
		return &paralysisEffect{heldEffect: newHeld(holder, "paralysis", 0)}
	})
}

type paralysisEffect struct {
	heldEffect
}

func (e *paralysisEffect) SpdModifier(_ *battle.Logic, b *battle.Battler) float64 {
	if b != e.holder {
		return 1
	}
	return 0.5
}

func (e *paralysisEffect) OnMovePreventionUser(l *battle.Logic, user *battle.Battler, _ *battle.Move) bool {
	if user != e.holder || !l.Roll(fullParalysisChance) {
		return false
	}
	l.Say("paralysis_prevents", "%s is paralyzed! It can't move!", user.Name())
	return true
}
