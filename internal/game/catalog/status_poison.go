package catalog

import (
	"log/slog"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

func init() {
	battle.RegisterStatus(data.StatusPoison, newPoison)
	battle.RegisterStatus(data.StatusToxic, newPoison)
}

// poisonEffect removes 1/8 of the max HP at the end of every turn. Bad poison
// removes n/16 instead, n growing by one each turn and reset on switch.
type poisonEffect struct {
	heldEffect
	toxic bool
}

func newPoison(holder *battle.Battler, status data.Status) battle.Effect {
	return &poisonEffect{
		heldEffect: newHeld(holder, status.String(), 0),
		toxic:      status == data.StatusToxic,
	}
}

func (e *poisonEffect) OnEndTurnEvent(l *battle.Logic, _ []*battle.Battler) {
	if !e.active() {
		return
	}
	hp := max(1, e.holder.MaxHP()/8)
	if e.toxic {
		n := max(1, e.holder.StatusCount())
		hp = max(1, e.holder.MaxHP()*n/16)
		e.holder.SetStatusCount(n + 1)
	}
	if l.DamageChange(hp, e.holder, nil, nil) > 0 {
		l.Say("poison_damage", "%s is hurt by poison!", e.holder.Name())
	}
	slog.Debug("poison tick", "battler", e.holder.Name(), "hp", hp, "toxic", e.toxic)
}
