package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

func init() {
	battle.RegisterStatus(data.StatusSleep, func(holder *battle.Battler, _ data.Status) battle.Effect {
		return &sleepEffect{heldEffect: newHeld(holder, "sleep", 0)}
	})
}

// sleepEffect counts down the status counter on every attempt to move. The
// battler wakes up and acts when the counter is already zero.
type sleepEffect struct {
	heldEffect
}

func (e *sleepEffect) OnMovePreventionUser(l *battle.Logic, user *battle.Battler, _ *battle.Move) bool {
	if user != e.holder {
		return false
	}
	if n := user.StatusCount(); n > 0 {
		user.SetStatusCount(n - 1)
		l.Say("sleep_prevents", "%s is fast asleep.", user.Name())
		return true
	}
	l.Say("wake_up", "%s woke up!", user.Name())
	l.StatusChange(data.StatusNone, user, user, nil)
	return false
}
