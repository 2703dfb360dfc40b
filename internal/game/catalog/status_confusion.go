package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

const (
	confusionSelfHitChance = 33
	confusionSelfHitPower  = 40
)

func init() {
	battle.RegisterStatus(data.StatusConfusion, func(holder *battle.Battler, _ data.Status) battle.Effect {
		return &confusionEffect{heldEffect: newHeld(holder, "confusion", 0)}
	})
}

// confusionEffect may make its holder hit itself instead of moving, until the
// turns set on application run out.
type confusionEffect struct {
	heldEffect
	turns int
}

func (e *confusionEffect) SetTurns(n int) { e.turns = n }

func (e *confusionEffect) OnMovePreventionUser(l *battle.Logic, user *battle.Battler, _ *battle.Move) bool {
	if user != e.holder {
		return false
	}
	e.turns--
	if e.turns <= 0 {
		e.Kill()
		l.Say("confusion_end", "%s snapped out of its confusion!", user.Name())
		return false
	}
	l.Say("confused", "%s is confused!", user.Name())
	if !l.Roll(confusionSelfHitChance) {
		return false
	}
	l.Say("confusion_hit", "It hurt itself in its confusion!")
	l.DamageChange(confusionDamage(user), user, user, nil)
	return true
}

// confusionDamage is a typeless physical hit of the battler on itself, without
// variance or critical hits.
func confusionDamage(b *battle.Battler) int {
	atk := max(1, int(float64(b.RawStat(data.StatAtk))*b.AtkModifier()))
	def := max(1, int(float64(b.RawStat(data.StatDfe))*b.DfeModifier()))
	return max(1, (b.Level()*2/5+2)*confusionSelfHitPower*atk/def/50+2)
}
