package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

func init() {
	battle.RegisterAbility("no_guard", func(holder *battle.Battler, symbol string) battle.Effect {
		return &noGuard{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterAbility("speed_boost", func(holder *battle.Battler, symbol string) battle.Effect {
		return &speedBoost{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterAbility("shell_armor", func(holder *battle.Battler, symbol string) battle.Effect {
		return &shellArmor{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterAbility("magic_guard", func(holder *battle.Battler, symbol string) battle.Effect {
		return &magicGuard{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterAbility("scrappy", newPlain)
	battle.RegisterAbility("rock_head", newPlain)
	battle.RegisterAbility("run_away", newPlain)
}

// noGuard makes every move of or against its holder hit.
type noGuard struct {
	heldEffect
}

func (e *noGuard) BypassesAccuracy(_ *battle.Logic, user, target *battle.Battler, _ *battle.Move) bool {
	return user == e.holder || target == e.holder
}

// speedBoost raises speed at the end of every turn but the one its holder entered.
type speedBoost struct {
	heldEffect
}

func (e *speedBoost) OnEndTurnEvent(l *battle.Logic, _ []*battle.Battler) {
	if !e.active() || e.holder.LastSentTurn() == l.Turn() {
		return
	}
	l.Scene().ShowAbility(e.holder)
	l.StatChange(data.StatSpd, 1, e.holder, e.holder, nil)
}

type shellArmor struct {
	heldEffect
}

func (e *shellArmor) BlocksCritical(_ *battle.Logic, _, target *battle.Battler, _ *battle.Move) bool {
	return target == e.holder
}

// magicGuard prevents damage that does not come from a move hitting its holder
// (weather, status, recoil, items). Self-inflicted confusion damage still hurts.
type magicGuard struct {
	heldEffect
}

func (e *magicGuard) OnDamagePrevention(_ *battle.Logic, hp int, target, launcher *battle.Battler, move *battle.Move) (int, battle.DamageVerdict) {
	if target != e.holder || move != nil || launcher == target {
		return hp, battle.DamageAllowed
	}
	return 0, battle.DamagePrevented
}
