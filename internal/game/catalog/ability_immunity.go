package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

// statusImmunities list the statuses each ability keeps away.
var statusImmunities = map[string][]data.Status{
	"limber":       {data.StatusParalysis},
	"immunity":     {data.StatusPoison, data.StatusToxic},
	"insomnia":     {data.StatusSleep},
	"vital_spirit": {data.StatusSleep},
	"water_veil":   {data.StatusBurn},
	"magma_armor":  {data.StatusFreeze},
	"own_tempo":    {data.StatusConfusion},
	"oblivious":    {data.StatusAttract},
	"inner_focus":  {data.StatusFlinch},
}

func init() {
	battle.RegisterAbility("levitate", func(holder *battle.Battler, symbol string) battle.Effect {
		return &levitate{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterAbility("volt_absorb", absorbing(data.TypeElectric, absorbHeal))
	battle.RegisterAbility("water_absorb", absorbing(data.TypeWater, absorbHeal))
	battle.RegisterAbility("lightning_rod", absorbing(data.TypeElectric, func(l *battle.Logic, holder *battle.Battler) bool {
		return l.StatChange(data.StatAts, 1, holder, holder, nil) != 0
	}))
	battle.RegisterAbility("flash_fire", func(holder *battle.Battler, symbol string) battle.Effect {
		return &flashFire{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterAbility("sturdy", func(holder *battle.Battler, symbol string) battle.Effect {
		return &sturdy{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterAbility("magic_bounce", func(holder *battle.Battler, symbol string) battle.Effect {
		return &magicBounce{heldEffect: newHeld(holder, symbol, 0)}
	})
	for symbol, statuses := range statusImmunities {
		battle.RegisterAbility(symbol, func(holder *battle.Battler, sym string) battle.Effect {
			return &statusImmunity{heldEffect: newHeld(holder, sym, 0), statuses: statuses}
		})
	}
}

type levitate struct {
	heldEffect
}

func (e *levitate) Grounding(l *battle.Logic, b *battle.Battler) battle.Grounding {
	if b != e.holder {
		return battle.GroundNoOpinion
	}
	return battle.GroundLifted
}

// absorbAbility makes moves of one type fail against its holder and rewards it.
// The reward returns false when it had nothing to give.
type absorbAbility struct {
	heldEffect
	absorbs data.Type
	reward  func(l *battle.Logic, holder *battle.Battler) bool
}

func absorbing(t data.Type, reward func(*battle.Logic, *battle.Battler) bool) battle.EffectFactory {
	return func(holder *battle.Battler, symbol string) battle.Effect {
		return &absorbAbility{heldEffect: newHeld(holder, symbol, 0), absorbs: t, reward: reward}
	}
}

func absorbHeal(l *battle.Logic, holder *battle.Battler) bool {
	return healFraction(l, holder, 4) > 0
}

func (e *absorbAbility) OnMovePreventionTarget(l *battle.Logic, user, target *battle.Battler, move *battle.Move) bool {
	if target != e.holder || user == target || l.MoveType(user, target, move) != e.absorbs {
		return false
	}
	l.Scene().ShowAbility(target)
	logTrigger("ability", e.Name(), target)
	if !e.reward(l, target) {
		l.Say("ability_immune", "%s's %s made %s useless!", target.Name(), battle.DisplayName(e.Name()), battle.DisplayName(move.Symbol()))
	}
	return true
}

// flashFire absorbs fire moves and then powers up the holder's own fire moves.
type flashFire struct {
	heldEffect
	activated bool
}

func (e *flashFire) OnMovePreventionTarget(l *battle.Logic, user, target *battle.Battler, move *battle.Move) bool {
	if target != e.holder || user == target || l.MoveType(user, target, move) != data.TypeFire {
		return false
	}
	l.Scene().ShowAbility(target)
	e.activated = true
	l.Say("flash_fire", "The power of %s's Fire-type moves rose!", target.Name())
	return true
}

func (e *flashFire) BasePowerMultiplier(l *battle.Logic, user, target *battle.Battler, move *battle.Move) float64 {
	if user != e.holder || !e.activated || l.MoveType(user, target, move) != data.TypeFire {
		return 1
	}
	return 1.5
}

// sturdy survives a knock-out hit from full HP and blocks one-hit KO moves.
type sturdy struct {
	heldEffect
}

func (e *sturdy) OnDamagePrevention(l *battle.Logic, hp int, target, _ *battle.Battler, move *battle.Move) (int, battle.DamageVerdict) {
	if target != e.holder || move == nil || target.HP() != target.MaxHP() || hp < target.HP() {
		return hp, battle.DamageAllowed
	}
	l.Scene().ShowAbility(target)
	l.Say("sturdy", "%s endured the hit!", target.Name())
	return target.HP() - 1, battle.DamageChanged
}

func (e *sturdy) OnMovePreventionTarget(l *battle.Logic, user, target *battle.Battler, move *battle.Move) bool {
	if target != e.holder || user == target || move.Method() != "s_ohko" {
		return false
	}
	l.Scene().ShowAbility(target)
	l.Say("ability_immune", "%s's Sturdy made %s useless!", target.Name(), battle.DisplayName(move.Symbol()))
	return true
}

// magicBounce reflects status moves back at their user.
type magicBounce struct {
	heldEffect
}

func (e *magicBounce) OnMovePreventionTarget(l *battle.Logic, user, target *battle.Battler, move *battle.Move) bool {
	if target != e.holder || user == target || !move.Flags().MagicCoat || move.Reflected() {
		return false
	}
	l.Scene().ShowAbility(target)
	l.ReflectMove(target, user, move)
	return true
}

// statusImmunity keeps statuses away from its holder.
type statusImmunity struct {
	heldEffect
	statuses []data.Status
}

func (e *statusImmunity) OnStatusPrevention(l *battle.Logic, status data.Status, target, _ *battle.Battler, move *battle.Move) bool {
	if target != e.holder {
		return false
	}
	for _, s := range e.statuses {
		if s == status {
			if move != nil && move.Status() {
				l.Scene().ShowAbility(target)
			}
			return true
		}
	}
	return false
}
