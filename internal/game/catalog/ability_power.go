package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

// pinchAbilities boost moves of one type by 50% at a third of the max HP or less.
var pinchAbilities = map[string]data.Type{
	"blaze":    data.TypeFire,
	"torrent":  data.TypeWater,
	"overgrow": data.TypeGrass,
	"swarm":    data.TypeBug,
}

func init() {
	registerMultiplierAbility("huge_power", rule(kindAttack, sideUser, when(2, physical)))
	registerMultiplierAbility("pure_power", rule(kindAttack, sideUser, when(2, physical)))
	registerMultiplierAbility("guts", rule(kindAttack, sideUser, when(1.5, both(physical, statused))))
	registerMultiplierAbility("technician", rule(kindBasePower, sideUser, when(1.5, func(_ *battle.Logic, _, _ *battle.Battler, move *battle.Move) bool {
		return move.Power() <= 60
	})))
	registerMultiplierAbility("hustle",
		rule(kindAttack, sideUser, when(1.5, physical)),
		rule(kindHitChance, sideUser, when(0.8, physical)))
	registerMultiplierAbility("compound_eyes", rule(kindHitChance, sideUser, always(1.3)))
	registerMultiplierAbility("tinted_lens", rule(kindMod3, sideUser, when(2, notVeryEffective)))
	registerMultiplierAbility("filter", rule(kindMod3, sideTarget, when(0.75, superEffectiveOnHolder)))
	registerMultiplierAbility("solid_rock", rule(kindMod3, sideTarget, when(0.75, superEffectiveOnHolder)))
	registerMultiplierAbility("multiscale", rule(kindMod3, sideTarget, when(0.5, func(_ *battle.Logic, holder, _ *battle.Battler, _ *battle.Move) bool {
		return holder.HP() == holder.MaxHP()
	})))
	registerMultiplierAbility("thick_fat", rule(kindAttack, sideTarget, when(0.5, hitByType(data.TypeFire, data.TypeIce))))

	registerMultiplierAbility("swift_swim", rule(kindSpeed, sideUser, when(2, inWeather(battle.WeatherRain))))
	registerMultiplierAbility("chlorophyll", rule(kindSpeed, sideUser, when(2, inWeather(battle.WeatherSun))))
	registerMultiplierAbility("sand_rush", rule(kindSpeed, sideUser, when(2, inWeather(battle.WeatherSandstorm))))

	for symbol, t := range pinchAbilities {
		registerMultiplierAbility(symbol, rule(kindAttack, sideUser, when(1.5, both(moveOfType(t), inPinch))))
	}

	battle.RegisterAbility("adaptability", func(holder *battle.Battler, symbol string) battle.Effect {
		return &adaptability{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterAbility("sheer_force", func(holder *battle.Battler, symbol string) battle.Effect {
		return &sheerForce{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterAbility("serene_grace", func(holder *battle.Battler, symbol string) battle.Effect {
		return &sereneGrace{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterAbility("parental_bond", func(holder *battle.Battler, symbol string) battle.Effect {
		return &parentalBond{heldEffect: newHeld(holder, symbol, 0)}
	})
}

func statused(_ *battle.Logic, holder, _ *battle.Battler, _ *battle.Move) bool {
	return holder.HasStatus()
}

func inPinch(_ *battle.Logic, holder, _ *battle.Battler, _ *battle.Move) bool {
	return holder.HP()*3 <= holder.MaxHP()
}

func notVeryEffective(l *battle.Logic, holder, other *battle.Battler, move *battle.Move) bool {
	te := l.TypeEffectiveness(holder, other, move)
	return te > 0 && te < 1
}

func superEffectiveOnHolder(l *battle.Logic, holder, other *battle.Battler, move *battle.Move) bool {
	return l.TypeEffectiveness(other, holder, move) > 1
}

func inWeather(w battle.Weather) predicate {
	return func(l *battle.Logic, _, _ *battle.Battler, _ *battle.Move) bool {
		return l.Weather() == w
	}
}

type adaptability struct {
	heldEffect
}

func (e *adaptability) StabMultiplier(_ *battle.Logic, user *battle.Battler, _ *battle.Move) (float64, bool) {
	if user != e.holder {
		return 0, false
	}
	return 2, true
}

// sheerForce drops the secondary effects of the holder's moves for 30% more power.
type sheerForce struct {
	heldEffect
}

func (e *sheerForce) EffectChanceMultiplier(_ *battle.Logic, user *battle.Battler, move *battle.Move) float64 {
	if user != e.holder || !move.HasSecondaryEffect() {
		return 1
	}
	return 0
}

func (e *sheerForce) BasePowerMultiplier(_ *battle.Logic, user, _ *battle.Battler, move *battle.Move) float64 {
	if user != e.holder || !move.HasSecondaryEffect() {
		return 1
	}
	return 1.3
}

type sereneGrace struct {
	heldEffect
}

func (e *sereneGrace) EffectChanceMultiplier(_ *battle.Logic, user *battle.Battler, _ *battle.Move) float64 {
	if user != e.holder {
		return 1
	}
	return 2
}

// parentalBond hits a single target a second time at a quarter of the power.
type parentalBond struct {
	heldEffect
}

func (e *parentalBond) ExtraHits(_ *battle.Logic, user, _ *battle.Battler, move *battle.Move, targetCount int) []float64 {
	if user != e.holder || targetCount != 1 || move.Status() || move.Method() == "s_multi_hit" ||
		move.Method() == "s_ohko" || move.Method() == "s_fixed_damage" {
		return nil
	}
	return []float64{0.25}
}
