package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

// weatherSetters start a weather of 5 turns when their holder enters the field.
var weatherSetters = map[string]battle.Weather{
	"drizzle":     battle.WeatherRain,
	"drought":     battle.WeatherSun,
	"sand_stream": battle.WeatherSandstorm,
}

func init() {
	battle.RegisterAbility("intimidate", func(holder *battle.Battler, symbol string) battle.Effect {
		return &intimidate{heldEffect: newHeld(holder, symbol, 0)}
	})
	for _, symbol := range []string{"mold_breaker", "teravolt", "turboblaze"} {
		battle.RegisterAbility(symbol, func(holder *battle.Battler, sym string) battle.Effect {
			return &announcer{heldEffect: newHeld(holder, sym, 0), text: "%s breaks the mold!"}
		})
	}
	battle.RegisterAbility("pressure", func(holder *battle.Battler, symbol string) battle.Effect {
		return &pressure{announcer: announcer{heldEffect: newHeld(holder, symbol, 0), text: "%s is exerting its Pressure!"}}
	})
	for symbol, w := range weatherSetters {
		battle.RegisterAbility(symbol, func(holder *battle.Battler, sym string) battle.Effect {
			return &weatherSetter{heldEffect: newHeld(holder, sym, 0), weather: w}
		})
	}
	battle.RegisterAbility("natural_cure", func(holder *battle.Battler, symbol string) battle.Effect {
		return &naturalCure{heldEffect: newHeld(holder, symbol, 0)}
	})
}

// intimidate lowers the attack of adjacent foes on switch-in.
type intimidate struct {
	heldEffect
}

func (e *intimidate) OnSwitchEvent(l *battle.Logic, _, with *battle.Battler) {
	if with != e.holder {
		return
	}
	l.Scene().ShowAbility(with)
	logTrigger("ability", e.Name(), with)
	for _, foe := range l.AdjacentFoes(with) {
		l.StatChange(data.StatAtk, -1, foe, with, nil)
	}
}

// announcer shows its ability with a message on switch-in.
type announcer struct {
	heldEffect
	text string
}

func (e *announcer) OnSwitchEvent(l *battle.Logic, _, with *battle.Battler) {
	if with != e.holder {
		return
	}
	l.Scene().ShowAbility(with)
	l.Say("ability_announce", e.text, with.Name())
}

// pressure makes foes spend one more PP on moves aimed at its holder.
type pressure struct {
	announcer
}

func (e *pressure) ExtraPPCost(_ *battle.Logic, user *battle.Battler, _ *battle.Move) int {
	if !foeOf(user, e.holder) {
		return 0
	}
	return 1
}

type weatherSetter struct {
	heldEffect
	weather battle.Weather
}

func (e *weatherSetter) OnSwitchEvent(l *battle.Logic, _, with *battle.Battler) {
	if with != e.holder {
		return
	}
	if startWeather(l, e.weather) {
		l.Scene().ShowAbility(with)
	}
}

// naturalCure heals the major status of its holder when it leaves the field.
type naturalCure struct {
	heldEffect
}

func (e *naturalCure) OnSwitchEvent(l *battle.Logic, who, _ *battle.Battler) {
	if who != e.holder || !who.HasStatus() || who.Dead() {
		return
	}
	l.StatusChange(data.StatusNone, who, who, nil)
}
