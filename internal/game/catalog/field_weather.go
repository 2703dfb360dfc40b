package catalog

import (
	"log/slog"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

// Turns a weather started by a move or an ability lasts.
const weatherTurns = 5

type weatherText struct {
	start, cont, end string
}

var weatherTexts = map[battle.Weather]weatherText{
	battle.WeatherRain:      {"It started to rain!", "Rain continues to fall.", "The rain stopped."},
	battle.WeatherSun:       {"The sunlight turned harsh!", "The sunlight is strong.", "The harsh sunlight faded."},
	battle.WeatherSandstorm: {"A sandstorm kicked up!", "The sandstorm is raging.", "The sandstorm subsided."},
	battle.WeatherHail:      {"It started to hail!", "Hail continues to fall.", "The hail stopped."},
}

// weatherImmunities are the types and abilities untouched by sandstorm and hail damage.
var weatherImmunities = map[battle.Weather]struct {
	types     []data.Type
	abilities []string
}{
	battle.WeatherSandstorm: {types: []data.Type{data.TypeRock, data.TypeGround, data.TypeSteel}, abilities: []string{"sand_rush", "magic_guard"}},
	battle.WeatherHail:      {types: []data.Type{data.TypeIce}, abilities: []string{"magic_guard"}},
}

// weatherEffect is the field effect backing the active weather.
type weatherEffect struct {
	battle.BaseEffect
	kind battle.Weather
}

func newWeather(kind battle.Weather, turns int) *weatherEffect {
	return &weatherEffect{BaseEffect: battle.NewBaseEffect("weather_"+string(kind), turns), kind: kind}
}

// startWeather replaces the weather and announces it. Returns false if the same
// weather is already active.
func startWeather(l *battle.Logic, kind battle.Weather) bool {
	if !l.SetWeather(newWeather(kind, weatherTurns)) {
		return false
	}
	l.Say("weather_start", "%s", weatherTexts[kind].start)
	return true
}

func (e *weatherEffect) Weather() battle.Weather { return e.kind }

// Mod1Multiplier: rain boosts water and weakens fire, sun does the opposite.
func (e *weatherEffect) Mod1Multiplier(l *battle.Logic, user, target *battle.Battler, move *battle.Move) float64 {
	t := l.MoveType(user, target, move)
	switch {
	case e.kind == battle.WeatherRain && t == data.TypeWater, e.kind == battle.WeatherSun && t == data.TypeFire:
		return 1.5
	case e.kind == battle.WeatherRain && t == data.TypeFire, e.kind == battle.WeatherSun && t == data.TypeWater:
		return 0.5
	}
	return 1
}

// SpDefMultiplier: rock types get 50% more special defense in a sandstorm.
func (e *weatherEffect) SpDefMultiplier(_ *battle.Logic, _, target *battle.Battler, move *battle.Move) float64 {
	if e.kind == battle.WeatherSandstorm && move.Special() && target.HasType(data.TypeRock) {
		return 1.5
	}
	return 1
}

func (e *weatherEffect) OnEndTurnEvent(l *battle.Logic, battlers []*battle.Battler) {
	l.Say("weather_continue", "%s", weatherTexts[e.kind].cont)
	immune, ok := weatherImmunities[e.kind]
	if !ok {
		return
	}
	for _, b := range battlers {
		if b.Dead() || !b.OnField() || hasAnyType(b, immune.types) || hasAnyAbility(b, immune.abilities) {
			continue
		}
		if chip(l, b, 16) > 0 {
			l.Say("weather_damage", "%s is buffeted by the %s!", b.Name(), e.kind)
		}
	}
}

func (e *weatherEffect) OnExpire(l *battle.Logic) {
	l.Say("weather_end", "%s", weatherTexts[e.kind].end)
	slog.Debug("weather ended", "weather", string(e.kind))
}

func hasAnyType(b *battle.Battler, types []data.Type) bool {
	for _, t := range types {
		if b.HasType(t) {
			return true
		}
	}
	return false
}

func hasAnyAbility(b *battle.Battler, abilities []string) bool {
	for _, a := range abilities {
		if b.HasAbility(a) {
			return true
		}
	}
	return false
}
