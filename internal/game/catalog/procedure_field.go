package catalog

import (
	"github.com/udisondev/battlecore/internal/game/battle"
)

func init() {
	battle.RegisterMoveProcedure("s_weather", func() battle.Procedure { return weatherProcedure{} })
	battle.RegisterMoveProcedure("s_terrain", func() battle.Procedure { return terrainProcedure{} })
	battle.RegisterMoveProcedure("s_field", func() battle.Procedure { return fieldProcedure{} })
	battle.RegisterMoveProcedure("s_bank_effect", func() battle.Procedure { return bankEffectProcedure{} })
}

var weatherMoves = map[string]battle.Weather{
	"rain_dance": battle.WeatherRain,
	"sunny_day":  battle.WeatherSun,
	"sandstorm":  battle.WeatherSandstorm,
	"hail":       battle.WeatherHail,
}

var terrainTexts = map[battle.Terrain]string{
	battle.TerrainElectric: "An electric current ran across the battlefield!",
	battle.TerrainGrassy:   "Grass grew to cover the battlefield!",
	battle.TerrainMisty:    "Mist swirled around the battlefield!",
	battle.TerrainPsychic:  "The battlefield got weird!",
}

// weatherProcedure starts the weather of the move for five turns.
type weatherProcedure struct {
	battle.BasicProcedure
}

func (weatherProcedure) MoveFails(l *battle.Logic, _ *battle.Battler, _ []*battle.Battler, move *battle.Move) bool {
	if l.Weather() != weatherMoves[move.Symbol()] {
		return false
	}
	failed(l)
	return true
}

func (weatherProcedure) DealEffect(l *battle.Logic, _, _ *battle.Battler, move *battle.Move, _ int) {
	startWeather(l, weatherMoves[move.Symbol()])
}

// terrainProcedure replaces the terrain with the one named by the move.
type terrainProcedure struct {
	battle.BasicProcedure
}

func (terrainProcedure) MoveFails(l *battle.Logic, _ *battle.Battler, _ []*battle.Battler, move *battle.Move) bool {
	if l.Terrain() != battle.Terrain(move.Symbol()) {
		return false
	}
	failed(l)
	return true
}

func (terrainProcedure) DealEffect(l *battle.Logic, _, _ *battle.Battler, move *battle.Move, _ int) {
	kind := battle.Terrain(move.Symbol())
	if l.SetTerrain(newTerrain(kind, terrainTurns)) {
		l.Say("terrain_start", "%s", terrainTexts[kind])
	}
}

// fieldProcedure runs gravity and trick room. Trick room used again ends it.
type fieldProcedure struct {
	battle.BasicProcedure
}

func (fieldProcedure) MoveFails(l *battle.Logic, _ *battle.Battler, _ []*battle.Battler, move *battle.Move) bool {
	if move.Symbol() != "gravity" || !l.Gravity() {
		return false
	}
	failed(l)
	return true
}

func (fieldProcedure) DealEffect(l *battle.Logic, user, _ *battle.Battler, move *battle.Move, _ int) {
	field := l.Field().Effects()
	switch move.Symbol() {
	case "gravity":
		field.Add(l, newGravity())
		l.Say("gravity", "Gravity intensified!")
		for _, b := range l.AllAlive() {
			if bringDown(b) {
				l.Say("gravity_fall", "%s couldn't stay airborne because of gravity!", b.Name())
			}
		}
	case "trick_room":
		if field.Remove("trick_room") {
			l.Say("trick_room_end", "The twisted dimensions returned to normal!")
			return
		}
		field.Add(l, newTrickRoom())
		l.Say("trick_room", "%s twisted the dimensions!", user.Name())
	}
}

// bankEffectProcedure sets reflect, light screen, safeguard, mist or tailwind on the
// user's side.
type bankEffectProcedure struct {
	battle.BasicProcedure
}

func (bankEffectProcedure) MoveFails(l *battle.Logic, user *battle.Battler, _ []*battle.Battler, move *battle.Move) bool {
	if !l.Field().Bank(user.Bank()).Has(move.Symbol()) {
		return false
	}
	failed(l)
	return true
}

func (bankEffectProcedure) DealEffect(l *battle.Logic, user, _ *battle.Battler, move *battle.Move, _ int) {
	e := newBankEffect(move.Symbol(), user.Bank())
	if e == nil || !l.Field().Bank(user.Bank()).Add(l, e) {
		failed(l)
		return
	}
	l.Say("bank_effect", "%s raised %s on its side!", user.Name(), battle.DisplayName(move.Symbol()))
}
