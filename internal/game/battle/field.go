package battle

// Weather is the active weather condition.
type Weather string

const (
	WeatherNone      Weather = ""
	WeatherRain      Weather = "rain"
	WeatherSun       Weather = "sunny"
	WeatherSandstorm Weather = "sandstorm"
	WeatherHail      Weather = "hail"
)

// Terrain is the active terrain.
type Terrain string

const (
	TerrainNone     Terrain = ""
	TerrainElectric Terrain = "electric_terrain"
	TerrainGrassy   Terrain = "grassy_terrain"
	TerrainMisty    Terrain = "misty_terrain"
	TerrainPsychic  Terrain = "psychic_terrain"
)

// WeatherEffect is implemented by the field effect backing a weather.
type WeatherEffect interface {
	Effect
	Weather() Weather
}

// TerrainEffect is implemented by the field effect backing a terrain.
type TerrainEffect interface {
	Effect
	Terrain() Terrain
}

// Field holds the battlefield effects: global ones and one handler per bank.
type Field struct {
	effects *EffectsHandler
	banks   [2]*EffectsHandler
}

func newField() *Field {
	return &Field{
		effects: NewEffectsHandler(),
		banks:   [2]*EffectsHandler{NewEffectsHandler(), NewEffectsHandler()},
	}
}

// Effects returns the global field effects.
func (f *Field) Effects() *EffectsHandler { return f.effects }

// Bank returns the effects of one side.
func (f *Field) Bank(bank int) *EffectsHandler { return f.banks[bank] }

// Field returns the battlefield.
func (l *Logic) Field() *Field { return l.field }

// Weather returns the active weather.
func (l *Logic) Weather() Weather {
	for e := range l.field.effects.All() {
		if w, ok := e.(WeatherEffect); ok {
			return w.Weather()
		}
	}
	return WeatherNone
}

// Terrain returns the active terrain.
func (l *Logic) Terrain() Terrain {
	for e := range l.field.effects.All() {
		if t, ok := e.(TerrainEffect); ok {
			return t.Terrain()
		}
	}
	return TerrainNone
}

// SetWeather replaces the current weather. Returns false if the same weather is
// already active.
func (l *Logic) SetWeather(w WeatherEffect) bool {
	if l.Weather() == w.Weather() {
		return false
	}
	for e := range l.field.effects.All() {
		if _, ok := e.(WeatherEffect); ok {
			e.Kill()
		}
	}
	l.field.effects.prune()
	l.field.effects.Add(l, w)
	l.logger.Debug("weather changed", "weather", string(w.Weather()))
	return true
}

// SetTerrain replaces the current terrain. Returns false if the same terrain is
// already active.
func (l *Logic) SetTerrain(t TerrainEffect) bool {
	if l.Terrain() == t.Terrain() {
		return false
	}
	for e := range l.field.effects.All() {
		if _, ok := e.(TerrainEffect); ok {
			e.Kill()
		}
	}
	l.field.effects.prune()
	l.field.effects.Add(l, t)
	l.logger.Debug("terrain changed", "terrain", string(t.Terrain()))
	return true
}

// TrickRoom reports whether speed order is reversed.
func (l *Logic) TrickRoom() bool { return l.field.effects.Has("trick_room") }

// Gravity reports whether gravity is in effect.
func (l *Logic) Gravity() bool { return l.field.effects.Has("gravity") }
