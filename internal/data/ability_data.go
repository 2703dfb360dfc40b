package data

import "log/slog"

// AbilityTemplate is the read-only reference record of an ability.
type AbilityTemplate struct {
	Symbol string
	// Breakable abilities are ignored while a mold-breaking user acts on their holder.
	Breakable bool
}

var abilityDefs = []AbilityTemplate{
	{Symbol: "levitate", Breakable: true},
	{Symbol: "volt_absorb", Breakable: true},
	{Symbol: "water_absorb", Breakable: true},
	{Symbol: "flash_fire", Breakable: true},
	{Symbol: "mold_breaker"},
	{Symbol: "teravolt"},
	{Symbol: "turboblaze"},
	{Symbol: "huge_power"},
	{Symbol: "pure_power"},
	{Symbol: "guts"},
	{Symbol: "technician"},
	{Symbol: "adaptability"},
	{Symbol: "sheer_force"},
	{Symbol: "serene_grace"},
	{Symbol: "parental_bond"},
	{Symbol: "sturdy", Breakable: true},
	{Symbol: "clear_body", Breakable: true},
	{Symbol: "white_smoke", Breakable: true},
	{Symbol: "hyper_cutter", Breakable: true},
	{Symbol: "keen_eye", Breakable: true},
	{Symbol: "big_pecks", Breakable: true},
	{Symbol: "contrary", Breakable: true},
	{Symbol: "simple", Breakable: true},
	{Symbol: "limber", Breakable: true},
	{Symbol: "immunity", Breakable: true},
	{Symbol: "insomnia", Breakable: true},
	{Symbol: "vital_spirit", Breakable: true},
	{Symbol: "water_veil", Breakable: true},
	{Symbol: "magma_armor", Breakable: true},
	{Symbol: "own_tempo", Breakable: true},
	{Symbol: "oblivious", Breakable: true},
	{Symbol: "synchronize"},
	{Symbol: "pressure"},
	{Symbol: "swift_swim"},
	{Symbol: "chlorophyll"},
	{Symbol: "sand_rush"},
	{Symbol: "scrappy"},
	{Symbol: "no_guard"},
	{Symbol: "compound_eyes"},
	{Symbol: "hustle"},
	{Symbol: "tinted_lens"},
	{Symbol: "filter", Breakable: true},
	{Symbol: "solid_rock", Breakable: true},
	{Symbol: "thick_fat", Breakable: true},
	{Symbol: "intimidate"},
	{Symbol: "speed_boost"},
	{Symbol: "defiant"},
	{Symbol: "competitive"},
	{Symbol: "magic_bounce", Breakable: true},
	{Symbol: "blaze"},
	{Symbol: "torrent"},
	{Symbol: "overgrow"},
	{Symbol: "swarm"},
	{Symbol: "static"},
	{Symbol: "flame_body"},
	{Symbol: "poison_point"},
	{Symbol: "rough_skin"},
	{Symbol: "run_away"},
	{Symbol: "rock_head"},
	{Symbol: "shell_armor", Breakable: true},
	{Symbol: "inner_focus", Breakable: true},
	{Symbol: "multiscale", Breakable: true},
	{Symbol: "lightning_rod", Breakable: true},
	{Symbol: "sand_stream"},
	{Symbol: "drizzle"},
	{Symbol: "drought"},
	{Symbol: "natural_cure"},
	{Symbol: "magic_guard"},
	{Symbol: "unnerve"},
	{Symbol: "trace"},
	{Symbol: "aura_break"},
}

// AbilityTable: глобальный registry способностей.
var AbilityTable map[string]*AbilityTemplate

// GetAbility returns the ability template for symbol, or nil if unknown.
func GetAbility(symbol string) *AbilityTemplate {
	if AbilityTable == nil {
		return nil
	}
	return AbilityTable[symbol]
}

// LoadAbilities строит AbilityTable из Go-литералов.
func LoadAbilities() error {
	AbilityTable = make(map[string]*AbilityTemplate, len(abilityDefs))
	for i := range abilityDefs {
		AbilityTable[abilityDefs[i].Symbol] = &abilityDefs[i]
	}
	slog.Info("loaded abilities", "count", len(AbilityTable))
	return nil
}
