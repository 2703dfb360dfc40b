package data

import (
	"fmt"
	"log/slog"
)

// BaseStats holds the six species base stats.
type BaseStats struct {
	HP  int
	Atk int
	Dfe int
	Spd int
	Ats int
	Dfs int
}

// SpeciesTemplate is the read-only reference record of a species.
type SpeciesTemplate struct {
	Symbol    string
	ID        int
	Type1     Type
	Type2     Type
	Base      BaseStats
	Abilities []string
	// GenderRate is the female ratio in percent; -1 means genderless.
	GenderRate int
	// CanEvolve marks not-fully-evolved species (eviolite).
	CanEvolve bool
}

var speciesDefs = []SpeciesTemplate{
	{Symbol: "bulbasaur", ID: 1, Type1: TypeGrass, Type2: TypePoison, Base: BaseStats{45, 49, 49, 45, 65, 65}, Abilities: []string{"overgrow", "chlorophyll"}, GenderRate: 12, CanEvolve: true},
	{Symbol: "venusaur", ID: 3, Type1: TypeGrass, Type2: TypePoison, Base: BaseStats{80, 82, 83, 80, 100, 100}, Abilities: []string{"overgrow", "chlorophyll"}, GenderRate: 12},
	{Symbol: "charmander", ID: 4, Type1: TypeFire, Base: BaseStats{39, 52, 43, 65, 60, 50}, Abilities: []string{"blaze", "solid_rock"}, GenderRate: 12, CanEvolve: true},
	{Symbol: "charizard", ID: 6, Type1: TypeFire, Type2: TypeFlying, Base: BaseStats{78, 84, 78, 100, 109, 85}, Abilities: []string{"blaze", "solid_rock"}, GenderRate: 12},
	{Symbol: "squirtle", ID: 7, Type1: TypeWater, Base: BaseStats{44, 48, 65, 43, 50, 64}, Abilities: []string{"torrent", "swift_swim"}, GenderRate: 12, CanEvolve: true},
	{Symbol: "blastoise", ID: 9, Type1: TypeWater, Base: BaseStats{79, 83, 100, 78, 85, 105}, Abilities: []string{"torrent", "swift_swim"}, GenderRate: 12},
	{Symbol: "pidgeot", ID: 18, Type1: TypeNormal, Type2: TypeFlying, Base: BaseStats{83, 80, 75, 101, 70, 70}, Abilities: []string{"keen_eye", "big_pecks"}, GenderRate: 50},
	{Symbol: "pikachu", ID: 25, Type1: TypeElectric, Base: BaseStats{35, 55, 40, 90, 50, 50}, Abilities: []string{"static"}, GenderRate: 50, CanEvolve: true},
	{Symbol: "raichu", ID: 26, Type1: TypeElectric, Base: BaseStats{60, 90, 55, 110, 90, 80}, Abilities: []string{"static"}, GenderRate: 50},
	{Symbol: "clefable", ID: 36, Type1: TypeFairy, Base: BaseStats{95, 70, 73, 60, 95, 90}, Abilities: []string{"magic_guard", "magic_bounce"}, GenderRate: 75},
	{Symbol: "machamp", ID: 68, Type1: TypeFighting, Base: BaseStats{90, 130, 80, 55, 65, 85}, Abilities: []string{"guts", "no_guard"}, GenderRate: 25},
	{Symbol: "golem", ID: 76, Type1: TypeRock, Type2: TypeGround, Base: BaseStats{80, 120, 130, 45, 55, 65}, Abilities: []string{"sturdy", "rock_head"}, GenderRate: 50},
	{Symbol: "gengar", ID: 94, Type1: TypeGhost, Type2: TypePoison, Base: BaseStats{60, 65, 60, 110, 130, 75}, Abilities: []string{"levitate"}, GenderRate: 50},
	{Symbol: "marowak", ID: 105, Type1: TypeGround, Base: BaseStats{60, 80, 110, 45, 50, 80}, Abilities: []string{"rock_head", "lightning_rod"}, GenderRate: 50},
	{Symbol: "chansey", ID: 113, Type1: TypeNormal, Base: BaseStats{250, 5, 5, 50, 35, 105}, Abilities: []string{"natural_cure", "serene_grace"}, GenderRate: 100, CanEvolve: true},
	{Symbol: "kangaskhan", ID: 115, Type1: TypeNormal, Base: BaseStats{105, 95, 80, 90, 40, 80}, Abilities: []string{"scrappy", "parental_bond"}, GenderRate: 100},
	{Symbol: "gyarados", ID: 130, Type1: TypeWater, Type2: TypeFlying, Base: BaseStats{95, 125, 79, 81, 60, 100}, Abilities: []string{"intimidate"}, GenderRate: 50},
	{Symbol: "lapras", ID: 131, Type1: TypeWater, Type2: TypeIce, Base: BaseStats{130, 85, 80, 60, 85, 95}, Abilities: []string{"water_absorb", "shell_armor"}, GenderRate: 50},
	{Symbol: "ditto", ID: 132, Type1: TypeNormal, Base: BaseStats{48, 48, 48, 48, 48, 48}, Abilities: []string{"limber"}, GenderRate: -1},
	{Symbol: "snorlax", ID: 143, Type1: TypeNormal, Base: BaseStats{160, 110, 65, 30, 65, 110}, Abilities: []string{"immunity", "thick_fat"}, GenderRate: 12},
	{Symbol: "dragonite", ID: 149, Type1: TypeDragon, Type2: TypeFlying, Base: BaseStats{91, 134, 95, 80, 100, 100}, Abilities: []string{"inner_focus", "multiscale"}, GenderRate: 50},
	{Symbol: "scizor", ID: 212, Type1: TypeBug, Type2: TypeSteel, Base: BaseStats{70, 130, 100, 65, 55, 80}, Abilities: []string{"swarm", "technician"}, GenderRate: 50},
	{Symbol: "skarmory", ID: 227, Type1: TypeSteel, Type2: TypeFlying, Base: BaseStats{65, 80, 140, 70, 40, 70}, Abilities: []string{"keen_eye", "sturdy"}, GenderRate: 50},
	{Symbol: "tyranitar", ID: 248, Type1: TypeRock, Type2: TypeDark, Base: BaseStats{100, 134, 110, 61, 95, 100}, Abilities: []string{"sand_stream", "unnerve"}, GenderRate: 50},
	{Symbol: "gardevoir", ID: 282, Type1: TypePsychic, Type2: TypeFairy, Base: BaseStats{68, 65, 65, 80, 125, 115}, Abilities: []string{"synchronize", "trace"}, GenderRate: 50},
	{Symbol: "excadrill", ID: 530, Type1: TypeGround, Type2: TypeSteel, Base: BaseStats{110, 135, 60, 88, 50, 65}, Abilities: []string{"sand_rush", "mold_breaker"}, GenderRate: 50},
	{Symbol: "zekrom", ID: 644, Type1: TypeDragon, Type2: TypeElectric, Base: BaseStats{100, 150, 120, 90, 120, 100}, Abilities: []string{"teravolt"}, GenderRate: -1},
	{Symbol: "zygarde", ID: 718, Type1: TypeDragon, Type2: TypeGround, Base: BaseStats{108, 100, 121, 95, 81, 95}, Abilities: []string{"aura_break"}, GenderRate: -1},
}

// SpeciesTable: глобальный registry видов по символу.
var SpeciesTable map[string]*SpeciesTemplate

// GetSpecies returns the species template for symbol, or nil if unknown.
func GetSpecies(symbol string) *SpeciesTemplate {
	if SpeciesTable == nil {
		return nil
	}
	return SpeciesTable[symbol]
}

// LoadSpecies строит SpeciesTable из Go-литералов.
func LoadSpecies() error {
	SpeciesTable = make(map[string]*SpeciesTemplate, len(speciesDefs))
	for i := range speciesDefs {
		def := &speciesDefs[i]
		if !IsValidType(def.Type1) {
			return fmt.Errorf("species %s: %w", def.Symbol, &UnknownNameError{Kind: "type", Name: string(def.Type1)})
		}
		SpeciesTable[def.Symbol] = def
	}
	slog.Info("loaded species", "count", len(SpeciesTable))
	return nil
}
