package data

// Category определяет, какие статы участвуют в расчёте урона.
type Category int8

const (
	CategoryPhysical Category = iota
	CategorySpecial
	CategoryStatus
)

func (c Category) String() string {
	switch c {
	case CategoryPhysical:
		return "physical"
	case CategorySpecial:
		return "special"
	default:
		return "status"
	}
}

// UnmarshalText lets YAML overrides use category names.
func (c *Category) UnmarshalText(text []byte) error {
	switch string(text) {
	case "physical":
		*c = CategoryPhysical
	case "special":
		*c = CategorySpecial
	case "status":
		*c = CategoryStatus
	default:
		return &UnknownNameError{Kind: "category", Name: string(text)}
	}
	return nil
}

// TargetScope is the declared target symbol of a move.
type TargetScope string

const (
	TargetAnyOtherPokemon    TargetScope = "any_other_pokemon"
	TargetRandomFoe          TargetScope = "random_foe"
	TargetAdjacentPokemon    TargetScope = "adjacent_pokemon"
	TargetAdjacentFoe        TargetScope = "adjacent_foe"
	TargetUser               TargetScope = "user"
	TargetAdjacentAlly       TargetScope = "adjacent_ally"
	TargetAllFoe             TargetScope = "all_foe"
	TargetAllPokemon         TargetScope = "all_pokemon"
	TargetAllAlly            TargetScope = "all_ally"
	TargetAllAllyButUser     TargetScope = "all_ally_but_user"
	TargetAdjacentAllFoe     TargetScope = "adjacent_all_foe"
	TargetAdjacentAllPokemon TargetScope = "adjacent_all_pokemon"
)

// TargetScopes lists every supported scope.
var TargetScopes = []TargetScope{
	TargetAnyOtherPokemon, TargetRandomFoe, TargetAdjacentPokemon, TargetAdjacentFoe,
	TargetUser, TargetAdjacentAlly, TargetAllFoe, TargetAllPokemon, TargetAllAlly,
	TargetAllAllyButUser, TargetAdjacentAllFoe, TargetAdjacentAllPokemon,
}

// IsSingleTarget reports whether the scope picks exactly one battler chosen by the caller.
func (t TargetScope) IsSingleTarget() bool {
	switch t {
	case TargetAnyOtherPokemon, TargetAdjacentPokemon, TargetAdjacentFoe, TargetAdjacentAlly:
		return true
	}
	return false
}

// MoveFlags are the boolean properties effects react to.
type MoveFlags struct {
	Contact   bool `yaml:"contact"`
	Sound     bool `yaml:"sound"`
	Punch     bool `yaml:"punch"`
	Bite      bool `yaml:"bite"`
	Pulse     bool `yaml:"pulse"`
	Powder    bool `yaml:"powder"`
	Protect   bool `yaml:"protect"`    // blocked by protect
	MagicCoat bool `yaml:"magic_coat"` // reflected by magic bounce
	Ballistic bool `yaml:"ballistic"`
	Unfreeze  bool `yaml:"unfreeze"` // thaws the user
	// TypeImmune makes a status move fail on targets immune to its type.
	TypeImmune bool `yaml:"type_immune"`
}

// StatChange is one stage change carried by a move or an item.
type StatChange struct {
	Stat   Stat `yaml:"stat"`
	Amount int  `yaml:"amount"`
}

// MoveTemplate is the read-only reference record of a move.
type MoveTemplate struct {
	Symbol       string       `yaml:"symbol"`
	Type         Type         `yaml:"type"`
	Power        int          `yaml:"power"`
	Accuracy     int          `yaml:"accuracy"` // 0 = never misses
	PP           int          `yaml:"pp"`
	Category     Category     `yaml:"category"`
	Priority     int          `yaml:"priority"`
	Target       TargetScope  `yaml:"target"`
	Method       string       `yaml:"method"` // procedure symbol ("s_basic", "s_stat", ...)
	EffectChance int          `yaml:"effect_chance"`
	Status       Status       `yaml:"status"`
	StatChanges  []StatChange `yaml:"stat_changes"`
	CriticalRate int          `yaml:"critical_rate"` // extra critical stages
	Flags        MoveFlags    `yaml:"flags"`

	// Procedure parameters
	Recoil      int `yaml:"recoil"`       // 1/n of damage dealt
	Drain       int `yaml:"drain"`        // percent of damage dealt
	Heal        int `yaml:"heal"`         // percent of max HP
	FixedDamage int `yaml:"fixed_damage"` // exact HP removed
	HitMin      int `yaml:"hit_min"`
	HitMax      int `yaml:"hit_max"`
}

// IsPhysical reports whether the move uses atk/dfe.
func (m *MoveTemplate) IsPhysical() bool { return m.Category == CategoryPhysical }

// IsSpecial reports whether the move uses ats/dfs.
func (m *MoveTemplate) IsSpecial() bool { return m.Category == CategorySpecial }

// IsStatus reports whether the move deals no direct damage.
func (m *MoveTemplate) IsStatus() bool { return m.Category == CategoryStatus }
