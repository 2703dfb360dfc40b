package data

// Type: элементальный тип атаки или существа.
type Type string

const (
	TypeNone     Type = ""
	TypeNormal   Type = "normal"
	TypeFire     Type = "fire"
	TypeWater    Type = "water"
	TypeElectric Type = "electric"
	TypeGrass    Type = "grass"
	TypeIce      Type = "ice"
	TypeFighting Type = "fighting"
	TypePoison   Type = "poison"
	TypeGround   Type = "ground"
	TypeFlying   Type = "flying"
	TypePsychic  Type = "psychic"
	TypeBug      Type = "bug"
	TypeRock     Type = "rock"
	TypeGhost    Type = "ghost"
	TypeDragon   Type = "dragon"
	TypeDark     Type = "dark"
	TypeSteel    Type = "steel"
	TypeFairy    Type = "fairy"
)

// AllTypes lists every real type in chart order.
var AllTypes = []Type{
	TypeNormal, TypeFire, TypeWater, TypeElectric, TypeGrass, TypeIce,
	TypeFighting, TypePoison, TypeGround, TypeFlying, TypePsychic, TypeBug,
	TypeRock, TypeGhost, TypeDragon, TypeDark, TypeSteel, TypeFairy,
}

// typeChart хранит только отличные от 1.0 множители: typeChart[attack][defense].
var typeChart = map[Type]map[Type]float64{
	TypeNormal: {TypeRock: 0.5, TypeGhost: 0, TypeSteel: 0.5},
	TypeFire: {
		TypeFire: 0.5, TypeWater: 0.5, TypeGrass: 2, TypeIce: 2, TypeBug: 2,
		TypeRock: 0.5, TypeDragon: 0.5, TypeSteel: 2,
	},
	TypeWater: {
		TypeFire: 2, TypeWater: 0.5, TypeGrass: 0.5, TypeGround: 2, TypeRock: 2, TypeDragon: 0.5,
	},
	TypeElectric: {
		TypeWater: 2, TypeElectric: 0.5, TypeGrass: 0.5, TypeGround: 0, TypeFlying: 2, TypeDragon: 0.5,
	},
	TypeGrass: {
		TypeFire: 0.5, TypeWater: 2, TypeGrass: 0.5, TypePoison: 0.5, TypeGround: 2,
		TypeFlying: 0.5, TypeBug: 0.5, TypeRock: 2, TypeDragon: 0.5, TypeSteel: 0.5,
	},
	TypeIce: {
		TypeFire: 0.5, TypeWater: 0.5, TypeGrass: 2, TypeIce: 0.5, TypeGround: 2,
		TypeFlying: 2, TypeDragon: 2, TypeSteel: 0.5,
	},
	TypeFighting: {
		TypeNormal: 2, TypeIce: 2, TypePoison: 0.5, TypeFlying: 0.5, TypePsychic: 0.5,
		TypeBug: 0.5, TypeRock: 2, TypeGhost: 0, TypeDark: 2, TypeSteel: 2, TypeFairy: 0.5,
	},
	TypePoison: {
		TypeGrass: 2, TypePoison: 0.5, TypeGround: 0.5, TypeRock: 0.5, TypeGhost: 0.5,
		TypeSteel: 0, TypeFairy: 2,
	},
	TypeGround: {
		TypeFire: 2, TypeElectric: 2, TypeGrass: 0.5, TypePoison: 2, TypeFlying: 0,
		TypeBug: 0.5, TypeRock: 2, TypeSteel: 2,
	},
	TypeFlying: {
		TypeElectric: 0.5, TypeGrass: 2, TypeFighting: 2, TypeBug: 2, TypeRock: 0.5, TypeSteel: 0.5,
	},
	TypePsychic: {
		TypeFighting: 2, TypePoison: 2, TypePsychic: 0.5, TypeDark: 0, TypeSteel: 0.5,
	},
	TypeBug: {
		TypeFire: 0.5, TypeGrass: 2, TypeFighting: 0.5, TypePoison: 0.5, TypeFlying: 0.5,
		TypePsychic: 2, TypeGhost: 0.5, TypeDark: 2, TypeSteel: 0.5, TypeFairy: 0.5,
	},
	TypeRock: {
		TypeFire: 2, TypeIce: 2, TypeFighting: 0.5, TypeGround: 0.5, TypeFlying: 2,
		TypeBug: 2, TypeSteel: 0.5,
	},
	TypeGhost:  {TypeNormal: 0, TypePsychic: 2, TypeGhost: 2, TypeDark: 0.5},
	TypeDragon: {TypeDragon: 2, TypeSteel: 0.5, TypeFairy: 0},
	TypeDark: {
		TypeFighting: 0.5, TypePsychic: 2, TypeGhost: 2, TypeDark: 0.5, TypeFairy: 0.5,
	},
	TypeSteel: {
		TypeFire: 0.5, TypeWater: 0.5, TypeElectric: 0.5, TypeIce: 2, TypeRock: 2,
		TypeSteel: 0.5, TypeFairy: 2,
	},
	TypeFairy: {
		TypeFire: 0.5, TypeFighting: 2, TypePoison: 0.5, TypeDragon: 2, TypeDark: 2, TypeSteel: 0.5,
	},
}

// Effectiveness returns the chart multiplier of an attack type against one defending type.
// Unknown or empty types are neutral.
func Effectiveness(attack, defense Type) float64 {
	if attack == TypeNone || defense == TypeNone {
		return 1
	}
	row, ok := typeChart[attack]
	if !ok {
		return 1
	}
	if mul, ok := row[defense]; ok {
		return mul
	}
	return 1
}

// IsValidType reports whether t is one of AllTypes.
func IsValidType(t Type) bool {
	for _, known := range AllTypes {
		if known == t {
			return true
		}
	}
	return false
}
