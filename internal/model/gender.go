package model

// Gender of a creature.
type Gender int8

const (
	GenderNone Gender = iota // genderless
	GenderMale
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "none"
	}
}

// Opposite reports whether g and other can be attracted to each other.
func (g Gender) Opposite(other Gender) bool {
	return g != GenderNone && other != GenderNone && g != other
}
