package data

// Status is a battle condition. Poison..Freeze are major (persisted on the creature,
// at most one at a time); Confusion, Flinch and Attract are volatile.
type Status int8

const (
	StatusNone Status = iota
	StatusPoison
	StatusToxic
	StatusParalysis
	StatusBurn
	StatusSleep
	StatusFreeze
	StatusConfusion
	StatusFlinch
	StatusAttract
)

var statusNames = [...]string{
	StatusNone:      "none",
	StatusPoison:    "poison",
	StatusToxic:     "toxic",
	StatusParalysis: "paralysis",
	StatusBurn:      "burn",
	StatusSleep:     "sleep",
	StatusFreeze:    "freeze",
	StatusConfusion: "confusion",
	StatusFlinch:    "flinch",
	StatusAttract:   "attract",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// IsMajor reports whether the status occupies the single persistent status slot.
func (s Status) IsMajor() bool {
	return s >= StatusPoison && s <= StatusFreeze
}

// IsVolatile reports whether the status lives only while the battler stays in.
func (s Status) IsVolatile() bool {
	return s >= StatusConfusion && s <= StatusAttract
}

// ParseStatus converts a status name back to a Status.
func ParseStatus(name string) (Status, bool) {
	for i, n := range statusNames {
		if n == name {
			return Status(i), true
		}
	}
	return StatusNone, false
}

// UnmarshalText lets YAML overrides refer to statuses by name.
func (s *Status) UnmarshalText(text []byte) error {
	st, ok := ParseStatus(string(text))
	if !ok {
		return &UnknownNameError{Kind: "status", Name: string(text)}
	}
	*s = st
	return nil
}

// UnknownNameError is returned when reference data names something that does not exist.
type UnknownNameError struct {
	Kind string
	Name string
}

func (e *UnknownNameError) Error() string {
	return "unknown " + e.Kind + ": " + e.Name
}
