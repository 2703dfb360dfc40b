package battle

import "fmt"

// Failure tells why a move, or a move against one target, did nothing.
type Failure int8

const (
	FailureNone          Failure = iota
	FailureUsage                 // could not be attempted, or failed on its own
	FailureTargeting             // no living target
	FailureMiss                  // accuracy roll failed
	FailureImmune                // type or ability immunity
	FailurePrevented             // blocked by an effect (protect, absorb)
	FailureUnimplemented         // no procedure for the move method
)

var failureNames = [...]string{"none", "usage", "targeting", "miss", "immune", "prevented", "unimplemented"}

func (f Failure) String() string {
	if f < 0 || int(f) >= len(failureNames) {
		return fmt.Sprintf("failure(%d)", int8(f))
	}
	return failureNames[f]
}

// TargetOutcome is what happened to one target.
type TargetOutcome struct {
	Target        *Battler
	Failure       Failure
	Damage        int
	Hits          int
	Critical      bool
	Effectiveness float64
}

// MoveResult is the outcome of one move action.
type MoveResult struct {
	User     *Battler
	Move     *Move
	Failure  Failure
	Charging bool
	Targets  []TargetOutcome
}

// Succeeded reports whether at least one target was affected.
func (r MoveResult) Succeeded() bool {
	if r.Failure != FailureNone {
		return false
	}
	if r.Charging {
		return true
	}
	for _, t := range r.Targets {
		if t.Failure == FailureNone {
			return true
		}
	}
	return false
}

// TotalDamage sums the HP removed from every target.
func (r MoveResult) TotalDamage() int {
	total := 0
	for _, t := range r.Targets {
		total += t.Damage
	}
	return total
}

// Outcome returns the outcome of one target.
func (r MoveResult) Outcome(b *Battler) (TargetOutcome, bool) {
	for _, t := range r.Targets {
		if t.Target == b {
			return t, true
		}
	}
	return TargetOutcome{}, false
}
