package battle

import "errors"

var (
	// ErrUnknownSpecies is returned when a creature names a species missing from reference data.
	ErrUnknownSpecies = errors.New("unknown species")
	// ErrUnknownMove is returned when a creature knows a move missing from reference data.
	ErrUnknownMove = errors.New("unknown move")
	// ErrInvalidAction is returned for actions that cannot be executed at all
	// (bad move index, battler not on the field, item not usable from the bag).
	ErrInvalidAction = errors.New("invalid action")
	// ErrBattleOver is returned when an action is submitted after the battle ended.
	ErrBattleOver = errors.New("battle is over")
)
