// Package catalog implements the held items, abilities, status conditions, field
// effects and move procedures the battle core resolves by symbol.
//
// Every family registers itself from init(); importing the package is enough to
// make its symbols available. Hook rules that are not tied to one effect are
// installed explicitly with Install.
package catalog

import (
	"log/slog"

	"github.com/udisondev/battlecore/internal/game/battle"
)

// heldEffect is the base of effects owned by one battler (ability, item, status,
// volatile). The core consults effects of both sides of an action, so concrete
// effects compare the battlers they are asked about with holder.
type heldEffect struct {
	battle.BaseEffect
	holder *battle.Battler
}

func newHeld(holder *battle.Battler, name string, turns int) heldEffect {
	return heldEffect{BaseEffect: battle.NewBaseEffect(name, turns), holder: holder}
}

// Holder returns the battler the effect belongs to.
func (e *heldEffect) Holder() *battle.Battler { return e.holder }

// active reports whether the holder is still fighting on the field.
func (e *heldEffect) active() bool {
	return e.holder.Alive() && e.holder.OnField()
}

// plainEffect is registered for symbols whose behaviour lives in a hook rule
// (scrappy, ring target) or in a procedure check (rock head).
type plainEffect struct {
	heldEffect
}

func newPlain(holder *battle.Battler, symbol string) battle.Effect {
	return &plainEffect{heldEffect: newHeld(holder, symbol, 0)}
}

// chip removes a fraction 1/n of the max HP of b as residual damage.
func chip(l *battle.Logic, b *battle.Battler, n int) int {
	return l.DamageChange(max(1, b.MaxHP()/n), b, nil, nil)
}

// healFraction restores 1/n of the max HP of b.
func healFraction(l *battle.Logic, b *battle.Battler, n int) int {
	return l.Heal(b, max(1, b.MaxHP()/n))
}

// contact reports whether move touched target.
func contact(move *battle.Move) bool {
	return move != nil && move.Flags().Contact
}

// foeOf reports whether a and b fight on opposite sides.
func foeOf(a, b *battle.Battler) bool {
	return a != nil && b != nil && a.Bank() != b.Bank()
}

func logTrigger(kind, symbol string, holder *battle.Battler) {
	slog.Debug(kind+" triggered", kind, symbol, "battler", holder.Name())
}
