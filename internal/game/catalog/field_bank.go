package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

const (
	screenTurns   = 5
	tailwindTurns = 4
)

// screen is implemented by bank effects that weaken one category of moves;
// the reduction itself is the "screens" Mod1 rule.
type screen interface {
	Screens(move *battle.Move) bool
}

// bankEffect is the base of effects protecting one side.
type bankEffect struct {
	battle.BaseEffect
	bank  int
	label string
}

func (e *bankEffect) covers(b *battle.Battler) bool {
	return b != nil && b.Bank() == e.bank
}

func (e *bankEffect) OnExpire(l *battle.Logic) {
	l.Say("bank_effect_end", "%s wore off!", e.label)
}

type screenEffect struct {
	bankEffect
	category data.Category
}

func (e *screenEffect) Screens(move *battle.Move) bool {
	return move.Category() == e.category
}

type safeguardEffect struct {
	bankEffect
}

func (e *safeguardEffect) OnStatusPrevention(l *battle.Logic, _ data.Status, target, launcher *battle.Battler, move *battle.Move) bool {
	if !e.covers(target) || launcher == nil || e.covers(launcher) {
		return false
	}
	if move != nil && move.Status() {
		l.Say("safeguard", "%s is protected by Safeguard!", target.Name())
	}
	return true
}

type mistEffect struct {
	bankEffect
}

func (e *mistEffect) OnStatChangePrevention(l *battle.Logic, _ data.Stat, power int, target, launcher *battle.Battler, _ *battle.Move) bool {
	if power >= 0 || !e.covers(target) || launcher == nil || e.covers(launcher) {
		return false
	}
	l.Say("mist", "%s is protected by the mist!", target.Name())
	return true
}

type tailwindEffect struct {
	bankEffect
}

func (e *tailwindEffect) SpdModifier(_ *battle.Logic, b *battle.Battler) float64 {
	if !e.covers(b) {
		return 1
	}
	return 2
}

// newBankEffect builds the bank effect started by a move, or nil for other moves.
func newBankEffect(symbol string, bank int) battle.Effect {
	base := func(turns int, label string) bankEffect {
		return bankEffect{BaseEffect: battle.NewBaseEffect(symbol, turns), bank: bank, label: label}
	}
	switch symbol {
	case "reflect":
		return &screenEffect{bankEffect: base(screenTurns, "Reflect"), category: data.CategoryPhysical}
	case "light_screen":
		return &screenEffect{bankEffect: base(screenTurns, "Light Screen"), category: data.CategorySpecial}
	case "safeguard":
		return &safeguardEffect{bankEffect: base(screenTurns, "Safeguard")}
	case "mist":
		return &mistEffect{bankEffect: base(screenTurns, "Mist")}
	case "tailwind":
		return &tailwindEffect{bankEffect: base(tailwindTurns, "Tailwind")}
	}
	return nil
}
