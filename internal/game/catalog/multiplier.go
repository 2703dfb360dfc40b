package catalog

import (
	"slices"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

// multiplierKind names the formula slot a multiplier rule feeds.
type multiplierKind int8

const (
	kindBasePower multiplierKind = iota
	kindAttack
	kindDefense
	kindMod2
	kindMod3
	kindHitChance
	kindSpeed
)

// side tells whether a rule applies when its holder attacks or when it is attacked.
type side int8

const (
	sideUser side = iota
	sideTarget
)

// factorFunc returns the multiplier for holder facing other with move. For speed
// rules other and move are nil.
type factorFunc func(l *battle.Logic, holder, other *battle.Battler, move *battle.Move) float64

// predicate has the shape of factorFunc and gates a multiplier.
type predicate func(l *battle.Logic, holder, other *battle.Battler, move *battle.Move) bool

type multiplierRule struct {
	kind   multiplierKind
	side   side
	factor factorFunc
}

// multiplierEffect answers the multiplier interfaces of the damage formula from a
// list of rules. Items and abilities without any other behaviour are only this.
type multiplierEffect struct {
	heldEffect
	rules []multiplierRule
}

func newMultiplier(holder *battle.Battler, symbol string, rules []multiplierRule) multiplierEffect {
	return multiplierEffect{heldEffect: newHeld(holder, symbol, 0), rules: rules}
}

func (e *multiplierEffect) product(kind multiplierKind, l *battle.Logic, user, target *battle.Battler, move *battle.Move) float64 {
	m := 1.0
	for _, r := range e.rules {
		if r.kind != kind {
			continue
		}
		switch {
		case r.side == sideUser && user == e.holder:
			m *= r.factor(l, e.holder, target, move)
		case r.side == sideTarget && target == e.holder && user != e.holder:
			m *= r.factor(l, e.holder, user, move)
		}
	}
	return m
}

func (e *multiplierEffect) BasePowerMultiplier(l *battle.Logic, user, target *battle.Battler, move *battle.Move) float64 {
	return e.product(kindBasePower, l, user, target, move)
}

func (e *multiplierEffect) SpAtkMultiplier(l *battle.Logic, user, target *battle.Battler, move *battle.Move) float64 {
	return e.product(kindAttack, l, user, target, move)
}

func (e *multiplierEffect) SpDefMultiplier(l *battle.Logic, user, target *battle.Battler, move *battle.Move) float64 {
	return e.product(kindDefense, l, user, target, move)
}

func (e *multiplierEffect) Mod2Multiplier(l *battle.Logic, user, target *battle.Battler, move *battle.Move) float64 {
	return e.product(kindMod2, l, user, target, move)
}

func (e *multiplierEffect) Mod3Multiplier(l *battle.Logic, user, target *battle.Battler, move *battle.Move) float64 {
	return e.product(kindMod3, l, user, target, move)
}

func (e *multiplierEffect) ChanceOfHitMultiplier(l *battle.Logic, user, target *battle.Battler, move *battle.Move) float64 {
	return e.product(kindHitChance, l, user, target, move)
}

func (e *multiplierEffect) SpdModifier(l *battle.Logic, b *battle.Battler) float64 {
	if b != e.holder {
		return 1
	}
	m := 1.0
	for _, r := range e.rules {
		if r.kind == kindSpeed {
			m *= r.factor(l, b, nil, nil)
		}
	}
	return m
}

// registerMultiplierItem registers a held item made only of multiplier rules.
func registerMultiplierItem(symbol string, rules ...multiplierRule) {
	battle.RegisterItem(symbol, func(holder *battle.Battler, sym string) battle.Effect {
		e := newMultiplier(holder, sym, rules)
		return &e
	})
}

// registerMultiplierAbility registers an ability made only of multiplier rules.
func registerMultiplierAbility(symbol string, rules ...multiplierRule) {
	battle.RegisterAbility(symbol, func(holder *battle.Battler, sym string) battle.Effect {
		e := newMultiplier(holder, sym, rules)
		return &e
	})
}

func rule(kind multiplierKind, s side, f factorFunc) multiplierRule {
	return multiplierRule{kind: kind, side: s, factor: f}
}

// when returns a factor that applies m if pred holds.
func when(m float64, pred predicate) factorFunc {
	return func(l *battle.Logic, holder, other *battle.Battler, move *battle.Move) float64 {
		if pred(l, holder, other, move) {
			return m
		}
		return 1
	}
}

func always(m float64) factorFunc {
	return func(*battle.Logic, *battle.Battler, *battle.Battler, *battle.Move) float64 { return m }
}

func physical(_ *battle.Logic, _, _ *battle.Battler, move *battle.Move) bool {
	return move.Physical()
}

func special(_ *battle.Logic, _, _ *battle.Battler, move *battle.Move) bool {
	return move.Special()
}

func species(symbols ...string) predicate {
	return func(_ *battle.Logic, holder, _ *battle.Battler, _ *battle.Move) bool {
		for _, s := range symbols {
			if holder.Species() == s {
				return true
			}
		}
		return false
	}
}

func both(a, b predicate) predicate {
	return func(l *battle.Logic, holder, other *battle.Battler, move *battle.Move) bool {
		return a(l, holder, other, move) && b(l, holder, other, move)
	}
}

// moveOfType holds when the resolved type of the holder's move is t.
func moveOfType(t data.Type) predicate {
	return func(l *battle.Logic, holder, other *battle.Battler, move *battle.Move) bool {
		return l.MoveType(holder, other, move) == t
	}
}

// hitByType holds when the move hitting the holder resolves to one of types.
func hitByType(types ...data.Type) predicate {
	return func(l *battle.Logic, holder, other *battle.Battler, move *battle.Move) bool {
		return slices.Contains(types, l.MoveType(other, holder, move))
	}
}
