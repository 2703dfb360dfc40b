package battle

import (
	"github.com/samber/lo"

	"github.com/udisondev/battlecore/internal/data"
)

// ResolveTargets expands the target scope of move into the living battlers it hits.
// bank and position describe the battler chosen by the player for single-target
// scopes; when that choice is no longer valid the move is redirected to an adjacent
// foe (or any foe) the way a player would expect.
func (l *Logic) ResolveTargets(user *Battler, move *Move, bank, position int) []*Battler {
	chosen := l.BattlerAt(bank, position)
	if chosen != nil && chosen.Dead() {
		chosen = nil
	}

	switch move.Target() {
	case data.TargetUser:
		return []*Battler{user}
	case data.TargetAnyOtherPokemon:
		if chosen != nil && chosen != user {
			return []*Battler{chosen}
		}
		return l.redirect(user)
	case data.TargetAdjacentPokemon:
		if chosen != nil && chosen != user && Adjacent(user, chosen) {
			return []*Battler{chosen}
		}
		return l.redirect(user)
	case data.TargetAdjacentFoe:
		if chosen != nil && chosen.bank != user.bank && Adjacent(user, chosen) {
			return []*Battler{chosen}
		}
		return l.redirect(user)
	case data.TargetAdjacentAlly:
		if chosen != nil && chosen.bank == user.bank && chosen != user && Adjacent(user, chosen) {
			return []*Battler{chosen}
		}
		return nil
	case data.TargetRandomFoe:
		foes := l.Foes(user)
		if len(foes) <= 1 {
			return foes
		}
		return []*Battler{foes[l.rng.IntN(len(foes))]}
	case data.TargetAllFoe:
		return l.Foes(user)
	case data.TargetAllPokemon:
		return l.AllAlive()
	case data.TargetAllAlly:
		return l.Alive(user.bank)
	case data.TargetAllAllyButUser:
		return l.Allies(user)
	case data.TargetAdjacentAllFoe:
		return l.AdjacentFoes(user)
	case data.TargetAdjacentAllPokemon:
		return append(l.AdjacentAllies(user), l.AdjacentFoes(user)...)
	}
	l.logger.Warn("unknown target scope", "move", move.Symbol(), "scope", string(move.Target()))
	return nil
}

// redirect picks the replacement target of a single-target move whose chosen
// target is gone.
func (l *Logic) redirect(user *Battler) []*Battler {
	if adjacent := l.AdjacentFoes(user); len(adjacent) > 0 {
		return adjacent[:1]
	}
	if foe, ok := lo.First(l.Foes(user)); ok {
		return []*Battler{foe}
	}
	return nil
}

// IsSpread reports whether move hits every battler of its scope at once.
func IsSpread(move *Move) bool {
	switch move.Target() {
	case data.TargetAllFoe, data.TargetAllPokemon, data.TargetAdjacentAllFoe, data.TargetAdjacentAllPokemon:
		return true
	}
	return false
}
