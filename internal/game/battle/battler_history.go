package battle

import "github.com/udisondev/battlecore/internal/data"

// MoveHistory is one move use.
type MoveHistory struct {
	Turn    int
	Move    *Move
	Targets []*Battler
}

// DamageHistory is one HP loss.
type DamageHistory struct {
	Turn     int
	Damage   int
	Launcher *Battler
	Move     *Move
	KO       bool
}

// StatHistory is one applied stage change.
type StatHistory struct {
	Turn     int
	Stat     data.Stat
	Delta    int
	Launcher *Battler
	Move     *Move
}

func (b *Battler) addMoveHistory(turn int, move *Move, targets []*Battler) {
	b.moveHistory = append(b.moveHistory, MoveHistory{Turn: turn, Move: move, Targets: targets})
}

func (b *Battler) addSuccessfulMoveHistory(turn int, move *Move, targets []*Battler) {
	b.successfulMoveHistory = append(b.successfulMoveHistory, MoveHistory{Turn: turn, Move: move, Targets: targets})
}

func (b *Battler) addDamageHistory(turn, damage int, launcher *Battler, move *Move) {
	b.damageHistory = append(b.damageHistory, DamageHistory{
		Turn: turn, Damage: damage, Launcher: launcher, Move: move, KO: b.Dead(),
	})
}

func (b *Battler) addStatHistory(turn int, stat data.Stat, delta int, launcher *Battler, move *Move) {
	b.statHistory = append(b.statHistory, StatHistory{
		Turn: turn, Stat: stat, Delta: delta, Launcher: launcher, Move: move,
	})
}

func (b *Battler) MoveHistory() []MoveHistory           { return b.moveHistory }
func (b *Battler) SuccessfulMoveHistory() []MoveHistory { return b.successfulMoveHistory }
func (b *Battler) DamageHistory() []DamageHistory       { return b.damageHistory }
func (b *Battler) StatHistory() []StatHistory           { return b.statHistory }

// UsedMoveOnTurn reports whether the battler attempted a move on the given turn.
func (b *Battler) UsedMoveOnTurn(turn int) bool {
	for i := len(b.moveHistory) - 1; i >= 0; i-- {
		if b.moveHistory[i].Turn == turn {
			return true
		}
		if b.moveHistory[i].Turn < turn {
			break
		}
	}
	return false
}

// DamagedOnTurn reports whether the battler lost HP on the given turn.
func (b *Battler) DamagedOnTurn(turn int) bool {
	for i := len(b.damageHistory) - 1; i >= 0; i-- {
		if b.damageHistory[i].Turn == turn {
			return true
		}
		if b.damageHistory[i].Turn < turn {
			break
		}
	}
	return false
}

// StatChangedOnTurn reports whether a stage of the battler changed on the given turn.
func (b *Battler) StatChangedOnTurn(turn int) bool {
	for i := len(b.statHistory) - 1; i >= 0; i-- {
		if b.statHistory[i].Turn == turn {
			return true
		}
		if b.statHistory[i].Turn < turn {
			break
		}
	}
	return false
}

// LastMove returns the last attempted move, or nil.
func (b *Battler) LastMove() *MoveHistory {
	if len(b.moveHistory) == 0 {
		return nil
	}
	return &b.moveHistory[len(b.moveHistory)-1]
}

// LastSuccessfulMove returns the last move that did something, or nil.
func (b *Battler) LastSuccessfulMove() *MoveHistory {
	if len(b.successfulMoveHistory) == 0 {
		return nil
	}
	return &b.successfulMoveHistory[len(b.successfulMoveHistory)-1]
}

// ConsecutiveSuccesses counts how many of the battler's latest successful uses,
// on consecutive turns, were of moves accepted by match.
func (b *Battler) ConsecutiveSuccesses(match func(*Move) bool) int {
	n := 0
	expected := -1
	for i := len(b.successfulMoveHistory) - 1; i >= 0; i-- {
		h := b.successfulMoveHistory[i]
		if !match(h.Move) || (expected >= 0 && h.Turn != expected) {
			break
		}
		n++
		expected = h.Turn - 1
	}
	return n
}
