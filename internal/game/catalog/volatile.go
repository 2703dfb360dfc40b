package catalog

import (
	"slices"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

const (
	magnetRiseTurns = 5
	tauntTurns      = 3
)

// reachableWhile lists the moves that still hit a battler hidden by a charge move.
var reachableWhile = map[string][]string{
	"fly": {"gust", "thunder", "twister", "sky_uppercut", "hurricane", "smack_down", "thousand_arrows"},
	"dig": {"earthquake", "magnitude", "fissure"},
}

// twoTurnEffect hides its holder during the charge turn of fly or dig and forces
// the release on the next turn.
type twoTurnEffect struct {
	heldEffect
	move     *battle.Move
	bank     int
	position int
	turn     int
}

func newTwoTurn(holder *battle.Battler, move *battle.Move, target *battle.Battler, turn int) *twoTurnEffect {
	return &twoTurnEffect{
		heldEffect: newHeld(holder, "two_turn", 0),
		move:       move,
		bank:       target.Bank(),
		position:   target.Position(),
		turn:       turn,
	}
}

func (e *twoTurnEffect) ForcedMove() (*battle.Move, int, int) {
	return e.move, e.bank, e.position
}

func (e *twoTurnEffect) ReachableBy(move *battle.Move) bool {
	return slices.Contains(reachableWhile[e.move.Symbol()], move.Symbol())
}

// OnPostActionEvent drops the effect when the release turn was lost (flinch,
// paralysis, sleep), so the holder is not stuck charging.
func (e *twoTurnEffect) OnPostActionEvent(l *battle.Logic, user *battle.Battler, _ []*battle.Battler, move *battle.Move) {
	if user == e.holder && l.Turn() > e.turn {
		e.Kill()
	}
}

func (e *twoTurnEffect) airborne() bool { return e.move.Symbol() == "fly" }

// protectEffect shields its holder from moves that respect protection until the
// end of the turn.
type protectEffect struct {
	heldEffect
}

func (e *protectEffect) OnMovePreventionTarget(l *battle.Logic, user, target *battle.Battler, move *battle.Move) bool {
	if target != e.holder || user == target || !move.Flags().Protect {
		return false
	}
	l.Say("protected", "%s protected itself!", target.Name())
	return true
}

// groundedEffect forces its holder to the ground (smack down).
type groundedEffect struct {
	heldEffect
}

func (e *groundedEffect) Grounding(_ *battle.Logic, b *battle.Battler) battle.Grounding {
	if b != e.holder {
		return battle.GroundNoOpinion
	}
	return battle.GroundForced
}

// liftedEffect keeps its holder in the air (magnet rise).
type liftedEffect struct {
	heldEffect
}

func (e *liftedEffect) Grounding(_ *battle.Logic, b *battle.Battler) battle.Grounding {
	if b != e.holder {
		return battle.GroundNoOpinion
	}
	return battle.GroundLifted
}

func (e *liftedEffect) OnExpire(l *battle.Logic) {
	l.Say("magnet_rise_end", "%s's electromagnetism wore off!", e.holder.Name())
}

// roostEffect removes the flying type of its holder until the end of the turn.
type roostEffect struct {
	heldEffect
	type1, type2 data.Type
}

func newRoost(holder *battle.Battler) *roostEffect {
	e := &roostEffect{heldEffect: newHeld(holder, "roost", 1), type1: holder.Type1(), type2: holder.Type2()}
	t1, t2 := holder.Type1(), holder.Type2()
	switch {
	case t1 == data.TypeFlying && (t2 == data.TypeNone || t2 == data.TypeFlying):
		t1, t2 = data.TypeNormal, data.TypeNone
	case t1 == data.TypeFlying:
		t1, t2 = t2, data.TypeNone
	case t2 == data.TypeFlying:
		t2 = data.TypeNone
	}
	holder.SetTypes(t1, t2)
	return e
}

func (e *roostEffect) OnExpire(*battle.Logic) {
	e.holder.SetTypes(e.type1, e.type2)
}

// identifiedEffect marks a battler hit by foresight or miracle eye: its raised
// evasion is ignored and the matching type rule lets immune types be hit.
type identifiedEffect struct {
	heldEffect
}

func (e *identifiedEffect) IgnoresEvasion(_ *battle.Logic, _, target *battle.Battler, _ *battle.Move) bool {
	return target == e.holder
}

// tauntEffect forbids status moves for a few turns.
type tauntEffect struct {
	heldEffect
}

func (e *tauntEffect) OnMoveDisabledCheck(_ *battle.Logic, user *battle.Battler, move *battle.Move) battle.FailureReply {
	if user != e.holder || !move.Status() {
		return nil
	}
	return func(l *battle.Logic, user *battle.Battler, move *battle.Move) {
		l.Say("taunt_prevents", "%s can't use %s after the taunt!", user.Name(), battle.DisplayName(move.Symbol()))
	}
}

func (e *tauntEffect) OnExpire(l *battle.Logic) {
	l.Say("taunt_end", "%s shook off the taunt!", e.holder.Name())
}

// bringDown ends every effect keeping b in the air. Returns true if there was one.
func bringDown(b *battle.Battler) bool {
	down := false
	if e, ok := b.Effects().Get("two_turn").(*twoTurnEffect); ok && e.airborne() {
		e.Kill()
		down = true
	}
	if b.Effects().Remove("magnet_rise") {
		down = true
	}
	return down
}
