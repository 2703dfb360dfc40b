package catalog

import (
	"github.com/udisondev/battlecore/internal/game/battle"
)

const roomTurns = 5

// gravityEffect grounds everyone, raises accuracy and bans airborne moves (the
// ban is a move prevention hook rule).
type gravityEffect struct {
	battle.BaseEffect
}

func newGravity() *gravityEffect {
	return &gravityEffect{BaseEffect: battle.NewBaseEffect("gravity", roomTurns)}
}

func (e *gravityEffect) Grounding(*battle.Logic, *battle.Battler) battle.Grounding {
	return battle.GroundForced
}

func (e *gravityEffect) ChanceOfHitMultiplier(*battle.Logic, *battle.Battler, *battle.Battler, *battle.Move) float64 {
	return 5.0 / 3.0
}

func (e *gravityEffect) OnExpire(l *battle.Logic) {
	l.Say("gravity_end", "Gravity returned to normal!")
}

// trickRoomEffect reverses the speed order; its presence is all the turn order
// looks at.
type trickRoomEffect struct {
	battle.BaseEffect
}

func newTrickRoom() *trickRoomEffect {
	return &trickRoomEffect{BaseEffect: battle.NewBaseEffect("trick_room", roomTurns)}
}

func (e *trickRoomEffect) OnExpire(l *battle.Logic) {
	l.Say("trick_room_end", "The twisted dimensions returned to normal!")
}
