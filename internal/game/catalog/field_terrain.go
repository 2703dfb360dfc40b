package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

const terrainTurns = 5

var terrainBoosts = map[battle.Terrain]data.Type{
	battle.TerrainElectric: data.TypeElectric,
	battle.TerrainGrassy:   data.TypeGrass,
	battle.TerrainPsychic:  data.TypePsychic,
}

// terrainEffect is the field effect backing the active terrain. Terrains only
// affect grounded battlers.
type terrainEffect struct {
	battle.BaseEffect
	kind battle.Terrain
}

func newTerrain(kind battle.Terrain, turns int) *terrainEffect {
	return &terrainEffect{BaseEffect: battle.NewBaseEffect(string(kind), turns), kind: kind}
}

func (e *terrainEffect) Terrain() battle.Terrain { return e.kind }

func (e *terrainEffect) BasePowerMultiplier(l *battle.Logic, user, target *battle.Battler, move *battle.Move) float64 {
	t := l.MoveType(user, target, move)
	if boosted, ok := terrainBoosts[e.kind]; ok && t == boosted && l.IsGrounded(user, user, move) {
		return 1.3
	}
	if e.kind == battle.TerrainMisty && t == data.TypeDragon && target != nil && l.IsGrounded(target, user, move) {
		return 0.5
	}
	return 1
}

func (e *terrainEffect) OnStatusPrevention(l *battle.Logic, status data.Status, target, launcher *battle.Battler, move *battle.Move) bool {
	if !l.IsGrounded(target, launcher, move) {
		return false
	}
	switch {
	case e.kind == battle.TerrainElectric && status == data.StatusSleep:
	case e.kind == battle.TerrainMisty && (status.IsMajor() || status == data.StatusConfusion):
	default:
		return false
	}
	if move != nil && move.Status() {
		l.Say("terrain_protects", "%s is protected by the %s!", target.Name(), battle.DisplayName(string(e.kind)))
	}
	return true
}

func (e *terrainEffect) OnMovePreventionTarget(l *battle.Logic, user, target *battle.Battler, move *battle.Move) bool {
	if e.kind != battle.TerrainPsychic || !foeOf(user, target) || l.Priority(user, move) <= 0 || !l.IsGrounded(target, user, move) {
		return false
	}
	l.Say("terrain_protects", "%s is protected by the Psychic Terrain!", target.Name())
	return true
}

func (e *terrainEffect) OnEndTurnEvent(l *battle.Logic, battlers []*battle.Battler) {
	if e.kind != battle.TerrainGrassy {
		return
	}
	for _, b := range battlers {
		if b.Alive() && b.OnField() && l.IsGrounded(b, nil, nil) && healFraction(l, b, 16) > 0 {
			l.Say("grassy_heal", "%s's HP was restored by the Grassy Terrain.", b.Name())
		}
	}
}

func (e *terrainEffect) OnExpire(l *battle.Logic) {
	l.Say("terrain_end", "The %s disappeared.", battle.DisplayName(string(e.kind)))
}
