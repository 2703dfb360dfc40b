package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/testutil"
)

func TestSingleTypeMultiplierOverwrite_FirstRegisteredWins(t *testing.T) {
	b := duel(t, testutil.NewScriptedRNG())
	user, target := b.BattlerAt(BankAlly, 0), b.BattlerAt(BankEnemy, 0)
	move := testMove(t, data.MoveTemplate{Symbol: "test_chop", Type: data.TypeFighting, Power: 80, Category: data.CategoryPhysical})
	h := b.Hooks().SingleTypeMultiplierOverwrite

	assert.Equal(t, 2.0, b.TypeEffectiveness(user, target, move))

	h.Register("halve", func(a TypeArgs) (float64, bool) { return 0.5, a.MoveType == data.TypeFighting })
	h.Register("nullify", func(TypeArgs) (float64, bool) { return 0, true })
	assert.Equal(t, 0.5, b.TypeEffectiveness(user, target, move))

	h.Unregister("halve")
	assert.Equal(t, 0.0, b.TypeEffectiveness(user, target, move))

	h.Unregister("nullify")
	assert.Equal(t, 2.0, b.TypeEffectiveness(user, target, move))
}

func TestMoveTypeChange_Hook(t *testing.T) {
	b := duel(t, testutil.NewScriptedRNG())
	user, target := b.BattlerAt(BankAlly, 0), b.BattlerAt(BankEnemy, 0)
	move := testMove(t, data.MoveTemplate{Symbol: "test_strike", Type: data.TypeNormal, Power: 80, Category: data.CategoryPhysical})

	b.Hooks().MoveTypeChange.Register("test", func(MoveArgs) (data.Type, bool) { return data.TypeGhost, true })

	assert.Equal(t, data.TypeGhost, b.MoveType(user, target, move))
	assert.Equal(t, 0.0, b.TypeEffectiveness(user, target, move))
	assert.Equal(t, 1.0, b.Stab(user, target, move))
}

func TestMod3_FoldsEveryAnswer(t *testing.T) {
	b := duel(t, testutil.NewScriptedRNG())
	user, target := b.BattlerAt(BankAlly, 0), b.BattlerAt(BankEnemy, 0)
	move := testMove(t, data.MoveTemplate{Symbol: "test_strike", Type: data.TypeNormal, Power: 80, Category: data.CategoryPhysical})

	b.Hooks().Mod3.Register("double", func(DamageArgs) (float64, bool) { return 2, true })
	b.Hooks().Mod3.Register("silent", func(DamageArgs) (float64, bool) { return 100, false })

	assert.Equal(t, 110, b.CalcDamage(user, target, move, false, 1).HP)
}
