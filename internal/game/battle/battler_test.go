package battle

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/testutil"
)

func TestChangeStat_StaysInRange(t *testing.T) {
	c := testutil.Creature(t, "snorlax", 50)
	b, err := NewBattler(c, BankAlly, 0)
	require.NoError(t, err)
	r := rand.New(rand.NewPCG(1, 2))

	for range 1000 {
		stat := data.Stat(r.IntN(data.StatCount))
		amount := r.IntN(25) - 12
		before := b.Stage(stat)

		delta := b.ChangeStat(stat, amount)

		after := b.Stage(stat)
		require.GreaterOrEqual(t, after, data.MinStage)
		require.LessOrEqual(t, after, data.MaxStage)
		require.Equal(t, after-before, delta)
		require.Equal(t, data.ClampStage(before+amount), after)
	}
}

func TestNewBattler_UnknownData(t *testing.T) {
	c := testutil.Creature(t, "snorlax", 50, "tackle")

	bad := c.Clone()
	bad.Species = "missingno"
	_, err := NewBattler(bad, BankAlly, 0)
	assert.ErrorIs(t, err, ErrUnknownSpecies)

	bad = c.Clone()
	bad.Moves = append(bad.Moves, model.MoveSlot{Symbol: "no_such_move", PP: 5, PPMax: 5})
	_, err = NewBattler(bad, BankAlly, 0)
	assert.ErrorIs(t, err, ErrUnknownMove)
}

func TestSetHP_Clamps(t *testing.T) {
	b := duel(t, testutil.NewScriptedRNG())
	ally := b.BattlerAt(BankAlly, 0)

	ally.SetHP(500)
	assert.Equal(t, 200, ally.HP())
	ally.SetHP(-3)
	assert.Equal(t, 0, ally.HP())
	assert.Equal(t, 0.0, ally.HPRate())
}

func TestEnd_CopiesPersistedFieldsBack(t *testing.T) {
	ally := testutil.Holding(testutil.Creature(t, "snorlax", 50, "tackle"), "leftovers")
	ally.Ability = ""
	ally.Nickname = "Lax"
	ally.Exp = 1234
	enemy := testutil.Creature(t, "kangaskhan", 50, "tackle")
	enemy.Ability = ""
	before := ally.Clone()
	b := newTestBattle(t, testutil.NewScriptedRNG(), []*model.Creature{ally}, []*model.Creature{enemy})
	lax := b.BattlerAt(BankAlly, 0)

	_, err := b.UseMove(context.Background(), b.BattlerAt(BankEnemy, 0), b.BattlerAt(BankEnemy, 0).Move(0), BankAlly, 0)
	require.NoError(t, err)
	b.StatusChange(data.StatusBurn, lax, nil, nil)
	b.ConsumeItem(lax)
	lax.SetStage(data.StatAtk, 3)
	lax.exp = 9999

	// nothing is written before the end
	assert.Equal(t, before.HP, ally.HP)

	b.End()

	assert.Equal(t, lax.HP(), ally.HP)
	assert.Less(t, ally.HP, before.HP)
	assert.Equal(t, data.StatusBurn, ally.Status)
	assert.Empty(t, ally.ItemHolding)
	assert.Equal(t, lax.HPRate(), ally.HPRate)
	assert.Equal(t, "Lax", ally.Nickname)
	assert.Equal(t, int64(1234), ally.Exp)
	assert.Equal(t, before.IV, ally.IV)
	assert.Equal(t, before.Moves, ally.Moves)
	assert.True(t, b.Over())
}

func TestHistory_Queries(t *testing.T) {
	b := duel(t, testutil.NewScriptedRNG())
	ally, enemy := b.BattlerAt(BankAlly, 0), b.BattlerAt(BankEnemy, 0)
	move := testMove(t, data.MoveTemplate{Symbol: "test_strike", Type: data.TypeNormal, Power: 80, Accuracy: 100, Category: data.CategoryPhysical})

	b.turn = 1
	_, err := b.UseMove(context.Background(), ally, move, BankEnemy, 0)
	require.NoError(t, err)
	b.turn = 2
	_, err = b.UseMove(context.Background(), ally, move, BankEnemy, 0)
	require.NoError(t, err)

	assert.True(t, ally.UsedMoveOnTurn(2))
	assert.True(t, enemy.DamagedOnTurn(1))
	assert.False(t, enemy.StatChangedOnTurn(1))
	assert.Equal(t, 2, move.ConsecutiveUseCount())
	assert.Equal(t, 2, ally.ConsecutiveSuccesses(func(m *Move) bool { return m.Symbol() == "test_strike" }))
	require.NotNil(t, ally.LastSuccessfulMove())
	assert.Equal(t, []*Battler{enemy}, ally.LastSuccessfulMove().Targets)
}
