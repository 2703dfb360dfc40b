package battle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/testutil"
)

func TestSecondaryEffect_Chance(t *testing.T) {
	tests := []struct {
		name      string
		chance    int
		paralyzed bool
	}{
		{name: "always", chance: 100, paralyzed: true},
		{name: "never", chance: 0, paralyzed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := testutil.NewScriptedRNG()
			b := duel(t, rng)
			move := testMove(t, data.MoveTemplate{
				Symbol: "test_spark", Type: data.TypeNormal, Power: 40, Accuracy: 100,
				Category: data.CategoryPhysical, Status: data.StatusParalysis, EffectChance: tt.chance,
			})
			target := b.BattlerAt(BankEnemy, 0)

			_, err := b.UseMove(context.Background(), b.BattlerAt(BankAlly, 0), move, BankEnemy, 0)

			require.NoError(t, err)
			assert.Equal(t, tt.paralyzed, target.Paralyzed())
			// neither chance consumes a random value
			assert.Equal(t, []int{24, 16}, rng.Calls)
		})
	}
}

func TestSecondaryEffect_RollsOncePerTarget(t *testing.T) {
	// crit, damage, then the 30% roll: 29 succeeds
	rng := testutil.NewScriptedRNG(1, 15, 29)
	b := duel(t, rng)
	move := testMove(t, data.MoveTemplate{
		Symbol: "test_spark", Type: data.TypeNormal, Power: 40, Accuracy: 100,
		Category: data.CategoryPhysical, Status: data.StatusParalysis, EffectChance: 30,
	})

	_, err := b.UseMove(context.Background(), b.BattlerAt(BankAlly, 0), move, BankEnemy, 0)

	require.NoError(t, err)
	assert.True(t, b.BattlerAt(BankEnemy, 0).Paralyzed())
	assert.Equal(t, []int{24, 16, 100}, rng.Calls)
}

func TestSecondaryEffect_StatusAndStagesRollSeparately(t *testing.T) {
	// crit, damage, status roll 29 succeeds, stage roll 99 fails
	rng := testutil.NewScriptedRNG(1, 15, 29, 99)
	b := duel(t, rng)
	move := testMove(t, data.MoveTemplate{
		Symbol: "test_nuzzle", Type: data.TypeNormal, Power: 40, Accuracy: 100,
		Category: data.CategoryPhysical, Status: data.StatusParalysis, EffectChance: 30,
		StatChanges: []data.StatChange{{Stat: data.StatSpd, Amount: -1}},
	})
	target := b.BattlerAt(BankEnemy, 0)

	_, err := b.UseMove(context.Background(), b.BattlerAt(BankAlly, 0), move, BankEnemy, 0)

	require.NoError(t, err)
	assert.True(t, target.Paralyzed())
	assert.Zero(t, target.Stage(data.StatSpd))
	assert.Equal(t, []int{24, 16, 100, 100}, rng.Calls)
}

func TestSecondaryEffect_StatusMoveAlwaysApplies(t *testing.T) {
	b := duel(t, testutil.NewScriptedRNG())
	move := testMove(t, data.MoveTemplate{
		Symbol: "test_growl", Type: data.TypeNormal, Category: data.CategoryStatus,
		Target: data.TargetAllFoe, Method: "s_stat",
		StatChanges: []data.StatChange{{Stat: data.StatAtk, Amount: -1}},
	})

	res, err := b.UseMove(context.Background(), b.BattlerAt(BankAlly, 0), move, BankEnemy, 0)

	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.Equal(t, -1, b.BattlerAt(BankEnemy, 0).Stage(data.StatAtk))
}

func TestApplyStatus_MajorStatusDoesNotStack(t *testing.T) {
	b := duel(t, testutil.NewScriptedRNG())
	target := b.BattlerAt(BankEnemy, 0)

	require.True(t, b.StatusChange(data.StatusBurn, target, nil, nil))
	assert.False(t, b.StatusChange(data.StatusParalysis, target, nil, nil))
	assert.True(t, target.Burnt())

	assert.True(t, b.ApplyStatus(data.StatusSleep, target, nil, nil, StatusOptions{Force: true, Turns: 2}))
	assert.True(t, target.Asleep())
	assert.Equal(t, 2, target.StatusCount())

	assert.True(t, b.StatusChange(data.StatusNone, target, nil, nil))
	assert.False(t, target.HasStatus())
}

func TestApplyStatus_TypeImmunity(t *testing.T) {
	b := duel(t, testutil.NewScriptedRNG())
	target := b.BattlerAt(BankEnemy, 0)
	target.SetTypes(data.TypeFire, data.TypeNone)

	assert.False(t, b.StatusChange(data.StatusBurn, target, nil, nil))
	assert.True(t, b.StatusChange(data.StatusPoison, target, nil, nil))
}

func TestStatChange_ClampsAndReports(t *testing.T) {
	b := duel(t, testutil.NewScriptedRNG())
	target := b.BattlerAt(BankEnemy, 0)

	assert.Equal(t, 6, b.StatChange(data.StatAtk, 12, target, nil, nil))
	assert.Equal(t, 0, b.StatChange(data.StatAtk, 1, target, nil, nil))
	assert.Equal(t, 1, b.log.Count("stat_max"))
	assert.Equal(t, -2, b.StatChange(data.StatAtk, -2, target, nil, nil))
	assert.Equal(t, 4, target.Stage(data.StatAtk))
}
