package battle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/testutil"
)

func TestCalcDamage_ReferenceHit(t *testing.T) {
	// L50, power 80, atk 100 vs def 100, STAB, no critical, random 100:
	// (22*80*100/50)/100 = 35; +2 = 37; *1.5 = 55
	b := duel(t, testutil.NewScriptedRNG())
	move := testMove(t, data.MoveTemplate{Symbol: "test_strike", Type: data.TypeNormal, Power: 80, Accuracy: 100, Category: data.CategoryPhysical})
	user, target := b.BattlerAt(BankAlly, 0), b.BattlerAt(BankEnemy, 0)

	dmg := b.CalcDamage(user, target, move, false, 1)

	assert.Equal(t, 55, dmg.HP)
	assert.Equal(t, 1.0, dmg.Effectiveness)
	assert.False(t, dmg.Critical)
}

func TestCalcDamage_CriticalIgnoresLoweredAttack(t *testing.T) {
	b := duel(t, testutil.NewScriptedRNG())
	move := testMove(t, data.MoveTemplate{Symbol: "test_strike", Type: data.TypeNormal, Power: 80, Accuracy: 100, Category: data.CategoryPhysical})
	user, target := b.BattlerAt(BankAlly, 0), b.BattlerAt(BankEnemy, 0)
	user.SetStage(data.StatAtk, -2)
	target.SetStage(data.StatDfe, 2)

	// 37 * 1.5 = 55; *1.5 STAB = 82
	assert.Equal(t, 82, b.CalcDamage(user, target, move, true, 1).HP)
	// without the critical hit both stages apply: atk 50 vs def 200
	assert.Less(t, b.CalcDamage(user, target, move, false, 1).HP, 55)
}

func TestCalcDamage_RandomFactorLowerBound(t *testing.T) {
	// random roll 0 -> factor 85: 37*85/100 = 31; *1.5 = 46
	b := duel(t, testutil.NewScriptedRNG(0))
	move := testMove(t, data.MoveTemplate{Symbol: "test_strike", Type: data.TypeNormal, Power: 80, Accuracy: 100, Category: data.CategoryPhysical})

	assert.Equal(t, 46, b.CalcDamage(b.BattlerAt(BankAlly, 0), b.BattlerAt(BankEnemy, 0), move, false, 1).HP)
}

func TestCalcDamage_SpreadReduction(t *testing.T) {
	b := duel(t, testutil.NewScriptedRNG())
	move := testMove(t, data.MoveTemplate{Symbol: "test_wave", Type: data.TypeNormal, Power: 80, Accuracy: 100, Category: data.CategoryPhysical, Target: data.TargetAllFoe})

	// 35 * 0.75 = 26; +2 = 28; *1.5 = 42
	assert.Equal(t, 42, b.CalcDamage(b.BattlerAt(BankAlly, 0), b.BattlerAt(BankEnemy, 0), move, false, 2).HP)
}

func TestUseMove_DamageIsAppliedOnce(t *testing.T) {
	rng := testutil.NewScriptedRNG()
	b := duel(t, rng)
	move := testMove(t, data.MoveTemplate{Symbol: "test_strike", Type: data.TypeNormal, Power: 80, Accuracy: 100, Category: data.CategoryPhysical})
	user, target := b.BattlerAt(BankAlly, 0), b.BattlerAt(BankEnemy, 0)

	res, err := b.UseMove(context.Background(), user, move, BankEnemy, 0)

	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.Equal(t, 55, res.TotalDamage())
	assert.Equal(t, 145, target.HP())
	assert.Equal(t, 9, move.PP())
	// accuracy 100 needs no roll: critical roll then damage roll
	assert.Equal(t, []int{24, 16}, rng.Calls)
}

func TestUseMove_DamageClampsAtZeroAndFaints(t *testing.T) {
	b := duel(t, testutil.NewScriptedRNG())
	move := testMove(t, data.MoveTemplate{Symbol: "test_strike", Type: data.TypeNormal, Power: 80, Accuracy: 100, Category: data.CategoryPhysical})
	user, target := b.BattlerAt(BankAlly, 0), b.BattlerAt(BankEnemy, 0)
	target.SetHP(30)

	res, err := b.UseMove(context.Background(), user, move, BankEnemy, 0)

	require.NoError(t, err)
	assert.Equal(t, 30, res.TotalDamage())
	assert.Equal(t, 0, target.HP())
	assert.True(t, target.Dead())
	assert.Equal(t, 1, b.log.Count("faint"))
	assert.Equal(t, ResultVictory, b.Result())
}

func TestUseMove_TypeImmunity(t *testing.T) {
	rng := testutil.NewScriptedRNG()
	ally := testutil.Creature(t, "snorlax", 50, "tackle")
	enemy := testutil.Creature(t, "gengar", 50, "tackle")
	ally.Ability, enemy.Ability = "", ""
	b := newTestBattle(t, rng, []*model.Creature{ally}, []*model.Creature{enemy})
	user, target := b.BattlerAt(BankAlly, 0), b.BattlerAt(BankEnemy, 0)
	hp := target.HP()

	res, err := b.UseMove(context.Background(), user, user.Move(0), BankEnemy, 0)

	require.NoError(t, err)
	assert.Equal(t, FailureImmune, res.Failure)
	assert.Equal(t, hp, target.HP())
	assert.Empty(t, rng.Calls)
	assert.Equal(t, 1, b.log.Count("immune"))
}

func TestUseMove_StatusMoveTypeImmunity(t *testing.T) {
	tests := []struct {
		name      string
		flagged   bool
		failure   Failure
		paralyzed bool
		immune    int
	}{
		{name: "flagged", flagged: true, failure: FailureImmune, paralyzed: false, immune: 1},
		{name: "unflagged", flagged: false, failure: FailureNone, paralyzed: true, immune: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := testutil.NewScriptedRNG()
			ally := testutil.Creature(t, "snorlax", 50, "tackle")
			enemy := testutil.Creature(t, "marowak", 50, "tackle")
			ally.Ability, enemy.Ability = "", ""
			b := newTestBattle(t, rng, []*model.Creature{ally}, []*model.Creature{enemy})
			move := testMove(t, data.MoveTemplate{
				Symbol: "test_jolt", Type: data.TypeElectric, Category: data.CategoryStatus,
				Status: data.StatusParalysis, Flags: data.MoveFlags{TypeImmune: tt.flagged},
			})
			target := b.BattlerAt(BankEnemy, 0)

			res, err := b.UseMove(context.Background(), b.BattlerAt(BankAlly, 0), move, BankEnemy, 0)

			require.NoError(t, err)
			assert.Equal(t, tt.failure, res.Failure)
			assert.Equal(t, tt.paralyzed, target.Paralyzed())
			assert.Equal(t, tt.immune, b.log.Count("immune"))
		})
	}
}

func TestStab_OnlyForMatchingType(t *testing.T) {
	b := duel(t, testutil.NewScriptedRNG())
	user, target := b.BattlerAt(BankAlly, 0), b.BattlerAt(BankEnemy, 0)
	normal := testMove(t, data.MoveTemplate{Symbol: "test_strike", Type: data.TypeNormal, Power: 80, Category: data.CategoryPhysical})
	fighting := testMove(t, data.MoveTemplate{Symbol: "test_chop", Type: data.TypeFighting, Power: 80, Category: data.CategoryPhysical})

	assert.Equal(t, 1.5, b.Stab(user, target, normal))
	assert.Equal(t, 1.0, b.Stab(user, target, fighting))
}
