package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
	"github.com/udisondev/battlecore/internal/game/hook"
	"github.com/udisondev/battlecore/internal/testutil"
)

func TestOranBerry_TriggersOnce(t *testing.T) {
	ally := testutil.Holding(plain(t, "snorlax", "tackle"), "oran_berry")
	l, log := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "tackle"))
	holder, foe := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)
	half := holder.MaxHP() / 2

	holder.SetHP(half + 1)
	l.DamageChange(2, holder, foe, nil)

	assert.Equal(t, half-1+10, holder.HP())
	assert.Equal(t, "oran_berry", holder.ConsumedItem())
	assert.False(t, holder.HoldsItem())

	l.DamageChange(20, holder, foe, nil)

	assert.Equal(t, half-11, holder.HP())
	assert.Equal(t, 1, log.Count("berry_heal"))
}

func TestOranBerry_NotAboveHalf(t *testing.T) {
	ally := testutil.Holding(plain(t, "snorlax", "tackle"), "oran_berry")
	l, log := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "tackle"))
	holder := l.BattlerAt(battle.BankAlly, 0)

	l.DamageChange(1, holder, l.BattlerAt(battle.BankEnemy, 0), nil)

	assert.True(t, holder.HasItem("oran_berry"))
	assert.Zero(t, log.Count("berry_heal"))
}

func TestLeftovers_HealsAtEndOfTurn(t *testing.T) {
	ally := testutil.Holding(plain(t, "snorlax", "tackle"), "leftovers")
	l, log := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "tackle"))
	holder := l.BattlerAt(battle.BankAlly, 0)
	holder.SetHP(holder.MaxHP() / 2)

	l.EndTurn()

	assert.Equal(t, holder.MaxHP()/2+holder.MaxHP()/16, holder.HP())
	assert.Equal(t, 1, log.Count("leftovers"))
}

func TestBlackSludge_HurtsNonPoison(t *testing.T) {
	ally := testutil.Holding(plain(t, "snorlax", "tackle"), "black_sludge")
	l, log := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "tackle"))
	holder := l.BattlerAt(battle.BankAlly, 0)

	l.EndTurn()

	assert.Equal(t, holder.MaxHP()-holder.MaxHP()/8, holder.HP())
	assert.Equal(t, 1, log.Count("black_sludge"))
}

func TestFocusSash_SurvivesFromFullHP(t *testing.T) {
	enemy := testutil.Holding(plain(t, "kangaskhan", "tackle"), "focus_sash")
	l, _ := newBattle(t, testutil.NewScriptedRNG(), plain(t, "snorlax", "tackle"), enemy)
	user, holder := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)

	dealt := l.DamageChange(holder.MaxHP()*3, holder, user, user.Move(0))

	assert.Equal(t, holder.MaxHP()-1, dealt)
	assert.Equal(t, 1, holder.HP())
}

func TestChoiceBand_LocksFirstMove(t *testing.T) {
	ally := testutil.Holding(plain(t, "snorlax", "tackle", "growl"), "choice_band")
	l, log := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "tackle"))
	holder, foe := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)

	_, err := l.ExecuteTurn(context.Background(), []battle.Action{
		&battle.AttackAction{User: holder, MoveIndex: 0, TargetBank: battle.BankEnemy},
		&battle.AttackAction{User: foe, MoveIndex: 0, TargetBank: battle.BankAlly},
	})
	require.NoError(t, err)

	assert.True(t, l.CheckUsability(holder, holder.Move(0)))
	assert.False(t, l.CheckUsability(holder, holder.Move(1)))
	assert.Equal(t, 1, log.Count("choice_locked"))
}

func TestLifeOrb_RecoilAfterDamage(t *testing.T) {
	ally := testutil.Holding(plain(t, "snorlax", "tackle"), "life_orb")
	l, _ := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "tackle"))
	holder := l.BattlerAt(battle.BankAlly, 0)

	res, err := l.UseMove(context.Background(), holder, holder.Move(0), battle.BankEnemy, 0)
	require.NoError(t, err)

	require.Positive(t, res.TotalDamage())
	assert.Equal(t, holder.MaxHP()-holder.MaxHP()/10, holder.HP())
}

func TestLifeOrb_BoostsAfterCritical(t *testing.T) {
	testutil.TestMove(t, data.MoveTemplate{Symbol: "test_strike", Type: data.TypeNormal, Power: 60, Accuracy: 100,
		PP: 10, Category: data.CategoryPhysical, Method: "s_basic", Target: data.TargetAdjacentFoe})
	ally := testutil.Holding(plain(t, "snorlax", "tackle"), "life_orb")
	l, _ := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "tackle"))
	holder, foe := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)
	move := battle.NewMove("test_strike", 10, 10)
	args := battle.DamageArgs{L: l, User: holder, Target: foe, Move: move, TargetCount: 1}

	assert.InDelta(t, 1.3, l.Hooks().Mod2.Fold(args, 1, hook.Product), 1e-9)
	assert.Equal(t, 1.0, l.Hooks().Mod3.Fold(args, 1, hook.Product))

	// atk 130 vs def 100: (22*60*130/50)/100 = 34; +2 = 36; *1.3 = 46; *1.5 STAB = 69
	assert.Equal(t, 69, l.CalcDamage(holder, foe, move, false, 1).HP)
}

func TestMetronomeItem_ScalesMod2(t *testing.T) {
	ally := testutil.Holding(plain(t, "snorlax", "tackle"), "metronome")
	l, _ := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "tackle"))
	holder, foe := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)
	args := battle.DamageArgs{L: l, User: holder, Target: foe, Move: holder.Move(0), TargetCount: 1}

	for range 3 {
		_, err := l.ExecuteTurn(context.Background(), []battle.Action{
			&battle.AttackAction{User: holder, MoveIndex: 0, TargetBank: battle.BankEnemy},
			&battle.AttackAction{User: foe, MoveIndex: 0, TargetBank: battle.BankAlly},
		})
		require.NoError(t, err)
	}

	require.Equal(t, 3, holder.Move(0).ConsecutiveUseCount())
	assert.InDelta(t, 1.4, l.Hooks().Mod2.Fold(args, 1, hook.Product), 1e-9)
	assert.Equal(t, 1.0, l.Hooks().Mod3.Fold(args, 1, hook.Product))
}

func TestAirBalloon_LiftsUntilHit(t *testing.T) {
	ally := testutil.Holding(plain(t, "snorlax", "tackle"), "air_balloon")
	l, log := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "earthquake", "tackle"))
	holder, foe := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)
	require.False(t, l.IsGrounded(holder, nil, nil))

	res, err := l.UseMove(context.Background(), foe, foe.Move(0), battle.BankAlly, 0)
	require.NoError(t, err)
	assert.Equal(t, battle.FailureImmune, res.Failure)
	assert.Equal(t, holder.MaxHP(), holder.HP())

	l.DamageChange(10, holder, foe, nil)
	assert.True(t, holder.HasItem("air_balloon"), "only a move pops the balloon")

	res, err = l.UseMove(context.Background(), foe, foe.Move(1), battle.BankAlly, 0)
	require.NoError(t, err)
	require.Positive(t, res.TotalDamage())

	assert.Equal(t, "air_balloon", holder.ConsumedItem())
	assert.True(t, l.IsGrounded(holder, nil, nil))
	assert.Equal(t, 1, log.Count("air_balloon_pop"))
}

func TestWhiteHerb_RestoresAfterWholeAction(t *testing.T) {
	ally := testutil.Holding(plain(t, "snorlax", "close_combat"), "white_herb")
	l, log := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "tackle"))
	holder := l.BattlerAt(battle.BankAlly, 0)

	_, err := l.UseMove(context.Background(), holder, holder.Move(0), battle.BankEnemy, 0)
	require.NoError(t, err)

	assert.Zero(t, holder.Stage(data.StatDfe))
	assert.Zero(t, holder.Stage(data.StatDfs))
	assert.Equal(t, "white_herb", holder.ConsumedItem())
	assert.Equal(t, 2, log.Count("stat_change"))
	assert.Equal(t, 1, log.Count("white_herb"))
}

func TestWhiteHerb_RestoresSwitchInDrop(t *testing.T) {
	ally := testutil.Holding(plain(t, "snorlax", "tackle"), "white_herb")
	enemy := testutil.WithAbility(plain(t, "kangaskhan", "tackle"), "intimidate")
	l, log := newBattle(t, testutil.NewScriptedRNG(), ally, enemy)
	holder := l.BattlerAt(battle.BankAlly, 0)

	assert.Zero(t, holder.Stage(data.StatAtk))
	assert.Equal(t, "white_herb", holder.ConsumedItem())
	assert.Equal(t, 1, log.Count("white_herb"))
}

func TestMentalHerb_CuresTauntAfterAction(t *testing.T) {
	ally := testutil.Holding(plain(t, "snorlax", "tackle"), "mental_herb")
	l, log := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "taunt"))
	holder, foe := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)

	res, err := l.UseMove(context.Background(), foe, foe.Move(0), battle.BankAlly, 0)
	require.NoError(t, err)
	require.True(t, res.Succeeded())

	assert.False(t, holder.Effects().Has("taunt"))
	assert.Equal(t, "mental_herb", holder.ConsumedItem())
	assert.Equal(t, 1, log.Count("mental_herb"))
}

func TestOneShotResponses_FirstAttachedWins(t *testing.T) {
	t.Run("sturdy before focus sash", func(t *testing.T) {
		ally := testutil.WithAbility(testutil.Holding(plain(t, "snorlax", "tackle"), "focus_sash"), "sturdy")
		l, log := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "tackle"))
		holder, foe := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)

		l.DamageChange(holder.MaxHP()*3, holder, foe, foe.Move(0))

		assert.Equal(t, 1, holder.HP())
		assert.Equal(t, 1, log.Count("sturdy"))
		assert.True(t, holder.HasItem("focus_sash"))
		assert.Zero(t, log.Count("focus_sash"))
	})
	t.Run("balloon pops after sturdy", func(t *testing.T) {
		ally := testutil.WithAbility(testutil.Holding(plain(t, "snorlax", "tackle"), "air_balloon"), "sturdy")
		l, log := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "tackle"))
		holder, foe := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)

		l.DamageChange(holder.MaxHP()*3, holder, foe, foe.Move(0))

		assert.Equal(t, 1, holder.HP())
		assert.Equal(t, 1, log.Count("sturdy"))
		assert.Equal(t, "air_balloon", holder.ConsumedItem())
		assert.Equal(t, 1, log.Count("air_balloon_pop"))
	})
}
