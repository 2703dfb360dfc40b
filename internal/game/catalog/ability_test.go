package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
	"github.com/udisondev/battlecore/internal/testutil"
)

func TestVoltAbsorb_HealsInsteadOfDamage(t *testing.T) {
	enemy := testutil.WithAbility(plain(t, "kangaskhan", "tackle"), "volt_absorb")
	l, _ := newBattle(t, testutil.NewScriptedRNG(), plain(t, "pikachu", "thunderbolt"), enemy)
	user, holder := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)
	holder.SetHP(holder.MaxHP() / 2)

	res, err := l.UseMove(context.Background(), user, user.Move(0), battle.BankEnemy, 0)
	require.NoError(t, err)

	require.Len(t, res.Targets, 1)
	assert.Equal(t, battle.FailurePrevented, res.Targets[0].Failure)
	assert.Equal(t, holder.MaxHP()/2+holder.MaxHP()/4, holder.HP())
}

func TestVoltAbsorb_IgnoredByMoldBreaker(t *testing.T) {
	enemy := testutil.WithAbility(plain(t, "kangaskhan", "tackle"), "volt_absorb")
	ally := testutil.WithAbility(plain(t, "pikachu", "thunderbolt"), "mold_breaker")
	l, _ := newBattle(t, testutil.NewScriptedRNG(), ally, enemy)
	user, holder := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)

	res, err := l.UseMove(context.Background(), user, user.Move(0), battle.BankEnemy, 0)
	require.NoError(t, err)

	require.Len(t, res.Targets, 1)
	assert.Equal(t, battle.FailureNone, res.Targets[0].Failure)
	assert.Less(t, holder.HP(), holder.MaxHP())
}

func TestSturdy_EndureFromFullHP(t *testing.T) {
	enemy := testutil.WithAbility(plain(t, "kangaskhan", "tackle"), "sturdy")
	l, log := newBattle(t, testutil.NewScriptedRNG(), plain(t, "snorlax", "tackle"), enemy)
	user, holder := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)

	l.DamageChange(holder.MaxHP()*2, holder, user, user.Move(0))

	assert.Equal(t, 1, holder.HP())
	assert.Equal(t, 1, log.Count("sturdy"))

	l.DamageChange(holder.MaxHP(), holder, user, user.Move(0))
	assert.True(t, holder.Dead())
}

func TestSturdy_BlocksOneHitKO(t *testing.T) {
	enemy := testutil.WithAbility(plain(t, "kangaskhan", "tackle"), "sturdy")
	l, _ := newBattle(t, testutil.NewScriptedRNG(), plain(t, "snorlax", "fissure"), enemy)
	user := l.BattlerAt(battle.BankAlly, 0)

	res, err := l.UseMove(context.Background(), user, user.Move(0), battle.BankEnemy, 0)
	require.NoError(t, err)

	assert.Equal(t, battle.FailurePrevented, res.Targets[0].Failure)
}

func TestIntimidate_LowersFoeAttackOnEntry(t *testing.T) {
	ally := testutil.WithAbility(plain(t, "gyarados", "tackle"), "intimidate")
	l, _ := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "tackle"))

	assert.Equal(t, -1, l.BattlerAt(battle.BankEnemy, 0).Stage(data.StatAtk))
}

func TestClearBody_BlocksFoeDrops(t *testing.T) {
	enemy := testutil.WithAbility(plain(t, "kangaskhan", "tackle"), "clear_body")
	l, _ := newBattle(t, testutil.NewScriptedRNG(), plain(t, "snorlax", "growl"), enemy)
	user, holder := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)

	_, err := l.UseMove(context.Background(), user, user.Move(0), battle.BankEnemy, 0)
	require.NoError(t, err)

	assert.Zero(t, holder.Stage(data.StatAtk))
}

func TestDrizzle_StartsRainOnEntry(t *testing.T) {
	ally := testutil.WithAbility(plain(t, "gyarados", "tackle"), "drizzle")
	l, log := newBattle(t, testutil.NewScriptedRNG(), ally, plain(t, "kangaskhan", "tackle"))

	assert.Equal(t, battle.WeatherRain, l.Weather())
	assert.Equal(t, 1, log.Count("weather_start"))
}
