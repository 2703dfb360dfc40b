package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/game/battle"
	"github.com/udisondev/battlecore/internal/testutil"
)

func TestWeather_ExpiresAfterFiveTurns(t *testing.T) {
	l, log := newBattle(t, testutil.NewScriptedRNG(), plain(t, "snorlax", "tackle"), plain(t, "kangaskhan", "tackle"))
	ally := l.BattlerAt(battle.BankAlly, 0)

	require.True(t, startWeather(l, battle.WeatherSandstorm))
	assert.False(t, startWeather(l, battle.WeatherSandstorm))

	for range weatherTurns {
		l.EndTurn()
	}

	assert.Equal(t, battle.WeatherNone, l.Weather())
	assert.Equal(t, weatherTurns, log.Count("weather_continue"))
	assert.Equal(t, 1, log.Count("weather_end"))
	assert.Equal(t, ally.MaxHP()-weatherTurns*(ally.MaxHP()/16), ally.HP())
}

func TestReflect_HalvesPhysicalUnlessCritical(t *testing.T) {
	l, _ := newBattle(t, testutil.NewScriptedRNG(), plain(t, "snorlax", "tackle", "growl"), plain(t, "kangaskhan", "tackle"))
	user, target := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)
	require.True(t, l.Field().Bank(battle.BankEnemy).Add(l, newBankEffect("reflect", battle.BankEnemy)))

	mod1 := func(critical bool) float64 {
		args := battle.DamageArgs{L: l, User: user, Target: target, Move: user.Move(0), Critical: critical, TargetCount: 1}
		return l.Hooks().Mod1.Fold(args, 1, func(acc, r float64) float64 { return acc * r })
	}

	assert.InDelta(t, 0.5, mod1(false), 1e-9)
	assert.InDelta(t, 1.0, mod1(true), 1e-9)
}

func TestGravity_GroundsAndFailsTwice(t *testing.T) {
	l, log := newBattle(t, testutil.NewScriptedRNG(), plain(t, "snorlax", "gravity"), plain(t, "pidgeot", "fly"))
	user, flyer := l.BattlerAt(battle.BankAlly, 0), l.BattlerAt(battle.BankEnemy, 0)
	require.False(t, l.IsGrounded(flyer, nil, nil))

	_, err := l.UseMove(context.Background(), user, user.Move(0), battle.BankAlly, 0)
	require.NoError(t, err)

	assert.True(t, l.Gravity())
	assert.True(t, l.IsGrounded(flyer, nil, nil))
	assert.False(t, l.CheckUsability(flyer, flyer.Move(0)))
	assert.Equal(t, 1, log.Count("gravity_prevents"))

	res, err := l.UseMove(context.Background(), user, user.Move(0), battle.BankAlly, 0)
	require.NoError(t, err)
	assert.Equal(t, battle.FailureUsage, res.Failure)
	assert.Equal(t, 1, log.Count("move_failed"))
}

func TestTrickRoom_SecondUseEndsIt(t *testing.T) {
	l, log := newBattle(t, testutil.NewScriptedRNG(), plain(t, "snorlax", "trick_room"), plain(t, "kangaskhan", "tackle"))
	user := l.BattlerAt(battle.BankAlly, 0)

	_, err := l.UseMove(context.Background(), user, user.Move(0), battle.BankAlly, 0)
	require.NoError(t, err)
	assert.True(t, l.TrickRoom())

	_, err = l.UseMove(context.Background(), user, user.Move(0), battle.BankAlly, 0)
	require.NoError(t, err)
	assert.False(t, l.TrickRoom())
	assert.Equal(t, 1, log.Count("trick_room_end"))
}

func TestBankEffect_RejectsSecondUse(t *testing.T) {
	l, log := newBattle(t, testutil.NewScriptedRNG(), plain(t, "snorlax", "light_screen"), plain(t, "kangaskhan", "tackle"))
	user := l.BattlerAt(battle.BankAlly, 0)

	for range 2 {
		_, err := l.UseMove(context.Background(), user, user.Move(0), battle.BankAlly, 0)
		require.NoError(t, err)
	}

	assert.True(t, l.Field().Bank(battle.BankAlly).Has("light_screen"))
	assert.Equal(t, 1, log.Count("bank_effect"))
	assert.Equal(t, 1, log.Count("move_failed"))
}

func TestTerrain_ReplacesAndExpires(t *testing.T) {
	l, log := newBattle(t, testutil.NewScriptedRNG(), plain(t, "snorlax", "grassy_terrain", "misty_terrain"), plain(t, "kangaskhan", "tackle"))
	user := l.BattlerAt(battle.BankAlly, 0)

	_, err := l.UseMove(context.Background(), user, user.Move(0), battle.BankAlly, 0)
	require.NoError(t, err)
	_, err = l.UseMove(context.Background(), user, user.Move(1), battle.BankAlly, 0)
	require.NoError(t, err)
	require.Equal(t, battle.TerrainMisty, l.Terrain())

	for range terrainTurns {
		l.EndTurn()
	}

	assert.Equal(t, battle.TerrainNone, l.Terrain())
	assert.Equal(t, 2, log.Count("terrain_start"))
}
