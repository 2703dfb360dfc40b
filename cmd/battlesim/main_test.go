package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/config"
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
	"github.com/udisondev/battlecore/internal/model"
)

func TestMain(m *testing.M) {
	data.MustLoadForTest()
	m.Run()
}

const scenarioYAML = `
ally:
  trainer_id: 1
  trainer_name: Red
  creatures:
    - species: pikachu
      level: 50
      moves: [thunderbolt, quick_attack]
      item: light_ball
      nickname: Sparky
      iv: {hp: 31, atk: 31, dfe: 31, spd: 31, ats: 31, dfs: 31}
    - species: snorlax
      level: 50
      moves: [body_slam]
enemy:
  trainer_id: 2
`

type stubLoader map[int][]*model.Creature

func (s stubLoader) LoadParty(_ context.Context, trainerID int) ([]*model.Creature, error) {
	party, ok := s[trainerID]
	if !ok {
		return nil, errors.New("no such trainer")
	}
	return party, nil
}

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := loadScenario(writeScenario(t, scenarioYAML))
	require.NoError(t, err)

	ally, err := sc.Ally.build(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, ally, 2)
	assert.Equal(t, "Sparky", ally[0].Nickname)
	assert.Equal(t, "light_ball", ally[0].ItemHolding)
	assert.Equal(t, 31, ally[0].IV.Spd)
	assert.Equal(t, ally[0].Stats().HP, ally[0].HP)
	assert.Equal(t, 1, ally[0].TrainerID)
	assert.Equal(t, "Red", ally[1].TrainerName)
	require.Len(t, ally[1].Moves, 1)
	assert.Equal(t, "body_slam", ally[1].Moves[0].Symbol)
}

func TestPartySpec_StoredParty(t *testing.T) {
	stored, err := model.NewCreature("gengar", 40, "shadow_ball")
	require.NoError(t, err)
	loader := stubLoader{2: {stored}}

	party, err := PartySpec{TrainerID: 2}.build(context.Background(), loader)
	require.NoError(t, err)
	assert.Equal(t, []*model.Creature{stored}, party)

	_, err = PartySpec{TrainerID: 2}.build(context.Background(), nil)
	assert.Error(t, err)

	_, err = PartySpec{TrainerID: 9}.build(context.Background(), stubLoader{9: nil})
	assert.Error(t, err)
}

func TestCreatureSpec_Unknown(t *testing.T) {
	tests := []struct {
		name string
		spec CreatureSpec
	}{
		{"species", CreatureSpec{Species: "missingno", Level: 5}},
		{"move", CreatureSpec{Species: "pikachu", Level: 5, Moves: []string{"hyper_beam_9000"}}},
		{"ability", CreatureSpec{Species: "pikachu", Level: 5, Ability: "wonder_skin_x"}},
		{"item", CreatureSpec{Species: "pikachu", Level: 5, Item: "master_ball_x"}},
		{"nature", CreatureSpec{Species: "pikachu", Level: 5, Nature: "grumpy"}},
		{"level", CreatureSpec{Species: "pikachu", Level: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.spec.build()
			assert.Error(t, err)
		})
	}
}

func testParties(t *testing.T) (ally, enemy []*model.Creature) {
	t.Helper()
	a, err := model.NewCreature("pikachu", 50, "thunderbolt", "quick_attack")
	require.NoError(t, err)
	b, err := model.NewCreature("snorlax", 50, "body_slam")
	require.NoError(t, err)
	c, err := model.NewCreature("gyarados", 50, "tackle")
	require.NoError(t, err)
	return []*model.Creature{a, b}, []*model.Creature{c}
}

func battleConfig() config.BattleConfig {
	cfg := config.Default().Battle
	cfg.MaxTurns = 100
	return cfg
}

func TestSimulator_RunAll(t *testing.T) {
	ally, enemy := testParties(t)
	sim := newSimulator(battleConfig(), 42)

	results, err := sim.runAll(context.Background(), ally, enemy, 8, 3)
	require.NoError(t, err)
	require.Len(t, results, 8)

	for i, r := range results {
		assert.Equal(t, i, r.Run)
		assert.Equal(t, uint64(42+i), r.Seed)
		assert.NotEqual(t, battle.ResultNone, r.Result)
		assert.Positive(t, r.Turns)
		assert.LessOrEqual(t, r.Turns, 100)
	}

	// The input parties are never touched.
	assert.Equal(t, ally[0].Stats().HP, ally[0].HP)
	assert.Equal(t, 15, ally[0].Moves[0].PP)

	s := summarize(results)
	assert.Equal(t, 8, s.Runs)
	assert.Equal(t, 8, s.Victories+s.Defeats+s.Draws)
}

func TestSimulator_SameSeedSameOutcome(t *testing.T) {
	ally, enemy := testParties(t)

	first, err := newSimulator(battleConfig(), 7).runAll(context.Background(), ally, enemy, 4, 4)
	require.NoError(t, err)
	second, err := newSimulator(battleConfig(), 7).runAll(context.Background(), ally, enemy, 4, 1)
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].Result, second[i].Result, "run %d", i)
		assert.Equal(t, first[i].Turns, second[i].Turns, "run %d", i)
	}
}

func TestSimulator_TurnCap(t *testing.T) {
	a, err := model.NewCreature("chansey", 100, "splash")
	require.NoError(t, err)
	b, err := model.NewCreature("snorlax", 100, "splash")
	require.NoError(t, err)

	cfg := battleConfig()
	cfg.MaxTurns = 5
	res, err := newSimulator(cfg, 1).run(context.Background(), 0, []*model.Creature{a}, []*model.Creature{b})
	require.NoError(t, err)
	assert.Equal(t, battle.ResultDraw, res.Result)
	assert.True(t, res.Capped)
	assert.Equal(t, 5, res.Turns)
}

func TestSimulator_CancelledContext(t *testing.T) {
	ally, enemy := testParties(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newSimulator(battleConfig(), 1).runAll(ctx, ally, enemy, 2, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulator_MessagesOnFirstRunOnly(t *testing.T) {
	ally, enemy := testParties(t)
	sim := newSimulator(battleConfig(), 3)
	log := &battle.MessageLog{}
	sim.messages = log

	results, err := sim.runAll(context.Background(), ally, enemy, 3, 1)
	require.NoError(t, err)
	require.NotEmpty(t, log.Messages)

	// A second battle would restart the turn numbers.
	last := 0
	for _, m := range log.Messages {
		require.GreaterOrEqual(t, m.Turn, last)
		last = m.Turn
	}
	assert.Equal(t, results[0].Turns, last)
}

func TestSummary(t *testing.T) {
	s := summarize([]runResult{
		{Result: battle.ResultVictory, Turns: 4},
		{Result: battle.ResultVictory, Turns: 6},
		{Result: battle.ResultDefeat, Turns: 5},
		{Result: battle.ResultDraw, Turns: 9, Capped: true},
	})
	assert.Equal(t, 2, s.Victories)
	assert.Equal(t, 1, s.Defeats)
	assert.Equal(t, 1, s.Draws)
	assert.Equal(t, 1, s.Capped)
	assert.InDelta(t, 6.0, s.AvgTurns, 1e-9)
	assert.InDelta(t, 0.5, s.WinRate(), 1e-9)
	assert.Zero(t, summarize(nil).WinRate())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}
