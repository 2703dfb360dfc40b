//go:build integration

package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/model"
)

func TestCreatureRepository_SaveLoadParty(t *testing.T) {
	ctx := context.Background()
	repo := NewCreatureRepository(setupTestDB(t))

	pika, err := model.NewCreature("pikachu", 30, "thunder_shock", "quick_attack")
	require.NoError(t, err)
	pika.Nickname = "Sparky"
	pika.IV = model.StatSet{HP: 31, Atk: 20, Dfe: 10, Spd: 31, Ats: 25, Dfs: 15}
	pika.ItemHolding = "oran_berry"
	pika.Status = data.StatusParalysis
	pika.Moves[0].PP = 3

	bulba, err := model.NewCreature("bulbasaur", 12, "tackle")
	require.NoError(t, err)

	require.NoError(t, repo.SaveParty(ctx, 7, []*model.Creature{pika, bulba}))
	assert.NotZero(t, pika.RecordID)
	assert.NotZero(t, bulba.RecordID)

	party, err := repo.LoadParty(ctx, 7)
	require.NoError(t, err)
	require.Len(t, party, 2)

	got := party[0]
	assert.Equal(t, pika.RecordID, got.RecordID)
	assert.Equal(t, "Sparky", got.Nickname)
	assert.Equal(t, pika.IV, got.IV)
	assert.Equal(t, "oran_berry", got.ItemHolding)
	assert.Equal(t, data.StatusParalysis, got.Status)
	assert.Equal(t, pika.HP, got.HP)
	require.Len(t, got.Moves, 2)
	assert.Equal(t, "thunder_shock", got.Moves[0].Symbol)
	assert.Equal(t, 3, got.Moves[0].PP)
	assert.Equal(t, "bulbasaur", party[1].Species)
}

func TestCreatureRepository_SavePartyUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewCreatureRepository(setupTestDB(t))

	a, err := model.NewCreature("pikachu", 30, "thunder_shock")
	require.NoError(t, err)
	b, err := model.NewCreature("bulbasaur", 12, "tackle")
	require.NoError(t, err)
	require.NoError(t, repo.SaveParty(ctx, 1, []*model.Creature{a, b}))
	firstID := a.RecordID

	a.HP = 1
	a.Moves = a.Moves[:0]
	require.NoError(t, repo.SaveParty(ctx, 1, []*model.Creature{a}))
	assert.Equal(t, firstID, a.RecordID)

	party, err := repo.LoadParty(ctx, 1)
	require.NoError(t, err)
	require.Len(t, party, 1)
	assert.Equal(t, 1, party[0].HP)
	assert.Empty(t, party[0].Moves)
}

func TestCreatureRepository_LoadUnknownTrainer(t *testing.T) {
	repo := NewCreatureRepository(setupTestDB(t))

	party, err := repo.LoadParty(context.Background(), 404)
	require.NoError(t, err)
	assert.Empty(t, party)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	setupTestDB(t)
	version, err := RunMigrations(context.Background(), testDSN)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
