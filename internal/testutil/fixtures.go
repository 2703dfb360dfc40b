package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/model"
)

// Creature builds a full-health creature with perfect IVs and a neutral nature.
func Creature(t testing.TB, species string, level int, moves ...string) *model.Creature {
	t.Helper()
	data.MustLoadForTest()
	c, err := model.NewCreature(species, level, moves...)
	require.NoError(t, err)
	c.IV = model.StatSet{HP: model.MaxIV, Atk: model.MaxIV, Dfe: model.MaxIV, Spd: model.MaxIV, Ats: model.MaxIV, Dfs: model.MaxIV}
	c.HP = c.Stats().HP
	c.Gender = model.GenderMale
	return c
}

// Holding sets the held item of c and returns it.
func Holding(c *model.Creature, item string) *model.Creature {
	c.ItemHolding = item
	return c
}

// WithAbility sets the ability of c and returns it.
func WithAbility(c *model.Creature, ability string) *model.Creature {
	c.Ability = ability
	return c
}

// TestMove registers a move with exact numbers for the duration of the test.
func TestMove(t testing.TB, m data.MoveTemplate) {
	t.Helper()
	data.SetTestMove(m)
	t.Cleanup(func() { data.DeleteTestMove(m.Symbol) })
}
