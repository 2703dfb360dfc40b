package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/data"
)

func init() {
	data.MustLoadForTest()
}

func TestCalcStats(t *testing.T) {
	// Garchomp-like reference values: base 108/130/95/102/80/85, level 100, 31 IVs, 0 EVs, neutral.
	base := data.BaseStats{HP: 108, Atk: 130, Dfe: 95, Spd: 102, Ats: 80, Dfs: 85}
	iv := StatSet{31, 31, 31, 31, 31, 31}
	got := CalcStats(base, 100, iv, StatSet{}, nil)

	assert.Equal(t, 357, got.HP)
	assert.Equal(t, 296, got.Atk)
	assert.Equal(t, 226, got.Dfe)
	assert.Equal(t, 240, got.Spd)
	assert.Equal(t, 196, got.Ats)
	assert.Equal(t, 206, got.Dfs)
}

func TestCalcStats_Nature(t *testing.T) {
	base := data.BaseStats{HP: 100, Atk: 100, Dfe: 100, Spd: 100, Ats: 100, Dfs: 100}
	got := CalcStats(base, 50, StatSet{}, StatSet{}, data.GetNature("adamant"))

	// (200*50/100 + 5) = 105 -> 115 atk, 94 ats
	assert.Equal(t, 115, got.Atk)
	assert.Equal(t, 94, got.Ats)
	assert.Equal(t, 105, got.Dfe)
	assert.Equal(t, 160, got.HP)
}

func TestNewCreature(t *testing.T) {
	c, err := NewCreature("pikachu", 50, "thunderbolt", "quick_attack")
	require.NoError(t, err)

	assert.Equal(t, "static", c.Ability)
	assert.Equal(t, c.Stats().HP, c.HP)
	require.Len(t, c.Moves, 2)
	assert.Equal(t, 15, c.Moves[0].PP)
	assert.Equal(t, "pikachu", c.Name())
}

func TestNewCreature_Errors(t *testing.T) {
	tests := []struct {
		name    string
		species string
		level   int
		moves   []string
	}{
		{"unknown species", "missingno", 10, nil},
		{"level too low", "pikachu", 0, nil},
		{"level too high", "pikachu", 101, nil},
		{"unknown move", "pikachu", 10, []string{"hyper_beam_9000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCreature(tt.species, tt.level, tt.moves...)
			assert.Error(t, err)
		})
	}
}

func TestCreature_Clone(t *testing.T) {
	c, err := NewCreature("snorlax", 30, "tackle")
	require.NoError(t, err)
	c.Ribbons = []int{1}

	cp := c.Clone()
	cp.Moves[0].PP = 0
	cp.Ribbons[0] = 9

	assert.Equal(t, 35, c.Moves[0].PP)
	assert.Equal(t, 1, c.Ribbons[0])
}

func TestGender_Opposite(t *testing.T) {
	assert.True(t, GenderMale.Opposite(GenderFemale))
	assert.False(t, GenderMale.Opposite(GenderMale))
	assert.False(t, GenderNone.Opposite(GenderFemale))
}
