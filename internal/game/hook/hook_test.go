package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortCircuit_FirstRegisteredWins(t *testing.T) {
	h := New[int, float64]("single_type_multiplier_overwrite", ShortCircuit)
	var secondCalled bool
	h.Register("first", func(int) (float64, bool) { return 2, true })
	h.Register("second", func(int) (float64, bool) {
		secondCalled = true
		return 0, true
	})

	got, reason, ok := h.Run(0)
	require.True(t, ok)
	assert.Equal(t, 2.0, got)
	assert.Equal(t, "first", reason)
	assert.False(t, secondCalled, "later callbacks must be skipped once one answers")
}

func TestShortCircuit_SkipsNoOpinion(t *testing.T) {
	h := New[string, string]("type_change", ShortCircuit)
	h.Register("silent", func(string) (string, bool) { return "", false })
	h.Register("answers", func(s string) (string, bool) { return s + "!", true })

	got, reason, ok := h.Run("fire")
	require.True(t, ok)
	assert.Equal(t, "fire!", got)
	assert.Equal(t, "answers", reason)
}

func TestShortCircuit_NoAnswer(t *testing.T) {
	h := New[int, bool]("prevention", ShortCircuit)
	h.Register("never", func(int) (bool, bool) { return true, false })

	_, _, ok := h.Run(1)
	assert.False(t, ok)
}

func TestFanOut_InvokesAll(t *testing.T) {
	h := New[int, int]("post_action", FanOut)
	calls := make([]string, 0, 3)
	for _, r := range []string{"a", "b", "c"} {
		h.Register(r, func(int) (int, bool) {
			calls = append(calls, r)
			return 0, false
		})
	}

	h.Run(0)
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestFold_Product(t *testing.T) {
	h := New[int, float64]("mod2", FanOut)
	h.Register("life_orb", func(int) (float64, bool) { return 1.3, true })
	h.Register("skip", func(int) (float64, bool) { return 10, false })
	h.Register("metronome", func(int) (float64, bool) { return 1.2, true })

	got := h.Fold(0, 1, Product)
	assert.InDelta(t, 1.56, got, 1e-9)
}

func TestRegister_SameReasonKeepsPosition(t *testing.T) {
	h := New[int, int]("h", ShortCircuit)
	h.Register("a", func(int) (int, bool) { return 1, true })
	h.Register("b", func(int) (int, bool) { return 2, true })
	h.Register("a", func(int) (int, bool) { return 3, true })

	assert.Equal(t, []string{"a", "b"}, h.Reasons())
	got, _, _ := h.Run(0)
	assert.Equal(t, 3, got)

	assert.True(t, h.Unregister("a"))
	assert.False(t, h.Unregister("a"))
	assert.Equal(t, 1, h.Len())
}
