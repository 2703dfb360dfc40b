package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refreshingEffect struct {
	BaseEffect
	refreshed int
}

func (e *refreshingEffect) Refresh(*Logic, Effect) bool {
	e.refreshed++
	e.SetCounter(5)
	return true
}

func TestEffectsHandler_SameNameRejected(t *testing.T) {
	h := NewEffectsHandler()

	require.True(t, h.Add(nil, newRecordingEffect("taunt", 3)))
	assert.False(t, h.Add(nil, newRecordingEffect("taunt", 3)))
	assert.Equal(t, 1, h.Len())
}

func TestEffectsHandler_RefresherDecides(t *testing.T) {
	h := NewEffectsHandler()
	first := &refreshingEffect{BaseEffect: NewBaseEffect("reflect", 2)}
	require.True(t, h.Add(nil, first))

	assert.True(t, h.Add(nil, &refreshingEffect{BaseEffect: NewBaseEffect("reflect", 2)}))
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 1, first.refreshed)
	assert.Equal(t, 5, first.Counter())
}

func TestEffectsHandler_TickExpires(t *testing.T) {
	h := NewEffectsHandler()
	short := newRecordingEffect("short", 1)
	long := newRecordingEffect("long", 3)
	permanent := newRecordingEffect("permanent", 0)
	h.Add(nil, short)
	h.Add(nil, long)
	h.Add(nil, permanent)

	h.Tick(nil)

	assert.Equal(t, []string{"long", "permanent"}, h.Names())
	assert.Equal(t, 1, short.expired)
	assert.Equal(t, 2, long.Counter())
	assert.Equal(t, -1, permanent.Counter())
}

func TestEffectsHandler_IterationSkipsKilled(t *testing.T) {
	h := NewEffectsHandler()
	a, b := newRecordingEffect("a", 0), newRecordingEffect("b", 0)
	h.Add(nil, a)
	h.Add(nil, b)

	var seen []string
	for e := range h.All() {
		seen = append(seen, e.Name())
		b.Kill()
		h.Add(nil, newRecordingEffect("c", 0))
	}

	assert.Equal(t, []string{"a"}, seen)
	assert.Equal(t, []string{"a", "c"}, h.Names())
}

func TestEffectsHandler_ReplaceKeepsPosition(t *testing.T) {
	h := NewEffectsHandler()
	old := newRecordingEffect("weather", 5)
	h.Add(nil, old)
	h.Add(nil, newRecordingEffect("terrain", 5))

	h.Replace(newRecordingEffect("weather", 3))

	assert.True(t, old.Dead())
	assert.Equal(t, []string{"weather", "terrain"}, h.Names())
	assert.True(t, h.Remove("terrain"))
	assert.False(t, h.Remove("terrain"))
}
