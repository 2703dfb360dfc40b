package battle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/testutil"
)

type testBattle struct {
	*Logic
	log *MessageLog
}

// newTestBattle starts a battle with the given parties and options. The message log
// option is always added.
func newTestBattle(t *testing.T, rng RNG, ally, enemy []*model.Creature, opts ...Option) *testBattle {
	t.Helper()
	log := &MessageLog{}
	opts = append([]Option{WithRNG(rng), WithMessages(log)}, opts...)
	l, err := New(ally, enemy, opts...)
	require.NoError(t, err)
	l.Start()
	return &testBattle{Logic: l, log: log}
}

// duel is the usual single battle: a snorlax against a kangaskhan, both with
// round stats so damage can be checked by hand.
func duel(t *testing.T, rng RNG, allyMoves ...string) *testBattle {
	t.Helper()
	ally := testutil.Creature(t, "snorlax", 50, allyMoves...)
	enemy := testutil.Creature(t, "kangaskhan", 50, "tackle")
	ally.Ability, enemy.Ability = "", ""
	b := newTestBattle(t, rng, []*model.Creature{ally}, []*model.Creature{enemy})
	setStats(b.BattlerAt(BankAlly, 0), model.Stats{HP: 200, Atk: 100, Dfe: 100, Spd: 80, Ats: 100, Dfs: 100})
	setStats(b.BattlerAt(BankEnemy, 0), model.Stats{HP: 200, Atk: 100, Dfe: 100, Spd: 60, Ats: 100, Dfs: 100})
	return b
}

func setStats(b *Battler, s model.Stats) {
	b.stats = s
	b.SetHP(s.HP)
}

func testMove(t *testing.T, m data.MoveTemplate) *Move {
	t.Helper()
	if m.PP == 0 {
		m.PP = 10
	}
	if m.Method == "" {
		m.Method = "s_basic"
	}
	if m.Target == "" {
		m.Target = data.TargetAdjacentFoe
	}
	testutil.TestMove(t, m)
	return NewMove(m.Symbol, m.PP, m.PP)
}

// recordingEffect counts the events it receives.
type recordingEffect struct {
	BaseEffect
	endTurns int
	expired  int
}

func newRecordingEffect(name string, turns int) *recordingEffect {
	return &recordingEffect{BaseEffect: NewBaseEffect(name, turns)}
}

func (e *recordingEffect) OnEndTurnEvent(*Logic, []*Battler) { e.endTurns++ }
func (e *recordingEffect) OnExpire(*Logic)                   { e.expired++ }
