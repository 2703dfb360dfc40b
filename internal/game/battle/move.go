package battle

import "github.com/udisondev/battlecore/internal/data"

// Move is a stateful move instance owned by one battler.
type Move struct {
	tmpl        *data.MoveTemplate
	pp          int
	ppMax       int
	used        bool
	consecutive int
	original    *Move
	procedure   Procedure

	// set for the duration of one damage pass
	powerFactor float64
	reflected   bool
}

// NewMove creates a move instance. The move must exist in reference data.
func NewMove(symbol string, pp, ppMax int) *Move {
	tmpl := data.GetMove(symbol)
	if ppMax <= 0 {
		ppMax = tmpl.PP
	}
	m := &Move{tmpl: tmpl, pp: min(pp, ppMax), ppMax: ppMax, powerFactor: 1}
	m.procedure = procedureFor(m)
	return m
}

// Clone returns a one-off copy borrowed for a single execution; Original points back
// to the move that produced it.
func (m *Move) Clone() *Move {
	cp := *m
	cp.original = m
	cp.powerFactor = 1
	cp.reflected = false
	return &cp
}

// Borrow creates a one-off instance of another move used on behalf of m
// (metronome). Original points back to m.
func (m *Move) Borrow(symbol string) *Move {
	b := NewMove(symbol, 1, 1)
	b.original = m
	return b
}

// Original returns the move this clone was made from, or nil.
func (m *Move) Original() *Move { return m.original }

// Template returns the reference data.
func (m *Move) Template() *data.MoveTemplate { return m.tmpl }

func (m *Move) Symbol() string           { return m.tmpl.Symbol }
func (m *Move) Method() string           { return m.tmpl.Method }
func (m *Move) Power() int               { return m.tmpl.Power }
func (m *Move) Accuracy() int            { return m.tmpl.Accuracy }
func (m *Move) Priority() int            { return m.tmpl.Priority }
func (m *Move) Category() data.Category  { return m.tmpl.Category }
func (m *Move) Target() data.TargetScope { return m.tmpl.Target }
func (m *Move) Flags() data.MoveFlags    { return m.tmpl.Flags }
func (m *Move) EffectChance() int        { return m.tmpl.EffectChance }
func (m *Move) CriticalRate() int        { return m.tmpl.CriticalRate }
func (m *Move) Procedure() Procedure     { return m.procedure }

// Type returns the base type; Logic.MoveType gives the resolved one.
func (m *Move) Type() data.Type { return m.tmpl.Type }

func (m *Move) Physical() bool { return m.tmpl.IsPhysical() }
func (m *Move) Special() bool  { return m.tmpl.IsSpecial() }
func (m *Move) Status() bool   { return m.tmpl.IsStatus() }

// HasSecondaryEffect reports whether the move carries a chance-gated effect.
func (m *Move) HasSecondaryEffect() bool {
	return m.tmpl.EffectChance > 0 && (m.tmpl.Status != data.StatusNone || len(m.tmpl.StatChanges) > 0)
}

func (m *Move) PP() int    { return m.pp }
func (m *Move) MaxPP() int { return m.ppMax }

// SetPP sets the remaining PP, clamped to [0, MaxPP].
func (m *Move) SetPP(pp int) { m.pp = max(0, min(pp, m.ppMax)) }

// DecrementPP removes n PP. Returns false (and changes nothing) if no PP is left.
func (m *Move) DecrementPP(n int) bool {
	if m.pp <= 0 {
		return false
	}
	m.pp = max(0, m.pp-n)
	return true
}

// Used reports whether the move was used since the battler was sent in.
func (m *Move) Used() bool { return m.used }

// ConsecutiveUseCount is the number of back-to-back uses of this move.
func (m *Move) ConsecutiveUseCount() int { return m.consecutive }

// PowerFactor is the multiplier of the current damage pass (Parental Bond).
func (m *Move) PowerFactor() float64 { return m.powerFactor }

// Reflected reports whether the move is being bounced back.
func (m *Move) Reflected() bool { return m.reflected }

func (m *Move) markUsed(consecutive bool) {
	m.used = true
	if consecutive {
		m.consecutive++
	} else {
		m.consecutive = 1
	}
}

func (m *Move) resetUsage() {
	m.used = false
	m.consecutive = 0
}
