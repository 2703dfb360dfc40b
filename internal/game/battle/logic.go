package battle

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/trace"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/telemetry"
)

// Rules are the per-battle settings.
type Rules struct {
	// VsType is the number of battlers per bank on the field (1 to 3).
	VsType int
	// CriticalMultiplier scales the damage of critical hits.
	CriticalMultiplier float64
	// Wild battles allow the ally bank to flee.
	Wild bool
}

// DefaultRules returns single-battle rules.
func DefaultRules() Rules {
	return Rules{VsType: 1, CriticalMultiplier: 1.5}
}

// Option configures a Logic.
type Option func(*Logic)

// WithRNG injects the random source.
func WithRNG(rng RNG) Option { return func(l *Logic) { l.rng = rng } }

// WithScene injects the visual layer.
func WithScene(s Scene) Option { return func(l *Logic) { l.scene = s } }

// WithMessages injects the message sink.
func WithMessages(m MessageSink) Option { return func(l *Logic) { l.messages = m } }

// WithHooks shares a hook set prepared by the catalog.
func WithHooks(h *Hooks) Option { return func(l *Logic) { l.hooks = h } }

// WithRules overrides the default rules.
func WithRules(r Rules) Option { return func(l *Logic) { l.rules = r } }

// WithTracer overrides the tracer.
func WithTracer(t trace.Tracer) Option { return func(l *Logic) { l.tracer = t } }

// Logic is the battle context threaded through every hook call: it owns the
// battlers, the field, the hooks, the random source and the external boundaries.
//
// A Logic is driven by one goroutine; independent battles may run in parallel.
type Logic struct {
	id       uuid.UUID
	rules    Rules
	rng      RNG
	scene    Scene
	messages MessageSink
	hooks    *Hooks
	logger   *slog.Logger
	tracer   trace.Tracer

	turn    int
	parties [2][]*Battler
	field   *Field

	reflections  []reflection
	fleeAttempts int
	result       Result
	ended        bool
}

// New builds a battle between two parties. The creatures are only modified by End.
func New(ally, enemy []*model.Creature, opts ...Option) (*Logic, error) {
	l := &Logic{
		id:       uuid.New(),
		rules:    DefaultRules(),
		scene:    NopScene{},
		messages: DiscardMessages{},
		field:    newField(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.rng == nil {
		l.rng = NewRNG(uint64(l.id.ID()))
	}
	if l.hooks == nil {
		l.hooks = NewHooks()
	}
	if l.tracer == nil {
		l.tracer = telemetry.Tracer("battle")
	}
	if l.rules.VsType < 1 || l.rules.VsType > 3 {
		return nil, fmt.Errorf("new battle: vs type %d out of range", l.rules.VsType)
	}
	if l.rules.CriticalMultiplier <= 0 {
		l.rules.CriticalMultiplier = 1.5
	}
	l.logger = slog.With("battle", l.id.String())

	for bank, party := range [2][]*model.Creature{ally, enemy} {
		if len(party) == 0 {
			return nil, fmt.Errorf("new battle: bank %d has no creature", bank)
		}
		for i, c := range party {
			b, err := NewBattler(c, bank, i)
			if err != nil {
				return nil, fmt.Errorf("new battle: %w", err)
			}
			l.parties[bank] = append(l.parties[bank], b)
		}
	}
	return l, nil
}

// Start sends the first battlers of each party onto the field and fires their
// switch-in events.
func (l *Logic) Start() {
	var entered []*Battler
	for bank := range l.parties {
		pos := 0
		for _, b := range l.parties[bank] {
			if pos >= l.rules.VsType {
				break
			}
			if b.Dead() {
				continue
			}
			b.position = pos
			b.lastSentTurn = 0
			entered = append(entered, b)
			pos++
		}
	}
	l.logger.Info("battle started", "vs_type", l.rules.VsType,
		"ally", len(l.parties[BankAlly]), "enemy", len(l.parties[BankEnemy]))
	for _, b := range l.SortBySpeed(entered) {
		l.fireSwitchEvent(nil, b)
	}
}

func (l *Logic) ID() uuid.UUID        { return l.id }
func (l *Logic) Turn() int            { return l.turn }
func (l *Logic) Rules() Rules         { return l.rules }
func (l *Logic) Hooks() *Hooks        { return l.hooks }
func (l *Logic) Logger() *slog.Logger { return l.logger }

// --- topology -----------------------------------------------------------------------

// Party returns every battler of a bank in party order.
func (l *Logic) Party(bank int) []*Battler { return l.parties[bank] }

// BattlerAt returns the battler at a field position, or nil.
func (l *Logic) BattlerAt(bank, position int) *Battler {
	if bank < 0 || bank > 1 || position < 0 {
		return nil
	}
	for _, b := range l.parties[bank] {
		if b.position == position {
			return b
		}
	}
	return nil
}

// OnField returns the battlers of a bank occupying a position, fainted ones included,
// ordered by position.
func (l *Logic) OnField(bank int) []*Battler {
	out := lo.Filter(l.parties[bank], func(b *Battler, _ int) bool { return b.OnField() })
	slices.SortFunc(out, func(a, b *Battler) int { return a.position - b.position })
	return out
}

// Alive returns the living battlers of a bank on the field.
func (l *Logic) Alive(bank int) []*Battler {
	return lo.Filter(l.OnField(bank), func(b *Battler, _ int) bool { return b.Alive() })
}

// AllAlive returns the living battlers of both banks on the field.
func (l *Logic) AllAlive() []*Battler {
	return append(l.Alive(BankAlly), l.Alive(BankEnemy)...)
}

// Foes returns the living foes of b on the field.
func (l *Logic) Foes(b *Battler) []*Battler { return l.Alive(1 - b.bank) }

// Allies returns the living allies of b on the field, b excluded.
func (l *Logic) Allies(b *Battler) []*Battler {
	return lo.Filter(l.Alive(b.bank), func(o *Battler, _ int) bool { return o != b })
}

// Adjacent reports whether two field positions touch. Foes are adjacent when their
// positions differ by at most one; allies when they stand side by side.
func Adjacent(a, b *Battler) bool {
	d := a.position - b.position
	if d < 0 {
		d = -d
	}
	if a.bank == b.bank {
		return d == 1
	}
	return d <= 1
}

// AdjacentFoes returns the living foes next to b.
func (l *Logic) AdjacentFoes(b *Battler) []*Battler {
	return lo.Filter(l.Foes(b), func(o *Battler, _ int) bool { return Adjacent(b, o) })
}

// AdjacentAllies returns the living allies next to b.
func (l *Logic) AdjacentAllies(b *Battler) []*Battler {
	return lo.Filter(l.Allies(b), func(o *Battler, _ int) bool { return Adjacent(b, o) })
}

// CanFight reports whether a bank still has a creature able to battle.
func (l *Logic) CanFight(bank int) bool {
	return lo.SomeBy(l.parties[bank], func(b *Battler) bool { return b.Alive() })
}

// --- effect iteration -----------------------------------------------------------------

// Effects iterates the effects of the given battlers in a stable combined order:
// for each battler (duplicates skipped) its ability, item, status and volatile
// effects in attachment order; then the effects of every involved bank; then the
// field effects.
func (l *Logic) Effects(battlers ...*Battler) iter.Seq[Effect] {
	return l.effects(nil, nil, battlers)
}

// EffectsVs is Effects seen from user acting with move: when the user ignores
// abilities, breakable abilities of the other battlers are skipped.
func (l *Logic) EffectsVs(user *Battler, move *Move, battlers ...*Battler) iter.Seq[Effect] {
	return l.effects(user, move, battlers)
}

func (l *Logic) effects(user *Battler, move *Move, battlers []*Battler) iter.Seq[Effect] {
	return func(yield func(Effect) bool) {
		seen := make([]*Battler, 0, len(battlers))
		var banks [2]bool
		breaks := user != nil && l.IgnoresAbilities(user, move)
		for _, b := range battlers {
			if b == nil || slices.Contains(seen, b) {
				continue
			}
			seen = append(seen, b)
			banks[b.bank] = true

			if e := b.abilityEffect; e != nil && !e.Dead() && !(breaks && b != user && abilityBreakable(b.battleAbility)) {
				if !yield(e) {
					return
				}
			}
			for _, e := range []Effect{b.itemEffect, b.statusEffect} {
				if e != nil && !e.Dead() && !yield(e) {
					return
				}
			}
			for e := range b.effects.All() {
				if !yield(e) {
					return
				}
			}
		}
		for bank, involved := range banks {
			if !involved {
				continue
			}
			for e := range l.field.banks[bank].All() {
				if !yield(e) {
					return
				}
			}
		}
		for e := range l.field.effects.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// EffectsOf narrows an effect sequence to the effects implementing T.
func EffectsOf[T any](seq iter.Seq[Effect]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range seq {
			if t, ok := e.(T); ok && !yield(t) {
				return
			}
		}
	}
}

var (
	abilityIgnoringAbilities = []string{"mold_breaker", "teravolt", "turboblaze"}
	abilityIgnoringMoves     = []string{"sunsteel_strike", "moongeist_beam", "photon_geyser"}
)

// IgnoresAbilities reports whether user acting with move bypasses breakable abilities.
func (l *Logic) IgnoresAbilities(user *Battler, move *Move) bool {
	if user == nil {
		return false
	}
	if slices.Contains(abilityIgnoringAbilities, user.battleAbility) {
		return true
	}
	return move != nil && slices.Contains(abilityIgnoringMoves, move.Symbol())
}

// AbilityActive reports whether the ability of holder works against user's move.
func (l *Logic) AbilityActive(holder, user *Battler, move *Move) bool {
	if holder == user || !l.IgnoresAbilities(user, move) {
		return true
	}
	return !abilityBreakable(holder.battleAbility)
}

func abilityBreakable(symbol string) bool {
	a := data.GetAbility(symbol)
	return a != nil && a.Breakable
}

// IsGrounded reports whether b touches the ground, as seen by user acting with move
// (user and move may be nil). Forced grounding wins over lifting; otherwise flying
// types are airborne.
func (l *Logic) IsGrounded(b, user *Battler, move *Move) bool {
	lifted := false
	for e := range EffectsOf[GroundingEffect](l.EffectsVs(user, move, b)) {
		switch e.Grounding(l, b) {
		case GroundForced:
			return true
		case GroundLifted:
			lifted = true
		}
	}
	if lifted {
		return false
	}
	return !b.HasType(data.TypeFlying)
}
