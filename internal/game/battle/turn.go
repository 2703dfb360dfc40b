package battle

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/udisondev/battlecore/internal/data"
)

// Result is the state of a battle.
type Result int8

const (
	ResultNone    Result = iota // still running
	ResultVictory               // the ally bank won
	ResultDefeat                // the ally bank lost
	ResultDraw                  // both banks fainted at once
	ResultFled                  // the ally bank ran away
)

func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultVictory:
		return "victory"
	case ResultDefeat:
		return "defeat"
	case ResultDraw:
		return "draw"
	case ResultFled:
		return "fled"
	}
	return "unknown"
}

// TurnReport summarizes one executed turn.
type TurnReport struct {
	Turn   int
	Moves  []MoveResult
	Result Result
}

// ExecuteTurn validates and orders the submitted actions, runs them one after the
// other and closes the turn with the end-of-turn events.
//
// Battlers locked into a move (charge turn) have their action replaced; a battler
// without any PP left struggles. Actions of battlers that fainted or left the field
// before acting are skipped.
func (l *Logic) ExecuteTurn(ctx context.Context, actions []Action) (TurnReport, error) {
	if l.Over() {
		return TurnReport{Turn: l.turn, Result: l.Result()}, ErrBattleOver
	}
	if err := l.validate(actions); err != nil {
		return TurnReport{Turn: l.turn}, err
	}

	l.turn++
	ctx, span := l.tracer.Start(ctx, "battle.turn", trace.WithAttributes(
		attribute.String("battle.id", l.id.String()),
		attribute.Int("battle.turn", l.turn),
		attribute.Int("actions", len(actions)),
	))
	defer span.End()

	report := TurnReport{Turn: l.turn}
	for _, a := range l.OrderActions(l.applyForcedActions(actions)) {
		if l.Over() {
			break
		}
		actor := a.Actor()
		switch a := a.(type) {
		case *FleeAction:
			if actor.Alive() && l.Flee(actor) {
				l.result = ResultFled
			}
		case *ItemAction:
			actor.lastBattleTurn = l.turn
			if _, err := l.UseBagItem(actor, a.Item, a.Target); err != nil {
				return report, err
			}
		case *SwitchAction:
			if !actor.OnField() {
				continue
			}
			actor.lastBattleTurn = l.turn
			if err := l.Switch(actor, l.parties[actor.bank][a.PartyIndex]); err != nil {
				return report, err
			}
		case *AttackAction:
			if actor.Dead() || !actor.OnField() {
				continue
			}
			move := a.move
			if move == nil {
				move = l.moveFor(actor, a.MoveIndex)
			}
			opts := useOptions{skipPP: a.forced}
			res, err := l.useMove(ctx, actor, move, a.TargetBank, a.TargetPosition, opts)
			if err != nil {
				return report, err
			}
			report.Moves = append(report.Moves, res)
		}
	}

	if !l.Over() {
		l.EndTurn()
	}
	report.Result = l.Result()
	span.SetAttributes(attribute.String("result", report.Result.String()))
	return report, nil
}

func (l *Logic) validate(actions []Action) error {
	for _, a := range actions {
		actor := a.Actor()
		if actor == nil {
			return fmt.Errorf("%w: %s action without actor", ErrInvalidAction, a.Kind())
		}
		switch a := a.(type) {
		case *AttackAction:
			if !actor.OnField() || (a.move == nil && actor.Move(a.MoveIndex) == nil) {
				return fmt.Errorf("%w: %s cannot use move %d", ErrInvalidAction, actor.Name(), a.MoveIndex)
			}
		case *SwitchAction:
			party := l.parties[actor.bank]
			if a.PartyIndex < 0 || a.PartyIndex >= len(party) {
				return fmt.Errorf("%w: no party member %d", ErrInvalidAction, a.PartyIndex)
			}
			if with := party[a.PartyIndex]; with.Dead() || with.OnField() {
				return fmt.Errorf("%w: %s cannot be sent in", ErrInvalidAction, with.Name())
			}
		case *ItemAction:
			item := data.GetItem(a.Item)
			if item == nil || !item.IsUsableFromBag() {
				return fmt.Errorf("%w: item %q is not usable in battle", ErrInvalidAction, a.Item)
			}
		}
	}
	return nil
}

// moveFor returns the move at index, or struggle when no move has PP left.
func (l *Logic) moveFor(b *Battler, index int) *Move {
	if !b.HasUsableMove() {
		return NewMove("struggle", 1, 1)
	}
	return b.Move(index)
}

func (l *Logic) applyForcedActions(actions []Action) []Action {
	out := make([]Action, 0, len(actions))
	for _, a := range actions {
		actor := a.Actor()
		forced := false
		for e := range EffectsOf[ForcedMoveProvider](l.Effects(actor)) {
			move, bank, pos := e.ForcedMove()
			out = append(out, &AttackAction{User: actor, TargetBank: bank, TargetPosition: pos, move: move, forced: true})
			forced = true
			break
		}
		if !forced {
			out = append(out, a)
		}
	}
	return out
}

type orderedAction struct {
	action   Action
	priority int
	speed    int
}

// OrderActions sorts actions by kind bracket, then move priority, then speed
// (reversed under trick room). Exact ties are shuffled with the battle RNG.
func (l *Logic) OrderActions(actions []Action) []Action {
	keys := make([]orderedAction, len(actions))
	for i, a := range actions {
		k := orderedAction{action: a, speed: l.Speed(a.Actor())}
		if atk, ok := a.(*AttackAction); ok {
			move := atk.move
			if move == nil {
				move = l.moveFor(atk.User, atk.MoveIndex)
			}
			k.priority = l.Priority(atk.User, move)
		}
		keys[i] = k
	}
	trickRoom := l.TrickRoom()
	compare := func(a, b orderedAction) int {
		if c := cmp.Compare(a.action.Kind(), b.action.Kind()); c != 0 {
			return c
		}
		if c := cmp.Compare(b.priority, a.priority); c != 0 {
			return c
		}
		if trickRoom {
			return cmp.Compare(a.speed, b.speed)
		}
		return cmp.Compare(b.speed, a.speed)
	}
	slices.SortStableFunc(keys, compare)

	for start := 0; start < len(keys); {
		end := start + 1
		for end < len(keys) && compare(keys[start], keys[end]) == 0 {
			end++
		}
		for i := end - 1; i > start; i-- {
			j := start + l.rng.IntN(i-start+1)
			keys[i], keys[j] = keys[j], keys[i]
		}
		start = end
	}

	out := make([]Action, len(keys))
	for i, k := range keys {
		out[i] = k.action
	}
	return out
}

// Priority returns the priority bracket of move used by user.
func (l *Logic) Priority(user *Battler, move *Move) int {
	p := move.Priority()
	for e := range EffectsOf[PriorityModifier](l.Effects(user)) {
		p += e.PriorityBonus(l, user, move)
	}
	return p
}

// SortBySpeed returns battlers from fastest to slowest (slowest first under trick room).
func (l *Logic) SortBySpeed(battlers []*Battler) []*Battler {
	out := slices.Clone(battlers)
	trickRoom := l.TrickRoom()
	slices.SortStableFunc(out, func(a, b *Battler) int {
		if trickRoom {
			return cmp.Compare(l.Speed(a), l.Speed(b))
		}
		return cmp.Compare(l.Speed(b), l.Speed(a))
	})
	return out
}

// EndTurn closes the turn: every end-of-turn reactor of the living battlers (in
// speed order), of the banks and of the field runs once, then each counter is
// advanced exactly once for this boundary.
func (l *Logic) EndTurn() {
	alive := l.SortBySpeed(l.AllAlive())
	for e := range EffectsOf[EndTurnReactor](l.endTurnEffects(alive)) {
		e.OnEndTurnEvent(l, alive)
	}

	for _, b := range l.AllAlive() {
		b.effects.Tick(l)
		b.turnCount++
	}
	for _, bank := range l.field.banks {
		bank.Tick(l)
	}
	l.field.effects.Tick(l)
	l.logger.Debug("turn ended", "turn", l.turn)
}

// endTurnEffects visits the battlers in order, then both banks, then the field,
// even when a bank has nobody left on the field.
func (l *Logic) endTurnEffects(alive []*Battler) func(yield func(Effect) bool) {
	return func(yield func(Effect) bool) {
		for _, b := range alive {
			for _, e := range []Effect{b.abilityEffect, b.itemEffect, b.statusEffect} {
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
		for _, bank := range l.field.banks {
			for e := range bank.All() {
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

// Switch sends with onto the field in place of who.
func (l *Logic) Switch(who, with *Battler) error {
	if with == nil || with.bank != who.bank || with.Dead() || with.OnField() {
		return fmt.Errorf("%w: cannot switch %s", ErrInvalidAction, who.Name())
	}
	pos := who.position
	if who.Alive() {
		l.Say("switch_out", "%s, come back!", who.Name())
	}
	who.ResetForSwitch()
	who.position = -1

	with.position = pos
	with.lastSentTurn = l.turn
	with.turnCount = 0
	l.Say("switch_in", "Go! %s!", with.Name())
	l.logger.Debug("switch", "out", who.Name(), "in", with.Name(), "bank", with.bank)
	l.fireSwitchEvent(who, with)
	return nil
}

func (l *Logic) fireSwitchEvent(who, with *Battler) {
	battlers := append([]*Battler{who}, l.AllAlive()...)
	for e := range EffectsOf[SwitchReactor](l.Effects(battlers...)) {
		e.OnSwitchEvent(l, who, with)
	}
}

// RequestSwitch marks b to leave the field at the end of the current action. It is
// listed by NeedsReplacement until the caller switches it out.
func (l *Logic) RequestSwitch(b *Battler) {
	b.switchRequested = true
}

// NeedsReplacement returns the battlers on the field that fainted or asked to leave
// and whose bank still has a healthy creature in reserve.
func (l *Logic) NeedsReplacement() []*Battler {
	var out []*Battler
	for bank := range l.parties {
		reserve := slices.ContainsFunc(l.parties[bank], func(b *Battler) bool { return b.Alive() && !b.OnField() })
		if !reserve {
			continue
		}
		for _, b := range l.OnField(bank) {
			if b.Dead() || b.switchRequested {
				out = append(out, b)
			}
		}
	}
	return out
}

// Flee tries to escape a wild battle:
//
//	F = Speed(user) * 32 / ((Speed(foe) / 4) mod 256) + 30 * attempts
//
// The user escapes if it is at least as fast as the fastest foe, if the divisor is
// zero, if F > 255, or if a [0, 256) roll is below F.
func (l *Logic) Flee(user *Battler) bool {
	if !l.rules.Wild || user.bank != BankAlly {
		l.Say("flee_forbidden", "No! There's no running from a trainer battle!")
		return false
	}
	l.fleeAttempts++
	foes := l.SortBySpeed(l.Foes(user))
	if len(foes) == 0 || user.HasAbility("run_away") {
		l.Say("flee", "Got away safely!")
		return true
	}
	userSpeed, foeSpeed := l.Speed(user), l.Speed(foes[0])
	divisor := (foeSpeed / 4) % 256
	escaped := userSpeed >= foeSpeed || divisor == 0
	if !escaped {
		f := userSpeed*32/divisor + 30*(l.fleeAttempts-1)
		escaped = f > 255 || l.rng.IntN(256) < f
	}
	if escaped {
		l.Say("flee", "Got away safely!")
	} else {
		l.Say("flee_failed", "Can't escape!")
	}
	return escaped
}

// UseBagItem applies a bag item to target (user when nil). Returns whether the item
// had any effect.
func (l *Logic) UseBagItem(user *Battler, symbol string, target *Battler) (bool, error) {
	item := data.GetItem(symbol)
	if item == nil || !item.IsUsableFromBag() {
		return false, fmt.Errorf("%w: item %q is not usable in battle", ErrInvalidAction, symbol)
	}
	if target == nil {
		target = user
	}
	if target.bank != user.bank {
		return false, fmt.Errorf("%w: %s cannot be used on a foe", ErrInvalidAction, symbol)
	}
	l.Say("use_item", "%s used the %s.", user.trainerName, DisplayName(symbol))

	used := false
	if item.HealHP > 0 && target.Alive() && target.HP() < target.MaxHP() {
		used = l.Heal(target, item.HealHP) > 0
	}
	if item.CureStatus && target.HasStatus() {
		used = l.StatusChange(data.StatusNone, target, user, nil) || used
	}
	if target.OnField() {
		for _, b := range item.Boost {
			used = l.StatChange(b.Stat, b.Amount, target, user, nil) != 0 || used
		}
	}
	if !used {
		l.Say("no_effect", "It won't have any effect.")
	}
	return used, nil
}

// Result returns the current state of the battle.
func (l *Logic) Result() Result {
	if l.result != ResultNone {
		return l.result
	}
	ally, enemy := l.CanFight(BankAlly), l.CanFight(BankEnemy)
	switch {
	case ally && enemy:
		return ResultNone
	case ally:
		return ResultVictory
	case enemy:
		return ResultDefeat
	}
	return ResultDraw
}

// Over reports whether the battle has a result or was ended.
func (l *Logic) Over() bool { return l.ended || l.Result() != ResultNone }

// End closes the battle and writes the persisted fields of every battler back to its
// creature. Calling End twice has no further effect.
func (l *Logic) End() Result {
	res := l.Result()
	if l.ended {
		return res
	}
	l.ended = true
	for bank := range l.parties {
		for _, b := range l.parties[bank] {
			b.CopyPropertiesBack()
		}
	}
	l.logger.Info("battle ended", "result", res.String(), "turns", l.turn)
	return res
}
