package battle

import "github.com/udisondev/battlecore/internal/data"

// StatusOptions tune ApplyStatus.
type StatusOptions struct {
	// Force replaces an existing major status and skips immunities (rest).
	Force bool
	// Turns overrides the random length of sleep or confusion.
	Turns int
}

// TurnsSetter is implemented by volatile status effects with their own countdown.
type TurnsSetter interface {
	SetTurns(n int)
}

var statusMessages = map[data.Status]string{
	data.StatusPoison:    "%s was poisoned!",
	data.StatusToxic:     "%s was badly poisoned!",
	data.StatusParalysis: "%s is paralyzed! It may be unable to move!",
	data.StatusBurn:      "%s was burned!",
	data.StatusSleep:     "%s fell asleep!",
	data.StatusFreeze:    "%s was frozen solid!",
	data.StatusConfusion: "%s became confused!",
	data.StatusAttract:   "%s fell in love!",
}

var statusTypeImmunity = map[data.Status][]data.Type{
	data.StatusPoison:    {data.TypePoison, data.TypeSteel},
	data.StatusToxic:     {data.TypePoison, data.TypeSteel},
	data.StatusBurn:      {data.TypeFire},
	data.StatusParalysis: {data.TypeElectric},
	data.StatusFreeze:    {data.TypeIce},
}

// StatusChange applies status to target with default options.
func (l *Logic) StatusChange(status data.Status, target, launcher *Battler, move *Move) bool {
	return l.ApplyStatus(status, target, launcher, move, StatusOptions{})
}

// ApplyStatus is the single entry point for status changes:
//   - StatusNone cures the major status
//   - a major status is rejected while another one is active (unless forced), on
//     type immunity, or by a prevention effect
//   - confusion, flinch and attract become volatile effects; a second application
//     is rejected
//
// Returns true if the status was applied (or cured).
func (l *Logic) ApplyStatus(status data.Status, target, launcher *Battler, move *Move, opts StatusOptions) bool {
	if target.Dead() {
		return false
	}
	explicit := move != nil && move.Status()

	switch {
	case status == data.StatusNone:
		if !target.HasStatus() {
			return false
		}
		old := target.status
		target.setStatus(data.StatusNone, 0)
		l.Say("status_cured", "%s was cured of its %s.", target.Name(), old)

	case status.IsMajor():
		if !opts.Force {
			if target.HasStatus() {
				if explicit {
					l.Say("status_already", "%s is already affected by %s!", target.Name(), target.status)
				}
				return false
			}
			if !l.CanInflictStatus(status, target, launcher, move) {
				if explicit {
					l.Say("status_immune", "It doesn't affect %s...", target.Name())
				}
				return false
			}
		}
		count := 0
		switch status {
		case data.StatusSleep:
			count = opts.Turns
			if count <= 0 {
				count = l.RandomRange(1, 3)
			}
		case data.StatusToxic:
			count = 1
		}
		target.setStatus(status, count)
		l.Say("status_"+status.String(), statusMessages[status], target.Name())

	case status == data.StatusConfusion:
		if target.Confused() || !l.CanInflictStatus(status, target, launcher, move) {
			if explicit {
				l.Say("status_immune", "It doesn't affect %s...", target.Name())
			}
			return false
		}
		e := createStatusEffect(target, status)
		if e == nil {
			l.logger.Warn("no effect registered for status", "status", status.String())
			return false
		}
		turns := opts.Turns
		if turns <= 0 {
			turns = l.RandomRange(2, 5)
		}
		if ts, ok := e.(TurnsSetter); ok {
			ts.SetTurns(turns)
		}
		target.effects.Add(l, e)
		l.Say("status_confusion", statusMessages[status], target.Name())

	case status == data.StatusFlinch:
		if target.lastBattleTurn == l.turn || target.effects.Has("flinch") ||
			!l.CanInflictStatus(status, target, launcher, move) {
			return false
		}
		e := createStatusEffect(target, status)
		if e == nil {
			return false
		}
		target.effects.Add(l, e)

	case status == data.StatusAttract:
		if launcher == nil || target.Attracted() || !launcher.gender.Opposite(target.gender) ||
			!l.CanInflictStatus(status, target, launcher, move) {
			if explicit {
				l.Say("status_immune", "It doesn't affect %s...", target.Name())
			}
			return false
		}
		e := createStatusEffect(target, status)
		if e == nil {
			return false
		}
		if a, ok := e.(interface{ SetSource(*Battler) }); ok {
			a.SetSource(launcher)
		}
		target.effects.Add(l, e)
		l.Say("status_attract", statusMessages[status], target.Name())

	default:
		return false
	}

	l.logger.Debug("status changed", "battler", target.Name(), "status", status.String())
	for e := range EffectsOf[StatusReactor](l.Effects(target, launcher)) {
		e.OnStatusChangePost(l, status, target, launcher, move)
	}
	return true
}

// CanInflictStatus checks type immunities and prevention effects without applying
// anything. Prevention effects may emit their own message.
func (l *Logic) CanInflictStatus(status data.Status, target, launcher *Battler, move *Move) bool {
	for _, t := range statusTypeImmunity[status] {
		if target.HasType(t) {
			return false
		}
	}
	for e := range EffectsOf[StatusPreventer](l.EffectsVs(launcher, move, target)) {
		if e.OnStatusPrevention(l, status, target, launcher, move) {
			return false
		}
	}
	return true
}
