package battle

import "github.com/udisondev/battlecore/internal/data"

var statDisplay = [data.StatCount]string{"Attack", "Defense", "Speed", "Sp. Atk", "Sp. Def", "accuracy", "evasiveness"}

// StatChange applies a stage change of power to target. The target's own effects may
// rewrite the power first (contrary, simple), then prevention effects may block it
// (clear body, mist). Returns the delta actually applied.
func (l *Logic) StatChange(stat data.Stat, power int, target, launcher *Battler, move *Move) int {
	if power == 0 || target.Dead() {
		return 0
	}
	for e := range EffectsOf[StatChangeAdjuster](l.EffectsVs(launcher, move, target)) {
		power = e.OnStatChangeModify(l, stat, power, target, launcher, move)
	}
	for e := range EffectsOf[StatChangePreventer](l.EffectsVs(launcher, move, target)) {
		if e.OnStatChangePrevention(l, stat, power, target, launcher, move) {
			return 0
		}
	}

	delta := target.ChangeStat(stat, power)
	if delta == 0 {
		if power > 0 {
			l.Say("stat_max", "%s's %s won't go any higher!", target.Name(), statDisplay[stat])
		} else {
			l.Say("stat_min", "%s's %s won't go any lower!", target.Name(), statDisplay[stat])
		}
		return 0
	}
	target.addStatHistory(l.turn, stat, delta, launcher, move)
	l.Say("stat_change", "%s's %s %s", target.Name(), statDisplay[stat], stageWording(delta))

	for e := range EffectsOf[StatChangeReactor](l.Effects(target, launcher)) {
		e.OnStatChangePost(l, stat, delta, target, launcher, move)
	}
	return delta
}

func stageWording(delta int) string {
	switch {
	case delta >= 3:
		return "rose drastically!"
	case delta == 2:
		return "rose sharply!"
	case delta == 1:
		return "rose!"
	case delta == -1:
		return "fell!"
	case delta == -2:
		return "harshly fell!"
	default:
		return "severely fell!"
	}
}
