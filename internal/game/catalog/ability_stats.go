package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

// statGuards list the stats each ability protects from drops caused by others.
// A nil list protects every stat.
var statGuards = map[string][]data.Stat{
	"clear_body":   nil,
	"white_smoke":  nil,
	"hyper_cutter": {data.StatAtk},
	"keen_eye":     {data.StatAcc},
	"big_pecks":    {data.StatDfe},
}

func init() {
	for symbol, stats := range statGuards {
		battle.RegisterAbility(symbol, func(holder *battle.Battler, sym string) battle.Effect {
			return &statGuard{heldEffect: newHeld(holder, sym, 0), stats: stats}
		})
	}
	battle.RegisterAbility("contrary", func(holder *battle.Battler, symbol string) battle.Effect {
		return &stageAdjuster{heldEffect: newHeld(holder, symbol, 0), adjust: func(p int) int { return -p }}
	})
	battle.RegisterAbility("simple", func(holder *battle.Battler, symbol string) battle.Effect {
		return &stageAdjuster{heldEffect: newHeld(holder, symbol, 0), adjust: func(p int) int { return p * 2 }}
	})
	battle.RegisterAbility("defiant", func(holder *battle.Battler, symbol string) battle.Effect {
		return &dropRebound{heldEffect: newHeld(holder, symbol, 0), boosts: data.StatAtk}
	})
	battle.RegisterAbility("competitive", func(holder *battle.Battler, symbol string) battle.Effect {
		return &dropRebound{heldEffect: newHeld(holder, symbol, 0), boosts: data.StatAts}
	})
}

type statGuard struct {
	heldEffect
	stats []data.Stat
}

func (e *statGuard) OnStatChangePrevention(l *battle.Logic, stat data.Stat, power int, target, launcher *battle.Battler, _ *battle.Move) bool {
	if target != e.holder || power >= 0 || launcher == nil || launcher == target {
		return false
	}
	if e.stats != nil && !containsStat(e.stats, stat) {
		return false
	}
	l.Scene().ShowAbility(target)
	l.Say("stat_guard", "%s's %s prevents its stats from being lowered!", target.Name(), battle.DisplayName(e.Name()))
	return true
}

// IgnoresEvasion lets a keen eye holder ignore raised evasion.
func (e *statGuard) IgnoresEvasion(_ *battle.Logic, user, _ *battle.Battler, _ *battle.Move) bool {
	return user == e.holder && e.Name() == "keen_eye"
}

func containsStat(stats []data.Stat, s data.Stat) bool {
	for _, st := range stats {
		if st == s {
			return true
		}
	}
	return false
}

// stageAdjuster rewrites every stage change aimed at its holder.
type stageAdjuster struct {
	heldEffect
	adjust func(power int) int
}

func (e *stageAdjuster) OnStatChangeModify(_ *battle.Logic, _ data.Stat, power int, target, _ *battle.Battler, _ *battle.Move) int {
	if target != e.holder {
		return power
	}
	return e.adjust(power)
}

// dropRebound sharply raises one stat whenever a foe lowers a stat of the holder.
type dropRebound struct {
	heldEffect
	boosts data.Stat
}

func (e *dropRebound) OnStatChangePost(l *battle.Logic, _ data.Stat, delta int, target, launcher *battle.Battler, _ *battle.Move) {
	if target != e.holder || delta >= 0 || !foeOf(launcher, target) {
		return
	}
	l.Scene().ShowAbility(target)
	l.StatChange(e.boosts, 2, target, target, nil)
}
