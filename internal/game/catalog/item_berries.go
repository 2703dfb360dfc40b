package catalog

import (
	"slices"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

// resistBerries halve one super effective hit of their type, then are eaten.
// Chilan berry works on any normal hit.
var resistBerries = map[string]data.Type{
	"occa_berry":   data.TypeFire,
	"passho_berry": data.TypeWater,
	"wacan_berry":  data.TypeElectric,
	"rindo_berry":  data.TypeGrass,
	"yache_berry":  data.TypeIce,
	"chople_berry": data.TypeFighting,
	"shuca_berry":  data.TypeGround,
	"coba_berry":   data.TypeFlying,
	"chilan_berry": data.TypeNormal,
}

// cureBerries list the statuses each berry cures.
var cureBerries = map[string][]data.Status{
	"lum_berry": {
		data.StatusPoison, data.StatusToxic, data.StatusParalysis, data.StatusBurn,
		data.StatusSleep, data.StatusFreeze, data.StatusConfusion,
	},
	"cheri_berry":  {data.StatusParalysis},
	"chesto_berry": {data.StatusSleep},
	"pecha_berry":  {data.StatusPoison, data.StatusToxic},
	"rawst_berry":  {data.StatusBurn},
	"aspear_berry": {data.StatusFreeze},
	"persim_berry": {data.StatusConfusion},
}

func init() {
	battle.RegisterItem("oran_berry", func(holder *battle.Battler, symbol string) battle.Effect {
		return &healBerry{heldEffect: newHeld(holder, symbol, 0), amount: func(*battle.Battler) int { return 10 }}
	})
	battle.RegisterItem("sitrus_berry", func(holder *battle.Battler, symbol string) battle.Effect {
		return &healBerry{heldEffect: newHeld(holder, symbol, 0), amount: func(b *battle.Battler) int { return b.MaxHP() / 4 }}
	})
	for symbol, statuses := range cureBerries {
		battle.RegisterItem(symbol, func(holder *battle.Battler, sym string) battle.Effect {
			return &cureBerry{heldEffect: newHeld(holder, sym, 0), cures: statuses}
		})
	}
	for symbol, t := range resistBerries {
		battle.RegisterItem(symbol, func(holder *battle.Battler, sym string) battle.Effect {
			return &resistBerry{heldEffect: newHeld(holder, sym, 0), resists: t}
		})
	}
}

// healBerry is eaten when a hit leaves its holder at half HP or less.
type healBerry struct {
	heldEffect
	amount func(b *battle.Battler) int
}

func (e *healBerry) OnPostDamage(l *battle.Logic, _ int, target, _ *battle.Battler, _ *battle.Move) {
	if target != e.holder || e.Dead() || target.HP()*2 > target.MaxHP() {
		return
	}
	logTrigger("item", e.Name(), target)
	l.ConsumeItem(target)
	l.Say("berry_heal", "%s restored its health using its %s!", target.Name(), battle.DisplayName(e.Name()))
	l.Heal(target, max(1, e.amount(target)))
}

// cureBerry is eaten as soon as its holder gets one of the statuses it cures.
type cureBerry struct {
	heldEffect
	cures []data.Status
}

func (e *cureBerry) OnStatusChangePost(l *battle.Logic, status data.Status, target, _ *battle.Battler, _ *battle.Move) {
	if target != e.holder || e.Dead() || !slices.Contains(e.cures, status) {
		return
	}
	logTrigger("item", e.Name(), target)
	l.ConsumeItem(target)
	l.Say("berry_cure", "%s ate its %s!", target.Name(), battle.DisplayName(e.Name()))
	if status == data.StatusConfusion {
		if target.Effects().Remove("confusion") {
			l.Say("confusion_end", "%s snapped out of its confusion!", target.Name())
		}
		return
	}
	l.StatusChange(data.StatusNone, target, target, nil)
}

// resistBerry weakens one hit of its type.
type resistBerry struct {
	heldEffect
	resists data.Type
}

func (e *resistBerry) Mod3Multiplier(l *battle.Logic, user, target *battle.Battler, move *battle.Move) float64 {
	if target != e.holder || user == target || e.Dead() || l.MoveType(user, target, move) != e.resists {
		return 1
	}
	if e.resists != data.TypeNormal && l.TypeEffectiveness(user, target, move) <= 1 {
		return 1
	}
	logTrigger("item", e.Name(), target)
	l.ConsumeItem(target)
	l.Say("berry_resist", "The %s weakened the damage to %s!", battle.DisplayName(e.Name()), target.Name())
	return 0.5
}
