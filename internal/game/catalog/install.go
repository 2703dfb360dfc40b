package catalog

import (
	"slices"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

// gravityBanned are the moves that cannot be used while gravity is in effect.
var gravityBanned = []string{"fly", "bounce", "magnet_rise", "splash", "high_jump_kick"}

// Install registers the catalog rules on h, after the core rules and in this order:
// freeze_dry, thousand_arrows, grounded_flying, ungrounded, ring_target, scrappy,
// foresight, miracle_eye on the type overwrite hook; gravity on move prevention;
// screens on Mod1.
func Install(h *battle.Hooks) {
	h.SingleTypeMultiplierOverwrite.Register("freeze_dry", func(a battle.TypeArgs) (float64, bool) {
		if a.Move.Symbol() == "freeze_dry" && a.TargetType == data.TypeWater {
			return 2, true
		}
		return 0, false
	})
	h.SingleTypeMultiplierOverwrite.Register("thousand_arrows", func(a battle.TypeArgs) (float64, bool) {
		if a.Move.Symbol() != "thousand_arrows" {
			return 0, false
		}
		if a.TargetType == data.TypeFlying {
			return 1, true
		}
		return data.Effectiveness(a.MoveType, a.TargetType), true
	})
	h.SingleTypeMultiplierOverwrite.Register("grounded_flying", func(a battle.TypeArgs) (float64, bool) {
		if a.MoveType == data.TypeGround && a.TargetType == data.TypeFlying && a.L.IsGrounded(a.Target, a.User, a.Move) {
			return 1, true
		}
		return 0, false
	})
	h.SingleTypeMultiplierOverwrite.Register("ungrounded", func(a battle.TypeArgs) (float64, bool) {
		if a.MoveType == data.TypeGround && !a.Move.Status() && !a.L.IsGrounded(a.Target, a.User, a.Move) {
			return 0, true
		}
		return 0, false
	})
	h.SingleTypeMultiplierOverwrite.Register("ring_target", func(a battle.TypeArgs) (float64, bool) {
		if a.Target.HasItem("ring_target") && data.Effectiveness(a.MoveType, a.TargetType) == 0 {
			return 1, true
		}
		return 0, false
	})
	h.SingleTypeMultiplierOverwrite.Register("scrappy", func(a battle.TypeArgs) (float64, bool) {
		if a.User.HasAbility("scrappy") && hitsGhost(a) {
			return 1, true
		}
		return 0, false
	})
	h.SingleTypeMultiplierOverwrite.Register("foresight", func(a battle.TypeArgs) (float64, bool) {
		if a.Target.Effects().Has("foresight") && hitsGhost(a) {
			return 1, true
		}
		return 0, false
	})
	h.SingleTypeMultiplierOverwrite.Register("miracle_eye", func(a battle.TypeArgs) (float64, bool) {
		if a.Target.Effects().Has("miracle_eye") && a.MoveType == data.TypePsychic && a.TargetType == data.TypeDark {
			return 1, true
		}
		return 0, false
	})

	h.MovePrevention.Register("gravity", func(a battle.MoveArgs) (bool, bool) {
		if !a.L.Gravity() || !slices.Contains(gravityBanned, a.Move.Symbol()) {
			return false, false
		}
		a.L.Say("gravity_prevents", "%s can't use %s because of gravity!", a.User.Name(), battle.DisplayName(a.Move.Symbol()))
		return true, true
	})

	h.Mod1.Register("screens", func(a battle.DamageArgs) (float64, bool) {
		if a.Critical || !foeOf(a.User, a.Target) {
			return 0, false
		}
		for e := range battle.EffectsOf[screen](a.L.Field().Bank(a.Target.Bank()).All()) {
			if !e.Screens(a.Move) {
				continue
			}
			if a.TargetCount > 1 {
				return 2.0 / 3.0, true
			}
			return 0.5, true
		}
		return 0, false
	})
}

// NewHooks returns the core hooks with the catalog rules installed.
func NewHooks() *battle.Hooks {
	h := battle.NewHooks()
	Install(h)
	return h
}

func hitsGhost(a battle.TypeArgs) bool {
	return a.TargetType == data.TypeGhost && (a.MoveType == data.TypeNormal || a.MoveType == data.TypeFighting)
}
