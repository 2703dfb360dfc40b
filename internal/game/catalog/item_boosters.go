package catalog

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
)

// typeBoosters raise the power of moves of one type by 20%.
var typeBoosters = map[string]data.Type{
	"silk_scarf":     data.TypeNormal,
	"charcoal":       data.TypeFire,
	"mystic_water":   data.TypeWater,
	"magnet":         data.TypeElectric,
	"miracle_seed":   data.TypeGrass,
	"never_melt_ice": data.TypeIce,
	"black_belt":     data.TypeFighting,
	"poison_barb":    data.TypePoison,
	"soft_sand":      data.TypeGround,
	"sharp_beak":     data.TypeFlying,
	"twisted_spoon":  data.TypePsychic,
	"silver_powder":  data.TypeBug,
	"hard_stone":     data.TypeRock,
	"spell_tag":      data.TypeGhost,
	"dragon_fang":    data.TypeDragon,
	"black_glasses":  data.TypeDark,
	"metal_coat":     data.TypeSteel,
	"flame_plate":    data.TypeFire,
	"splash_plate":   data.TypeWater,
	"zap_plate":      data.TypeElectric,
	"pixie_plate":    data.TypeFairy,
}

func init() {
	for symbol, t := range typeBoosters {
		registerMultiplierItem(symbol, rule(kindBasePower, sideUser, when(1.2, moveOfType(t))))
	}

	registerMultiplierItem("muscle_band", rule(kindBasePower, sideUser, when(1.1, physical)))
	registerMultiplierItem("wise_glasses", rule(kindBasePower, sideUser, when(1.1, special)))
	registerMultiplierItem("metronome", rule(kindMod2, sideUser, metronomeFactor))
	registerMultiplierItem("expert_belt", rule(kindMod3, sideUser, when(1.2, superEffective)))

	registerMultiplierItem("eviolite",
		rule(kindDefense, sideTarget, when(1.5, func(_ *battle.Logic, holder, _ *battle.Battler, _ *battle.Move) bool {
			return holder.SpeciesTemplate().CanEvolve
		})))
	registerMultiplierItem("thick_club", rule(kindAttack, sideUser, when(2, both(physical, species("cubone", "marowak")))))
	registerMultiplierItem("light_ball", rule(kindAttack, sideUser, when(2, species("pikachu"))))
	registerMultiplierItem("deep_sea_tooth", rule(kindAttack, sideUser, when(2, both(special, species("clamperl")))))
	registerMultiplierItem("deep_sea_scale", rule(kindDefense, sideTarget, when(2, both(special, species("clamperl")))))

	registerMultiplierItem("quick_powder", rule(kindSpeed, sideUser, when(2, species("ditto"))))
	registerMultiplierItem("macho_brace", rule(kindSpeed, sideUser, always(0.5)))

	registerMultiplierItem("wide_lens", rule(kindHitChance, sideUser, always(1.1)))
	registerMultiplierItem("zoom_lens", rule(kindHitChance, sideUser, when(1.2, movedAfter)))
	registerMultiplierItem("bright_powder", rule(kindHitChance, sideTarget, always(0.9)))
	registerMultiplierItem("lax_incense", rule(kindHitChance, sideTarget, always(0.9)))

	battle.RegisterItem("iron_ball", func(holder *battle.Battler, symbol string) battle.Effect {
		return &ironBall{multiplierEffect: newMultiplier(holder, symbol, []multiplierRule{rule(kindSpeed, sideUser, always(0.5))})}
	})
	battle.RegisterItem("assault_vest", func(holder *battle.Battler, symbol string) battle.Effect {
		return &assaultVest{multiplierEffect: newMultiplier(holder, symbol, []multiplierRule{rule(kindDefense, sideTarget, when(1.5, special))})}
	})
	battle.RegisterItem("scope_lens", func(holder *battle.Battler, symbol string) battle.Effect {
		return &scopeLens{heldEffect: newHeld(holder, symbol, 0)}
	})
	battle.RegisterItem("ring_target", newPlain)
}

// metronomeFactor adds 20% per consecutive use of the same move, up to double power.
func metronomeFactor(_ *battle.Logic, _, _ *battle.Battler, move *battle.Move) float64 {
	return 1 + 0.2*float64(min(5, max(0, move.ConsecutiveUseCount()-1)))
}

func superEffective(l *battle.Logic, holder, other *battle.Battler, move *battle.Move) bool {
	return l.TypeEffectiveness(holder, other, move) > 1
}

// movedAfter holds when other already acted this turn.
func movedAfter(l *battle.Logic, _, other *battle.Battler, _ *battle.Move) bool {
	return other != nil && other.UsedMoveOnTurn(l.Turn())
}

// ironBall halves speed and grounds its holder.
type ironBall struct {
	multiplierEffect
}

func (e *ironBall) Grounding(_ *battle.Logic, b *battle.Battler) battle.Grounding {
	if b != e.holder {
		return battle.GroundNoOpinion
	}
	return battle.GroundForced
}

// assaultVest raises special defense and forbids status moves.
type assaultVest struct {
	multiplierEffect
}

func (e *assaultVest) OnMoveDisabledCheck(_ *battle.Logic, user *battle.Battler, move *battle.Move) battle.FailureReply {
	if user != e.holder || !move.Status() {
		return nil
	}
	return func(l *battle.Logic, user *battle.Battler, move *battle.Move) {
		l.Say("assault_vest", "%s can't use status moves while wearing the Assault Vest!", user.Name())
	}
}

type scopeLens struct {
	heldEffect
}

func (e *scopeLens) CriticalStageBonus(_ *battle.Logic, user, _ *battle.Battler, _ *battle.Move) int {
	if user != e.holder {
		return 0
	}
	return 1
}
