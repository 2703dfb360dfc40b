package battle

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/hook"
)

// MoveArgs are the arguments of per-target move hooks.
type MoveArgs struct {
	L      *Logic
	User   *Battler
	Target *Battler
	Move   *Move
}

// ActionArgs are the arguments of hooks that see the whole action.
type ActionArgs struct {
	L       *Logic
	User    *Battler
	Targets []*Battler
	Move    *Move
}

// TypeArgs are the arguments of the single-type multiplier overwrite hook:
// how effective MoveType is against one TargetType of Target.
type TypeArgs struct {
	L          *Logic
	User       *Battler
	Target     *Battler
	Move       *Move
	MoveType   data.Type
	TargetType data.Type
}

// DamageArgs are the arguments of the Mod1/Mod2/Mod3 hooks.
type DamageArgs struct {
	L           *Logic
	User        *Battler
	Target      *Battler
	Move        *Move
	Critical    bool
	TargetCount int
}

// Hooks is the set of named extension points consulted by the pipeline.
// Build it once with NewHooks, let the catalog register its rules, then share it
// between battles (it is read-only afterwards).
type Hooks struct {
	MoveTypeChange                *hook.Hook[MoveArgs, data.Type]
	MovePrevention                *hook.Hook[MoveArgs, bool]
	MoveDisabledCheck             *hook.Hook[MoveArgs, FailureReply]
	SingleTypeMultiplierOverwrite *hook.Hook[TypeArgs, float64]
	Mod1                          *hook.Hook[DamageArgs, float64]
	Mod2                          *hook.Hook[DamageArgs, float64]
	Mod3                          *hook.Hook[DamageArgs, float64]
	PostAction                    *hook.Hook[ActionArgs, struct{}]
}

// NewHooks declares every hook and registers the core rules, which always come
// before anything registered later.
func NewHooks() *Hooks {
	h := &Hooks{
		MoveTypeChange:                hook.New[MoveArgs, data.Type]("move_type_change", hook.ShortCircuit),
		MovePrevention:                hook.New[MoveArgs, bool]("move_prevention", hook.ShortCircuit),
		MoveDisabledCheck:             hook.New[MoveArgs, FailureReply]("move_disabled_check", hook.ShortCircuit),
		SingleTypeMultiplierOverwrite: hook.New[TypeArgs, float64]("single_type_multiplier_overwrite", hook.ShortCircuit),
		Mod1:                          hook.New[DamageArgs, float64]("mod1", hook.FanOut),
		Mod2:                          hook.New[DamageArgs, float64]("mod2", hook.FanOut),
		Mod3:                          hook.New[DamageArgs, float64]("mod3", hook.FanOut),
		PostAction:                    hook.New[ActionArgs, struct{}]("post_action", hook.FanOut),
	}

	h.MoveTypeChange.Register("effects", func(a MoveArgs) (data.Type, bool) {
		for e := range EffectsOf[MoveTypeChanger](a.L.EffectsVs(a.User, a.Move, a.User, a.Target)) {
			if t, ok := e.OnMoveTypeChange(a.L, a.User, a.Target, a.Move); ok {
				return t, true
			}
		}
		return data.TypeNone, false
	})

	h.MovePrevention.Register("effects", func(a MoveArgs) (bool, bool) {
		for e := range EffectsOf[UserMovePreventer](a.L.Effects(a.User)) {
			if e.OnMovePreventionUser(a.L, a.User, a.Move) {
				return true, true
			}
		}
		return false, false
	})

	h.MoveDisabledCheck.Register("effects", func(a MoveArgs) (FailureReply, bool) {
		for e := range EffectsOf[MoveDisabler](a.L.Effects(a.User)) {
			if reply := e.OnMoveDisabledCheck(a.L, a.User, a.Move); reply != nil {
				return reply, true
			}
		}
		return nil, false
	})

	h.Mod1.Register("spread", func(a DamageArgs) (float64, bool) {
		if a.TargetCount > 1 {
			return 0.75, true
		}
		return 0, false
	})
	h.Mod1.Register("effects", foldEffects[Mod1Modifier](func(e Mod1Modifier, a DamageArgs) float64 {
		return e.Mod1Multiplier(a.L, a.User, a.Target, a.Move)
	}))
	h.Mod2.Register("effects", foldEffects[Mod2Modifier](func(e Mod2Modifier, a DamageArgs) float64 {
		return e.Mod2Multiplier(a.L, a.User, a.Target, a.Move)
	}))
	h.Mod3.Register("effects", foldEffects[Mod3Modifier](func(e Mod3Modifier, a DamageArgs) float64 {
		return e.Mod3Multiplier(a.L, a.User, a.Target, a.Move)
	}))

	h.PostAction.Register("effects", func(a ActionArgs) (struct{}, bool) {
		battlers := append([]*Battler{a.User}, a.Targets...)
		for e := range EffectsOf[PostActionReactor](a.L.Effects(battlers...)) {
			e.OnPostActionEvent(a.L, a.User, a.Targets, a.Move)
		}
		return struct{}{}, true
	})

	return h
}

// foldEffects turns a multiplier interface into a Mod hook callback taking the
// product over the effects of user, target and field.
func foldEffects[T any](mul func(e T, a DamageArgs) float64) hook.Func[DamageArgs, float64] {
	return func(a DamageArgs) (float64, bool) {
		product, found := 1.0, false
		for e := range EffectsOf[T](a.L.EffectsVs(a.User, a.Move, a.User, a.Target)) {
			product *= mul(e, a)
			found = true
		}
		return product, found
	}
}
