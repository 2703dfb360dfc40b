package catalog

import (
	"log/slog"

	"github.com/udisondev/battlecore/internal/game/battle"
)

func init() {
	registerChoiceItem("choice_band", rule(kindAttack, sideUser, when(1.5, physical)))
	registerChoiceItem("choice_specs", rule(kindAttack, sideUser, when(1.5, special)))
	registerChoiceItem("choice_scarf", rule(kindSpeed, sideUser, always(1.5)))
}

func registerChoiceItem(symbol string, r multiplierRule) {
	battle.RegisterItem(symbol, func(holder *battle.Battler, sym string) battle.Effect {
		return &choiceItem{multiplierEffect: newMultiplier(holder, sym, []multiplierRule{r})}
	})
}

// choiceItem boosts one stat and locks its holder into the first move it uses
// until it leaves the field.
type choiceItem struct {
	multiplierEffect
	locked string
}

func (e *choiceItem) OnMoveDisabledCheck(_ *battle.Logic, user *battle.Battler, move *battle.Move) battle.FailureReply {
	if user != e.holder || e.locked == "" || move.Symbol() == e.locked || user.FindMove(e.locked) == nil {
		return nil
	}
	locked := e.locked
	return func(l *battle.Logic, user *battle.Battler, _ *battle.Move) {
		l.Say("choice_locked", "%s is locked into %s!", user.Name(), battle.DisplayName(locked))
	}
}

func (e *choiceItem) OnPostActionEvent(_ *battle.Logic, user *battle.Battler, _ []*battle.Battler, move *battle.Move) {
	if user != e.holder || e.locked != "" || user.FindMove(move.Symbol()) == nil {
		return
	}
	e.locked = move.Symbol()
	slog.Debug("choice lock", "battler", user.Name(), "move", e.locked)
}

func (e *choiceItem) OnSwitchEvent(_ *battle.Logic, who, _ *battle.Battler) {
	if who == e.holder {
		e.locked = ""
	}
}
