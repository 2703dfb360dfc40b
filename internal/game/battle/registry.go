package battle

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/udisondev/battlecore/internal/data"
)

// EffectFactory builds the effect of a held item or ability for its holder.
type EffectFactory func(holder *Battler, symbol string) Effect

// StatusFactory builds the effect backing a status condition.
type StatusFactory func(holder *Battler, status data.Status) Effect

// ProcedureFactory builds the procedure implementing a move method.
type ProcedureFactory func() Procedure

// Registries map stable symbols to factories. They are filled from init()
// functions of the catalog and read-only once a battle starts.
var (
	itemRegistry      = map[string]EffectFactory{}
	abilityRegistry   = map[string]EffectFactory{}
	statusRegistry    = map[data.Status]StatusFactory{}
	procedureRegistry = map[string]ProcedureFactory{}
)

// RegisterItem registers the effect factory of a held item.
func RegisterItem(symbol string, factory EffectFactory) {
	itemRegistry[symbol] = factory
}

// RegisterAbility registers the effect factory of an ability.
func RegisterAbility(symbol string, factory EffectFactory) {
	abilityRegistry[symbol] = factory
}

// RegisterStatus registers the effect factory of a status condition.
func RegisterStatus(status data.Status, factory StatusFactory) {
	statusRegistry[status] = factory
}

// RegisterMoveProcedure registers the procedure of a move method ("s_basic", ...).
func RegisterMoveProcedure(method string, factory ProcedureFactory) {
	procedureRegistry[method] = factory
}

// RegisteredItems returns the symbols with a registered item effect, sorted.
func RegisteredItems() []string {
	return slices.Sorted(maps.Keys(itemRegistry))
}

// RegisteredAbilities returns the symbols with a registered ability effect, sorted.
func RegisteredAbilities() []string {
	return slices.Sorted(maps.Keys(abilityRegistry))
}

// RegisteredProcedures returns the registered move methods, sorted.
func RegisteredProcedures() []string {
	return slices.Sorted(maps.Keys(procedureRegistry))
}

func createItemEffect(holder *Battler, symbol string) Effect {
	if symbol == "" {
		return nil
	}
	factory, ok := itemRegistry[symbol]
	if !ok {
		return nil
	}
	return factory(holder, symbol)
}

func createAbilityEffect(holder *Battler, symbol string) Effect {
	if symbol == "" {
		return nil
	}
	factory, ok := abilityRegistry[symbol]
	if !ok {
		return nil
	}
	return factory(holder, symbol)
}

func createStatusEffect(holder *Battler, status data.Status) Effect {
	factory, ok := statusRegistry[status]
	if !ok {
		return nil
	}
	return factory(holder, status)
}

// CreateProcedure resolves the procedure of a move method. Unknown methods get the
// unimplemented procedure, which shows a placeholder message instead of failing.
func CreateProcedure(method string) (Procedure, error) {
	factory, ok := procedureRegistry[method]
	if !ok {
		return &unimplementedProcedure{method: method}, fmt.Errorf("unknown move procedure: %s", method)
	}
	return factory(), nil
}

func procedureFor(move *Move) Procedure {
	p, err := CreateProcedure(move.Method())
	if err != nil {
		slog.Warn("move procedure not implemented", "move", move.Symbol(), "method", move.Method())
	}
	return p
}

func init() {
	RegisterMoveProcedure("s_basic", func() Procedure { return BasicProcedure{} })
	RegisterMoveProcedure("s_status", func() Procedure { return BasicProcedure{} })
	RegisterMoveProcedure("s_stat", func() Procedure { return BasicProcedure{} })
}
