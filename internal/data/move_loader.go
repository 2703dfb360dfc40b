package data

import (
	"fmt"
	"log/slog"
	"slices"
)

// MoveTable: глобальный registry всех атак (map[symbol]*MoveTemplate).
// Загружается через LoadMoves() при старте; после загрузки только читается.
var MoveTable map[string]*MoveTemplate

// moveSymbols: отсортированный список символов для детерминированного выбора (metronome).
var moveSymbols []string

// GetMove returns the move template for symbol, or nil if unknown.
func GetMove(symbol string) *MoveTemplate {
	if MoveTable == nil {
		return nil
	}
	return MoveTable[symbol]
}

// MoveSymbols returns every loaded move symbol in sorted order.
func MoveSymbols() []string {
	return moveSymbols
}

// LoadMoves строит MoveTable из Go-литералов (moveDefs).
func LoadMoves() error {
	MoveTable = make(map[string]*MoveTemplate, len(moveDefs))
	for i := range moveDefs {
		def := moveDefs[i]
		if err := validateMove(&def); err != nil {
			return err
		}
		MoveTable[def.Symbol] = &def
	}
	rebuildMoveSymbols()

	slog.Info("loaded moves", "count", len(MoveTable))
	return nil
}

func rebuildMoveSymbols() {
	moveSymbols = moveSymbols[:0]
	for sym := range MoveTable {
		moveSymbols = append(moveSymbols, sym)
	}
	slices.Sort(moveSymbols)
}

func validateMove(m *MoveTemplate) error {
	if m.Symbol == "" {
		return fmt.Errorf("move without symbol")
	}
	if m.Type != TypeNone && !IsValidType(m.Type) {
		return fmt.Errorf("move %s: %w", m.Symbol, &UnknownNameError{Kind: "type", Name: string(m.Type)})
	}
	if !slices.Contains(TargetScopes, m.Target) {
		return fmt.Errorf("move %s: %w", m.Symbol, &UnknownNameError{Kind: "target", Name: string(m.Target)})
	}
	if m.Method == "" {
		return fmt.Errorf("move %s: empty method", m.Symbol)
	}
	if m.PP <= 0 {
		return fmt.Errorf("move %s: pp must be positive, got %d", m.Symbol, m.PP)
	}
	return nil
}
