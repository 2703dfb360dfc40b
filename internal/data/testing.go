package data

import "sync"

var testLoadOnce sync.Once

// MustLoadForTest loads every table once per test binary.
// Intended for tests from other packages that need reference data.
func MustLoadForTest() {
	testLoadOnce.Do(func() {
		if err := LoadAll(); err != nil {
			panic(err)
		}
	})
}

// SetTestMove adds or replaces a move in MoveTable.
// Intended for tests that need a move with exact numbers.
func SetTestMove(m MoveTemplate) {
	MustLoadForTest()
	MoveTable[m.Symbol] = &m
	rebuildMoveSymbols()
}

// DeleteTestMove removes a move added by SetTestMove.
func DeleteTestMove(symbol string) {
	delete(MoveTable, symbol)
	rebuildMoveSymbols()
}
