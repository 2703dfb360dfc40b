package data

import "fmt"

// LoadAll loads every reference table. Called once at startup (cmd/battlesim)
// and by tests through MustLoadForTest.
func LoadAll() error {
	loaders := []struct {
		name string
		fn   func() error
	}{
		{"natures", LoadNatures},
		{"species", LoadSpecies},
		{"moves", LoadMoves},
		{"items", LoadItems},
		{"abilities", LoadAbilities},
	}
	for _, l := range loaders {
		if err := l.fn(); err != nil {
			return fmt.Errorf("loading %s: %w", l.name, err)
		}
	}
	return nil
}
