package data

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the YAML shape of a balance patch applied on top of the built-in tables.
// Entries replace the built-in record with the same symbol or add a new one.
//
//	moves:
//	  - symbol: tackle
//	    type: normal
//	    power: 50
//	    ...
//	items:
//	  - symbol: potion
//	    heal_hp: 30
type Overrides struct {
	Moves []MoveTemplate `yaml:"moves"`
	Items []ItemTemplate `yaml:"items"`
}

// ParseOverrides decodes a balance patch.
func ParseOverrides(raw []byte) (*Overrides, error) {
	var ov Overrides
	if err := yaml.Unmarshal(raw, &ov); err != nil {
		return nil, fmt.Errorf("parsing overrides: %w", err)
	}
	return &ov, nil
}

// LoadOverrides reads and applies a balance patch file.
// A missing file is not an error: the built-in tables stay as they are.
func LoadOverrides(path string) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading overrides %s: %w", path, err)
	}
	ov, err := ParseOverrides(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return ApplyOverrides(ov)
}

// ApplyOverrides merges ov into the loaded tables. Tables must be loaded first.
func ApplyOverrides(ov *Overrides) error {
	if MoveTable == nil || ItemTable == nil {
		return fmt.Errorf("applying overrides: tables not loaded")
	}
	for i := range ov.Moves {
		m := ov.Moves[i]
		if err := validateMove(&m); err != nil {
			return fmt.Errorf("override: %w", err)
		}
		MoveTable[m.Symbol] = &m
	}
	for i := range ov.Items {
		it := ov.Items[i]
		if it.Symbol == "" {
			return fmt.Errorf("override: item without symbol")
		}
		ItemTable[it.Symbol] = &it
	}
	rebuildMoveSymbols()

	slog.Info("applied data overrides", "moves", len(ov.Moves), "items", len(ov.Items))
	return nil
}
