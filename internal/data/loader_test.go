package data

import "testing"

func TestLoadAll(t *testing.T) {
	if err := LoadAll(); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if GetMove("tackle") == nil {
		t.Fatal("tackle not loaded")
	}
	if GetSpecies("pikachu") == nil {
		t.Fatal("pikachu not loaded")
	}
	if GetItem("oran_berry") == nil || !GetItem("oran_berry").IsBerry() {
		t.Fatal("oran_berry not loaded as berry")
	}
	if GetAbility("levitate") == nil || !GetAbility("levitate").Breakable {
		t.Fatal("levitate must be breakable")
	}
	if len(MoveSymbols()) != len(MoveTable) {
		t.Errorf("MoveSymbols has %d entries, MoveTable %d", len(MoveSymbols()), len(MoveTable))
	}
}

func TestMoveDefsAreValid(t *testing.T) {
	seen := make(map[string]bool, len(moveDefs))
	for i := range moveDefs {
		m := moveDefs[i]
		if err := validateMove(&m); err != nil {
			t.Errorf("invalid move: %v", err)
		}
		if seen[m.Symbol] {
			t.Errorf("duplicate move %s", m.Symbol)
		}
		seen[m.Symbol] = true
	}
}

func TestNatureModifier(t *testing.T) {
	if err := LoadNatures(); err != nil {
		t.Fatal(err)
	}
	adamant := GetNature("adamant")
	if got := adamant.Modifier(StatAtk); got != 110 {
		t.Errorf("adamant atk = %d, want 110", got)
	}
	if got := adamant.Modifier(StatAts); got != 90 {
		t.Errorf("adamant ats = %d, want 90", got)
	}
	if got := GetNature("hardy").Modifier(StatAtk); got != 100 {
		t.Errorf("hardy atk = %d, want 100", got)
	}
	var none *NatureTemplate
	if got := none.Modifier(StatSpd); got != 100 {
		t.Errorf("nil nature = %d, want 100", got)
	}
}
