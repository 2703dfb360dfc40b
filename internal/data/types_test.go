package data

import "testing"

func TestEffectiveness(t *testing.T) {
	tests := []struct {
		attack, defense Type
		want            float64
	}{
		{TypeFire, TypeGrass, 2},
		{TypeWater, TypeFire, 2},
		{TypeElectric, TypeGround, 0},
		{TypeNormal, TypeGhost, 0},
		{TypeIce, TypeWater, 0.5},
		{TypeGround, TypeFlying, 0},
		{TypeDragon, TypeFairy, 0},
		{TypeNormal, TypeNormal, 1},
		{TypeNone, TypeGhost, 1},
	}
	for _, tt := range tests {
		if got := Effectiveness(tt.attack, tt.defense); got != tt.want {
			t.Errorf("Effectiveness(%s, %s) = %v, want %v", tt.attack, tt.defense, got, tt.want)
		}
	}
}

func TestTypeChartRowsAreKnownTypes(t *testing.T) {
	for attack, row := range typeChart {
		if !IsValidType(attack) {
			t.Errorf("unknown attack type %q", attack)
		}
		for defense := range row {
			if !IsValidType(defense) {
				t.Errorf("%s row: unknown defense type %q", attack, defense)
			}
		}
	}
}
