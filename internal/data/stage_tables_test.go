package data

import "testing"

func TestStageMultiplier(t *testing.T) {
	tests := []struct {
		stage int
		want  float64
	}{
		{-6, 2.0 / 8},
		{-1, 2.0 / 3},
		{0, 1},
		{1, 1.5},
		{2, 2},
		{6, 4},
		{9, 4}, // clamped
	}
	for _, tt := range tests {
		if got := StageMultiplier(tt.stage); got != tt.want {
			t.Errorf("StageMultiplier(%d) = %v, want %v", tt.stage, got, tt.want)
		}
	}
}

func TestAccuracyStageMultiplier(t *testing.T) {
	tests := []struct {
		stage int
		want  float64
	}{
		{-6, 3.0 / 9},
		{-1, 3.0 / 4},
		{0, 1},
		{1, 4.0 / 3},
		{6, 3},
	}
	for _, tt := range tests {
		if got := AccuracyStageMultiplier(tt.stage); got != tt.want {
			t.Errorf("AccuracyStageMultiplier(%d) = %v, want %v", tt.stage, got, tt.want)
		}
	}
}

func TestClampStage(t *testing.T) {
	for stage := -20; stage <= 20; stage++ {
		got := ClampStage(stage)
		if got < MinStage || got > MaxStage {
			t.Fatalf("ClampStage(%d) = %d out of range", stage, got)
		}
		if stage >= MinStage && stage <= MaxStage && got != stage {
			t.Errorf("ClampStage(%d) = %d, want identity", stage, got)
		}
	}
}

func TestCriticalRate(t *testing.T) {
	if got := CriticalRate(0); got != 24 {
		t.Errorf("CriticalRate(0) = %d, want 24", got)
	}
	if got := CriticalRate(3); got != 1 {
		t.Errorf("CriticalRate(3) = %d, want 1", got)
	}
	if got := CriticalRate(10); got != 1 {
		t.Errorf("CriticalRate(10) = %d, want 1", got)
	}
}

func TestParseStat(t *testing.T) {
	for i := 0; i < StatCount; i++ {
		s := Stat(i)
		got, ok := ParseStat(s.String())
		if !ok || got != s {
			t.Errorf("ParseStat(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseStat("hp"); ok {
		t.Error("hp has no stage")
	}
}
