package data

// Stat identifies a stat that carries a battle stage.
type Stat int8

const (
	StatAtk Stat = iota // Attack
	StatDfe             // Defense
	StatSpd             // Speed
	StatAts             // Special attack
	StatDfs             // Special defense
	StatAcc             // Accuracy
	StatEva             // Evasion

	StatCount = 7
)

var statNames = [StatCount]string{"atk", "dfe", "spd", "ats", "dfs", "acc", "eva"}

func (s Stat) String() string {
	if s < 0 || int(s) >= StatCount {
		return "unknown"
	}
	return statNames[s]
}

// ParseStat converts a short stat name ("atk", "dfs", ...) back to a Stat.
func ParseStat(name string) (Stat, bool) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), true
		}
	}
	return 0, false
}

const (
	MinStage = -6
	MaxStage = 6
)

// Stage multiplier tables (indexed by stage+6).
//
//	atk/dfe/spd/ats/dfs: stage >= 0 -> (2+stage)/2, stage < 0 -> 2/(2-stage)
//	acc/eva:             stage >= 0 -> (3+stage)/3, stage < 0 -> 3/(3-stage)
//
// Both tables are built once by InitStageTables and only read afterwards.
var (
	statStageTable     [MaxStage - MinStage + 1]float64
	accuracyStageTable [MaxStage - MinStage + 1]float64
)

// criticalRateTable: делитель шанса крита по стадии (1/24, 1/8, 1/2, всегда).
var criticalRateTable = [...]int{24, 8, 2, 1}

func init() {
	InitStageTables()
}

// InitStageTables fills the stage tables.
func InitStageTables() {
	for stage := MinStage; stage <= MaxStage; stage++ {
		i := stage - MinStage
		if stage >= 0 {
			statStageTable[i] = float64(2+stage) / 2
			accuracyStageTable[i] = float64(3+stage) / 3
		} else {
			statStageTable[i] = 2 / float64(2-stage)
			accuracyStageTable[i] = 3 / float64(3-stage)
		}
	}
}

// ClampStage bounds a stage to [MinStage, MaxStage].
func ClampStage(stage int) int {
	return min(max(stage, MinStage), MaxStage)
}

// StageMultiplier returns the multiplier of atk/dfe/spd/ats/dfs at stage.
// Out-of-range stages are clamped.
func StageMultiplier(stage int) float64 {
	return statStageTable[ClampStage(stage)-MinStage]
}

// AccuracyStageMultiplier returns the multiplier of acc/eva at stage.
func AccuracyStageMultiplier(stage int) float64 {
	return accuracyStageTable[ClampStage(stage)-MinStage]
}

// CriticalRate returns the 1/n odds of a critical hit at the given critical stage.
func CriticalRate(stage int) int {
	if stage < 0 {
		stage = 0
	}
	if stage >= len(criticalRateTable) {
		stage = len(criticalRateTable) - 1
	}
	return criticalRateTable[stage]
}

// UnmarshalText lets YAML overrides refer to stats by short name.
func (s *Stat) UnmarshalText(text []byte) error {
	st, ok := ParseStat(string(text))
	if !ok {
		return &UnknownNameError{Kind: "stat", Name: string(text)}
	}
	*s = st
	return nil
}
