package model

import "github.com/udisondev/battlecore/internal/data"

const (
	MaxLevel = 100
	MaxIV    = 31
	MaxEV    = 252
)

// Stats are the computed permanent stats of a creature.
type Stats struct {
	HP  int
	Atk int
	Dfe int
	Spd int
	Ats int
	Dfs int
}

// CalcStats applies the standard stat formula:
//
//	HP    = (2*Base + IV + EV/4) * Level / 100 + Level + 10
//	other = ((2*Base + IV + EV/4) * Level / 100 + 5) * nature / 100
//
// Every division truncates.
func CalcStats(base data.BaseStats, level int, iv, ev StatSet, nature *data.NatureTemplate) Stats {
	other := func(b, i, e int, stat data.Stat) int {
		v := (2*b+i+e/4)*level/100 + 5
		return v * nature.Modifier(stat) / 100
	}
	return Stats{
		HP:  (2*base.HP+iv.HP+ev.HP/4)*level/100 + level + 10,
		Atk: other(base.Atk, iv.Atk, ev.Atk, data.StatAtk),
		Dfe: other(base.Dfe, iv.Dfe, ev.Dfe, data.StatDfe),
		Spd: other(base.Spd, iv.Spd, ev.Spd, data.StatSpd),
		Ats: other(base.Ats, iv.Ats, ev.Ats, data.StatAts),
		Dfs: other(base.Dfs, iv.Dfs, ev.Dfs, data.StatDfs),
	}
}
