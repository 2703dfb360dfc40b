package data

// NatureTemplate raises one stat by 10% and lowers another by 10%.
// Neutral natures raise and lower the same stat.
type NatureTemplate struct {
	Symbol   string
	Increase Stat
	Decrease Stat
}

var natureDefs = []NatureTemplate{
	{"hardy", StatAtk, StatAtk}, {"lonely", StatAtk, StatDfe}, {"brave", StatAtk, StatSpd},
	{"adamant", StatAtk, StatAts}, {"naughty", StatAtk, StatDfs},
	{"bold", StatDfe, StatAtk}, {"docile", StatDfe, StatDfe}, {"relaxed", StatDfe, StatSpd},
	{"impish", StatDfe, StatAts}, {"lax", StatDfe, StatDfs},
	{"timid", StatSpd, StatAtk}, {"hasty", StatSpd, StatDfe}, {"serious", StatSpd, StatSpd},
	{"jolly", StatSpd, StatAts}, {"naive", StatSpd, StatDfs},
	{"modest", StatAts, StatAtk}, {"mild", StatAts, StatDfe}, {"quiet", StatAts, StatSpd},
	{"bashful", StatAts, StatAts}, {"rash", StatAts, StatDfs},
	{"calm", StatDfs, StatAtk}, {"gentle", StatDfs, StatDfe}, {"sassy", StatDfs, StatSpd},
	{"careful", StatDfs, StatAts}, {"quirky", StatDfs, StatDfs},
}

// NatureTable: natures по символу; строится в LoadNatures.
var NatureTable map[string]*NatureTemplate

// GetNature returns the nature for symbol, or nil if unknown.
func GetNature(symbol string) *NatureTemplate {
	if NatureTable == nil {
		return nil
	}
	return NatureTable[symbol]
}

// Modifier returns the percentage (90, 100 or 110) the nature applies to stat.
// A nil nature is neutral.
func (n *NatureTemplate) Modifier(stat Stat) int {
	if n == nil || n.Increase == n.Decrease {
		return 100
	}
	switch stat {
	case n.Increase:
		return 110
	case n.Decrease:
		return 90
	}
	return 100
}

// LoadNatures строит NatureTable.
func LoadNatures() error {
	NatureTable = make(map[string]*NatureTemplate, len(natureDefs))
	for i := range natureDefs {
		NatureTable[natureDefs[i].Symbol] = &natureDefs[i]
	}
	return nil
}
