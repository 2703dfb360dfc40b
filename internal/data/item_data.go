package data

import "log/slog"

// ItemPocket groups items by how they are used.
type ItemPocket int8

const (
	PocketHeld     ItemPocket = iota // only does something while held
	PocketBerry                      // held, consumed on trigger
	PocketMedicine                   // used from the bag on a battler
	PocketBattle                     // used from the bag in battle (x-items)
)

// ItemTemplate is the read-only reference record of an item.
// Held-item behaviour lives in the effect catalog; bag items are fully described here.
type ItemTemplate struct {
	Symbol     string       `yaml:"symbol"`
	Pocket     ItemPocket   `yaml:"pocket"`
	Price      int          `yaml:"price"`
	HealHP     int          `yaml:"heal_hp"`     // flat HP restored (bag use)
	CureStatus bool         `yaml:"cure_status"` // cures the major status (bag use)
	Boost      []StatChange `yaml:"boost"`       // stage changes (bag use)
}

// IsBerry reports whether the item is a berry.
func (i *ItemTemplate) IsBerry() bool { return i.Pocket == PocketBerry }

// IsUsableFromBag reports whether the item can be the subject of a bag action.
func (i *ItemTemplate) IsUsableFromBag() bool {
	return i.Pocket == PocketMedicine || i.Pocket == PocketBattle
}

var itemDefs = []ItemTemplate{
	// Bag
	{Symbol: "potion", Pocket: PocketMedicine, Price: 200, HealHP: 20},
	{Symbol: "super_potion", Pocket: PocketMedicine, Price: 700, HealHP: 60},
	{Symbol: "hyper_potion", Pocket: PocketMedicine, Price: 1500, HealHP: 120},
	{Symbol: "full_heal", Pocket: PocketMedicine, Price: 400, CureStatus: true},
	{Symbol: "x_attack", Pocket: PocketBattle, Price: 500, Boost: []StatChange{{Stat: StatAtk, Amount: 2}}},
	{Symbol: "x_defense", Pocket: PocketBattle, Price: 550, Boost: []StatChange{{Stat: StatDfe, Amount: 2}}},
	{Symbol: "x_speed", Pocket: PocketBattle, Price: 350, Boost: []StatChange{{Stat: StatSpd, Amount: 2}}},
	{Symbol: "x_sp_atk", Pocket: PocketBattle, Price: 350, Boost: []StatChange{{Stat: StatAts, Amount: 2}}},
	{Symbol: "x_sp_def", Pocket: PocketBattle, Price: 350, Boost: []StatChange{{Stat: StatDfs, Amount: 2}}},
	{Symbol: "x_accuracy", Pocket: PocketBattle, Price: 950, Boost: []StatChange{{Stat: StatAcc, Amount: 2}}},

	// Held: type boosters
	{Symbol: "silk_scarf", Price: 1000},
	{Symbol: "charcoal", Price: 1000},
	{Symbol: "mystic_water", Price: 1000},
	{Symbol: "magnet", Price: 1000},
	{Symbol: "miracle_seed", Price: 1000},
	{Symbol: "never_melt_ice", Price: 1000},
	{Symbol: "black_belt", Price: 1000},
	{Symbol: "poison_barb", Price: 1000},
	{Symbol: "soft_sand", Price: 1000},
	{Symbol: "sharp_beak", Price: 1000},
	{Symbol: "twisted_spoon", Price: 1000},
	{Symbol: "silver_powder", Price: 1000},
	{Symbol: "hard_stone", Price: 1000},
	{Symbol: "spell_tag", Price: 1000},
	{Symbol: "dragon_fang", Price: 1000},
	{Symbol: "black_glasses", Price: 1000},
	{Symbol: "metal_coat", Price: 1000},
	{Symbol: "flame_plate", Price: 1000},
	{Symbol: "splash_plate", Price: 1000},
	{Symbol: "zap_plate", Price: 1000},
	{Symbol: "pixie_plate", Price: 1000},

	// Held: stat and damage modifiers
	{Symbol: "muscle_band", Price: 4000},
	{Symbol: "wise_glasses", Price: 4000},
	{Symbol: "choice_band", Price: 4000},
	{Symbol: "choice_specs", Price: 4000},
	{Symbol: "choice_scarf", Price: 4000},
	{Symbol: "life_orb", Price: 4000},
	{Symbol: "metronome", Price: 4000},
	{Symbol: "expert_belt", Price: 4000},
	{Symbol: "assault_vest", Price: 4000},
	{Symbol: "eviolite", Price: 4000},
	{Symbol: "thick_club", Price: 500},
	{Symbol: "light_ball", Price: 1000},
	{Symbol: "deep_sea_tooth", Price: 2000},
	{Symbol: "deep_sea_scale", Price: 2000},
	{Symbol: "iron_ball", Price: 4000},
	{Symbol: "quick_powder", Price: 1000},
	{Symbol: "macho_brace", Price: 3000},
	{Symbol: "wide_lens", Price: 4000},
	{Symbol: "zoom_lens", Price: 4000},
	{Symbol: "bright_powder", Price: 4000},
	{Symbol: "lax_incense", Price: 4000},
	{Symbol: "scope_lens", Price: 4000},

	// Held: reactive
	{Symbol: "white_herb", Price: 4000},
	{Symbol: "mental_herb", Price: 4000},
	{Symbol: "air_balloon", Price: 4000},
	{Symbol: "focus_sash", Price: 4000},
	{Symbol: "rocky_helmet", Price: 4000},
	{Symbol: "leftovers", Price: 4000},
	{Symbol: "black_sludge", Price: 4000},
	{Symbol: "ring_target", Price: 4000},
	{Symbol: "shell_bell", Price: 4000},

	// Berries
	{Symbol: "oran_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "sitrus_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "lum_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "cheri_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "chesto_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "pecha_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "rawst_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "aspear_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "persim_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "occa_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "passho_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "wacan_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "rindo_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "yache_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "chople_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "shuca_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "coba_berry", Pocket: PocketBerry, Price: 20},
	{Symbol: "chilan_berry", Pocket: PocketBerry, Price: 20},
}

// ItemTable: глобальный registry всех предметов (map[symbol]*ItemTemplate).
var ItemTable map[string]*ItemTemplate

// GetItem returns the item template for symbol, or nil if unknown.
func GetItem(symbol string) *ItemTemplate {
	if ItemTable == nil {
		return nil
	}
	return ItemTable[symbol]
}

// LoadItems строит ItemTable из Go-литералов (itemDefs).
func LoadItems() error {
	ItemTable = make(map[string]*ItemTemplate, len(itemDefs))
	for i := range itemDefs {
		def := itemDefs[i]
		ItemTable[def.Symbol] = &def
	}

	slog.Info("loaded items", "count", len(ItemTable))
	return nil
}
