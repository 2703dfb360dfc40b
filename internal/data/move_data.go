package data

// moveDefs: справочник атак. Порядок не важен, ключ: Symbol.
var moveDefs = []MoveTemplate{
	// Basic physical
	{Symbol: "tackle", Type: TypeNormal, Power: 40, Accuracy: 100, PP: 35, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "pound", Type: TypeNormal, Power: 40, Accuracy: 100, PP: 35, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "scratch", Type: TypeNormal, Power: 40, Accuracy: 100, PP: 35, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "quick_attack", Type: TypeNormal, Power: 40, Accuracy: 100, PP: 30, Category: CategoryPhysical, Priority: 1, Target: TargetAdjacentPokemon, Method: "s_basic", Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "strength", Type: TypeNormal, Power: 80, Accuracy: 100, PP: 15, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "slash", Type: TypeNormal, Power: 70, Accuracy: 100, PP: 20, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", CriticalRate: 1, Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "body_slam", Type: TypeNormal, Power: 85, Accuracy: 100, PP: 15, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", EffectChance: 30, Status: StatusParalysis, Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "headbutt", Type: TypeNormal, Power: 70, Accuracy: 100, PP: 15, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", EffectChance: 30, Status: StatusFlinch, Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "thunder_punch", Type: TypeElectric, Power: 75, Accuracy: 100, PP: 15, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", EffectChance: 10, Status: StatusParalysis, Flags: MoveFlags{Contact: true, Punch: true, Protect: true}},
	{Symbol: "fire_punch", Type: TypeFire, Power: 75, Accuracy: 100, PP: 15, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", EffectChance: 10, Status: StatusBurn, Flags: MoveFlags{Contact: true, Punch: true, Protect: true}},
	{Symbol: "ice_punch", Type: TypeIce, Power: 75, Accuracy: 100, PP: 15, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", EffectChance: 10, Status: StatusFreeze, Flags: MoveFlags{Contact: true, Punch: true, Protect: true}},
	{Symbol: "bite", Type: TypeDark, Power: 60, Accuracy: 100, PP: 25, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", EffectChance: 30, Status: StatusFlinch, Flags: MoveFlags{Contact: true, Bite: true, Protect: true}},
	{Symbol: "crunch", Type: TypeDark, Power: 80, Accuracy: 100, PP: 15, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", EffectChance: 20, StatChanges: []StatChange{{Stat: StatDfe, Amount: -1}}, Flags: MoveFlags{Contact: true, Bite: true, Protect: true}},
	{Symbol: "rock_slide", Type: TypeRock, Power: 75, Accuracy: 90, PP: 10, Category: CategoryPhysical, Target: TargetAdjacentAllFoe, Method: "s_basic", EffectChance: 30, Status: StatusFlinch, Flags: MoveFlags{Protect: true}},
	{Symbol: "earthquake", Type: TypeGround, Power: 100, Accuracy: 100, PP: 10, Category: CategoryPhysical, Target: TargetAdjacentAllPokemon, Method: "s_basic", Flags: MoveFlags{Protect: true}},
	{Symbol: "thousand_arrows", Type: TypeGround, Power: 90, Accuracy: 100, PP: 10, Category: CategoryPhysical, Target: TargetAdjacentAllFoe, Method: "s_smack_down", Flags: MoveFlags{Protect: true}},
	{Symbol: "smack_down", Type: TypeRock, Power: 50, Accuracy: 100, PP: 15, Category: CategoryPhysical, Target: TargetAnyOtherPokemon, Method: "s_smack_down", Flags: MoveFlags{Protect: true}},
	{Symbol: "x_scissor", Type: TypeBug, Power: 80, Accuracy: 100, PP: 15, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "iron_head", Type: TypeSteel, Power: 80, Accuracy: 100, PP: 15, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", EffectChance: 30, Status: StatusFlinch, Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "play_rough", Type: TypeFairy, Power: 90, Accuracy: 90, PP: 10, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_basic", EffectChance: 10, StatChanges: []StatChange{{Stat: StatAtk, Amount: -1}}, Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "aerial_ace", Type: TypeFlying, Power: 60, Accuracy: 0, PP: 20, Category: CategoryPhysical, Target: TargetAnyOtherPokemon, Method: "s_basic", Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "close_combat", Type: TypeFighting, Power: 120, Accuracy: 100, PP: 5, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_self_stat", StatChanges: []StatChange{{Stat: StatDfe, Amount: -1}, {Stat: StatDfs, Amount: -1}}, Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "double_kick", Type: TypeFighting, Power: 30, Accuracy: 100, PP: 30, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_multi_hit", HitMin: 2, HitMax: 2, Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "fury_attack", Type: TypeNormal, Power: 15, Accuracy: 85, PP: 20, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_multi_hit", HitMin: 2, HitMax: 5, Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "bullet_seed", Type: TypeGrass, Power: 25, Accuracy: 100, PP: 30, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_multi_hit", HitMin: 2, HitMax: 5, Flags: MoveFlags{Ballistic: true, Protect: true}},
	{Symbol: "double_edge", Type: TypeNormal, Power: 120, Accuracy: 100, PP: 15, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_recoil", Recoil: 3, Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "take_down", Type: TypeNormal, Power: 90, Accuracy: 85, PP: 20, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_recoil", Recoil: 4, Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "flare_blitz", Type: TypeFire, Power: 120, Accuracy: 100, PP: 15, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_recoil", Recoil: 3, EffectChance: 10, Status: StatusBurn, Flags: MoveFlags{Contact: true, Protect: true, Unfreeze: true}},
	{Symbol: "drain_punch", Type: TypeFighting, Power: 75, Accuracy: 100, PP: 10, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_drain", Drain: 50, Flags: MoveFlags{Contact: true, Punch: true, Protect: true}},
	{Symbol: "fly", Type: TypeFlying, Power: 90, Accuracy: 95, PP: 15, Category: CategoryPhysical, Target: TargetAnyOtherPokemon, Method: "s_2turns", Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "dig", Type: TypeGround, Power: 80, Accuracy: 100, PP: 10, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_2turns", Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "guillotine", Type: TypeNormal, Power: 0, Accuracy: 30, PP: 5, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_ohko", Flags: MoveFlags{Contact: true, Protect: true}},
	{Symbol: "fissure", Type: TypeGround, Power: 0, Accuracy: 30, PP: 5, Category: CategoryPhysical, Target: TargetAdjacentPokemon, Method: "s_ohko", Flags: MoveFlags{Protect: true}},
	{Symbol: "struggle", Type: TypeNone, Power: 50, Accuracy: 0, PP: 1, Category: CategoryPhysical, Target: TargetRandomFoe, Method: "s_struggle", Flags: MoveFlags{Contact: true, Protect: true}},

	// Basic special
	{Symbol: "water_gun", Type: TypeWater, Power: 40, Accuracy: 100, PP: 25, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", Flags: MoveFlags{Protect: true}},
	{Symbol: "ember", Type: TypeFire, Power: 40, Accuracy: 100, PP: 25, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 10, Status: StatusBurn, Flags: MoveFlags{Protect: true}},
	{Symbol: "thunder_shock", Type: TypeElectric, Power: 40, Accuracy: 100, PP: 30, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 10, Status: StatusParalysis, Flags: MoveFlags{Protect: true}},
	{Symbol: "gust", Type: TypeFlying, Power: 40, Accuracy: 100, PP: 35, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", Flags: MoveFlags{Protect: true}},
	{Symbol: "thunderbolt", Type: TypeElectric, Power: 90, Accuracy: 100, PP: 15, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 10, Status: StatusParalysis, Flags: MoveFlags{Protect: true}},
	{Symbol: "thunder", Type: TypeElectric, Power: 110, Accuracy: 70, PP: 10, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 30, Status: StatusParalysis, Flags: MoveFlags{Protect: true}},
	{Symbol: "discharge", Type: TypeElectric, Power: 80, Accuracy: 100, PP: 15, Category: CategorySpecial, Target: TargetAdjacentAllPokemon, Method: "s_basic", EffectChance: 30, Status: StatusParalysis, Flags: MoveFlags{Protect: true}},
	{Symbol: "flamethrower", Type: TypeFire, Power: 90, Accuracy: 100, PP: 15, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 10, Status: StatusBurn, Flags: MoveFlags{Protect: true}},
	{Symbol: "fire_blast", Type: TypeFire, Power: 110, Accuracy: 85, PP: 5, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 10, Status: StatusBurn, Flags: MoveFlags{Protect: true}},
	{Symbol: "heat_wave", Type: TypeFire, Power: 95, Accuracy: 90, PP: 10, Category: CategorySpecial, Target: TargetAdjacentAllFoe, Method: "s_basic", EffectChance: 10, Status: StatusBurn, Flags: MoveFlags{Protect: true}},
	{Symbol: "scald", Type: TypeWater, Power: 80, Accuracy: 100, PP: 15, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 30, Status: StatusBurn, Flags: MoveFlags{Protect: true, Unfreeze: true}},
	{Symbol: "surf", Type: TypeWater, Power: 90, Accuracy: 100, PP: 15, Category: CategorySpecial, Target: TargetAdjacentAllPokemon, Method: "s_basic", Flags: MoveFlags{Protect: true}},
	{Symbol: "hydro_pump", Type: TypeWater, Power: 110, Accuracy: 80, PP: 5, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", Flags: MoveFlags{Protect: true}},
	{Symbol: "ice_beam", Type: TypeIce, Power: 90, Accuracy: 100, PP: 10, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 10, Status: StatusFreeze, Flags: MoveFlags{Protect: true}},
	{Symbol: "blizzard", Type: TypeIce, Power: 110, Accuracy: 70, PP: 5, Category: CategorySpecial, Target: TargetAdjacentAllFoe, Method: "s_basic", EffectChance: 10, Status: StatusFreeze, Flags: MoveFlags{Protect: true}},
	{Symbol: "freeze_dry", Type: TypeIce, Power: 70, Accuracy: 100, PP: 20, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 10, Status: StatusFreeze, Flags: MoveFlags{Protect: true}},
	{Symbol: "psychic", Type: TypePsychic, Power: 90, Accuracy: 100, PP: 10, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 10, StatChanges: []StatChange{{Stat: StatDfs, Amount: -1}}, Flags: MoveFlags{Protect: true}},
	{Symbol: "confusion", Type: TypePsychic, Power: 50, Accuracy: 100, PP: 25, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 10, Status: StatusConfusion, Flags: MoveFlags{Protect: true}},
	{Symbol: "shadow_ball", Type: TypeGhost, Power: 80, Accuracy: 100, PP: 15, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 20, StatChanges: []StatChange{{Stat: StatDfs, Amount: -1}}, Flags: MoveFlags{Ballistic: true, Protect: true}},
	{Symbol: "dark_pulse", Type: TypeDark, Power: 80, Accuracy: 100, PP: 15, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 20, Status: StatusFlinch, Flags: MoveFlags{Pulse: true, Protect: true}},
	{Symbol: "sludge_bomb", Type: TypePoison, Power: 90, Accuracy: 100, PP: 10, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 30, Status: StatusPoison, Flags: MoveFlags{Ballistic: true, Protect: true}},
	{Symbol: "energy_ball", Type: TypeGrass, Power: 90, Accuracy: 100, PP: 10, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 10, StatChanges: []StatChange{{Stat: StatDfs, Amount: -1}}, Flags: MoveFlags{Ballistic: true, Protect: true}},
	{Symbol: "dragon_pulse", Type: TypeDragon, Power: 85, Accuracy: 100, PP: 10, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", Flags: MoveFlags{Pulse: true, Protect: true}},
	{Symbol: "moonblast", Type: TypeFairy, Power: 95, Accuracy: 100, PP: 15, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_basic", EffectChance: 30, StatChanges: []StatChange{{Stat: StatAts, Amount: -1}}, Flags: MoveFlags{Protect: true}},
	{Symbol: "hyper_voice", Type: TypeNormal, Power: 90, Accuracy: 100, PP: 10, Category: CategorySpecial, Target: TargetAdjacentAllFoe, Method: "s_basic", Flags: MoveFlags{Sound: true, Protect: true}},
	{Symbol: "giga_drain", Type: TypeGrass, Power: 75, Accuracy: 100, PP: 10, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_drain", Drain: 50, Flags: MoveFlags{Protect: true}},
	{Symbol: "overheat", Type: TypeFire, Power: 130, Accuracy: 90, PP: 5, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_self_stat", StatChanges: []StatChange{{Stat: StatAts, Amount: -2}}, Flags: MoveFlags{Protect: true}},
	{Symbol: "dragon_rage", Type: TypeDragon, Power: 0, Accuracy: 100, PP: 10, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_fixed_damage", FixedDamage: 40, Flags: MoveFlags{Protect: true}},
	{Symbol: "sonic_boom", Type: TypeNormal, Power: 0, Accuracy: 90, PP: 20, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_fixed_damage", FixedDamage: 20, Flags: MoveFlags{Protect: true}},
	{Symbol: "future_sight", Type: TypePsychic, Power: 120, Accuracy: 100, PP: 10, Category: CategorySpecial, Target: TargetAnyOtherPokemon, Method: "s_future_sight"},

	// Status: inflict
	{Symbol: "thunder_wave", Type: TypeElectric, Accuracy: 90, PP: 20, Category: CategoryStatus, Target: TargetAdjacentPokemon, Method: "s_status", Status: StatusParalysis, Flags: MoveFlags{Protect: true, MagicCoat: true, TypeImmune: true}},
	{Symbol: "will_o_wisp", Type: TypeFire, Accuracy: 85, PP: 15, Category: CategoryStatus, Target: TargetAnyOtherPokemon, Method: "s_status", Status: StatusBurn, Flags: MoveFlags{Protect: true, MagicCoat: true}},
	{Symbol: "toxic", Type: TypePoison, Accuracy: 90, PP: 10, Category: CategoryStatus, Target: TargetAdjacentPokemon, Method: "s_status", Status: StatusToxic, Flags: MoveFlags{Protect: true, MagicCoat: true}},
	{Symbol: "poison_powder", Type: TypePoison, Accuracy: 75, PP: 35, Category: CategoryStatus, Target: TargetAdjacentPokemon, Method: "s_status", Status: StatusPoison, Flags: MoveFlags{Powder: true, Protect: true, MagicCoat: true}},
	{Symbol: "hypnosis", Type: TypePsychic, Accuracy: 60, PP: 20, Category: CategoryStatus, Target: TargetAdjacentPokemon, Method: "s_status", Status: StatusSleep, Flags: MoveFlags{Protect: true, MagicCoat: true}},
	{Symbol: "sleep_powder", Type: TypeGrass, Accuracy: 75, PP: 15, Category: CategoryStatus, Target: TargetAdjacentPokemon, Method: "s_status", Status: StatusSleep, Flags: MoveFlags{Powder: true, Protect: true, MagicCoat: true}},
	{Symbol: "spore", Type: TypeGrass, Accuracy: 100, PP: 15, Category: CategoryStatus, Target: TargetAdjacentPokemon, Method: "s_status", Status: StatusSleep, Flags: MoveFlags{Powder: true, Protect: true, MagicCoat: true}},
	{Symbol: "confuse_ray", Type: TypeGhost, Accuracy: 100, PP: 10, Category: CategoryStatus, Target: TargetAnyOtherPokemon, Method: "s_status", Status: StatusConfusion, Flags: MoveFlags{Protect: true, MagicCoat: true}},
	{Symbol: "attract", Type: TypeNormal, Accuracy: 100, PP: 15, Category: CategoryStatus, Target: TargetAdjacentPokemon, Method: "s_status", Status: StatusAttract, Flags: MoveFlags{Protect: true, MagicCoat: true}},

	// Status: stages
	{Symbol: "growl", Type: TypeNormal, Accuracy: 100, PP: 40, Category: CategoryStatus, Target: TargetAdjacentAllFoe, Method: "s_stat", StatChanges: []StatChange{{Stat: StatAtk, Amount: -1}}, Flags: MoveFlags{Sound: true, Protect: true, MagicCoat: true}},
	{Symbol: "leer", Type: TypeNormal, Accuracy: 100, PP: 30, Category: CategoryStatus, Target: TargetAdjacentAllFoe, Method: "s_stat", StatChanges: []StatChange{{Stat: StatDfe, Amount: -1}}, Flags: MoveFlags{Protect: true, MagicCoat: true}},
	{Symbol: "tail_whip", Type: TypeNormal, Accuracy: 100, PP: 30, Category: CategoryStatus, Target: TargetAdjacentAllFoe, Method: "s_stat", StatChanges: []StatChange{{Stat: StatDfe, Amount: -1}}, Flags: MoveFlags{Protect: true, MagicCoat: true}},
	{Symbol: "string_shot", Type: TypeBug, Accuracy: 95, PP: 40, Category: CategoryStatus, Target: TargetAdjacentAllFoe, Method: "s_stat", StatChanges: []StatChange{{Stat: StatSpd, Amount: -2}}, Flags: MoveFlags{Protect: true, MagicCoat: true}},
	{Symbol: "sand_attack", Type: TypeGround, Accuracy: 100, PP: 15, Category: CategoryStatus, Target: TargetAdjacentPokemon, Method: "s_stat", StatChanges: []StatChange{{Stat: StatAcc, Amount: -1}}, Flags: MoveFlags{Protect: true, MagicCoat: true}},
	{Symbol: "swords_dance", Type: TypeNormal, PP: 20, Category: CategoryStatus, Target: TargetUser, Method: "s_stat", StatChanges: []StatChange{{Stat: StatAtk, Amount: 2}}},
	{Symbol: "agility", Type: TypePsychic, PP: 30, Category: CategoryStatus, Target: TargetUser, Method: "s_stat", StatChanges: []StatChange{{Stat: StatSpd, Amount: 2}}},
	{Symbol: "calm_mind", Type: TypePsychic, PP: 20, Category: CategoryStatus, Target: TargetUser, Method: "s_stat", StatChanges: []StatChange{{Stat: StatAts, Amount: 1}, {Stat: StatDfs, Amount: 1}}},
	{Symbol: "dragon_dance", Type: TypeDragon, PP: 20, Category: CategoryStatus, Target: TargetUser, Method: "s_stat", StatChanges: []StatChange{{Stat: StatAtk, Amount: 1}, {Stat: StatSpd, Amount: 1}}},
	{Symbol: "double_team", Type: TypeNormal, PP: 15, Category: CategoryStatus, Target: TargetUser, Method: "s_stat", StatChanges: []StatChange{{Stat: StatEva, Amount: 1}}},
	{Symbol: "howl", Type: TypeNormal, PP: 40, Category: CategoryStatus, Target: TargetAllAlly, Method: "s_stat", StatChanges: []StatChange{{Stat: StatAtk, Amount: 1}}},

	// Status: recovery
	{Symbol: "recover", Type: TypeNormal, PP: 10, Category: CategoryStatus, Target: TargetUser, Method: "s_heal", Heal: 50},
	{Symbol: "roost", Type: TypeFlying, PP: 10, Category: CategoryStatus, Target: TargetUser, Method: "s_roost", Heal: 50},
	{Symbol: "rest", Type: TypePsychic, PP: 10, Category: CategoryStatus, Target: TargetUser, Method: "s_rest"},

	// Status: field and banks
	{Symbol: "rain_dance", Type: TypeWater, PP: 5, Category: CategoryStatus, Target: TargetUser, Method: "s_weather"},
	{Symbol: "sunny_day", Type: TypeFire, PP: 5, Category: CategoryStatus, Target: TargetUser, Method: "s_weather"},
	{Symbol: "sandstorm", Type: TypeRock, PP: 10, Category: CategoryStatus, Target: TargetUser, Method: "s_weather"},
	{Symbol: "hail", Type: TypeIce, PP: 10, Category: CategoryStatus, Target: TargetUser, Method: "s_weather"},
	{Symbol: "electric_terrain", Type: TypeElectric, PP: 10, Category: CategoryStatus, Target: TargetUser, Method: "s_terrain"},
	{Symbol: "grassy_terrain", Type: TypeGrass, PP: 10, Category: CategoryStatus, Target: TargetUser, Method: "s_terrain"},
	{Symbol: "misty_terrain", Type: TypeFairy, PP: 10, Category: CategoryStatus, Target: TargetUser, Method: "s_terrain"},
	{Symbol: "psychic_terrain", Type: TypePsychic, PP: 10, Category: CategoryStatus, Target: TargetUser, Method: "s_terrain"},
	{Symbol: "gravity", Type: TypePsychic, PP: 5, Category: CategoryStatus, Target: TargetUser, Method: "s_field"},
	{Symbol: "trick_room", Type: TypePsychic, PP: 5, Priority: -7, Category: CategoryStatus, Target: TargetUser, Method: "s_field"},
	{Symbol: "reflect", Type: TypePsychic, PP: 20, Category: CategoryStatus, Target: TargetUser, Method: "s_bank_effect"},
	{Symbol: "light_screen", Type: TypePsychic, PP: 30, Category: CategoryStatus, Target: TargetUser, Method: "s_bank_effect"},
	{Symbol: "safeguard", Type: TypeNormal, PP: 25, Category: CategoryStatus, Target: TargetUser, Method: "s_bank_effect"},
	{Symbol: "mist", Type: TypeIce, PP: 30, Category: CategoryStatus, Target: TargetUser, Method: "s_bank_effect"},
	{Symbol: "tailwind", Type: TypeFlying, PP: 15, Category: CategoryStatus, Target: TargetUser, Method: "s_bank_effect"},

	// Status: volatile
	{Symbol: "protect", Type: TypeNormal, PP: 10, Priority: 4, Category: CategoryStatus, Target: TargetUser, Method: "s_protect"},
	{Symbol: "detect", Type: TypeFighting, PP: 5, Priority: 4, Category: CategoryStatus, Target: TargetUser, Method: "s_protect"},
	{Symbol: "foresight", Type: TypeNormal, PP: 40, Category: CategoryStatus, Target: TargetAdjacentPokemon, Method: "s_identify", Flags: MoveFlags{MagicCoat: true}},
	{Symbol: "miracle_eye", Type: TypePsychic, PP: 40, Category: CategoryStatus, Target: TargetAdjacentPokemon, Method: "s_identify", Flags: MoveFlags{MagicCoat: true}},
	{Symbol: "magnet_rise", Type: TypeElectric, PP: 10, Category: CategoryStatus, Target: TargetUser, Method: "s_magnet_rise"},
	{Symbol: "taunt", Type: TypeDark, Accuracy: 100, PP: 20, Category: CategoryStatus, Target: TargetAdjacentPokemon, Method: "s_taunt", Flags: MoveFlags{Protect: true, MagicCoat: true}},
	{Symbol: "metronome", Type: TypeNormal, PP: 10, Category: CategoryStatus, Target: TargetUser, Method: "s_metronome"},
	{Symbol: "splash", Type: TypeNormal, PP: 40, Category: CategoryStatus, Target: TargetUser, Method: "s_splash"},
}
