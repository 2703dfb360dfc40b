package battle

// DamageChange removes hp from target, launched by launcher with move (either may be
// nil for residual damage). Damage-prevention effects of the target side answer
// first; the first one to prevent or change the amount wins. Returns the HP
// actually removed.
func (l *Logic) DamageChange(hp int, target, launcher *Battler, move *Move) int {
	if hp <= 0 || target.Dead() {
		return 0
	}
	for e := range EffectsOf[DamagePreventer](l.EffectsVs(launcher, move, target)) {
		amount, verdict := e.OnDamagePrevention(l, hp, target, launcher, move)
		if verdict == DamagePrevented {
			return 0
		}
		if verdict == DamageChanged {
			hp = amount
			break
		}
	}
	if hp <= 0 {
		return 0
	}

	dealt := min(hp, target.HP())
	target.SetHP(target.HP() - dealt)
	target.addDamageHistory(l.turn, dealt, launcher, move)
	l.logger.Debug("damage",
		"target", target.Name(),
		"hp", dealt,
		"left", target.HP(),
		"move", moveSymbol(move))

	if target.Dead() {
		l.Say("faint", "%s fainted!", target.Name())
		for e := range EffectsOf[PostDamageDeathReactor](l.Effects(target, launcher)) {
			e.OnPostDamageDeath(l, dealt, target, launcher, move)
		}
		return dealt
	}
	for e := range EffectsOf[PostDamageReactor](l.EffectsVs(launcher, move, target, launcher)) {
		e.OnPostDamage(l, dealt, target, launcher, move)
	}
	return dealt
}

// Heal restores hp to target. Returns the HP actually restored.
func (l *Logic) Heal(target *Battler, hp int) int {
	if hp <= 0 || target.Dead() {
		return 0
	}
	healed := min(hp, target.MaxHP()-target.HP())
	if healed <= 0 {
		return 0
	}
	target.SetHP(target.HP() + healed)
	l.Say("heal", "%s's HP was restored.", target.Name())
	return healed
}

// ConsumeItem removes the held item of b and remembers it as consumed.
func (l *Logic) ConsumeItem(b *Battler) {
	if !b.HoldsItem() {
		return
	}
	l.scene.ShowItem(b)
	b.consumedItem = b.battleItem
	b.SetItem("")
	l.logger.Debug("item consumed", "battler", b.Name(), "item", b.consumedItem)
}

func moveSymbol(m *Move) string {
	if m == nil {
		return ""
	}
	return m.Symbol()
}
