package components

// String returns the collider type name.
func (t ColliderType) String() string {
	switch t {
	case ColliderShip:
		return "ship"
	case ColliderEnemy:
		return "enemy"
	case ColliderMissile:
		return "missile"
	case ColliderLoot:
		return "loot"
	case ColliderCursor:
		return "cursor"
	}
	return "unknown"
}

// String returns the damage kind name.
func (k DamageKind) String() string {
	switch k {
	case DamageEnergy:
		return "energy"
	}
	return "unknown"
}

// String returns the loot kind name.
func (k LootKind) String() string {
	switch k {
	case LootIncreasedRateOfFire:
		return "increased_rate_of_fire"
	case LootIncreasedMunitionDuration:
		return "increased_munition_duration"
	}
	return "unknown"
}

// AssetKey returns the key of the loot texture in the assets config.
func (k LootKind) AssetKey() string {
	switch k {
	case LootIncreasedRateOfFire:
		return "rate_of_fire"
	case LootIncreasedMunitionDuration:
		return "munition_duration"
	}
	panic("components: no asset for loot kind")
}
