package systems

import (
	"math/rand"

	"github.com/pthm-cable/kotlot/components"
)

// RollLoot draws the drop of a destroyed enemy: one third increased rate of
// fire, one third increased munition duration, one third nothing.
func RollLoot(rng *rand.Rand, rateOfFirePercent, munitionPercent uint32) (components.Loot, bool) {
	switch rng.Intn(3) {
	case 0:
		return components.Loot{Kind: components.LootIncreasedRateOfFire, Percent: rateOfFirePercent}, true
	case 1:
		return components.Loot{Kind: components.LootIncreasedMunitionDuration, Percent: munitionPercent}, true
	}
	return components.Loot{}, false
}
