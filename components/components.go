// Package components defines ECS components for the arena.
package components

import (
	"math"

	"github.com/mlange-42/ark/ecs"
)

// Armor tracks an entity's remaining life. Life never exceeds MaxLife.
type Armor struct {
	MaxLife uint32
	Life    uint32
}

// NewArmor returns full armor.
func NewArmor(maxLife uint32) Armor {
	return Armor{MaxLife: maxLife, Life: maxLife}
}

// Damage subtracts value from life, saturating at zero, and returns the
// remaining life.
func (a *Armor) Damage(value uint32) uint32 {
	if value >= a.Life {
		a.Life = 0
	} else {
		a.Life -= value
	}
	return a.Life
}

// DamageKind classifies inflicted damage.
type DamageKind uint8

const (
	DamageEnergy DamageKind = iota
)

// DamageDealer is attached to projectiles. Source is the entity credited
// with the hit.
type DamageDealer struct {
	Source ecs.Entity
	Kind   DamageKind
	Value  uint32
}

// LootKind selects what a loot pickup upgrades.
type LootKind uint8

const (
	LootIncreasedRateOfFire LootKind = iota
	LootIncreasedMunitionDuration
)

// Loot is a pickup dropped by destroyed enemies.
// Percent scales the upgraded weapon stat (200 doubles it).
type Loot struct {
	Kind    LootKind
	Percent uint32
}

// Factor returns Percent as a multiplier.
func (l Loot) Factor() float64 {
	return float64(l.Percent) / 100
}

// Timer is a one-shot countdown measured in seconds.
type Timer struct {
	Duration float64
	Elapsed  float64
}

// NewTimer returns a timer that finishes after d seconds.
func NewTimer(d float64) Timer {
	return Timer{Duration: d}
}

// Tick advances the timer, stopping at its duration.
func (t *Timer) Tick(dt float64) {
	t.Elapsed = math.Min(t.Elapsed+dt, t.Duration)
}

// Finished reports whether the full duration has elapsed.
func (t *Timer) Finished() bool {
	return t.Elapsed >= t.Duration
}

// Reset restarts the countdown.
func (t *Timer) Reset() {
	t.Elapsed = 0
}

// Weapon holds a ship's firing state.
type Weapon struct {
	FireCooldown     Timer
	MunitionLifespan float64 // seconds each fired missile lives
}

// NewWeapon returns a weapon that is ready to fire.
func NewWeapon(cooldown, munitionLifespan float64) Weapon {
	return Weapon{
		FireCooldown:     Timer{Duration: cooldown, Elapsed: cooldown},
		MunitionLifespan: munitionLifespan,
	}
}

// ApplyLoot upgrades the weapon. Rate of fire divides the cooldown by the
// loot factor; munition duration multiplies the lifespan by it. A zero
// factor is ignored so the weapon can always fire again.
func (w *Weapon) ApplyLoot(l Loot) {
	if l.Percent == 0 {
		return
	}
	switch l.Kind {
	case LootIncreasedRateOfFire:
		w.FireCooldown.Duration /= l.Factor()
	case LootIncreasedMunitionDuration:
		w.MunitionLifespan *= l.Factor()
	}
}

// LifeSpan despawns its entity once the timer finishes.
type LifeSpan struct {
	Timer Timer
}

// Progression tracks experience and level.
type Progression struct {
	Level uint32
	XP    uint32
}

// NewProgression returns level 1 with no experience.
func NewProgression() Progression {
	return Progression{Level: 1}
}

// AddXP adds experience and levels up across every threshold it crosses.
// thresholds[level] is the xp needed to leave that level. At maxLevel no
// more experience accrues. Returns the number of levels gained.
func (p *Progression) AddXP(xp uint32, thresholds []uint32, maxLevel uint32) uint32 {
	if p.Level >= maxLevel {
		p.XP = 0
		return 0
	}

	if xp > math.MaxUint32-p.XP {
		p.XP = math.MaxUint32
	} else {
		p.XP += xp
	}

	var gained uint32
	for p.Level < maxLevel && p.XP >= thresholds[p.Level] {
		p.XP -= thresholds[p.Level]
		p.Level++
		gained++
	}
	if p.Level >= maxLevel {
		p.XP = 0
	}
	return gained
}

// NextThreshold returns the xp needed to leave the current level, or 0 at max level.
func (p *Progression) NextThreshold(thresholds []uint32, maxLevel uint32) uint32 {
	if p.Level >= maxLevel || int(p.Level) >= len(thresholds) {
		return 0
	}
	return thresholds[p.Level]
}
