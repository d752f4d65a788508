package game

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

// CollisionEvent is a classified contact awaiting resolution.
// It is either MissileToEnemy or ShipToLoot.
type CollisionEvent interface {
	collisionEvent()
}

// MissileToEnemy is emitted when a missile touches an enemy.
type MissileToEnemy struct {
	Missile ecs.Entity
	Enemy   ecs.Entity
}

// ShipToLoot is emitted when a ship touches a loot pickup.
type ShipToLoot struct {
	Ship ecs.Entity
	Loot ecs.Entity
}

func (MissileToEnemy) collisionEvent() {}
func (ShipToLoot) collisionEvent()     {}

// XpEvent grants experience to the entity credited with a kill.
type XpEvent struct {
	XP     uint32
	Source ecs.Entity
}

// LootEvent requests a loot roll where an enemy died.
type LootEvent struct {
	Position r2.Vec
}
