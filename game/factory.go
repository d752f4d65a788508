package game

import (
	"image/color"
	"math"
	"path/filepath"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/kotlot/collide"
	"github.com/pthm-cable/kotlot/components"
	"github.com/pthm-cable/kotlot/systems"
)

var arenaOrigin = r2.Vec{}

// Draw depths; larger values are drawn on top.
const (
	depthMissile = -0.1
	depthShip    = 0.0
	depthEnemy   = 0.1
	depthCursor  = 1.0
)

// Fallback tints used when a texture is missing.
var (
	tintShip    = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	tintEnemy   = color.RGBA{R: 230, G: 90, B: 70, A: 255}
	tintMissile = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	tintLoot    = color.RGBA{R: 120, G: 240, B: 140, A: 255}
	tintCursor  = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)

const cursorRadius = 4.0

// spawnWithGhosts creates a primary entity and its three ghosts. Ghosts
// share the primary's sprite and are placed immediately for the shown
// quadrant.
func (g *Game) spawnWithGhosts(tr components.Transform, sprite components.Sprite) ecs.Entity {
	primary := g.primaryMapper.NewEntity(&tr, &sprite)

	var set components.GhostSet
	for id := range set.Ghosts {
		ghostTr := systems.GhostTransform(tr, g.arena.Shown, uint8(id), g.arena.Size)
		tag := components.Ghost{Parent: primary, ID: uint8(id)}
		set.Ghosts[id] = g.ghostMapper.NewEntity(&ghostTr, &sprite, &tag, &components.Outline{})
	}
	g.ghostSets.Add(primary, &set)

	return primary
}

// addCollider registers e in the collision world at pos.
func (g *Game) addCollider(e ecs.Entity, pos r2.Vec, shape collide.Shape, t components.ColliderType, query collide.QueryType) {
	h := g.colliders.Add(pos, shape, colliderGroups(t), query, e)
	g.handles.Add(e, &components.ColliderHandle{Handle: h})
	g.types.Add(e, &t)
}

func (g *Game) asset(name string) string {
	if name == "" {
		return ""
	}
	return filepath.Join(g.cfg.Assets.Dir, name)
}

// SpawnShip creates the player ship at pos.
func (g *Game) SpawnShip(pos r2.Vec) ecs.Entity {
	cfg := g.cfg.Ship

	tr := components.NewTransform(pos.X, pos.Y, depthShip, cfg.Scale)
	tr.Rotation = math.Pi / 2
	e := g.spawnWithGhosts(tr, components.Sprite{
		Asset:  g.asset(g.cfg.Assets.Ship),
		Radius: cfg.ColliderRadius,
		Tint:   tintShip,
	})

	g.movements.Add(e, &components.Movement{Dampening: cfg.Dampening})
	g.spaceships.Add(e, &components.Spaceship{
		MaxAngVel: cfg.MaxAngVel,
		MaxLinVel: cfg.MaxLinVel,
		MaxLatVel: cfg.MaxLatVel,
	})
	weapon := components.NewWeapon(g.cfg.Weapon.FireCooldown, g.cfg.Weapon.MunitionLifespan)
	g.weapons.Add(e, &weapon)
	progression := components.NewProgression()
	g.progressions.Add(e, &progression)
	g.userControl.Add(e, &components.UserControlled{})
	g.camTargets.Add(e, &components.CameraTarget{})
	g.addCollider(e, pos, collide.Ball{Radius: cfg.ColliderRadius}, components.ColliderShip, collide.QueryContacts)

	return e
}

// SpawnEnemy creates an enemy at pos drifting with the given velocity.
func (g *Game) SpawnEnemy(pos, speed r2.Vec) ecs.Entity {
	cfg := g.cfg.Enemy

	tr := components.NewTransform(pos.X, pos.Y, depthEnemy, cfg.Scale)
	tr.Rotation = g.rng.Float64() * 2 * math.Pi
	e := g.spawnWithGhosts(tr, components.Sprite{
		Asset:  g.asset(g.cfg.Assets.Enemy),
		Radius: cfg.ColliderRadius,
		Tint:   tintEnemy,
	})

	g.movements.Add(e, &components.Movement{Speed: speed, Dampening: 1})
	armor := components.NewArmor(cfg.MaxLife)
	g.armors.Add(e, &armor)
	g.enemies.Add(e, &components.Enemy{XP: cfg.XP})
	g.outlines.Add(e, &components.Outline{})
	g.addCollider(e, pos, collide.Ball{Radius: cfg.ColliderRadius}, components.ColliderEnemy, collide.QueryContacts)

	return e
}

// SpawnMissile creates a missile at pos flying along rotation, credited to source.
func (g *Game) SpawnMissile(source ecs.Entity, pos r2.Vec, rotation, lifespan float64) ecs.Entity {
	cfg := g.cfg.Missile

	tr := components.Transform{
		Translation: r3.Vec{X: pos.X, Y: pos.Y, Z: depthMissile},
		Rotation:    rotation,
		Scale:       r3.Vec{X: cfg.Scale, Y: cfg.Scale, Z: cfg.Scale},
	}
	e := g.spawnWithGhosts(tr, components.Sprite{
		Asset:  g.asset(g.cfg.Assets.Missile),
		Radius: cfg.HalfExtentY,
		Tint:   tintMissile,
	})

	g.movements.Add(e, &components.Movement{
		Speed:     r2.Scale(cfg.Speed, tr.Heading()),
		Dampening: 1,
	})
	g.dealers.Add(e, &components.DamageDealer{
		Source: source,
		Kind:   components.DamageEnergy,
		Value:  cfg.Damage,
	})
	g.lifespans.Add(e, &components.LifeSpan{Timer: components.NewTimer(lifespan)})

	half := r2.Vec{X: cfg.HalfExtentX, Y: cfg.HalfExtentY}
	g.addCollider(e, pos, collide.Cuboid{HalfExtents: half}, components.ColliderMissile, collide.QueryContacts)

	return e
}

// SpawnLoot creates a pulsing loot pickup at pos.
func (g *Game) SpawnLoot(pos r2.Vec, loot components.Loot) ecs.Entity {
	cfg := g.cfg.Loot

	tr := components.NewTransform(pos.X, pos.Y, cfg.Depth, cfg.TweenMin)
	e := g.spawnWithGhosts(tr, components.Sprite{
		Asset:  g.asset(g.cfg.Assets.LootAssets[loot.Kind.AssetKey()]),
		Radius: cfg.ColliderRadius,
		Tint:   tintLoot,
	})

	g.loots.Add(e, &loot)
	tween := components.NewTweenScale(cfg.TweenMin, cfg.TweenMax, cfg.TweenPeriod)
	g.tweens.Add(e, &tween)
	g.outlines.Add(e, &components.Outline{})
	g.addCollider(e, pos, collide.Ball{Radius: cfg.ColliderRadius}, components.ColliderLoot, collide.QueryContacts)

	return e
}

// spawnCursor creates the pointer entity. It has no ghosts and only
// reports proximity.
func (g *Game) spawnCursor(pos r2.Vec) ecs.Entity {
	tr := components.NewTransform(pos.X, pos.Y, depthCursor, 1)
	e := g.primaryMapper.NewEntity(&tr, &components.Sprite{
		Asset:  g.asset(g.cfg.Assets.Cursor),
		Radius: cursorRadius,
		Tint:   tintCursor,
	})
	g.cursors.Add(e, &components.Cursor{})
	g.addCollider(e, pos, collide.Ball{Radius: cursorRadius}, components.ColliderCursor, collide.QueryProximity)
	return e
}

func (g *Game) spawnInitialEnemies() {
	for i := 0; i < g.cfg.Enemy.Initial; i++ {
		g.spawnRandomEnemy()
	}
}
