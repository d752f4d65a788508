// Package game runs the arena simulation: entity spawning, the per-tick
// system pipeline and the collision event resolver.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/kotlot/camera"
	"github.com/pthm-cable/kotlot/collide"
	"github.com/pthm-cable/kotlot/components"
	"github.com/pthm-cable/kotlot/config"
	"github.com/pthm-cable/kotlot/systems"
	"github.com/pthm-cable/kotlot/telemetry"
)

// Game holds the complete simulation state. It is not safe for
// concurrent use; every stage of a tick runs on the caller's goroutine.
type Game struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand
	cues  Cues

	arena     *systems.Arena
	colliders *collide.World[ecs.Entity]
	camera    *camera.Camera

	// Entity mappers
	primaryMapper *ecs.Map2[components.Transform, components.Sprite]
	ghostMapper   *ecs.Map4[components.Transform, components.Sprite, components.Ghost, components.Outline]

	// Individual component maps for lookups
	transforms   *ecs.Map[components.Transform]
	movements    *ecs.Map[components.Movement]
	ghostTags    *ecs.Map[components.Ghost]
	ghostSets    *ecs.Map[components.GhostSet]
	handles      *ecs.Map[components.ColliderHandle]
	types        *ecs.Map[components.ColliderType]
	armors       *ecs.Map[components.Armor]
	dealers      *ecs.Map[components.DamageDealer]
	enemies      *ecs.Map[components.Enemy]
	loots        *ecs.Map[components.Loot]
	weapons      *ecs.Map[components.Weapon]
	progressions *ecs.Map[components.Progression]
	lifespans    *ecs.Map[components.LifeSpan]
	tweens       *ecs.Map[components.TweenScale]
	outlines     *ecs.Map[components.Outline]
	spaceships   *ecs.Map[components.Spaceship]
	userControl  *ecs.Map[components.UserControlled]
	camTargets   *ecs.Map[components.CameraTarget]
	cursors      *ecs.Map[components.Cursor]

	// Filters
	colliderFilter *ecs.Filter2[components.Transform, components.ColliderHandle]
	cameraFilter   *ecs.Filter2[components.Transform, components.CameraTarget]
	controlFilter  *ecs.Filter2[components.Spaceship, components.UserControlled]
	weaponFilter   *ecs.Filter1[components.Weapon]
	lifespanFilter *ecs.Filter1[components.LifeSpan]
	enemyFilter    *ecs.Filter3[components.Transform, components.Enemy, components.Armor]
	lootFilter     *ecs.Filter1[components.Loot]
	missileFilter  *ecs.Filter1[components.DamageDealer]
	spriteFilter   *ecs.Filter2[components.Transform, components.Sprite]

	// Systems
	movement *systems.MovementSystem
	ghosts   *systems.GhostSystem
	tween    *systems.TweenSystem

	// Per-tick queues, fully drained by the stage that consumes them
	collisionEvents []CollisionEvent
	xpEvents        []XpEvent
	lootEvents      []LootEvent

	selection      CursorSelection
	outlined       []ecs.Entity
	selectionLabel string

	ship       ecs.Entity
	cursor     ecs.Entity
	spawnTimer components.Timer

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool
	onStats   func(telemetry.WindowStats)

	// State
	tick    int32
	simTime float64
	quit    bool
}

// NewGame creates a game with a ship at the arena center, the cursor and
// the configured initial enemies.
func NewGame(cfg *config.Config, opts Options) *Game {
	world := ecs.NewWorld()

	cues := opts.Cues
	if cues == nil {
		cues = LogCues{}
	}

	arena := systems.NewArena(cfg.Derived.ArenaW, cfg.Derived.ArenaH, arenaOrigin)

	g := &Game{
		cfg:   cfg,
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		cues:  cues,

		arena:     arena,
		colliders: collide.NewWorld[ecs.Entity](cfg.Physics.ContactMargin),
		camera:    camera.New(float64(cfg.Screen.Width), float64(cfg.Screen.Height), cfg.Derived.ArenaW, cfg.Derived.ArenaH),

		primaryMapper: ecs.NewMap2[components.Transform, components.Sprite](world),
		ghostMapper:   ecs.NewMap4[components.Transform, components.Sprite, components.Ghost, components.Outline](world),

		transforms:   ecs.NewMap[components.Transform](world),
		movements:    ecs.NewMap[components.Movement](world),
		ghostTags:    ecs.NewMap[components.Ghost](world),
		ghostSets:    ecs.NewMap[components.GhostSet](world),
		handles:      ecs.NewMap[components.ColliderHandle](world),
		types:        ecs.NewMap[components.ColliderType](world),
		armors:       ecs.NewMap[components.Armor](world),
		dealers:      ecs.NewMap[components.DamageDealer](world),
		enemies:      ecs.NewMap[components.Enemy](world),
		loots:        ecs.NewMap[components.Loot](world),
		weapons:      ecs.NewMap[components.Weapon](world),
		progressions: ecs.NewMap[components.Progression](world),
		lifespans:    ecs.NewMap[components.LifeSpan](world),
		tweens:       ecs.NewMap[components.TweenScale](world),
		outlines:     ecs.NewMap[components.Outline](world),
		spaceships:   ecs.NewMap[components.Spaceship](world),
		userControl:  ecs.NewMap[components.UserControlled](world),
		camTargets:   ecs.NewMap[components.CameraTarget](world),
		cursors:      ecs.NewMap[components.Cursor](world),

		colliderFilter: ecs.NewFilter2[components.Transform, components.ColliderHandle](world),
		cameraFilter:   ecs.NewFilter2[components.Transform, components.CameraTarget](world),
		controlFilter:  ecs.NewFilter2[components.Spaceship, components.UserControlled](world),
		weaponFilter:   ecs.NewFilter1[components.Weapon](world),
		lifespanFilter: ecs.NewFilter1[components.LifeSpan](world),
		enemyFilter:    ecs.NewFilter3[components.Transform, components.Enemy, components.Armor](world),
		lootFilter:     ecs.NewFilter1[components.Loot](world),
		missileFilter:  ecs.NewFilter1[components.DamageDealer](world),
		spriteFilter:   ecs.NewFilter2[components.Transform, components.Sprite](world),

		movement: systems.NewMovementSystem(world, arena),
		ghosts:   systems.NewGhostSystem(world, arena),
		tween:    systems.NewTweenSystem(world),

		spawnTimer: components.NewTimer(cfg.Enemy.SpawnInterval),

		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:    opts.Output,
		logStats:  opts.LogStats,
		onStats:   opts.StatsCallback,
	}

	g.ship = g.SpawnShip(arenaOrigin)
	g.cursor = g.spawnCursor(arenaOrigin)
	g.spawnInitialEnemies()

	slog.Info("game started",
		"arena_w", cfg.Derived.ArenaW,
		"arena_h", cfg.Derived.ArenaH,
		"seed", opts.Seed,
		"enemies", cfg.Enemy.Initial,
	)

	return g
}

// Step advances the simulation by dt seconds. The stage order is fixed:
// control, spawning, movement and wrap, camera follow, collider sync,
// detection, classification, resolution, xp, loot, ghost mirror, tween.
func (g *Game) Step(dt float64, in Input) {
	if dt > g.cfg.Physics.MaxDT {
		dt = g.cfg.Physics.MaxDT
	}

	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseControl)
	g.tickTimers(dt)
	g.applyInput(dt, in)

	g.perf.StartPhase(telemetry.PhaseSpawner)
	g.updateSpawner(dt)

	g.perf.StartPhase(telemetry.PhaseMovement)
	g.movement.Update(dt)
	g.followCamera()

	g.perf.StartPhase(telemetry.PhaseCollision)
	g.syncColliders()
	g.detectContacts()

	g.perf.StartPhase(telemetry.PhaseEvents)
	g.classifyContacts()
	g.updateSelection()
	g.resolveCollisions()
	g.applyXP()
	g.spawnLootDrops()

	g.perf.StartPhase(telemetry.PhaseGhosts)
	g.ghosts.Update(g.world)

	g.perf.StartPhase(telemetry.PhaseTween)
	g.tween.Update(dt)

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.tick++
	g.simTime += dt
	g.flushTelemetry()

	g.perf.EndTick()
}

// Tick returns the number of completed steps.
func (g *Game) Tick() int32 {
	return g.tick
}

// Arena returns the arena resource.
func (g *Game) Arena() *systems.Arena {
	return g.arena
}

// Camera returns the camera following the ship.
func (g *Game) Camera() *camera.Camera {
	return g.camera
}

// Ship returns the player ship entity. It never despawns.
func (g *Game) Ship() ecs.Entity {
	return g.ship
}

// QuitRequested reports whether a QUIT action was received.
func (g *Game) QuitRequested() bool {
	return g.quit
}

// PerfStats returns timing statistics over the recent ticks.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perf.Stats()
}

// RecordFrame marks a rendered frame for the FPS figure in PerfStats.
func (g *Game) RecordFrame() {
	g.perf.RecordFrame()
}

// lookup returns e's component from m, or false when e is dead or lacks it.
func lookup[T any](w *ecs.World, m *ecs.Map[T], e ecs.Entity) (*T, bool) {
	if !w.Alive(e) || !m.Has(e) {
		return nil, false
	}
	return m.Get(e), true
}

// mustGet returns e's component from m and panics when it is missing.
// Use it only where an invariant guarantees the component.
func mustGet[T any](w *ecs.World, m *ecs.Map[T], e ecs.Entity, what string) *T {
	c, ok := lookup(w, m, e)
	if !ok {
		panic(fmt.Sprintf("game: entity %v has no %s", e, what))
	}
	return c
}
