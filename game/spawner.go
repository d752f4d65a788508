package game

import (
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

const maxSpawnAttempts = 16

// updateSpawner adds an enemy every spawn interval while the arena holds
// fewer than the configured maximum. A zero interval disables spawning.
func (g *Game) updateSpawner(dt float64) {
	if g.cfg.Enemy.SpawnInterval <= 0 {
		return
	}

	g.spawnTimer.Tick(dt)
	if !g.spawnTimer.Finished() {
		return
	}
	g.spawnTimer.Reset()

	if n := g.EnemyCount(); n >= g.cfg.Enemy.MaxCount {
		return
	}
	e := g.spawnRandomEnemy()
	slog.Debug("enemy_spawned", "entity", entityString(e), "tick", g.tick)
}

// spawnRandomEnemy places an enemy at a random arena position away from
// the ship, drifting in a random direction.
func (g *Game) spawnRandomEnemy() ecs.Entity {
	pos := g.randomSpawnPosition()

	angle := g.rng.Float64() * 2 * math.Pi
	speed := g.rng.Float64() * g.cfg.Enemy.MaxDriftSpeed
	vel := r2.Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}

	return g.SpawnEnemy(pos, vel)
}

// randomSpawnPosition returns a position at least MinShipDistance from the
// ship, measured across the torus. After too many misses the last draw is
// used anyway.
func (g *Game) randomSpawnPosition() r2.Vec {
	half := g.arena.HalfExtents()

	var shipPos r2.Vec
	tr, hasShip := lookup(g.world, g.transforms, g.ship)
	if hasShip {
		shipPos = tr.Position()
	}

	var p r2.Vec
	for range maxSpawnAttempts {
		p = r2.Vec{
			X: (g.rng.Float64()*2 - 1) * half.X,
			Y: (g.rng.Float64()*2 - 1) * half.Y,
		}
		if !hasShip || r2.Norm(g.arena.Delta(shipPos, p)) >= g.cfg.Enemy.MinShipDistance {
			break
		}
	}
	return p
}

// EnemyCount returns the number of live enemies.
func (g *Game) EnemyCount() int {
	n := 0
	query := g.enemyFilter.Query()
	for query.Next() {
		n++
	}
	return n
}
