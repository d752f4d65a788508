package game

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/kotlot/telemetry"
)

// DespawnFromArena destroys a primary entity: its ghosts first, then its
// collider registration, then the entity itself. A step whose resource is
// already gone is logged and skipped; the remaining steps still run.
// Callers must not use component pointers obtained before the call.
func (g *Game) DespawnFromArena(e ecs.Entity) {
	if !g.world.Alive(e) {
		g.cleanupWarning("despawn_missing_entity", e)
		return
	}

	if g.ghostSets.Has(e) {
		set := *g.ghostSets.Get(e)
		for id, ghost := range set.Ghosts {
			if !g.world.Alive(ghost) {
				g.cleanupWarning("despawn_missing_ghost", e, "ghost_id", id)
				continue
			}
			g.world.RemoveEntity(ghost)
		}
	} else {
		g.cleanupWarning("despawn_missing_ghosts", e)
	}

	if g.handles.Has(e) {
		h := g.handles.Get(e).Handle
		if err := g.colliders.Remove(h); err != nil {
			g.cleanupWarning("despawn_missing_collider", e, "error", err)
		}
	} else {
		g.cleanupWarning("despawn_missing_collider", e)
	}

	g.world.RemoveEntity(e)
}

func (g *Game) cleanupWarning(msg string, e ecs.Entity, args ...any) {
	g.collector.Record(telemetry.EventCleanupWarning)
	slog.Warn(msg, append([]any{"entity", entityString(e), "tick", g.tick}, args...)...)
}

func entityString(e ecs.Entity) string {
	return fmt.Sprintf("%v", e)
}

// tickTimers advances weapon cooldowns and despawns expired munitions.
func (g *Game) tickTimers(dt float64) {
	wq := g.weaponFilter.Query()
	for wq.Next() {
		w := wq.Get()
		w.FireCooldown.Tick(dt)
	}

	// Collect first: despawning is a structural change.
	var expired []ecs.Entity
	lq := g.lifespanFilter.Query()
	for lq.Next() {
		ls := lq.Get()
		ls.Timer.Tick(dt)
		if ls.Timer.Finished() {
			expired = append(expired, lq.Entity())
		}
	}

	for _, e := range expired {
		g.DespawnFromArena(e)
	}
}
