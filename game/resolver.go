package game

import (
	"log/slog"

	"github.com/pthm-cable/kotlot/systems"
	"github.com/pthm-cable/kotlot/telemetry"
)

// resolveCollisions applies the queued collision events in emission order
// and drains the queue.
func (g *Game) resolveCollisions() {
	for _, ev := range g.collisionEvents {
		switch ev := ev.(type) {
		case MissileToEnemy:
			g.resolveMissileHit(ev)
		case ShipToLoot:
			g.resolveLootPickup(ev)
		}
	}
	clear(g.collisionEvents)
	g.collisionEvents = g.collisionEvents[:0]
}

// resolveMissileHit damages the enemy and always spends the missile.
// An enemy that already died this tick takes no further effect, so a kill
// resolves at most once no matter how many missiles land on it.
func (g *Game) resolveMissileHit(ev MissileToEnemy) {
	// A missile touching two enemies is spent on the first.
	if !g.world.Alive(ev.Missile) {
		return
	}
	dealer := *mustGet(g.world, g.dealers, ev.Missile, "DamageDealer")

	armor, ok := lookup(g.world, g.armors, ev.Enemy)
	if !ok || armor.Life == 0 {
		g.DespawnFromArena(ev.Missile)
		return
	}

	life := armor.Damage(dealer.Value)
	g.collector.Record(telemetry.EventHit)
	g.DespawnFromArena(ev.Missile)

	if life > 0 {
		g.cues.Play(CueExplosionHit)
		return
	}

	pos := mustGet(g.world, g.transforms, ev.Enemy, "Transform").Position()
	enemy, isEnemy := lookup(g.world, g.enemies, ev.Enemy)
	var xp uint32
	if isEnemy {
		xp = enemy.XP
	}

	g.DespawnFromArena(ev.Enemy)
	g.cues.Play(CueExplosionFinal)
	g.collector.Record(telemetry.EventKill)

	if isEnemy {
		g.xpEvents = append(g.xpEvents, XpEvent{XP: xp, Source: dealer.Source})
		g.lootEvents = append(g.lootEvents, LootEvent{Position: pos})
	}
}

// resolveLootPickup consumes the loot and upgrades the ship's weapon, if
// it has one.
func (g *Game) resolveLootPickup(ev ShipToLoot) {
	// Two ships may touch the same loot; the first one takes it.
	if !g.world.Alive(ev.Loot) {
		return
	}
	loot := *mustGet(g.world, g.loots, ev.Loot, "Loot")

	g.DespawnFromArena(ev.Loot)

	if weapon, ok := lookup(g.world, g.weapons, ev.Ship); ok {
		weapon.ApplyLoot(loot)
		slog.Info("loot_picked",
			"kind", loot.Kind.String(),
			"percent", loot.Percent,
			"fire_cooldown", weapon.FireCooldown.Duration,
			"munition_lifespan", weapon.MunitionLifespan,
		)
	}
	g.cues.Play(CueLootPickup)
	g.collector.Record(telemetry.EventLootPicked)
}

// applyXP credits queued experience to each source's progression.
// Sources without a Progression, or no longer alive, are skipped.
func (g *Game) applyXP() {
	table := g.cfg.Progression
	for _, ev := range g.xpEvents {
		g.collector.RecordXP(ev.XP)

		p, ok := lookup(g.world, g.progressions, ev.Source)
		if !ok {
			continue
		}
		if gained := p.AddXP(ev.XP, table.Thresholds, table.MaxLevel); gained > 0 {
			for range gained {
				g.collector.Record(telemetry.EventLevelUp)
			}
			slog.Info("level_up", "level", p.Level, "xp", p.XP, "tick", g.tick)
		}
	}
	g.xpEvents = g.xpEvents[:0]
}

// spawnLootDrops rolls a drop for every queued loot event.
func (g *Game) spawnLootDrops() {
	for _, ev := range g.lootEvents {
		loot, ok := systems.RollLoot(g.rng, g.cfg.Loot.RateOfFirePercent, g.cfg.Loot.MunitionPercent)
		if !ok {
			continue
		}
		g.SpawnLoot(ev.Position, loot)
		g.collector.Record(telemetry.EventLootDropped)
		slog.Debug("loot_spawned", "kind", loot.Kind.String(), "x", ev.Position.X, "y", ev.Position.Y)
	}
	g.lootEvents = g.lootEvents[:0]
}
