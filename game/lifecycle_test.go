package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/kotlot/components"
	"github.com/pthm-cable/kotlot/systems"
	"github.com/pthm-cable/kotlot/telemetry"
)

func TestDespawnFromArena(t *testing.T) {
	tests := []struct {
		name         string
		removeGhost  bool
		removeHandle bool
		wantWarnings int
	}{
		{"all present", false, false, 0},
		{"ghost already gone", true, false, 1},
		{"collider already gone", false, true, 1},
		{"ghost and collider gone", true, true, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			enemy := g.SpawnEnemy(r2.Vec{X: 100, Y: -100}, r2.Vec{})
			ghosts := g.ghostSets.Get(enemy).Ghosts
			handle := g.handles.Get(enemy).Handle

			if tc.removeGhost {
				g.world.RemoveEntity(ghosts[1])
			}
			if tc.removeHandle {
				require.NoError(t, g.colliders.Remove(handle))
			}

			before := g.collector.Count(telemetry.EventCleanupWarning)
			g.DespawnFromArena(enemy)

			assert.False(t, g.world.Alive(enemy))
			for id, ghost := range ghosts {
				assert.False(t, g.world.Alive(ghost), "ghost %d", id)
			}
			assert.False(t, g.colliders.Contains(handle))
			assert.Equal(t, 2, g.ColliderCount(), "ship and cursor remain")
			assert.Equal(t, tc.wantWarnings, g.collector.Count(telemetry.EventCleanupWarning)-before)
		})
	}
}

func TestDespawnTwiceIsHarmless(t *testing.T) {
	g, _ := newTestGame(t)
	enemy := g.SpawnEnemy(r2.Vec{X: 100, Y: -100}, r2.Vec{})

	g.DespawnFromArena(enemy)
	assert.NotPanics(t, func() { g.DespawnFromArena(enemy) })
	assert.Equal(t, 1, g.collector.Count(telemetry.EventCleanupWarning))
}

func TestSpawnCreatesCompleteGhostSet(t *testing.T) {
	positions := map[systems.Quadrant]r2.Vec{
		systems.NE: {X: 10, Y: 10},
		systems.NW: {X: -10, Y: 10},
		systems.SE: {X: 10, Y: -10},
		systems.SW: {X: -10, Y: -10},
	}

	for q, pos := range positions {
		t.Run(q.String(), func(t *testing.T) {
			g, _ := newTestGame(t)
			g.setPosition(g.ship, pos)
			g.followCamera()
			require.Equal(t, q, g.arena.Shown)

			enemy := g.SpawnEnemy(r2.Vec{X: 200, Y: 150}, r2.Vec{})
			primary := *g.transforms.Get(enemy)

			set := *g.ghostSets.Get(enemy)
			seen := map[r2.Vec]bool{}
			for id, ghost := range set.Ghosts {
				require.True(t, g.world.Alive(ghost))

				tag := *g.ghostTags.Get(ghost)
				assert.Equal(t, components.Ghost{Parent: enemy, ID: uint8(id)}, tag)
				assert.False(t, g.handles.Has(ghost), "ghosts never collide")

				tr := *g.transforms.Get(ghost)
				offset := r2.Sub(tr.Position(), primary.Position())
				assert.Equal(t, systems.GhostOffset(q, uint8(id), g.arena.Size), offset)
				assert.Equal(t, primary.Rotation, tr.Rotation)
				assert.Equal(t, primary.Scale, tr.Scale)
				seen[offset] = true
			}
			assert.Len(t, seen, components.GhostCount, "offsets are distinct")
		})
	}
}

func TestLootPickupScalesWeapon(t *testing.T) {
	tests := []struct {
		name         string
		loot         components.Loot
		wantCooldown float64
		wantLifespan float64
	}{
		{"rate of fire", components.Loot{Kind: components.LootIncreasedRateOfFire, Percent: 200}, 0.5, 0.5},
		{"munition duration", components.Loot{Kind: components.LootIncreasedMunitionDuration, Percent: 150}, 1.0, 0.75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, cues := newTestGame(t)
			loot := g.SpawnLoot(r2.Vec{X: 5, Y: 5}, tc.loot)

			g.runCollisionStages()

			assert.False(t, g.world.Alive(loot))
			weapon := g.weapons.Get(g.ship)
			assert.InDelta(t, tc.wantCooldown, weapon.FireCooldown.Duration, 1e-9)
			assert.InDelta(t, tc.wantLifespan, weapon.MunitionLifespan, 1e-9)
			assert.Equal(t, 1, cues.count(CueLootPickup))
			assert.Equal(t, 1, g.collector.Count(telemetry.EventLootPicked))
		})
	}
}

func TestLootPickupWithoutWeapon(t *testing.T) {
	g, cues := newTestGame(t)
	g.weapons.Remove(g.ship)

	loot := g.SpawnLoot(r2.Vec{X: -5, Y: 5}, components.Loot{Kind: components.LootIncreasedRateOfFire, Percent: 200})
	g.runCollisionStages()

	assert.False(t, g.world.Alive(loot), "loot is consumed anyway")
	assert.Equal(t, 1, cues.count(CueLootPickup))
}

func TestLifespanExpiry(t *testing.T) {
	g, _ := newTestGame(t)
	missile := g.SpawnMissile(g.ship, r2.Vec{X: 0, Y: 200}, 0, 0.1)

	for i := 0; i < 5; i++ {
		g.tickTimers(testDT)
	}
	assert.True(t, g.world.Alive(missile))

	for i := 0; i < 2; i++ {
		g.tickTimers(testDT)
	}
	assert.False(t, g.world.Alive(missile))
	assert.Equal(t, 2, g.ColliderCount())
}

func TestKillCreditsProgression(t *testing.T) {
	g, _ := newTestGame(t)

	for i := 0; i < 5; i++ {
		g.xpEvents = append(g.xpEvents, XpEvent{XP: 2, Source: g.ship})
	}
	g.applyXP()

	level, xp, next := g.Progress()
	assert.Equal(t, uint32(2), level)
	assert.Equal(t, uint32(0), xp)
	assert.Equal(t, uint32(30), next)
	assert.Equal(t, 1, g.collector.Count(telemetry.EventLevelUp))

	// Credit to a despawned source is dropped.
	gone := g.SpawnEnemy(r2.Vec{X: 300, Y: 300}, r2.Vec{})
	g.DespawnFromArena(gone)
	g.xpEvents = append(g.xpEvents, XpEvent{XP: 2, Source: gone})
	assert.NotPanics(t, g.applyXP)
}

func TestLootDropsAtKillPosition(t *testing.T) {
	g, _ := newTestGame(t)

	for i := 0; i < 20; i++ {
		g.lootEvents = append(g.lootEvents, LootEvent{Position: r2.Vec{X: -400, Y: 300}})
	}
	g.spawnLootDrops()

	dropped := g.collector.Count(telemetry.EventLootDropped)
	assert.Equal(t, dropped, g.lootCount())
	assert.Positive(t, dropped, "twenty rolls at two-in-three odds")
	assert.Empty(t, g.lootEvents)

	query := g.lootFilter.Query()
	for query.Next() {
		tr := g.transforms.Get(query.Entity())
		assert.Equal(t, r2.Vec{X: -400, Y: 300}, tr.Position())
	}
}
