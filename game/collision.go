package game

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/kotlot/collide"
	"github.com/pthm-cable/kotlot/components"
	"github.com/pthm-cable/kotlot/systems"
)

// Collision group ids.
const (
	groupShip uint = iota + 1
	groupEnemy
	groupMissile
	groupLoot
	groupCursor
)

// colliderGroups returns the membership and whitelist of a collider type.
// The table is symmetric; a pair is reported only when both sides list
// each other.
func colliderGroups(t components.ColliderType) collide.Groups {
	g := collide.NewGroups()
	switch t {
	case components.ColliderShip:
		return g.WithMembership(groupShip).WithWhitelist(groupEnemy, groupMissile, groupLoot)
	case components.ColliderEnemy:
		return g.WithMembership(groupEnemy).WithWhitelist(groupShip, groupEnemy, groupMissile, groupCursor)
	case components.ColliderMissile:
		return g.WithMembership(groupMissile).WithWhitelist(groupEnemy)
	case components.ColliderLoot:
		return g.WithMembership(groupLoot).WithWhitelist(groupShip, groupCursor)
	case components.ColliderCursor:
		return g.WithMembership(groupCursor).WithWhitelist(groupEnemy, groupLoot)
	}
	panic(fmt.Sprintf("game: no collision groups for collider type %v", t))
}

// syncColliders pushes every collider's position into the collision world.
// Shapes are position-only; rotation and scale are ignored.
func (g *Game) syncColliders() {
	query := g.colliderFilter.Query()
	for query.Next() {
		tr, h := query.Get()
		if err := g.colliders.SetPosition(h.Handle, tr.Position()); err != nil {
			slog.Warn("collider_sync_failed", "entity", entityString(query.Entity()), "error", err)
		}
	}
}

func (g *Game) detectContacts() {
	g.colliders.Update()
}

// classifyContacts turns the pairs of the last detection into collision
// events and the cursor selection. The selection is rebuilt every call.
func (g *Game) classifyContacts() {
	g.selection.reset()

	for _, pair := range g.colliders.ContactPairs() {
		g.classifyPair(pair.A, pair.B)
	}
	for _, pair := range g.colliders.ProximityPairs() {
		g.classifyPair(pair.A, pair.B)
	}
}

func (g *Game) classifyPair(ha, hb collide.Handle) {
	a, okA := g.colliders.Payload(ha)
	b, okB := g.colliders.Payload(hb)
	if !okA || !okB {
		return
	}

	ta := *mustGet(g.world, g.types, a, "ColliderType")
	tb := *mustGet(g.world, g.types, b, "ColliderType")

	kind, swap := systems.Classify(ta, tb)
	if swap {
		a, b = b, a
	}

	switch kind {
	case systems.InteractMissileEnemy:
		g.collisionEvents = append(g.collisionEvents, MissileToEnemy{Missile: a, Enemy: b})
	case systems.InteractShipLoot:
		g.collisionEvents = append(g.collisionEvents, ShipToLoot{Ship: a, Loot: b})
	case systems.InteractCursorEnemy:
		g.selection.Enemies = append(g.selection.Enemies, b)
	case systems.InteractCursorLoot:
		g.selection.Loots = append(g.selection.Loots, b)
	}
}

// ColliderCount returns the number of registered colliders.
func (g *Game) ColliderCount() int {
	return g.colliders.Len()
}

// hasCollider reports whether e is registered in the collision world.
func (g *Game) hasCollider(e ecs.Entity) bool {
	h, ok := lookup(g.world, g.handles, e)
	return ok && g.colliders.Contains(h.Handle)
}
