package game

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Autopilot tuning.
const (
	autopilotFireCone  = 0.15 // radians off target still worth a shot
	autopilotApproach  = 220  // thrust toward targets farther than this
	autopilotLootReach = 400  // prefer loot closer than this over enemies
)

// AutopilotInput returns input that flies the ship for headless runs: it
// aims at the nearest loot or enemy, closes in, and fires at enemies it
// is facing.
func (g *Game) AutopilotInput() Input {
	tr, ok := lookup(g.world, g.transforms, g.ship)
	if !ok {
		return Input{}
	}
	shipPos := tr.Position()
	heading := tr.Rotation

	target, isEnemy, found := g.nearestTarget(shipPos)
	if !found {
		return Input{}
	}

	in := Input{Cursor: target, HasCursor: true}
	d := g.arena.Delta(shipPos, target)
	if r2.Norm(d) > autopilotApproach || !isEnemy {
		in.Actions = in.Actions.With(ActionForward)
	}

	off := math.Abs(math.Remainder(math.Atan2(d.Y, d.X)-heading, 2*math.Pi))
	if isEnemy && off < autopilotFireCone {
		in.Actions = in.Actions.With(ActionShoot1)
	}
	return in
}

// nearestTarget returns the closest loot within reach, or else the closest enemy.
func (g *Game) nearestTarget(from r2.Vec) (pos r2.Vec, isEnemy, found bool) {
	best := math.Inf(1)

	lq := g.lootFilter.Query()
	for lq.Next() {
		e := lq.Entity()
		if !g.transforms.Has(e) {
			continue
		}
		p := g.transforms.Get(e).Position()
		if dist := r2.Norm(g.arena.Delta(from, p)); dist < best && dist < autopilotLootReach {
			best, pos, found = dist, p, true
		}
	}
	if found {
		return pos, false, true
	}

	eq := g.enemyFilter.Query()
	for eq.Next() {
		tr, _, _ := eq.Get()
		p := tr.Position()
		if dist := r2.Norm(g.arena.Delta(from, p)); dist < best {
			best, pos, found = dist, p, true
		}
	}
	return pos, true, found
}
