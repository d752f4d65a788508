package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/kotlot/components"
	"github.com/pthm-cable/kotlot/systems"
	"github.com/pthm-cable/kotlot/telemetry"
)

// Action is a named logical input.
type Action uint8

const (
	ActionForward Action = iota
	ActionBackward
	ActionRCSLeft
	ActionRCSRight
	ActionShoot1
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionForward:
		return "FORWARD"
	case ActionBackward:
		return "BACKWARD"
	case ActionRCSLeft:
		return "RCS_LEFT"
	case ActionRCSRight:
		return "RCS_RIGHT"
	case ActionShoot1:
		return "SHOOT_1"
	case ActionQuit:
		return "QUIT"
	}
	return "UNKNOWN"
}

// Actions is the set of actions active during a tick.
type Actions uint8

// With returns the set with a added.
func (s Actions) With(a Action) Actions {
	return s | 1<<a
}

// Has reports whether a is active.
func (s Actions) Has(a Action) bool {
	return s&(1<<a) != 0
}

// Input is everything the input collaborator delivers for one tick.
type Input struct {
	Actions Actions

	// Cursor is the pointer position in arena coordinates.
	// It is ignored unless HasCursor is set.
	Cursor    r2.Vec
	HasCursor bool
}

// applyInput moves the cursor, steers every user-controlled ship and fires
// its weapon.
func (g *Game) applyInput(dt float64, in Input) {
	if in.Actions.Has(ActionQuit) {
		g.quit = true
	}

	if in.HasCursor {
		if tr, ok := lookup(g.world, g.transforms, g.cursor); ok {
			tr.Translation.X, tr.Translation.Y = in.Cursor.X, in.Cursor.Y
		}
	}

	// Collect first: firing spawns entities.
	var controlled []controlledShip
	query := g.controlFilter.Query()
	for query.Next() {
		ship, _ := query.Get()
		controlled = append(controlled, controlledShip{entity: query.Entity(), ship: *ship})
	}

	for _, c := range controlled {
		g.steer(c, dt, in)
		if in.Actions.Has(ActionShoot1) {
			g.fire(c)
		}
	}
}

type controlledShip struct {
	entity ecs.Entity
	ship   components.Spaceship
}

// steer turns the ship toward the cursor and applies thrust.
func (g *Game) steer(c controlledShip, dt float64, in Input) {
	tr, ok := lookup(g.world, g.transforms, c.entity)
	if !ok {
		return
	}
	mv, ok := lookup(g.world, g.movements, c.entity)
	if !ok {
		return
	}

	if in.HasCursor {
		d := g.arena.Delta(tr.Position(), in.Cursor)
		if d.X != 0 || d.Y != 0 {
			target := math.Atan2(d.Y, d.X)
			tr.Rotation = systems.TurnToward(tr.Rotation, target, c.ship.MaxAngVel*dt)
		}
	}

	heading := tr.Heading()
	left := r2.Vec{X: -heading.Y, Y: heading.X}

	if in.Actions.Has(ActionForward) {
		mv.Speed = r2.Add(mv.Speed, r2.Scale(c.ship.MaxLinVel*dt, heading))
	}
	if in.Actions.Has(ActionBackward) {
		mv.Speed = r2.Sub(mv.Speed, r2.Scale(c.ship.MaxLinVel*dt, heading))
	}
	if in.Actions.Has(ActionRCSLeft) {
		mv.Speed = r2.Add(mv.Speed, r2.Scale(c.ship.MaxLatVel*dt, left))
	}
	if in.Actions.Has(ActionRCSRight) {
		mv.Speed = r2.Sub(mv.Speed, r2.Scale(c.ship.MaxLatVel*dt, left))
	}
}

// fire launches a missile from the ship's nose when the cooldown allows.
func (g *Game) fire(c controlledShip) {
	weapon, ok := lookup(g.world, g.weapons, c.entity)
	if !ok || !weapon.FireCooldown.Finished() {
		return
	}
	weapon.FireCooldown.Reset()
	lifespan := weapon.MunitionLifespan

	tr := *mustGet(g.world, g.transforms, c.entity, "Transform")
	nose := r2.Add(tr.Position(), r2.Scale(g.cfg.Ship.ColliderRadius, tr.Heading()))

	g.SpawnMissile(c.entity, nose, tr.Rotation, lifespan)
	g.cues.Play(CueLaser)
	g.collector.Record(telemetry.EventShot)
}
