package components

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform places an entity in the arena.
// Translation is centered on the arena origin with y pointing up; Z only
// orders drawing. Rotation is in radians around the z axis.
type Transform struct {
	Translation r3.Vec
	Rotation    float64
	Scale       r3.Vec
}

// NewTransform returns a transform at (x, y, z) with a uniform scale.
func NewTransform(x, y, z, scale float64) Transform {
	return Transform{
		Translation: r3.Vec{X: x, Y: y, Z: z},
		Scale:       r3.Vec{X: scale, Y: scale, Z: scale},
	}
}

// Position returns the planar part of the translation.
func (t *Transform) Position() r2.Vec {
	return r2.Vec{X: t.Translation.X, Y: t.Translation.Y}
}

// Heading returns the unit vector the entity faces.
func (t *Transform) Heading() r2.Vec {
	return r2.Vec{X: math.Cos(t.Rotation), Y: math.Sin(t.Rotation)}
}

// Movement holds an entity's velocity and its per-second decay factor.
// Speed is multiplied by Dampening^dt every tick; 1 means no decay.
type Movement struct {
	Speed     r2.Vec
	Dampening float64
}

// GhostCount is the number of mirrored copies each primary entity owns:
// the other three of the four torus copies visible from a quadrant.
const GhostCount = 3

// Ghost marks a visual proxy of a primary entity.
// ID selects which wrapped copy it shows (0, 1 or 2).
type Ghost struct {
	Parent ecs.Entity
	ID     uint8
}

// GhostSet lists the ghosts owned by a primary entity, indexed by ghost ID.
type GhostSet struct {
	Ghosts [GhostCount]ecs.Entity
}
