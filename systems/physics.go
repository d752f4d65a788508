package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/kotlot/components"
)

// MovementSystem integrates velocity, applies dampening and wraps
// positions around the arena edges.
type MovementSystem struct {
	filter *ecs.Filter2[components.Transform, components.Movement]
	arena  *Arena
}

// NewMovementSystem creates a movement system over the given arena.
func NewMovementSystem(w *ecs.World, arena *Arena) *MovementSystem {
	return &MovementSystem{
		filter: ecs.NewFilter2[components.Transform, components.Movement](w),
		arena:  arena,
	}
}

// Update advances every moving entity by dt seconds.
func (s *MovementSystem) Update(dt float64) {
	half := s.arena.HalfExtents()

	query := s.filter.Query()
	for query.Next() {
		tr, mv := query.Get()
		Move(tr, mv, half, dt)
	}
}

// Move advances a single transform. The velocity decays by
// Dampening^dt and is otherwise untouched by wrapping.
func Move(tr *components.Transform, mv *components.Movement, half r2.Vec, dt float64) {
	tr.Translation.X += mv.Speed.X * dt
	tr.Translation.Y += mv.Speed.Y * dt

	if mv.Dampening != 1 {
		mv.Speed = r2.Scale(math.Pow(mv.Dampening, dt), mv.Speed)
	}

	tr.Translation.X = WrapAxis(tr.Translation.X, mv.Speed.X, half.X)
	tr.Translation.Y = WrapAxis(tr.Translation.Y, mv.Speed.Y, half.Y)
}
