package systems

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/kotlot/components"
)

// GhostOffset returns the translation from a primary to its ghost id when
// the given quadrant is shown. Each quadrant maps its three ghosts to the
// three torus copies adjacent to it. Any other combination panics.
func GhostOffset(q Quadrant, id uint8, size r2.Vec) r2.Vec {
	w, h := size.X, size.Y
	switch q {
	case NW:
		switch id {
		case 0:
			return r2.Vec{X: -w}
		case 1:
			return r2.Vec{X: -w, Y: h}
		case 2:
			return r2.Vec{Y: h}
		}
	case NE:
		switch id {
		case 0:
			return r2.Vec{Y: h}
		case 1:
			return r2.Vec{X: w, Y: h}
		case 2:
			return r2.Vec{X: w}
		}
	case SE:
		switch id {
		case 0:
			return r2.Vec{X: w}
		case 1:
			return r2.Vec{X: w, Y: -h}
		case 2:
			return r2.Vec{Y: -h}
		}
	case SW:
		switch id {
		case 0:
			return r2.Vec{Y: -h}
		case 1:
			return r2.Vec{X: -w, Y: -h}
		case 2:
			return r2.Vec{X: -w}
		}
	}
	panic(fmt.Sprintf("systems: no ghost offset for quadrant %v id %d", q, id))
}

// GhostTransform returns the transform of ghost id for the given primary.
// Rotation and scale are copied from the primary.
func GhostTransform(primary components.Transform, q Quadrant, id uint8, size r2.Vec) components.Transform {
	off := GhostOffset(q, id, size)
	ghost := primary
	ghost.Translation.X += off.X
	ghost.Translation.Y += off.Y
	return ghost
}

// GhostSystem recomputes ghost transforms from their primaries.
// It must run after every system that moves primaries or flips the
// shown quadrant in the same tick.
type GhostSystem struct {
	filter     *ecs.Filter2[components.Transform, components.GhostSet]
	transforms *ecs.Map[components.Transform]
	outlines   *ecs.Map[components.Outline]
	arena      *Arena
}

// NewGhostSystem creates a ghost system over the given arena.
func NewGhostSystem(w *ecs.World, arena *Arena) *GhostSystem {
	return &GhostSystem{
		filter:     ecs.NewFilter2[components.Transform, components.GhostSet](w),
		transforms: ecs.NewMap[components.Transform](w),
		outlines:   ecs.NewMap[components.Outline](w),
		arena:      arena,
	}
}

// Update moves every ghost to its mirrored position. Ghosts that are no
// longer alive are skipped; the primary's despawn removes them.
func (s *GhostSystem) Update(w *ecs.World) {
	query := s.filter.Query()
	for query.Next() {
		tr, set := query.Get()
		primary := query.Entity()

		var outline *components.Outline
		if s.outlines.Has(primary) {
			outline = s.outlines.Get(primary)
		}

		for id, ghost := range set.Ghosts {
			if !w.Alive(ghost) || !s.transforms.Has(ghost) {
				continue
			}
			*s.transforms.Get(ghost) = GhostTransform(*tr, s.arena.Shown, uint8(id), s.arena.Size)

			if outline != nil && s.outlines.Has(ghost) {
				*s.outlines.Get(ghost) = *outline
			}
		}
	}
}
