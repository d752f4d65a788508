package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/kotlot/components"
)

// TweenSystem pulses the uniform scale of entities with a TweenScale.
type TweenSystem struct {
	filter *ecs.Filter2[components.Transform, components.TweenScale]
}

func NewTweenSystem(w *ecs.World) *TweenSystem {
	return &TweenSystem{
		filter: ecs.NewFilter2[components.Transform, components.TweenScale](w),
	}
}

func (s *TweenSystem) Update(dt float64) {
	query := s.filter.Query()
	for query.Next() {
		tr, tw := query.Get()
		scale := tw.Step(tr.Scale.X, dt)
		tr.Scale.X, tr.Scale.Y, tr.Scale.Z = scale, scale, scale
	}
}
