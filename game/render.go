package game

import (
	"sort"

	"github.com/pthm-cable/kotlot/components"
)

// Drawable is a sprite placed in the arena, ready for the renderer.
type Drawable struct {
	Transform components.Transform
	Sprite    components.Sprite
	Outline   bool
	Ghost     bool
}

// Drawables appends every visible entity, primaries and ghosts alike, to
// dst ordered by depth, and returns the extended slice.
func (g *Game) Drawables(dst []Drawable) []Drawable {
	start := len(dst)

	query := g.spriteFilter.Query()
	for query.Next() {
		tr, sprite := query.Get()
		e := query.Entity()

		d := Drawable{
			Transform: *tr,
			Sprite:    *sprite,
			Ghost:     g.ghostTags.Has(e),
		}
		if g.outlines.Has(e) {
			d.Outline = g.outlines.Get(e).Enabled
		}
		dst = append(dst, d)
	}

	added := dst[start:]
	sort.SliceStable(added, func(i, j int) bool {
		return added[i].Transform.Translation.Z < added[j].Transform.Translation.Z
	})
	return dst
}
