package game

import (
	"slices"

	"github.com/mlange-42/ark/ecs"
)

// CursorSelection lists the entities under the cursor this tick.
type CursorSelection struct {
	Enemies []ecs.Entity
	Loots   []ecs.Entity
}

func (s *CursorSelection) reset() {
	s.Enemies = s.Enemies[:0]
	s.Loots = s.Loots[:0]
}

func (s *CursorSelection) all() []ecs.Entity {
	out := make([]ecs.Entity, 0, len(s.Enemies)+len(s.Loots))
	out = append(out, s.Enemies...)
	return append(out, s.Loots...)
}

// Selection returns the current cursor selection.
func (g *Game) Selection() CursorSelection {
	return g.selection
}

// SelectionLabel returns the HUD text describing the selection.
func (g *Game) SelectionLabel() string {
	return g.selectionLabel
}

// updateSelection moves the outline highlight to the current selection
// when it changed since the previous tick.
func (g *Game) updateSelection() {
	current := g.selection.all()
	if slices.Equal(current, g.outlined) {
		return
	}

	g.setOutline(g.outlined, false)
	g.setOutline(current, true)
	g.outlined = current

	switch {
	case len(g.selection.Enemies) > 0:
		g.selectionLabel = "Frail target"
	case len(g.selection.Loots) > 0:
		g.selectionLabel = "Uber Loot"
	default:
		g.selectionLabel = ""
	}
}

// setOutline toggles the outline of each entity. Entities despawned since
// they were selected are skipped.
func (g *Game) setOutline(entities []ecs.Entity, enabled bool) {
	for _, e := range entities {
		if o, ok := lookup(g.world, g.outlines, e); ok {
			o.Enabled = enabled
		}
	}
}
