package game

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r2"
)

// followCamera centers the camera on its target and refreshes the shown
// quadrant, which only changes when the target crosses an axis.
func (g *Game) followCamera() {
	var pos r2.Vec
	found := false

	query := g.cameraFilter.Query()
	for query.Next() {
		tr, _ := query.Get()
		pos = tr.Position()
		found = true
	}
	if !found {
		g.arena.Changed = false
		return
	}

	g.camera.Follow(pos.X, pos.Y)
	if g.arena.Follow(pos) {
		slog.Debug("quadrant_changed", "quadrant", g.arena.Shown.String(), "tick", g.tick)
	}
}
