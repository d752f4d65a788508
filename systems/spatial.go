// Package systems provides the ECS systems and pure rules of the arena.
package systems

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Quadrant is one of the four sign-based partitions of the arena.
type Quadrant uint8

const (
	NE Quadrant = iota
	NW
	SE
	SW
)

func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case NW:
		return "NW"
	case SE:
		return "SE"
	case SW:
		return "SW"
	}
	return "invalid"
}

// QuadrantOf returns the quadrant containing (x, y) relative to the arena
// center. Zero coordinates count as west and south.
func QuadrantOf(p r2.Vec) Quadrant {
	west := p.X <= 0
	south := p.Y <= 0
	switch {
	case west && south:
		return SW
	case west:
		return NW
	case south:
		return SE
	default:
		return NE
	}
}

// Arena is the toroidal playfield. Size is the full width and height;
// coordinates run from -Size/2 to Size/2 on each axis.
type Arena struct {
	Size  r2.Vec
	Shown Quadrant

	// Changed is raised by Follow when Shown flips and cleared at the
	// start of the next Follow.
	Changed bool
}

// NewArena returns an arena showing the quadrant of origin.
func NewArena(width, height float64, origin r2.Vec) *Arena {
	return &Arena{
		Size:  r2.Vec{X: width, Y: height},
		Shown: QuadrantOf(origin),
	}
}

// HalfExtents returns half the arena size.
func (a *Arena) HalfExtents() r2.Vec {
	return r2.Scale(0.5, a.Size)
}

// Follow updates the shown quadrant from the tracked position.
// Shown is written only when it changes; the return value reports a flip.
func (a *Arena) Follow(p r2.Vec) bool {
	a.Changed = false
	if q := QuadrantOf(p); q != a.Shown {
		a.Shown = q
		a.Changed = true
	}
	return a.Changed
}

// Delta returns the shortest vector from p to q on the torus.
func (a *Arena) Delta(p, q r2.Vec) r2.Vec {
	dx, dy := ToroidalDelta(p.X, p.Y, q.X, q.Y, a.Size.X, a.Size.Y)
	return r2.Vec{X: dx, Y: dy}
}

// WrapAxis snaps a coordinate that left [-half, half] while moving outward
// to the opposite bound. A coordinate outside the bounds but moving back
// inward is left alone.
func WrapAxis(pos, speed, half float64) float64 {
	if pos < -half && speed < 0 {
		return half
	}
	if pos > half && speed > 0 {
		return -half
	}
	return pos
}

// ToroidalDelta returns the shortest path delta from (x1,y1) to (x2,y2).
func ToroidalDelta(x1, y1, x2, y2, w, h float64) (dx, dy float64) {
	dx = x2 - x1
	dy = y2 - y1

	if dx > w/2 {
		dx -= w
	} else if dx < -w/2 {
		dx += w
	}
	if dy > h/2 {
		dy -= h
	} else if dy < -h/2 {
		dy += h
	}

	return dx, dy
}
