package collide

import (
	"github.com/jakecoffman/cp"
	"gonum.org/v1/gonum/spatial/r2"
)

// Shape is a collision shape centered on its object's position.
// Shapes are position-only: objects carry no rotation or scale.
type Shape interface {
	// attach builds the shape on body, grown by pad on every side.
	attach(body *cp.Body, pad float64) *cp.Shape
}

// Ball is a circle of the given radius.
type Ball struct {
	Radius float64
}

func (b Ball) attach(body *cp.Body, pad float64) *cp.Shape {
	return cp.NewCircle(body, b.Radius+pad, cp.Vector{})
}

// Cuboid is an axis-aligned rectangle described by its half extents.
type Cuboid struct {
	HalfExtents r2.Vec
}

// The pad becomes the box's rounding radius, which extends past its edges.
func (c Cuboid) attach(body *cp.Body, pad float64) *cp.Shape {
	return cp.NewBox(body, 2*c.HalfExtents.X, 2*c.HalfExtents.Y, pad)
}

// Contact describes the deepest point of an overlap between two shapes.
// Normal points from the first object of the pair toward the second.
// Depth is negative when the shapes are separated but within the margin.
type Contact struct {
	Depth  float64
	Normal r2.Vec
	Point  r2.Vec
}

// contactFrom converts a chipmunk contact set between padded shapes. Each
// shape was grown by half the margin, so the margin is taken back out of
// the reported depth.
func contactFrom(set *cp.ContactPointSet, margin float64) Contact {
	p := set.Points[0]
	return Contact{
		Depth:  -p.Distance - margin,
		Normal: vec(set.Normal),
		Point:  vec(p.PointA),
	}
}

func vec(v cp.Vector) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

func cpVec(v r2.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}
