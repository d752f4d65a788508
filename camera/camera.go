// Package camera provides a 2D follow camera for the arena viewport.
package camera

import "math"

// Camera maps arena coordinates to the screen.
// The arena is centered on the origin with y pointing up; the screen has
// its origin at the top-left with y pointing down.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float64

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// Arena dimensions, used to wrap screen points back into the arena
	WorldW, WorldH float64

	// Zoom constraints
	MinZoom, MaxZoom float64
}

// New creates a camera centered on the arena origin with 1:1 zoom.
func New(viewportW, viewportH, worldW, worldH float64) *Camera {
	return &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
		MinZoom:   0.25,
		MaxZoom:   4.0,
	}
}

// Follow centers the camera on a world position.
func (c *Camera) Follow(wx, wy float64) {
	c.X, c.Y = wx, wy
}

// WorldToScreen converts world coordinates to screen coordinates.
// Points are not wrapped; ghosts cover the far side of the torus.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float32) {
	sx = float32(c.ViewportW/2 + (wx-c.X)*c.Zoom)
	sy = float32(c.ViewportH/2 - (wy-c.Y)*c.Zoom)
	return sx, sy
}

// ScreenToWorld converts screen coordinates to unwrapped world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float64) {
	wx = c.X + (float64(sx)-c.ViewportW/2)/c.Zoom
	wy = c.Y - (float64(sy)-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// ScreenToArena converts screen coordinates to a position inside the arena,
// wrapping points that fall beyond an edge onto the opposite side.
func (c *Camera) ScreenToArena(sx, sy float32) (wx, wy float64) {
	wx, wy = c.ScreenToWorld(sx, sy)
	return wrapCentered(wx, c.WorldW), wrapCentered(wy, c.WorldH)
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float64) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return math.Abs(wx-c.X) <= halfW && math.Abs(wy-c.Y) <= halfH
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float64) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

// wrapCentered maps v into [-size/2, size/2).
func wrapCentered(v, size float64) float64 {
	r := math.Mod(v+size/2, size)
	if r < 0 {
		r += size
	}
	return r - size/2
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
