package components

import (
	"image/color"

	"github.com/pthm-cable/kotlot/collide"
)

// Sprite is the visual material of an entity. Ghosts share their primary's sprite.
type Sprite struct {
	Asset  string     // Texture path relative to the asset directory
	Radius float64    // Fallback circle radius when the texture is missing
	Tint   color.RGBA // Draw tint; fallback circle color
}

// ColliderType tags every entity registered in the collision world.
type ColliderType uint8

const (
	ColliderShip ColliderType = iota
	ColliderEnemy
	ColliderMissile
	ColliderLoot
	ColliderCursor
)

// ColliderHandle is an entity's registration in the collision world.
type ColliderHandle struct {
	Handle collide.Handle
}

// Outline toggles the selection highlight drawn around an entity.
type Outline struct {
	Enabled bool
}

// TweenScale pulses an entity's uniform scale between Min and Max.
// A full grow-and-shrink cycle lasts Period seconds.
type TweenScale struct {
	Min, Max float64
	Period   float64
	Increase bool
	Rate     float64 // scale units per second
}

// NewTweenScale returns a tween that starts growing.
func NewTweenScale(min, max, period float64) TweenScale {
	return TweenScale{
		Min:      min,
		Max:      max,
		Period:   period,
		Increase: true,
		Rate:     (max - min) / (period / 2),
	}
}

// Step advances the tween by dt and returns the new scale.
// Direction reverses when a bound is reached; the scale is clamped to it.
func (t *TweenScale) Step(scale, dt float64) float64 {
	diff := t.Rate * dt
	if t.Increase {
		scale += diff
		if scale >= t.Max {
			scale = t.Max
			t.Increase = false
		}
	} else {
		scale -= diff
		if scale <= t.Min {
			scale = t.Min
			t.Increase = true
		}
	}
	return scale
}
