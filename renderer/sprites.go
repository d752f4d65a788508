package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/kotlot/camera"
	"github.com/pthm-cable/kotlot/game"
)

// Sprite art points up, which is a world rotation of Pi/2.
const spriteUp = math.Pi / 2

var outlineColor = rl.Color{R: 255, G: 220, B: 80, A: 255}

// SpriteRenderer draws game drawables through the camera.
type SpriteRenderer struct {
	assets    *Assets
	drawables []game.Drawable
}

// NewSpriteRenderer creates a sprite renderer backed by assets.
func NewSpriteRenderer(assets *Assets) *SpriteRenderer {
	return &SpriteRenderer{assets: assets}
}

// Draw renders every primary and ghost of g that intersects the viewport.
func (s *SpriteRenderer) Draw(g *game.Game, cam *camera.Camera) {
	s.drawables = g.Drawables(s.drawables[:0])

	for i := range s.drawables {
		d := &s.drawables[i]
		tr := d.Transform
		if !cam.IsVisible(tr.Translation.X, tr.Translation.Y, spriteExtent(d, s.assets)) {
			continue
		}

		sx, sy := cam.WorldToScreen(tr.Translation.X, tr.Translation.Y)
		center := rl.Vector2{X: sx, Y: sy}

		if tex, ok := s.assets.Texture(d.Sprite.Asset); ok {
			w := float32(float64(tex.Width) * tr.Scale.X * cam.Zoom)
			h := float32(float64(tex.Height) * tr.Scale.Y * cam.Zoom)
			src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
			dst := rl.Rectangle{X: sx, Y: sy, Width: w, Height: h}
			// Screen rotation is clockwise because y is flipped.
			deg := float32(-(tr.Rotation - spriteUp) * 180 / math.Pi)
			rl.DrawTexturePro(tex, src, dst, rl.Vector2{X: w / 2, Y: h / 2}, deg, rl.White)
		} else {
			c := d.Sprite.Tint
			rl.DrawCircleV(center, float32(d.Sprite.Radius*cam.Zoom), rl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
		}

		if d.Outline {
			rl.DrawCircleLines(int32(sx), int32(sy), float32((d.Sprite.Radius+4)*cam.Zoom), outlineColor)
		}
	}
}

// spriteExtent returns a conservative world-space radius for culling.
func spriteExtent(d *game.Drawable, assets *Assets) float64 {
	extent := d.Sprite.Radius
	if tex, ok := assets.Texture(d.Sprite.Asset); ok {
		side := math.Max(float64(tex.Width), float64(tex.Height)) * math.Max(d.Transform.Scale.X, d.Transform.Scale.Y)
		extent = math.Max(extent, side)
	}
	return extent
}
