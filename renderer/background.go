package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/kotlot/camera"
)

// BackgroundRenderer stretches a single image across the arena. It scrolls
// with the camera and repeats on the torus seams.
type BackgroundRenderer struct {
	assets *Assets
	path   string

	baseColor rl.Color
}

// NewBackgroundRenderer creates a background drawn from the image at path.
// baseColor fills the screen when the image is unavailable.
func NewBackgroundRenderer(assets *Assets, path string, baseR, baseG, baseB uint8) *BackgroundRenderer {
	return &BackgroundRenderer{
		assets:    assets,
		path:      path,
		baseColor: rl.Color{R: baseR, G: baseG, B: baseB, A: 255},
	}
}

// Draw renders the arena tiles that overlap the viewport.
func (b *BackgroundRenderer) Draw(cam *camera.Camera) {
	rl.ClearBackground(b.baseColor)

	tex, ok := b.assets.Texture(b.path)
	if !ok {
		return
	}

	src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
	w, h := cam.WorldW, cam.WorldH
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()

	// Tile centers sit on multiples of the arena size.
	for cx := w * math.Floor((minX+w/2)/w); cx-w/2 < maxX; cx += w {
		for cy := h * math.Floor((minY+h/2)/h); cy-h/2 < maxY; cy += h {
			// Top-left in world space is (cx-w/2, cy+h/2) because y points up.
			sx, sy := cam.WorldToScreen(cx-w/2, cy+h/2)
			dst := rl.Rectangle{
				X:      sx,
				Y:      sy,
				Width:  float32(w * cam.Zoom),
				Height: float32(h * cam.Zoom),
			}
			rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
		}
	}
}
