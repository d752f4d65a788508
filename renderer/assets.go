// Package renderer draws the arena with raylib and plays its sounds.
// It must only be used after the raylib window has been created.
package renderer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Assets caches textures by path. A path that fails to load is cached as
// the zero texture so the failure is reported once.
type Assets struct {
	textures map[string]rl.Texture2D
}

// NewAssets creates an empty texture cache.
func NewAssets() *Assets {
	return &Assets{textures: make(map[string]rl.Texture2D)}
}

// Texture returns the texture at path, loading it on first use.
// The second result is false when no usable texture exists.
func (a *Assets) Texture(path string) (rl.Texture2D, bool) {
	if path == "" {
		return rl.Texture2D{}, false
	}
	if tex, ok := a.textures[path]; ok {
		return tex, tex.ID != 0
	}

	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		slog.Warn("texture_missing", "path", path)
		tex = rl.Texture2D{}
	}
	a.textures[path] = tex
	return tex, tex.ID != 0
}

// Unload frees every loaded texture.
func (a *Assets) Unload() {
	for path, tex := range a.textures {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
		delete(a.textures, path)
	}
}
