package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 800, 1280, 800)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at origin, got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 800, 1280, 800)
	cam.Follow(100, -50)

	sx, sy := cam.WorldToScreen(100, -50)
	if math.Abs(float64(sx-640)) > 0.01 || math.Abs(float64(sy-400)) > 0.01 {
		t.Errorf("expected screen center (640, 400), got (%f, %f)", sx, sy)
	}
}

func TestWorldToScreenYUp(t *testing.T) {
	cam := New(1280, 800, 1280, 800)

	// Positive world y is above the center, which is a smaller screen y.
	_, sy := cam.WorldToScreen(0, 100)
	if sy >= 400 {
		t.Errorf("expected point above center, got sy=%f", sy)
	}
	sx, _ := cam.WorldToScreen(100, 0)
	if sx <= 640 {
		t.Errorf("expected point right of center, got sx=%f", sx)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 800, 1280, 800)
	cam.Follow(-300, 120)
	cam.SetZoom(2)

	testCases := []struct{ sx, sy float32 }{
		{640, 400},
		{100, 100},
		{1200, 700},
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestScreenToArenaWraps(t *testing.T) {
	cam := New(1280, 800, 1280, 800)
	cam.Follow(600, 0)

	// 100px right of center is x=700, past the east edge at 640.
	wx, wy := cam.ScreenToArena(740, 400)
	if math.Abs(wx-(-580)) > 1e-9 || math.Abs(wy) > 1e-9 {
		t.Errorf("expected (-580, 0), got (%f, %f)", wx, wy)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 800, 1280, 800)

	tests := []struct {
		name   string
		x, y   float64
		radius float64
		want   bool
	}{
		{"center", 0, 0, 1, true},
		{"just outside", 650, 0, 5, false},
		{"edge overlap", 650, 0, 20, true},
		{"above", 0, 500, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cam.IsVisible(tc.x, tc.y, tc.radius); got != tc.want {
				t.Errorf("IsVisible(%v, %v, %v) = %v, want %v", tc.x, tc.y, tc.radius, got, tc.want)
			}
		})
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 800, 1280, 800)

	cam.ZoomBy(100)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}
	cam.SetZoom(0)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}
}
