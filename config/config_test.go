package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Derived.ArenaW != 1280 || cfg.Derived.ArenaH != 800 {
		t.Errorf("arena = %vx%v, want screen size 1280x800", cfg.Derived.ArenaW, cfg.Derived.ArenaH)
	}
	if cfg.Derived.HalfW != 640 || cfg.Derived.HalfH != 400 {
		t.Errorf("half extents = %v,%v", cfg.Derived.HalfW, cfg.Derived.HalfH)
	}
	if cfg.Enemy.MaxLife != 3 || cfg.Enemy.XP != 2 {
		t.Errorf("enemy = %+v", cfg.Enemy)
	}
	if got := cfg.Assets.LootAssets["rate_of_fire"]; got == "" {
		t.Error("missing rate_of_fire loot asset")
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	data := []byte("arena:\n  width: 2000\nenemy:\n  max_count: 3\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Derived.ArenaW != 2000 {
		t.Errorf("ArenaW = %v, want 2000", cfg.Derived.ArenaW)
	}
	if cfg.Derived.ArenaH != 800 {
		t.Errorf("ArenaH = %v, want the screen height", cfg.Derived.ArenaH)
	}
	if cfg.Enemy.MaxCount != 3 {
		t.Errorf("MaxCount = %d, want 3", cfg.Enemy.MaxCount)
	}
	if cfg.Enemy.MaxLife != 3 {
		t.Errorf("MaxLife = %d, default lost", cfg.Enemy.MaxLife)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"short thresholds": "progression:\n  thresholds: [0, 10]\n  max_level: 6\n",
		"negative margin":  "physics:\n  contact_margin: -1\n",
		"inverted tween":   "loot:\n  tween_min: 1\n  tween_max: 0.5\n",
		"zero fire rate":   "loot:\n  rate_of_fire_percent: 0\n",
		"zero munition":    "loot:\n  munition_percent: 0\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := Default().WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ship.ColliderRadius != Default().Ship.ColliderRadius {
		t.Errorf("ship radius = %v", cfg.Ship.ColliderRadius)
	}
}
