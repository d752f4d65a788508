// Package config provides configuration loading and access for the arena.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all arena configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Arena       ArenaConfig       `yaml:"arena"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Ship        ShipConfig        `yaml:"ship"`
	Weapon      WeaponConfig      `yaml:"weapon"`
	Missile     MissileConfig     `yaml:"missile"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Loot        LootConfig        `yaml:"loot"`
	Progression ProgressionConfig `yaml:"progression"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Assets      AssetsConfig      `yaml:"assets"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig holds the torus dimensions.
// Zero values fall back to the screen size.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig holds tick and collision world parameters.
type PhysicsConfig struct {
	DT            float64 `yaml:"dt"`             // Fixed headless tick length in seconds
	MaxDT         float64 `yaml:"max_dt"`         // Clamp for variable wall-clock deltas
	ContactMargin float64 `yaml:"contact_margin"` // Prediction margin for contact reporting
}

// ShipConfig holds player ship parameters.
type ShipConfig struct {
	Scale          float64 `yaml:"scale"`
	ColliderRadius float64 `yaml:"collider_radius"`
	MaxAngVel      float64 `yaml:"max_ang_vel"`
	MaxLinVel      float64 `yaml:"max_lin_vel"`
	MaxLatVel      float64 `yaml:"max_lat_vel"`
	Dampening      float64 `yaml:"dampening"`
}

// WeaponConfig holds the starting weapon.
type WeaponConfig struct {
	FireCooldown     float64 `yaml:"fire_cooldown"`     // Seconds between shots
	MunitionLifespan float64 `yaml:"munition_lifespan"` // Seconds a missile lives
}

// MissileConfig holds projectile parameters.
type MissileConfig struct {
	Speed       float64 `yaml:"speed"`
	Damage      uint32  `yaml:"damage"`
	Scale       float64 `yaml:"scale"`
	HalfExtentX float64 `yaml:"half_extent_x"`
	HalfExtentY float64 `yaml:"half_extent_y"`
}

// EnemyConfig holds enemy spawner parameters.
type EnemyConfig struct {
	MaxLife         uint32  `yaml:"max_life"`
	XP              uint32  `yaml:"xp"`
	ColliderRadius  float64 `yaml:"collider_radius"`
	Scale           float64 `yaml:"scale"`
	SpawnInterval   float64 `yaml:"spawn_interval"`
	MaxCount        int     `yaml:"max_count"`
	Initial         int     `yaml:"initial"`
	MinShipDistance float64 `yaml:"min_ship_distance"`
	MaxDriftSpeed   float64 `yaml:"max_drift_speed"`
}

// LootConfig holds loot drop parameters.
type LootConfig struct {
	RateOfFirePercent uint32  `yaml:"rate_of_fire_percent"`
	MunitionPercent   uint32  `yaml:"munition_percent"`
	ColliderRadius    float64 `yaml:"collider_radius"`
	TweenMin          float64 `yaml:"tween_min"`
	TweenMax          float64 `yaml:"tween_max"`
	TweenPeriod       float64 `yaml:"tween_period"`
	Depth             float64 `yaml:"depth"` // z translation, below ships
}

// ProgressionConfig holds the xp table.
// Thresholds[level] is the xp needed to leave that level; index 0 is unused.
type ProgressionConfig struct {
	Thresholds []uint32 `yaml:"thresholds"`
	MaxLevel   uint32   `yaml:"max_level"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// AssetsConfig holds asset paths relative to Dir.
type AssetsConfig struct {
	Dir        string            `yaml:"dir"`
	Ship       string            `yaml:"ship"`
	Enemy      string            `yaml:"enemy"`
	Missile    string            `yaml:"missile"`
	Cursor     string            `yaml:"cursor"`
	Background string            `yaml:"background"`
	LootAssets map[string]string `yaml:"loot"`
	Sounds     map[string]string `yaml:"sounds"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ArenaW    float64 // Effective arena width
	ArenaH    float64 // Effective arena height
	HalfW     float64
	HalfH     float64
	ScreenW32 float32
	ScreenH32 float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// validate rejects configurations the simulation cannot run with.
func (c *Config) validate() error {
	if c.Physics.ContactMargin < 0 {
		return fmt.Errorf("physics.contact_margin must not be negative, got %v", c.Physics.ContactMargin)
	}
	if c.Loot.RateOfFirePercent == 0 || c.Loot.MunitionPercent == 0 {
		return fmt.Errorf("loot percents must be positive, got rate_of_fire=%d munition=%d",
			c.Loot.RateOfFirePercent, c.Loot.MunitionPercent)
	}
	if c.Progression.MaxLevel == 0 || int(c.Progression.MaxLevel) >= len(c.Progression.Thresholds) {
		return fmt.Errorf("progression.max_level %d needs %d thresholds, got %d",
			c.Progression.MaxLevel, c.Progression.MaxLevel+1, len(c.Progression.Thresholds))
	}
	if c.Loot.TweenMax <= c.Loot.TweenMin || c.Loot.TweenPeriod <= 0 {
		return fmt.Errorf("loot tween needs min < max and a positive period")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// Arena defaults to the screen size if not specified
	c.Derived.ArenaW = c.Arena.Width
	if c.Derived.ArenaW == 0 {
		c.Derived.ArenaW = float64(c.Screen.Width)
	}
	c.Derived.ArenaH = c.Arena.Height
	if c.Derived.ArenaH == 0 {
		c.Derived.ArenaH = float64(c.Screen.Height)
	}
	c.Derived.HalfW = c.Derived.ArenaW / 2
	c.Derived.HalfH = c.Derived.ArenaH / 2
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
