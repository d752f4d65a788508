package main

import (
	"math"

	"github.com/pthm-cable/kotlot/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of difficulty parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Enemies
			{Name: "spawn_interval", Path: "enemy.spawn_interval", Min: 0.5, Max: 8.0, Default: 3.0},
			{Name: "max_count", Path: "enemy.max_count", Min: 4, Max: 40, Default: 12},
			{Name: "max_life", Path: "enemy.max_life", Min: 1, Max: 8, Default: 3},
			{Name: "max_drift_speed", Path: "enemy.max_drift_speed", Min: 10, Max: 200, Default: 60},
			// Weapon
			{Name: "fire_cooldown", Path: "weapon.fire_cooldown", Min: 0.1, Max: 2.0, Default: 1.0},
			{Name: "munition_lifespan", Path: "weapon.munition_lifespan", Min: 0.2, Max: 2.0, Default: 0.5},
			{Name: "missile_speed", Path: "missile.speed", Min: 200, Max: 1200, Default: 500},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = math.Max(spec.Min, math.Min(spec.Max, v[i]))
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	c := pv.Clamp(values)

	cfg.Enemy.SpawnInterval = c[0]
	cfg.Enemy.MaxCount = int(math.Round(c[1]))
	cfg.Enemy.MaxLife = uint32(math.Round(c[2]))
	cfg.Enemy.MaxDriftSpeed = c[3]

	cfg.Weapon.FireCooldown = c[4]
	cfg.Weapon.MunitionLifespan = c[5]
	cfg.Missile.Speed = c[6]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Enemy.SpawnInterval,
		float64(cfg.Enemy.MaxCount),
		float64(cfg.Enemy.MaxLife),
		cfg.Enemy.MaxDriftSpeed,
		cfg.Weapon.FireCooldown,
		cfg.Weapon.MunitionLifespan,
		cfg.Missile.Speed,
	}
}
