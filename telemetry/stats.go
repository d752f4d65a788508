package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	RunID           string  `csv:"run_id"`
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Arena state at window end
	Enemies  int    `csv:"enemies"`
	Loot     int    `csv:"loot"`
	Missiles int    `csv:"missiles"`
	Level    uint32 `csv:"level"`
	XP       uint32 `csv:"xp"`

	// Events during window
	Shots           int     `csv:"shots"`
	Hits            int     `csv:"hits"`
	Kills           int     `csv:"kills"`
	LootDropped     int     `csv:"loot_dropped"`
	LootPicked      int     `csv:"loot_picked"`
	LevelUps        int     `csv:"level_ups"`
	CleanupWarnings int     `csv:"cleanup_warnings"`
	XPGained        uint64  `csv:"xp_gained"`
	HitRate         float64 `csv:"hit_rate"`
	KillRate        float64 `csv:"kill_rate"`

	// Enemy life distribution
	EnemyLifeMean float64 `csv:"enemy_life_mean"`
	EnemyLifeP50  float64 `csv:"enemy_life_p50"`
	EnemyLifeP90  float64 `csv:"enemy_life_p90"`
}

// Percentile returns the empirical p-quantile of a sorted slice.
// p is clamped to [0, 1]. Returns 0 if the slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeStats returns the mean, median and 90th percentile of values.
func ComputeStats(values []float64) (mean, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return stat.Mean(sorted, nil), Percentile(sorted, 0.5), Percentile(sorted, 0.9)
}

// LogStats logs the window at info level.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"enemies", s.Enemies,
		"loot", s.Loot,
		"shots", s.Shots,
		"hits", s.Hits,
		"kills", s.Kills,
		"loot_picked", s.LootPicked,
		"level", s.Level,
		"xp", s.XP,
	)
}
