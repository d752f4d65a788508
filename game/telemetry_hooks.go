package game

import (
	"log/slog"

	"github.com/pthm-cable/kotlot/telemetry"
)

// flushTelemetry writes the stats window once it has elapsed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.simTime) {
		return
	}

	stats := g.collector.Flush(g.tick, g.simTime, g.sampleSnapshot())
	perfStats := g.perf.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.onStats != nil {
		g.onStats(stats)
	}

	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sampleSnapshot collects the arena state for the closing window.
func (g *Game) sampleSnapshot() telemetry.Snapshot {
	var snap telemetry.Snapshot

	eq := g.enemyFilter.Query()
	for eq.Next() {
		_, _, armor := eq.Get()
		snap.Enemies++
		snap.EnemyLife = append(snap.EnemyLife, float64(armor.Life))
	}

	lq := g.lootFilter.Query()
	for lq.Next() {
		snap.Loot++
	}

	mq := g.missileFilter.Query()
	for mq.Next() {
		snap.Missiles++
	}

	if p, ok := lookup(g.world, g.progressions, g.ship); ok {
		snap.Level = p.Level
		snap.XP = p.XP
	}

	return snap
}

// Progress returns the ship's level, xp and the xp needed to level up.
// next is 0 at the maximum level.
func (g *Game) Progress() (level, xp, next uint32) {
	p, ok := lookup(g.world, g.progressions, g.ship)
	if !ok {
		return 0, 0, 0
	}
	table := g.cfg.Progression
	return p.Level, p.XP, p.NextThreshold(table.Thresholds, table.MaxLevel)
}
