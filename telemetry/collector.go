package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec float64

	// Current window tracking
	windowStartTick int32
	windowStartTime float64

	counts   [eventTypeCount]int
	xpGained uint64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
func NewCollector(windowDurationSec float64) *Collector {
	if windowDurationSec <= 0 {
		windowDurationSec = 10
	}
	return &Collector{windowDurationSec: windowDurationSec}
}

// Record counts one event of the given type.
func (c *Collector) Record(t EventType) {
	c.counts[t]++
}

// RecordXP adds experience granted to the player.
func (c *Collector) RecordXP(xp uint32) {
	c.xpGained += uint64(xp)
}

// Count returns the number of events of type t in the current window.
func (c *Collector) Count(t EventType) int {
	return c.counts[t]
}

// ShouldFlush returns true if the window has lasted long enough.
func (c *Collector) ShouldFlush(simTime float64) bool {
	return simTime-c.windowStartTime >= c.windowDurationSec
}

// Snapshot holds the arena state sampled at window end.
type Snapshot struct {
	Enemies   int
	Loot      int
	Missiles  int
	Level     uint32
	XP        uint32
	EnemyLife []float64 // remaining life of every enemy
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, simTime float64, snap Snapshot) WindowStats {
	var hitRate, killRate float64
	if shots := c.counts[EventShot]; shots > 0 {
		hitRate = float64(c.counts[EventHit]) / float64(shots)
	}
	if hits := c.counts[EventHit]; hits > 0 {
		killRate = float64(c.counts[EventKill]) / float64(hits)
	}

	lifeMean, lifeP50, lifeP90 := ComputeStats(snap.EnemyLife)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      simTime,

		Enemies:  snap.Enemies,
		Loot:     snap.Loot,
		Missiles: snap.Missiles,
		Level:    snap.Level,
		XP:       snap.XP,

		Shots:           c.counts[EventShot],
		Hits:            c.counts[EventHit],
		Kills:           c.counts[EventKill],
		LootDropped:     c.counts[EventLootDropped],
		LootPicked:      c.counts[EventLootPicked],
		LevelUps:        c.counts[EventLevelUp],
		CleanupWarnings: c.counts[EventCleanupWarning],
		XPGained:        c.xpGained,
		HitRate:         hitRate,
		KillRate:        killRate,

		EnemyLifeMean: lifeMean,
		EnemyLifeP50:  lifeP50,
		EnemyLifeP90:  lifeP90,
	}

	c.counts = [eventTypeCount]int{}
	c.xpGained = 0
	c.windowStartTick = currentTick
	c.windowStartTime = simTime

	return stats
}
