package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_TracksPhases(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseMovement)
		time.Sleep(50 * time.Microsecond)
		pc.StartPhase(PhaseCollision)
		time.Sleep(100 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	for _, phase := range []string{PhaseMovement, PhaseCollision} {
		if _, ok := stats.PhaseAvg[phase]; !ok {
			t.Errorf("expected %s phase to be tracked", phase)
		}
	}
	if stats.PhasePct[PhaseCollision] <= stats.PhasePct[PhaseMovement] {
		t.Errorf("collision (%v%%) should outweigh movement (%v%%)",
			stats.PhasePct[PhaseCollision], stats.PhasePct[PhaseMovement])
	}
}

func TestPerfCollector_Quantiles(t *testing.T) {
	pc := NewPerfCollector(20)

	for i := 0; i < 20; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseEvents)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.P50TickDuration > stats.P90TickDuration {
		t.Errorf("p50 %v > p90 %v", stats.P50TickDuration, stats.P90TickDuration)
	}
	if stats.P90TickDuration > stats.MaxTickDuration {
		t.Errorf("p90 %v > max %v", stats.P90TickDuration, stats.MaxTickDuration)
	}
	if stats.MinTickDuration > stats.P50TickDuration {
		t.Errorf("min %v > p50 %v", stats.MinTickDuration, stats.P50TickDuration)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 12; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseGhosts)
		pc.EndTick()
	}

	if pc.sampleCount != 5 {
		t.Errorf("sampleCount = %d, want 5", pc.sampleCount)
	}
	if stats := pc.Stats(); stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 250 * time.Microsecond,
		P90TickDuration: 400 * time.Microsecond,
		PhasePct:        map[string]float64{PhaseEvents: 40, PhaseGhosts: 10},
	}

	rec := stats.ToCSV(120)
	if rec.WindowEnd != 120 || rec.AvgTickUS != 250 || rec.P90TickUS != 400 {
		t.Errorf("unexpected timing columns: %+v", rec)
	}
	if rec.EventsPct != 40 || rec.GhostsPct != 10 || rec.TweenPct != 0 {
		t.Errorf("unexpected phase columns: %+v", rec)
	}
}
