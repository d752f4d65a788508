package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.0},
		{"clamped above", []float64{1, 2, 3}, 1.5, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeStatsUnsortedInput(t *testing.T) {
	values := []float64{3, 1, 2}
	mean, p50, p90 := ComputeStats(values)

	if math.Abs(mean-2) > 1e-9 || p50 != 2 || p90 != 3 {
		t.Errorf("ComputeStats = (%v, %v, %v), want (2, 2, 3)", mean, p50, p90)
	}
	if values[0] != 3 {
		t.Error("input slice was reordered")
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(5)

	for i := 0; i < 4; i++ {
		c.Record(EventShot)
	}
	c.Record(EventHit)
	c.Record(EventHit)
	c.Record(EventKill)
	c.RecordXP(2)

	if c.ShouldFlush(4.9) {
		t.Fatal("flush requested before window elapsed")
	}
	if !c.ShouldFlush(5) {
		t.Fatal("flush not requested after window elapsed")
	}

	stats := c.Flush(300, 5, Snapshot{Enemies: 3, Level: 1, EnemyLife: []float64{1, 3, 3}})
	if stats.Shots != 4 || stats.Hits != 2 || stats.Kills != 1 || stats.XPGained != 2 {
		t.Errorf("unexpected counters: %+v", stats)
	}
	if stats.HitRate != 0.5 || stats.KillRate != 0.5 {
		t.Errorf("rates = (%v, %v), want (0.5, 0.5)", stats.HitRate, stats.KillRate)
	}
	if stats.EnemyLifeP50 != 3 {
		t.Errorf("EnemyLifeP50 = %v, want 3", stats.EnemyLifeP50)
	}

	// Counters reset and the next window starts at the flush time.
	if c.Count(EventShot) != 0 {
		t.Error("counters not reset after flush")
	}
	if c.ShouldFlush(9) {
		t.Error("new window should start at the previous flush")
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for i := int32(1); i <= 2; i++ {
		if err := om.WriteTelemetry(WindowStats{WindowEndTick: i * 60, Kills: int(i)}); err != nil {
			t.Fatalf("WriteTelemetry: %v", err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "run_id,window_end,") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], om.RunID()+",60,") {
		t.Errorf("row not stamped with run id: %q", lines[1])
	}
}

func TestNilOutputManager(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("expected disabled output, got %v, %v", om, err)
	}
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("nil WriteTelemetry: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}
