package game

import (
	"github.com/pthm-cable/kotlot/telemetry"
)

// Options holds configuration for game initialization.
type Options struct {
	Seed     int64
	Cues     Cues                     // Defaults to LogCues
	Output   *telemetry.OutputManager // Nil disables CSV output
	LogStats bool                     // Log every flushed stats window

	// StatsCallback, if set, receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// DefaultOptions returns the options used by a plain headless run.
func DefaultOptions() Options {
	return Options{Seed: 42}
}
