package game

import "log/slog"

// Cue names understood by the audio collaborator.
const (
	CueLaser          = "laser"
	CueExplosionHit   = "explosion_hit"
	CueExplosionFinal = "explosion_final"
	CueLootPickup     = "loot_pickup"
)

// Cues plays fire-and-forget feedback such as sounds.
type Cues interface {
	Play(name string)
}

// LogCues is the headless cue sink. It logs every cue at debug level.
type LogCues struct{}

func (LogCues) Play(name string) {
	slog.Debug("cue", "name", name)
}
