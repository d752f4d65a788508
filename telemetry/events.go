// Package telemetry tracks gameplay counters and tick performance and
// writes them as CSV.
package telemetry

// EventType identifies a gameplay occurrence counted by the Collector.
type EventType uint8

const (
	EventShot EventType = iota
	EventHit
	EventKill
	EventLootDropped
	EventLootPicked
	EventLevelUp
	EventCleanupWarning
	eventTypeCount
)

func (t EventType) String() string {
	switch t {
	case EventShot:
		return "shot"
	case EventHit:
		return "hit"
	case EventKill:
		return "kill"
	case EventLootDropped:
		return "loot_dropped"
	case EventLootPicked:
		return "loot_picked"
	case EventLevelUp:
		return "level_up"
	case EventCleanupWarning:
		return "cleanup_warning"
	}
	return "unknown"
}
