// Package telemetry provides gameplay statistics, per-game summaries and
// frame timing, with optional CSV output.
package telemetry

// EventType identifies telemetry events.
type EventType uint8

const (
	EventShot EventType = iota
	EventHit
	EventExtinguished
	EventEscaped
	EventSteam
)

// String returns the event name used in logs.
func (t EventType) String() string {
	switch t {
	case EventShot:
		return "shot"
	case EventHit:
		return "hit"
	case EventExtinguished:
		return "extinguished"
	case EventEscaped:
		return "escaped"
	case EventSteam:
		return "steam"
	}
	return "unknown"
}

// Event represents a single telemetry event.
type Event struct {
	Type  EventType
	Frame int32
	Count int // Number of occurrences folded into this event

	// Optional fields depending on event type
	Serial uint32  // Enemy serial for hits
	Amount float32 // Droplet speed for shots
}

// NewShotEvent creates a droplet fired event.
func NewShotEvent(frame int32, speed float32) Event {
	return Event{Type: EventShot, Frame: frame, Count: 1, Amount: speed}
}

// NewHitEvent creates a droplet hit event.
func NewHitEvent(frame int32, serial uint32) Event {
	return Event{Type: EventHit, Frame: frame, Count: 1, Serial: serial}
}

// NewCullEvents creates removal events for one cull pass. Zero counts are omitted.
func NewCullEvents(frame int32, extinguished, escaped int) []Event {
	var events []Event
	if extinguished > 0 {
		events = append(events, Event{Type: EventExtinguished, Frame: frame, Count: extinguished})
	}
	if escaped > 0 {
		events = append(events, Event{Type: EventEscaped, Frame: frame, Count: escaped})
	}
	return events
}

// NewSteamEvent creates a steam release event.
func NewSteamEvent(frame int32, puffs int) Event {
	return Event{Type: EventSteam, Frame: frame, Count: puffs}
}
