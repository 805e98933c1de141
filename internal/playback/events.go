package playback

import "stagechat/internal/domain"

// EventKind identifies what changed in the engine.
type EventKind int

const (
	// EventMessageAdded fires when any message joins the visible list.
	EventMessageAdded EventKind = iota
	// EventTypingChanged fires when the typing set changes.
	EventTypingChanged
	// EventStateChanged fires on play, pause, reset, and finish.
	EventStateChanged
	// EventRestricted fires when a gated feature is invoked.
	EventRestricted
)

// String returns a human-readable event kind.
func (k EventKind) String() string {
	switch k {
	case EventMessageAdded:
		return "message_added"
	case EventTypingChanged:
		return "typing_changed"
	case EventStateChanged:
		return "state_changed"
	case EventRestricted:
		return "restricted"
	default:
		return "unknown"
	}
}

// Event is a wake-up signal delivered on the engine's event channel.
// Consumers should re-read Snapshot for the full state.
type Event struct {
	Kind    EventKind
	Message *domain.LiveMessage
	// Restriction is set for EventRestricted.
	Restriction *Restriction
}
