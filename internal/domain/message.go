// Package domain defines the core types and interfaces for the chat
// playback simulator. All other packages depend on domain; domain depends
// on nothing.
package domain

import "time"

// ScriptedMessage is a single authored chat line, written ahead of time.
// Scripted messages are immutable input to the playback engine.
type ScriptedMessage struct {
	ID        string
	SpeakerID string
	Text      string
	// PostDelay is how long the engine holds after the message is shown
	// before moving to the next one. Never negative.
	PostDelay time.Duration
	// ReplyToID optionally references an earlier message in the stream.
	// A reference that hasn't been revealed yet is treated as absent.
	ReplyToID string
}

// Origin tags where a visible message came from.
type Origin int

const (
	// OriginScripted means the message was revealed from the authored script.
	OriginScripted Origin = iota
	// OriginAmbientSystem is a synthetic system notice from the ambient generator.
	OriginAmbientSystem
	// OriginAmbientPromo is a synthetic promotional message ("gold review").
	OriginAmbientPromo
	// OriginUser means the operator typed the message live.
	OriginUser
)

// String returns a human-readable origin.
func (o Origin) String() string {
	switch o {
	case OriginScripted:
		return "scripted"
	case OriginAmbientSystem:
		return "ambient-system"
	case OriginAmbientPromo:
		return "ambient-promo"
	case OriginUser:
		return "user"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the origin as its string form so transcript
// snapshots stay readable.
func (o Origin) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

// ReplySnapshot is a denormalized copy of the message a reply points at,
// resolved once at reveal time so the visible list is self-contained.
type ReplySnapshot struct {
	ID        string `json:"id"`
	SpeakerID string `json:"speaker_id"`
	Text      string `json:"text"`
}

// LiveMessage is a message that has become visible. It is created the
// instant the engine (or the operator) reveals it and is immutable
// afterwards; only a full session reset destroys it.
type LiveMessage struct {
	ID        string         `json:"id"`
	SpeakerID string         `json:"speaker_id"`
	Text      string         `json:"text"`
	Origin    Origin         `json:"origin"`
	Timestamp time.Time      `json:"timestamp"`
	ReplyTo   *ReplySnapshot `json:"reply_to,omitempty"`
}
