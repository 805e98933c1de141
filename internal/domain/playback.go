package domain

// PlaybackStatus tracks the lifecycle of a playback session.
type PlaybackStatus int

const (
	StatusIdle PlaybackStatus = iota
	StatusPlaying
	StatusPaused
	StatusFinished
)

// String returns a human-readable playback status.
func (s PlaybackStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}
