package playback

import (
	"sort"

	"stagechat/internal/domain"
)

// Snapshot is a read-only copy of the engine state for rendering and
// assertions. The slices are fresh copies; the engine remains the single
// writer of its own state.
type Snapshot struct {
	Status      domain.PlaybackStatus
	Cursor      int
	Messages    []domain.LiveMessage
	Typing      []domain.Persona
	ReplyTarget *domain.ReplySnapshot
}

// Playing reports whether messages are currently advancing.
func (s Snapshot) Playing() bool {
	return s.Status == domain.StatusPlaying
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	msgs := make([]domain.LiveMessage, len(e.visible))
	copy(msgs, e.visible)

	ids := make([]string, 0, len(e.typingSet))
	for id := range e.typingSet {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	typing := make([]domain.Persona, 0, len(ids))
	for _, id := range ids {
		typing = append(typing, e.PersonaFor(id))
	}

	return Snapshot{
		Status:      e.status,
		Cursor:      e.cursor,
		Messages:    msgs,
		Typing:      typing,
		ReplyTarget: e.resolveReplyLocked(e.replyTarget),
	}
}
