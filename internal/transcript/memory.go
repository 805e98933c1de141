// Package transcript records the visible message stream of playback
// sessions. Persistence is best effort: the in-memory store is the
// source of truth and the JSON snapshot is a convenience export.
package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"

	"stagechat/internal/domain"
)

// Compile-time interface check.
var _ domain.TranscriptStore = (*MemoryStore)(nil)

// MemoryStore keeps transcripts in memory, keyed by session ID. Safe for
// concurrent access.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]domain.LiveMessage
	log      *zap.SugaredLogger
}

// NewMemoryStore creates an empty transcript store.
func NewMemoryStore(log *zap.SugaredLogger) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]domain.LiveMessage),
		log:      log,
	}
}

// Append records one message for a session.
func (s *MemoryStore) Append(ctx context.Context, sessionID string, msg domain.LiveMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = append(s.sessions[sessionID], msg)
	s.log.Debugf("transcript: session=%s appended %s message (%d total)", sessionID, msg.Origin, len(s.sessions[sessionID]))
	return nil
}

// Replace overwrites a session's transcript with the full visible list,
// e.g. on shutdown when the engine snapshot is authoritative.
func (s *MemoryStore) Replace(ctx context.Context, sessionID string, msgs []domain.LiveMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]domain.LiveMessage, len(msgs))
	copy(cp, msgs)
	s.sessions[sessionID] = cp
	return nil
}

// Transcript returns the recorded messages for a session.
func (s *MemoryStore) Transcript(ctx context.Context, sessionID string) ([]domain.LiveMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]domain.LiveMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

// Sessions lists all recorded session IDs.
func (s *MemoryStore) Sessions(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// Dump writes every transcript to a JSON file. Errors are returned but
// callers are expected to treat them as non-fatal.
func (s *MemoryStore) Dump(path string) error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.sessions, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("transcript: encode snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("transcript: write snapshot: %w", err)
	}
	s.log.Infof("transcript snapshot written to %s", path)
	return nil
}
