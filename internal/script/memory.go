// Package script provides authored-script sources: seeded demos, YAML
// files on disk, and a local random-phrase composer.
package script

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"stagechat/internal/domain"
)

// Compile-time interface check.
var _ domain.ScriptSource = (*MemorySource)(nil)

// MemorySource holds scripts in memory. Safe for concurrent reads.
type MemorySource struct {
	mu      sync.RWMutex
	scripts map[string]*domain.Script
	log     *zap.SugaredLogger
}

// NewMemorySource creates a script source preloaded with the built-in
// demo conversations.
func NewMemorySource(log *zap.SugaredLogger) *MemorySource {
	src := &MemorySource{
		scripts: make(map[string]*domain.Script),
		log:     log,
	}
	src.seed()
	return src
}

// List returns summaries of all available scripts.
func (s *MemorySource) List(ctx context.Context) ([]domain.ScriptSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ScriptSummary, 0, len(s.scripts))
	for _, sc := range s.scripts {
		out = append(out, domain.ScriptSummary{
			ID:       sc.ID,
			Name:     sc.Name,
			Topic:    sc.Topic,
			Speakers: len(sc.Personas),
			Lines:    len(sc.Messages),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	s.log.Debugf("listing scripts, count=%d", len(out))
	return out, nil
}

// Get returns a script by ID.
func (s *MemorySource) Get(ctx context.Context, id string) (*domain.Script, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sc, ok := s.scripts[id]
	if !ok {
		s.log.Debugf("script not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return sc, nil
}

// Add registers a script, overwriting any script with the same ID. Used
// for loaded files and generator output.
func (s *MemorySource) Add(sc *domain.Script) {
	sc.Normalize()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripts[sc.ID] = sc
	s.log.Debugf("registered script %s (%d lines)", sc.ID, len(sc.Messages))
}
