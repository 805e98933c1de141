package ambient

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stagechat/internal/domain"
)

// collectingSink captures injected messages for assertions.
type collectingSink struct {
	mu   sync.Mutex
	msgs []domain.LiveMessage
}

func (s *collectingSink) inject(origin domain.Origin, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, domain.LiveMessage{Origin: origin, Text: text})
}

func (s *collectingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.msgs)
}

func (s *collectingSink) byOrigin(origin domain.Origin) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.msgs {
		if m.Origin == origin {
			n++
		}
	}
	return n
}

func TestGeneratorInjectsOverTime(t *testing.T) {
	sink := &collectingSink{}
	cfg := Config{Tick: 5 * time.Millisecond, PromoChance: 0.2, NoticeChance: 0.1}
	gen := New(sink.inject, zap.NewNop().Sugar(),
		WithConfig(cfg),
		WithRand(rand.New(rand.NewSource(42))),
	)

	gen.Start(context.Background())
	defer gen.Stop()

	// ~60 ticks; at a 30% combined rate some injections are certain
	// for this seed.
	time.Sleep(300 * time.Millisecond)
	gen.Stop()

	require.Greater(t, sink.count(), 0, "expected at least one injection")
	total := sink.byOrigin(domain.OriginAmbientPromo) + sink.byOrigin(domain.OriginAmbientSystem)
	assert.Equal(t, sink.count(), total, "every injection must be promo or notice")
}

func TestGeneratorStopsInjecting(t *testing.T) {
	sink := &collectingSink{}
	cfg := Config{Tick: 5 * time.Millisecond, PromoChance: 1.0, NoticeChance: 0}
	gen := New(sink.inject, zap.NewNop().Sugar(),
		WithConfig(cfg),
		WithRand(rand.New(rand.NewSource(7))),
	)

	gen.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	gen.Stop()
	require.False(t, gen.Running())

	before := sink.count()
	require.Greater(t, before, 0)

	// No late ticks may land after Stop.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, sink.count(), "injection after Stop")
}

func TestGeneratorStartIsIdempotent(t *testing.T) {
	sink := &collectingSink{}
	gen := New(sink.inject, zap.NewNop().Sugar(),
		WithConfig(Config{Tick: time.Hour, PromoChance: 0.2, NoticeChance: 0.1}),
	)

	gen.Start(context.Background())
	gen.Start(context.Background())
	require.True(t, gen.Running())
	gen.Stop()
	gen.Stop()
	require.False(t, gen.Running())
}

func TestGeneratorSplit(t *testing.T) {
	// With the full band given to notices, every injection is a notice.
	sink := &collectingSink{}
	cfg := Config{Tick: 2 * time.Millisecond, PromoChance: 0, NoticeChance: 1.0}
	gen := New(sink.inject, zap.NewNop().Sugar(),
		WithConfig(cfg),
		WithRand(rand.New(rand.NewSource(3))),
	)

	gen.Start(context.Background())
	time.Sleep(60 * time.Millisecond)
	gen.Stop()

	require.Greater(t, sink.count(), 5)
	assert.Equal(t, sink.count(), sink.byOrigin(domain.OriginAmbientSystem))
	assert.Zero(t, sink.byOrigin(domain.OriginAmbientPromo))
}
