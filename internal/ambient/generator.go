package ambient

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"stagechat/internal/domain"
)

// Config holds the injection tuning. The split and tick interval are
// product-tuned, not invariants; override them via the config file.
type Config struct {
	// Tick is how often the generator rolls for an injection.
	Tick time.Duration
	// PromoChance is the probability of a gold review per tick.
	PromoChance float64
	// NoticeChance is the probability of a system notice per tick.
	NoticeChance float64
}

// DefaultConfig returns the production tuning: one roll every 25 seconds,
// 20% review, 10% notice, 70% nothing.
func DefaultConfig() Config {
	return Config{
		Tick:         25 * time.Second,
		PromoChance:  0.2,
		NoticeChance: 0.1,
	}
}

// InjectFunc receives a synthetic message. The generator never touches
// the playback cursor; the engine appends the message directly.
type InjectFunc func(origin domain.Origin, text string)

// Option configures the generator.
type Option func(*Generator)

// WithConfig replaces the default tuning.
func WithConfig(cfg Config) Option {
	return func(g *Generator) {
		g.cfg = cfg
	}
}

// WithRand sets the random source, mainly for deterministic tests.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) {
		g.rnd = rnd
	}
}

// Generator injects synthetic system and promotional messages on a fixed
// tick while playback is active. It must be stopped whenever playback is
// not in the playing state; resuming starts a fresh tick cycle with no
// missed-tick catch-up.
type Generator struct {
	inject InjectFunc
	log    *zap.SugaredLogger
	cfg    Config
	rnd    *rand.Rand

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

// New creates an ambient generator with the given injection sink.
func New(inject InjectFunc, log *zap.SugaredLogger, opts ...Option) *Generator {
	g := &Generator{
		inject: inject,
		log:    log,
		cfg:    DefaultConfig(),
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Start begins the tick loop. Non-blocking. Calling Start on a running
// generator is a no-op.
func (g *Generator) Start(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running {
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	g.running = true

	go g.loop(childCtx)

	g.log.Debugf("ambient generator started (tick=%s)", g.cfg.Tick)
}

// Stop tears down the tick loop. Pending ticks scheduled before Stop
// never inject. Calling Stop on a stopped generator is a no-op.
func (g *Generator) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.running {
		return
	}

	g.cancel()
	g.running = false
	g.log.Debugf("ambient generator stopped")
}

// Running reports whether the tick loop is active.
func (g *Generator) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// loop is the main tick loop.
func (g *Generator) loop(ctx context.Context) {
	ticker := time.NewTicker(g.cfg.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.tick(ctx)
		}
	}
}

// tick rolls once and maybe injects. The roll uses a single uniform
// sample so the promo and notice bands never overlap.
func (g *Generator) tick(ctx context.Context) {
	g.mu.Lock()
	if !g.running {
		g.mu.Unlock()
		return
	}
	r := g.rnd.Float64()
	var origin domain.Origin
	var text string
	switch {
	case r > 1-g.cfg.PromoChance:
		origin, text = domain.OriginAmbientPromo, pickReview(g.rnd)
	case r < g.cfg.NoticeChance:
		origin, text = domain.OriginAmbientSystem, pickNotice(g.rnd)
	default:
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()

	// Re-check cancellation; Stop may have raced the tick.
	select {
	case <-ctx.Done():
		return
	default:
	}

	g.log.Debugf("ambient inject: origin=%s text=%q", origin, text)
	g.inject(origin, text)
}
