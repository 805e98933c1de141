// Package typing estimates how long a simulated user would take to type
// a message. The goal is plausibility, not per-character realism: short
// messages still get a thinking pause, very long ones are capped so the
// viewer never waits absurdly long.
package typing

import (
	"math/rand"
	"sync"
	"time"
)

// Config holds the tuning constants for the estimator.
type Config struct {
	// CharsPerSecond is the simulated typing speed.
	CharsPerSecond float64
	// BaseThinking is a flat pause added before any typing happens.
	BaseThinking time.Duration
	// MaxTyping caps the total delay regardless of message length.
	MaxTyping time.Duration
	// JitterLow and JitterHigh bound the multiplicative jitter band.
	JitterLow  float64
	JitterHigh float64
}

// DefaultConfig returns the tuning used by the product.
func DefaultConfig() Config {
	return Config{
		CharsPerSecond: 18,
		BaseThinking:   600 * time.Millisecond,
		MaxTyping:      4500 * time.Millisecond,
		JitterLow:      0.85,
		JitterHigh:     1.15,
	}
}

// Option configures the estimator.
type Option func(*Estimator)

// WithConfig replaces the default tuning constants.
func WithConfig(cfg Config) Option {
	return func(e *Estimator) {
		e.cfg = cfg
	}
}

// WithRand sets the random source, mainly for deterministic tests.
func WithRand(rnd *rand.Rand) Option {
	return func(e *Estimator) {
		e.rnd = rnd
	}
}

// Estimator maps message text to a randomized human-plausible typing
// delay. Safe for concurrent use.
type Estimator struct {
	mu  sync.Mutex
	cfg Config
	rnd *rand.Rand
}

// New creates an estimator with the default tuning.
func New(opts ...Option) *Estimator {
	e := &Estimator{
		cfg: DefaultConfig(),
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate returns the typing delay for the given text. Any input length,
// including zero, yields a delay within [0, MaxTyping].
func (e *Estimator) Estimate(text string) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	base := time.Duration(float64(len(text))/e.cfg.CharsPerSecond*float64(time.Second)) + e.cfg.BaseThinking

	span := e.cfg.JitterHigh - e.cfg.JitterLow
	jitter := e.cfg.JitterLow + e.rnd.Float64()*span

	d := time.Duration(float64(base) * jitter)
	if d < 0 {
		d = 0
	}
	if d > e.cfg.MaxTyping {
		d = e.cfg.MaxTyping
	}
	return d
}
