package typing

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestEstimateBounds(t *testing.T) {
	est := New()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"short", "gg"},
		{"sentence", "just hit level 40, this thing is actually insane"},
		{"wall of text", strings.Repeat("very long message ", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Jitter makes the result nondeterministic; sample a few times.
			for i := 0; i < 20; i++ {
				d := est.Estimate(tt.text)
				if d < 0 {
					t.Fatalf("negative delay %s for %q", d, tt.text)
				}
				if d > DefaultConfig().MaxTyping {
					t.Fatalf("delay %s exceeds cap for %q", d, tt.text)
				}
			}
		})
	}
}

func TestEstimateMonotonicWithoutJitter(t *testing.T) {
	// Pin the jitter band to 1.0 so length alone drives the delay.
	cfg := DefaultConfig()
	cfg.JitterLow = 1.0
	cfg.JitterHigh = 1.0
	cfg.MaxTyping = time.Hour // don't clamp in this test
	est := New(WithConfig(cfg), WithRand(rand.New(rand.NewSource(1))))

	prev := time.Duration(-1)
	for _, n := range []int{0, 1, 5, 20, 80, 320} {
		d := est.Estimate(strings.Repeat("x", n))
		if d < prev {
			t.Fatalf("delay decreased: %d chars -> %s, previous %s", n, d, prev)
		}
		prev = d
	}
}

func TestEstimateBaseThinking(t *testing.T) {
	cfg := DefaultConfig()
	cfg.JitterLow = 1.0
	cfg.JitterHigh = 1.0
	est := New(WithConfig(cfg))

	if got := est.Estimate(""); got != cfg.BaseThinking {
		t.Fatalf("empty text: expected %s, got %s", cfg.BaseThinking, got)
	}
}

func TestEstimateClampsToMax(t *testing.T) {
	est := New()
	text := strings.Repeat("a", 100000)

	if got := est.Estimate(text); got != DefaultConfig().MaxTyping {
		t.Fatalf("expected clamp to %s, got %s", DefaultConfig().MaxTyping, got)
	}
}
