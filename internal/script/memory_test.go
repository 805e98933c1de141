package script

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"stagechat/internal/domain"
)

func TestMemorySourceList(t *testing.T) {
	src := NewMemorySource(zap.NewNop().Sugar())
	ctx := context.Background()

	scripts, err := src.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(scripts) < 2 {
		t.Fatalf("expected at least 2 seeded scripts, got %d", len(scripts))
	}
	for _, s := range scripts {
		if s.Lines == 0 {
			t.Fatalf("script %s has no lines", s.ID)
		}
	}
}

func TestMemorySourceGet(t *testing.T) {
	src := NewMemorySource(zap.NewNop().Sugar())
	ctx := context.Background()

	tests := []struct {
		id      string
		wantErr error
	}{
		{"launch-room", nil},
		{"support-room", nil},
		{"nonexistent", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			sc, err := src.Get(ctx, tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sc.ID != tt.id {
				t.Fatalf("expected id %s, got %s", tt.id, sc.ID)
			}
			if len(sc.Personas) == 0 || len(sc.Messages) == 0 {
				t.Fatal("seeded script is incomplete")
			}
		})
	}
}

func TestMemorySourceAdd(t *testing.T) {
	src := NewMemorySource(zap.NewNop().Sugar())
	ctx := context.Background()

	sc := &domain.Script{
		ID:   "custom",
		Name: "Custom",
		Messages: []domain.ScriptedMessage{
			{ID: "m1", SpeakerID: "x", Text: "hi", PostDelay: -5},
		},
	}
	src.Add(sc)

	got, err := src.Get(ctx, "custom")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Messages[0].PostDelay != 0 {
		t.Fatalf("expected negative post-delay clamped to 0, got %s", got.Messages[0].PostDelay)
	}
}

func TestSeededReplyReferencesPointBackwards(t *testing.T) {
	src := NewMemorySource(zap.NewNop().Sugar())
	ctx := context.Background()

	sc, err := src.Get(ctx, "launch-room")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	seen := make(map[string]bool)
	for _, m := range sc.Messages {
		if m.ReplyToID != "" && !seen[m.ReplyToID] {
			t.Fatalf("message %s replies to %s which does not appear earlier", m.ID, m.ReplyToID)
		}
		seen[m.ID] = true
	}
}
