package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"stagechat/internal/domain"
)

func TestAppendAndTranscript(t *testing.T) {
	store := NewMemoryStore(zap.NewNop().Sugar())
	ctx := context.Background()

	msgs := []domain.LiveMessage{
		{ID: "a", SpeakerID: "user", Text: "one", Origin: domain.OriginUser, Timestamp: time.Now()},
		{ID: "b", SpeakerID: "user", Text: "two", Origin: domain.OriginUser, Timestamp: time.Now()},
	}
	for _, m := range msgs {
		if err := store.Append(ctx, "sess-1", m); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := store.Transcript(ctx, "sess-1")
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected transcript: %+v", got)
	}

	if _, err := store.Transcript(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReplaceAndSessions(t *testing.T) {
	store := NewMemoryStore(zap.NewNop().Sugar())
	ctx := context.Background()

	store.Append(ctx, "b-sess", domain.LiveMessage{ID: "x"})
	store.Replace(ctx, "a-sess", []domain.LiveMessage{{ID: "y"}, {ID: "z"}})

	ids, err := store.Sessions(ctx)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a-sess" || ids[1] != "b-sess" {
		t.Fatalf("unexpected session list: %v", ids)
	}

	got, _ := store.Transcript(ctx, "a-sess")
	if len(got) != 2 {
		t.Fatalf("expected replaced transcript of 2, got %d", len(got))
	}
}

func TestDump(t *testing.T) {
	store := NewMemoryStore(zap.NewNop().Sugar())
	ctx := context.Background()
	store.Append(ctx, "sess", domain.LiveMessage{
		ID: "m", SpeakerID: "system", Text: "notice",
		Origin: domain.OriginAmbientSystem, Timestamp: time.Now(),
	})

	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := store.Dump(path); err != nil {
		t.Fatalf("dump: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var decoded map[string][]map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if decoded["sess"][0]["origin"] != "ambient-system" {
		t.Fatalf("origin should serialize as a string, got %v", decoded["sess"][0]["origin"])
	}
}
