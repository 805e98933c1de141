package script

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagechat/internal/domain"
)

const sampleYAML = `id: night-room
name: Night Room
topic: trigger timing
personas:
  - id: zed
    display_name: Zed
    avatar: Z
    archetype: veteran
  - id: pip
    display_name: pip
    archetype: newcomer
messages:
  - id: n1
    speaker: zed
    text: "anyone awake?"
    post_delay_seconds: 1.5
  - speaker: pip
    text: "just got in"
    post_delay_seconds: 2
    reply_to: n1
  - speaker: zed
    text: "perfect timing"
    post_delay_seconds: -3
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScriptFile(t *testing.T) {
	sc, err := Load(writeTemp(t, "night.yaml", sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "night-room", sc.ID)
	assert.Equal(t, "trigger timing", sc.Topic)
	require.Len(t, sc.Personas, 2)
	assert.Equal(t, domain.ArchetypeVeteran, sc.Personas[0].Archetype)

	require.Len(t, sc.Messages, 3)
	assert.Equal(t, "n1", sc.Messages[0].ID)
	assert.Equal(t, 1500*time.Millisecond, sc.Messages[0].PostDelay)
	assert.Equal(t, "m2", sc.Messages[1].ID, "missing IDs are assigned positionally")
	assert.Equal(t, "n1", sc.Messages[1].ReplyToID)
	assert.Equal(t, time.Duration(0), sc.Messages[2].PostDelay, "negative delay clamps to zero")
}

func TestLoadScriptFileDefaultsIDFromFilename(t *testing.T) {
	sc, err := Load(writeTemp(t, "weekend.yaml", "messages:\n  - speaker: a\n    text: hi\n"))
	require.NoError(t, err)
	assert.Equal(t, "weekend", sc.ID)
	assert.Equal(t, "weekend", sc.Name)
}

func TestLoadScriptFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "messages: [unclosed"},
		{"no messages", "name: Empty\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTemp(t, "bad.yaml", tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoadScriptFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
