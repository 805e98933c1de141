package script

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagechat/internal/domain"
)

func TestComposeSubstitutesTopic(t *testing.T) {
	personas := []domain.Persona{
		{ID: "a", DisplayName: "A", Archetype: domain.ArchetypeEnthusiast},
		{ID: "b", DisplayName: "B", Archetype: domain.ArchetypeSkeptic},
	}
	sc := Compose("wallhack", personas, 12, rand.New(rand.NewSource(9)))

	require.Len(t, sc.Messages, 12)
	assert.Equal(t, "wallhack", sc.Topic)
	for _, m := range sc.Messages {
		assert.NotContains(t, m.Text, "{topic}", "placeholder must be substituted at generation time")
	}
	// At least one pool line actually mentions the topic.
	joined := ""
	for _, m := range sc.Messages {
		joined += m.Text + "\n"
	}
	assert.True(t, strings.Contains(joined, "wallhack"))
}

func TestComposeDelaysAndReplies(t *testing.T) {
	personas := []domain.Persona{{ID: "a", DisplayName: "A"}}
	sc := Compose("esp", personas, 30, rand.New(rand.NewSource(4)))

	seen := make(map[string]bool)
	for _, m := range sc.Messages {
		require.GreaterOrEqual(t, m.PostDelay, time.Second)
		require.Less(t, m.PostDelay, 5*time.Second)
		if m.ReplyToID != "" {
			assert.True(t, seen[m.ReplyToID], "replies must point at earlier messages")
		}
		seen[m.ID] = true
	}
}

func TestComposeDefaults(t *testing.T) {
	sc := Compose("macro", nil, 0, rand.New(rand.NewSource(1)))
	assert.Len(t, sc.Messages, 8)
	require.Len(t, sc.Personas, 1)
	assert.Equal(t, "guest", sc.Personas[0].ID)
}
