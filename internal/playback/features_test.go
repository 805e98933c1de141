package playback

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagechat/internal/domain"
)

func TestRequestFeatureYieldsOneRestriction(t *testing.T) {
	e := newTestEngine(t, testScript(time.Millisecond), time.Millisecond)

	r, err := e.RequestFeature(FeatureAttachments)
	require.NoError(t, err)
	assert.Equal(t, FeatureAttachments, r.Feature)
	assert.Contains(t, r.Notice, "Attachments")

	// Exactly one restriction event, carrying the feature name, and no
	// side effect on the message stream.
	var restricted []Restriction
drain:
	for {
		select {
		case ev := <-e.Events():
			if ev.Kind == EventRestricted {
				restricted = append(restricted, *ev.Restriction)
			}
		default:
			break drain
		}
	}
	require.Len(t, restricted, 1)
	assert.Equal(t, FeatureAttachments, restricted[0].Feature)
	assert.Empty(t, e.Snapshot().Messages)
}

func TestRequestFeatureUnknown(t *testing.T) {
	e := newTestEngine(t, testScript(time.Millisecond), time.Millisecond)

	_, err := e.RequestFeature(Feature("Teleport"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFeatureUnknown))
}

func TestRequestFeatureWorksWhilePlaying(t *testing.T) {
	e := newTestEngine(t, testScript(200*time.Millisecond), time.Millisecond)
	e.Play()

	r, err := e.RequestFeature(FeaturePrivateCalls)
	require.NoError(t, err)
	assert.Equal(t, FeaturePrivateCalls, r.Feature)
}
