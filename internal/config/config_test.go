package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"typing:\n  chars_per_second: 30\nambient:\n  tick_seconds: 5\n  promo_chance: 0.5\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.Typing.CharsPerSecond)
	assert.Equal(t, Default().Typing.BaseThinking, cfg.Typing.BaseThinking, "absent field keeps default")
	assert.Equal(t, 5*time.Second, cfg.Ambient.Tick)
	assert.Equal(t, 0.5, cfg.Ambient.PromoChance)
	assert.Equal(t, Default().Ambient.NoticeChance, cfg.Ambient.NoticeChance)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("typing: [broken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
