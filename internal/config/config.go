// Package config loads the optional tuning file. The ambient split and
// typing constants are product-tuned values, not invariants, so they
// live in configuration with defaults matching production.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"stagechat/internal/ambient"
	"stagechat/internal/typing"
)

// Environment variables for the text-generation service.
const (
	EnvGenEndpoint = "STAGECHAT_GEN_ENDPOINT"
	EnvGenAPIKey   = "STAGECHAT_GEN_API_KEY"
	EnvGenModel    = "STAGECHAT_GEN_MODEL"
)

// Config is the resolved tuning.
type Config struct {
	Typing  typing.Config
	Ambient ambient.Config
}

// fileConfig is the on-disk YAML shape. Durations are plain numbers
// (milliseconds or seconds) so authors never fight duration syntax.
// Pointer fields distinguish "absent" from zero.
type fileConfig struct {
	Typing struct {
		CharsPerSecond *float64 `yaml:"chars_per_second"`
		BaseThinkingMs *int     `yaml:"base_thinking_ms"`
		MaxTypingMs    *int     `yaml:"max_typing_ms"`
		JitterLow      *float64 `yaml:"jitter_low"`
		JitterHigh     *float64 `yaml:"jitter_high"`
	} `yaml:"typing"`
	Ambient struct {
		TickSeconds  *float64 `yaml:"tick_seconds"`
		PromoChance  *float64 `yaml:"promo_chance"`
		NoticeChance *float64 `yaml:"notice_chance"`
	} `yaml:"ambient"`
}

// Default returns the production tuning.
func Default() Config {
	return Config{
		Typing:  typing.DefaultConfig(),
		Ambient: ambient.DefaultConfig(),
	}
}

// Load reads the tuning file at path and overlays it onto the defaults.
// A missing file is not an error: defaults are returned so the preview
// runs with zero setup.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if v := fc.Typing.CharsPerSecond; v != nil {
		cfg.Typing.CharsPerSecond = *v
	}
	if v := fc.Typing.BaseThinkingMs; v != nil {
		cfg.Typing.BaseThinking = time.Duration(*v) * time.Millisecond
	}
	if v := fc.Typing.MaxTypingMs; v != nil {
		cfg.Typing.MaxTyping = time.Duration(*v) * time.Millisecond
	}
	if v := fc.Typing.JitterLow; v != nil {
		cfg.Typing.JitterLow = *v
	}
	if v := fc.Typing.JitterHigh; v != nil {
		cfg.Typing.JitterHigh = *v
	}
	if v := fc.Ambient.TickSeconds; v != nil {
		cfg.Ambient.Tick = time.Duration(*v * float64(time.Second))
	}
	if v := fc.Ambient.PromoChance; v != nil {
		cfg.Ambient.PromoChance = *v
	}
	if v := fc.Ambient.NoticeChance; v != nil {
		cfg.Ambient.NoticeChance = *v
	}
	return cfg, nil
}

// GenFromEnv returns the generator endpoint, key, and model from the
// environment. An empty endpoint means generation is disabled.
func GenFromEnv() (endpoint, apiKey, model string) {
	return os.Getenv(EnvGenEndpoint), os.Getenv(EnvGenAPIKey), os.Getenv(EnvGenModel)
}
