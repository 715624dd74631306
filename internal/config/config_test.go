package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkcurrie/fds132-led-golang/internal/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 40, cfg.Display.ScrollDelay)
	assert.Equal(t, types.ScrollLeft, cfg.Display.ScrollMode)
	assert.Equal(t, types.EffectOff, cfg.Display.EffectMode)
	assert.Equal(t, 0, cfg.Display.ThreeLineDelay)
	assert.False(t, cfg.Display.ExitOnEOF)
	assert.Nil(t, cfg.Display.StaticText)
	assert.Equal(t, BackendMmap, cfg.Hardware.Backend)
	assert.Equal(t, types.DefaultPins, cfg.Hardware.Pins)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	text := "hello"
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"scroll mode too large", func(c *Config) { c.Display.ScrollMode = 3 }, ErrInvalidScrollMode},
		{"negative scroll mode", func(c *Config) { c.Display.ScrollMode = -1 }, ErrInvalidScrollMode},
		{"effect mode too large", func(c *Config) { c.Display.EffectMode = 3 }, ErrInvalidEffectMode},
		{"negative delay", func(c *Config) { c.Display.ScrollDelay = -1 }, ErrInvalidDelay},
		{"static text with snow", func(c *Config) {
			c.Display.StaticText = &text
			c.Display.EffectMode = types.EffectSnow
		}, ErrConflictingModes},
		{"date with fireworks", func(c *Config) {
			c.Display.DateOverlay = true
			c.Display.EffectMode = types.EffectFireworks
		}, ErrConflictingModes},
		{"scroll down", func(c *Config) { c.Display.ScrollMode = types.ScrollDown }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "Validate() error = %v, want %v", err, tt.wantErr)
		})
	}
}

func TestValidateBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hardware.Backend = "spi"
	assert.Error(t, cfg.Validate())
}

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer
	cfg, err := Parse("fds132", []string{"-e", "-s", "400", "-u", "1", "-w", "80", "-v", "-backend", "sim"}, &out)
	require.NoError(t, err)
	assert.True(t, cfg.Display.ExitOnEOF)
	assert.Equal(t, 400, cfg.Display.ScrollDelay)
	assert.Equal(t, types.ScrollUp, cfg.Display.ScrollMode)
	assert.Equal(t, 80, cfg.Display.ThreeLineDelay)
	assert.True(t, cfg.Display.Verbose)
	assert.Equal(t, BackendSim, cfg.Hardware.Backend)
}

func TestParseStaticText(t *testing.T) {
	cfg, err := Parse("fds132", []string{"-t", "Hello world"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.NotNil(t, cfg.Display.StaticText)
	assert.Equal(t, "Hello world", *cfg.Display.StaticText)
}

func TestParseRejectsBadScrollMode(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse("fds132", []string{"-u", "7"}, &out)
	assert.True(t, errors.Is(err, ErrInvalidScrollMode))
	assert.Contains(t, out.String(), "scroll mode")
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse("fds132", []string{"-h"}, &out)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "Examples")
}

func TestParseConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"display": {"scroll_delay": 12, "scroll_mode": 2, "effect_mode": 0},
	          "hardware": {"backend": "cdev", "chip": "gpiochip4"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Parse("fds132", []string{"-config", path, "-s", "20"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Display.ScrollDelay, "flag overrides file")
	assert.Equal(t, types.ScrollDown, cfg.Display.ScrollMode)
	assert.Equal(t, BackendCdev, cfg.Hardware.Backend)
	assert.Equal(t, "gpiochip4", cfg.Hardware.Chip)
	assert.Equal(t, types.DefaultPins, cfg.Hardware.Pins, "unset fields keep defaults")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
