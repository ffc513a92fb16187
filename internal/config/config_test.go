package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"torus-life/internal/core"
	"torus-life/internal/logging"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, 64, cfg.Width)
	require.Equal(t, 48, cfg.Height)
	require.Equal(t, 100, cfg.SimSpeed)
	require.Equal(t, core.DefaultScale, cfg.Scale)
	require.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestParseSeparators(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"colon space", "width: 40\nheight: 30\nsim_speed: 25\n"},
		{"bare colon", "width:40\nheight:30\nsim_speed:25"},
		{"spaced colon", "width : 40\nheight\t:\t30\nsim_speed  :  25"},
		{"whitespace only", "width 40\nheight\t30\nsim_speed   25"},
		{"crlf and comments", "# board\r\nwidth: 40\r\n; speed\r\nheight: 30\r\n\r\nsim_speed: 25\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.input), nil)
			require.NoError(t, err)
			require.Equal(t, 40, cfg.Width)
			require.Equal(t, 30, cfg.Height)
			require.Equal(t, 25, cfg.SimSpeed)
			require.Equal(t, core.DefaultScale, cfg.Scale, "unset keys keep defaults")
		})
	}
}

func TestParseUnknownKeyWarns(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := Parse([]byte("width: 12\ncolour: red\n"), logging.NewLogger("info", &buf))
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Width)
	require.Contains(t, buf.String(), "unknown config key")
	require.Contains(t, buf.String(), "colour")
}

func TestParseLastValueWins(t *testing.T) {
	cfg, err := Parse([]byte("width: 12\nwidth: 14\n"), nil)
	require.NoError(t, err)
	require.Equal(t, 14, cfg.Width)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("width: forty\n"), nil)
	require.Error(t, err)

	_, err = Parse([]byte("height\n"), nil)
	require.ErrorContains(t, err, "missing value")

	_, err = Parse([]byte(": 12\n"), nil)
	require.ErrorContains(t, err, "missing key")
}

func TestParseOptionalKeys(t *testing.T) {
	cfg, err := Parse([]byte("scale: 8\nlog_level: debug\n"), nil)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Scale)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"), logging.NewLogger("info", &buf))
	require.NoError(t, err)
	require.Equal(t, Default().Width, cfg.Width)
	require.Contains(t, buf.String(), "config file not found")
}

func TestLoadFromFileWrapsParseErrors(t *testing.T) {
	path := writeConfig(t, "width: nope\n")
	_, err := LoadFromFile(path, nil)
	require.ErrorContains(t, err, "parsing config file")

	_, err = Load(path, nil)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, "width: 10\nheight: 10\nsim_speed: 5\n")
	t.Setenv("LIFE_WIDTH", "33")
	t.Setenv("LIFE_SIM_SPEED", "fast")
	t.Setenv("LIFE_LOG_LEVEL", "trace")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, 33, cfg.Width)
	require.Equal(t, 10, cfg.Height)
	require.Equal(t, 5, cfg.SimSpeed, "malformed override is ignored")
	require.Equal(t, "trace", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -4 }},
		{"negative speed", func(c *Config) { c.SimSpeed = -1 }},
		{"zero scale", func(c *Config) { c.Scale = 0 }},
		{"overflowing size", func(c *Config) { c.Width, c.Height = 1<<32, 1<<32 }},
		{"oversized board", func(c *Config) { c.Width, c.Height = 100000, 100000 }},
		{"overflowing scale", func(c *Config) { c.Scale = 1 << 30 }},
		{"bad level", func(c *Config) { c.LogLevel = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			require.Error(t, cfg.Validate())
			_, err := cfg.Simulation()
			require.Error(t, err)
		})
	}
}

func TestSimulation(t *testing.T) {
	cfg := Default()
	cfg.Width, cfg.Height, cfg.SimSpeed, cfg.Scale = 20, 10, 250, 5

	sim, err := cfg.Simulation()
	require.NoError(t, err)
	require.Equal(t, core.Size{W: 20, H: 10}, sim.Size())
	require.Equal(t, 250*time.Millisecond, sim.StepDelay())
	require.Equal(t, 5, sim.Scale())

	cfg.Width = 0
	_, err = cfg.Simulation()
	require.ErrorIs(t, err, core.ErrInvalidDimensions)

	cfg.Width, cfg.Height = 1<<32, 1<<32
	_, err = cfg.Simulation()
	require.ErrorIs(t, err, core.ErrBoardTooLarge)
}
