// Package config loads the simulator settings from config.ini, the
// environment and command-line overrides.
//
// The file holds one "key: value" pair per line. Any run of colons, spaces or
// tabs separates the key from the value, so "width 40" and "width:40" are
// equivalent. Lines starting with '#' or ';' are comments.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"torus-life/internal/core"
	"torus-life/internal/logging"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "config.ini"

// Config contains every simulator setting.
type Config struct {
	// Width is the board width in cells.
	Width int `yaml:"width"`

	// Height is the board height in cells.
	Height int `yaml:"height"`

	// SimSpeed is the delay between generations in milliseconds.
	SimSpeed int `yaml:"sim_speed"`

	// Scale is the number of display pixels per cell edge.
	Scale int `yaml:"scale"`

	// LogLevel sets the log verbosity: "info" (default), "debug", "trace", "warn" or "error".
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Width:    64,
		Height:   48,
		SimSpeed: 100,
		Scale:    core.DefaultScale,
		LogLevel: "info",
	}
}

var knownKeys = map[string]bool{
	"width":     true,
	"height":    true,
	"sim_speed": true,
	"scale":     true,
	"log_level": true,
}

var separator = regexp.MustCompile(`[: \t]+`)

// Load reads configuration in order: defaults -> file at path -> environment.
// A missing file is not an error; the defaults are used and a warning logged.
func Load(path string, logger *slog.Logger) (*Config, error) {
	logger = logging.OrDiscard(logger)
	if path == "" {
		path = DefaultPath
	}

	cfg, err := LoadFromFile(path, logger)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("config file not found, using defaults", "path", path)
		cfg = Default()
	case err != nil:
		return nil, err
	}

	applyEnvOverrides(cfg, logger)
	return cfg, nil
}

// LoadFromFile loads configuration from a specific file.
func LoadFromFile(path string, logger *slog.Logger) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Parse(data, logger)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes config.ini content on top of the defaults. Unknown keys are
// logged and ignored; a repeated key keeps its last value.
func Parse(data []byte, logger *slog.Logger) (*Config, error) {
	logger = logging.OrDiscard(logger)

	values := map[string]string{}
	var order []string
	for n, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		parts := separator.Split(line, 2)
		key := strings.ToLower(parts[0])
		if key == "" {
			return nil, fmt.Errorf("line %d: missing key", n+1)
		}
		if len(parts) < 2 || parts[1] == "" {
			return nil, fmt.Errorf("line %d: missing value for %q", n+1, key)
		}
		if !knownKeys[key] {
			logger.Warn("unknown config key", "key", key, "line", n+1)
			continue
		}
		if _, seen := values[key]; !seen {
			order = append(order, key)
		}
		values[key] = parts[1]
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range order {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: values[key]},
		)
	}

	cfg := Default()
	if err := doc.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := core.CheckDimensions(c.Width, c.Height); err != nil {
		return fmt.Errorf("width and height: %w", err)
	}
	if c.SimSpeed < 0 {
		return fmt.Errorf("sim_speed must be non-negative, got %d", c.SimSpeed)
	}
	if err := core.CheckScale(c.Width, c.Height, c.Scale); err != nil {
		return fmt.Errorf("scale: %w", err)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (valid: error, warn, info, debug, trace)", c.LogLevel)
	}
	return nil
}

// StepDelay returns SimSpeed as a duration.
func (c *Config) StepDelay() time.Duration {
	return time.Duration(c.SimSpeed) * time.Millisecond
}

// Simulation validates c and converts it into the engine's parameters.
func (c *Config) Simulation() (core.SimulationConfig, error) {
	if err := c.Validate(); err != nil {
		return core.SimulationConfig{}, err
	}
	return core.NewSimulationConfig(c.Width, c.Height, c.StepDelay(), c.Scale)
}

// applyEnvOverrides applies LIFE_* environment variables to the config.
// Malformed numbers are logged and ignored.
func applyEnvOverrides(c *Config, logger *slog.Logger) {
	ints := []struct {
		env string
		dst *int
	}{
		{"LIFE_WIDTH", &c.Width},
		{"LIFE_HEIGHT", &c.Height},
		{"LIFE_SIM_SPEED", &c.SimSpeed},
		{"LIFE_SCALE", &c.Scale},
	}
	for _, o := range ints {
		v := os.Getenv(o.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			logger.Warn("ignoring malformed environment override", "name", o.env, "value", v)
			continue
		}
		*o.dst = n
	}

	if v := os.Getenv("LIFE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}
