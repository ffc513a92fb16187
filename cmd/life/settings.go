package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"torus-life/internal/config"
	"torus-life/internal/control"
	"torus-life/internal/core"
	"torus-life/internal/logging"
)

type settings struct {
	cfg    *config.Config
	sim    core.SimulationConfig
	logger *slog.Logger
}

// loadSettings resolves configuration in order: defaults -> config file ->
// environment -> flags set on the command line.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	level, _ := flags.GetString("log-level")

	// Warnings raised while loading honor the level the config itself sets,
	// so without a flag the file is read once silently to learn that level.
	if !flags.Changed("log-level") {
		if quiet, err := config.Load(path, logging.Discard()); err == nil {
			level = quiet.LogLevel
		}
	}
	cfg, err := config.Load(path, logging.NewLogger(level, cmd.ErrOrStderr()))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	overrides := []struct {
		flag string
		dst  *int
	}{
		{"width", &cfg.Width},
		{"height", &cfg.Height},
		{"delay", &cfg.SimSpeed},
		{"scale", &cfg.Scale},
	}
	for _, o := range overrides {
		if flags.Changed(o.flag) {
			*o.dst, _ = flags.GetInt(o.flag)
		}
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = level
	}

	sim, err := cfg.Simulation()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	logger.Debug("configuration loaded",
		"size", sim.Size(),
		"step_delay", sim.StepDelay(),
		"scale", sim.Scale(),
	)
	return &settings{cfg: cfg, sim: sim, logger: logger}, nil
}

// newController builds a controller from the resolved settings.
func (s *settings) newController(cmd *cobra.Command) (*control.Controller, error) {
	opts := []control.Option{control.WithLogger(s.logger)}
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		opts = append(opts, control.WithSeed(seed))
	}
	return control.New(s.sim, opts...)
}
