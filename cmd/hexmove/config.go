package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/talgya/hexmove/internal/tactics"
	"github.com/talgya/hexmove/internal/world"
)

// appConfig gathers every setting the binary reads from the environment.
type appConfig struct {
	Session  tactics.Config
	Gen      world.GenConfig
	Units    int
	LogLevel slog.Level
}

func defaultAppConfig() appConfig {
	return appConfig{
		Session:  tactics.DefaultConfig(),
		Gen:      world.DefaultGenConfig(),
		Units:    4,
		LogLevel: slog.LevelInfo,
	}
}

// loadConfig overlays environment variables on the defaults. getenv is
// os.Getenv outside tests.
func loadConfig(getenv func(string) string) (appConfig, error) {
	cfg := defaultAppConfig()

	if err := envFloat(getenv, "HEXMOVE_HEX_SIZE", &cfg.Session.HexSize); err != nil {
		return cfg, err
	}
	if err := envInt(getenv, "HEXMOVE_MOVE_RANGE", &cfg.Session.MaxMoveRange); err != nil {
		return cfg, err
	}
	if err := envInt(getenv, "HEXMOVE_RADIUS", &cfg.Gen.Radius); err != nil {
		return cfg, err
	}
	if v := getenv("HEXMOVE_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("HEXMOVE_SEED: %w", err)
		}
		cfg.Gen.Seed = n
	}
	if err := envFloat(getenv, "HEXMOVE_ROCK_LEVEL", &cfg.Gen.RockLevel); err != nil {
		return cfg, err
	}
	if err := envInt(getenv, "HEXMOVE_UNITS", &cfg.Units); err != nil {
		return cfg, err
	}
	if v := getenv("HEXMOVE_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return cfg, fmt.Errorf("HEXMOVE_LOG_LEVEL: %w", err)
		}
	}

	if err := cfg.Session.Validate(); err != nil {
		return cfg, fmt.Errorf("session config: %w", err)
	}
	if cfg.Gen.Radius < 1 {
		return cfg, fmt.Errorf("HEXMOVE_RADIUS must be at least 1, got %d", cfg.Gen.Radius)
	}
	if cfg.Units < 1 || cfg.Units > world.MaxUnits {
		return cfg, fmt.Errorf("HEXMOVE_UNITS must be in 1..%d, got %d", world.MaxUnits, cfg.Units)
	}
	return cfg, nil
}

func envInt(getenv func(string) string, key string, dst *int) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envFloat(getenv func(string) string, key string, dst *float64) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}
