// Package config resolves runtime settings from the environment. A .env
// file, when present, is loaded before lookup so local setups can keep
// panel settings out of the shell profile.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env var names. The RAIN_ prefix keeps them clear of the matrix driver's
// own environment.
const (
	EnvHeight     = "RAIN_HEIGHT"
	EnvWidth      = "RAIN_WIDTH"
	EnvChance     = "RAIN_SPAWN_CHANCE"
	EnvFPS        = "RAIN_FPS"
	EnvBrightness = "RAIN_BRIGHTNESS"
	EnvScale      = "RAIN_SCALE"
)

// Config carries the display and simulation settings shared by every mode.
type Config struct {
	Height      int
	Width       int
	SpawnChance float64
	FPS         int
	Brightness  float64
	Scale       int
}

// Defaults mirror the reference 64x64 panel at 80% brightness.
func Defaults() Config {
	return Config{
		Height:      64,
		Width:       64,
		SpawnChance: 0.025,
		FPS:         30,
		Brightness:  0.8,
		Scale:       8,
	}
}

// Load reads settings from a .env file (if one exists) and the process
// environment, over the defaults. Malformed values are errors rather than
// silent fallbacks.
func Load() (Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	cfg := Defaults()
	var err error
	if cfg.Height, err = intVar(EnvHeight, cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = intVar(EnvWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.SpawnChance, err = floatVar(EnvChance, cfg.SpawnChance); err != nil {
		return Config{}, err
	}
	if cfg.FPS, err = intVar(EnvFPS, cfg.FPS); err != nil {
		return Config{}, err
	}
	if cfg.Brightness, err = floatVar(EnvBrightness, cfg.Brightness); err != nil {
		return Config{}, err
	}
	if cfg.Scale, err = intVar(EnvScale, cfg.Scale); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func intVar(name string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func floatVar(name string, fallback float64) (float64, error) {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}
