package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{EnvHeight, EnvWidth, EnvChance, EnvFPS, EnvBrightness, EnvScale} {
		t.Setenv(name, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Defaults() {
		t.Fatalf("Load with empty environment = %+v, expected defaults %+v", cfg, Defaults())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(EnvHeight, "32")
	t.Setenv(EnvWidth, "128")
	t.Setenv(EnvChance, "0.1")
	t.Setenv(EnvFPS, "60")
	t.Setenv(EnvBrightness, "0.5")
	t.Setenv(EnvScale, "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Height != 32 || cfg.Width != 128 || cfg.SpawnChance != 0.1 ||
		cfg.FPS != 60 || cfg.Brightness != 0.5 || cfg.Scale != 4 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv(EnvHeight, "tall")
	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a malformed height")
	}

	t.Setenv(EnvHeight, "64")
	t.Setenv(EnvBrightness, "bright")
	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a malformed brightness")
	}
}
