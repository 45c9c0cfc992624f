package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WINDOW_WIDTH", "WINDOW_HEIGHT", "WINDOW_TITLE", "TICKS_PER_SECOND",
		"GAME_SEED", "SHOW_COLLIDERS", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("missing")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetWindowWidth(); got != 800 {
		t.Errorf("GetWindowWidth() = %d, expected 800", got)
	}
	if got := cfg.GetWindowHeight(); got != 600 {
		t.Errorf("GetWindowHeight() = %d, expected 600", got)
	}
	if got := cfg.GetWindowTitle(); got != "Space Rocks" {
		t.Errorf("GetWindowTitle() = %q, expected %q", got, "Space Rocks")
	}
	if got := cfg.GetTicksPerSecond(); got != 60 {
		t.Errorf("GetTicksPerSecond() = %d, expected 60", got)
	}
	if got := cfg.GetSeed(); got != 0 {
		t.Errorf("GetSeed() = %d, expected 0", got)
	}
	if cfg.GetShowColliders() {
		t.Error("GetShowColliders() = true, expected false")
	}
	if got := cfg.GetLogLevel(); got != "info" {
		t.Errorf("GetLogLevel() = %q, expected %q", got, "info")
	}
}

func TestLoad_LocalConfigFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetLogLevel(); got != "debug" {
		t.Errorf("GetLogLevel() = %q, expected %q from config.local.yaml", got, "debug")
	}
	if got := cfg.GetWindowTitle(); got != "Space Rocks" {
		t.Errorf("GetWindowTitle() = %q, expected %q", got, "Space Rocks")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WINDOW_WIDTH", "1024")
	t.Setenv("WINDOW_TITLE", "Rocks")
	t.Setenv("GAME_SEED", "42")
	t.Setenv("SHOW_COLLIDERS", "true")

	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetWindowWidth(); got != 1024 {
		t.Errorf("GetWindowWidth() = %d, expected 1024", got)
	}
	if got := cfg.GetWindowHeight(); got != 600 {
		t.Errorf("GetWindowHeight() = %d, expected 600", got)
	}
	if got := cfg.GetWindowTitle(); got != "Rocks" {
		t.Errorf("GetWindowTitle() = %q, expected %q", got, "Rocks")
	}
	if got := cfg.GetSeed(); got != 42 {
		t.Errorf("GetSeed() = %d, expected 42", got)
	}
	if !cfg.GetShowColliders() {
		t.Error("GetShowColliders() = false, expected true")
	}
}
