package config

import (
	"log/slog"
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Setenv restores the variables after the test; unset them for the run.
	for _, key := range []string{"BASETYPES_LOG_LEVEL", "BASETYPES_PRECISION"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Precision != -1 {
		t.Errorf("Precision = %d, want -1", cfg.Precision)
	}
	if level, _ := cfg.Level(); level != slog.LevelWarn {
		t.Errorf("Level() = %v, want WARN", level)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BASETYPES_LOG_LEVEL", "debug")
	t.Setenv("BASETYPES_PRECISION", "6")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Precision != 6 {
		t.Errorf("Precision = %d, want 6", cfg.Precision)
	}
	if level, _ := cfg.Level(); level != slog.LevelDebug {
		t.Errorf("Level() = %v, want DEBUG", level)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, level, precision string
	}{
		{"bad level", "loud", "-1"},
		{"bad precision", "info", "many"},
		{"negative precision", "info", "-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BASETYPES_LOG_LEVEL", tt.level)
			t.Setenv("BASETYPES_PRECISION", tt.precision)
			if _, err := Load(); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}
