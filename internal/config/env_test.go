package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv("INPUTSTORM_MAX_HISTORY", "200")
	t.Setenv("INPUTSTORM_DETECT_COMBOS", "false")
	t.Setenv("INPUTSTORM_REPEAT_DELAY", "300ms")
	t.Setenv("INPUTSTORM_PAD_DEADZONE", "0.15")
	t.Setenv("INPUTSTORM_LOG_LEVEL", "warn")

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.Input.MaxHistory != 200 {
		t.Errorf("Input.MaxHistory = %d, want 200", cfg.Input.MaxHistory)
	}
	if cfg.Input.DetectCombos {
		t.Error("Input.DetectCombos = true, want false")
	}
	if cfg.Keyboard.RepeatDelay.Std() != 300*time.Millisecond {
		t.Errorf("Keyboard.RepeatDelay = %v, want 300ms", cfg.Keyboard.RepeatDelay.Std())
	}
	if cfg.Gamepad.Deadzone != 0.15 {
		t.Errorf("Gamepad.Deadzone = %v, want 0.15", cfg.Gamepad.Deadzone)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want 'warn'", cfg.Logging.Level)
	}

	// Untouched fields keep their defaults
	if cfg.Input.TriggerBuffer != 64 {
		t.Errorf("Input.TriggerBuffer = %d, want default 64", cfg.Input.TriggerBuffer)
	}
}

func TestApplyEnvBoolForms(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"yes", true},
		{"on", true},
		{"1", true},
		{"TRUE", true},
		{"false", false},
		{"no", false},
		{"off", false},
		{"0", false},
		{"Off", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("INPUTSTORM_CAPTURE_TEXT", tt.raw)

			cfg := Default()
			cfg.Keyboard.CaptureText = !tt.want
			if err := ApplyEnv(&cfg); err != nil {
				t.Fatalf("ApplyEnv failed: %v", err)
			}
			if cfg.Keyboard.CaptureText != tt.want {
				t.Errorf("CaptureText = %v, want %v", cfg.Keyboard.CaptureText, tt.want)
			}
		})
	}
}

func TestApplyEnvMalformed(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad int", "INPUTSTORM_MAX_HISTORY", "lots"},
		{"bad bool", "INPUTSTORM_DETECT_COMBOS", "maybe"},
		{"bad float", "INPUTSTORM_MOUSE_SENSITIVITY", "high"},
		{"bad duration", "INPUTSTORM_CLICK_TIME", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg := Default()
			err := ApplyEnv(&cfg)
			if err == nil {
				t.Fatal("expected error for malformed value")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q does not name %s", err, tt.key)
			}
		})
	}
}

func TestApplyEnvPaths(t *testing.T) {
	t.Setenv("INPUTSTORM_TABLES", " a.json, b.lua ,, c.json ")

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	want := []string{"a.json", "b.lua", "c.json"}
	if len(cfg.Tables.Paths) != len(want) {
		t.Fatalf("Tables.Paths = %v, want %v", cfg.Tables.Paths, want)
	}
	for i, p := range want {
		if cfg.Tables.Paths[i] != p {
			t.Errorf("Tables.Paths[%d] = %q, want %q", i, cfg.Tables.Paths[i], p)
		}
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputstorm.toml")
	if err := os.WriteFile(path, []byte("[input]\nmax_history = 5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("INPUTSTORM_MAX_HISTORY", "9")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Input.MaxHistory != 9 {
		t.Errorf("Input.MaxHistory = %d, want 9 (env over file)", cfg.Input.MaxHistory)
	}
}

func TestLoadEnvValidated(t *testing.T) {
	t.Setenv("INPUTSTORM_PAD_DEADZONE", "1.5")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected validation error for out-of-range env override")
	}
}
