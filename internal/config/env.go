package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// envMapping binds each recognized variable to the field it overrides.
var envMapping = map[string]func(*Config, string) error{
	"INPUTSTORM_MAX_HISTORY":       func(c *Config, v string) error { return setInt(&c.Input.MaxHistory, v) },
	"INPUTSTORM_DETECT_COMBOS":     func(c *Config, v string) error { return setBool(&c.Input.DetectCombos, v) },
	"INPUTSTORM_TRIGGER_BUFFER":    func(c *Config, v string) error { return setInt(&c.Input.TriggerBuffer, v) },
	"INPUTSTORM_ENABLE_METRICS":    func(c *Config, v string) error { return setBool(&c.Input.EnableMetrics, v) },
	"INPUTSTORM_REPEAT_DELAY":      func(c *Config, v string) error { return setDuration(&c.Keyboard.RepeatDelay, v) },
	"INPUTSTORM_REPEAT_INTERVAL":   func(c *Config, v string) error { return setDuration(&c.Keyboard.RepeatInterval, v) },
	"INPUTSTORM_CAPTURE_TEXT":      func(c *Config, v string) error { return setBool(&c.Keyboard.CaptureText, v) },
	"INPUTSTORM_CLICK_TIME":        func(c *Config, v string) error { return setDuration(&c.Mouse.ClickTime, v) },
	"INPUTSTORM_CLICK_DISTANCE":    func(c *Config, v string) error { return setInt(&c.Mouse.ClickDistance, v) },
	"INPUTSTORM_MOUSE_SENSITIVITY": func(c *Config, v string) error { return setFloat(&c.Mouse.Sensitivity, v) },
	"INPUTSTORM_SCROLL_SCALE":      func(c *Config, v string) error { return setFloat(&c.Mouse.ScrollScale, v) },
	"INPUTSTORM_PAD_DEADZONE":      func(c *Config, v string) error { return setFloat(&c.Gamepad.Deadzone, v) },
	"INPUTSTORM_TABLES":            func(c *Config, v string) error { return setPaths(&c.Tables.Paths, v) },
	"INPUTSTORM_USE_DEFAULTS":      func(c *Config, v string) error { return setBool(&c.Tables.UseDefaults, v) },
	"INPUTSTORM_WATCH_TABLES":      func(c *Config, v string) error { return setBool(&c.Tables.Watch, v) },
	"INPUTSTORM_LOG_PATH":          func(c *Config, v string) error { c.Logging.Path = v; return nil },
	"INPUTSTORM_LOG_LEVEL":         func(c *Config, v string) error { c.Logging.Level = v; return nil },
}

// ApplyEnv overrides cfg fields from INPUTSTORM_* environment variables.
// Unset variables leave their fields untouched; a set but malformed value
// is an error.
func ApplyEnv(cfg *Config) error {
	for name, apply := range envMapping {
		raw, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		if err := apply(cfg, raw); err != nil {
			return fmt.Errorf("env %s=%q: %w", name, raw, err)
		}
	}
	return nil
}

func setInt(dst *int, raw string) error {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("not an integer")
	}
	*dst = v
	return nil
}

func setFloat(dst *float64, raw string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	*dst = v
	return nil
}

func setBool(dst *bool, raw string) error {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "on", "1":
		*dst = true
	case "false", "no", "off", "0":
		*dst = false
	default:
		return fmt.Errorf("not a boolean")
	}
	return nil
}

func setDuration(dst *Duration, raw string) error {
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("not a duration")
	}
	*dst = Duration(v)
	return nil
}

// setPaths splits a comma-separated path list, dropping empty entries.
func setPaths(dst *[]string, raw string) error {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	*dst = paths
	return nil
}
