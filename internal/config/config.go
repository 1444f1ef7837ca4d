package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig marks a configuration that fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration that reads from TOML strings ("250ms",
// "1.5s").
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText renders the Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the standard library duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the full engine configuration.
type Config struct {
	Input    InputConfig    `toml:"input"`
	Keyboard KeyboardConfig `toml:"keyboard"`
	Mouse    MouseConfig    `toml:"mouse"`
	Gamepad  GamepadConfig  `toml:"gamepad"`
	Tables   TablesConfig   `toml:"tables"`
	Logging  LoggingConfig  `toml:"logging"`
}

// InputConfig configures the action manager.
type InputConfig struct {
	// MaxHistory caps the retained event history. Default: 1000
	MaxHistory int `toml:"max_history"`

	// DetectCombos records simultaneous-press combos. Default: true
	DetectCombos bool `toml:"detect_combos"`

	// TriggerBuffer sizes the trigger channel. Default: 64
	TriggerBuffer int `toml:"trigger_buffer"`

	// EnableMetrics collects manager counters. Default: true
	EnableMetrics bool `toml:"enable_metrics"`
}

// KeyboardConfig configures the keyboard adapter.
type KeyboardConfig struct {
	// RepeatDelay is how long a key is held before repeat starts.
	// Default: 400ms
	RepeatDelay Duration `toml:"repeat_delay"`

	// RepeatInterval is the time between synthetic repeats. Default: 50ms
	RepeatInterval Duration `toml:"repeat_interval"`

	// CaptureText buffers typed runes for text input. Default: true
	CaptureText bool `toml:"capture_text"`
}

// MouseConfig configures the mouse adapter.
type MouseConfig struct {
	// ClickTime is the maximum gap between clicks of one streak.
	// Default: 400ms
	ClickTime Duration `toml:"click_time"`

	// ClickDistance is the maximum cursor travel within a click streak,
	// in cells. Default: 4
	ClickDistance int `toml:"click_distance"`

	// Sensitivity scales pixel deltas into axis values. Default: 0.01
	Sensitivity float64 `toml:"sensitivity"`

	// ScrollScale scales wheel steps into axis values. Default: 1.0
	ScrollScale float64 `toml:"scroll_scale"`
}

// GamepadConfig configures the gamepad adapter.
type GamepadConfig struct {
	// Deadzone zeroes axis magnitudes below this before bindings see
	// them. Default: 0.05
	Deadzone float64 `toml:"deadzone"`
}

// TablesConfig configures action table loading.
type TablesConfig struct {
	// Paths lists action table files loaded in order; later tables win
	// on duplicate ids. JSON and Lua by extension.
	Paths []string `toml:"paths"`

	// UseDefaults registers the built-in action table before any files.
	// Default: true
	UseDefaults bool `toml:"use_defaults"`

	// Watch reloads table files on change. Default: true
	Watch bool `toml:"watch"`
}

// LoggingConfig configures the demo logger.
type LoggingConfig struct {
	// Path is the JSON log file; empty logs to stderr only.
	Path string `toml:"path"`

	// Level is the minimum level: debug, info, warn, error.
	// Default: info
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: InputConfig{
			MaxHistory:    1000,
			DetectCombos:  true,
			TriggerBuffer: 64,
			EnableMetrics: true,
		},
		Keyboard: KeyboardConfig{
			RepeatDelay:    Duration(400 * time.Millisecond),
			RepeatInterval: Duration(50 * time.Millisecond),
			CaptureText:    true,
		},
		Mouse: MouseConfig{
			ClickTime:     Duration(400 * time.Millisecond),
			ClickDistance: 4,
			Sensitivity:   0.01,
			ScrollScale:   1.0,
		},
		Gamepad: GamepadConfig{
			Deadzone: 0.05,
		},
		Tables: TablesConfig{
			UseDefaults: true,
			Watch:       true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks ranges and normalizes empties to defaults.
func (c *Config) Validate() error {
	if c.Input.MaxHistory < 0 {
		return fmt.Errorf("%w: input.max_history %d is negative", ErrInvalidConfig, c.Input.MaxHistory)
	}
	if c.Input.TriggerBuffer < 0 {
		return fmt.Errorf("%w: input.trigger_buffer %d is negative", ErrInvalidConfig, c.Input.TriggerBuffer)
	}
	if c.Keyboard.RepeatDelay < 0 || c.Keyboard.RepeatInterval < 0 {
		return fmt.Errorf("%w: keyboard repeat timings must not be negative", ErrInvalidConfig)
	}
	if c.Mouse.ClickTime < 0 {
		return fmt.Errorf("%w: mouse.click_time must not be negative", ErrInvalidConfig)
	}
	if c.Mouse.ClickDistance < 0 {
		return fmt.Errorf("%w: mouse.click_distance %d is negative", ErrInvalidConfig, c.Mouse.ClickDistance)
	}
	if c.Mouse.Sensitivity <= 0 {
		return fmt.Errorf("%w: mouse.sensitivity %v is not positive", ErrInvalidConfig, c.Mouse.Sensitivity)
	}
	if c.Gamepad.Deadzone < 0 || c.Gamepad.Deadzone >= 1 {
		return fmt.Errorf("%w: gamepad.deadzone %v outside [0, 1)", ErrInvalidConfig, c.Gamepad.Deadzone)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q (want debug, info, warn, or error)", ErrInvalidConfig, c.Logging.Level)
	}

	return nil
}
