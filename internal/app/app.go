package app

import (
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/dshills/inputstorm/internal/backend"
	"github.com/dshills/inputstorm/internal/config"
	"github.com/dshills/inputstorm/internal/input"
	"github.com/dshills/inputstorm/internal/input/action"
	"github.com/dshills/inputstorm/internal/input/device"
	"github.com/dshills/inputstorm/internal/logging"
)

// DefaultFPS is the frame rate of the demo loop when Options.FPS is zero.
const DefaultFPS = 60

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses
	// built-in defaults plus environment overrides.
	ConfigPath string

	// Tables are extra action table files loaded after the configured
	// ones. Later tables win on duplicate ids.
	Tables []string

	// LogPath overrides the configured log file path.
	LogPath string

	// LogLevel overrides the configured log level.
	LogLevel string

	// FPS sets the frame rate of the demo loop. Zero uses DefaultFPS.
	FPS int
}

// Application owns the demo's input pipeline: terminal events flow
// through the key latch and device adapters into the action manager,
// and the resolved action states are drawn once per frame.
type Application struct {
	opts Options
	cfg  config.Config
	log  *zap.Logger

	manager  *input.Manager
	loader   *action.Loader
	keyboard *device.Keyboard
	mouse    *device.Mouse
	pads     *device.Gamepads
	latch    *backend.KeyLatch
	watcher  *config.Watcher

	term *backend.Terminal

	// tables holds the resolved action table paths in load order.
	tables []string

	// recent holds trigger descriptions for the dashboard, newest first.
	recent []string

	frames  uint64
	reloads atomic.Uint64

	running  atomic.Bool
	done     chan struct{}
	shutOnce sync.Once
}

// New creates an Application and initializes all components in
// dependency order.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts: opts,
		done: make(chan struct{}),
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}

	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Configuration, with command-line overrides applied on top.
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.LogPath != "" {
		cfg.Logging.Path = app.opts.LogPath
	}
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	app.cfg = cfg
	app.tables = append(append([]string(nil), cfg.Tables.Paths...), app.opts.Tables...)

	// 2. Logger.
	logger, err := logging.New(cfg.Logging.Path, cfg.Logging.Level)
	if err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	app.log = logger

	// 3. Action manager.
	reg := action.NewRegistry()
	if cfg.Tables.UseDefaults {
		action.RegisterDefaults(reg)
	}
	app.manager = input.NewWithRegistry(input.Config{
		MaxHistory:    cfg.Input.MaxHistory,
		DetectCombos:  cfg.Input.DetectCombos,
		TriggerBuffer: cfg.Input.TriggerBuffer,
		EnableMetrics: cfg.Input.EnableMetrics,
	}, reg)
	app.loader = action.NewLoader(reg)

	// 4. Action tables. Load failures are non-fatal: the watcher picks
	// up corrected files, and the defaults keep the demo usable.
	app.loadTables()

	// 5. Device adapters.
	app.keyboard = device.NewKeyboard(device.KeyboardConfig{
		RepeatDelay:    cfg.Keyboard.RepeatDelay.Std(),
		RepeatInterval: cfg.Keyboard.RepeatInterval.Std(),
		CaptureText:    cfg.Keyboard.CaptureText,
	})
	app.mouse = device.NewMouse(device.MouseConfig{
		ClickTime:     cfg.Mouse.ClickTime.Std(),
		ClickDistance: cfg.Mouse.ClickDistance,
		Sensitivity:   cfg.Mouse.Sensitivity,
		ScrollScale:   cfg.Mouse.ScrollScale,
	})
	app.pads = device.NewGamepads(device.GamepadConfig{
		Deadzone: cfg.Gamepad.Deadzone,
	})

	// 6. Key latch. Terminals report presses only, so releases are
	// synthesized after the hold window.
	app.latch = backend.NewKeyLatch(0)

	// 7. Table watcher.
	if cfg.Tables.Watch && len(app.tables) > 0 {
		if err := app.initWatcher(); err != nil {
			// Non-fatal. The demo runs without hot reload.
			app.log.Warn("table watcher unavailable", zap.Error(err))
		}
	}

	app.log.Info("application initialized",
		zap.Int("actions", app.manager.Registry().Len()),
		zap.Strings("tables", app.tables),
		zap.Bool("watch", app.watcher != nil))

	return nil
}

// initWatcher starts the table file watcher and wires reloads.
func (app *Application) initWatcher() error {
	w, err := config.NewWatcher(0)
	if err != nil {
		return err
	}

	w.OnChange(app.handleTableChange)
	for _, path := range app.tables {
		if err := w.Watch(path); err != nil {
			_ = w.Close()
			return err
		}
	}

	app.watcher = w
	return nil
}

// handleTableChange reloads all action tables after a watched file
// changes. Runs on the watcher goroutine; the registry is safe for
// concurrent use.
func (app *Application) handleTableChange(ev config.Event) {
	if ev.Op == config.OpRemove {
		app.log.Warn("action table removed",
			zap.String("path", ev.Path))
		return
	}

	app.log.Info("reloading action tables",
		zap.String("path", ev.Path),
		zap.String("op", ev.Op.String()))

	n := app.loadTables()
	app.reloads.Add(1)

	app.log.Info("action tables reloaded",
		zap.Int("loaded", n),
		zap.Int("registered", app.manager.Registry().Len()))
}

// loadTables registers the default table (when configured) and then
// every table file in order, so later files win on duplicate ids.
// Per-file failures are logged and skipped. Returns the number of
// actions loaded from files.
//
// Reloads re-register the defaults first so edits layer onto a clean
// base. Ids added by an earlier version of a file linger until restart.
func (app *Application) loadTables() int {
	if app.cfg.Tables.UseDefaults {
		action.RegisterDefaults(app.manager.Registry())
	}

	total := 0
	for _, path := range app.tables {
		n, err := app.loadTable(path)
		if err != nil {
			app.log.Warn("action table load failed",
				zap.String("path", path),
				zap.Error(err))
			continue
		}
		total += n
	}
	return total
}

// loadTable loads one table file, dispatching on extension.
func (app *Application) loadTable(path string) (int, error) {
	if strings.EqualFold(filepath.Ext(path), ".lua") {
		return app.loader.LoadLuaAndRegister(path)
	}
	return app.loader.LoadAndRegister(path)
}

// SetTerminal attaches the terminal backend used by Run.
func (app *Application) SetTerminal(term *backend.Terminal) {
	app.term = term
}

// Manager returns the action manager.
func (app *Application) Manager() *input.Manager {
	return app.manager
}

// Config returns the active configuration.
func (app *Application) Config() config.Config {
	return app.cfg
}

// IsRunning reports whether the demo loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Shutdown stops the demo loop and releases resources. Safe to call
// from any goroutine and more than once.
func (app *Application) Shutdown() {
	app.shutOnce.Do(func() {
		close(app.done)
		if app.term != nil {
			app.term.Interrupt()
		}
		if app.watcher != nil {
			_ = app.watcher.Close()
		}

		snap := app.manager.Metrics().Snapshot()
		app.log.Info("shutdown",
			zap.Uint64("updates", snap.UpdatesTotal),
			zap.Uint64("device_events", snap.DeviceEventsTotal),
			zap.Uint64("actions_triggered", snap.ActionsTriggered),
			zap.Uint64("combos", snap.CombosTotal),
			zap.Duration("avg_update_latency", snap.AvgUpdateLatency),
			zap.Duration("uptime", snap.Uptime))
		_ = app.log.Sync()
	})
}
