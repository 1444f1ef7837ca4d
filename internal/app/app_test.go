package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputstorm/internal/backend"
)

const testTable = `{
  "version": 1,
  "actions": [
    {
      "id": "custom.fire",
      "display_name": "Fire",
      "category": "custom",
      "bindings": ["key:f"]
    }
  ]
}`

// newTestApp builds an application logging to a temp file so test
// output stays clean.
func newTestApp(t *testing.T, opts Options) *Application {
	t.Helper()
	if opts.LogPath == "" {
		opts.LogPath = filepath.Join(t.TempDir(), "app.log")
	}
	app, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return app
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestInitError(t *testing.T) {
	inner := errors.New("boom")

	e := NewInitError("config", inner)
	if got, want := e.Error(), "init config: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, inner) {
		t.Error("errors.Is(e, inner) = false, want true")
	}

	bare := &InitError{Component: "logger"}
	if got, want := bare.Error(), "init logger failed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewDefaults(t *testing.T) {
	app := newTestApp(t, Options{})

	if app.Manager() == nil {
		t.Fatal("Manager() = nil")
	}
	if !app.Manager().Registry().Has("jump") {
		t.Error("default actions not registered")
	}
	if got := app.Config().Input.MaxHistory; got != 1000 {
		t.Errorf("Config().Input.MaxHistory = %d, want 1000", got)
	}
	if app.IsRunning() {
		t.Error("IsRunning() = true before Run")
	}
}

func TestNewMissingConfig(t *testing.T) {
	_, err := New(Options{ConfigPath: filepath.Join(t.TempDir(), "absent.toml")})
	if err == nil {
		t.Fatal("New() error = nil, want config init error")
	}

	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("New() error = %T, want *InitError", err)
	}
	if initErr.Component != "config" {
		t.Errorf("Component = %q, want %q", initErr.Component, "config")
	}
}

func TestNewBadLogLevel(t *testing.T) {
	_, err := New(Options{LogLevel: "loud"})
	if err == nil {
		t.Fatal("New() error = nil, want logger init error")
	}

	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("New() error = %T, want *InitError", err)
	}
	if initErr.Component != "logger" {
		t.Errorf("Component = %q, want %q", initErr.Component, "logger")
	}
}

func TestNewLoadsTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	if err := os.WriteFile(path, []byte(testTable), 0o644); err != nil {
		t.Fatal(err)
	}

	app := newTestApp(t, Options{Tables: []string{path}})
	defer app.Shutdown()

	reg := app.Manager().Registry()
	if !reg.Has("custom.fire") {
		t.Error("table action not registered")
	}
	if !reg.Has("jump") {
		t.Error("defaults missing after table load")
	}
}

func TestNewMissingTableNonFatal(t *testing.T) {
	app := newTestApp(t, Options{
		Tables: []string{filepath.Join(t.TempDir(), "absent.json")},
	})
	defer app.Shutdown()

	if !app.Manager().Registry().Has("jump") {
		t.Error("defaults missing after failed table load")
	}
}

func TestMenuToggle(t *testing.T) {
	app := newTestApp(t, Options{})

	app.toggleMenu()
	if !app.Manager().HasContext("menu") {
		t.Fatal("menu context not pushed")
	}
	if app.Manager().IsActionEnabled("jump") {
		t.Error("jump enabled while menu open")
	}
	if !app.Manager().IsActionEnabled("ui.up") {
		t.Error("ui.up disabled while menu open")
	}

	app.toggleMenu()
	if app.Manager().HasContext("menu") {
		t.Error("menu context still stacked after toggle")
	}
	if !app.Manager().IsActionEnabled("jump") {
		t.Error("jump disabled after menu closed")
	}
}

func TestRunWithoutTerminal(t *testing.T) {
	app := newTestApp(t, Options{})

	if err := app.Run(); !errors.Is(err, ErrNoTerminal) {
		t.Errorf("Run() error = %v, want ErrNoTerminal", err)
	}
}

func TestRunShutdown(t *testing.T) {
	app := newTestApp(t, Options{FPS: 120})

	sim := tcell.NewSimulationScreen("UTF-8")
	app.SetTerminal(backend.NewTerminalWithScreen(sim))

	errCh := make(chan error, 1)
	go func() { errCh <- app.Run() }()

	waitFor(t, "run loop start", app.IsRunning)

	if err := app.Run(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Run() error = %v, want ErrAlreadyRunning", err)
	}

	app.Shutdown()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}

	if app.IsRunning() {
		t.Error("IsRunning() = true after Shutdown")
	}
}

func TestRunQuitOnCtrlC(t *testing.T) {
	app := newTestApp(t, Options{FPS: 120})

	sim := tcell.NewSimulationScreen("UTF-8")
	app.SetTerminal(backend.NewTerminalWithScreen(sim))

	errCh := make(chan error, 1)
	go func() { errCh <- app.Run() }()

	waitFor(t, "run loop start", app.IsRunning)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrQuit) {
			t.Errorf("Run() error = %v, want ErrQuit", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not quit on ctrl+c")
	}

	app.Shutdown()
}

func TestMenuToggleOnEscape(t *testing.T) {
	app := newTestApp(t, Options{FPS: 120})

	sim := tcell.NewSimulationScreen("UTF-8")
	app.SetTerminal(backend.NewTerminalWithScreen(sim))

	errCh := make(chan error, 1)
	go func() { errCh <- app.Run() }()

	waitFor(t, "run loop start", app.IsRunning)

	// Escape opens the menu, then ctrl+c quits. The manager is frame
	// loop owned, so assertions wait for Run to return.
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrQuit) {
			t.Errorf("Run() error = %v, want ErrQuit", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not quit")
	}

	if !app.Manager().HasContext("menu") {
		t.Error("menu context not pushed on escape")
	}
	app.Shutdown()
}

func TestTableReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	if err := os.WriteFile(path, []byte(testTable), 0o644); err != nil {
		t.Fatal(err)
	}

	app := newTestApp(t, Options{Tables: []string{path}})
	defer app.Shutdown()

	if app.watcher == nil {
		t.Fatal("table watcher not started")
	}

	updated := `{
  "version": 1,
  "actions": [
    {
      "id": "custom.fire",
      "display_name": "Fire Two",
      "bindings": ["key:g"]
    }
  ]
}`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}

	waitFor(t, "table reload", func() bool {
		a, ok := app.Manager().Registry().Get("custom.fire")
		return ok && a.DisplayName == "Fire Two"
	})

	if app.reloads.Load() == 0 {
		t.Error("reload counter not incremented")
	}
}
