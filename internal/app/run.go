package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/inputstorm/internal/input"
	"github.com/dshills/inputstorm/internal/input/device"
	"github.com/dshills/inputstorm/internal/input/history"
	"github.com/dshills/inputstorm/internal/input/physical"
)

// eventQueueSize bounds the batches buffered between the poll goroutine
// and the frame loop.
const eventQueueSize = 64

// recentMax caps the trigger descriptions kept for the dashboard.
const recentMax = 10

// Run starts the demo loop and blocks until quit is requested or
// Shutdown is called. Returns ErrQuit on a user-initiated quit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.term == nil {
		return ErrNoTerminal
	}
	if err := app.term.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer app.term.Shutdown()

	app.log.Info("demo loop started", zap.Int("fps", app.fps()))

	events := make(chan []device.Event, eventQueueSize)
	go app.pollLoop(events)

	err := app.frameLoop(events)
	app.log.Info("demo loop stopped", zap.Uint64("frames", app.frames))
	return err
}

func (app *Application) fps() int {
	if app.opts.FPS > 0 {
		return app.opts.FPS
	}
	return DefaultFPS
}

// pollLoop blocks on the terminal and forwards event batches to the
// frame loop. Exits when the terminal is interrupted or closed.
func (app *Application) pollLoop(events chan<- []device.Event) {
	defer close(events)
	for {
		batch, ok := app.term.PollEvent()
		if !ok {
			return
		}
		if len(batch) == 0 {
			continue
		}
		select {
		case events <- batch:
		case <-app.done:
			return
		}
	}
}

// frameLoop advances the pipeline at the configured frame rate.
func (app *Application) frameLoop(events <-chan []device.Event) error {
	ticker := time.NewTicker(time.Second / time.Duration(app.fps()))
	defer ticker.Stop()

	lastUpdate := time.Now()

	for {
		select {
		case <-app.done:
			return nil

		case now := <-ticker.C:
			dt := now.Sub(lastUpdate)
			lastUpdate = now
			if err := app.step(now, dt, events); err != nil {
				return err
			}
		}
	}
}

// step runs one frame: drain input, expire the latch, update and
// publish the adapters, update the manager, then react and render.
func (app *Application) step(now time.Time, dt time.Duration, events <-chan []device.Event) error {
drain:
	for {
		select {
		case batch, ok := <-events:
			if !ok {
				select {
				case <-app.done:
					// Shutdown in progress.
					return nil
				default:
					// Terminal gone.
					return ErrQuit
				}
			}
			for _, ev := range batch {
				app.latch.Observe(ev, now)
				app.dispatch(ev)
			}
		default:
			break drain
		}
	}

	for _, ev := range app.latch.Expire(now) {
		app.dispatch(ev)
	}

	app.keyboard.Update(dt)
	app.mouse.Update(dt)
	app.pads.Update(dt)

	app.keyboard.Publish(app.manager)
	app.mouse.Publish(app.manager)
	app.pads.Publish(app.manager)

	app.manager.Update(dt.Seconds())
	app.frames++

	app.drainTriggers()

	if err := app.react(); err != nil {
		return err
	}

	app.render()
	return nil
}

// dispatch routes one device event to the adapter that owns it.
func (app *Application) dispatch(ev device.Event) {
	if app.keyboard.HandleEvent(ev) {
		return
	}
	if app.mouse.HandleEvent(ev) {
		return
	}
	app.pads.HandleEvent(ev)
}

// react applies the frame's resolved actions to the demo itself.
func (app *Application) react() error {
	if app.manager.IsActionPressed("menu.toggle") {
		app.toggleMenu()
	}

	// Ctrl+C quits. Checked on the raw keyboard state so it works even
	// when every action is gated off.
	if app.keyboard.IsDown(physical.KeyLeftCtrl) && app.keyboard.JustPressed(physical.KeyC) {
		return ErrQuit
	}

	return nil
}

// toggleMenu pushes or pops the menu context. While the menu is open,
// gameplay actions are deny-listed and the ui.* actions, which require
// the menu context, become available.
func (app *Application) toggleMenu() {
	if app.manager.HasContext("menu") {
		app.manager.PopContext()
		app.log.Info("menu closed")
		app.remember("menu closed")
		return
	}
	app.manager.PushContext(menuContext())
	app.log.Info("menu opened")
	app.remember("menu opened")
}

func menuContext() input.Context {
	return input.NewContext("menu", 100).WithDisabled(
		"move.forward", "move.back", "move.left", "move.right",
		"move.x", "move.y", "look.x", "look.y",
		"jump", "fire", "aim", "melee",
		"interact", "sprint", "crouch",
	)
}

// drainTriggers consumes pending trigger events without blocking.
func (app *Application) drainTriggers() {
	for {
		select {
		case e := <-app.manager.Triggers():
			app.observeTrigger(e)
		default:
			return
		}
	}
}

// observeTrigger logs a channel-delivered trigger and records it for
// the dashboard. The trigger channel carries ActionTriggered events.
func (app *Application) observeTrigger(e history.Event) {
	t, ok := e.(history.ActionTriggered)
	if !ok {
		return
	}
	app.log.Debug("action triggered",
		zap.String("action", t.ActionID),
		zap.Float64("intensity", t.Intensity))
	app.remember(fmt.Sprintf("%s (%.2f)", t.ActionID, t.Intensity))
}

// remember prepends a dashboard line, newest first.
func (app *Application) remember(line string) {
	app.recent = append([]string{line}, app.recent...)
	if len(app.recent) > recentMax {
		app.recent = app.recent[:recentMax]
	}
}
