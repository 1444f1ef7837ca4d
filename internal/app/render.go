package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputstorm/internal/input"
)

// Dashboard styles.
var (
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePressed = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHeld    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// recentCol is the column where the recent-event panel starts.
const recentCol = 50

// render draws the dashboard: context stack, per-action state, recent
// trigger events, and a metrics footer.
func (app *Application) render() {
	width, height := app.term.Size()
	if width <= 0 || height <= 0 {
		return
	}
	app.term.Clear()

	app.term.SetText(0, 0, "inputstorm", styleTitle)
	hint := "[esc] menu   [ctrl+c] quit"
	if x := width - len(hint); x > 12 {
		app.term.SetText(x, 0, hint, styleDim)
	}

	app.term.SetText(0, 1, app.contextLine(), tcell.StyleDefault)
	app.term.SetText(0, 2, app.mouseLine(), styleDim)

	app.renderActions(4, height-2)
	app.renderRecent(4, height-2, width)

	if height > 2 {
		app.term.SetText(0, height-1, app.metricsLine(), styleDim)
	}

	app.term.Show()
}

// contextLine describes the context stack, bottom to top.
func (app *Application) contextLine() string {
	stack := app.manager.Contexts()
	if len(stack) == 0 {
		return "contexts: none"
	}
	parts := make([]string, 0, len(stack))
	for _, c := range stack {
		parts = append(parts, fmt.Sprintf("%s(%d)", c.Name, c.Priority))
	}
	line := "contexts: " + strings.Join(parts, " > ")
	if n := app.reloads.Load(); n > 0 {
		line += fmt.Sprintf("   reloads: %d", n)
	}
	return line
}

func (app *Application) mouseLine() string {
	pos := app.mouse.Position()
	where := "outside"
	if app.mouse.Inside() {
		where = "inside"
	}
	return fmt.Sprintf("mouse: %d,%d %s  clicks: %d", pos.X, pos.Y, where, app.mouse.ClickStreak())
}

// renderActions draws one row per registered action, sorted by id so
// categories group naturally.
func (app *Application) renderActions(top, bottom int) {
	actions := app.manager.Actions()
	sort.Slice(actions, func(i, j int) bool { return actions[i].ID < actions[j].ID })

	app.term.SetText(0, top, fmt.Sprintf("%-24s %-9s %7s  %s", "action", "state", "value", "enabled"), styleDim)

	y := top + 1
	for _, a := range actions {
		if y >= bottom {
			break
		}
		state := app.manager.ActionState(a.ID)
		enabled := app.manager.IsActionEnabled(a.ID)

		label := "yes"
		if !enabled {
			label = "no"
		}
		line := fmt.Sprintf("%-24s %-9s %7.2f  %s", a.ID, state, app.manager.ActionValue(a.ID), label)

		style := styleFor(state)
		if !enabled {
			style = styleDim
		}
		app.term.SetText(0, y, line, style)
		y++
	}
}

// renderRecent draws the newest trigger events in a right-hand panel.
func (app *Application) renderRecent(top, bottom, width int) {
	if width <= recentCol+4 {
		return
	}
	app.term.SetText(recentCol, top, "recent", styleDim)

	y := top + 1
	for _, line := range app.recent {
		if y >= bottom {
			break
		}
		if limit := width - recentCol; len(line) > limit {
			line = line[:limit]
		}
		app.term.SetText(recentCol, y, line, tcell.StyleDefault)
		y++
	}
}

func (app *Application) metricsLine() string {
	snap := app.manager.Metrics().Snapshot()
	return fmt.Sprintf("updates %d  events %d  triggers %d  combos %d  drops %d  avg %s  ups %.1f",
		snap.UpdatesTotal, snap.DeviceEventsTotal, snap.ActionsTriggered,
		snap.CombosTotal, snap.TriggerDrops, snap.AvgUpdateLatency, snap.UpdatesPerSecond)
}

// styleFor colors the active states; idle and released rows stay plain
// since every untouched action settles into released.
func styleFor(state input.ActionState) tcell.Style {
	switch state {
	case input.StatePressed:
		return stylePressed
	case input.StateHeld:
		return styleHeld
	default:
		return tcell.StyleDefault
	}
}
