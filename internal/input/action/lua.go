package action

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inputstorm/internal/input/physical"
)

// luaTimeout bounds table script evaluation. Scripts build literal
// tables; anything running longer is stuck.
const luaTimeout = 5 * time.Second

// LoadLuaFile evaluates a Lua table script and returns its actions.
//
// The script returns an array of action tables mirroring the JSON table
// format:
//
//	return {
//	  {
//	    id = "move.forward",
//	    display_name = "Move Forward",
//	    category = "movement",
//	    kind = "hybrid",
//	    bindings = {
//	      "key:w",
//	      {type = "analog", input = "pad-axis:left-y", threshold = 0.5},
//	    },
//	  },
//	}
func (l *Loader) LoadLuaFile(path string) ([]Action, error) {
	resolved := l.resolve(path)
	state := newLuaState()
	defer state.Close()

	ctx, cancel := context.WithTimeout(context.Background(), luaTimeout)
	defer cancel()
	state.SetContext(ctx)

	if err := state.DoFile(resolved); err != nil {
		return nil, fmt.Errorf("action table %s: %w: %v", resolved, ErrInvalidTable, err)
	}
	actions, err := luaActions(state)
	if err != nil {
		return nil, fmt.Errorf("action table %s: %w", resolved, err)
	}
	return actions, nil
}

// LoadLuaScript evaluates table source held in memory.
func (l *Loader) LoadLuaScript(script string) ([]Action, error) {
	state := newLuaState()
	defer state.Close()

	ctx, cancel := context.WithTimeout(context.Background(), luaTimeout)
	defer cancel()
	state.SetContext(ctx)

	if err := state.DoString(script); err != nil {
		return nil, fmt.Errorf("%w: lua: %v", ErrInvalidTable, err)
	}
	return luaActions(state)
}

// LoadLuaAndRegister loads a Lua table file and registers every action.
// Returns the number of actions registered.
func (l *Loader) LoadLuaAndRegister(path string) (int, error) {
	actions, err := l.LoadLuaFile(path)
	if err != nil {
		return 0, err
	}
	l.registry.RegisterAll(actions...)
	return len(actions), nil
}

// newLuaState builds a sandboxed interpreter for table scripts.
func newLuaState() *lua.LState {
	state := lua.NewState()
	sandboxLua(state)
	return state
}

// sandboxLua strips loaders and process access from a table script state.
// Table scripts only build data; they never need the filesystem.
func sandboxLua(state *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load"} {
		state.SetGlobal(name, lua.LNil)
	}
	state.SetGlobal("io", lua.LNil)

	if pkg, ok := state.GetGlobal("package").(*lua.LTable); ok {
		pkg.RawSetString("path", lua.LString(""))
		pkg.RawSetString("cpath", lua.LString(""))
	}
	if osTable, ok := state.GetGlobal("os").(*lua.LTable); ok {
		for _, name := range []string{"execute", "exit", "remove", "rename", "tmpname", "setenv", "getenv"} {
			osTable.RawSetString(name, lua.LNil)
		}
	}
}

// luaActions extracts the returned action array from an executed state.
func luaActions(state *lua.LState) ([]Action, error) {
	ret := state.Get(-1)
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: script must return an array of action tables, got %s", ErrInvalidTable, ret.Type())
	}

	var actions []Action
	for i := 1; i <= tbl.Len(); i++ {
		entry, ok := tbl.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("%w: action %d is not a table", ErrInvalidTable, i)
		}
		a, err := luaAction(entry)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// luaAction converts one script table into an Action.
func luaAction(entry *lua.LTable) (Action, error) {
	id := tableString(entry, "id")
	if id == "" {
		return Action{}, fmt.Errorf("%w: action missing id", ErrInvalidTable)
	}

	a := New(id)
	if name := tableString(entry, "display_name"); name != "" {
		a = a.WithDisplayName(name)
	}
	a = a.WithCategory(tableString(entry, "category"))

	kind, ok := KindFromName(tableString(entry, "kind"))
	if !ok {
		return Action{}, fmt.Errorf("%w: action %q: unknown kind %q", ErrInvalidTable, id, tableString(entry, "kind"))
	}
	a = a.WithKind(kind)

	a = a.WithDescription(tableString(entry, "description"))
	if n, ok := tableNumber(entry, "priority"); ok {
		a = a.WithPriority(int(n))
	}
	a = a.WithContext(tableString(entry, "context"))

	if tags, ok := entry.RawGetString("tags").(*lua.LTable); ok {
		var ts []string
		for i := 1; i <= tags.Len(); i++ {
			if s, ok := tags.RawGetInt(i).(lua.LString); ok {
				ts = append(ts, string(s))
			}
		}
		a = a.WithTags(ts...)
	}

	if list, ok := entry.RawGetString("bindings").(*lua.LTable); ok {
		for i := 1; i <= list.Len(); i++ {
			b, err := luaBinding(list.RawGetInt(i))
			if err != nil {
				return Action{}, fmt.Errorf("action %q: %w", id, err)
			}
			a.Bindings = append(a.Bindings, b)
		}
	}

	return a, nil
}

// luaBinding converts one binding value. Bare strings are Single
// bindings; tables dispatch on their type field.
func luaBinding(value lua.LValue) (Binding, error) {
	if s, ok := value.(lua.LString); ok {
		in, err := physical.ParseInput(string(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
		}
		return SingleOf(in), nil
	}

	tbl, ok := value.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: binding must be a string or table, got %s", ErrInvalidTable, value.Type())
	}

	switch typ := tableString(tbl, "type"); typ {
	case "single":
		in, err := physical.ParseInput(tableString(tbl, "input"))
		if err != nil {
			return nil, fmt.Errorf("%w: single binding: %v", ErrInvalidTable, err)
		}
		return SingleOf(in), nil

	case "modified":
		mod, err := physical.ParseInput(tableString(tbl, "modifier"))
		if err != nil {
			return nil, fmt.Errorf("%w: modified binding: %v", ErrInvalidTable, err)
		}
		key, err := physical.ParseInput(tableString(tbl, "key"))
		if err != nil {
			return nil, fmt.Errorf("%w: modified binding: %v", ErrInvalidTable, err)
		}
		return ModifiedOf(mod, key), nil

	case "combo":
		list, ok := tbl.RawGetString("inputs").(*lua.LTable)
		if !ok || list.Len() == 0 {
			return nil, fmt.Errorf("%w: combo binding: empty inputs", ErrInvalidTable)
		}
		inputs := make([]physical.Input, 0, list.Len())
		for i := 1; i <= list.Len(); i++ {
			s, ok := list.RawGetInt(i).(lua.LString)
			if !ok {
				return nil, fmt.Errorf("%w: combo binding: inputs must be strings", ErrInvalidTable)
			}
			in, err := physical.ParseInput(string(s))
			if err != nil {
				return nil, fmt.Errorf("%w: combo binding: %v", ErrInvalidTable, err)
			}
			inputs = append(inputs, in)
		}
		return ComboOf(inputs...), nil

	case "analog":
		in, err := physical.ParseInput(tableString(tbl, "input"))
		if err != nil {
			return nil, fmt.Errorf("%w: analog binding: %v", ErrInvalidTable, err)
		}
		threshold := defaultAnalogThreshold
		if n, ok := tableNumber(tbl, "threshold"); ok {
			threshold = n
		}
		deadzone := defaultAnalogDeadzone
		if n, ok := tableNumber(tbl, "deadzone"); ok {
			deadzone = n
		}
		return AnalogOf(in, threshold, deadzone), nil

	case "":
		return nil, fmt.Errorf("%w: binding missing type", ErrInvalidTable)
	default:
		return nil, fmt.Errorf("%w: unknown binding type %q", ErrInvalidTable, typ)
	}
}

// tableString reads a string field, empty when absent or mistyped.
func tableString(tbl *lua.LTable, key string) string {
	if v, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(v)
	}
	return ""
}

// tableNumber reads a numeric field, reporting presence.
func tableNumber(tbl *lua.LTable, key string) (float64, bool) {
	if v, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return float64(v), true
	}
	return 0, false
}
