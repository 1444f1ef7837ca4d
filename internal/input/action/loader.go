package action

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/inputstorm/internal/input/physical"
)

// TableVersion is the action-table format version this loader understands.
const TableVersion = 1

// Default analog tuning for table bindings that omit the fields.
const (
	defaultAnalogThreshold = 0.5
	defaultAnalogDeadzone  = 0.1
)

var (
	// ErrInvalidTable reports a structurally broken action table.
	ErrInvalidTable = errors.New("invalid action table")

	// ErrUnknownAction reports an override that names an unregistered id.
	ErrUnknownAction = errors.New("unknown action")
)

// Loader reads JSON action tables and binding-override files.
//
// A table file looks like:
//
//	{
//	  "version": 1,
//	  "actions": [
//	    {
//	      "id": "move.forward",
//	      "display_name": "Move Forward",
//	      "category": "movement",
//	      "kind": "hybrid",
//	      "tags": ["core"],
//	      "priority": 10,
//	      "context": "gameplay",
//	      "bindings": [
//	        "key:w",
//	        {"type": "modified", "modifier": "key:lshift", "key": "key:w"},
//	        {"type": "analog", "input": "pad-axis:left-y", "threshold": 0.5, "deadzone": 0.1}
//	      ]
//	    }
//	  ]
//	}
//
// A bare string binding is shorthand for {"type": "single", "input": ...}.
//
// An overrides file replaces the bindings of already-registered actions:
//
//	{"overrides": {"move.forward": ["key:up"]}}
type Loader struct {
	registry    *Registry
	searchPaths []string
}

// NewLoader creates a loader that registers into the given registry.
func NewLoader(reg *Registry) *Loader {
	return &Loader{registry: reg}
}

// AddSearchPath appends a directory consulted by LoadFile for relative
// paths that do not resolve directly.
func (l *Loader) AddSearchPath(dir string) {
	l.searchPaths = append(l.searchPaths, dir)
}

// resolve locates a table file, consulting search paths for relative names.
func (l *Loader) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	for _, dir := range l.searchPaths {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return path
}

// LoadFile reads and parses one table file.
func (l *Loader) LoadFile(path string) ([]Action, error) {
	resolved := l.resolve(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("reading action table %s: %w", resolved, err)
	}

	actions, err := l.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("action table %s: %w", resolved, err)
	}
	return actions, nil
}

// LoadBytes parses a table from raw JSON.
func (l *Loader) LoadBytes(data []byte) ([]Action, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidTable)
	}

	root := gjson.ParseBytes(data)
	if v := root.Get("version"); v.Exists() && v.Int() != TableVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidTable, v.Int())
	}

	list := root.Get("actions")
	if !list.Exists() || !list.IsArray() {
		return nil, fmt.Errorf("%w: missing actions array", ErrInvalidTable)
	}

	var actions []Action
	var parseErr error
	list.ForEach(func(_, entry gjson.Result) bool {
		a, err := parseAction(entry)
		if err != nil {
			parseErr = err
			return false
		}
		actions = append(actions, a)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return actions, nil
}

// LoadAndRegister loads a table file and registers every action.
// Returns the number of actions registered.
func (l *Loader) LoadAndRegister(path string) (int, error) {
	actions, err := l.LoadFile(path)
	if err != nil {
		return 0, err
	}
	l.registry.RegisterAll(actions...)
	return len(actions), nil
}

// LoadDir registers every *.json table in a directory, in name order.
// Returns the total number of actions registered.
func (l *Loader) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading table dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	total := 0
	for _, name := range names {
		n, err := l.LoadAndRegister(filepath.Join(dir, name))
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// parseAction converts one table entry into an Action.
func parseAction(entry gjson.Result) (Action, error) {
	id := entry.Get("id").String()
	if id == "" {
		return Action{}, fmt.Errorf("%w: action missing id", ErrInvalidTable)
	}

	a := New(id)
	if v := entry.Get("display_name"); v.Exists() {
		a = a.WithDisplayName(v.String())
	}
	a = a.WithCategory(entry.Get("category").String())

	kind, ok := KindFromName(entry.Get("kind").String())
	if !ok {
		return Action{}, fmt.Errorf("%w: action %q: unknown kind %q", ErrInvalidTable, id, entry.Get("kind").String())
	}
	a = a.WithKind(kind)

	a = a.WithDescription(entry.Get("description").String())
	a = a.WithPriority(int(entry.Get("priority").Int()))
	a = a.WithContext(entry.Get("context").String())

	if tags := entry.Get("tags"); tags.IsArray() {
		var ts []string
		tags.ForEach(func(_, t gjson.Result) bool {
			ts = append(ts, t.String())
			return true
		})
		a = a.WithTags(ts...)
	}

	bindings, err := parseBindings(entry.Get("bindings"))
	if err != nil {
		return Action{}, fmt.Errorf("action %q: %w", id, err)
	}
	a.Bindings = bindings

	return a, nil
}

// parseBindings converts a bindings array; a missing array yields none.
func parseBindings(list gjson.Result) ([]Binding, error) {
	if !list.Exists() {
		return nil, nil
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: bindings must be an array", ErrInvalidTable)
	}

	var bindings []Binding
	var parseErr error
	list.ForEach(func(_, entry gjson.Result) bool {
		b, err := parseBinding(entry)
		if err != nil {
			parseErr = err
			return false
		}
		bindings = append(bindings, b)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return bindings, nil
}

// parseBinding converts one binding entry. Bare strings are Single
// bindings; objects dispatch on their "type" field.
func parseBinding(entry gjson.Result) (Binding, error) {
	if entry.Type == gjson.String {
		in, err := physical.ParseInput(entry.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
		}
		return SingleOf(in), nil
	}

	switch typ := entry.Get("type").String(); typ {
	case "single":
		in, err := physical.ParseInput(entry.Get("input").String())
		if err != nil {
			return nil, fmt.Errorf("%w: single binding: %v", ErrInvalidTable, err)
		}
		return SingleOf(in), nil

	case "modified":
		mod, err := physical.ParseInput(entry.Get("modifier").String())
		if err != nil {
			return nil, fmt.Errorf("%w: modified binding: %v", ErrInvalidTable, err)
		}
		key, err := physical.ParseInput(entry.Get("key").String())
		if err != nil {
			return nil, fmt.Errorf("%w: modified binding: %v", ErrInvalidTable, err)
		}
		return ModifiedOf(mod, key), nil

	case "combo":
		list := entry.Get("inputs")
		if !list.IsArray() {
			return nil, fmt.Errorf("%w: combo binding: inputs must be an array", ErrInvalidTable)
		}
		var inputs []physical.Input
		var parseErr error
		list.ForEach(func(_, item gjson.Result) bool {
			in, err := physical.ParseInput(item.String())
			if err != nil {
				parseErr = fmt.Errorf("%w: combo binding: %v", ErrInvalidTable, err)
				return false
			}
			inputs = append(inputs, in)
			return true
		})
		if parseErr != nil {
			return nil, parseErr
		}
		if len(inputs) == 0 {
			return nil, fmt.Errorf("%w: combo binding: empty inputs", ErrInvalidTable)
		}
		return ComboOf(inputs...), nil

	case "analog":
		in, err := physical.ParseInput(entry.Get("input").String())
		if err != nil {
			return nil, fmt.Errorf("%w: analog binding: %v", ErrInvalidTable, err)
		}
		threshold := defaultAnalogThreshold
		if v := entry.Get("threshold"); v.Exists() {
			threshold = v.Float()
		}
		deadzone := defaultAnalogDeadzone
		if v := entry.Get("deadzone"); v.Exists() {
			deadzone = v.Float()
		}
		return AnalogOf(in, threshold, deadzone), nil

	case "":
		return nil, fmt.Errorf("%w: binding missing type", ErrInvalidTable)
	default:
		return nil, fmt.Errorf("%w: unknown binding type %q", ErrInvalidTable, typ)
	}
}

// ApplyOverridesFile loads an overrides file and rebinds the named actions.
func (l *Loader) ApplyOverridesFile(path string) error {
	resolved := l.resolve(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		return fmt.Errorf("reading overrides %s: %w", resolved, err)
	}
	if err := l.ApplyOverrides(data); err != nil {
		return fmt.Errorf("overrides %s: %w", resolved, err)
	}
	return nil
}

// ApplyOverrides replaces the bindings of registered actions named in an
// overrides document. Unknown ids fail with a did-you-mean hint; nothing
// is applied when any entry is invalid.
func (l *Loader) ApplyOverrides(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: not valid JSON", ErrInvalidTable)
	}

	overrides := gjson.ParseBytes(data).Get("overrides")
	if !overrides.Exists() {
		return nil
	}

	type rebind struct {
		a        Action
		bindings []Binding
	}

	var pending []rebind
	var applyErr error
	overrides.ForEach(func(key, value gjson.Result) bool {
		id := key.String()
		a, ok := l.registry.Get(id)
		if !ok {
			applyErr = fmt.Errorf("override %q: %w%s", id, ErrUnknownAction, suggestHint(l.registry, id))
			return false
		}
		bindings, err := parseBindings(value)
		if err != nil {
			applyErr = fmt.Errorf("override %q: %w", id, err)
			return false
		}
		pending = append(pending, rebind{a: a, bindings: bindings})
		return true
	})
	if applyErr != nil {
		return applyErr
	}

	for _, p := range pending {
		p.a.Bindings = p.bindings
		l.registry.Register(p.a)
	}
	return nil
}

// WriteOverrides sets the current bindings of the given action ids in an
// overrides document, leaving unrelated content untouched. A nil document
// starts a fresh one.
func (l *Loader) WriteOverrides(data []byte, ids ...string) ([]byte, error) {
	if len(data) == 0 {
		data = []byte("{}")
	}

	out := data
	for _, id := range ids {
		a, ok := l.registry.Get(id)
		if !ok {
			return nil, fmt.Errorf("override %q: %w%s", id, ErrUnknownAction, suggestHint(l.registry, id))
		}

		arr := []byte("[]")
		for _, b := range a.Bindings {
			obj, err := bindingJSON(b)
			if err != nil {
				return nil, fmt.Errorf("override %q: %w", id, err)
			}
			arr, err = sjson.SetRawBytes(arr, "-1", obj)
			if err != nil {
				return nil, fmt.Errorf("override %q: %w", id, err)
			}
		}

		var err error
		out, err = sjson.SetRawBytes(out, "overrides."+escapePath(id), arr)
		if err != nil {
			return nil, fmt.Errorf("override %q: %w", id, err)
		}
	}
	return out, nil
}

// SaveOverridesFile merges the given ids into an overrides file on disk,
// creating it when absent.
func (l *Loader) SaveOverridesFile(path string, ids ...string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading overrides %s: %w", path, err)
		}
		data = nil
	}

	out, err := l.WriteOverrides(data, ids...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing overrides %s: %w", path, err)
	}
	return nil
}

// bindingJSON renders one binding as an overrides-file JSON value.
func bindingJSON(b Binding) ([]byte, error) {
	switch v := b.(type) {
	case Single:
		// Shorthand form keeps override files hand-editable.
		return []byte(strconv.Quote(v.Input.String())), nil
	case Modified:
		obj := []byte("{}")
		obj, _ = sjson.SetBytes(obj, "type", "modified")
		obj, _ = sjson.SetBytes(obj, "modifier", v.Modifier.String())
		obj, _ = sjson.SetBytes(obj, "key", v.Key.String())
		return obj, nil
	case Combo:
		obj := []byte("{}")
		obj, _ = sjson.SetBytes(obj, "type", "combo")
		for _, in := range v.Inputs {
			obj, _ = sjson.SetBytes(obj, "inputs.-1", in.String())
		}
		return obj, nil
	case Analog:
		obj := []byte("{}")
		obj, _ = sjson.SetBytes(obj, "type", "analog")
		obj, _ = sjson.SetBytes(obj, "input", v.Input.String())
		obj, _ = sjson.SetBytes(obj, "threshold", v.Threshold)
		obj, _ = sjson.SetBytes(obj, "deadzone", v.Deadzone)
		return obj, nil
	default:
		return nil, fmt.Errorf("%w: unexported binding shape %T", ErrInvalidTable, b)
	}
}

// escapePath escapes an action id for use as a gjson/sjson path element.
func escapePath(id string) string {
	var b strings.Builder
	for i := 0; i < len(id); i++ {
		switch id[i] {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(id[i])
	}
	return b.String()
}
