// Package plugin provides a bridge between the Go core and Lua-based shortcode scripts.
//
// A plugin is a Lua file in the project's plugins directory defining a global
// Shortcodes table that maps a shortcode name to a function receiving the
// attribute table and returning an HTML string:
//
//	Shortcodes = {
//	    badge = function(attrs)
//	        return '<span class="badge">' .. (attrs.text or "") .. '</span>'
//	    end,
//	}
package plugin

import (
	"fmt"
	"path/filepath"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/log"
	"github.com/tsumiki-site/tsumiki/util"
)

// ShortcodesGlobal is the required global table name in a plugin script.
const ShortcodesGlobal = "Shortcodes"

// builtins are the shortcode names owned by the core renderer. A plugin
// registering one of these would be silently shadowed, so registration
// rejects them outright.
var builtins = map[string]struct{}{
	"video":   {},
	"callout": {},
	"counter": {},
}

// Shortcode renders custom markup from the shortcode's attribute map.
type Shortcode func(attrs map[string]string) (string, error)

// Registry holds the shortcodes contributed by the loaded plugin scripts.
type Registry struct {
	shortcodes map[string]Shortcode
	states     []*lua.LState
}

// Get returns the named shortcode if any plugin registered it.
func (r *Registry) Get(name string) (Shortcode, bool) {
	if r == nil {
		return nil, false
	}
	fn, ok := r.shortcodes[name]
	return fn, ok
}

// Names returns the sorted shortcode names, for diagnostics and completions.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.shortcodes))
	for name := range r.shortcodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close tears down the underlying Lua states. The registry is unusable afterwards.
func (r *Registry) Close() {
	for _, state := range r.states {
		state.Close()
	}
	r.states = nil
	r.shortcodes = nil
}

// LoadDir executes every .lua file in dir and collects the shortcodes they
// register. A missing directory is not an error: the registry is just empty.
// Name collisions, both between plugins and with the builtin shortcodes,
// are rejected.
func LoadDir(dir string) (*Registry, error) {
	registry := &Registry{shortcodes: make(map[string]Shortcode)}

	exists, err := filesystem.API().DirExists(dir)
	if err != nil {
		return nil, fmt.Errorf("plugins dir: %w", err)
	}
	if !exists {
		return registry, nil
	}

	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read plugins dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if err := registry.loadScript(path); err != nil {
			registry.Close()
			return nil, err
		}
	}

	return registry, nil
}

// loadScript executes one plugin file and registers its shortcode table.
func (r *Registry) loadScript(path string) error {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return fmt.Errorf("read plugin: %w", err)
	}

	state := lua.NewState()

	name := util.FileStem(path)
	if err := state.DoString(string(data)); err != nil {
		state.Close()
		return fmt.Errorf("plugin %s: %w", name, err)
	}

	table, ok := state.GetGlobal(ShortcodesGlobal).(*lua.LTable)
	if !ok {
		state.Close()
		return fmt.Errorf("plugin %s: global %s table is required but not defined", name, ShortcodesGlobal)
	}

	var registerErr error
	table.ForEach(func(k, v lua.LValue) {
		if registerErr != nil {
			return
		}

		shortcode := k.String()
		fn, ok := v.(*lua.LFunction)
		if !ok {
			registerErr = fmt.Errorf("plugin %s: %s.%s is not a function", name, ShortcodesGlobal, shortcode)
			return
		}

		if _, reserved := builtins[shortcode]; reserved {
			registerErr = fmt.Errorf("plugin %s: shortcode %q is a builtin and cannot be overridden", name, shortcode)
			return
		}

		if _, taken := r.shortcodes[shortcode]; taken {
			registerErr = fmt.Errorf("plugin %s: shortcode %q is already registered", name, shortcode)
			return
		}

		r.shortcodes[shortcode] = makeShortcode(state, fn)
		log.Debugf("plugin %s registered shortcode %q", name, shortcode)
	})
	if registerErr != nil {
		state.Close()
		return registerErr
	}

	r.states = append(r.states, state)
	return nil
}

// makeShortcode wraps a Lua function into the Go shortcode signature.
func makeShortcode(state *lua.LState, fn *lua.LFunction) Shortcode {
	return func(attrs map[string]string) (string, error) {
		table := state.NewTable()
		for k, v := range attrs {
			state.SetField(table, k, lua.LString(v))
		}

		err := state.CallByParam(lua.P{
			Fn:      fn,
			NRet:    1,
			Protect: true,
		}, table)
		if err != nil {
			return "", err
		}

		ret := state.Get(-1)
		state.Pop(1)

		if ret.Type() != lua.LTString {
			return "", fmt.Errorf("shortcode returned %s, expected string", ret.Type())
		}
		return ret.String(), nil
	}
}
