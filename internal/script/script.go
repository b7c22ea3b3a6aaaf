// Package script runs user init scripts that register keybindings at
// runtime.
//
// Scripts see one global:
//
//	bind(keys, fn, opts?) -> command id
//
// where keys is a chord spec ("Ctrl+K" or "<C-k>"), fn is the handler, and
// opts may carry `when` (a context expression) and `id` (an explicit
// command id). Registration goes through the keybinding registry, so
// script bindings participate in resolution immediately and outrank static
// ones like any other dynamic binding.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/edithost/internal/input/key"
	"github.com/dshills/edithost/internal/input/keybinding"
)

// Loader owns a Lua state and exposes the binding API to scripts.
//
// The LState is not goroutine-safe; the loader and every handler it
// registers must run on the same goroutine, which matches the host's
// single-threaded dispatch model.
type Loader struct {
	L   *lua.LState
	reg *keybinding.Registry
}

// NewLoader creates a loader registering into the given registry.
func NewLoader(reg *keybinding.Registry) *Loader {
	L := lua.NewState()
	l := &Loader{L: L, reg: reg}
	L.SetGlobal("bind", L.NewFunction(l.bind))
	return l
}

// RunFile executes a script file.
func (l *Loader) RunFile(path string) error {
	if err := l.L.DoFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}

// RunString executes script source.
func (l *Loader) RunString(src string) error {
	if err := l.L.DoString(src); err != nil {
		return fmt.Errorf("running script: %w", err)
	}
	return nil
}

// Close releases the Lua state. Handlers registered by scripts must not be
// invoked afterwards.
func (l *Loader) Close() {
	l.L.Close()
}

// bind implements bind(keys, fn, opts?).
func (l *Loader) bind(L *lua.LState) int {
	keys := L.CheckString(1)
	fn := L.CheckFunction(2)

	var whenExpr, explicitID string
	if L.GetTop() >= 3 {
		opts := L.CheckTable(3)
		whenExpr = tableString(opts, "when")
		explicitID = tableString(opts, "id")
	}

	chord, err := key.Parse(keys)
	if err != nil {
		L.RaiseError("bind: %v", err)
		return 0
	}

	handler := func(args ...any) error {
		if err := L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}); err != nil {
			return fmt.Errorf("script handler for %s: %w", keys, err)
		}
		return nil
	}

	id, err := l.reg.RegisterDynamic(chord, handler, whenExpr, explicitID)
	if err != nil {
		L.RaiseError("bind: %v", err)
		return 0
	}

	L.Push(lua.LString(id))
	return 1
}

func tableString(t *lua.LTable, field string) string {
	if v, ok := t.RawGetString(field).(lua.LString); ok {
		return string(v)
	}
	return ""
}
