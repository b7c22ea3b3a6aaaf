package script

import (
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/edithost/internal/input/keybinding"
)

func TestBindRegistersDynamic(t *testing.T) {
	reg := keybinding.NewRegistry()
	l := NewLoader(reg)
	defer l.Close()

	err := l.RunString(`
		the_id = bind("Ctrl+K", function() fired = true end)
	`)
	if err != nil {
		t.Fatalf("RunString() error = %v", err)
	}

	id, ok := l.L.GetGlobal("the_id").(lua.LString)
	if !ok {
		t.Fatal("bind should return the command id")
	}
	if !strings.HasPrefix(string(id), "DYNAMIC_") {
		t.Errorf("id = %q, want a synthetic DYNAMIC_ id", id)
	}

	h, ok := reg.Handler(string(id))
	if !ok {
		t.Fatal("registry should hold the script handler")
	}
	if err := h(); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if l.L.GetGlobal("fired") != lua.LTrue {
		t.Error("invoking the handler should run the Lua function")
	}
}

func TestBindOptions(t *testing.T) {
	reg := keybinding.NewRegistry()
	l := NewLoader(reg)
	defer l.Close()

	err := l.RunString(`
		bind("Ctrl+J", function() end, { when = "editorTextFocus", id = "script.jump" })
	`)
	if err != nil {
		t.Fatalf("RunString() error = %v", err)
	}

	entries := reg.ExtraBindings()
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Command != "script.jump" {
		t.Errorf("Command = %q, want explicit id", entries[0].Command)
	}
	if entries[0].When.String() != "editorTextFocus" {
		t.Errorf("When = %q, want guard from opts", entries[0].When.String())
	}
}

func TestBindErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad chord", `bind("Hyper+K", function() end)`},
		{"bad when", `bind("Ctrl+K", function() end, { when = "a &&" })`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := keybinding.NewRegistry()
			l := NewLoader(reg)
			defer l.Close()

			if err := l.RunString(tt.src); err == nil {
				t.Error("script error should propagate")
			}
			if reg.Len() != 0 {
				t.Errorf("failed bind should not register, got %d entries", reg.Len())
			}
		})
	}
}

func TestScriptHandlerErrorPropagates(t *testing.T) {
	reg := keybinding.NewRegistry()
	l := NewLoader(reg)
	defer l.Close()

	err := l.RunString(`bind("Ctrl+K", function() error("boom") end, { id = "script.boom" })`)
	if err != nil {
		t.Fatalf("RunString() error = %v", err)
	}

	h, _ := reg.Handler("script.boom")
	if err := h(); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("handler error = %v, want the Lua error", err)
	}
}
