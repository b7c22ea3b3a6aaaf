package keybinding

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/dshills/edithost/internal/input/key"
)

func nopHandler(args ...any) error { return nil }

func TestRegisterDynamicSyntheticIDs(t *testing.T) {
	r := NewRegistry()

	id1, err := r.RegisterDynamic(key.Ctrl('k'), nopHandler, "", "")
	if err != nil {
		t.Fatalf("RegisterDynamic() error = %v", err)
	}
	id2, err := r.RegisterDynamic(key.Ctrl('j'), nopHandler, "", "")
	if err != nil {
		t.Fatalf("RegisterDynamic() error = %v", err)
	}

	n1 := parseDynamicID(t, id1)
	n2 := parseDynamicID(t, id2)

	if id1 == id2 {
		t.Errorf("synthetic ids should be distinct, both %q", id1)
	}
	if n2 <= n1 {
		t.Errorf("synthetic ids should strictly increase: %d then %d", n1, n2)
	}
}

func TestSyntheticCounterSharedAcrossRegistries(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	idA, err := a.RegisterDynamic(key.Ctrl('a'), nopHandler, "", "")
	if err != nil {
		t.Fatalf("RegisterDynamic() error = %v", err)
	}
	idB, err := b.RegisterDynamic(key.Ctrl('b'), nopHandler, "", "")
	if err != nil {
		t.Fatalf("RegisterDynamic() error = %v", err)
	}

	if parseDynamicID(t, idB) <= parseDynamicID(t, idA) {
		t.Errorf("counter should be process-wide: %q then %q", idA, idB)
	}
}

func parseDynamicID(t *testing.T, id string) uint64 {
	t.Helper()
	if !strings.HasPrefix(id, "DYNAMIC_") {
		t.Fatalf("id %q should have DYNAMIC_ prefix", id)
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(id, "DYNAMIC_"), 10, 64)
	if err != nil {
		t.Fatalf("id %q should carry a numeric suffix: %v", id, err)
	}
	return n
}

func TestRegisterDynamicExplicitID(t *testing.T) {
	r := NewRegistry()

	id, err := r.RegisterDynamic(key.Ctrl('k'), nopHandler, "", "my.command")
	if err != nil {
		t.Fatalf("RegisterDynamic() error = %v", err)
	}
	if id != "my.command" {
		t.Errorf("id = %q, want %q", id, "my.command")
	}

	if _, err := r.RegisterDynamic(key.Ctrl('j'), nopHandler, "", "my.command"); !errors.Is(err, ErrDuplicateCommand) {
		t.Errorf("duplicate explicit id error = %v, want ErrDuplicateCommand", err)
	}
}

func TestRegisterDynamicMalformedWhen(t *testing.T) {
	r := NewRegistry()

	expr := "editorTextFocus &&"
	_, err := r.RegisterDynamic(key.Ctrl('k'), nopHandler, expr, "")
	if err == nil {
		t.Fatal("malformed when expression should be a hard error")
	}
	if !strings.Contains(err.Error(), expr) {
		t.Errorf("error %q should name the offending expression %q", err, expr)
	}
	if r.Len() != 0 {
		t.Errorf("failed registration should not add an entry, got %d", r.Len())
	}
}

func TestRegisterDynamicNilHandler(t *testing.T) {
	r := NewRegistry()
	if _, err := r.RegisterDynamic(key.Ctrl('k'), nil, "", ""); !errors.Is(err, ErrNilHandler) {
		t.Errorf("error = %v, want ErrNilHandler", err)
	}
}

func TestDynamicWeights(t *testing.T) {
	r := NewRegistry()
	if _, err := r.RegisterDynamic(key.Ctrl('k'), nopHandler, "", ""); err != nil {
		t.Fatalf("RegisterDynamic() error = %v", err)
	}

	entries := r.ExtraBindings()
	if len(entries) != 1 {
		t.Fatalf("len(ExtraBindings()) = %d, want 1", len(entries))
	}
	if entries[0].WeightPrimary != 1000 {
		t.Errorf("WeightPrimary = %d, want 1000", entries[0].WeightPrimary)
	}
	if entries[0].WeightSecondary != 0 {
		t.Errorf("WeightSecondary = %d, want 0", entries[0].WeightSecondary)
	}
}

func TestExtraBindingsRegistrationOrder(t *testing.T) {
	r := NewRegistry()

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := r.RegisterDynamic(key.Ctrl('k'), nopHandler, "", fmt.Sprintf("cmd.%d", i))
		if err != nil {
			t.Fatalf("RegisterDynamic() error = %v", err)
		}
		ids = append(ids, id)
	}

	entries := r.ExtraBindings()
	if len(entries) != len(ids) {
		t.Fatalf("len(ExtraBindings()) = %d, want %d", len(entries), len(ids))
	}
	for i, e := range entries {
		if e.Command != ids[i] {
			t.Errorf("entries[%d].Command = %q, want %q", i, e.Command, ids[i])
		}
	}
}

func TestHandlerLookup(t *testing.T) {
	r := NewRegistry()

	called := false
	h := func(args ...any) error {
		called = true
		return nil
	}

	id, err := r.RegisterDynamic(key.Ctrl('k'), h, "", "")
	if err != nil {
		t.Fatalf("RegisterDynamic() error = %v", err)
	}

	got, ok := r.Handler(id)
	if !ok {
		t.Fatalf("Handler(%q) not found", id)
	}
	if err := got(); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !called {
		t.Error("Handler() should return the handler passed at registration")
	}

	if _, ok := r.Handler("no.such.command"); ok {
		t.Error("Handler() should miss for unknown command ids")
	}
}

func TestChangeHookFires(t *testing.T) {
	r := NewRegistry()

	fired := 0
	r.SetChangeHook(func() { fired++ })

	if _, err := r.RegisterDynamic(key.Ctrl('k'), nopHandler, "", ""); err != nil {
		t.Fatalf("RegisterDynamic() error = %v", err)
	}
	if fired != 1 {
		t.Errorf("change hook fired %d times after registration, want 1", fired)
	}

	if err := r.ReplaceDynamic(nil, nil); err != nil {
		t.Fatalf("ReplaceDynamic() error = %v", err)
	}
	if fired != 2 {
		t.Errorf("change hook fired %d times after replace, want 2", fired)
	}
}

func TestReplaceDynamic(t *testing.T) {
	r := NewRegistry()
	if _, err := r.RegisterDynamic(key.Ctrl('k'), nopHandler, "", "old.command"); err != nil {
		t.Fatalf("RegisterDynamic() error = %v", err)
	}

	entries := []Entry{{Chord: key.Ctrl('n'), Command: "new.command", WeightPrimary: 1000}}
	handlers := map[string]Handler{"new.command": nopHandler}
	if err := r.ReplaceDynamic(entries, handlers); err != nil {
		t.Fatalf("ReplaceDynamic() error = %v", err)
	}

	if _, ok := r.Handler("old.command"); ok {
		t.Error("old handler should be gone after replace")
	}
	if _, ok := r.Handler("new.command"); !ok {
		t.Error("new handler should be present after replace")
	}

	if err := r.ReplaceDynamic(entries, nil); !errors.Is(err, ErrNilHandler) {
		t.Errorf("replace without handlers error = %v, want ErrNilHandler", err)
	}
}
