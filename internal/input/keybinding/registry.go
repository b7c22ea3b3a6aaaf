package keybinding

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dshills/edithost/internal/input/key"
	"github.com/dshills/edithost/internal/input/when"
)

// Registration errors.
var (
	// ErrNilHandler indicates a dynamic registration without a handler.
	ErrNilHandler = errors.New("keybinding: nil handler")

	// ErrDuplicateCommand indicates an explicit command id that is already
	// registered in the dynamic set.
	ErrDuplicateCommand = errors.New("keybinding: duplicate command id")
)

// Dynamic entries always outrank static ones at an equal chord.
const (
	dynamicWeightPrimary   = 1000
	dynamicWeightSecondary = 0
)

// dynamicSeq generates synthetic command ids. It is process-wide state,
// shared across all registries, monotonically increasing and never reset.
var dynamicSeq atomic.Uint64

// Registry holds dynamically registered keybindings and their handlers.
//
// It is the second tier of command-handler storage: the dispatcher's own
// primary table is always consulted first, and falls back here only on a
// primary miss.
type Registry struct {
	mu       sync.RWMutex
	entries  []Entry
	handlers map[string]Handler
	onChange func()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// SetChangeHook installs a callback fired after every mutation of the
// dynamic set, so the dispatcher can rebuild its resolution table.
func (r *Registry) SetChangeHook(fn func()) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// RegisterDynamic registers a handler under a new dynamic keybinding and
// returns its command id.
//
// whenExpr guards the binding; the empty expression always matches, and a
// malformed expression is a hard error naming the expression. If explicitID
// is empty a synthetic "DYNAMIC_<n>" id is generated from the process-wide
// counter.
func (r *Registry) RegisterDynamic(chord key.Chord, h Handler, whenExpr, explicitID string) (string, error) {
	if h == nil {
		return "", ErrNilHandler
	}

	pred, err := when.Parse(whenExpr)
	if err != nil {
		return "", fmt.Errorf("registering binding for %s: %w", chord, err)
	}

	command := explicitID
	if command == "" {
		command = fmt.Sprintf("DYNAMIC_%d", dynamicSeq.Add(1))
	}

	r.mu.Lock()
	if _, exists := r.handlers[command]; exists {
		r.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrDuplicateCommand, command)
	}

	r.entries = append(r.entries, Entry{
		Chord:           chord,
		Command:         command,
		When:            pred,
		WeightPrimary:   dynamicWeightPrimary,
		WeightSecondary: dynamicWeightSecondary,
	})
	r.handlers[command] = h
	hook := r.onChange
	r.mu.Unlock()

	if hook != nil {
		hook()
	}

	return command, nil
}

// ExtraBindings returns the dynamic entries in registration order.
// The dispatcher merges these with its static set on every rebuild;
// registration order is the final tie-break, later entries winning.
func (r *Registry) ExtraBindings() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Handler returns the dynamic handler for a command id.
func (r *Registry) Handler(command string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[command]
	return h, ok
}

// ReplaceDynamic swaps the entire dynamic set. There is no single-entry
// removal; callers rebuild the set they want and swap it in.
// Every entry must have a handler under its command id.
func (r *Registry) ReplaceDynamic(entries []Entry, handlers map[string]Handler) error {
	for _, e := range entries {
		if handlers[e.Command] == nil {
			return fmt.Errorf("%w: entry %s has no handler", ErrNilHandler, e.Command)
		}
	}

	r.mu.Lock()
	r.entries = make([]Entry, len(entries))
	copy(r.entries, entries)
	r.handlers = make(map[string]Handler, len(handlers))
	for id, h := range handlers {
		r.handlers[id] = h
	}
	hook := r.onChange
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	return nil
}

// Len returns the number of dynamic entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
