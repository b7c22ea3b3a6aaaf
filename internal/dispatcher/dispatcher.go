// Package dispatcher resolves key chords to commands and executes them.
package dispatcher

import (
	"fmt"
	"sync"

	"github.com/dshills/edithost/internal/input/key"
	"github.com/dshills/edithost/internal/input/keybinding"
	"github.com/dshills/edithost/internal/input/when"
)

// HandlerSource is an ordered handler-lookup tier.
// The keybinding registry implements it for the dynamic fallback tier.
type HandlerSource interface {
	Handler(command string) (keybinding.Handler, bool)
}

// ExtraBindingSource supplies dynamic entries for resolution-table rebuilds.
type ExtraBindingSource interface {
	ExtraBindings() []keybinding.Entry
}

// Dispatcher merges static and dynamic keybindings into a chord-indexed
// resolution table and executes the winning command.
//
// Handler lookup is composed of two ordered tiers rather than inherited:
// the primary table owned here is always consulted first, and the fallback
// source only on a primary miss. A primary entry with the same command id
// as a dynamic one therefore always wins.
type Dispatcher struct {
	mu       sync.RWMutex
	static   []keybinding.Entry
	extra    ExtraBindingSource
	table    map[key.Chord][]indexedEntry
	primary  map[string]keybinding.Handler
	fallback HandlerSource
}

// indexedEntry remembers merge position for the order-sensitive tie-break.
type indexedEntry struct {
	keybinding.Entry
	index int
}

// New creates a dispatcher seeded with static entries.
func New(static []keybinding.Entry) *Dispatcher {
	d := &Dispatcher{
		static:  append([]keybinding.Entry(nil), static...),
		primary: make(map[string]keybinding.Handler),
	}
	d.Rebuild()
	return d
}

// AttachRegistry wires a keybinding registry as the dynamic tier: its
// entries join every rebuild, its handlers serve as the fallback lookup,
// and its change hook triggers rebuilds.
func (d *Dispatcher) AttachRegistry(r *keybinding.Registry) {
	d.mu.Lock()
	d.extra = r
	d.fallback = r
	d.mu.Unlock()

	r.SetChangeHook(d.Rebuild)
	d.Rebuild()
}

// SetStatic replaces the static entry set and rebuilds.
// Used by config live reload.
func (d *Dispatcher) SetStatic(static []keybinding.Entry) {
	d.mu.Lock()
	d.static = append([]keybinding.Entry(nil), static...)
	d.mu.Unlock()
	d.Rebuild()
}

// RegisterPrimary installs a handler in the primary table.
func (d *Dispatcher) RegisterPrimary(command string, h keybinding.Handler) {
	d.mu.Lock()
	d.primary[command] = h
	d.mu.Unlock()
}

// Rebuild recomputes the resolution table from the static set plus the
// dynamic source's current entries. Dynamic entries merge after static
// ones, preserving their registration order.
func (d *Dispatcher) Rebuild() {
	d.mu.Lock()
	defer d.mu.Unlock()

	merged := append([]keybinding.Entry(nil), d.static...)
	if d.extra != nil {
		merged = append(merged, d.extra.ExtraBindings()...)
	}

	table := make(map[key.Chord][]indexedEntry)
	for i, e := range merged {
		table[e.Chord] = append(table[e.Chord], indexedEntry{Entry: e, index: i})
	}
	d.table = table
}

// Resolve selects the winning entry for a chord in the given context.
// Among matching entries the highest primary weight wins, then the highest
// secondary weight, then the most recently merged entry.
func (d *Dispatcher) Resolve(chord key.Chord, ctx *when.Context) (keybinding.Entry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var best indexedEntry
	found := false
	for _, cand := range d.table[chord] {
		if !cand.Matches(ctx) {
			continue
		}
		if !found || cand.outranks(best) {
			best = cand
			found = true
		}
	}
	return best.Entry, found
}

// outranks reports whether e beats other under the tie-break policy.
func (e indexedEntry) outranks(other indexedEntry) bool {
	if e.WeightPrimary != other.WeightPrimary {
		return e.WeightPrimary > other.WeightPrimary
	}
	if e.WeightSecondary != other.WeightSecondary {
		return e.WeightSecondary > other.WeightSecondary
	}
	return e.index > other.index
}

// Lookup returns the handler for a command id, primary table first, then
// the dynamic fallback tier.
func (d *Dispatcher) Lookup(command string) (keybinding.Handler, bool) {
	d.mu.RLock()
	h, ok := d.primary[command]
	fallback := d.fallback
	d.mu.RUnlock()

	if ok {
		return h, true
	}
	if fallback != nil {
		return fallback.Handler(command)
	}
	return nil, false
}

// Dispatch resolves a chord and executes the winning command's handler.
func (d *Dispatcher) Dispatch(chord key.Chord, ctx *when.Context, args ...any) error {
	entry, ok := d.Resolve(chord, ctx)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoBinding, chord)
	}

	h, ok := d.Lookup(entry.Command)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoHandler, entry.Command)
	}

	if err := h(args...); err != nil {
		return fmt.Errorf("executing %s: %w", entry.Command, err)
	}
	return nil
}
