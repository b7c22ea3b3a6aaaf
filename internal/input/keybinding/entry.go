package keybinding

import (
	"fmt"

	"github.com/dshills/edithost/internal/input/key"
	"github.com/dshills/edithost/internal/input/when"
)

// Handler executes a command. Args carry invocation arguments; handlers
// that take none ignore them.
type Handler func(args ...any) error

// Entry is one chord-to-command registration.
// Entries are immutable after creation; the dynamic set is only ever
// appended to or replaced as a whole.
type Entry struct {
	// Chord is the integer-encoded key combination that triggers the entry.
	Chord key.Chord

	// Command is the command identifier the entry resolves to.
	Command string

	// When guards the entry. A nil predicate always matches.
	When *when.Predicate

	// WeightPrimary is the first-order tie-break weight. Dynamic entries
	// use a fixed high weight so they always outrank static ones at an
	// equal chord.
	WeightPrimary int

	// WeightSecondary is the second-order tie-break weight.
	WeightSecondary int
}

// Matches returns true if the entry's guard holds in the given context.
func (e Entry) Matches(ctx *when.Context) bool {
	return e.When.Eval(ctx)
}

// String returns a short description for logs and debugging.
func (e Entry) String() string {
	if w := e.When.String(); w != "" {
		return fmt.Sprintf("%s -> %s [when %s]", e.Chord, e.Command, w)
	}
	return fmt.Sprintf("%s -> %s", e.Chord, e.Command)
}
