package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrNoBinding indicates no binding matched the chord in context.
	ErrNoBinding = errors.New("dispatcher: no binding for chord")

	// ErrNoHandler indicates a resolved command has no handler in either tier.
	ErrNoHandler = errors.New("dispatcher: no handler for command")
)
