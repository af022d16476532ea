package grid

import "errors"

// Common errors returned by the grid package. Only configuration mistakes
// surface as errors; runtime lookups degrade to defined defaults instead
// (out-of-range rows return nothing, stale sort directives are skipped,
// empty action targets make the action a no-op).
var (
	// ErrNoColumns is returned when a binder is configured without columns.
	ErrNoColumns = errors.New("no columns configured")

	// ErrDuplicateColumn is returned when two columns declare the same
	// explicit identifier, which would make later lookups ambiguous.
	ErrDuplicateColumn = errors.New("duplicate column id")

	// ErrNoHost is returned when a native selection mode is requested
	// without a host widget to delegate to.
	ErrNoHost = errors.New("native selection requires a host")

	// ErrUnknownAction is returned when an action label does not match any
	// configured action.
	ErrUnknownAction = errors.New("unknown action")
)
