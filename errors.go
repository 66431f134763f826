package ringchart

import "errors"

// Errors returned by item construction and layout. Callers test for them
// with errors.Is; the returned errors carry the offending value.
var (
	// ErrInvalidValue is returned by NewItem for negative, NaN or infinite values.
	ErrInvalidValue = errors.New("ringchart: invalid item value")

	// ErrDegenerateChart is returned by the proportion pass when an item with
	// a positive value sits under a zero-valued parent.
	ErrDegenerateChart = errors.New("ringchart: degenerate chart")

	// ErrDetached is returned when a layout pass runs on an item that belongs
	// to neither a parent item nor a chart.
	ErrDetached = errors.New("ringchart: item is not attached")

	// ErrInvalidDepthLimit is returned for a depth limit below 1.
	ErrInvalidDepthLimit = errors.New("ringchart: depth limit must be at least 1")
)
