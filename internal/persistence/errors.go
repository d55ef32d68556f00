package persistence

import "fmt"

// ValidationError reports a save request missing required fields. It is
// raised before any store call and surfaced to the user as-is.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// StoreError wraps a failure from the underlying store, keeping the
// store-provided detail for display. Store failures are terminal for the
// action; no automatic retry and no fallback value.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
