package projectflow

import (
	"errors"
	"fmt"
)

// NotFoundError reports an operation against an id that is not in the store.
type NotFoundError struct {
	Collection Collection
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Collection, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError reports a payload rejected before it reached the collections.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError reports a failed durable write or read. The in-memory
// state is never touched by the failure: the store keeps serving its truth
// and diverges from durable storage until a later save succeeds.
type PersistenceError struct {
	Op         string
	Collection Collection
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s on %s: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
