package naming

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the queried name has no record and no
	// pending registration on the naming server.
	ErrNotFound = errors.New("name is not registered")

	// ErrPending is returned by callers that cannot proceed while a
	// registration has not yet propagated to all naming server replicas.
	// The condition clears by itself, retry later.
	ErrPending = errors.New("name registration is not yet propagated, retry later")

	// ErrInvalidName rejects lookups of empty or non-normalized names
	// before any network call is made.
	ErrInvalidName = errors.New("name is empty or not normalized")
)

// ConflictReason tells why an update lost to the server-side precondition
// check.
type ConflictReason int

const (
	// StaleGeneration means another writer updated the record between our
	// resolve and our put. Re-resolve and decide again before retrying.
	StaleGeneration ConflictReason = iota

	// NotPropagated means the record exists but has not finished
	// propagating, so an update could be silently lost.
	NotPropagated
)

func (r ConflictReason) String() string {
	if r == NotPropagated {
		return "not yet propagated"
	}
	return "stale generation"
}

// ConflictError is never retried automatically: a blind resubmit could
// overwrite a concurrent administrator's change.
type ConflictError struct {
	Name   string
	Reason ConflictReason
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("update conflict for name %q: %s", e.Name, e.Reason)
}

// Error is an error reported by the naming server itself.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return "naming server returned error: " + e.Message
	}
	return fmt.Sprintf("naming server returned error: %s (%s)", e.Message, e.Code)
}

// ConnectionError is a transient transport failure. A read may simply be
// retried; after a failed update the caller must re-resolve first, because
// the write may or may not have reached the server.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "naming server connection error: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Conflict error codes the naming server uses for failed precondition
// checks of a put call.
const (
	codeGenerationMismatch = "generation.mismatch"
	codeDigestMismatch     = "previous-digest.mismatch"
)

func isConflictCode(code string) bool {
	return code == codeGenerationMismatch || code == codeDigestMismatch
}
