package gitdomain

import (
	"errors"
	"fmt"
)

// Common sentinel errors that can be checked with errors.Is().
// Each categorizes a class of rejected input; the concrete failure is always
// delivered as a *ValidationError wrapping one of these.

// ErrInvalidSHA is returned when a Git object id is empty, contains non-hex
// characters, or its length falls outside the accepted short-to-full range.
var ErrInvalidSHA = errors.New("invalid sha format")

// ErrEmptySignature is returned when a signature block is empty or
// whitespace-only where a signature was explicitly supplied.
var ErrEmptySignature = errors.New("empty signature")

// ErrInvalidSignature is returned when a signature block does not look like
// a PGP signature or a raw gpgsig header line.
var ErrInvalidSignature = errors.New("invalid signature")

// ErrInvalidTimestamp is returned when a timestamp is unset. Upstream callers
// must decide the zone explicitly; this layer never assumes UTC.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// ErrInvalidActor is returned when an actor's name or email fails validation.
var ErrInvalidActor = errors.New("invalid actor")

// ErrInvalidPath is returned when a file modification path is empty, or when
// the previous path is missing or present for the wrong change kind.
var ErrInvalidPath = errors.New("invalid path")

// ErrNegativeLineCount is returned when a line counter is negative.
var ErrNegativeLineCount = errors.New("negative line count")

// ErrInvalidChangeKind is returned when a change kind is not one of the
// recognized per-file modification kinds.
var ErrInvalidChangeKind = errors.New("invalid change kind")

// ErrInvalidRefName is returned when a branch or tag name is empty or
// whitespace-only.
var ErrInvalidRefName = errors.New("invalid ref name")

// ErrEmptyMessage is returned when a commit message is empty or
// whitespace-only.
var ErrEmptyMessage = errors.New("empty message")

// ErrInvalidChangeType is returned when a change type is not one of the
// recognized grouping relationships.
var ErrInvalidChangeType = errors.New("invalid change type")

// ErrInvalidChange is returned when a ChangeMetadata value violates the
// business rules tying its change type to its source branches.
var ErrInvalidChange = errors.New("invalid change metadata")

// ValidationError describes a value rejected at construction time. It names
// the offending field, gives a human-readable reason, and carries the
// rejected value where it is safe to include. The wrapped sentinel remains
// reachable through errors.Is/errors.As.
type ValidationError struct {
	// Field is the name of the offending field (e.g. "sha", "old_path").
	Field string

	// Reason is a human-readable description of why the value was rejected.
	Reason string

	// Value is the rejected value, where safe to include. Empty otherwise.
	Value string

	// Err is the sentinel error categorizing this failure.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Reason, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap exposes the sentinel for errors.Is checks.
func (e *ValidationError) Unwrap() error { return e.Err }

// fieldError builds a *ValidationError for the given field.
func fieldError(err error, field, reason, value string) error {
	return &ValidationError{Field: field, Reason: reason, Value: value, Err: err}
}
