package ingest

import (
	"errors"
	"fmt"
)

// Sentinel errors for repository access. All can be checked with errors.Is().

// ErrInvalidOptions is returned when the supplied Options are missing
// required fields or carry invalid values.
var ErrInvalidOptions = errors.New("invalid options")

// ErrNoHistory is returned when a repository has no commits to walk
// (no HEAD, e.g. a freshly initialized repository).
var ErrNoHistory = errors.New("repository has no history")

// WrapError wraps an error with additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapErrorf wraps an error with formatted additional context while
// preserving the ability to check against sentinel errors using errors.Is().
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
