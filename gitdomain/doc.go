// Package gitdomain provides the immutable value types that represent Git
// history facts for the release-note generation pipeline.
//
// Every type in this package is constructed through a validating constructor
// and carries no public mutator: an invalid Commit, Actor, Diff, Metadata, or
// ChangeMetadata value can never be observed to exist. Validation failures
// are reported as *ValidationError values that name the offending field and
// wrap a sentinel error checkable with errors.Is.
//
// The package performs no I/O and no logging. It is the sole gatekeeper
// between raw Git plumbing output (supplied by the ingest package or any
// other producer) and the downstream grouping and summarization stages.
package gitdomain
