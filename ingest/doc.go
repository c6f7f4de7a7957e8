// Package ingest reads commits out of real Git repositories and turns them
// into validated gitdomain values. It is the upstream producer for the
// release-note pipeline: go-git supplies the raw history, this package walks
// it, and every fact passes through the gitdomain validators before anything
// downstream can observe it.
//
// Validation errors from gitdomain propagate to the caller untouched; this
// package never skips or repairs a malformed record on its own.
package ingest
