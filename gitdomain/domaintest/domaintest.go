// Package domaintest provides deterministic factories for gitdomain values.
// Each factory builds a known-valid default and panics if construction
// fails, so tests can compose fixtures without error plumbing. There is no
// registry; every generator is an explicit function.
package domaintest

import (
	"fmt"
	"time"

	"github.com/AIWorldTakeover/auto-release-note-generation/gitdomain"
)

// Default fixture values shared across factories.
const (
	DefaultName  = "John Doe"
	DefaultEmail = "john.doe@example.com"

	DefaultSHA       = "abc123def456789abcdef123456789abcdef1234"
	DefaultParentSHA = "abc123def456789abcdef123456789abcdef1235"

	DefaultSignature = "-----BEGIN PGP SIGNATURE-----\nVersion: GnuPG v2\n\n" +
		"iQIcBAABCAAGBQJhXYZ1AAoJEH8JWXvNOxq+ABC123def456789abcdef123456789\n" +
		"=AbC1\n-----END PGP SIGNATURE-----"
)

// DefaultTimestamp is the fixed point in time used by the factories.
var DefaultTimestamp = time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("domaintest: fixture construction failed: %v", err))
	}
	return v
}

// Actor returns a valid default actor.
func Actor() gitdomain.Actor {
	return ActorNamed(DefaultName, DefaultEmail)
}

// ActorNamed returns an actor with the given identity at DefaultTimestamp.
func ActorNamed(name, email string) gitdomain.Actor {
	return must(gitdomain.NewActor(name, email, DefaultTimestamp))
}

// Metadata returns metadata for DefaultSHA with the given parent ids.
// No parents yields a root commit, one a regular commit, two or more a
// merge commit.
func Metadata(parents ...string) gitdomain.Metadata {
	return must(gitdomain.NewMetadata(DefaultSHA, parents, nil, ""))
}

// MetadataWithRefs returns metadata for DefaultSHA carrying the given
// branch/tag names.
func MetadataWithRefs(refs ...string) gitdomain.Metadata {
	return must(gitdomain.NewMetadata(DefaultSHA, []string{DefaultParentSHA}, refs, ""))
}

// SignedMetadata returns metadata carrying DefaultSignature.
func SignedMetadata() gitdomain.Metadata {
	return must(gitdomain.NewMetadata(DefaultSHA, []string{DefaultParentSHA}, nil, DefaultSignature))
}

// FileModification returns a modified-file entry for the given path.
func FileModification(path string, added, deleted int) gitdomain.FileModification {
	return must(gitdomain.NewFileModification(gitdomain.ChangeKindModified, path, "", added, deleted))
}

// AddedFile returns an added-file entry for the given path.
func AddedFile(path string, lines int) gitdomain.FileModification {
	return must(gitdomain.NewFileModification(gitdomain.ChangeKindAdded, path, "", lines, 0))
}

// RenamedFile returns a renamed-file entry.
func RenamedFile(oldPath, newPath string) gitdomain.FileModification {
	return must(gitdomain.NewFileModification(gitdomain.ChangeKindRenamed, newPath, oldPath, 0, 0))
}

// Diff aggregates the given entries; with none it returns the empty diff.
func Diff(entries ...gitdomain.FileModification) gitdomain.Diff {
	return must(gitdomain.NewDiff(entries))
}

// Commit returns a valid default commit: root metadata, default actors, a
// one-line message, and an empty diff.
func Commit() gitdomain.Commit {
	return CommitWith(Metadata(), "Add user authentication")
}

// CommitWith composes a commit from the given metadata and message using
// the default actors and an empty diff.
func CommitWith(meta gitdomain.Metadata, message string) gitdomain.Commit {
	return must(gitdomain.NewCommit(meta, Actor(), Actor(), message, Diff()))
}

// ChangeMetadata returns change metadata of the given type with the given
// source branches and a "main" target branch.
func ChangeMetadata(t gitdomain.ChangeType, sourceBranches ...string) gitdomain.ChangeMetadata {
	return must(gitdomain.NewChangeMetadata(t, sourceBranches, gitdomain.ChangeOpts{
		TargetBranch: "main",
	}))
}
