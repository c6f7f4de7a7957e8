package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AIWorldTakeover/auto-release-note-generation/gitdomain"
)

func TestCommitsEmptyRepository(t *testing.T) {
	tr := setupTestRepo(t)

	_, err := tr.repo.Commits(tr.ctx, HistoryFilter{})
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestCommitsWalksHistory(t *testing.T) {
	tr := setupTestRepo(t)

	tr.writeFile(t, "readme.md", "hello\nworld\n")
	first := tr.commit(t, "Initial commit")

	tr.writeFile(t, "main.go", "package main\n\nfunc main() {}\n")
	second := tr.commit(t, "Add entrypoint\n\nWith a longer body.")

	commits, err := tr.repo.Commits(tr.ctx, HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, commits, 2)

	// Newest first.
	newest, oldest := commits[0], commits[1]
	assert.Equal(t, second.String(), newest.SHA().String())
	assert.Equal(t, first.String(), oldest.SHA().String())

	assert.Equal(t, "Add entrypoint", newest.Summary())
	assert.False(t, newest.IsRootCommit())
	require.Len(t, newest.Metadata().Parents(), 1)
	assert.Equal(t, first.String(), newest.Metadata().Parents()[0].String())

	assert.True(t, oldest.IsRootCommit())
	assert.False(t, oldest.IsMergeCommit())
	assert.Equal(t, "Test Author", oldest.Author().Name())
	assert.Equal(t, "test@example.com", oldest.Author().Email())
	assert.True(t, oldest.Metadata().Signature().IsZero())
}

func TestCommitsDiffStats(t *testing.T) {
	tr := setupTestRepo(t)

	tr.writeFile(t, "notes.txt", "line one\nline two\nline three\n")
	tr.commit(t, "Add notes")

	tr.writeFile(t, "notes.txt", "line one\nCHANGED\nline three\nline four\n")
	tr.commit(t, "Edit notes")

	commits, err := tr.repo.Commits(tr.ctx, HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, commits, 2)

	edit := commits[0].Diff()
	require.Equal(t, 1, edit.TotalFiles())

	entry := edit.Entries()[0]
	assert.Equal(t, gitdomain.ChangeKindModified, entry.Kind())
	assert.Equal(t, "notes.txt", entry.Path())
	assert.Equal(t, 2, entry.LinesAdded())
	assert.Equal(t, 1, entry.LinesDeleted())

	// Root commits diff against the empty tree.
	initial := commits[1].Diff()
	require.Equal(t, 1, initial.TotalFiles())
	assert.Equal(t, gitdomain.ChangeKindAdded, initial.Entries()[0].Kind())
	assert.Equal(t, 3, initial.TotalLinesAdded())
	assert.Equal(t, 0, initial.TotalLinesDeleted())
}

func TestCommitsDetectsRenames(t *testing.T) {
	tr := setupTestRepo(t)

	content := "alpha\nbravo\ncharlie\ndelta\necho\n"
	tr.writeFile(t, "old_name.txt", content)
	tr.commit(t, "Add file")

	tr.removeFile(t, "old_name.txt")
	tr.writeFile(t, "new_name.txt", content)
	tr.commit(t, "Move file")

	commits, err := tr.repo.Commits(tr.ctx, HistoryFilter{MaxCount: 1})
	require.NoError(t, err)
	require.Len(t, commits, 1)

	entries := commits[0].Diff().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, gitdomain.ChangeKindRenamed, entries[0].Kind())
	assert.Equal(t, "new_name.txt", entries[0].Path())
	assert.Equal(t, "old_name.txt", entries[0].OldPath())
}

func TestCommitsRefs(t *testing.T) {
	tr := setupTestRepo(t)

	tr.writeFile(t, "a.txt", "a\n")
	head := tr.commit(t, "First")

	_, err := tr.repo.repo.CreateTag("v1.0.0", head, nil)
	require.NoError(t, err)

	commits, err := tr.repo.Commits(tr.ctx, HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, commits, 1)

	refs := commits[0].Metadata().Refs()
	assert.Contains(t, refs, "master")
	assert.Contains(t, refs, "v1.0.0")
}

func TestCommitsAuthorFilter(t *testing.T) {
	tr := setupTestRepo(t)

	tr.writeFile(t, "a.txt", "a\n")
	tr.commitAs(t, "By Alice", "Alice", "alice@example.com")

	tr.writeFile(t, "b.txt", "b\n")
	tr.commitAs(t, "By Bob", "Bob", "bob@example.com")

	commits, err := tr.repo.Commits(tr.ctx, HistoryFilter{Author: "alice"})
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "By Alice", commits[0].Summary())
}

func TestCommitsMaxCount(t *testing.T) {
	tr := setupTestRepo(t)

	for _, name := range []string{"a", "b", "c", "d"} {
		tr.writeFile(t, name+".txt", name+"\n")
		tr.commit(t, "Add "+name)
	}

	commits, err := tr.repo.Commits(tr.ctx, HistoryFilter{MaxCount: 2})
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "Add d", commits[0].Summary())
	assert.Equal(t, "Add c", commits[1].Summary())
}

func TestCommitsTimeWindow(t *testing.T) {
	tr := setupTestRepo(t)

	tr.writeFile(t, "a.txt", "a\n")
	tr.commit(t, "Old commit")
	cutoff := tr.clock.Add(30 * time.Second)

	tr.writeFile(t, "b.txt", "b\n")
	tr.commit(t, "New commit")

	commits, err := tr.repo.Commits(tr.ctx, HistoryFilter{Since: &cutoff})
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "New commit", commits[0].Summary())
}

func TestCommitsHonorsCancellation(t *testing.T) {
	tr := setupTestRepo(t)

	tr.writeFile(t, "a.txt", "a\n")
	tr.commit(t, "First")

	ctx, cancel := context.WithCancel(tr.ctx)
	cancel()

	_, err := tr.repo.Commits(ctx, HistoryFilter{})
	assert.ErrorIs(t, err, context.Canceled)
}
