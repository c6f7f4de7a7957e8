package ingest

import (
	"context"
	"fmt"
	"strings"

	fdiff "github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"

	"github.com/AIWorldTakeover/auto-release-note-generation/gitdomain"
)

// buildCommit converts a raw go-git commit into a validated gitdomain.Commit.
// Every field passes through the gitdomain constructors; errors propagate
// untouched so the caller sees exactly which field of which commit was bad.
func (r *Repo) buildCommit(ctx context.Context, oc *object.Commit, refs []string) (gitdomain.Commit, error) {
	parents := make([]string, len(oc.ParentHashes))
	for i, p := range oc.ParentHashes {
		parents[i] = p.String()
	}

	meta, err := gitdomain.NewMetadata(oc.Hash.String(), parents, refs, oc.PGPSignature)
	if err != nil {
		return gitdomain.Commit{}, err
	}

	author, err := gitdomain.NewActor(oc.Author.Name, oc.Author.Email, oc.Author.When)
	if err != nil {
		return gitdomain.Commit{}, err
	}

	committer, err := gitdomain.NewActor(oc.Committer.Name, oc.Committer.Email, oc.Committer.When)
	if err != nil {
		return gitdomain.Commit{}, err
	}

	diff, err := r.buildDiff(ctx, oc)
	if err != nil {
		return gitdomain.Commit{}, err
	}

	return gitdomain.NewCommit(meta, author, committer, oc.Message, diff)
}

// buildDiff computes the per-file modifications of a commit against its
// first parent (or the empty tree for root commits), with rename detection.
// go-git does not detect copies, so ChangeKindCopied never originates here.
func (r *Repo) buildDiff(ctx context.Context, oc *object.Commit) (gitdomain.Diff, error) {
	tree, err := oc.Tree()
	if err != nil {
		return gitdomain.Diff{}, WrapError(err, "failed to get commit tree")
	}

	var parentTree *object.Tree
	if oc.NumParents() > 0 {
		parent, parentErr := oc.Parent(0)
		if parentErr != nil {
			return gitdomain.Diff{}, WrapError(parentErr, "failed to get first parent")
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return gitdomain.Diff{}, WrapError(err, "failed to get parent tree")
		}
	}

	changes, err := object.DiffTreeWithOptions(ctx, parentTree, tree, object.DefaultDiffTreeOptions)
	if err != nil {
		return gitdomain.Diff{}, WrapError(err, "failed to diff trees")
	}

	entries := make([]gitdomain.FileModification, 0, len(changes))
	for _, change := range changes {
		mod, modErr := fileModification(ctx, change)
		if modErr != nil {
			return gitdomain.Diff{}, modErr
		}
		entries = append(entries, mod)
	}

	return gitdomain.NewDiff(entries)
}

// fileModification converts one tree change into a validated per-file record.
func fileModification(ctx context.Context, change *object.Change) (gitdomain.FileModification, error) {
	action, err := change.Action()
	if err != nil {
		return gitdomain.FileModification{}, WrapError(err, "failed to classify change")
	}

	var kind gitdomain.ChangeKind
	var path, oldPath string

	switch action {
	case merkletrie.Insert:
		kind = gitdomain.ChangeKindAdded
		path = change.To.Name
	case merkletrie.Delete:
		kind = gitdomain.ChangeKindDeleted
		path = change.From.Name
	case merkletrie.Modify:
		if change.From.Name != change.To.Name {
			kind = gitdomain.ChangeKindRenamed
			path = change.To.Name
			oldPath = change.From.Name
		} else {
			kind = gitdomain.ChangeKindModified
			path = change.To.Name
		}
	default:
		return gitdomain.FileModification{}, fmt.Errorf("unsupported change action %v", action)
	}

	added, deleted, err := countLines(ctx, change)
	if err != nil {
		return gitdomain.FileModification{}, err
	}

	return gitdomain.NewFileModification(kind, path, oldPath, added, deleted)
}

// countLines sums added/deleted lines across the change's patch chunks,
// mirroring how git computes per-file numstat. Binary patches count as zero.
func countLines(ctx context.Context, change *object.Change) (added, deleted int, err error) {
	patch, err := change.PatchContext(ctx)
	if err != nil {
		return 0, 0, WrapError(err, "failed to generate patch")
	}

	for _, fp := range patch.FilePatches() {
		if fp.IsBinary() {
			continue
		}
		for _, chunk := range fp.Chunks() {
			content := chunk.Content()
			if content == "" {
				continue
			}

			lines := strings.Count(content, "\n")
			if content[len(content)-1] != '\n' {
				lines++
			}

			switch chunk.Type() {
			case fdiff.Add:
				added += lines
			case fdiff.Delete:
				deleted += lines
			}
		}
	}

	return added, deleted, nil
}
