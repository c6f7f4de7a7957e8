package ingest

import (
	"context"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/AIWorldTakeover/auto-release-note-generation/gitdomain"
)

// HistoryFilter configures which commits an ingestion run collects.
type HistoryFilter struct {
	// Since limits the walk to commits after the specified time.
	Since *time.Time

	// Until limits the walk to commits before the specified time.
	Until *time.Time

	// Author filters commits by author or committer name/email substring.
	Author string

	// MaxCount limits the number of commits collected. 0 means no limit.
	MaxCount int
}

// Commits walks the repository history from HEAD, newest first, and builds a
// validated gitdomain.Commit for every commit passing the filter. A single
// malformed record aborts the whole walk: whether to skip it instead is the
// caller's decision, made by catching the propagated validation error.
//
// Context timeout/cancellation is honored during the walk.
func (r *Repo) Commits(ctx context.Context, f HistoryFilter) ([]gitdomain.Commit, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, WrapError(ErrNoHistory, "cannot resolve HEAD")
	}

	iter, err := r.repo.Log(&gogit.LogOptions{
		From:  head.Hash(),
		Order: gogit.LogOrderCommitterTime,
		Since: f.Since,
		Until: f.Until,
	})
	if err != nil {
		return nil, WrapError(err, "failed to walk history")
	}
	defer iter.Close()

	refs, err := r.refsByCommit()
	if err != nil {
		return nil, err
	}

	var out []gitdomain.Commit
	err = iter.ForEach(func(oc *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if f.MaxCount > 0 && len(out) >= f.MaxCount {
			return storer.ErrStop
		}

		if f.Author != "" && !matchesAuthor(oc, f.Author) {
			return nil
		}

		commit, err := r.buildCommit(ctx, oc, refs[oc.Hash])
		if err != nil {
			return err
		}

		out = append(out, commit)
		return nil
	})
	if err != nil {
		return nil, WrapError(err, "failed to collect commits")
	}

	return out, nil
}

// matchesAuthor reports whether the commit's author or committer name/email
// contains the pattern.
func matchesAuthor(oc *object.Commit, pattern string) bool {
	return strings.Contains(oc.Author.Name, pattern) ||
		strings.Contains(oc.Author.Email, pattern) ||
		strings.Contains(oc.Committer.Name, pattern) ||
		strings.Contains(oc.Committer.Email, pattern)
}

// refsByCommit maps commit hashes to the short branch/tag names pointing at
// them. Annotated tags are resolved to the commit they ultimately reference.
func (r *Repo) refsByCommit() (map[plumbing.Hash][]string, error) {
	iter, err := r.repo.References()
	if err != nil {
		return nil, WrapError(err, "failed to list references")
	}

	out := make(map[plumbing.Hash][]string)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name()
		if !name.IsBranch() && !name.IsTag() && !name.IsRemote() {
			return nil
		}

		hash := ref.Hash()
		if tag, tagErr := r.repo.TagObject(hash); tagErr == nil {
			commit, commitErr := tag.Commit()
			if commitErr != nil {
				return nil // tag points at a tree or blob
			}
			hash = commit.Hash
		}

		out[hash] = append(out[hash], name.Short())
		return nil
	})
	if err != nil {
		return nil, WrapError(err, "failed to index references")
	}

	return out, nil
}
