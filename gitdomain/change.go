package gitdomain

import "strings"

// ChangeType describes how the commits of one logical change relate to the
// branch topology they came from. It is the contract the grouping stage must
// satisfy when it tags groups of commits.
type ChangeType string

const (
	// ChangeTypeDirect indicates commits made directly on the target branch.
	ChangeTypeDirect ChangeType = "direct"

	// ChangeTypeMerge indicates a merge of a single source branch.
	ChangeTypeMerge ChangeType = "merge"

	// ChangeTypeSquash indicates a squash-merge of a single source branch.
	ChangeTypeSquash ChangeType = "squash"

	// ChangeTypeRebase indicates commits replayed from another branch.
	ChangeTypeRebase ChangeType = "rebase"

	// ChangeTypeOctopus indicates a merge combining two or more source
	// branches in one commit.
	ChangeTypeOctopus ChangeType = "octopus"

	// ChangeTypeInitial indicates the change that starts a history; it has
	// no source branches and no merge base.
	ChangeTypeInitial ChangeType = "initial"
)

// String returns the string representation of the ChangeType.
func (t ChangeType) String() string { return string(t) }

// Valid reports whether the type is one of the recognized values.
func (t ChangeType) Valid() bool {
	switch t {
	case ChangeTypeDirect, ChangeTypeMerge, ChangeTypeSquash,
		ChangeTypeRebase, ChangeTypeOctopus, ChangeTypeInitial:
		return true
	default:
		return false
	}
}

// ChangeOpts carries the optional fields of a ChangeMetadata value.
type ChangeOpts struct {
	// TargetBranch is the branch the change landed on (e.g. "main").
	// Optional; when supplied it must not be blank.
	TargetBranch string

	// MergeBase is the common ancestor id of the source and target
	// branches. Optional; validated as a SHA when supplied.
	MergeBase string

	// PullRequestID is the forge-side identifier of the pull/merge request
	// that carried the change, when one exists.
	PullRequestID string
}

// ChangeMetadata describes the relationship between one logical change and
// the branch(es) it originated from. It has no behavior beyond validation;
// it pins down the contract for the grouping stage. Values are immutable
// once constructed.
type ChangeMetadata struct {
	changeType     ChangeType
	sourceBranches []string
	targetBranch   string
	mergeBase      SHA
	pullRequestID  string
}

// NewChangeMetadata validates the business rules tying a change type to its
// source branches:
//
//   - octopus requires at least two source branches
//   - initial requires zero source branches and no merge base
//   - merge and squash require exactly one source branch
//
// Source branch names are trimmed and must be non-empty. The order of
// source branches is preserved.
func NewChangeMetadata(changeType ChangeType, sourceBranches []string, opts ChangeOpts) (ChangeMetadata, error) {
	if !changeType.Valid() {
		return ChangeMetadata{}, fieldError(ErrInvalidChangeType, "change_type",
			"must be one of direct, merge, squash, rebase, octopus, initial",
			changeType.String())
	}

	branches := make([]string, len(sourceBranches))
	for i, b := range sourceBranches {
		name := strings.TrimSpace(b)
		if name == "" {
			return ChangeMetadata{}, fieldError(ErrInvalidRefName, "source_branches",
				"branch names cannot be empty or whitespace-only", "")
		}
		branches[i] = name
	}

	switch changeType {
	case ChangeTypeOctopus:
		if len(branches) < 2 {
			return ChangeMetadata{}, fieldError(ErrInvalidChange, "source_branches",
				"octopus merges combine at least two source branches", "")
		}
	case ChangeTypeInitial:
		if len(branches) != 0 {
			return ChangeMetadata{}, fieldError(ErrInvalidChange, "source_branches",
				"initial changes have no source branches", "")
		}
		if strings.TrimSpace(opts.MergeBase) != "" {
			return ChangeMetadata{}, fieldError(ErrInvalidChange, "merge_base",
				"initial changes have no merge base", "")
		}
	case ChangeTypeMerge, ChangeTypeSquash:
		if len(branches) != 1 {
			return ChangeMetadata{}, fieldError(ErrInvalidChange, "source_branches",
				changeType.String()+" changes have exactly one source branch", "")
		}
	}

	target := strings.TrimSpace(opts.TargetBranch)
	if opts.TargetBranch != "" && target == "" {
		return ChangeMetadata{}, fieldError(ErrInvalidRefName, "target_branch",
			"target branch cannot be whitespace-only", "")
	}

	var base SHA
	if strings.TrimSpace(opts.MergeBase) != "" {
		var err error
		base, err = parseSHAField(opts.MergeBase, "merge_base")
		if err != nil {
			return ChangeMetadata{}, err
		}
	}

	return ChangeMetadata{
		changeType:     changeType,
		sourceBranches: branches,
		targetBranch:   target,
		mergeBase:      base,
		pullRequestID:  strings.TrimSpace(opts.PullRequestID),
	}, nil
}

// Type returns the change type.
func (c ChangeMetadata) Type() ChangeType { return c.changeType }

// SourceBranches returns the source branch names in order. The returned
// slice is a copy; mutating it does not affect the ChangeMetadata.
func (c ChangeMetadata) SourceBranches() []string {
	out := make([]string, len(c.sourceBranches))
	copy(out, c.sourceBranches)
	return out
}

// TargetBranch returns the branch the change landed on, or the empty string
// when unknown.
func (c ChangeMetadata) TargetBranch() string { return c.targetBranch }

// MergeBase returns the common ancestor id, or the zero SHA when absent.
func (c ChangeMetadata) MergeBase() SHA { return c.mergeBase }

// PullRequestID returns the forge-side identifier, or the empty string when
// the change was not carried by a pull/merge request.
func (c ChangeMetadata) PullRequestID() string { return c.pullRequestID }
