package gitdomain

import (
	"fmt"
	"sort"
	"strings"
)

// Metadata carries the structural facts of a Git commit that are independent
// of its content: the object id, its parent ids in ancestry order, the
// branch/tag names pointing at it, and an optional signature block.
// Values are immutable once constructed.
type Metadata struct {
	sha       SHA
	parents   []SHA
	refs      []string
	signature Signature
}

// NewMetadata validates raw structural facts into a Metadata value. The sha
// and every parent id go through ParseSHA; parent order is preserved (the
// first parent is the primary ancestry line of a merge). Ref names are
// trimmed and deduplicated — branch and tag names are unique identifiers, so
// duplicates collapse silently. The signature is optional.
func NewMetadata(sha string, parents, refs []string, signature string) (Metadata, error) {
	id, err := ParseSHA(sha)
	if err != nil {
		return Metadata{}, err
	}

	parentIDs := make([]SHA, len(parents))
	for i, p := range parents {
		parentIDs[i], err = parseSHAField(p, fmt.Sprintf("parents[%d]", i))
		if err != nil {
			return Metadata{}, err
		}
	}

	names, err := normalizeRefs(refs)
	if err != nil {
		return Metadata{}, err
	}

	sig, err := ParseOptionalSignature(signature)
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{sha: id, parents: parentIDs, refs: names, signature: sig}, nil
}

// normalizeRefs trims, validates, deduplicates, and sorts ref names. The
// sort only makes iteration deterministic; callers get no ordering promise.
func normalizeRefs(refs []string) ([]string, error) {
	seen := make(map[string]struct{}, len(refs))
	out := make([]string, 0, len(refs))

	for _, r := range refs {
		name := strings.TrimSpace(r)
		if name == "" {
			return nil, fieldError(ErrInvalidRefName, "refs",
				"ref names cannot be empty or whitespace-only", "")
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	sort.Strings(out)
	return out, nil
}

// SHA returns the commit's object id.
func (m Metadata) SHA() SHA { return m.sha }

// Parents returns the parent ids in ancestry order. The returned slice is a
// copy; mutating it does not affect the Metadata.
func (m Metadata) Parents() []SHA {
	out := make([]SHA, len(m.parents))
	copy(out, m.parents)
	return out
}

// Refs returns the branch/tag names pointing at the commit. The returned
// slice is a copy and carries no ordering guarantee.
func (m Metadata) Refs() []string {
	out := make([]string, len(m.refs))
	copy(out, m.refs)
	return out
}

// Signature returns the signature block, or the zero Signature when the
// commit is unsigned.
func (m Metadata) Signature() Signature { return m.signature }

// IsZero reports whether the metadata is unset.
func (m Metadata) IsZero() bool { return m.sha.IsZero() }

// IsRootCommit reports whether the commit has no parents.
func (m Metadata) IsRootCommit() bool { return len(m.parents) == 0 }

// IsMergeCommit reports whether the commit has two or more parents.
func (m Metadata) IsMergeCommit() bool { return len(m.parents) >= 2 }
