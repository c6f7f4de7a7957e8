package gitdomain

// Diff is the ordered collection of per-file modifications for one commit
// together with its aggregate counters. The counters are derived from the
// entries at construction and are never supplied independently, so they
// cannot drift from the entries they summarize.
type Diff struct {
	entries      []FileModification
	linesAdded   int
	linesDeleted int
}

// NewDiff constructs a Diff from per-file modifications, preserving their
// order and deriving the aggregate counters. The entry slice is copied so
// later caller mutations cannot reach the constructed value. Zero-value
// entries (which bypass NewFileModification) are rejected.
func NewDiff(entries []FileModification) (Diff, error) {
	copied := make([]FileModification, len(entries))
	var added, deleted int

	for i, e := range entries {
		if e.IsZero() {
			return Diff{}, fieldError(ErrInvalidPath, "entries",
				"diff entries must be constructed via NewFileModification", "")
		}
		copied[i] = e
		added += e.LinesAdded()
		deleted += e.LinesDeleted()
	}

	return Diff{entries: copied, linesAdded: added, linesDeleted: deleted}, nil
}

// Entries returns the per-file modifications in order. The returned slice is
// a copy; mutating it does not affect the Diff.
func (d Diff) Entries() []FileModification {
	out := make([]FileModification, len(d.entries))
	copy(out, d.entries)
	return out
}

// TotalFiles returns the number of files changed.
func (d Diff) TotalFiles() int { return len(d.entries) }

// TotalLinesAdded returns the sum of lines added across all entries.
func (d Diff) TotalLinesAdded() int { return d.linesAdded }

// TotalLinesDeleted returns the sum of lines deleted across all entries.
func (d Diff) TotalLinesDeleted() int { return d.linesDeleted }

// TotalChanges returns the total number of changed lines, added plus deleted.
func (d Diff) TotalChanges() int { return d.linesAdded + d.linesDeleted }

// AffectedPaths returns every unique path touched by the diff, in order of
// first appearance. Previous paths of renamed/copied entries are included.
func (d Diff) AffectedPaths() []string {
	seen := make(map[string]struct{}, len(d.entries))
	var out []string

	add := func(p string) {
		if p == "" {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for _, e := range d.entries {
		add(e.OldPath())
		add(e.Path())
	}
	return out
}
