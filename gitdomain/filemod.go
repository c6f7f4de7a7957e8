package gitdomain

import "strings"

// ChangeKind classifies how a single file changed within one commit.
type ChangeKind string

const (
	// ChangeKindAdded indicates the file was created in this commit.
	ChangeKindAdded ChangeKind = "added"

	// ChangeKindModified indicates the file's content changed in place.
	ChangeKindModified ChangeKind = "modified"

	// ChangeKindDeleted indicates the file was removed.
	ChangeKindDeleted ChangeKind = "deleted"

	// ChangeKindRenamed indicates the file moved from a previous path.
	ChangeKindRenamed ChangeKind = "renamed"

	// ChangeKindCopied indicates the file was copied from a previous path.
	ChangeKindCopied ChangeKind = "copied"
)

// String returns the string representation of the ChangeKind.
func (k ChangeKind) String() string { return string(k) }

// Valid reports whether the kind is one of the recognized values.
func (k ChangeKind) Valid() bool {
	switch k {
	case ChangeKindAdded, ChangeKindModified, ChangeKindDeleted,
		ChangeKindRenamed, ChangeKindCopied:
		return true
	default:
		return false
	}
}

// carriesOldPath reports whether entries of this kind reference the path the
// file previously lived at.
func (k ChangeKind) carriesOldPath() bool {
	return k == ChangeKindRenamed || k == ChangeKindCopied
}

// FileModification records how one file changed within a commit: its path,
// the kind of change, the previous path for renames and copies, and the line
// counters. Values are immutable once constructed.
type FileModification struct {
	kind         ChangeKind
	path         string
	oldPath      string
	linesAdded   int
	linesDeleted int
}

// NewFileModification validates and constructs a per-file change record.
// The path must be non-empty, line counters non-negative, and the previous
// path is required for renamed/copied entries and forbidden otherwise.
func NewFileModification(
	kind ChangeKind,
	path, oldPath string,
	linesAdded, linesDeleted int,
) (FileModification, error) {
	if !kind.Valid() {
		return FileModification{}, fieldError(ErrInvalidChangeKind, "change_kind",
			"must be one of added, modified, deleted, renamed, copied", kind.String())
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return FileModification{}, fieldError(ErrInvalidPath, "path",
			"path cannot be empty or whitespace-only", "")
	}

	oldPath = strings.TrimSpace(oldPath)
	if kind.carriesOldPath() && oldPath == "" {
		return FileModification{}, fieldError(ErrInvalidPath, "old_path",
			kind.String()+" entries require the previous path", "")
	}
	if !kind.carriesOldPath() && oldPath != "" {
		return FileModification{}, fieldError(ErrInvalidPath, "old_path",
			"only renamed or copied entries carry a previous path", oldPath)
	}

	if linesAdded < 0 {
		return FileModification{}, fieldError(ErrNegativeLineCount, "lines_added",
			"lines added cannot be negative", "")
	}
	if linesDeleted < 0 {
		return FileModification{}, fieldError(ErrNegativeLineCount, "lines_deleted",
			"lines deleted cannot be negative", "")
	}

	return FileModification{
		kind:         kind,
		path:         path,
		oldPath:      oldPath,
		linesAdded:   linesAdded,
		linesDeleted: linesDeleted,
	}, nil
}

// Kind returns the kind of change.
func (m FileModification) Kind() ChangeKind { return m.kind }

// Path returns the file's path after the change.
func (m FileModification) Path() string { return m.path }

// OldPath returns the previous path for renamed/copied entries, and the
// empty string otherwise.
func (m FileModification) OldPath() string { return m.oldPath }

// LinesAdded returns the number of lines added to the file.
func (m FileModification) LinesAdded() int { return m.linesAdded }

// LinesDeleted returns the number of lines removed from the file.
func (m FileModification) LinesDeleted() int { return m.linesDeleted }

// IsZero reports whether the modification is unset.
func (m FileModification) IsZero() bool { return m == FileModification{} }
