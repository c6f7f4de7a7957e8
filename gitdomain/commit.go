package gitdomain

import (
	"fmt"
	"strings"
)

// summaryPreviewLength bounds the summary portion of the compact log form.
const summaryPreviewLength = 50

// Commit composes identity, structure, message, and diff into one immutable
// record representing a single Git commit — the unit handed to the
// downstream grouping stage.
type Commit struct {
	metadata  Metadata
	author    Actor
	committer Actor
	message   string
	diff      Diff
	aiSummary string
}

// NewCommit validates and composes a commit record. The metadata, author,
// and committer must be previously constructed (non-zero) values; the
// message must be non-empty after trimming. The AI summary slot starts
// absent — it is reserved for the summarization stage and never populated
// by this layer.
func NewCommit(metadata Metadata, author, committer Actor, message string, diff Diff) (Commit, error) {
	if metadata.IsZero() {
		return Commit{}, fieldError(ErrInvalidSHA, "metadata",
			"metadata must be constructed via NewMetadata", "")
	}
	if author.IsZero() {
		return Commit{}, fieldError(ErrInvalidActor, "author",
			"author must be constructed via NewActor", "")
	}
	if committer.IsZero() {
		return Commit{}, fieldError(ErrInvalidActor, "committer",
			"committer must be constructed via NewActor", "")
	}

	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return Commit{}, fieldError(ErrEmptyMessage, "message",
			"message cannot be empty or whitespace-only", "")
	}

	return Commit{
		metadata:  metadata,
		author:    author,
		committer: committer,
		message:   trimmed,
		diff:      diff,
	}, nil
}

// Metadata returns the commit's structural metadata.
func (c Commit) Metadata() Metadata { return c.metadata }

// Author returns the identity that wrote the change.
func (c Commit) Author() Actor { return c.author }

// Committer returns the identity that recorded the commit.
func (c Commit) Committer() Actor { return c.committer }

// Message returns the full trimmed commit message.
func (c Commit) Message() string { return c.message }

// Summary returns the first line of the commit message.
func (c Commit) Summary() string {
	if i := strings.IndexByte(c.message, '\n'); i >= 0 {
		return strings.TrimSpace(c.message[:i])
	}
	return c.message
}

// Diff returns the commit's file-level changes.
func (c Commit) Diff() Diff { return c.diff }

// SHA returns the commit's object id.
func (c Commit) SHA() SHA { return c.metadata.SHA() }

// ShortSHA returns the abbreviated object id for display.
func (c Commit) ShortSHA(n int) string { return c.metadata.SHA().Short(n) }

// IsRootCommit reports whether the commit has no parents.
func (c Commit) IsRootCommit() bool { return c.metadata.IsRootCommit() }

// IsMergeCommit reports whether the commit has two or more parents.
func (c Commit) IsMergeCommit() bool { return c.metadata.IsMergeCommit() }

// TotalChanges returns the total number of changed lines in the diff.
func (c Commit) TotalChanges() int { return c.diff.TotalChanges() }

// AffectedPaths returns every unique path touched by the commit.
func (c Commit) AffectedPaths() []string { return c.diff.AffectedPaths() }

// AISummary returns the AI-generated summary and whether one is present.
func (c Commit) AISummary() (string, bool) { return c.aiSummary, c.aiSummary != "" }

// HasAISummary reports whether an AI-generated summary has been attached.
func (c Commit) HasAISummary() bool { return c.aiSummary != "" }

// WithAISummary returns a copy of the commit carrying the given summary.
// Whitespace-only input clears the slot. The receiver is left untouched;
// "changing" a commit always means constructing a new value.
func (c Commit) WithAISummary(summary string) Commit {
	c.aiSummary = strings.TrimSpace(summary)
	return c
}

// String returns a compact one-line form suitable for logs:
// "<short-sha> <summary> (<n> files)" with an "[AI]" marker when an
// AI summary is attached.
func (c Commit) String() string {
	summary := c.Summary()
	if len(summary) > summaryPreviewLength {
		summary = summary[:summaryPreviewLength] + "..."
	}

	filesWord := "files"
	if c.diff.TotalFiles() == 1 {
		filesWord = "file"
	}

	ai := ""
	if c.HasAISummary() {
		ai = " [AI]"
	}

	return fmt.Sprintf("%s %s (%d %s)%s",
		c.ShortSHA(0), summary, c.diff.TotalFiles(), filesWord, ai)
}
