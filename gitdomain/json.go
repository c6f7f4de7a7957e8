package gitdomain

import (
	"encoding/json"
	"time"
)

// Explicit per-entity JSON codecs. Decoding always routes through the
// validating constructors, so a payload that would produce an invalid value
// fails to decode instead of materializing a broken entity. There is no
// reflection-driven schema layer; these wire structs are the whole format.

type actorJSON struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// MarshalJSON implements json.Marshaler.
func (a Actor) MarshalJSON() ([]byte, error) {
	return json.Marshal(actorJSON{Name: a.name, Email: a.email, Timestamp: a.when})
}

// UnmarshalJSON implements json.Unmarshaler, validating via NewActor.
func (a *Actor) UnmarshalJSON(data []byte) error {
	var w actorJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	actor, err := NewActor(w.Name, w.Email, w.Timestamp)
	if err != nil {
		return err
	}
	*a = actor
	return nil
}

type fileModificationJSON struct {
	ChangeKind   ChangeKind `json:"change_kind"`
	Path         string     `json:"path"`
	OldPath      string     `json:"old_path,omitempty"`
	LinesAdded   int        `json:"lines_added"`
	LinesDeleted int        `json:"lines_deleted"`
}

// MarshalJSON implements json.Marshaler.
func (m FileModification) MarshalJSON() ([]byte, error) {
	return json.Marshal(fileModificationJSON{
		ChangeKind:   m.kind,
		Path:         m.path,
		OldPath:      m.oldPath,
		LinesAdded:   m.linesAdded,
		LinesDeleted: m.linesDeleted,
	})
}

// UnmarshalJSON implements json.Unmarshaler, validating via
// NewFileModification.
func (m *FileModification) UnmarshalJSON(data []byte) error {
	var w fileModificationJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	mod, err := NewFileModification(w.ChangeKind, w.Path, w.OldPath, w.LinesAdded, w.LinesDeleted)
	if err != nil {
		return err
	}
	*m = mod
	return nil
}

type diffJSON struct {
	Entries           []FileModification `json:"entries"`
	TotalFiles        int                `json:"total_files"`
	TotalLinesAdded   int                `json:"total_lines_added"`
	TotalLinesDeleted int                `json:"total_lines_deleted"`
}

// MarshalJSON implements json.Marshaler. The derived counters are written
// for readers' convenience; they are never read back.
func (d Diff) MarshalJSON() ([]byte, error) {
	return json.Marshal(diffJSON{
		Entries:           d.entries,
		TotalFiles:        len(d.entries),
		TotalLinesAdded:   d.linesAdded,
		TotalLinesDeleted: d.linesDeleted,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Only the entries are read; the
// counters are recomputed by NewDiff so they cannot drift from the entries.
func (d *Diff) UnmarshalJSON(data []byte) error {
	var w diffJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	diff, err := NewDiff(w.Entries)
	if err != nil {
		return err
	}
	*d = diff
	return nil
}

type metadataJSON struct {
	SHA       string   `json:"sha"`
	Parents   []string `json:"parents"`
	Refs      []string `json:"refs,omitempty"`
	Signature string   `json:"signature,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (m Metadata) MarshalJSON() ([]byte, error) {
	parents := make([]string, len(m.parents))
	for i, p := range m.parents {
		parents[i] = p.String()
	}
	return json.Marshal(metadataJSON{
		SHA:       m.sha.String(),
		Parents:   parents,
		Refs:      m.refs,
		Signature: m.signature.String(),
	})
}

// UnmarshalJSON implements json.Unmarshaler, validating via NewMetadata.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var w metadataJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	meta, err := NewMetadata(w.SHA, w.Parents, w.Refs, w.Signature)
	if err != nil {
		return err
	}
	*m = meta
	return nil
}

type commitJSON struct {
	Metadata  Metadata `json:"metadata"`
	Author    Actor    `json:"author"`
	Committer Actor    `json:"committer"`
	Message   string   `json:"message"`
	Diff      Diff     `json:"diff"`
	AISummary string   `json:"ai_summary,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (c Commit) MarshalJSON() ([]byte, error) {
	return json.Marshal(commitJSON{
		Metadata:  c.metadata,
		Author:    c.author,
		Committer: c.committer,
		Message:   c.message,
		Diff:      c.diff,
		AISummary: c.aiSummary,
	})
}

// UnmarshalJSON implements json.Unmarshaler, validating via NewCommit.
func (c *Commit) UnmarshalJSON(data []byte) error {
	var w commitJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	commit, err := NewCommit(w.Metadata, w.Author, w.Committer, w.Message, w.Diff)
	if err != nil {
		return err
	}
	*c = commit.WithAISummary(w.AISummary)
	return nil
}

type changeMetadataJSON struct {
	ChangeType     ChangeType `json:"change_type"`
	SourceBranches []string   `json:"source_branches"`
	TargetBranch   string     `json:"target_branch,omitempty"`
	MergeBase      string     `json:"merge_base,omitempty"`
	PullRequestID  string     `json:"pull_request_id,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (c ChangeMetadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(changeMetadataJSON{
		ChangeType:     c.changeType,
		SourceBranches: c.sourceBranches,
		TargetBranch:   c.targetBranch,
		MergeBase:      c.mergeBase.String(),
		PullRequestID:  c.pullRequestID,
	})
}

// UnmarshalJSON implements json.Unmarshaler, validating via NewChangeMetadata.
func (c *ChangeMetadata) UnmarshalJSON(data []byte) error {
	var w changeMetadataJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	meta, err := NewChangeMetadata(w.ChangeType, w.SourceBranches, ChangeOpts{
		TargetBranch:  w.TargetBranch,
		MergeBase:     w.MergeBase,
		PullRequestID: w.PullRequestID,
	})
	if err != nil {
		return err
	}
	*c = meta
	return nil
}
