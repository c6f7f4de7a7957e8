// Package conventional classifies commit summaries according to the
// Conventional Commits specification. The grouping and summarization stages
// use the classification to bucket changes (features, fixes, breaking
// changes) without re-parsing messages themselves.
package conventional

import (
	"strings"

	conventionalcommits "github.com/leodido/go-conventionalcommits"
	"github.com/leodido/go-conventionalcommits/parser"

	"github.com/AIWorldTakeover/auto-release-note-generation/gitdomain"
)

// Classification is the parsed form of a commit summary line.
type Classification struct {
	// Type is the conventional commit type (feat, fix, chore, ...).
	// Empty when the summary does not follow the convention.
	Type string

	// Scope is the optional scope, without parentheses.
	Scope string

	// Breaking reports whether the summary marks a breaking change.
	Breaking bool

	// Description is the free-text part of the summary. For summaries that
	// do not follow the convention, this is the whole trimmed summary.
	Description string

	// Conventional reports whether the summary parsed as a conventional
	// commit. Real Git history is full of free-form messages, so a false
	// value is an expected outcome, not an error.
	Conventional bool
}

// Classify parses a commit summary line. Summaries that do not follow the
// convention fall back to an unclassified result carrying the trimmed
// summary as description.
func Classify(summary string) Classification {
	trimmed := strings.TrimSpace(summary)
	fallback := Classification{Description: trimmed}
	if trimmed == "" {
		return fallback
	}

	machine := parser.NewMachine(
		conventionalcommits.WithTypes(conventionalcommits.TypesConventional),
	)

	msg, err := machine.Parse([]byte(trimmed))
	if err != nil {
		return fallback
	}

	cc, ok := msg.(*conventionalcommits.ConventionalCommit)
	if !ok {
		return fallback
	}

	out := Classification{
		Type:         cc.Type,
		Breaking:     cc.IsBreakingChange(),
		Description:  cc.Description,
		Conventional: true,
	}
	if cc.Scope != nil {
		out.Scope = *cc.Scope
	}
	return out
}

// ClassifyCommit classifies the summary line of a commit.
func ClassifyCommit(c gitdomain.Commit) Classification {
	return Classify(c.Summary())
}
