package gitdomain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AIWorldTakeover/auto-release-note-generation/gitdomain"
	"github.com/AIWorldTakeover/auto-release-note-generation/gitdomain/domaintest"
)

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		name        string
		sha         string
		parents     []string
		refs        []string
		signature   string
		expectError bool
		field       string
	}{
		{
			name: "root commit",
			sha:  domaintest.DefaultSHA,
		},
		{
			name:    "regular commit",
			sha:     domaintest.DefaultSHA,
			parents: []string{domaintest.DefaultParentSHA},
		},
		{
			name: "merge commit with refs and signature",
			sha:  domaintest.DefaultSHA,
			parents: []string{
				domaintest.DefaultParentSHA,
				"abc123def456789abcdef123456789abcdef1236",
			},
			refs:      []string{"main", "v1.2.0"},
			signature: "gpgsig data",
		},
		{
			name:        "invalid sha",
			sha:         "not-hex",
			expectError: true,
			field:       "sha",
		},
		{
			name:        "invalid parent sha",
			sha:         domaintest.DefaultSHA,
			parents:     []string{domaintest.DefaultParentSHA, "xyz"},
			expectError: true,
			field:       "parents[1]",
		},
		{
			name:        "empty ref name",
			sha:         domaintest.DefaultSHA,
			refs:        []string{"main", "   "},
			expectError: true,
			field:       "refs",
		},
		{
			name:        "invalid signature",
			sha:         domaintest.DefaultSHA,
			signature:   "garbage",
			expectError: true,
			field:       "signature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := gitdomain.NewMetadata(tt.sha, tt.parents, tt.refs, tt.signature)

			if tt.expectError {
				require.Error(t, err)

				var ve *gitdomain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.field, ve.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.sha, meta.SHA().String())
			assert.Len(t, meta.Parents(), len(tt.parents))
		})
	}
}

// Parent count drives commit classification: zero parents is a root commit,
// one a regular commit, two or more a merge commit.
func TestMetadataClassification(t *testing.T) {
	tests := []struct {
		name    string
		parents []string
		root    bool
		merge   bool
	}{
		{name: "zero parents", parents: nil, root: true, merge: false},
		{name: "one parent", parents: []string{domaintest.DefaultParentSHA}},
		{
			name: "two parents",
			parents: []string{
				domaintest.DefaultParentSHA,
				"abc123def456789abcdef123456789abcdef1236",
			},
			merge: true,
		},
		{
			name: "octopus merge",
			parents: []string{
				"0000000000000000000000000000000000000001",
				"0000000000000000000000000000000000000002",
				"0000000000000000000000000000000000000003",
			},
			merge: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := gitdomain.NewMetadata(domaintest.DefaultSHA, tt.parents, nil, "")
			require.NoError(t, err)

			assert.Equal(t, tt.root, meta.IsRootCommit())
			assert.Equal(t, tt.merge, meta.IsMergeCommit())
		})
	}
}

func TestMetadataParentOrderPreserved(t *testing.T) {
	parents := []string{
		"0000000000000000000000000000000000000002",
		"0000000000000000000000000000000000000001",
	}

	meta, err := gitdomain.NewMetadata(domaintest.DefaultSHA, parents, nil, "")
	require.NoError(t, err)

	got := meta.Parents()
	require.Len(t, got, 2)
	assert.Equal(t, parents[0], got[0].String(), "first parent is the primary ancestry line")
	assert.Equal(t, parents[1], got[1].String())

	// The returned slice is a copy.
	got[0] = gitdomain.SHA("mutated")
	assert.Equal(t, parents[0], meta.Parents()[0].String())
}

func TestMetadataRefsCollapseDuplicates(t *testing.T) {
	meta, err := gitdomain.NewMetadata(
		domaintest.DefaultSHA,
		nil,
		[]string{"main", "v1.0.0", "main", "  main  "},
		"",
	)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"main", "v1.0.0"}, meta.Refs())
}

func TestMetadataParentShasNormalized(t *testing.T) {
	meta, err := gitdomain.NewMetadata(
		"ABC123DEF456789ABCDEF123456789ABCDEF1234",
		[]string{"  DEAD" + "BEEF  "},
		nil,
		"",
	)
	require.NoError(t, err)

	assert.Equal(t, "abc123def456789abcdef123456789abcdef1234", meta.SHA().String())
	assert.Equal(t, "deadbeef", meta.Parents()[0].String())
}
