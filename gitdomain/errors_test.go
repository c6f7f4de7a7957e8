package gitdomain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AIWorldTakeover/auto-release-note-generation/gitdomain"
)

func TestValidationErrorMessage(t *testing.T) {
	withValue := &gitdomain.ValidationError{
		Field:  "sha",
		Reason: "must contain only hexadecimal characters",
		Value:  "xyz",
		Err:    gitdomain.ErrInvalidSHA,
	}
	assert.Equal(t, `sha: must contain only hexadecimal characters (got "xyz")`, withValue.Error())

	withoutValue := &gitdomain.ValidationError{
		Field:  "message",
		Reason: "message cannot be empty or whitespace-only",
		Err:    gitdomain.ErrEmptyMessage,
	}
	assert.Equal(t, "message: message cannot be empty or whitespace-only", withoutValue.Error())
}

func TestValidationErrorUnwrapsSentinel(t *testing.T) {
	_, err := gitdomain.ParseSHA("nope!")
	require.Error(t, err)

	assert.ErrorIs(t, err, gitdomain.ErrInvalidSHA)
	assert.NotErrorIs(t, err, gitdomain.ErrEmptyMessage)

	var ve *gitdomain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "sha", ve.Field)
	assert.NotEmpty(t, ve.Reason)
}
