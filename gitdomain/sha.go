package gitdomain

import (
	"fmt"
	"strings"
)

const (
	// MinSHALength is the minimum accepted Git object id length. Git's
	// minimum unambiguous abbreviation is four hex characters.
	MinSHALength = 4

	// MaxSHALength is the maximum accepted Git object id length, covering
	// SHA-256 object ids in repositories using the extended object format.
	MaxSHALength = 64

	// DefaultShortSHALength is the abbreviation length used for display.
	DefaultShortSHALength = 8
)

// SHA is a normalized Git object id: lowercase hexadecimal, between
// MinSHALength and MaxSHALength characters. The zero value represents the
// absence of an id and is not itself a valid SHA.
type SHA string

// ParseSHA validates and normalizes a raw Git object id. The input is
// trimmed and lowercased; it must then consist solely of hex characters and
// fall within the accepted short-to-full length range.
func ParseSHA(raw string) (SHA, error) {
	return parseSHAField(raw, "sha")
}

// parseSHAField is ParseSHA with a caller-chosen field name, so composite
// constructors can report which slot held the bad id (e.g. "parents[1]").
func parseSHAField(raw, field string) (SHA, error) {
	s := strings.ToLower(strings.TrimSpace(raw))

	if len(s) < MinSHALength || len(s) > MaxSHALength {
		reason := fmt.Sprintf("must be %d-%d characters long, got %d",
			MinSHALength, MaxSHALength, len(s))
		return "", fieldError(ErrInvalidSHA, field, reason, s)
	}

	for _, c := range s {
		if !isHexDigit(c) {
			return "", fieldError(ErrInvalidSHA, field,
				"must contain only hexadecimal characters", s)
		}
	}

	return SHA(s), nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

// String returns the normalized hexadecimal form.
func (s SHA) String() string { return string(s) }

// IsZero reports whether the SHA is unset.
func (s SHA) IsZero() bool { return s == "" }

// Short returns an abbreviated form of the id. Lengths outside the valid
// range clamp to the full id; n <= 0 selects DefaultShortSHALength.
func (s SHA) Short(n int) string {
	if n <= 0 {
		n = DefaultShortSHALength
	}
	if n >= len(s) {
		return string(s)
	}
	return string(s[:n])
}
