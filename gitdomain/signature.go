package gitdomain

import "strings"

// Signature is a GPG signature block attached to a Git object. Accepted
// forms are standard PGP signature blocks and Git's raw "gpgsig " header
// lines. The zero value represents the absence of a signature.
type Signature string

// ParseSignature validates a signature block that is known to be present.
// The input is trimmed; an empty result fails with ErrEmptySignature, and
// anything that does not look like a PGP block or gpgsig line fails with
// ErrInvalidSignature.
func ParseSignature(raw string) (Signature, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fieldError(ErrEmptySignature, "signature",
			"signature cannot be empty or whitespace-only", "")
	}

	if !strings.HasPrefix(trimmed, "-----BEGIN") && !strings.HasPrefix(trimmed, "gpgsig ") {
		return "", fieldError(ErrInvalidSignature, "signature",
			`must start with "-----BEGIN" or "gpgsig "`, trimmed)
	}

	return Signature(trimmed), nil
}

// ParseOptionalSignature maps absent input (empty or whitespace-only) to the
// zero Signature and validates everything else through ParseSignature. Real
// Git history mixes signed and unsigned commits, so absence is not an error.
func ParseOptionalSignature(raw string) (Signature, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return ParseSignature(raw)
}

// String returns the trimmed signature block.
func (s Signature) String() string { return string(s) }

// IsZero reports whether no signature is present.
func (s Signature) IsZero() bool { return s == "" }
