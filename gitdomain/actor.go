package gitdomain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxActorNameLength is the maximum accepted actor name length in runes.
const MaxActorNameLength = 255

// NormalizeEmail trims and lowercases a raw email identifier. Git permits
// non-RFC identifiers such as "build-system" in real history, so the only
// hard rule is that the result is non-empty. Do not add strict RFC
// validation here; it would reject legitimate historical data.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", fieldError(ErrInvalidActor, "email",
			"email cannot be empty or whitespace-only", "")
	}
	return email, nil
}

// ValidateTimestamp rejects unset timestamps. Go's time.Time always carries
// a location, so the "naive timestamp" failure of other runtimes maps to the
// zero value here: producers must supply an explicit point in time and zone,
// never rely on this layer assuming UTC.
func ValidateTimestamp(t time.Time) error {
	if t.IsZero() {
		return fieldError(ErrInvalidTimestamp, "timestamp",
			"timestamp must be set with an explicit zone", "")
	}
	return nil
}

// Actor is a Git identity: the author or committer of a commit, with the
// moment the action happened. Values are immutable once constructed.
type Actor struct {
	name  string
	email string
	when  time.Time
}

// NewActor validates and normalizes an actor identity. The name is trimmed
// and bounded, the email normalized via NormalizeEmail, and the timestamp
// checked via ValidateTimestamp.
func NewActor(name, email string, when time.Time) (Actor, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Actor{}, fieldError(ErrInvalidActor, "name",
			"name cannot be empty or whitespace-only", "")
	}
	if utf8.RuneCountInString(trimmed) > MaxActorNameLength {
		reason := fmt.Sprintf("name cannot exceed %d characters", MaxActorNameLength)
		return Actor{}, fieldError(ErrInvalidActor, "name", reason, trimmed)
	}

	normalized, err := NormalizeEmail(email)
	if err != nil {
		return Actor{}, err
	}

	if err := ValidateTimestamp(when); err != nil {
		return Actor{}, err
	}

	return Actor{name: trimmed, email: normalized, when: when}, nil
}

// Name returns the trimmed actor name.
func (a Actor) Name() string { return a.name }

// Email returns the normalized lowercase email identifier.
func (a Actor) Email() string { return a.email }

// When returns the timestamp of the Git action.
func (a Actor) When() time.Time { return a.when }

// IsZero reports whether the actor is unset.
func (a Actor) IsZero() bool { return a == Actor{} }

// GitFormat renders the actor in the canonical Git actor line format used in
// raw commit objects: "Name <email> epoch_seconds ±HHMM". This rendering is
// bit-exact so it round-trips with real Git data.
func (a Actor) GitFormat() string {
	return fmt.Sprintf("%s <%s> %d %s",
		a.name, a.email, a.when.Unix(), a.when.Format("-0700"))
}

// String returns the canonical Git actor line.
func (a Actor) String() string { return a.GitFormat() }

// ParseGitFormat parses a canonical Git actor line ("Name <email>
// epoch_seconds ±HHMM") back into a validated Actor. The parsed zone offset
// is preserved as a fixed zone.
func ParseGitFormat(line string) (Actor, error) {
	open := strings.LastIndex(line, "<")
	end := strings.LastIndex(line, ">")
	if open < 0 || end < open {
		return Actor{}, fieldError(ErrInvalidActor, "actor",
			"missing <email> section", line)
	}

	name := line[:open]
	email := line[open+1 : end]

	rest := strings.Fields(line[end+1:])
	if len(rest) != 2 {
		return Actor{}, fieldError(ErrInvalidActor, "actor",
			"expected epoch seconds and zone offset after email", line)
	}

	seconds, err := strconv.ParseInt(rest[0], 10, 64)
	if err != nil {
		return Actor{}, fieldError(ErrInvalidActor, "timestamp",
			"epoch seconds must be an integer", rest[0])
	}

	offset, err := parseZoneOffset(rest[1])
	if err != nil {
		return Actor{}, err
	}

	when := time.Unix(seconds, 0).In(time.FixedZone(rest[1], offset))
	return NewActor(name, email, when)
}

// parseZoneOffset converts a "±HHMM" zone string to an offset in seconds.
func parseZoneOffset(zone string) (int, error) {
	if len(zone) != 5 || (zone[0] != '+' && zone[0] != '-') {
		return 0, fieldError(ErrInvalidActor, "timestamp",
			"zone offset must have the form ±HHMM", zone)
	}

	hours, err := strconv.Atoi(zone[1:3])
	if err != nil {
		return 0, fieldError(ErrInvalidActor, "timestamp",
			"zone offset must have the form ±HHMM", zone)
	}
	minutes, err := strconv.Atoi(zone[3:5])
	if err != nil {
		return 0, fieldError(ErrInvalidActor, "timestamp",
			"zone offset must have the form ±HHMM", zone)
	}

	offset := (hours*60 + minutes) * 60
	if zone[0] == '-' {
		offset = -offset
	}
	return offset, nil
}
