package hrid

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ID is a validated, immutable human-readable identifier that is safe to use
// as a URL segment, file path component, or domain-name label while still
// permitting arbitrary Unicode text.
//
// The zero ID carries no text and represents "no identifier". It compares
// equal only to itself, is never produced by Parse, and is rejected by every
// encoder. Model an optional identifier as the zero ID, never as an empty
// string.
//
// ID is comparable: use == for equality and IDs as map keys directly.
type ID struct {
	s string
}

// Parse validates s and returns it wrapped as an ID. It is the single
// checked construction path: every other constructor and decoder routes
// through it. On rejection it returns a *ValidationError identifying the
// violated rule.
func Parse(s string) (ID, error) {
	if err := Validate(s); err != nil {
		return ID{}, err
	}
	return ID{s: s}, nil
}

// MustParse is like Parse but panics on invalid input. It is intended for
// package-level variables and tests where the input is known to be valid.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// FromUUID returns the ID of u's canonical form: lowercase, hyphenated,
// 36 characters. Hex digits and hyphens are always legal identifier text, so
// this conversion cannot fail.
func FromUUID(u uuid.UUID) ID {
	return MustParse(u.String())
}

// FromUint64 returns the ID of u rendered in decimal. Decimal digits are
// always legal identifier text, so this conversion cannot fail.
func FromUint64(u uint64) ID {
	return MustParse(strconv.FormatUint(u, 10))
}

// String returns the identifier text. The zero ID returns "".
func (id ID) String() string { return id.s }

// IsZero reports whether id is the zero ID, i.e. carries no text.
func (id ID) IsZero() bool { return id.s == "" }

// HasPrefix reports whether the identifier text begins with prefix.
func (id ID) HasPrefix(prefix string) bool { return strings.HasPrefix(id.s, prefix) }

// Compare returns -1, 0, or 1 ordering id against other by the byte-wise
// comparison of their text. For validated identifiers this coincides with
// codepoint-sequence order, since valid UTF-8 sorts identically by byte and
// by codepoint.
func (id ID) Compare(other ID) int { return strings.Compare(id.s, other.s) }

// Less reports whether id orders before other. It is consistent with Compare
// and suitable for slices.SortFunc-style ordering.
func (id ID) Less(other ID) bool { return id.s < other.s }
