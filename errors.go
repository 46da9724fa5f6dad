package hrid

import (
	"errors"
	"fmt"
)

// Rule errors identify which grammar rule a candidate identifier violated.
// They are wrapped by ValidationError and matchable with errors.Is.
var (
	// ErrEmpty is returned when the candidate identifier has no characters.
	ErrEmpty = errors.New("hrid: identifier is empty")

	// ErrInvalidUTF8 is returned when the candidate is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("hrid: identifier is not valid UTF-8")

	// ErrControlChar is returned when the candidate contains an ASCII control
	// character (code point below 32).
	ErrControlChar = errors.New("hrid: identifier contains an ASCII control character")

	// ErrPathTraversal is returned when the candidate contains the substring "..".
	ErrPathTraversal = errors.New(`hrid: identifier contains ".."`)

	// ErrReservedChar is returned when the candidate contains a character from
	// the reserved set.
	ErrReservedChar = errors.New("hrid: identifier contains a reserved character")

	// ErrWhitespace is returned when the candidate contains a Unicode
	// whitespace character.
	ErrWhitespace = errors.New("hrid: identifier contains whitespace")
)

// ValidationError reports why a candidate identifier was rejected. It is
// returned by Parse and by every decoding path that re-validates input.
type ValidationError struct {
	// Rule is the sentinel rule error that was violated; Unwrap returns it so
	// callers can match with errors.Is(err, hrid.ErrWhitespace) etc.
	Rule error

	// Input echoes the rejected candidate for diagnostics, truncated to keep
	// error messages bounded.
	Input string

	// Offender is the character or substring that violated Rule, when the
	// rule concerns a specific character.
	Offender string
}

func (e *ValidationError) Error() string {
	if e.Offender != "" {
		return fmt.Sprintf("%s: %q in %q", e.Rule, e.Offender, e.Input)
	}
	if e.Input != "" {
		return fmt.Sprintf("%s: %q", e.Rule, e.Input)
	}
	return e.Rule.Error()
}

func (e *ValidationError) Unwrap() error { return e.Rule }
