package hrid

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// reservedChars are the punctuation characters disallowed so that an
// identifier stays safe as a URL segment, file path component, or domain-name
// label. The set is exact: '%', '*', '\', '-', '_' and '.' remain legal
// (".." is rejected separately as a path traversal sequence).
const reservedChars = "/~$`&|=^{}<>'\"?:@#()"

// echoLimit bounds how much of a rejected input is echoed back in a
// ValidationError.
const echoLimit = 64

// Validate reports whether s is a legal identifier. It returns nil for any
// non-empty, valid UTF-8 string that contains no ASCII control character, no
// reserved character, no Unicode whitespace, and not the substring "..".
// On rejection it returns a *ValidationError identifying the violated rule.
//
// Validate never modifies its input: there is no trimming, case folding, or
// Unicode normalization. A string either is a legal identifier or it is not.
func Validate(s string) error {
	if s == "" {
		return &ValidationError{Rule: ErrEmpty}
	}
	if !utf8.ValidString(s) {
		return &ValidationError{Rule: ErrInvalidUTF8, Input: echo(s)}
	}
	for _, r := range s {
		switch {
		case r < 32:
			return &ValidationError{Rule: ErrControlChar, Input: echo(s), Offender: string(r)}
		case strings.ContainsRune(reservedChars, r):
			return &ValidationError{Rule: ErrReservedChar, Input: echo(s), Offender: string(r)}
		case unicode.IsSpace(r):
			return &ValidationError{Rule: ErrWhitespace, Input: echo(s), Offender: string(r)}
		}
	}
	if strings.Contains(s, "..") {
		return &ValidationError{Rule: ErrPathTraversal, Input: echo(s), Offender: ".."}
	}
	return nil
}

// echo truncates s for inclusion in error messages. Truncation backs up to a
// rune boundary so the echoed prefix stays valid UTF-8.
func echo(s string) string {
	if len(s) <= echoLimit {
		return s
	}
	cut := echoLimit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
