// Package hrid provides a validated, immutable human-readable identifier
// that is safe to use as a URL segment, file path component, or domain-name
// label while still permitting arbitrary Unicode text.
//
// An ID is accepted verbatim or rejected; there is no trimming, case
// folding, or Unicode normalization. A candidate is rejected when it is
// empty, is not valid UTF-8, contains an ASCII control character, contains
// the substring "..", contains a reserved punctuation character
// (/ ~ $ ` & | = ^ { } < > ' " ? : @ # ( )), or contains Unicode whitespace.
// Everything else — including non-ASCII text such as "日本語" — is legal.
//
// # Usage
//
//	import "github.com/dmitrymomot/hrid"
//
//	id, err := hrid.Parse("my-service")
//	if err != nil {
//		// err is a *hrid.ValidationError naming the violated rule
//	}
//
//	// Identifiers derived from UUIDs are always valid.
//	id = hrid.FromUUID(uuid.New())
//	// e.g. "f47ac10b-58cc-4372-a567-0e02b2c3d479"
//
//	// Compile-time constants skip validation.
//	const root hrid.Label = "root"
//	if id == root.ID() { ... }
//
// # Error Handling
//
// Parse and every decoder return a *ValidationError that unwraps to one of
// the package's sentinel rule errors:
//
//	_, err := hrid.Parse("a..b")
//	errors.Is(err, hrid.ErrPathTraversal) // true
//
// Rejection is a normal outcome of validation, not a fault: the package
// never logs and never panics (MustParse excepted, by contract).
//
// # Comparison and Hashing
//
// ID is comparable: == is codepoint-for-codepoint text equality and IDs work
// as map keys directly. Compare and Less order identifiers by their text.
// For content addressing, HashInto feeds a length-prefixed byte frame into
// any hash.Hash, and Sum256 is the SHA-256 convenience form; digests are
// deterministic across runs and platforms.
//
// # Serialization
//
// ID implements encoding.TextMarshaler/TextUnmarshaler (which covers JSON
// values and map keys), yaml.Marshaler/Unmarshaler for gopkg.in/yaml.v3,
// bson.ValueMarshaler/ValueUnmarshaler for the MongoDB driver, and
// driver.Valuer/sql.Scanner for SQL TEXT columns. Every decode path
// re-validates, so an ID obtained from any source satisfies the grammar.
// EncodeTo and Decode stream the same length-prefixed frame used for
// hashing over io.Writer/io.Reader.
//
// # Thread Safety
//
// IDs are immutable after construction and the package holds no mutable
// state, so values may be shared across goroutines without synchronization.
package hrid
