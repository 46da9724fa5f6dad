package hrid

// Label is an identifier known to be valid at compile time, declared as an
// untyped string constant:
//
//	const Root hrid.Label = "root"
//
// Labels skip validation entirely. The declaring developer vouches that the
// text satisfies the identifier grammar; use Parse for anything that arrives
// at runtime.
type Label string

// ID converts the label to an ID without validation.
func (l Label) ID() ID { return ID{s: string(l)} }

// String returns the label text.
func (l Label) String() string { return string(l) }
