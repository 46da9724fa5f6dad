package hrid

// MarshalText implements encoding.TextMarshaler. The identifier is emitted
// as its raw text with no quoting or escaping; encoding/json and any other
// text-based codec pick this up for both values and map keys. Marshaling the
// zero ID fails, since an empty identifier is not representable.
func (id ID) MarshalText() ([]byte, error) {
	if id.IsZero() {
		return nil, &ValidationError{Rule: ErrEmpty}
	}
	return []byte(id.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is validated
// before it replaces the receiver; invalid input leaves the receiver
// untouched and surfaces a *ValidationError.
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
