package hrid

import "gopkg.in/yaml.v3"

// MarshalYAML implements yaml.Marshaler for gopkg.in/yaml.v3, emitting the
// identifier as a plain string scalar. Marshaling the zero ID fails.
func (id ID) MarshalYAML() (any, error) {
	if id.IsZero() {
		return nil, &ValidationError{Rule: ErrEmpty}
	}
	return id.s, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The scalar is validated before
// it replaces the receiver.
func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
