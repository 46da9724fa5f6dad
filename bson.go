package hrid

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/x/bsonx/bsoncore"
)

// MarshalBSONValue implements bson.ValueMarshaler, emitting the identifier
// as a BSON string. Marshaling the zero ID fails.
func (id ID) MarshalBSONValue() (byte, []byte, error) {
	if id.IsZero() {
		return 0, nil, &ValidationError{Rule: ErrEmpty}
	}
	return byte(bson.TypeString), bsoncore.AppendString(nil, id.s), nil
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler. Only BSON strings are
// accepted, and the decoded text is validated before it replaces the
// receiver.
func (id *ID) UnmarshalBSONValue(t byte, data []byte) error {
	if bson.Type(t) != bson.TypeString {
		return fmt.Errorf("hrid: cannot decode BSON %s into an ID", bson.Type(t))
	}
	s, _, ok := bsoncore.ReadString(data)
	if !ok {
		return fmt.Errorf("hrid: malformed BSON string value")
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
