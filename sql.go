package hrid

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer so an ID can be written to a TEXT column
// through database/sql or any driver that honors the interface. The zero ID
// maps to SQL NULL.
func (id ID) Value() (driver.Value, error) {
	if id.IsZero() {
		return nil, nil
	}
	return id.s, nil
}

// Scan implements sql.Scanner. String and []byte sources are validated
// before they replace the receiver; NULL scans to the zero ID.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = ID{}
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	default:
		return fmt.Errorf("hrid: cannot scan %T into an ID", src)
	}
}
