package mailaddr

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer. A non-zero Email is stored verbatim as
// TEXT; the zero Email maps to SQL NULL so absence never masquerades as an
// empty string in the column.
func (e Email) Value() (driver.Value, error) {
	if e.value == "" {
		return nil, nil
	}
	return e.value, nil
}

// Scan implements sql.Scanner. NULL scans to the zero Email, mirroring
// Value; text is re-validated through New so a corrupted column surfaces as
// a validation error at read time instead of leaking into the domain.
func (e *Email) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*e = Email{}
		return nil
	case string:
		email, err := New(v)
		if err != nil {
			return err
		}
		*e = email
		return nil
	case []byte:
		email, err := New(string(v))
		if err != nil {
			return err
		}
		*e = email
		return nil
	default:
		return fmt.Errorf("mailaddr: cannot scan %T into Email", src)
	}
}

// GormDataType reports the column type GORM should use for Email fields, so
// models can embed the type without a custom serializer.
func (Email) GormDataType() string {
	return "text"
}
