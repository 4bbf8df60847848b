package mailaddr

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the address as a bare JSON string, indistinguishable
// from a plain string field. The stored text is emitted verbatim.
func (e Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.value)
}

// UnmarshalJSON decodes a JSON string and funnels it through New, so
// structurally invalid input fails the surrounding decode instead of
// producing an unvalidated Email. JSON null leaves the value untouched,
// matching the encoding/json convention.
func (e *Email) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	email, err := New(s)
	if err != nil {
		return err
	}
	*e = email
	return nil
}

// MarshalText implements encoding.TextMarshaler, which covers every
// text-based framework that honors it: yaml.v3, env parsing, URL query
// binding, and encoding Email as a JSON map key.
func (e Email) MarshalText() ([]byte, error) {
	return []byte(e.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same checked
// construction as New.
func (e *Email) UnmarshalText(data []byte) error {
	email, err := New(string(data))
	if err != nil {
		return err
	}
	*e = email
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler so an Email can be
// written directly as a cache or queue value (go-redis serializes arguments
// through this interface).
func (e Email) MarshalBinary() ([]byte, error) {
	return []byte(e.value), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, re-validating the
// payload on the way back in.
func (e *Email) UnmarshalBinary(data []byte) error {
	return e.UnmarshalText(data)
}

// BSON element type bytes, per the BSON spec (bsonspec.org). Declared
// locally so the core package stays free of driver imports.
const (
	bsonTypeString byte = 0x02
	bsonTypeNull   byte = 0x0A
)

// MarshalBSONValue satisfies the mongo-driver v2 bson.ValueMarshaler
// interface structurally: the v2 driver switched these signatures to plain
// bytes precisely so value types can implement them without depending on the
// driver. The address is emitted as a BSON string element: an int32 byte
// count (including the terminating NUL), the text, then NUL.
func (e Email) MarshalBSONValue() (byte, []byte, error) {
	buf := make([]byte, 0, len(e.value)+5)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(e.value)+1))
	buf = append(buf, e.value...)
	buf = append(buf, 0x00)
	return bsonTypeString, buf, nil
}

// UnmarshalBSONValue satisfies bson.ValueUnmarshaler. BSON null decodes to
// the zero Email; a BSON string is re-validated through New; every other
// element type is rejected.
func (e *Email) UnmarshalBSONValue(typ byte, data []byte) error {
	switch typ {
	case bsonTypeNull:
		*e = Email{}
		return nil
	case bsonTypeString:
	default:
		return fmt.Errorf("mailaddr: cannot decode BSON type 0x%02x into Email", typ)
	}

	if len(data) < 5 {
		return fmt.Errorf("mailaddr: truncated BSON string value")
	}
	n := int(binary.LittleEndian.Uint32(data)) // byte count including NUL
	if n < 1 || n > len(data)-4 {
		return fmt.Errorf("mailaddr: malformed BSON string length %d", n)
	}
	if data[4+n-1] != 0x00 {
		return fmt.Errorf("mailaddr: BSON string missing terminating NUL")
	}

	email, err := New(string(data[4 : 4+n-1]))
	if err != nil {
		return err
	}
	*e = email
	return nil
}
