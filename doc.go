// Package mailaddr provides a validated email address value type for use as
// a domain primitive in place of raw strings.
//
// The package centers on the Email type: an immutable, comparable wrapper
// around a string that can only be produced through checked construction.
// Once a function receives an Email, the address inside is structurally
// valid and never needs re-checking, so validation concerns stay at the
// boundaries of a program (decoding, configuration, request binding) instead
// of leaking into every layer that touches an address.
//
// # Features
//
// The package offers a small, focused surface:
//   - Checked construction via New / MustNew with a single error path
//   - A pure IsValid predicate for boolean checks without allocation
//   - Structural accessors (LocalPart, Domain) that never re-parse unsafely
//   - Case-insensitive comparison with EqualFold while preserving the
//     original casing of the stored text
//   - Opt-in cleanup via Normalize and NewNormalized for user-typed input
//   - Masked rendering for logs and UI (j***@example.com)
//   - JSON, YAML, text, binary, and BSON marshaling that validates on the
//     way in
//   - database/sql and GORM integration through Value, Scan, and
//     GormDataType
//
// # Usage
//
// Basic construction and use:
//
//	import "github.com/dmitrymomot/mailaddr"
//
//	email, err := mailaddr.New("john@example.com")
//	if err != nil {
//	    // input was not a structurally valid address
//	}
//	email.String()    // "john@example.com"
//	email.LocalPart() // "john"
//	email.Domain()    // "example.com"
//
// The type drops into struct fields wherever a string would go:
//
//	type Person struct {
//	    Name  string         `json:"name"`
//	    Email mailaddr.Email `json:"email"`
//	}
//
//	data := []byte(`{"name":"John Doe","email":"john@example.com"}`)
//	var p Person
//	if err := json.Unmarshal(data, &p); err != nil {
//	    // fails here if the email field is malformed
//	}
//
// Because decoding funnels through the same checked constructor, a malformed
// address in the source document fails the decode instead of producing a
// half-valid value.
//
// # Error Handling
//
// Every failed construction returns a *ValidationError that records the
// rejected input and unwraps to the ErrInvalidEmail sentinel:
//
//	_, err := mailaddr.New("not-an-email")
//	errors.Is(err, mailaddr.ErrInvalidEmail) // true
//
//	var verr *mailaddr.ValidationError
//	if errors.As(err, &verr) {
//	    verr.Input // "not-an-email"
//	}
//
// There is exactly one failure mode; the error does not distinguish which
// structural rule was violated.
//
// # Validation Policy
//
// Validation is a deliberately frozen, practical policy rather than a full
// RFC 5322 grammar: exactly one @, a restricted local-part character set
// with no leading, trailing, or doubled dots, a dotted domain whose final
// label is alphabetic, and the conventional 64/255/320 length ceilings.
// Matching inputs are accepted byte-for-byte as given; New never rewrites
// its input. See IsValid for the precise rules.
//
// # Serialization
//
// Email implements json.Marshaler/Unmarshaler, encoding.TextMarshaler/
// TextUnmarshaler, and encoding.BinaryMarshaler/BinaryUnmarshaler, so it
// works unmodified with encoding/json, env-based configuration loaders, and
// redis clients that serialize arguments through the binary interfaces.
// MarshalYAML/UnmarshalYAML cover yaml.v3 documents, and MarshalBSONValue/
// UnmarshalBSONValue match the mongo-driver v2 value marshaler contract;
// both are implemented structurally, without importing the respective
// packages. In every format an address serializes to its text verbatim, and
// every decode path re-validates.
//
// # Database Integration
//
// Value and Scan implement driver.Valuer and sql.Scanner: a non-zero Email
// is stored as TEXT, the zero Email maps to NULL, and NULL scans back to
// the zero Email. GormDataType tells GORM to use a text column directly.
// The same interfaces are honored by pgx when encoding and scanning query
// arguments.
//
// # Thread Safety
//
// Email is an immutable value type; all methods are safe for concurrent use
// without synchronization. Only the pointer-receiver unmarshal and scan
// methods mutate, and they follow the usual single-writer rules of any Go
// value being decoded into.
package mailaddr
