package mailaddr

import "strings"

// Email is an immutable, structurally validated email address.
//
// The zero value is the empty address (IsZero reports true); every non-zero
// Email was produced by New or one of the decoding paths that funnel into it,
// so holding an Email is proof the text satisfies IsValid. The stored text is
// exactly what the caller supplied: casing is preserved and nothing is
// normalized.
//
// Email is comparable, so values work as map keys and with ==. Comparison,
// ordering and formatting all agree with the underlying string.
type Email struct {
	value string
}

// New validates s and wraps it as an Email.
//
// On failure it returns the zero Email and a *ValidationError carrying the
// rejected input; errors.Is(err, ErrInvalidEmail) matches it. New never
// panics and never returns a partially constructed value.
func New(s string) (Email, error) {
	if !IsValid(s) {
		return Email{}, &ValidationError{Input: s}
	}
	return Email{value: s}, nil
}

// MustNew is like New but panics on invalid input. Reserve it for literals
// in tests and package-level defaults where an invalid address is a bug.
func MustNew(s string) Email {
	email, err := New(s)
	if err != nil {
		panic(err)
	}
	return email
}

// String returns the address as a plain string, allowing an Email to be used
// anywhere read-only text is expected (fmt verbs, concatenation, logging).
func (e Email) String() string {
	return e.value
}

// IsZero reports whether e is the zero (empty) address. The zero value never
// represents a valid address; it exists so optional fields can stay unset.
func (e Email) IsZero() bool {
	return e.value == ""
}

// Equal reports whether two addresses are byte-for-byte identical.
// Email is comparable, so == is equivalent; the method reads better in
// call chains.
func (e Email) Equal(other Email) bool {
	return e.value == other.value
}

// EqualFold reports whether two addresses are equal under ASCII case
// folding. Domains are case-insensitive in practice and most providers
// treat the local part the same way, so this is the right comparison for
// deduplication.
func (e Email) EqualFold(other Email) bool {
	return strings.EqualFold(e.value, other.value)
}

// Compare orders addresses by plain string comparison of their text,
// returning -1, 0, or 1. It is suitable for slices.SortFunc; the order
// matches sorting the String() forms.
func (e Email) Compare(other Email) int {
	return strings.Compare(e.value, other.value)
}

// LocalPart returns the text before the '@' separator, or "" for the zero
// value.
func (e Email) LocalPart() string {
	at := strings.IndexByte(e.value, '@')
	if at < 0 {
		return ""
	}
	return e.value[:at]
}

// Domain returns the text after the '@' separator, or "" for the zero value.
func (e Email) Domain() string {
	at := strings.IndexByte(e.value, '@')
	if at < 0 {
		return ""
	}
	return e.value[at+1:]
}
