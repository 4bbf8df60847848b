package mailaddr

import (
	"errors"
	"fmt"
)

// ErrInvalidEmail is the sentinel failure for every rejected candidate.
// It is always delivered wrapped in a *ValidationError, so callers can
// either match the category with errors.Is or recover the rejected input
// with errors.As.
var ErrInvalidEmail = errors.New("invalid email address")

// ValidationError reports a candidate string that does not satisfy the
// address grammar. It retains the rejected input for diagnostics; the input
// is never partially wrapped into an Email.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid email address: %q", e.Input)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidEmail
}
