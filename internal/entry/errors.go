package entry

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned for edits addressing a field the
	// trade entry does not have, or one of the wrong kind (a string
	// edit to a calendar field and vice versa).
	ErrUnknownField = errors.New("unknown field")

	// ErrReadOnlyField is returned for edits to derived fields.
	ErrReadOnlyField = errors.New("field is read-only")

	// ErrSubmitInFlight is returned when a submit is attempted while a
	// previous submit for the same session has not resolved yet.
	ErrSubmitInFlight = errors.New("a submission is already in flight")
)

// MissingFieldError reports the first required field found empty
// during the submit gate. Exactly one field is ever reported per
// attempt.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %s", e.Field)
}

// TransportError wraps a failure from the submission transport. The
// session keeps its data so the user can retry.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("submission transport failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
