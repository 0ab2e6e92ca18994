package domain

import "fmt"

// MissingFieldError reports an input that is required for the selected
// command but was not supplied. The sequencer raises the same shape
// when a derived field (such as chart metadata) turns out to be absent
// at execution time.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required and not supplied: %s", e.Field)
}

// NewMissingFieldError returns a MissingFieldError for the given field.
func NewMissingFieldError(field string) error {
	return &MissingFieldError{Field: field}
}

// PairedFieldError reports a half-supplied credential pair: username
// without password or the other way around.
type PairedFieldError struct {
	Supplied string
	Missing  string
}

func (e *PairedFieldError) Error() string {
	return fmt.Sprintf("supplied %s but missing %s", e.Supplied, e.Missing)
}

// TypeError reports a raw input value that cannot be coerced into the
// field's type.
type TypeError struct {
	Field  string
	Value  string
	Reason string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Field, e.Reason)
}
