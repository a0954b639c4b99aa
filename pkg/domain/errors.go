package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying validation failures. Every failure returned by
// this package is a *ValidationError wrapping exactly one of them.
var (
	ErrInvalidSerial  = errors.New("invalid serial number")
	ErrSerialPrefix   = errors.New("serial number prefix does not match category")
	ErrInvalidField   = errors.New("invalid field")
	ErrNegativeNumber = errors.New("negative number")
	ErrNumberFormat   = errors.New("invalid number format")
	ErrPlayerCount    = errors.New("invalid player count")
)

// ValidationError names the field a value was rejected for and the rule it
// violated.
type ValidationError struct {
	Field  string
	Value  string
	Err    error
	Reason string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func invalid(field, value string, err error, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Err: err, Reason: reason}
}

// FieldOf returns the field named by a validation failure inside err, or ""
// when err carries none.
func FieldOf(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}
