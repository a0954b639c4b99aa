package core

import (
	"errors"
	"fmt"
)

// ErrInvalidCriterion reports a search criterion that cannot be evaluated.
var ErrInvalidCriterion = errors.New("invalid search criterion")

// ErrNotFound indicates that no toy carries the requested serial number.
type ErrNotFound struct {
	SerialNumber string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("toy %s not found", e.SerialNumber)
}

// ErrDuplicateSerial indicates that the serial number is already in use.
type ErrDuplicateSerial struct {
	SerialNumber string
}

func (e ErrDuplicateSerial) Error() string {
	return fmt.Sprintf("serial number %s already exists", e.SerialNumber)
}

// IsNotFound reports whether err is an ErrNotFound.
func IsNotFound(err error) bool {
	var nf ErrNotFound
	return errors.As(err, &nf)
}

// IsDuplicateSerial reports whether err is an ErrDuplicateSerial.
func IsDuplicateSerial(err error) bool {
	var dup ErrDuplicateSerial
	return errors.As(err, &dup)
}
