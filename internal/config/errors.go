package config

import (
	"errors"
	"fmt"
)

// ErrorKind is a coarse classification of configuration failures.
type ErrorKind string

const (
	KindNotFound   ErrorKind = "not_found"
	KindPermission ErrorKind = "permission_denied"
	KindUnreadable ErrorKind = "unreadable"
	KindInvalid    ErrorKind = "invalid_config"
)

// OpError wraps an underlying error with the failing step and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err carries an OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
