package domain

import (
	"fmt"
	"strings"
)

// SerialLength is the exact number of digits in a serial number.
const SerialLength = 10

// ValidateSerialNumber checks the shape every serial number shares: exactly
// SerialLength ASCII digits.
func ValidateSerialNumber(sn string) error {
	if sn == "" {
		return invalid("serial number", sn, ErrInvalidSerial, "cannot be empty")
	}
	for i := 0; i < len(sn); i++ {
		if sn[i] < '0' || sn[i] > '9' {
			return invalid("serial number", sn, ErrInvalidSerial, "should only contain digits")
		}
	}
	if len(sn) != SerialLength {
		return invalid("serial number", sn, ErrInvalidSerial, fmt.Sprintf("must be exactly %d digits", SerialLength))
	}
	return nil
}

// ValidateSerialFor checks the serial number shape and that its leading digit
// is reserved for kind.
func ValidateSerialFor(kind Kind, sn string) error {
	if !kind.Valid() {
		return invalid("category", string(kind), ErrInvalidField, "must be one of Figure, Animal, Puzzle, BoardGame")
	}
	if err := ValidateSerialNumber(sn); err != nil {
		return err
	}
	if got, _ := KindForPrefix(sn[0]); got != kind {
		return invalid("serial number", sn, ErrSerialPrefix,
			fmt.Sprintf("%s serial numbers must start with %s", kind, joinChoices(kind.Prefixes())))
	}
	return nil
}

// KindOf validates the serial number shape and returns the category its
// leading digit encodes.
func KindOf(sn string) (Kind, error) {
	if err := ValidateSerialNumber(sn); err != nil {
		return "", err
	}
	kind, _ := KindForPrefix(sn[0])
	return kind, nil
}

// joinChoices renders "01" as "0 or 1" and "456" as "4, 5, or 6".
func joinChoices(digits string) string {
	parts := make([]string, len(digits))
	for i := range digits {
		parts[i] = string(digits[i])
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " or " + parts[1]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", or " + parts[len(parts)-1]
}
