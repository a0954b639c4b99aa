package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseInt parses a whole-number field. Negative values are accepted; use
// ParseNonNegativeInt when the field must be ≥ 0.
func ParseInt(field, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, invalid(field, raw, ErrNumberFormat, "must be a whole number")
	}
	return v, nil
}

// ParseNonNegativeInt parses a whole-number field that must be ≥ 0.
func ParseNonNegativeInt(field, raw string) (int, error) {
	v, err := ParseInt(field, raw)
	if err != nil {
		return 0, err
	}
	if err := CheckNonNegative(field, v); err != nil {
		return 0, err
	}
	return v, nil
}

// CheckNonNegative rejects negative values for field.
func CheckNonNegative(field string, v int) error {
	if v < 0 {
		return invalid(field, strconv.Itoa(v), ErrNegativeNumber, "cannot be negative")
	}
	return nil
}

// ParsePrice parses a decimal price field.
func ParsePrice(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, invalid(field, raw, ErrNumberFormat, "must be a number")
	}
	return d, nil
}

// ParseNonNegativePrice parses a decimal price field that must be ≥ 0.
func ParseNonNegativePrice(field, raw string) (decimal.Decimal, error) {
	d, err := ParsePrice(field, raw)
	if err != nil {
		return decimal.Zero, err
	}
	if err := checkNonNegativePrice(field, d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

func checkNonNegativePrice(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return invalid(field, d.String(), ErrNegativeNumber, "cannot be negative")
	}
	return nil
}

// ParseCode reads an enumerated single-character field. The first character
// of the trimmed input is taken and must be one of allowed.
func ParseCode(field, raw, allowed string) (byte, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, invalid(field, raw, ErrInvalidField, "cannot be empty")
	}
	c := s[0]
	if strings.IndexByte(allowed, c) < 0 {
		return 0, invalid(field, raw, ErrInvalidField, fmt.Sprintf("must be one of %s", joinChoices(allowed)))
	}
	return c, nil
}

// codeSet describes one enumerated single-character field.
type codeSet struct {
	field  string
	codes  string
	labels []string
}

func (s codeSet) check(c byte) error {
	if strings.IndexByte(s.codes, c) < 0 {
		return invalid(s.field, string(c), ErrInvalidField, s.reason())
	}
	return nil
}

func (s codeSet) parse(raw string) (byte, error) {
	c, err := ParseCode(s.field, raw, s.codes)
	if err != nil {
		if ve, ok := err.(*ValidationError); ok && strings.TrimSpace(raw) != "" {
			ve.Reason = s.reason()
		}
		return 0, err
	}
	return c, nil
}

// reason renders "must be 'A' (Action), 'D' (Doll), or 'H' (Historic)".
func (s codeSet) reason() string {
	parts := make([]string, len(s.codes))
	for i := range s.codes {
		parts[i] = fmt.Sprintf("'%c' (%s)", s.codes[i], s.labels[i])
	}
	if len(parts) == 2 {
		return "must be " + parts[0] + " or " + parts[1]
	}
	return "must be " + strings.Join(parts[:len(parts)-1], ", ") + ", or " + parts[len(parts)-1]
}
