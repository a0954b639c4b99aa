// Package domain defines the toy categories, their field invariants and the
// validation primitives shared by the record codec and the add path.
package domain

import "strings"

// Kind identifies the category of a toy. The string value is the stable
// category tag used for searching and filtering.
type Kind string

// Supported toy categories.
const (
	KindFigure    Kind = "Figure"
	KindAnimal    Kind = "Animal"
	KindPuzzle    Kind = "Puzzle"
	KindBoardGame Kind = "BoardGame"
)

// Kinds returns every category in serial prefix order.
func Kinds() []Kind {
	return []Kind{KindFigure, KindAnimal, KindPuzzle, KindBoardGame}
}

// KindForPrefix maps the leading digit of a serial number to the category it
// encodes. It is the only place the prefix table lives; constructors and the
// codec both dispatch through it.
func KindForPrefix(c byte) (Kind, bool) {
	switch c {
	case '0', '1':
		return KindFigure, true
	case '2', '3':
		return KindAnimal, true
	case '4', '5', '6':
		return KindPuzzle, true
	case '7', '8', '9':
		return KindBoardGame, true
	default:
		return "", false
	}
}

// Prefixes returns the leading digits reserved for the category.
func (k Kind) Prefixes() string {
	var out []byte
	for c := byte('0'); c <= '9'; c++ {
		if got, _ := KindForPrefix(c); got == k {
			out = append(out, c)
		}
	}
	return string(out)
}

// Valid reports whether k is one of the supported categories.
func (k Kind) Valid() bool {
	switch k {
	case KindFigure, KindAnimal, KindPuzzle, KindBoardGame:
		return true
	}
	return false
}

// ParseKind resolves a category tag case-insensitively. The two-word
// spelling "Board Game" resolves to KindBoardGame.
func ParseKind(raw string) (Kind, error) {
	norm := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	for _, k := range Kinds() {
		if strings.EqualFold(norm, string(k)) {
			return k, nil
		}
	}
	return "", &ValidationError{
		Field:  "category",
		Value:  raw,
		Err:    ErrInvalidField,
		Reason: "must be one of Figure, Animal, Puzzle, BoardGame",
	}
}
