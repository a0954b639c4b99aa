package domain

// Classification is the Figure category code.
type Classification byte

// Figure classifications.
const (
	ClassificationAction   Classification = 'A'
	ClassificationDoll     Classification = 'D'
	ClassificationHistoric Classification = 'H'
)

var classifications = codeSet{field: "classification", codes: "ADH", labels: []string{"Action", "Doll", "Historic"}}

// ParseClassification reads a classification code from its record form.
func ParseClassification(raw string) (Classification, error) {
	c, err := classifications.parse(raw)
	return Classification(c), err
}

// Validate reports whether c is a known classification.
func (c Classification) Validate() error { return classifications.check(byte(c)) }

func (c Classification) String() string { return string(rune(c)) }

// Size is the Animal size code.
type Size byte

// Animal sizes.
const (
	SizeSmall  Size = 'S'
	SizeMedium Size = 'M'
	SizeLarge  Size = 'L'
)

var sizes = codeSet{field: "size", codes: "SML", labels: []string{"Small", "Medium", "Large"}}

// ParseSize reads a size code from its record form.
func ParseSize(raw string) (Size, error) {
	c, err := sizes.parse(raw)
	return Size(c), err
}

// Validate reports whether s is a known size.
func (s Size) Validate() error { return sizes.check(byte(s)) }

func (s Size) String() string { return string(rune(s)) }

// PuzzleType is the Puzzle category code.
type PuzzleType byte

// Puzzle types.
const (
	PuzzleMechanical PuzzleType = 'M'
	PuzzleCryptic    PuzzleType = 'C'
	PuzzleLogic      PuzzleType = 'L'
	PuzzleTrivia     PuzzleType = 'T'
	PuzzleRiddle     PuzzleType = 'R'
)

var puzzleTypes = codeSet{field: "puzzle type", codes: "MCLTR", labels: []string{"Mechanical", "Cryptic", "Logic", "Trivia", "Riddle"}}

// ParsePuzzleType reads a puzzle type code from its record form.
func ParsePuzzleType(raw string) (PuzzleType, error) {
	c, err := puzzleTypes.parse(raw)
	return PuzzleType(c), err
}

// Validate reports whether p is a known puzzle type.
func (p PuzzleType) Validate() error { return puzzleTypes.check(byte(p)) }

func (p PuzzleType) String() string { return string(rune(p)) }
