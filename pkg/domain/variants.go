package domain

import (
	"fmt"
	"strings"
)

var (
	_ Toy = (*Figure)(nil)
	_ Toy = (*Animal)(nil)
	_ Toy = (*Puzzle)(nil)
	_ Toy = (*BoardGame)(nil)
)

// Figure is a toy figure with a classification code.
type Figure struct {
	Base
	classification Classification
}

// NewFigure validates and constructs a Figure. The serial number must start
// with 0 or 1.
func NewFigure(attrs Attributes, classification Classification) (*Figure, error) {
	base, err := newBase(KindFigure, attrs)
	if err != nil {
		return nil, err
	}
	if err := classification.Validate(); err != nil {
		return nil, err
	}
	return &Figure{Base: base, classification: classification}, nil
}

func (f *Figure) Kind() Kind { return KindFigure }

func (f *Figure) Classification() Classification { return f.classification }

// SetClassification replaces the classification after validating it.
func (f *Figure) SetClassification(c Classification) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f.classification = c
	return nil
}

func (f *Figure) RecordFields() []string { return []string{f.classification.String()} }

func (f *Figure) Clone() Toy {
	cp := *f
	return &cp
}

func (f *Figure) String() string {
	return f.describe(KindFigure) + fmt.Sprintf(", Classification: %s", f.classification)
}

// Animal is a stuffed or molded animal toy.
type Animal struct {
	Base
	material string
	size     Size
}

// NewAnimal validates and constructs an Animal. The serial number must start
// with 2 or 3 and the material cannot be blank.
func NewAnimal(attrs Attributes, material string, size Size) (*Animal, error) {
	base, err := newBase(KindAnimal, attrs)
	if err != nil {
		return nil, err
	}
	if err := validateMaterial(material); err != nil {
		return nil, err
	}
	if err := size.Validate(); err != nil {
		return nil, err
	}
	return &Animal{Base: base, material: material, size: size}, nil
}

func validateMaterial(material string) error {
	if strings.TrimSpace(material) == "" {
		return invalid("material", material, ErrInvalidField, "cannot be empty")
	}
	return nil
}

func (a *Animal) Kind() Kind { return KindAnimal }

func (a *Animal) Material() string { return a.material }

func (a *Animal) Size() Size { return a.size }

// SetMaterial replaces the material; blank values are rejected.
func (a *Animal) SetMaterial(material string) error {
	if err := validateMaterial(material); err != nil {
		return err
	}
	a.material = material
	return nil
}

// SetSize replaces the size after validating it.
func (a *Animal) SetSize(s Size) error {
	if err := s.Validate(); err != nil {
		return err
	}
	a.size = s
	return nil
}

func (a *Animal) RecordFields() []string { return []string{a.material, a.size.String()} }

func (a *Animal) Clone() Toy {
	cp := *a
	return &cp
}

func (a *Animal) String() string {
	return a.describe(KindAnimal) + fmt.Sprintf(", Material: %s, Size: %s", a.material, a.size)
}

// Puzzle is a puzzle toy with a puzzle type code.
type Puzzle struct {
	Base
	puzzleType PuzzleType
}

// NewPuzzle validates and constructs a Puzzle. The serial number must start
// with 4, 5 or 6.
func NewPuzzle(attrs Attributes, puzzleType PuzzleType) (*Puzzle, error) {
	base, err := newBase(KindPuzzle, attrs)
	if err != nil {
		return nil, err
	}
	if err := puzzleType.Validate(); err != nil {
		return nil, err
	}
	return &Puzzle{Base: base, puzzleType: puzzleType}, nil
}

func (p *Puzzle) Kind() Kind { return KindPuzzle }

func (p *Puzzle) PuzzleType() PuzzleType { return p.puzzleType }

// SetPuzzleType replaces the puzzle type after validating it.
func (p *Puzzle) SetPuzzleType(t PuzzleType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	p.puzzleType = t
	return nil
}

func (p *Puzzle) RecordFields() []string { return []string{p.puzzleType.String()} }

func (p *Puzzle) Clone() Toy {
	cp := *p
	return &cp
}

func (p *Puzzle) String() string {
	return p.describe(KindPuzzle) + fmt.Sprintf(", Puzzle Type: %s", p.puzzleType)
}

// BoardGame is a board game with a player range and its designers.
type BoardGame struct {
	Base
	minPlayers int
	maxPlayers int
	designers  []string
}

// NewBoardGame constructs a BoardGame. The serial number must start with 7, 8
// or 9. designers is a comma separated list; names are trimmed.
//
// The player range is stored as given. Build enforces 0 < min ≤ max for new
// toys; records already on disk are loaded without that check.
func NewBoardGame(attrs Attributes, minPlayers, maxPlayers int, designers string) (*BoardGame, error) {
	base, err := newBase(KindBoardGame, attrs)
	if err != nil {
		return nil, err
	}
	return &BoardGame{
		Base:       base,
		minPlayers: minPlayers,
		maxPlayers: maxPlayers,
		designers:  SplitDesigners(designers),
	}, nil
}

// SplitDesigners splits a comma separated designer list and trims each name.
func SplitDesigners(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// CheckPlayerRange enforces 0 < min ≤ max.
func CheckPlayerRange(minPlayers, maxPlayers int) error {
	if minPlayers <= 0 || maxPlayers < minPlayers {
		return invalid("players", fmt.Sprintf("%d-%d", minPlayers, maxPlayers), ErrPlayerCount,
			"minimum players cannot exceed maximum, and both must be positive")
	}
	return nil
}

func (g *BoardGame) Kind() Kind { return KindBoardGame }

func (g *BoardGame) MinPlayers() int { return g.minPlayers }

func (g *BoardGame) MaxPlayers() int { return g.maxPlayers }

// Designers returns a copy of the designer names.
func (g *BoardGame) Designers() []string {
	out := make([]string, len(g.designers))
	copy(out, g.designers)
	return out
}

// SetDesigners replaces the designer names, trimming each.
func (g *BoardGame) SetDesigners(designers []string) {
	out := make([]string, len(designers))
	for i, d := range designers {
		out[i] = strings.TrimSpace(d)
	}
	g.designers = out
}

func (g *BoardGame) RecordFields() []string {
	return []string{fmt.Sprintf("%d-%d", g.minPlayers, g.maxPlayers), strings.Join(g.designers, ",")}
}

func (g *BoardGame) Clone() Toy {
	cp := *g
	cp.designers = g.Designers()
	return &cp
}

func (g *BoardGame) String() string {
	return g.describe(KindBoardGame) + fmt.Sprintf(", Players: %d-%d, Designers: %s",
		g.minPlayers, g.maxPlayers, strings.Join(g.designers, ", "))
}
