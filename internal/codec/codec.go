// Package codec converts toys to and from the ';' delimited record format used
// by every record store.
//
// A record is one line: serial number, name, brand, price, available count,
// age appropriate, then the category fields. The leading digit of the serial
// number selects the category.
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"toyinventory/pkg/domain"
)

const (
	// Separator delimits the fields of a record.
	Separator = ";"
	// PlayerSeparator delimits the minimum and maximum of a player range.
	PlayerSeparator = "-"

	baseFieldCount = 6
	minFieldCount  = 7
)

var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrUnknownToyType  = errors.New("unknown toy type")
)

// DecodeError reports why a record could not be decoded. Err wraps either a
// codec sentinel or a *domain.ValidationError.
type DecodeError struct {
	Record string
	Field  string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode record: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("decode record: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func fail(record, field string, err error) error {
	if field == "" {
		field = domain.FieldOf(err)
	}
	return &DecodeError{Record: record, Field: field, Err: err}
}

// fieldCount returns how many fields a record of kind must carry.
func fieldCount(kind domain.Kind) int {
	switch kind {
	case domain.KindAnimal, domain.KindBoardGame:
		return baseFieldCount + 2
	default:
		return baseFieldCount + 1
	}
}

// Decode parses one record. Fields beyond those of the category are ignored.
func Decode(line string) (domain.Toy, error) {
	fields := strings.Split(line, Separator)
	if len(fields) < minFieldCount {
		return nil, fail(line, "", fmt.Errorf("%w: %d fields, want at least %d", ErrMalformedRecord, len(fields), minFieldCount))
	}
	sn := strings.TrimSpace(fields[0])
	if sn == "" {
		return nil, fail(line, "serial number", ErrUnknownToyType)
	}
	kind, ok := domain.KindForPrefix(sn[0])
	if !ok {
		return nil, fail(line, "serial number", fmt.Errorf("%w: leading character %q", ErrUnknownToyType, sn[0]))
	}
	if want := fieldCount(kind); len(fields) < want {
		return nil, fail(line, "", fmt.Errorf("%w: %s needs %d fields, got %d", ErrMalformedRecord, kind, want, len(fields)))
	}

	attrs, err := decodeAttributes(sn, fields)
	if err != nil {
		return nil, fail(line, "", err)
	}

	var toy domain.Toy
	switch kind {
	case domain.KindFigure:
		toy, err = decodeFigure(attrs, fields)
	case domain.KindAnimal:
		toy, err = decodeAnimal(attrs, fields)
	case domain.KindPuzzle:
		toy, err = decodePuzzle(attrs, fields)
	case domain.KindBoardGame:
		toy, err = decodeBoardGame(attrs, fields)
	}
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Record = line
			return nil, de
		}
		return nil, fail(line, "", err)
	}
	return toy, nil
}

func decodeAttributes(sn string, fields []string) (domain.Attributes, error) {
	price, err := domain.ParsePrice("price", fields[3])
	if err != nil {
		return domain.Attributes{}, err
	}
	count, err := domain.ParseInt("available count", fields[4])
	if err != nil {
		return domain.Attributes{}, err
	}
	age, err := domain.ParseInt("age appropriate", fields[5])
	if err != nil {
		return domain.Attributes{}, err
	}
	return domain.Attributes{
		SerialNumber:   sn,
		Name:           fields[1],
		Brand:          fields[2],
		Price:          price,
		AvailableCount: count,
		AgeAppropriate: age,
	}, nil
}

func decodeFigure(attrs domain.Attributes, fields []string) (domain.Toy, error) {
	c, err := domain.ParseClassification(fields[6])
	if err != nil {
		return nil, err
	}
	return domain.NewFigure(attrs, c)
}

func decodeAnimal(attrs domain.Attributes, fields []string) (domain.Toy, error) {
	size, err := domain.ParseSize(fields[7])
	if err != nil {
		return nil, err
	}
	return domain.NewAnimal(attrs, fields[6], size)
}

func decodePuzzle(attrs domain.Attributes, fields []string) (domain.Toy, error) {
	pt, err := domain.ParsePuzzleType(fields[6])
	if err != nil {
		return nil, err
	}
	return domain.NewPuzzle(attrs, pt)
}

func decodeBoardGame(attrs domain.Attributes, fields []string) (domain.Toy, error) {
	bounds := strings.Split(fields[6], PlayerSeparator)
	if len(bounds) != 2 {
		return nil, &DecodeError{Field: "players", Err: fmt.Errorf("%w: player range %q, want min-max", ErrMalformedRecord, fields[6])}
	}
	minPlayers, err := domain.ParseInt("minimum players", bounds[0])
	if err != nil {
		return nil, err
	}
	maxPlayers, err := domain.ParseInt("maximum players", bounds[1])
	if err != nil {
		return nil, err
	}
	return domain.NewBoardGame(attrs, minPlayers, maxPlayers, fields[7])
}

// Encode renders toy as a record. Decode(Encode(t)) reproduces t.
func Encode(toy domain.Toy) string {
	parts := make([]string, 0, baseFieldCount+2)
	parts = append(parts,
		toy.SerialNumber(),
		toy.Name(),
		toy.Brand(),
		FormatPrice(toy),
		strconv.Itoa(toy.AvailableCount()),
		strconv.Itoa(toy.AgeAppropriate()),
	)
	parts = append(parts, toy.RecordFields()...)
	return strings.Join(parts, Separator)
}

// FormatPrice renders the price with at least one fractional digit, so whole
// prices read "10.0" as in existing inventory files.
func FormatPrice(toy domain.Toy) string {
	s := toy.Price().String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Diagnostic describes a record that was skipped while reading a batch.
type Diagnostic struct {
	// Line is the 1-based position of the record in its source.
	Line   int
	Record string
	Err    error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %v", d.Line, d.Err)
}

// Decoded is a record that decoded successfully, with its source line.
type Decoded struct {
	// Line is the 1-based position of the record in its source.
	Line int
	Toy  domain.Toy
}

// DecodeRecords decodes a batch of records. Blank records are ignored and
// records that fail to decode are reported as diagnostics; decoding always
// continues with the next record.
func DecodeRecords(records []string) ([]Decoded, []Diagnostic) {
	var (
		decoded []Decoded
		diags   []Diagnostic
	)
	for i, rec := range records {
		if strings.TrimSpace(rec) == "" {
			continue
		}
		toy, err := Decode(rec)
		if err != nil {
			diags = append(diags, Diagnostic{Line: i + 1, Record: rec, Err: err})
			continue
		}
		decoded = append(decoded, Decoded{Line: i + 1, Toy: toy})
	}
	return decoded, diags
}

// EncodeRecords renders every toy as a record, in order.
func EncodeRecords(toys []domain.Toy) []string {
	out := make([]string, len(toys))
	for i, t := range toys {
		out[i] = Encode(t)
	}
	return out
}
