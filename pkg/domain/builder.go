package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Fields is the raw input of the add path, one string per form field. Only
// the fields of the category encoded in SerialNumber are read.
type Fields struct {
	// Kind optionally pins the category the caller expects; when set the
	// serial number prefix must agree with it.
	Kind Kind `validate:"omitempty,oneof=Figure Animal Puzzle BoardGame"`

	SerialNumber   string `label:"serial number"`
	Name           string `label:"name" validate:"required,excludesall=;"`
	Brand          string `label:"brand" validate:"excludesall=;"`
	Price          string `label:"price" validate:"required"`
	AvailableCount string `label:"available count" validate:"required"`
	AgeAppropriate string `label:"age appropriate" validate:"required"`

	Classification string `label:"classification"`
	Material       string `label:"material" validate:"excludesall=;"`
	Size           string `label:"size"`
	PuzzleType     string `label:"puzzle type"`
	MinPlayers     string `label:"minimum players"`
	MaxPlayers     string `label:"maximum players"`
	Designers      string `label:"designers" validate:"excludesall=;"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	return v
}

// Build validates raw add-path input and constructs the toy its serial
// number encodes. Unlike the bare constructors it also requires a name, a
// positive player range with min ≤ max, and at least one designer.
func Build(f Fields) (Toy, error) {
	if err := validate.Struct(f); err != nil {
		return nil, translate(err)
	}
	sn := strings.TrimSpace(f.SerialNumber)
	kind, err := KindOf(sn)
	if err != nil {
		return nil, err
	}
	if f.Kind != "" {
		if err := ValidateSerialFor(f.Kind, sn); err != nil {
			return nil, err
		}
	}
	attrs, err := buildAttributes(sn, f)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindFigure:
		c, err := ParseClassification(strings.ToUpper(f.Classification))
		if err != nil {
			return nil, err
		}
		return asToy(NewFigure(attrs, c))
	case KindAnimal:
		material := strings.TrimSpace(f.Material)
		if err := validateMaterial(material); err != nil {
			return nil, err
		}
		size, err := ParseSize(strings.ToUpper(f.Size))
		if err != nil {
			return nil, err
		}
		return asToy(NewAnimal(attrs, material, size))
	case KindPuzzle:
		pt, err := ParsePuzzleType(strings.ToUpper(f.PuzzleType))
		if err != nil {
			return nil, err
		}
		return asToy(NewPuzzle(attrs, pt))
	default:
		minPlayers, err := ParseNonNegativeInt("minimum players", f.MinPlayers)
		if err != nil {
			return nil, err
		}
		maxPlayers, err := ParseNonNegativeInt("maximum players", f.MaxPlayers)
		if err != nil {
			return nil, err
		}
		if err := CheckPlayerRange(minPlayers, maxPlayers); err != nil {
			return nil, err
		}
		designers := strings.TrimSpace(f.Designers)
		if designers == "" {
			return nil, invalid("designers", f.Designers, ErrInvalidField, "cannot be empty")
		}
		return asToy(NewBoardGame(attrs, minPlayers, maxPlayers, designers))
	}
}

// asToy keeps a failed constructor from leaking a typed nil into Toy.
func asToy[T Toy](t T, err error) (Toy, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}

func buildAttributes(sn string, f Fields) (Attributes, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return Attributes{}, invalid("name", f.Name, ErrInvalidField, "cannot be empty")
	}
	price, err := ParseNonNegativePrice("price", f.Price)
	if err != nil {
		return Attributes{}, err
	}
	count, err := ParseNonNegativeInt("available count", f.AvailableCount)
	if err != nil {
		return Attributes{}, err
	}
	age, err := ParseNonNegativeInt("age appropriate", f.AgeAppropriate)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{
		SerialNumber:   sn,
		Name:           name,
		Brand:          strings.TrimSpace(f.Brand),
		Price:          price,
		AvailableCount: count,
		AgeAppropriate: age,
	}, nil
}

// translate maps the first struct-tag failure onto a ValidationError.
func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	value, _ := fe.Value().(string)
	if value == "" {
		if k, ok := fe.Value().(Kind); ok {
			value = string(k)
		}
	}
	reason := fe.Tag()
	switch fe.Tag() {
	case "required":
		reason = "cannot be empty"
	case "excludesall":
		reason = "cannot contain " + fe.Param()
	case "oneof":
		reason = "must be one of " + fe.Param()
	}
	return invalid(fe.Field(), value, ErrInvalidField, reason)
}
