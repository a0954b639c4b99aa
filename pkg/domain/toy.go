package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Toy is an inventory item. The set of implementations is closed:
// *Figure, *Animal, *Puzzle and *BoardGame.
type Toy interface {
	SerialNumber() string
	Name() string
	Brand() string
	Price() decimal.Decimal
	AvailableCount() int
	AgeAppropriate() int
	Attributes() Attributes

	SetName(name string)
	SetBrand(brand string)
	SetPrice(price decimal.Decimal) error
	SetAvailableCount(n int) error
	SetAgeAppropriate(age int) error

	// Kind returns the category tag.
	Kind() Kind
	// RecordFields returns the category-specific tail of the persisted record,
	// in record order.
	RecordFields() []string
	// Clone returns an independent copy.
	Clone() Toy
	String() string

	base() *Base
}

// Attributes carries the fields shared by every toy category.
type Attributes struct {
	SerialNumber   string
	Name           string
	Brand          string
	Price          decimal.Decimal
	AvailableCount int
	AgeAppropriate int
}

// Base holds the shared toy fields. It is embedded by every category and
// cannot be constructed outside this package.
type Base struct {
	attrs Attributes
}

func newBase(kind Kind, attrs Attributes) (Base, error) {
	if err := ValidateSerialFor(kind, attrs.SerialNumber); err != nil {
		return Base{}, err
	}
	if err := checkNonNegativePrice("price", attrs.Price); err != nil {
		return Base{}, err
	}
	if err := CheckNonNegative("available count", attrs.AvailableCount); err != nil {
		return Base{}, err
	}
	if err := CheckNonNegative("age appropriate", attrs.AgeAppropriate); err != nil {
		return Base{}, err
	}
	return Base{attrs: attrs}, nil
}

func (b *Base) base() *Base { return b }

// SerialNumber returns the toy identity.
func (b *Base) SerialNumber() string { return b.attrs.SerialNumber }

func (b *Base) Name() string { return b.attrs.Name }

func (b *Base) Brand() string { return b.attrs.Brand }

func (b *Base) Price() decimal.Decimal { return b.attrs.Price }

// AvailableCount returns the units in stock.
func (b *Base) AvailableCount() int { return b.attrs.AvailableCount }

// AgeAppropriate returns the minimum recommended age.
func (b *Base) AgeAppropriate() int { return b.attrs.AgeAppropriate }

// Attributes returns a copy of the shared fields.
func (b *Base) Attributes() Attributes { return b.attrs }

func (b *Base) SetName(name string) { b.attrs.Name = name }

func (b *Base) SetBrand(brand string) { b.attrs.Brand = brand }

// SetPrice replaces the price; negative prices are rejected.
func (b *Base) SetPrice(price decimal.Decimal) error {
	if err := checkNonNegativePrice("price", price); err != nil {
		return err
	}
	b.attrs.Price = price
	return nil
}

// SetAvailableCount replaces the stock count; negative counts are rejected.
func (b *Base) SetAvailableCount(n int) error {
	if err := CheckNonNegative("available count", n); err != nil {
		return err
	}
	b.attrs.AvailableCount = n
	return nil
}

// SetAgeAppropriate replaces the minimum age; negative ages are rejected.
func (b *Base) SetAgeAppropriate(age int) error {
	if err := CheckNonNegative("age appropriate", age); err != nil {
		return err
	}
	b.attrs.AgeAppropriate = age
	return nil
}

func (b *Base) describe(kind Kind) string {
	return fmt.Sprintf("Toy Type: %s, Serial Number: %s, Name: %s, Brand: %s, Price: %s, Available Count: %d, Age Appropriate: %d",
		kind, b.attrs.SerialNumber, b.attrs.Name, b.attrs.Brand, b.attrs.Price.StringFixed(2), b.attrs.AvailableCount, b.attrs.AgeAppropriate)
}
