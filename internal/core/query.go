package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"toyinventory/pkg/domain"
)

// SearchField selects what a Criterion matches against.
type SearchField int

const (
	// BySerialNumber matches the serial number exactly.
	BySerialNumber SearchField = iota + 1
	// ByName matches a case-insensitive substring of the name.
	ByName
	// ByCategory matches the category tag case-insensitively.
	ByCategory
)

func (f SearchField) String() string {
	switch f {
	case BySerialNumber:
		return "serial number"
	case ByName:
		return "name"
	case ByCategory:
		return "category"
	default:
		return fmt.Sprintf("SearchField(%d)", int(f))
	}
}

// Criterion is a single search condition.
type Criterion struct {
	Field SearchField
	Value string
}

// matcher compiles c into a predicate, validating its value.
func (c Criterion) matcher() (func(domain.Toy) bool, error) {
	switch c.Field {
	case BySerialNumber:
		sn := strings.TrimSpace(c.Value)
		if err := domain.ValidateSerialNumber(sn); err != nil {
			return nil, err
		}
		return func(t domain.Toy) bool { return t.SerialNumber() == sn }, nil
	case ByName:
		needle := strings.ToLower(strings.TrimSpace(c.Value))
		if needle == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidCriterion)
		}
		return func(t domain.Toy) bool {
			return strings.Contains(strings.ToLower(t.Name()), needle)
		}, nil
	case ByCategory:
		kind, err := domain.ParseKind(c.Value)
		if err != nil {
			return nil, err
		}
		return func(t domain.Toy) bool { return t.Kind() == kind }, nil
	default:
		return nil, fmt.Errorf("%w: unknown field %s", ErrInvalidCriterion, c.Field)
	}
}

// Search returns copies of every toy matching c in inventory order. No match
// yields an empty result and a nil error; an error means c itself is invalid.
func (inv *Inventory) Search(c Criterion) (out []domain.Toy, err error) {
	defer inv.observe(context.Background(), OpSearch, time.Now(), &err)

	match, err := c.matcher()
	if err != nil {
		return nil, err
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	out = []domain.Toy{}
	for _, t := range inv.toys {
		if match(t) {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

// FilterCriteria narrows the inventory for gift suggestions. Nil fields
// impose no constraint; the rest combine with AND.
type FilterCriteria struct {
	// MinAge keeps toys whose age appropriate value is at least MinAge.
	MinAge *int
	// MaxPrice keeps toys priced at most MaxPrice.
	MaxPrice *decimal.Decimal
	Category *domain.Kind
}

func (fc FilterCriteria) match(t domain.Toy) bool {
	if fc.MinAge != nil && t.AgeAppropriate() < *fc.MinAge {
		return false
	}
	if fc.MaxPrice != nil && t.Price().GreaterThan(*fc.MaxPrice) {
		return false
	}
	if fc.Category != nil && t.Kind() != *fc.Category {
		return false
	}
	return true
}

// Filter returns copies of every toy satisfying all provided criteria, in
// inventory order.
func (inv *Inventory) Filter(fc FilterCriteria) []domain.Toy {
	defer inv.observe(context.Background(), OpFilter, time.Now(), nil)

	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := []domain.Toy{}
	for _, t := range inv.toys {
		if fc.match(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}
