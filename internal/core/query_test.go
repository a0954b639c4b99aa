package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toyinventory/pkg/domain"
)

func serials(toys []domain.Toy) []string {
	out := make([]string, len(toys))
	for i, t := range toys {
		out[i] = t.SerialNumber()
	}
	return out
}

func TestSearch(t *testing.T) {
	inv := loadSample(t)

	cases := []struct {
		name string
		c    Criterion
		want []string
	}{
		{"name substring is case insensitive", Criterion{ByName, "lion"}, []string{"0123456789"}},
		{"name matches several", Criterion{ByName, "E"}, []string{"0123456789", "2000000001", "4000000002"}},
		{"serial exact", Criterion{BySerialNumber, "4000000002"}, []string{"4000000002"}},
		{"serial absent", Criterion{BySerialNumber, "4000000009"}, []string{}},
		{"category", Criterion{ByCategory, "figure"}, []string{"0123456789", "1000000004"}},
		{"category two words", Criterion{ByCategory, "Board Game"}, []string{"7000000003"}},
		{"no name match", Criterion{ByName, "zebra"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := inv.Search(tc.c)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, serials(got))
		})
	}
}

func TestSearchInvalidCriterion(t *testing.T) {
	inv := loadSample(t)

	_, err := inv.Search(Criterion{ByName, "  "})
	require.ErrorIs(t, err, ErrInvalidCriterion)

	_, err = inv.Search(Criterion{BySerialNumber, "12ab"})
	require.ErrorIs(t, err, domain.ErrInvalidSerial)

	_, err = inv.Search(Criterion{ByCategory, "robot"})
	require.ErrorIs(t, err, domain.ErrInvalidField)

	_, err = inv.Search(Criterion{Field: SearchField(42), Value: "x"})
	require.ErrorIs(t, err, ErrInvalidCriterion)
	assert.Contains(t, err.Error(), "SearchField(42)")
}

func TestFilter(t *testing.T) {
	inv := loadSample(t)
	minAge := 6
	maxPrice := decimal.RequireFromString("10.00")

	got := inv.Filter(FilterCriteria{MinAge: &minAge, MaxPrice: &maxPrice})
	assert.Equal(t, []string{"4000000002", "1000000004"}, serials(got))
	for _, toy := range got {
		assert.GreaterOrEqual(t, toy.AgeAppropriate(), 6)
		assert.True(t, toy.Price().LessThanOrEqual(maxPrice))
	}

	figure := domain.KindFigure
	got = inv.Filter(FilterCriteria{MinAge: &minAge, Category: &figure})
	assert.Equal(t, []string{"0123456789", "1000000004"}, serials(got))

	assert.Len(t, inv.Filter(FilterCriteria{}), len(sampleRecords))

	tooOld := 99
	got = inv.Filter(FilterCriteria{MinAge: &tooOld})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterBoundaryIsInclusive(t *testing.T) {
	inv := loadSample(t)
	price := decimal.RequireFromString("9.99")
	age := 8
	got := inv.Filter(FilterCriteria{MinAge: &age, MaxPrice: &price})
	assert.Equal(t, []string{"4000000002"}, serials(got))
}
