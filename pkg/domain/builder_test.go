package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseFields(sn string) Fields {
	return Fields{
		SerialNumber:   sn,
		Name:           " Meeple Quest ",
		Brand:          "Acme",
		Price:          "39.50",
		AvailableCount: "3",
		AgeAppropriate: "10",
	}
}

func TestBuildDispatchesOnPrefix(t *testing.T) {
	f := baseFields("1234567890")
	f.Classification = "d"
	toy, err := Build(f)
	require.NoError(t, err)
	fig, ok := toy.(*Figure)
	require.True(t, ok)
	assert.Equal(t, ClassificationDoll, fig.Classification())
	assert.Equal(t, "Meeple Quest", fig.Name())

	f = baseFields("3234567890")
	f.Material = "Wool"
	f.Size = "l"
	toy, err = Build(f)
	require.NoError(t, err)
	assert.Equal(t, KindAnimal, toy.Kind())

	f = baseFields("5234567890")
	f.PuzzleType = "C"
	toy, err = Build(f)
	require.NoError(t, err)
	assert.Equal(t, KindPuzzle, toy.Kind())

	f = baseFields("9234567890")
	f.MinPlayers, f.MaxPlayers, f.Designers = "2", "6", "Ann, Ben"
	toy, err = Build(f)
	require.NoError(t, err)
	game := toy.(*BoardGame)
	assert.Equal(t, []string{"Ann", "Ben"}, game.Designers())
	assert.Equal(t, "39.50", game.Price().StringFixed(2))
}

func TestBuildFailures(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*Fields)
		err   error
		field string
	}{
		{"bad serial", func(f *Fields) { f.SerialNumber = "12ab" }, ErrInvalidSerial, "serial number"},
		{"missing name", func(f *Fields) { f.Name = "" }, ErrInvalidField, "name"},
		{"blank name", func(f *Fields) { f.Name = "   " }, ErrInvalidField, "name"},
		{"delimiter in name", func(f *Fields) { f.Name = "a;b" }, ErrInvalidField, "name"},
		{"price format", func(f *Fields) { f.Price = "cheap" }, ErrNumberFormat, "price"},
		{"negative price", func(f *Fields) { f.Price = "-1" }, ErrNegativeNumber, "price"},
		{"negative count", func(f *Fields) { f.AvailableCount = "-1" }, ErrNegativeNumber, "available count"},
		{"missing age", func(f *Fields) { f.AgeAppropriate = "" }, ErrInvalidField, "age appropriate"},
		{"min exceeds max", func(f *Fields) { f.MinPlayers, f.MaxPlayers = "5", "2" }, ErrPlayerCount, "players"},
		{"zero players", func(f *Fields) { f.MinPlayers = "0" }, ErrPlayerCount, "players"},
		{"players format", func(f *Fields) { f.MaxPlayers = "many" }, ErrNumberFormat, "maximum players"},
		{"no designers", func(f *Fields) { f.Designers = " " }, ErrInvalidField, "designers"},
		{"pinned kind mismatch", func(f *Fields) { f.Kind = KindFigure }, ErrSerialPrefix, "serial number"},
		{"unknown kind", func(f *Fields) { f.Kind = "Robot" }, ErrInvalidField, "Kind"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := baseFields("7000000000")
			f.MinPlayers, f.MaxPlayers, f.Designers = "2", "4", "Ann"
			tc.edit(&f)
			_, err := Build(f)
			require.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.field, FieldOf(err))
		})
	}
}

func TestBuildVariantFieldFailures(t *testing.T) {
	f := baseFields("0000000000")
	f.Classification = "Z"
	_, err := Build(f)
	require.ErrorIs(t, err, ErrInvalidField)
	assert.Equal(t, "classification", FieldOf(err))

	f = baseFields("2000000000")
	f.Size = "M"
	_, err = Build(f)
	require.ErrorIs(t, err, ErrInvalidField)
	assert.Equal(t, "material", FieldOf(err))

	f = baseFields("6000000000")
	_, err = Build(f)
	require.ErrorIs(t, err, ErrInvalidField)
	assert.Equal(t, "puzzle type", FieldOf(err))
}
