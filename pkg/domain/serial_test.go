package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSerialNumber(t *testing.T) {
	cases := []struct {
		name   string
		sn     string
		reason string
	}{
		{"valid", "0123456789", ""},
		{"empty", "", "cannot be empty"},
		{"letters", "01234a6789", "should only contain digits"},
		{"short", "012345", "must be exactly 10 digits"},
		{"long", "01234567890", "must be exactly 10 digits"},
		{"space", " 123456789", "should only contain digits"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSerialNumber(tc.sn)
			if tc.reason == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidSerial)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.reason, ve.Reason)
			assert.Equal(t, "serial number", ve.Field)
		})
	}
}

func TestKindForPrefixCoversEveryDigit(t *testing.T) {
	want := map[byte]Kind{
		'0': KindFigure, '1': KindFigure,
		'2': KindAnimal, '3': KindAnimal,
		'4': KindPuzzle, '5': KindPuzzle, '6': KindPuzzle,
		'7': KindBoardGame, '8': KindBoardGame, '9': KindBoardGame,
	}
	for c := byte('0'); c <= '9'; c++ {
		got, ok := KindForPrefix(c)
		require.True(t, ok, "digit %c", c)
		assert.Equal(t, want[c], got, "digit %c", c)
	}
	_, ok := KindForPrefix('x')
	assert.False(t, ok)
}

func TestKindPrefixes(t *testing.T) {
	assert.Equal(t, "01", KindFigure.Prefixes())
	assert.Equal(t, "23", KindAnimal.Prefixes())
	assert.Equal(t, "456", KindPuzzle.Prefixes())
	assert.Equal(t, "789", KindBoardGame.Prefixes())
	assert.Empty(t, Kind("Robot").Prefixes())
}

func TestValidateSerialForPrefixMismatch(t *testing.T) {
	err := ValidateSerialFor(KindPuzzle, "7000000000")
	require.ErrorIs(t, err, ErrSerialPrefix)
	assert.Contains(t, err.Error(), "Puzzle serial numbers must start with 4, 5, or 6")

	require.NoError(t, ValidateSerialFor(KindPuzzle, "5000000000"))

	// Shape is checked before the prefix.
	require.ErrorIs(t, ValidateSerialFor(KindPuzzle, "70"), ErrInvalidSerial)

	err = ValidateSerialFor(Kind("Robot"), "5000000000")
	require.ErrorIs(t, err, ErrInvalidField)
	assert.Equal(t, "category", FieldOf(err))
}

func TestKindValid(t *testing.T) {
	for _, k := range Kinds() {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, Kind("").Valid())
	assert.False(t, Kind("figure").Valid())
}

func TestKindOf(t *testing.T) {
	k, err := KindOf("3141592653")
	require.NoError(t, err)
	assert.Equal(t, KindAnimal, k)

	_, err = KindOf("31415")
	require.ErrorIs(t, err, ErrInvalidSerial)
}

func TestParseKind(t *testing.T) {
	for raw, want := range map[string]Kind{
		"figure":     KindFigure,
		"ANIMAL":     KindAnimal,
		" Puzzle ":   KindPuzzle,
		"BoardGame":  KindBoardGame,
		"board game": KindBoardGame,
	} {
		got, err := ParseKind(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseKind("robot")
	require.ErrorIs(t, err, ErrInvalidField)
	assert.Equal(t, "category", FieldOf(err))
}

func TestParseNumbers(t *testing.T) {
	n, err := ParseInt("available count", " 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = ParseInt("available count", "-3")
	require.NoError(t, err)
	assert.Equal(t, -3, n)

	_, err = ParseNonNegativeInt("available count", "-3")
	require.ErrorIs(t, err, ErrNegativeNumber)

	_, err = ParseInt("available count", "twelve")
	require.ErrorIs(t, err, ErrNumberFormat)
	assert.Equal(t, "available count", FieldOf(err))

	p, err := ParsePrice("price", "19.99")
	require.NoError(t, err)
	assert.Equal(t, "19.99", p.StringFixed(2))

	_, err = ParseNonNegativePrice("price", "-0.01")
	require.ErrorIs(t, err, ErrNegativeNumber)

	_, err = ParsePrice("price", "$5")
	require.ErrorIs(t, err, ErrNumberFormat)
}

func TestCodeParsing(t *testing.T) {
	c, err := ParseClassification("Action")
	require.NoError(t, err)
	assert.Equal(t, ClassificationAction, c)

	_, err = ParseClassification("x")
	require.ErrorIs(t, err, ErrInvalidField)
	assert.Contains(t, err.Error(), "must be 'A' (Action), 'D' (Doll), or 'H' (Historic)")

	_, err = ParseSize("")
	require.ErrorIs(t, err, ErrInvalidField)
	assert.Contains(t, err.Error(), "cannot be empty")

	pt, err := ParsePuzzleType("R")
	require.NoError(t, err)
	assert.Equal(t, PuzzleRiddle, pt)

	// Codes are case sensitive on the record path.
	_, err = ParsePuzzleType("r")
	require.Error(t, err)

	require.Error(t, Size('Q').Validate())
	require.NoError(t, SizeLarge.Validate())
}
