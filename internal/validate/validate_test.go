package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_Accepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain word", input: "Ground", want: "Ground"},
		{name: "trims", input: "  Ideal \t\n", want: "Ideal"},
		{name: "punctuation", input: "Why? (because), it's fine - ok.!", want: "Why? (because), it's fine - ok.!"},
		{name: "digits", input: "Phase 2", want: "Phase 2"},
		{name: "unicode letters", input: "Ünïcödé", want: "Ünïcödé"},
		{name: "inner tab", input: "a\tb", want: "a\tb"},
		{name: "exactly max", input: strings.Repeat("a", MaxLength), want: strings.Repeat("a", MaxLength)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Text(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestText_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: ErrEmpty},
		{name: "whitespace only", input: " \t \n", want: ErrEmpty},
		{name: "too long", input: strings.Repeat("a", MaxLength+1), want: ErrTooLong},
		{name: "too long after trim", input: "  " + strings.Repeat("b", MaxLength+1) + "  ", want: ErrTooLong},
		{name: "underscore", input: "a_b", want: ErrInvalidCharacter},
		{name: "semicolon", input: "a;b", want: ErrInvalidCharacter},
		{name: "slash", input: "a/b", want: ErrInvalidCharacter},
		{name: "at sign", input: "me@example", want: ErrInvalidCharacter},
		{name: "double quote", input: `say "hi"`, want: ErrInvalidCharacter},
		{name: "arrow", input: "a → b", want: ErrInvalidCharacter},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Text(tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestText_LengthCountsCharacters(t *testing.T) {
	t.Parallel()

	_, err := Text(strings.Repeat("é", MaxLength))
	assert.NoError(t, err)
}

func TestField_WrapsWithFieldName(t *testing.T) {
	t.Parallel()

	_, err := Field("Essence", "   ")
	require.Error(t, err)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "Essence", fe.Field)
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, "Essence is required. Please enter a value.", err.Error())

	_, err = Field("Ground", "x#y")
	assert.Contains(t, err.Error(), "Ground contains invalid characters")

	_, err = Field("Ideal", strings.Repeat("z", 101))
	assert.Contains(t, err.Error(), "Ideal is too long (max 100 characters)")
}
