// Package validate holds the text rules shared by every prompted field.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLength is the longest accepted value, in characters, after trimming.
const MaxLength = 100

// allowedPunctuation lists the punctuation accepted besides letters, digits and whitespace.
const allowedPunctuation = ".,!?'-()"

var (
	// ErrEmpty means the trimmed value is empty. Whether that is acceptable
	// is decided by the caller's field policy.
	ErrEmpty = errors.New("value is empty")

	// ErrTooLong means the trimmed value exceeds MaxLength characters.
	ErrTooLong = errors.New("value is too long")

	// ErrInvalidCharacter means the value contains a disallowed character.
	ErrInvalidCharacter = errors.New("value contains invalid characters")
)

// FieldError attributes a validation failure to a named field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	switch {
	case errors.Is(e.Err, ErrEmpty):
		return fmt.Sprintf("%s is required. Please enter a value.", e.Field)
	case errors.Is(e.Err, ErrTooLong):
		return fmt.Sprintf("%s is too long (max %d characters). Please try again.", e.Field, MaxLength)
	case errors.Is(e.Err, ErrInvalidCharacter):
		return fmt.Sprintf("%s contains invalid characters. Please use only letters, numbers, spaces, and basic punctuation.", e.Field)
	default:
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
}

func (e *FieldError) Unwrap() error { return e.Err }

// Text trims raw and checks it against the length and character rules.
// The trimmed value is returned alongside any error.
func Text(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmpty
	}
	if utf8.RuneCountInString(trimmed) > MaxLength {
		return trimmed, ErrTooLong
	}
	for _, r := range trimmed {
		if !Allowed(r) {
			return trimmed, fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
		}
	}
	return trimmed, nil
}

// Field is Text with failures wrapped in a *FieldError for field.
func Field(field, raw string) (string, error) {
	v, err := Text(raw)
	if err != nil {
		return v, &FieldError{Field: field, Err: err}
	}
	return v, nil
}

// Allowed reports whether r may appear in a field value.
func Allowed(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) ||
		strings.ContainsRune(allowedPunctuation, r)
}
