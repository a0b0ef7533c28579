package cli

import (
	"errors"

	"github.com/alexanderramin/systematics/internal/validate"
	"github.com/charmbracelet/huh"
)

// optionalInput returns a huh.Input that accepts blank (keep def) or valid text.
func optionalInput(title, def string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(def).
		Value(value).
		Validate(validateOptionalText)
}

// requiredInput returns a huh.Input that rejects blank or invalid text.
func requiredInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(validateRequiredText(title))
}

// confirmField returns a themed yes/no field.
func confirmField(title string, value *bool) *huh.Confirm {
	return huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(value)
}

// validateOptionalText accepts empty or valid text.
func validateOptionalText(s string) error {
	if _, err := validate.Text(s); err != nil && !errors.Is(err, validate.ErrEmpty) {
		return err
	}
	return nil
}

// validateRequiredText returns a validator reporting errors against field.
func validateRequiredText(field string) func(string) error {
	return func(s string) error {
		_, err := validate.Field(field, s)
		return err
	}
}
