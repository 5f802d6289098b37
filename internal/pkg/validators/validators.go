// Package validators holds the custom validation tags shared by domain entities and forms.
package validators

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// MaxPasswordBytes is the longest password bcrypt accepts
const MaxPasswordBytes = 72

var gradePattern = regexp.MustCompile(`^[A-Z][+-]?$`)

// UsernameValidation accepts printable usernames without whitespace.
func UsernameValidation(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if username == "" {
		return false
	}
	for _, r := range username {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// GradeValidation accepts a single upper-case letter optionally followed by + or -.
// Empty grades are left to "omitempty".
func GradeValidation(fl validator.FieldLevel) bool {
	return gradePattern.MatchString(fl.Field().String())
}

// BcryptPasswordValidation limits passwords to MaxPasswordBytes bytes, not characters.
func BcryptPasswordValidation(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxPasswordBytes
}

// New returns a validator with the custom tags registered.
func New() (*validator.Validate, error) {
	validate := validator.New()

	if err := validate.RegisterValidation("username", UsernameValidation); err != nil {
		return nil, fmt.Errorf("failed to register username validator: %w", err)
	}
	if err := validate.RegisterValidation("grade", GradeValidation); err != nil {
		return nil, fmt.Errorf("failed to register grade validator: %w", err)
	}
	if err := validate.RegisterValidation("bcryptpassword", BcryptPasswordValidation); err != nil {
		return nil, fmt.Errorf("failed to register bcryptpassword validator: %w", err)
	}
	return validate, nil
}

// Struct validates s and flattens validation failures into a single error
// listing field and tag of every violation.
func Struct(s interface{}) error {
	validate, err := New()
	if err != nil {
		return err
	}

	err = validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
