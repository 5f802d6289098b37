package web

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/auth-admin/internal/api/web/view"
	"github.com/MGTheTrain/auth-admin/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Field error messages shown next to the inputs
const (
	MessageRequired          = "This field is required."
	MessageInvalidUser       = "Invalid user"
	MessageInvalidPassword   = "Invalid password"
	MessageDuplicateUsername = "Duplicate username"
	MessagePasswordTooLong   = "Password cannot be longer than 72 bytes."
)

// LoginForm is posted by the login page
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// View renders the form; the password is never echoed back.
func (f *LoginForm) View() *view.Form {
	return &view.Form{
		Action: "/login/",
		Submit: "Log in",
		Fields: []*view.Field{
			{Name: "username", Label: "Username", Type: view.InputText, Value: f.Username, Required: true},
			{Name: "password", Label: "Password", Type: view.InputPassword, Required: true},
		},
	}
}

// RegistrationForm is posted by the registration page
type RegistrationForm struct {
	Username string `form:"username" validate:"required,username,max=80"`
	Password string `form:"password" validate:"required,bcryptpassword"`
}

// View renders the form; the password is never echoed back.
func (f *RegistrationForm) View() *view.Form {
	return &view.Form{
		Action: "/register/",
		Submit: "Register",
		Fields: []*view.Field{
			{Name: "username", Label: "Username", Type: view.InputText, Value: f.Username, Required: true},
			{Name: "password", Label: "Password", Type: view.InputPassword, Required: true},
		},
	}
}

// validateForm runs the struct tags of form and attaches failures to the fields of vf.
// It reports whether the form is valid.
func validateForm(form any, vf *view.Form) (bool, error) {
	validate, err := validators.New()
	if err != nil {
		return false, err
	}

	err = validate.Struct(form)
	if err == nil {
		return true, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false, err
	}
	for _, fieldErr := range validationErrors {
		vf.AddError(strings.ToLower(fieldErr.Field()), fieldMessage(fieldErr))
	}
	return false, nil
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return MessageRequired
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fieldErr.Param())
	case "bcryptpassword":
		return MessagePasswordTooLong
	case "username":
		return "Username cannot contain spaces."
	default:
		return "Invalid value."
	}
}
