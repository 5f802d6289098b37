//go:build unit
// +build unit

package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateForm_Login(t *testing.T) {
	form := LoginForm{}
	vf := form.View()

	valid, err := validateForm(&form, vf)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Equal(t, []string{MessageRequired}, vf.Field("username").Errors)
	assert.Equal(t, []string{MessageRequired}, vf.Field("password").Errors)

	form = LoginForm{Username: "harry", Password: "alohomora"}
	vf = form.View()
	valid, err = validateForm(&form, vf)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Equal(t, "harry", vf.Field("username").Value)
	assert.Empty(t, vf.Field("password").Value)
}

func TestValidateForm_Registration(t *testing.T) {
	tests := []struct {
		name    string
		form    RegistrationForm
		field   string
		message string
	}{
		{"username with space", RegistrationForm{Username: "harry potter", Password: "x"}, "username", "Username cannot contain spaces."},
		{"username too long", RegistrationForm{Username: strings.Repeat("h", 81), Password: "x"}, "username", "Field cannot be longer than 80 characters."},
		{"password too long", RegistrationForm{Username: "harry", Password: strings.Repeat("p", 73)}, "password", MessagePasswordTooLong},
		{"multibyte password too long", RegistrationForm{Username: "harry", Password: strings.Repeat("€", 25)}, "password", MessagePasswordTooLong},
		{"missing password", RegistrationForm{Username: "harry"}, "password", MessageRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vf := tt.form.View()
			valid, err := validateForm(&tt.form, vf)
			require.NoError(t, err)
			assert.False(t, valid)
			assert.Contains(t, vf.Field(tt.field).Errors, tt.message)
		})
	}
}
