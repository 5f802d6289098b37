//go:build unit
// +build unit

package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string `validate:"required,username"`
	Grade    string `validate:"omitempty,grade"`
	Password string `validate:"omitempty,bcryptpassword"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{"valid", sample{Username: "harry", Grade: "O"}, ""},
		{"valid grade with modifier", sample{Username: "hermione", Grade: "A+"}, ""},
		{"empty grade", sample{Username: "ron"}, ""},
		{"username with space", sample{Username: "harry potter"}, "Tag: username"},
		{"missing username", sample{}, "Tag: required"},
		{"lower case grade", sample{Username: "neville", Grade: "e"}, "Tag: grade"},
		{"grade too long", sample{Username: "luna", Grade: "EE"}, "Tag: grade"},
		{"password at byte limit", sample{Username: "ginny", Password: strings.Repeat("p", 72)}, ""},
		{"multibyte password over byte limit", sample{Username: "ginny", Password: strings.Repeat("€", 25)}, "Tag: bcryptpassword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
