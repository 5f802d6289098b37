//go:build unit
// +build unit

package users

import (
	"strings"
	"testing"

	"github.com/MGTheTrain/auth-admin/internal/domain/paging"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestUser_Validate(t *testing.T) {
	hash := "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z5dU8X8Fh3i6yZ1F6Vx1h2yK"

	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{"valid", User{Username: "harry", Password: hash, HouseID: intPtr(1)}, false},
		{"missing username", User{Password: hash}, true},
		{"username with whitespace", User{Username: "harry potter", Password: hash}, true},
		{"username too long", User{Username: strings.Repeat("h", 81), Password: hash}, true},
		{"missing password", User{Username: "harry"}, true},
		{"address too long", User{Username: "harry", Password: hash, Address: strings.Repeat("a", 101)}, true},
		{"invalid house", User{Username: "harry", Password: hash, HouseID: intPtr(0)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_Label(t *testing.T) {
	user := &User{Username: "hermione"}
	assert.Equal(t, "hermione", user.String())
	assert.True(t, user.IsActive())
}

func TestUserQuery_Validate(t *testing.T) {
	query := NewUserQuery()
	query.SortBy = "username"
	assert.NoError(t, query.Validate())

	query.Query = paging.Query{SortBy: "password"}
	assert.Error(t, query.Validate())
}
