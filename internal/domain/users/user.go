package users

import (
	"github.com/MGTheTrain/auth-admin/internal/domain/paging"
	"github.com/MGTheTrain/auth-admin/internal/pkg/validators"
)

// User entity. Password holds a bcrypt hash, never the plain text.
type User struct {
	ID        int
	Username  string `validate:"required,username,max=80"`
	Password  string `validate:"required,max=64"`
	Name      string `validate:"max=80"`
	Address   string `validate:"max=100"`
	Magical   bool
	HouseID   *int `validate:"omitempty,min=1"`
	Quidditch bool
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.Struct(u)
}

// IsActive reports whether the user may log in. Accounts cannot be disabled.
func (u *User) IsActive() bool {
	return true
}

// String returns the label used for the user in listings and the admin.
func (u *User) String() string {
	return u.Username
}

// SortableColumns lists the columns a UserQuery may sort by.
var SortableColumns = []string{"id", "username", "name"}

// UserQuery represents filters and paging for listing users
type UserQuery struct {
	paging.Query
	Username string `validate:"omitempty,max=80"`
	HouseID  *int   `validate:"omitempty,min=1"`
}

// NewUserQuery creates an empty UserQuery
func NewUserQuery() *UserQuery {
	return &UserQuery{}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return err
	}
	return q.Query.Validate(SortableColumns...)
}
