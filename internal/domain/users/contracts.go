package users

import "context"

// AuthService defines login, registration and the user loader used by sessions.
type AuthService interface {
	// Authenticate checks the credentials and returns the matching user.
	// It returns ErrInvalidUser or ErrInvalidPassword when they do not match.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// Register creates a user with a hashed password.
	// It returns ErrDuplicateUsername when the username is taken.
	Register(ctx context.Context, username, password string) (*User, error)

	// CreateUser stores user with the hash of password in a single write.
	// It returns ErrDuplicateUsername, or houses.ErrHouseNotFound for an unknown
	// house, and stores nothing on failure.
	CreateUser(ctx context.Context, user *User, password string) error

	// LoadUser returns the user stored under a session's user id.
	LoadUser(ctx context.Context, userID int) (*User, error)
}

// UserService defines read and delete operations over registered users.
type UserService interface {
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	DeleteByID(ctx context.Context, userID int) error
}

// UserRepository defines the interface for User-related persistence operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdateByID(ctx context.Context, user *User) error
	DeleteByID(ctx context.Context, userID int) error
}

// PasswordHasher hashes passwords and compares them against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns ErrInvalidPassword when password does not match hash.
	Compare(hash, password string) error
}
