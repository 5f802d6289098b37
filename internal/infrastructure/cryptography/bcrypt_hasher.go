package cryptography

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/auth-admin/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher struct that implements the PasswordHasher interface
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a PasswordHasher using the given bcrypt cost.
// A cost of 0 selects bcrypt.DefaultCost.
func NewBcryptHasher(cost int) (users.PasswordHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &bcryptHasher{cost: cost}, nil
}

// Hash returns the bcrypt hash of password
func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", users.ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare checks password against a stored bcrypt hash
func (h *bcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrHashTooShort) {
		return users.ErrInvalidPassword
	}
	return fmt.Errorf("failed to compare password: %w", err)
}
