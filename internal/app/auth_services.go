package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/auth-admin/internal/domain/users"
	"github.com/MGTheTrain/auth-admin/internal/pkg/logger"
)

// authService implements the AuthService interface
type authService struct {
	userRepository users.UserRepository
	hasher         users.PasswordHasher
	logger         logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepository users.UserRepository, hasher users.PasswordHasher, logger logger.Logger) (users.AuthService, error) {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}, nil
}

// Authenticate looks the user up by username and checks the password against the stored hash.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*users.User, error) {
	if username == "" {
		return nil, users.ErrInvalidUser
	}

	user, err := s.userRepository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrInvalidUser
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		if errors.Is(err, users.ErrInvalidPassword) {
			s.logger.Warn("Failed login for user ", user.ID)
		}
		return nil, err
	}

	s.logger.Info("User ", user.ID, " authenticated")
	return user, nil
}

// Register stores a new user with a hashed password.
func (s *authService) Register(ctx context.Context, username, password string) (*users.User, error) {
	user := &users.User{Username: username}
	if err := s.CreateUser(ctx, user, password); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser hashes password into user and inserts it together with its profile.
func (s *authService) CreateUser(ctx context.Context, user *users.User, password string) error {
	if _, err := s.userRepository.GetByUsername(ctx, user.Username); err == nil {
		return users.ErrDuplicateUsername
	} else if !errors.Is(err, users.ErrUserNotFound) {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	user.Password = hash
	if err := s.userRepository.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Registered user ", user.ID)
	return nil
}

// LoadUser returns the user a session points at.
func (s *authService) LoadUser(ctx context.Context, userID int) (*users.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}

// userService implements the UserService interface
type userService struct {
	userRepository users.UserRepository
	logger         logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepository users.UserRepository, logger logger.Logger) (users.UserService, error) {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}, nil
}

// List returns users matching the query
func (s *userService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	if query == nil {
		query = users.NewUserQuery()
	}
	return s.userRepository.List(ctx, query)
}

// GetByID returns a user by id
func (s *userService) GetByID(ctx context.Context, userID int) (*users.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}

// DeleteByID deletes a user together with their enrollments and sessions
func (s *userService) DeleteByID(ctx context.Context, userID int) error {
	return s.userRepository.DeleteByID(ctx, userID)
}
