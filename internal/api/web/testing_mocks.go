//go:build unit
// +build unit

package web

import (
	"context"

	"github.com/MGTheTrain/auth-admin/internal/domain/enrollments"
	"github.com/MGTheTrain/auth-admin/internal/domain/houses"
	"github.com/MGTheTrain/auth-admin/internal/domain/paging"
	"github.com/MGTheTrain/auth-admin/internal/domain/sessions"
	"github.com/MGTheTrain/auth-admin/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, username, password string) (*users.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, username, password string) (*users.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) CreateUser(ctx context.Context, user *users.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockAuthService) LoadUser(ctx context.Context, userID int) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Start(ctx context.Context) (*sessions.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Session), args.Error(1)
}

func (m *MockSessionService) Resolve(ctx context.Context, token string) (*sessions.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Session), args.Error(1)
}

func (m *MockSessionService) Login(ctx context.Context, current *sessions.Session, userID int) (*sessions.Session, error) {
	args := m.Called(ctx, current, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Session), args.Error(1)
}

func (m *MockSessionService) Logout(ctx context.Context, current *sessions.Session) (*sessions.Session, error) {
	args := m.Called(ctx, current)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Session), args.Error(1)
}

func (m *MockSessionService) Token(session *sessions.Session) (string, error) {
	args := m.Called(session)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockHouseService is a mock implementation of HouseService
type MockHouseService struct {
	mock.Mock
}

func (m *MockHouseService) Create(ctx context.Context, name string) (*houses.House, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*houses.House), args.Error(1)
}

func (m *MockHouseService) List(ctx context.Context, query *paging.Query) ([]*houses.House, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*houses.House), args.Error(1)
}

func (m *MockHouseService) GetByID(ctx context.Context, houseID int) (*houses.House, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*houses.House), args.Error(1)
}

func (m *MockHouseService) CountMembers(ctx context.Context, houseID int) (int64, error) {
	args := m.Called(ctx, houseID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHouseService) DeleteByID(ctx context.Context, houseID int) error {
	args := m.Called(ctx, houseID)
	return args.Error(0)
}

// MockEnrollmentService is a mock implementation of EnrollmentService
type MockEnrollmentService struct {
	mock.Mock
}

func (m *MockEnrollmentService) Enroll(ctx context.Context, studentID, courseID int, grade string) (*enrollments.Enrollment, error) {
	args := m.Called(ctx, studentID, courseID, grade)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enrollments.Enrollment), args.Error(1)
}

func (m *MockEnrollmentService) Transcript(ctx context.Context, studentID int) ([]*enrollments.Enrollment, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*enrollments.Enrollment), args.Error(1)
}

func (m *MockEnrollmentService) List(ctx context.Context, query *enrollments.EnrollmentQuery) ([]*enrollments.Enrollment, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*enrollments.Enrollment), args.Error(1)
}

func (m *MockEnrollmentService) Withdraw(ctx context.Context, studentID, courseID int) error {
	args := m.Called(ctx, studentID, courseID)
	return args.Error(0)
}
