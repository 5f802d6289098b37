//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/MGTheTrain/auth-admin/internal/domain/courses"
	"github.com/MGTheTrain/auth-admin/internal/domain/enrollments"
	"github.com/MGTheTrain/auth-admin/internal/domain/houses"
	"github.com/MGTheTrain/auth-admin/internal/domain/sessions"
	"github.com/MGTheTrain/auth-admin/internal/domain/users"
	"github.com/MGTheTrain/auth-admin/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/auth-admin/internal/infrastructure/persistence"
	"github.com/MGTheTrain/auth-admin/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Test constants
const (
	TestSecretKey     = "0123456789abcdef0123456789abcdef"
	TestSessionMaxAge = time.Hour
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuthService       users.AuthService
	UserService       users.UserService
	SessionService    sessions.SessionService
	HouseService      houses.HouseService
	CourseService     courses.CourseService
	EnrollmentService enrollments.EnrollmentService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	hasher, err := cryptography.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	signer, err := cryptography.NewJWTSigner(TestSecretKey, "auth-admin")
	require.NoError(t, err)

	authService, err := NewAuthService(dbContext.UserRepo, hasher, logger)
	require.NoError(t, err)
	userService, err := NewUserService(dbContext.UserRepo, logger)
	require.NoError(t, err)
	sessionService, err := NewSessionService(dbContext.SessionRepo, signer, TestSessionMaxAge, logger)
	require.NoError(t, err)
	houseService, err := NewHouseService(dbContext.HouseRepo, logger)
	require.NoError(t, err)
	courseService, err := NewCourseService(dbContext.CourseRepo, logger)
	require.NoError(t, err)
	enrollmentService, err := NewEnrollmentService(dbContext.EnrollmentRepo, logger)
	require.NoError(t, err)

	return &TestServices{
		AuthService:       authService,
		UserService:       userService,
		SessionService:    sessionService,
		HouseService:      houseService,
		CourseService:     courseService,
		EnrollmentService: enrollmentService,
		DBContext:         dbContext,
	}
}
