//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MGTheTrain/auth-admin/internal/domain/courses"
	"github.com/MGTheTrain/auth-admin/internal/domain/enrollments"
	"github.com/MGTheTrain/auth-admin/internal/domain/houses"
	"github.com/MGTheTrain/auth-admin/internal/domain/sessions"
	"github.com/MGTheTrain/auth-admin/internal/domain/users"
	"github.com/MGTheTrain/auth-admin/internal/pkg/config"
	"github.com/MGTheTrain/auth-admin/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB             *gorm.DB
	UserRepo       users.UserRepository
	HouseRepo      houses.HouseRepository
	CourseRepo     courses.CourseRepository
	EnrollmentRepo enrollments.EnrollmentRepository
	SessionRepo    sessions.SessionRepository
}

var (
	pgOnce      sync.Once
	pgContainer *postgres.PostgresContainer
	pgDSN       string
	pgErr       error
)

// postgresDSN starts one PostgreSQL container for the package and returns its admin DSN.
func postgresDSN(t *testing.T) string {
	t.Helper()

	pgOnce.Do(func() {
		ctx := context.Background()
		pgContainer, pgErr = postgres.Run(ctx,
			"postgres:alpine",
			postgres.WithDatabase("postgres"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		if pgErr != nil {
			return
		}
		pgDSN, pgErr = pgContainer.ConnectionString(ctx, "sslmode=disable")
	})
	require.NoError(t, pgErr, "Failed to start PostgreSQL container")

	return pgDSN
}

// terminatePostgres stops the shared container if a test started it.
func terminatePostgres() {
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()
	ctx := context.Background()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		adminDSN := postgresDSN(t)
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    adminDSN,
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(ctx, adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(ctx, settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, AutoMigrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err)
	houseRepo, err := NewGormHouseRepository(db, logger)
	require.NoError(t, err)
	courseRepo, err := NewGormCourseRepository(db, logger)
	require.NoError(t, err)
	enrollmentRepo, err := NewGormEnrollmentRepository(db, logger)
	require.NoError(t, err)
	sessionRepo, err := NewGormSessionRepository(db, logger)
	require.NoError(t, err)

	return &TestContext{
		DB:             db,
		UserRepo:       userRepo,
		HouseRepo:      houseRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		SessionRepo:    sessionRepo,
	}
}

// CreateTestUser stores a user with a placeholder password hash
func CreateTestUser(t *testing.T, ctx *TestContext, username string, houseID *int) *users.User {
	t.Helper()

	user := &users.User{
		Username: username,
		Password: "$2a$10$abcdefghijklmnopqrstuuFakeHashForTestsOnly0123456789abc",
		HouseID:  houseID,
	}
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))
	return user
}

// CreateTestHouse stores a house
func CreateTestHouse(t *testing.T, ctx *TestContext, name string) *houses.House {
	t.Helper()

	house := &houses.House{Name: name}
	require.NoError(t, ctx.HouseRepo.Create(context.Background(), house))
	return house
}

// CreateTestCourse stores a course
func CreateTestCourse(t *testing.T, ctx *TestContext, name string) *courses.Course {
	t.Helper()

	course := &courses.Course{Name: name}
	require.NoError(t, ctx.CourseRepo.Create(context.Background(), course))
	return course
}

// NewTestSession builds an anonymous session expiring after ttl
func NewTestSession(ttl time.Duration) *sessions.Session {
	now := time.Now().UTC().Truncate(time.Second)
	return &sessions.Session{
		ID:        uuid.NewString(),
		CSRFToken: strings.Repeat("ab", 32),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
