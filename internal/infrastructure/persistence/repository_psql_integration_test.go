//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/auth-admin/internal/domain/enrollments"
	"github.com/MGTheTrain/auth-admin/internal/domain/houses"
	"github.com/MGTheTrain/auth-admin/internal/domain/sessions"
	"github.com/MGTheTrain/auth-admin/internal/domain/users"
	"github.com/MGTheTrain/auth-admin/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPostgresRepository_CreateAndDuplicate(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	house := CreateTestHouse(t, ctx, "Gryffindor")
	user := CreateTestUser(t, ctx, "harry", &house.ID)

	fetched, err := ctx.UserRepo.GetByUsername(context.Background(), "harry")
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)

	err = ctx.UserRepo.Create(context.Background(), &users.User{Username: "harry", Password: "secret"})
	assert.ErrorIs(t, err, users.ErrDuplicateUsername)
}

func TestHousePostgresRepository_DeleteDetachesMembers(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	house := CreateTestHouse(t, ctx, "Slytherin")
	user := CreateTestUser(t, ctx, "draco", &house.ID)

	require.NoError(t, ctx.HouseRepo.DeleteByID(context.Background(), house.ID))

	fetched, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.HouseID)

	_, err = ctx.HouseRepo.GetByID(context.Background(), house.ID)
	assert.ErrorIs(t, err, houses.ErrHouseNotFound)
}

func TestEnrollmentPostgresRepository_Constraints(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	user := CreateTestUser(t, ctx, "hermione", nil)
	course := CreateTestCourse(t, ctx, "Arithmancy")

	require.NoError(t, ctx.EnrollmentRepo.Create(context.Background(), &enrollments.Enrollment{StudentID: user.ID, CourseID: course.ID, Grade: "O"}))

	err := ctx.EnrollmentRepo.Create(context.Background(), &enrollments.Enrollment{StudentID: user.ID, CourseID: course.ID})
	assert.ErrorIs(t, err, enrollments.ErrAlreadyEnrolled)

	err = ctx.EnrollmentRepo.Create(context.Background(), &enrollments.Enrollment{StudentID: user.ID, CourseID: course.ID + 100})
	assert.ErrorIs(t, err, enrollments.ErrUnknownReference)

	require.NoError(t, ctx.CourseRepo.DeleteByID(context.Background(), course.ID))
	list, err := ctx.EnrollmentRepo.List(context.Background(), &enrollments.EnrollmentQuery{StudentID: user.ID})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSessionPostgresRepository_DeleteExpired(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	session := NewTestSession(time.Minute)
	require.NoError(t, ctx.SessionRepo.Create(context.Background(), session))

	removed, err := ctx.SessionRepo.DeleteExpired(context.Background(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = ctx.SessionRepo.GetByID(context.Background(), session.ID)
	assert.ErrorIs(t, err, sessions.ErrSessionNotFound)
}
