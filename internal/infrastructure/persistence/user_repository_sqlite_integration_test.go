//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/auth-admin/internal/domain/paging"
	"github.com/MGTheTrain/auth-admin/internal/domain/houses"
	"github.com/MGTheTrain/auth-admin/internal/domain/users"
	"github.com/MGTheTrain/auth-admin/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx, "harry", nil)
	assert.NotZero(t, user.ID)

	fetched, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "harry", fetched.Username)
	assert.Nil(t, fetched.HouseID)
	assert.False(t, fetched.Magical)
}

func TestUserSqliteRepository_CreateDuplicateUsername(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	CreateTestUser(t, ctx, "harry", nil)

	err := ctx.UserRepo.Create(context.Background(), &users.User{Username: "harry", Password: "secret"})
	assert.ErrorIs(t, err, users.ErrDuplicateUsername)
}

func TestUserSqliteRepository_CreateInvalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.UserRepo.Create(context.Background(), &users.User{Username: "has space", Password: "secret"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation error")
}

func TestUserSqliteRepository_CreateUnknownHouse(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	houseID := 999
	err := ctx.UserRepo.Create(context.Background(), &users.User{Username: "ron", Password: "secret", HouseID: &houseID})
	assert.ErrorIs(t, err, houses.ErrHouseNotFound)

	_, err = ctx.UserRepo.GetByUsername(context.Background(), "ron")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserSqliteRepository_GetByUsername(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	created := CreateTestUser(t, ctx, "hermione", nil)

	fetched, err := ctx.UserRepo.GetByUsername(context.Background(), "hermione")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	_, err = ctx.UserRepo.GetByUsername(context.Background(), "draco")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	house := CreateTestHouse(t, ctx, "Gryffindor")
	CreateTestUser(t, ctx, "harry", &house.ID)
	CreateTestUser(t, ctx, "ron", &house.ID)
	CreateTestUser(t, ctx, "draco", nil)

	all, err := ctx.UserRepo.List(context.Background(), users.NewUserQuery())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	members, err := ctx.UserRepo.List(context.Background(), &users.UserQuery{HouseID: &house.ID})
	require.NoError(t, err)
	assert.Len(t, members, 2)

	matched, err := ctx.UserRepo.List(context.Background(), &users.UserQuery{Username: "arr"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "harry", matched[0].Username)

	sorted, err := ctx.UserRepo.List(context.Background(), &users.UserQuery{
		Query: paging.Query{SortBy: "username", SortOrder: paging.SortDesc, Limit: 2},
	})
	require.NoError(t, err)
	require.Len(t, sorted, 2)
	assert.Equal(t, "ron", sorted[0].Username)
	assert.Equal(t, "harry", sorted[1].Username)
}

func TestUserSqliteRepository_ListMatchesWildcardsLiterally(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	CreateTestUser(t, ctx, "fred_weasley", nil)
	CreateTestUser(t, ctx, "fredxweasley", nil)

	matched, err := ctx.UserRepo.List(context.Background(), &users.UserQuery{Username: "d_w"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "fred_weasley", matched[0].Username)

	matched, err = ctx.UserRepo.List(context.Background(), &users.UserQuery{Username: "%"})
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestUserSqliteRepository_ListRejectsUnknownSortColumn(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UserRepo.List(context.Background(), &users.UserQuery{
		Query: paging.Query{SortBy: "password; DROP TABLE users"},
	})
	assert.Error(t, err)
}

func TestUserSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	house := CreateTestHouse(t, ctx, "Ravenclaw")
	user := CreateTestUser(t, ctx, "luna", nil)

	user.Name = "Luna Lovegood"
	user.Magical = true
	user.HouseID = &house.ID
	require.NoError(t, ctx.UserRepo.UpdateByID(context.Background(), user))

	fetched, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luna Lovegood", fetched.Name)
	assert.True(t, fetched.Magical)
	require.NotNil(t, fetched.HouseID)
	assert.Equal(t, house.ID, *fetched.HouseID)
}

func TestUserSqliteRepository_UpdateUnknownHouse(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx, "neville", nil)
	houseID := 999
	user.HouseID = &houseID
	assert.ErrorIs(t, ctx.UserRepo.UpdateByID(context.Background(), user), houses.ErrHouseNotFound)
}

func TestUserSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx, "neville", nil)

	require.NoError(t, ctx.UserRepo.DeleteByID(context.Background(), user.ID))

	_, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, users.ErrUserNotFound)

	err = ctx.UserRepo.DeleteByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}
