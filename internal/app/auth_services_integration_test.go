//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/auth-admin/internal/domain/houses"
	"github.com/MGTheTrain/auth-admin/internal/domain/users"
	"github.com/MGTheTrain/auth-admin/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, err := services.AuthService.Register(ctx, "harry", "alohomora")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "alohomora", user.Password)

	stored, err := services.UserService.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Password, stored.Password)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.AuthService.Register(ctx, "harry", "alohomora")
	require.NoError(t, err)

	_, err = services.AuthService.Register(ctx, "harry", "other")
	assert.ErrorIs(t, err, users.ErrDuplicateUsername)
}

func TestAuthService_CreateUser(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	house, err := services.HouseService.Create(ctx, "Gryffindor")
	require.NoError(t, err)

	user := &users.User{Username: "harry", Name: "Harry Potter", HouseID: &house.ID, Quidditch: true}
	require.NoError(t, services.AuthService.CreateUser(ctx, user, "alohomora"))
	assert.NotZero(t, user.ID)

	stored, err := services.UserService.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harry Potter", stored.Name)
	require.NotNil(t, stored.HouseID)
	assert.Equal(t, house.ID, *stored.HouseID)
	assert.True(t, stored.Quidditch)
	_, err = services.AuthService.Authenticate(ctx, "harry", "alohomora")
	assert.NoError(t, err)
}

func TestAuthService_CreateUserUnknownHouseStoresNothing(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	houseID := 999
	err := services.AuthService.CreateUser(ctx, &users.User{Username: "ron", HouseID: &houseID}, "scabbers")
	assert.ErrorIs(t, err, houses.ErrHouseNotFound)

	_, err = services.AuthService.Register(ctx, "ron", "scabbers")
	assert.NoError(t, err)
}

func TestAuthService_Authenticate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	registered, err := services.AuthService.Register(ctx, "hermione", "wingardium")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid credentials", username: "hermione", password: "wingardium"},
		{name: "unknown user", username: "draco", password: "wingardium", wantErr: users.ErrInvalidUser},
		{name: "empty username", username: "", password: "wingardium", wantErr: users.ErrInvalidUser},
		{name: "wrong password", username: "hermione", password: "leviosa", wantErr: users.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := services.AuthService.Authenticate(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.ID, user.ID)
		})
	}
}

func TestAuthService_LoadUser(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	registered, err := services.AuthService.Register(ctx, "ron", "scabbers")
	require.NoError(t, err)

	user, err := services.AuthService.LoadUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "ron", user.Username)

	_, err = services.AuthService.LoadUser(ctx, registered.ID+1)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserService_ListAndDelete(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	harry, err := services.AuthService.Register(ctx, "harry", "alohomora")
	require.NoError(t, err)
	_, err = services.AuthService.Register(ctx, "ron", "scabbers")
	require.NoError(t, err)

	list, err := services.UserService.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, services.UserService.DeleteByID(ctx, harry.ID))

	list, err = services.UserService.List(ctx, users.NewUserQuery())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ron", list[0].Username)
}
