package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogem/ipgate/database"
	"github.com/blogem/ipgate/models"
	"github.com/blogem/ipgate/repositories"
)

func setupRepos(t *testing.T) *repositories.Repositories {
	db, err := database.InitializeDatabase(filepath.Join(t.TempDir(), "test.db"), discardLogger())
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return repositories.NewRepositories(db)
}

func newTestUserService(t *testing.T, maxAdmins int) UserService {
	s := NewUserService(setupRepos(t).Users, "admin", maxAdmins)
	s.(*userService).bcryptCost = bcrypt.MinCost
	return s
}

func TestUserService_EnsureMainAdmin(t *testing.T) {
	ctx := context.Background()
	s := newTestUserService(t, 3)

	admin, created, err := s.EnsureMainAdmin(ctx, "password")
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, s.IsMainAdmin(admin))

	again, created, err := s.EnsureMainAdmin(ctx, "other")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, admin.ID, again.ID)

	// The original password is kept
	_, err = s.Authenticate(ctx, "admin", "password", models.RoleAdmin)
	assert.NoError(t, err)
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	s := newTestUserService(t, 3)

	_, err := s.Create(ctx, &models.UserForm{Username: "bob", Password: "secret1"})
	require.NoError(t, err)

	user, err := s.Authenticate(ctx, "bob", "secret1", models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)

	user, err = s.Authenticate(ctx, "bob", "secret1", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)

	_, err = s.Authenticate(ctx, "bob", "secret1", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidCredentials, "role mismatch")

	_, err = s.Authenticate(ctx, "bob", "wrong", models.RoleUser)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate(ctx, "nobody", "secret1", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_AdminLimit(t *testing.T) {
	ctx := context.Background()
	s := newTestUserService(t, 2)

	_, _, err := s.EnsureMainAdmin(ctx, "password")
	require.NoError(t, err)

	_, err = s.Create(ctx, &models.UserForm{Username: "second", Password: "secret1", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = s.Create(ctx, &models.UserForm{Username: "third", Password: "secret1", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, ErrAdminLimit)

	// Regular users are not capped
	_, err = s.Create(ctx, &models.UserForm{Username: "viewer", Password: "secret1"})
	assert.NoError(t, err)
}

func TestUserService_CreateValidationAndDuplicates(t *testing.T) {
	ctx := context.Background()
	s := newTestUserService(t, 3)

	_, err := s.Create(ctx, &models.UserForm{Username: "x", Password: "1"})
	var ve models.ValidationErrors
	assert.True(t, errors.As(err, &ve))

	_, err = s.Create(ctx, &models.UserForm{Username: "carol", Password: "secret1"})
	require.NoError(t, err)
	_, err = s.Create(ctx, &models.UserForm{Username: "carol", Password: "secret2"})
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)
}

func TestUserService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestUserService(t, 3)

	admin, _, err := s.EnsureMainAdmin(ctx, "password")
	require.NoError(t, err)
	user, err := s.Create(ctx, &models.UserForm{Username: "dave", Password: "secret1"})
	require.NoError(t, err)

	name := "david"
	password := "newsecret"
	updated, err := s.Update(ctx, user.ID, &models.UserUpdateForm{Username: &name, Password: &password})
	require.NoError(t, err)
	assert.Equal(t, "david", updated.Username)

	_, err = s.Authenticate(ctx, "david", "newsecret", models.RoleUser)
	assert.NoError(t, err)

	_, err = s.Update(ctx, 999, &models.UserUpdateForm{Username: &name})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	var ve models.ValidationErrors
	err = s.Delete(ctx, admin.ID, admin.ID)
	assert.True(t, errors.As(err, &ve), "main admin cannot delete itself")

	require.NoError(t, s.Delete(ctx, admin.ID, user.ID))
	assert.ErrorIs(t, s.Delete(ctx, admin.ID, user.ID), repositories.ErrNotFound)
}

func TestUserService_MainAdminCannotBeRenamed(t *testing.T) {
	ctx := context.Background()
	s := newTestUserService(t, 1)

	admin, _, err := s.EnsureMainAdmin(ctx, "password")
	require.NoError(t, err)

	name := "boss"
	_, err = s.Update(ctx, admin.ID, &models.UserUpdateForm{Username: &name})
	var ve models.ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "username", ve[0].Field)

	// Same name and password changes stay allowed
	same := "admin"
	password := "changed1"
	_, err = s.Update(ctx, admin.ID, &models.UserUpdateForm{Username: &same, Password: &password})
	require.NoError(t, err)

	// A restart finds the existing main admin instead of seeding a second one
	again, created, err := s.EnsureMainAdmin(ctx, "password")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, admin.ID, again.ID)

	users, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
