package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/marketmanager-server/internal/model"
	"github.com/dtroode/marketmanager-server/internal/storage/memory"
)

func testUser(id, username, email string, role model.Role) model.User {
	return model.User{
		ID:        id,
		Username:  username,
		Email:     email,
		FullName:  username,
		Role:      role,
		IsActive:  true,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestUserRepository_SeedsMissingDocument(t *testing.T) {
	ctx := context.Background()
	storage := memory.New()
	calls := 0
	repo := NewUserRepository(storage, WithSeed(func() (model.User, error) {
		calls++
		return testUser("admin-001", "admin", "admin@marketmanager.com", model.RoleAdmin), nil
	}))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin-001", users[0].ID)

	_, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	raw, ok := storage.Raw(UsersObject)
	require.True(t, ok)
	var stored []map[string]any
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, "admin", stored[0]["username"])
	assert.Contains(t, stored[0], "passwordHash")
	assert.Contains(t, stored[0], "lastLogin")
}

func TestUserRepository_SeedError(t *testing.T) {
	repo := NewUserRepository(memory.New(), WithSeed(func() (model.User, error) {
		return model.User{}, errors.New("no entropy")
	}))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build default user")
}

func TestUserRepository_NoSeedEmpty(t *testing.T) {
	users, err := NewUserRepository(memory.New()).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(memory.New())

	require.NoError(t, repo.Create(ctx, testUser("1", "bob", "bob@x.com", model.RoleUser)))
	require.NoError(t, repo.Create(ctx, testUser("2", "ann", "ann@x.com", model.RoleUser)))

	require.ErrorIs(t, repo.Create(ctx, testUser("3", "bob", "other@x.com", model.RoleUser)), model.ErrUsernameTaken)
	require.ErrorIs(t, repo.Create(ctx, testUser("3", "carl", "bob@x.com", model.RoleUser)), model.ErrEmailTaken)

	got, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "ann", got.Username)

	_, err = repo.GetByID(ctx, "404")
	require.ErrorIs(t, err, model.ErrNotFound)

	got.FullName = "Ann A."
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Ann A.", got.FullName)

	got.Username = "bob"
	require.ErrorIs(t, repo.Update(ctx, got), model.ErrUsernameTaken)
	require.ErrorIs(t, repo.Update(ctx, testUser("404", "z", "z@x.com", model.RoleUser)), model.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "1"))
	require.ErrorIs(t, repo.Delete(ctx, "1"), model.ErrNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "2", users[0].ID)
}

func TestUserRepository_UsernameCheckedBeforeEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(memory.New())

	require.NoError(t, repo.Create(ctx, testUser("1", "first", "taken@x.com", model.RoleUser)))
	require.NoError(t, repo.Create(ctx, testUser("2", "taken", "second@x.com", model.RoleUser)))

	err := repo.Create(ctx, testUser("3", "taken", "taken@x.com", model.RoleUser))
	require.ErrorIs(t, err, model.ErrUsernameTaken)
}

func TestUserRepository_ReplaceAdmins(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(memory.New())

	require.NoError(t, repo.Create(ctx, testUser("a1", "root", "root@x.com", model.RoleAdmin)))
	require.NoError(t, repo.Create(ctx, testUser("u1", "bob", "bob@x.com", model.RoleUser)))
	require.NoError(t, repo.Create(ctx, testUser("a2", "boss", "boss@x.com", model.RoleAdmin)))

	require.NoError(t, repo.ReplaceAdmins(ctx, testUser("admin-001", "admin", "admin@marketmanager.com", model.RoleAdmin)))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin-001", users[0].ID)
	assert.Equal(t, "u1", users[1].ID)
}

func TestUserRepository_ReplaceAdminsRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(memory.New())

	require.NoError(t, repo.Create(ctx, testUser("u1", "admin", "clerk@shop.example", model.RoleUser)))
	require.NoError(t, repo.Create(ctx, testUser("u2", "clerk", "admin@marketmanager.com", model.RoleUser)))
	require.NoError(t, repo.Create(ctx, testUser("a1", "boss", "boss@shop.example", model.RoleAdmin)))

	err := repo.ReplaceAdmins(ctx, testUser("admin-001", "admin", "admin@marketmanager.com", model.RoleAdmin))
	require.ErrorIs(t, err, model.ErrUsernameTaken)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3, "a rejected reset keeps the existing admins")
}
