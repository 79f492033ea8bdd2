package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebarbosa/loja-virtual/internal/models"
)

func testUser(email string) *models.User {
	return &models.User{
		Name:         "Maria Silva",
		TaxID:        "123.456.789-00",
		Phone:        "(11) 98765-4321",
		Email:        email,
		BirthDate:    time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456",
	}
}

func TestUserInsertAndGetByID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.True(t, repo.EnsureTable())

	user := testUser("maria@example.com")
	id, err := repo.Insert(user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	stored, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, id, stored.ID)
	assert.Equal(t, user.Name, stored.Name)
	assert.Equal(t, user.TaxID, stored.TaxID)
	assert.Equal(t, user.Phone, stored.Phone)
	assert.Equal(t, user.Email, stored.Email)
	assert.True(t, user.BirthDate.Equal(stored.BirthDate))
	assert.Equal(t, models.RoleRegular, stored.Role)

	// GetByID never reads the hash column back.
	assert.Empty(t, stored.PasswordHash)
}

func TestUserGetByEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.True(t, repo.EnsureTable())

	user := testUser("login@example.com")
	_, err := repo.Insert(user)
	require.NoError(t, err)

	stored, err := repo.GetByEmail("login@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, user.PasswordHash, stored.PasswordHash)

	missing, err := repo.GetByEmail("ninguem@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserEmailIsUnique(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.True(t, repo.EnsureTable())

	_, err := repo.Insert(testUser("dupla@example.com"))
	require.NoError(t, err)

	_, err = repo.Insert(testUser("dupla@example.com"))
	assert.Error(t, err)
}

func TestUserUpdateProfileFields(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.True(t, repo.EnsureTable())

	user := testUser("perfil@example.com")
	id, err := repo.Insert(user)
	require.NoError(t, err)

	user.ID = id
	user.Name = "Maria Souza"
	user.Phone = "(21) 91234-5678"
	updated, err := repo.Update(user)
	require.NoError(t, err)
	assert.True(t, updated)

	stored, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", stored.Name)
	assert.Equal(t, "(21) 91234-5678", stored.Phone)
	// Role and password are not touched by a profile update.
	assert.Equal(t, models.RoleRegular, stored.Role)
}

func TestUserUpdateRole(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.True(t, repo.EnsureTable())

	id, err := repo.Insert(testUser("admin@example.com"))
	require.NoError(t, err)

	updated, err := repo.UpdateRole(id, models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, updated)

	stored, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.True(t, stored.IsAdmin())

	updated, err = repo.UpdateRole(id, models.RoleRegular)
	require.NoError(t, err)
	assert.True(t, updated)

	stored, err = repo.GetByID(id)
	require.NoError(t, err)
	assert.False(t, stored.IsAdmin())

	updated, err = repo.UpdateRole(999, models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestUserUpdatePassword(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.True(t, repo.EnsureTable())

	id, err := repo.Insert(testUser("senha@example.com"))
	require.NoError(t, err)

	updated, err := repo.UpdatePassword(id, "$2a$10$novohash")
	require.NoError(t, err)
	assert.True(t, updated)

	stored, err := repo.GetByEmail("senha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$novohash", stored.PasswordHash)
}

func TestUserDeleteNotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.True(t, repo.EnsureTable())

	deleted, err := repo.Delete(31)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserGetPageOrdersByName(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.True(t, repo.EnsureTable())

	for i, name := range []string{"Carla", "Ana", "Bruno"} {
		user := testUser(fmt.Sprintf("user%d@example.com", i))
		user.Name = name
		_, err := repo.Insert(user)
		require.NoError(t, err)
	}

	users, err := repo.GetPage(1, 10)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Ana", users[0].Name)
	assert.Equal(t, "Bruno", users[1].Name)
	assert.Equal(t, "Carla", users[2].Name)
	for _, user := range users {
		assert.Empty(t, user.PasswordHash)
	}
}
