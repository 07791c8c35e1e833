package surrealdb

import (
	"context"
	"testing"
	"time"

	"github.com/bobmcallan/insurancebuddy/internal/interfaces"
	"github.com/bobmcallan/insurancebuddy/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	db := testDB(t)
	store := NewInternalStore(db, testLogger())
	ctx := context.Background()

	user := &models.InternalUser{
		UserID:       "admin",
		Email:        "admin@example.com",
		PasswordHash: "hash123",
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now().Truncate(time.Second),
	}
	require.NoError(t, store.SaveUser(ctx, user))

	got, err := store.GetUser(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.UserID)
	assert.Equal(t, "admin@example.com", got.Email)
	assert.Equal(t, "hash123", got.PasswordHash)
	assert.True(t, got.IsAdmin())
}

func TestGetUserNotFound(t *testing.T) {
	db := testDB(t)
	store := NewInternalStore(db, testLogger())

	_, err := store.GetUser(context.Background(), "nonexistent")
	require.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestSaveUser_Overwrites(t *testing.T) {
	db := testDB(t)
	store := NewInternalStore(db, testLogger())
	ctx := context.Background()

	require.NoError(t, store.SaveUser(ctx, &models.InternalUser{UserID: "editor", Role: models.RoleUser}))
	require.NoError(t, store.SaveUser(ctx, &models.InternalUser{UserID: "editor", Role: models.RoleAdmin}))

	got, err := store.GetUser(ctx, "editor")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)
}

func TestListAndDeleteUsers(t *testing.T) {
	db := testDB(t)
	store := NewInternalStore(db, testLogger())
	ctx := context.Background()

	for _, id := range []string{"carol", "alice", "bob"} {
		require.NoError(t, store.SaveUser(ctx, &models.InternalUser{UserID: id, Role: models.RoleUser}))
	}

	ids, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, ids)

	require.NoError(t, store.DeleteUser(ctx, "bob"))
	require.NoError(t, store.DeleteUser(ctx, "bob"), "deleting a missing user is not an error")

	ids, err = store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "carol"}, ids)
}
