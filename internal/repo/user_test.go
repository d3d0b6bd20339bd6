package repo

import (
	"context"
	"errors"
	"testing"

	"VitalLog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepo_CreateAndGetByEmail(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	created, err := r.CreateUser(ctx, &model.User{
		ID:       "u-1",
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", created.ID)

	got, err := r.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "u-1", got.ID)
}

func TestUserRepo_GetByEmailNotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)

	_, err := r.GetUserByEmail(context.Background(), "ghost@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserRepo_DuplicateEmailRejected(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	_, err := r.CreateUser(ctx, &model.User{ID: "u-1", Name: "Alice", Email: "dup@example.com", Password: "h"})
	require.NoError(t, err)

	_, err = r.CreateUser(ctx, &model.User{ID: "u-2", Name: "Bob", Email: "dup@example.com", Password: "h"})
	assert.Error(t, err, "unique index on email must reject the duplicate")
}
