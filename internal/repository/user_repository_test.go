package repository

import (
	"context"
	"testing"

	"nurvo_backend/internal/model"
	"nurvo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "coco1234", intPtr(3))

	user, err := repo.FindByID(ctx, "coco1234")
	require.NoError(t, err)
	assert.Equal(t, "coco1234", user.ID)
	assert.Equal(t, 3, *user.Obj)

	_, err = repo.FindByID(ctx, "ghost")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestUserRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NotNil(t, users)

	createTestUser(t, db, "b", nil)
	createTestUser(t, db, "a", nil)

	users, err = repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].ID)
	assert.Equal(t, "b", users[1].ID)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{ID: "dup", Name: "one", Password: "x"}))

	err := repo.Create(ctx, &model.User{ID: "dup", Name: "two", Password: "y"})
	assert.ErrorIs(t, err, util.ErrConstraintViolation)
}

func TestUserRepository_UpdateProgress(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "u1", intPtr(2))
	date := model.NewDate(2024, 5, 14)

	t.Run("obj only", func(t *testing.T) {
		user, err := repo.UpdateProgress(ctx, "u1", model.ProgressUpdate{Obj: intPtr(5)})
		require.NoError(t, err)
		assert.Equal(t, 5, *user.Obj)
		assert.Nil(t, user.ObjDate)
	})

	t.Run("date only keeps obj", func(t *testing.T) {
		user, err := repo.UpdateProgress(ctx, "u1", model.ProgressUpdate{ObjDate: &date})
		require.NoError(t, err)
		assert.Equal(t, 5, *user.Obj)
		require.NotNil(t, user.ObjDate)
		assert.Equal(t, "2024-05-14", user.ObjDate.String())
	})

	t.Run("both", func(t *testing.T) {
		next := model.NewDate(2024, 5, 15)
		user, err := repo.UpdateProgress(ctx, "u1", model.ProgressUpdate{Obj: intPtr(1), ObjDate: &next})
		require.NoError(t, err)
		assert.Equal(t, 1, *user.Obj)
		assert.Equal(t, "2024-05-15", user.ObjDate.String())
	})

	t.Run("nothing to update", func(t *testing.T) {
		_, err := repo.UpdateProgress(ctx, "u1", model.ProgressUpdate{})
		assert.ErrorIs(t, err, util.ErrInvalidInput)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := repo.UpdateProgress(ctx, "ghost", model.ProgressUpdate{Obj: intPtr(1)})
		assert.ErrorIs(t, err, util.ErrNotFound)
	})
}
