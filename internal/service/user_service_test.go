package service

import (
	"context"
	"testing"

	"nurvo_backend/internal/model"
	"nurvo_backend/internal/repository"
	"nurvo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateProgress(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	require.NoError(t, db.Create(&model.User{ID: "u1", Name: "u1", Password: "x"}).Error)

	obj := 3
	date := "2024-05-14"
	user, err := svc.UpdateProgress(ctx, "u1", ProgressRequest{Obj: &obj, ObjDate: &date})
	require.NoError(t, err)
	assert.Equal(t, 3, *user.Obj)
	assert.Equal(t, "2024-05-14", user.ObjDate.String())

	negative := -1
	badDate := "14/05/2024"
	tests := []struct {
		name string
		req  ProgressRequest
	}{
		{"empty", ProgressRequest{}},
		{"negative obj", ProgressRequest{Obj: &negative}},
		{"bad date", ProgressRequest{ObjDate: &badDate}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateProgress(ctx, "u1", tt.req)
			assert.ErrorIs(t, err, util.ErrInvalidInput)
		})
	}

	_, err = svc.UpdateProgress(ctx, "ghost", ProgressRequest{Obj: &obj})
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestUserService_GetAndList(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	require.NoError(t, db.Create(&model.User{ID: "b", Name: "b", Password: "x"}).Error)
	require.NoError(t, db.Create(&model.User{ID: "a", Name: "a", Password: "x"}).Error)

	users, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].ID)

	_, err = svc.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, util.ErrNotFound)
}
