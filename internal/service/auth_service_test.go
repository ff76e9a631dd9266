package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"nurvo_backend/internal/config"
	"nurvo_backend/internal/model"
	"nurvo_backend/internal/repository"
	"nurvo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour}}
	return NewAuthService(repository.NewUserRepository(setupTestDB(t)), cfg)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user := &model.User{ID: " nurse01 ", Password: "s3cret", Nickname: "Kim"}
	require.NoError(t, svc.Register(ctx, user))
	assert.Equal(t, "nurse01", user.ID)
	assert.Equal(t, "nurse01", user.Name)
	assert.NotEqual(t, "s3cret", user.Password)

	token, err := svc.Login(ctx, "nurse01", "s3cret")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "nurse01", claims.UserID)
	assert.Equal(t, "Kim", claims.Nickname)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &model.User{ID: "dup", Password: "a"}))
	err := svc.Register(ctx, &model.User{ID: "dup", Password: "b"})
	assert.ErrorIs(t, err, util.ErrUserIDTaken)
	assert.ErrorIs(t, err, util.ErrConstraintViolation)
}

func TestAuthService_RegisterRequiresCredentials(t *testing.T) {
	svc := newAuthService(t)

	err := svc.Register(context.Background(), &model.User{ID: "  ", Password: "x"})
	assert.ErrorIs(t, err, util.ErrInvalidInput)

	err = svc.Register(context.Background(), &model.User{ID: "someone"})
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, &model.User{ID: "nurse01", Password: "right"}))

	_, err := svc.Login(ctx, "nurse01", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "ghost", "right")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestAuthService_RegisterRejectsLongPassword(t *testing.T) {
	svc := newAuthService(t)

	err := svc.Register(context.Background(), &model.User{ID: "longpw", Password: strings.Repeat("a", 80)})
	assert.ErrorIs(t, err, util.ErrInvalidInput)

	_, err = svc.UserRepo.FindByID(context.Background(), "longpw")
	assert.ErrorIs(t, err, util.ErrNotFound)
}
