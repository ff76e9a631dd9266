package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nurvo_backend/internal/config"
	"nurvo_backend/internal/model"
	"nurvo_backend/internal/repository"
	"nurvo_backend/internal/util"
	"nurvo_backend/pkg/tracing"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Register stores a new account. The password is replaced by its bcrypt hash.
func (s *AuthService) Register(ctx context.Context, user *model.User) (err error) {
	ctx, span := tracing.StartSpan(ctx, "AuthService.Register", user.ID)
	defer func() { tracing.End(span, err) }()

	user.ID = strings.TrimSpace(user.ID)
	if user.ID == "" || user.Password == "" {
		return fmt.Errorf("%w: id and password are required", util.ErrInvalidInput)
	}
	if user.Name == "" {
		user.Name = user.ID
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fmt.Errorf("%w: password must be at most 72 bytes", util.ErrInvalidInput)
		}
		return err
	}
	user.Password = string(hashedPassword)

	if err := s.UserRepo.Create(ctx, user); err != nil {
		if errors.Is(err, util.ErrConstraintViolation) {
			return fmt.Errorf("%w: %w", util.ErrUserIDTaken, err)
		}
		return err
	}
	return nil
}

// Login checks the credentials and returns a signed token for the user.
func (s *AuthService) Login(ctx context.Context, id, password string) (token string, err error) {
	ctx, span := tracing.StartSpan(ctx, "AuthService.Login", id)
	defer func() { tracing.End(span, err) }()

	user, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return "", util.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}
