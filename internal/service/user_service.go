package service

import (
	"context"
	"fmt"

	"nurvo_backend/internal/model"
	"nurvo_backend/internal/repository"
	"nurvo_backend/internal/util"
	"nurvo_backend/pkg/tracing"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{
		UserRepo: userRepo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id string) (user *model.User, err error) {
	ctx, span := tracing.StartSpan(ctx, "UserService.GetUser", id)
	defer func() { tracing.End(span, err) }()

	return s.UserRepo.FindByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) (users []model.User, err error) {
	ctx, span := tracing.StartSpan(ctx, "UserService.ListUsers", "")
	defer func() { tracing.End(span, err) }()

	return s.UserRepo.FindAll(ctx)
}

// ProgressRequest is the body of a progress update. ObjDate is YYYY-MM-DD.
type ProgressRequest struct {
	Obj     *int    `json:"obj"`
	ObjDate *string `json:"obj_date"`
}

// UpdateProgress changes the daily lesson count and/or its date. At least one
// of the two must be set.
func (s *UserService) UpdateProgress(ctx context.Context, id string, req ProgressRequest) (user *model.User, err error) {
	ctx, span := tracing.StartSpan(ctx, "UserService.UpdateProgress", id)
	defer func() { tracing.End(span, err) }()

	var upd model.ProgressUpdate
	if req.Obj != nil {
		if *req.Obj < 0 {
			return nil, fmt.Errorf("%w: obj must not be negative", util.ErrInvalidInput)
		}
		upd.Obj = req.Obj
	}
	if req.ObjDate != nil {
		d, err := model.ParseDate(*req.ObjDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrInvalidInput, err)
		}
		upd.ObjDate = &d
	}
	if upd.Empty() {
		return nil, fmt.Errorf("%w: obj or obj_date is required", util.ErrInvalidInput)
	}

	return s.UserRepo.UpdateProgress(ctx, id, upd)
}
