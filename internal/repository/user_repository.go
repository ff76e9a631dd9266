package repository

import (
	"context"
	"fmt"

	"nurvo_backend/internal/model"
	"nurvo_backend/internal/util"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return classify("user.Create", r.DB.WithContext(ctx).Create(user).Error)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).Take(&user).Error; err != nil {
		return nil, classify("user.FindByID", err)
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, classify("user.FindAll", err)
	}
	return users, nil
}

// UpdateProgress writes the non-nil fields of upd and returns the row as it
// is after the update. Both statements run in one transaction.
func (r *UserRepository) UpdateProgress(ctx context.Context, id string, upd model.ProgressUpdate) (*model.User, error) {
	if upd.Empty() {
		return nil, fmt.Errorf("user.UpdateProgress: %w: nothing to update", util.ErrInvalidInput)
	}

	updates := make(map[string]interface{}, 2)
	if upd.Obj != nil {
		updates["obj"] = *upd.Obj
	}
	if upd.ObjDate != nil {
		updates["obj_date"] = *upd.ObjDate
	}

	var user model.User
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Take(&user).Error
	})
	if err != nil {
		return nil, classify("user.UpdateProgress", err)
	}
	return &user, nil
}
