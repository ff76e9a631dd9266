package repository

import (
	"context"

	"nurvo_backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

func (r *AttendanceRepository) Create(ctx context.Context, attendance *model.Attendance) error {
	return classify("attendance.Create", r.DB.WithContext(ctx).Create(attendance).Error)
}

func (r *AttendanceRepository) FindByUser(ctx context.Context, userID string) ([]model.Attendance, error) {
	rows := make([]model.Attendance, 0)
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, classify("attendance.FindByUser", err)
	}
	return rows, nil
}
