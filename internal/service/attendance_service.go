package service

import (
	"context"
	"time"

	"nurvo_backend/internal/model"
	"nurvo_backend/internal/repository"
	"nurvo_backend/internal/util"
	"nurvo_backend/pkg/tracing"
)

type AttendanceService struct {
	AttendanceRepo *repository.AttendanceRepository
	Loc            *time.Location
	Now            func() time.Time
}

func NewAttendanceService(attendanceRepo *repository.AttendanceRepository, loc *time.Location) *AttendanceService {
	return &AttendanceService{
		AttendanceRepo: attendanceRepo,
		Loc:            loc,
		Now:            time.Now,
	}
}

// Record logs that the user showed up today.
func (s *AttendanceService) Record(ctx context.Context, userID string) (row *model.Attendance, err error) {
	ctx, span := tracing.StartSpan(ctx, "AttendanceService.Record", userID)
	defer func() { tracing.End(span, err) }()

	today := util.Today(s.Now(), s.Loc)
	row = &model.Attendance{
		UserID: userID,
		Date:   today,
		Day:    util.DayName(today),
	}
	if err := s.AttendanceRepo.Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *AttendanceService) List(ctx context.Context, userID string) (rows []model.Attendance, err error) {
	ctx, span := tracing.StartSpan(ctx, "AttendanceService.List", userID)
	defer func() { tracing.End(span, err) }()

	return s.AttendanceRepo.FindByUser(ctx, userID)
}
