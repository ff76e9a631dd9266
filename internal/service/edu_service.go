package service

import (
	"context"
	"fmt"
	"time"

	"nurvo_backend/internal/model"
	"nurvo_backend/internal/repository"
	"nurvo_backend/internal/util"
	"nurvo_backend/pkg/tracing"
)

type EduService struct {
	EduRepo    *repository.EduRepository
	LessonRepo *repository.LessonRepository
	Loc        *time.Location
	Now        func() time.Time
}

func NewEduService(eduRepo *repository.EduRepository, lessonRepo *repository.LessonRepository, loc *time.Location) *EduService {
	return &EduService{
		EduRepo:    eduRepo,
		LessonRepo: lessonRepo,
		Loc:        loc,
		Now:        time.Now,
	}
}

// CompletionRequest records that a user reached a step of a chapter. Date
// defaults to today.
type CompletionRequest struct {
	ChapterID uint    `json:"chapter_id" binding:"required"`
	Step      *int    `json:"step" binding:"required"`
	Date      *string `json:"date"`
}

func (s *EduService) today() model.Date {
	return util.Today(s.Now(), s.Loc)
}

// RecordCompletion inserts or overwrites the user's progress on the chapter.
func (s *EduService) RecordCompletion(ctx context.Context, userID string, req CompletionRequest) (edu *model.Edu, err error) {
	ctx, span := tracing.StartSpan(ctx, "EduService.RecordCompletion", userID)
	defer func() { tracing.End(span, err) }()

	if req.ChapterID == 0 {
		return nil, fmt.Errorf("%w: chapter_id is required", util.ErrInvalidInput)
	}
	if req.Step == nil || !model.ValidStep(*req.Step) {
		return nil, fmt.Errorf("%w: step must be between %d and %d", util.ErrInvalidInput, model.StepNotStarted, model.StepCompleted)
	}

	date := s.today()
	if req.Date != nil && *req.Date != "" {
		d, err := model.ParseDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrInvalidInput, err)
		}
		date = d
	}

	edu = &model.Edu{
		UserID:    userID,
		ChapterID: req.ChapterID,
		Step:      *req.Step,
		Date:      date,
	}
	if err := s.EduRepo.Upsert(ctx, edu); err != nil {
		return nil, err
	}
	return edu, nil
}

func (s *EduService) CompletedChapters(ctx context.Context, userID string) (rows []model.CompletedChapter, err error) {
	ctx, span := tracing.StartSpan(ctx, "EduService.CompletedChapters", userID)
	defer func() { tracing.End(span, err) }()

	return s.EduRepo.FindCompleted(ctx, userID)
}

func (s *EduService) ChaptersWithStep(ctx context.Context, userID string) (rows []model.ChapterStep, err error) {
	ctx, span := tracing.StartSpan(ctx, "EduService.ChaptersWithStep", userID)
	defer func() { tracing.End(span, err) }()

	return s.EduRepo.FindChaptersWithStep(ctx, userID)
}

// TodayLessons lists the chapters to study today. Chapters finished during
// the current Monday to Sunday week stay on the list.
func (s *EduService) TodayLessons(ctx context.Context, userID string) (rows []model.TodayLesson, err error) {
	ctx, span := tracing.StartSpan(ctx, "EduService.TodayLessons", userID)
	defer func() { tracing.End(span, err) }()

	monday, sunday := util.WeekRange(s.today())
	return s.LessonRepo.FindTodayLessons(ctx, userID, monday, sunday)
}
