package service

import (
	"context"
	"testing"
	"time"

	"nurvo_backend/internal/model"
	"nurvo_backend/internal/repository"
	"nurvo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newEduService(t *testing.T, db *gorm.DB) *EduService {
	svc := NewEduService(repository.NewEduRepository(db), repository.NewLessonRepository(db), seoul(t))
	// 2024-05-16 05:00 in Seoul, a Thursday
	svc.Now = fixedClock(time.Date(2024, 5, 15, 20, 0, 0, 0, time.UTC))
	return svc
}

func TestEduService_RecordCompletion(t *testing.T) {
	db := setupTestDB(t)
	svc := newEduService(t, db)
	ctx := context.Background()

	step := 2
	edu, err := svc.RecordCompletion(ctx, "u1", CompletionRequest{ChapterID: 4, Step: &step})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-16", edu.Date.String())

	step = 3
	date := "2024-05-10"
	_, err = svc.RecordCompletion(ctx, "u1", CompletionRequest{ChapterID: 4, Step: &step, Date: &date})
	require.NoError(t, err)

	stored, err := svc.EduRepo.FindByUserAndChapter(ctx, "u1", 4)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Step)
	assert.Equal(t, "2024-05-10", stored.Date.String())
}

func TestEduService_RecordCompletionValidates(t *testing.T) {
	svc := newEduService(t, setupTestDB(t))
	ctx := context.Background()

	tooHigh, negative, ok := 4, -1, 1
	badDate := "yesterday"
	tests := []struct {
		name string
		req  CompletionRequest
	}{
		{"missing chapter", CompletionRequest{Step: &ok}},
		{"missing step", CompletionRequest{ChapterID: 1}},
		{"step too high", CompletionRequest{ChapterID: 1, Step: &tooHigh}},
		{"negative step", CompletionRequest{ChapterID: 1, Step: &negative}},
		{"bad date", CompletionRequest{ChapterID: 1, Step: &ok, Date: &badDate}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordCompletion(ctx, "u1", tt.req)
			assert.ErrorIs(t, err, util.ErrInvalidInput)
		})
	}
}

func TestEduService_TodayLessonsUsesCurrentWeek(t *testing.T) {
	db := setupTestDB(t)
	seedChapters(t, db, 3)
	require.NoError(t, db.Create(&model.User{ID: "u1", Name: "u1", Password: "x"}).Error)
	svc := newEduService(t, db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Edu{UserID: "u1", ChapterID: 1, Step: 3, Date: model.NewDate(2024, 5, 12)}).Error)
	require.NoError(t, db.Create(&model.Edu{UserID: "u1", ChapterID: 2, Step: 3, Date: model.NewDate(2024, 5, 13)}).Error)

	lessons, err := svc.TodayLessons(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, uint(2), lessons[0].ChapterID)
	assert.Equal(t, uint(3), lessons[1].ChapterID)

	_, err = svc.TodayLessons(ctx, "ghost")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestEduService_CompletedAndSteps(t *testing.T) {
	db := setupTestDB(t)
	seedChapters(t, db, 2)
	svc := newEduService(t, db)
	ctx := context.Background()

	steps, err := svc.ChaptersWithStep(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, steps)

	step := 1
	_, err = svc.RecordCompletion(ctx, "u1", CompletionRequest{ChapterID: 2, Step: &step})
	require.NoError(t, err)

	steps, err = svc.ChaptersWithStep(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, 1, steps[0].Step)

	done, err := svc.CompletedChapters(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "Admission", done[0].TopicName)
	assert.Equal(t, "2024-05-16", done[0].Date.String())
}
