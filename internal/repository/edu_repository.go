package repository

import (
	"context"

	"nurvo_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EduRepository struct {
	DB *gorm.DB
}

func NewEduRepository(db *gorm.DB) *EduRepository {
	return &EduRepository{DB: db}
}

// Upsert records progress on a chapter in a single statement: a new row for
// the first completion, otherwise step and date of the existing row are
// overwritten. Relies on the unique (user_id, chapter_id) index.
func (r *EduRepository) Upsert(ctx context.Context, edu *model.Edu) error {
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "chapter_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"date", "step"}),
	}).Create(edu).Error
	return classify("edu.Upsert", err)
}

func (r *EduRepository) FindByUserAndChapter(ctx context.Context, userID string, chapterID uint) (*model.Edu, error) {
	var edu model.Edu
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND chapter_id = ?", userID, chapterID).
		Take(&edu).Error
	if err != nil {
		return nil, classify("edu.FindByUserAndChapter", err)
	}
	return &edu, nil
}

// FindChaptersWithStep lists the chapters the user has progress on. Chapters
// never opened are not part of the result.
func (r *EduRepository) FindChaptersWithStep(ctx context.Context, userID string) ([]model.ChapterStep, error) {
	rows := make([]model.ChapterStep, 0)
	err := r.DB.WithContext(ctx).
		Table("edu AS e").
		Select("c.id, c.name, e.step").
		Joins("JOIN chapter c ON e.chapter_id = c.id").
		Where("e.user_id = ?", userID).
		Order("e.chapter_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, classify("edu.FindChaptersWithStep", err)
	}
	return rows, nil
}

func (r *EduRepository) FindCompleted(ctx context.Context, userID string) ([]model.CompletedChapter, error) {
	rows := make([]model.CompletedChapter, 0)
	err := r.DB.WithContext(ctx).
		Table("edu AS e").
		Select("t.name AS topic_name, e.chapter_id, c.name AS chapter_name, e.step, e.date").
		Joins("JOIN chapter c ON e.chapter_id = c.id").
		Joins("JOIN topic t ON c.topic_id = t.id").
		Where("e.user_id = ?", userID).
		Order("e.chapter_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, classify("edu.FindCompleted", err)
	}
	return rows, nil
}
