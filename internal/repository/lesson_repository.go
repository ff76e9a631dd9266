package repository

import (
	"context"

	"nurvo_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

// FindTodayLessons returns the chapters offered to the user today, ordered by
// chapter id and capped at the user's obj. Chapters at the final step are left
// out unless they were completed between monday and sunday. A nil obj means
// no cap.
func (r *LessonRepository) FindTodayLessons(ctx context.Context, userID string, monday, sunday model.Date) ([]model.TodayLesson, error) {
	db := r.DB.WithContext(ctx)

	var user model.User
	if err := db.Model(&model.User{}).Select("id", "obj").Where("id = ?", userID).Take(&user).Error; err != nil {
		return nil, classify("lesson.FindTodayLessons", err)
	}

	rows := make([]model.TodayLesson, 0)
	limit := -1
	if user.Obj != nil {
		if *user.Obj <= 0 {
			return rows, nil
		}
		limit = *user.Obj
	}

	err := db.Table("chapter AS c").
		Select("c.topic_id, t.name AS topic_name, c.id AS chapter_id, c.name AS chapter_name, e.step, e.date").
		Joins("LEFT JOIN edu e ON e.chapter_id = c.id AND e.user_id = ?", userID).
		Joins("LEFT JOIN topic t ON c.topic_id = t.id").
		Where("(e.step <> ? OR e.step IS NULL) OR (e.date BETWEEN ? AND ?)", model.StepCompleted, monday, sunday).
		Order("c.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, classify("lesson.FindTodayLessons", err)
	}
	return rows, nil
}
