package model

const (
	StepNotStarted = 0
	StepFirst      = 1
	StepSecond     = 2
	StepCompleted  = 3
)

// Edu is a user's progress on one chapter. There is at most one row per
// (user, chapter).
// swagger:model Edu
type Edu struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string `gorm:"size:50;not null;uniqueIndex:idx_edu_user_chapter" json:"user_id"`
	ChapterID uint   `gorm:"not null;uniqueIndex:idx_edu_user_chapter" json:"chapter_id"`
	Step      int    `gorm:"not null;default:0" json:"step"`
	Date      Date   `gorm:"not null" json:"date"`
}

func (Edu) TableName() string {
	return "edu"
}

func ValidStep(step int) bool {
	return step >= StepNotStarted && step <= StepCompleted
}

// ChapterStep is a chapter the user has touched, with its current step.
type ChapterStep struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Step int    `json:"step"`
}

type CompletedChapter struct {
	TopicName   string `json:"topic_name"`
	ChapterID   uint   `json:"chapter_id"`
	ChapterName string `json:"chapter_name"`
	Step        int    `json:"step"`
	Date        Date   `json:"date"`
}

// TodayLesson is a chapter offered for study today. Step and Date are nil
// when the user has never opened the chapter.
type TodayLesson struct {
	TopicID     uint    `json:"topic_id"`
	TopicName   *string `json:"topic_name"`
	ChapterID   uint    `json:"chapter_id"`
	ChapterName string  `json:"chapter_name"`
	Step        *int    `json:"step"`
	Date        *Date   `json:"date"`
}
