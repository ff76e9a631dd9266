package model

// swagger:model Topic
type Topic struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

func (Topic) TableName() string {
	return "topic"
}

// swagger:model Chapter
type Chapter struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	TopicID uint   `gorm:"index;not null" json:"topic_id"`
}

func (Chapter) TableName() string {
	return "chapter"
}

// Conversation is one dialogue line of a chapter. SecondStep holds the same
// text with words blanked out for the fill-in-the-blank step.
// swagger:model Conversation
type Conversation struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ChapterID  uint   `gorm:"index;not null" json:"chapter_id"`
	Dialogue   string `gorm:"type:text" json:"dialogue"`
	SecondStep string `gorm:"type:text" json:"second_step"`
}

func (Conversation) TableName() string {
	return "conversation"
}
