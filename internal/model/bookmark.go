package model

// swagger:model Bookmark
type Bookmark struct {
	UserID         string `gorm:"size:50;not null;index" json:"-"`
	ConversationID uint   `gorm:"not null" json:"conversation_id"`
	Date           Date   `gorm:"not null" json:"date"`
}

func (Bookmark) TableName() string {
	return "bookmark"
}
