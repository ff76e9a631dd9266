package model

// Attendance is one entry of the append-only attendance log.
// swagger:model Attendance
type Attendance struct {
	UserID string `gorm:"size:50;not null;index" json:"user_id"`
	Date   Date   `gorm:"not null" json:"date"`
	Day    string `gorm:"size:10;not null" json:"day"`
}

func (Attendance) TableName() string {
	return "attendance"
}
