package model

// swagger:model User
type User struct {
	ID          string `gorm:"primaryKey;size:50" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Nickname    string `gorm:"size:100" json:"nickname"`
	PhoneNumber string `gorm:"size:30" json:"phone_number"`
	Password    string `gorm:"size:100;not null" json:"-"`
	// Obj is the number of chapters offered as today's lessons.
	Obj     *int  `gorm:"column:obj" json:"obj"`
	ObjDate *Date `gorm:"column:obj_date" json:"obj_date"`
}

func (User) TableName() string {
	return "user"
}

// ProgressUpdate carries the user progress fields to change. Nil fields are
// left untouched.
type ProgressUpdate struct {
	Obj     *int
	ObjDate *Date
}

func (p ProgressUpdate) Empty() bool {
	return p.Obj == nil && p.ObjDate == nil
}
