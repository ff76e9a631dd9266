package util

import (
	"time"

	"nurvo_backend/internal/model"
)

// Today returns the calendar day of now in loc.
func Today(now time.Time, loc *time.Location) model.Date {
	if loc != nil {
		now = now.In(loc)
	}
	return model.DateOf(now)
}

// WeekRange returns the Monday and Sunday of the week containing day.
func WeekRange(day model.Date) (monday, sunday model.Date) {
	offset := (int(day.Weekday()) + 6) % 7
	monday = model.DateOf(day.AddDate(0, 0, -offset))
	sunday = model.DateOf(monday.AddDate(0, 0, 6))
	return monday, sunday
}

// DayName is the weekday label stored with attendance rows.
func DayName(day model.Date) string {
	return day.Weekday().String()
}
