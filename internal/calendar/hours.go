package calendar

import "time"

const (
	openingHour = 9
	closingHour = 12
)

func IsWeekend(t time.Time) bool {
	wd := Shift(t).Weekday()
	return wd == time.Sunday || wd == time.Saturday
}

// IsOpeningHour - первый час рабочего дня, 09:00-09:59
func IsOpeningHour(t time.Time) bool {
	return Shift(t).Hour() == openingHour
}

// IsWorkingHours - окно напоминаний 09:00-12:59
func IsWorkingHours(t time.Time) bool {
	h := Shift(t).Hour()
	return h >= openingHour && h <= closingHour
}

// IsClosingHour - последний час окна, 12:00-12:59
func IsClosingHour(t time.Time) bool {
	return Shift(t).Hour() == closingHour
}
