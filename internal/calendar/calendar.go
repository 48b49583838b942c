package calendar

import (
	"time"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

const (
	// HeaderRows - строка данных для templateStart; совместимо с существующими документами
	HeaderRows = 2

	// FirstMemberColumn - первая колонка участника в календаре команды
	FirstMemberColumn byte = 'C'

	DateLayout = "2006-01-02"

	// RegionalOffset - UTC+5:30, применяется сдвигом времени независимо от зоны хоста
	RegionalOffset = 5*time.Hour + 30*time.Minute

	day = 24 * time.Hour
)

// Shift переводит момент времени в "настенное" время региона, представленное в UTC
func Shift(t time.Time) time.Time {
	return t.UTC().Add(RegionalOffset)
}

// Day - начало календарного дня региона для момента t
func Day(t time.Time) time.Time {
	s := Shift(t)
	return time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает дату YYYY-MM-DD как календарный день
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

func FormatDate(t time.Time) string {
	return Day(t).Format(DateLayout)
}

// DaysBetween - количество календарных дней от from до to
func DaysBetween(to, from time.Time) int {
	return int(Day(to).Sub(Day(from)) / day)
}

// RowForDate возвращает строку документа для даты
func RowForDate(date, templateStart time.Time) (int, error) {
	if Day(date).Before(Day(templateStart)) {
		return 0, domain.NewOutOfRangeError(FormatDate(date), FormatDate(templateStart))
	}
	return HeaderRows + DaysBetween(date, templateStart), nil
}

// DateForRow - обратное к RowForDate преобразование
func DateForRow(row int, templateStart time.Time) time.Time {
	return Day(templateStart).AddDate(0, 0, row-HeaderRows)
}

// ColumnForOrdinal адресует колонку одной буквой; выход за Z - ошибка, без переноса
func ColumnForOrdinal(start byte, ordinal int) (byte, error) {
	if ordinal < 0 || int(start)+ordinal > 'Z' {
		return 0, domain.NewRangeExceededError(start, ordinal)
	}
	return start + byte(ordinal), nil
}

// MaxMembers - сколько участников помещается от FirstMemberColumn до Z
func MaxMembers() int {
	return int('Z'-FirstMemberColumn) + 1
}
