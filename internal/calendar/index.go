package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/store"
)

const (
	TemplateSheet = "Template"

	DayKindWeekday = "Weekday"
	DayKindWeekend = "Weekend"
)

// Index читает шаблон календаря из документа; сам не кэширует
type Index struct {
	reader        store.Reader
	templateStart time.Time
}

func NewIndex(reader store.Reader, templateStart time.Time) *Index {
	return &Index{reader: reader, templateStart: Day(templateStart)}
}

func (i *Index) TemplateStart() time.Time {
	return i.templateStart
}

func (i *Index) RowForDate(date time.Time) (int, error) {
	return RowForDate(date, i.templateStart)
}

// Days читает строки шаблона с start по end включительно
func (i *Index) Days(ctx context.Context, start, end time.Time) ([]domain.CalendarDay, error) {
	from, err := i.RowForDate(start)
	if err != nil {
		return nil, err
	}
	to, err := i.RowForDate(end)
	if err != nil {
		return nil, err
	}
	if to < from {
		return []domain.CalendarDay{}, nil
	}

	rows, err := i.reader.ReadRange(ctx, store.NewRange(TemplateSheet, 'A', from, 'C', to))
	if err != nil {
		return nil, err
	}

	days := make([]domain.CalendarDay, 0, len(rows))
	for n, row := range rows {
		d, err := ParseDay(row)
		if err != nil {
			return nil, fmt.Errorf("template row %d: %w", from+n, err)
		}
		days = append(days, d)
	}

	return days, nil
}

// HolidaysBetween - упорядоченные даты праздников в диапазоне
func (i *Index) HolidaysBetween(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	days, err := i.Days(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return Holidays(days), nil
}

// WeekendsBetween - упорядоченные даты выходных в диапазоне
func (i *Index) WeekendsBetween(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	days, err := i.Days(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return Weekends(days), nil
}

// ParseDay разбирает строку [дата, тип дня, статус]
func ParseDay(row []string) (domain.CalendarDay, error) {
	if len(row) == 0 {
		return domain.CalendarDay{}, fmt.Errorf("empty row")
	}
	date, err := ParseDate(strings.TrimSpace(row[0]))
	if err != nil {
		return domain.CalendarDay{}, err
	}

	d := domain.CalendarDay{Date: date}
	if len(row) > 1 {
		d.Weekend = strings.EqualFold(strings.TrimSpace(row[1]), DayKindWeekend)
	}
	if len(row) > 2 {
		status, err := domain.ParseStatus(row[2])
		if err != nil {
			return domain.CalendarDay{}, err
		}
		d.Holiday = status == domain.StatusHoliday
	}
	return d, nil
}

// DayRow формирует строку шаблона для даты
func DayRow(d domain.CalendarDay) []string {
	kind := DayKindWeekday
	if d.Weekend {
		kind = DayKindWeekend
	}
	status := ""
	if d.Holiday {
		status = domain.StatusHoliday.Code()
	}
	return []string{FormatDate(d.Date), kind, status}
}

func Holidays(days []domain.CalendarDay) []time.Time {
	result := make([]time.Time, 0)
	for _, d := range days {
		if d.Holiday {
			result = append(result, d.Date)
		}
	}
	return result
}

func Weekends(days []domain.CalendarDay) []time.Time {
	result := make([]time.Time, 0)
	for _, d := range days {
		if d.Weekend {
			result = append(result, d.Date)
		}
	}
	return result
}
