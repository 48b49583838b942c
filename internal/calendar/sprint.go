package calendar

import (
	"fmt"
	"time"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

const endOfDay = day - time.Second

func contains(s domain.Sprint, date time.Time) bool {
	t := Shift(date)
	start := Day(s.Start)
	end := Day(s.End).Add(endOfDay)
	return !t.Before(start) && !t.After(end)
}

func sprintIndex(date time.Time, table []domain.Sprint) int {
	for i, s := range table {
		if contains(s, date) {
			return i
		}
	}
	return -1
}

// SprintContaining - линейный поиск спринта, конец включается до 23:59:59
func SprintContaining(date time.Time, table []domain.Sprint) (domain.Sprint, error) {
	i := sprintIndex(date, table)
	if i < 0 {
		return domain.Sprint{}, domain.NewNotFoundError("sprint for " + FormatDate(date))
	}
	return table[i], nil
}

// SprintRelativeTo возвращает спринт со смещением offset от текущего.
// Позиция 0 (заголовок) и последняя позиция таблицы зарезервированы.
func SprintRelativeTo(date time.Time, offset int, table []domain.Sprint) (domain.Sprint, error) {
	i := sprintIndex(date, table)
	if i < 0 {
		return domain.Sprint{}, domain.NewNotFoundError("sprint for " + FormatDate(date))
	}
	target := i + offset
	if target < 1 || target >= len(table)-1 {
		return domain.Sprint{}, domain.NewNotFoundError(fmt.Sprintf("sprint at offset %d from %s", offset, FormatDate(date)))
	}
	return table[target], nil
}

// SprintProgress считает пройденные и оставшиеся дни спринта.
// Праздник строго после date уменьшает оставшиеся, праздник в date или раньше - пройденные.
func SprintProgress(date time.Time, sprint domain.Sprint, holidays []time.Time) domain.SprintProgress {
	progress := domain.SprintProgress{
		CompletedDays: DaysBetween(date, sprint.Start),
		RemainingDays: DaysBetween(sprint.End, date) + 1,
	}

	today := Day(date)
	for _, h := range holidays {
		if Day(h).After(today) {
			progress.RemainingDays--
		} else {
			progress.CompletedDays--
		}
	}

	return progress
}
