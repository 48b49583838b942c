package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := ParseDate(value)
	require.NoError(t, err)
	return d
}

func TestRowForDate(t *testing.T) {
	start := date(t, "2024-01-01")

	t.Run("2024-01-03 -> строка 4", func(t *testing.T) {
		row, err := RowForDate(date(t, "2024-01-03"), start)
		require.NoError(t, err)
		assert.Equal(t, 4, row)
	})

	t.Run("строка монотонно растет", func(t *testing.T) {
		base, err := RowForDate(start, start)
		require.NoError(t, err)
		assert.Equal(t, HeaderRows, base)

		prev := base
		for i := 1; i < 400; i++ {
			d := start.AddDate(0, 0, i)
			row, err := RowForDate(d, start)
			require.NoError(t, err)
			assert.Equal(t, base+DaysBetween(d, start), row)
			assert.Greater(t, row, prev)
			prev = row
		}
	})

	t.Run("ошибка: дата раньше якоря", func(t *testing.T) {
		_, err := RowForDate(date(t, "2023-12-31"), start)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrOutOfRange))
	})

	t.Run("момент времени в региональной зоне", func(t *testing.T) {
		// 2024-01-02 20:00 UTC - это уже 2024-01-03 01:30 по UTC+5:30
		row, err := RowForDate(time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC), start)
		require.NoError(t, err)
		assert.Equal(t, 4, row)
	})

	t.Run("DateForRow обратна RowForDate", func(t *testing.T) {
		d := date(t, "2024-03-15")
		row, err := RowForDate(d, start)
		require.NoError(t, err)
		assert.Equal(t, d, DateForRow(row, start))
	})
}

func TestColumnForOrdinal(t *testing.T) {
	col, err := ColumnForOrdinal('A', 0)
	require.NoError(t, err)
	assert.Equal(t, byte('A'), col)

	col, err = ColumnForOrdinal('A', 25)
	require.NoError(t, err)
	assert.Equal(t, byte('Z'), col)

	col, err = ColumnForOrdinal(FirstMemberColumn, 2)
	require.NoError(t, err)
	assert.Equal(t, byte('E'), col)

	_, err = ColumnForOrdinal('A', 26)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRangeExceeded))

	_, err = ColumnForOrdinal(FirstMemberColumn, MaxMembers())
	assert.True(t, errors.Is(err, domain.ErrRangeExceeded))

	_, err = ColumnForOrdinal('A', -1)
	assert.True(t, errors.Is(err, domain.ErrRangeExceeded))
}

func sprintTable(t *testing.T) []domain.Sprint {
	return []domain.Sprint{
		{},
		{ID: 1, Start: date(t, "2024-01-01"), End: date(t, "2024-01-14")},
		{ID: 2, Start: date(t, "2024-01-15"), End: date(t, "2024-01-28")},
		{ID: 3, Start: date(t, "2024-01-29"), End: date(t, "2024-02-11")},
		{ID: 4, Start: date(t, "2024-02-12"), End: date(t, "2024-02-25")},
	}
}

func TestSprintContaining(t *testing.T) {
	table := sprintTable(t)

	t.Run("ровно один спринт на каждую дату", func(t *testing.T) {
		for d := date(t, "2024-01-01"); !d.After(date(t, "2024-02-25")); d = d.AddDate(0, 0, 1) {
			matches := 0
			for _, s := range table[1:] {
				if contains(s, d) {
					matches++
				}
			}
			assert.Equal(t, 1, matches, FormatDate(d))

			_, err := SprintContaining(d, table)
			require.NoError(t, err)
		}
	})

	t.Run("последний день спринта до 23:59:59", func(t *testing.T) {
		// 2024-01-14 23:59:59 по региону
		lastSecond := time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC).Add(-RegionalOffset)
		s, err := SprintContaining(lastSecond, table)
		require.NoError(t, err)
		assert.Equal(t, 1, s.ID)

		s, err = SprintContaining(lastSecond.Add(time.Second), table)
		require.NoError(t, err)
		assert.Equal(t, 2, s.ID)
	})

	t.Run("ошибка: дата вне таблицы", func(t *testing.T) {
		_, err := SprintContaining(date(t, "2023-12-31"), table)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		_, err = SprintContaining(date(t, "2024-02-26"), table)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestSprintRelativeTo(t *testing.T) {
	table := sprintTable(t)

	s, err := SprintRelativeTo(date(t, "2024-01-20"), 1, table)
	require.NoError(t, err)
	assert.Equal(t, 3, s.ID)

	s, err = SprintRelativeTo(date(t, "2024-01-20"), -1, table)
	require.NoError(t, err)
	assert.Equal(t, 1, s.ID)

	s, err = SprintRelativeTo(date(t, "2024-01-20"), 0, table)
	require.NoError(t, err)
	assert.Equal(t, 2, s.ID)

	t.Run("ошибка: позиция заголовка", func(t *testing.T) {
		_, err := SprintRelativeTo(date(t, "2024-01-05"), -1, table)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("ошибка: последняя позиция зарезервирована", func(t *testing.T) {
		_, err := SprintRelativeTo(date(t, "2024-01-30"), 1, table)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestSprintProgress(t *testing.T) {
	sprint := domain.Sprint{ID: 1, Start: date(t, "2024-01-01"), End: date(t, "2024-01-10")}

	t.Run("первый день без праздников", func(t *testing.T) {
		p := SprintProgress(sprint.Start, sprint, nil)
		assert.Equal(t, 0, p.CompletedDays)
		assert.Equal(t, 10, p.RemainingDays)
	})

	t.Run("последний день без праздников", func(t *testing.T) {
		p := SprintProgress(sprint.End, sprint, nil)
		assert.Equal(t, 9, p.CompletedDays)
		assert.Equal(t, 1, p.RemainingDays)
	})

	t.Run("праздники до, в день и после даты", func(t *testing.T) {
		holidays := []time.Time{
			date(t, "2024-01-02"),
			date(t, "2024-01-05"),
			date(t, "2024-01-08"),
		}
		p := SprintProgress(date(t, "2024-01-05"), sprint, holidays)
		assert.Equal(t, 4-2, p.CompletedDays)
		assert.Equal(t, 6-1, p.RemainingDays)
	})
}

func TestHours(t *testing.T) {
	// 03:30 UTC = 09:00 UTC+5:30
	opening := time.Date(2024, 1, 3, 3, 30, 0, 0, time.UTC)
	assert.True(t, IsOpeningHour(opening))
	assert.True(t, IsWorkingHours(opening))
	assert.False(t, IsClosingHour(opening))

	// 03:29 UTC = 08:59, до начала окна
	assert.False(t, IsWorkingHours(time.Date(2024, 1, 3, 3, 29, 0, 0, time.UTC)))

	// 05:30 UTC = 11:00
	midday := time.Date(2024, 1, 3, 5, 30, 0, 0, time.UTC)
	assert.True(t, IsWorkingHours(midday))
	assert.False(t, IsOpeningHour(midday))
	assert.False(t, IsClosingHour(midday))

	// 06:45 UTC = 12:15
	closing := time.Date(2024, 1, 3, 6, 45, 0, 0, time.UTC)
	assert.True(t, IsClosingHour(closing))
	assert.True(t, IsWorkingHours(closing))

	// 07:30 UTC = 13:00
	assert.False(t, IsWorkingHours(time.Date(2024, 1, 3, 7, 30, 0, 0, time.UTC)))

	// зона хоста не влияет
	local := opening.In(time.FixedZone("PST", -8*3600))
	assert.True(t, IsOpeningHour(local))

	// 2024-01-05 20:00 UTC - суббота 01:30 по региону
	assert.True(t, IsWeekend(time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC)))
	assert.False(t, IsWeekend(time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)))
}

func TestIndex_HolidaysBetween(t *testing.T) {
	ctx := context.Background()
	start := date(t, "2024-01-01")

	s := store.NewMemoryStore()
	require.NoError(t, s.CreateSheet(ctx, TemplateSheet))
	require.NoError(t, s.WriteRange(ctx, store.Row(TemplateSheet, 'A', 'C', 1), [][]string{{"Date", "Day", "Status"}}))

	rows := make([][]string, 0)
	for i := 0; i < 14; i++ {
		d := start.AddDate(0, 0, i)
		cd := domain.CalendarDay{Date: d, Weekend: IsWeekend(d)}
		// 2024-01-06 - суббота и одновременно праздник
		if FormatDate(d) == "2024-01-06" || FormatDate(d) == "2024-01-10" {
			cd.Holiday = true
		}
		rows = append(rows, DayRow(cd))
	}
	require.NoError(t, s.WriteRange(ctx, store.NewRange(TemplateSheet, 'A', 2, 'C', 15), rows))

	idx := NewIndex(s, start)

	holidays, err := idx.HolidaysBetween(ctx, start, start.AddDate(0, 0, 13))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(t, "2024-01-06"), date(t, "2024-01-10")}, holidays)

	weekends, err := idx.WeekendsBetween(ctx, start, start.AddDate(0, 0, 13))
	require.NoError(t, err)
	assert.Contains(t, weekends, date(t, "2024-01-06"))
	assert.Contains(t, weekends, date(t, "2024-01-07"))
	assert.Len(t, weekends, 4)

	t.Run("ошибка: начало раньше шаблона", func(t *testing.T) {
		_, err := idx.HolidaysBetween(ctx, date(t, "2023-12-01"), start)
		assert.True(t, errors.Is(err, domain.ErrOutOfRange))
	})
}
