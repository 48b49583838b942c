package sheets

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/gaganjakhotiya/ross/internal/calendar"
	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/store"
)

const sprintLength = 14

// Bootstrap создает отсутствующие служебные листы с заголовками.
// Новые листы шаблона и спринтов заполняются на days дней от templateStart.
func Bootstrap(ctx context.Context, st store.Store, templateStart time.Time, days int) error {
	for _, s := range []struct {
		name   string
		header []string
	}{
		{TeamsSheet, teamsHeader},
		{MembersSheet, membersHeader},
	} {
		if _, err := ensureSheet(ctx, st, s.name, s.header); err != nil {
			return err
		}
	}

	created, err := ensureSheet(ctx, st, calendar.TemplateSheet, templateHeader)
	if err != nil {
		return err
	}
	if created {
		if err := seedTemplate(ctx, st, templateStart, days); err != nil {
			return err
		}
	}

	created, err = ensureSheet(ctx, st, SprintsSheet, sprintsHeader)
	if err != nil {
		return err
	}
	if created {
		return seedSprints(ctx, st, templateStart, days)
	}
	return nil
}

func ensureSheet(ctx context.Context, st store.Store, name string, header []string) (bool, error) {
	exists, err := st.SheetExists(ctx, name)
	if err != nil || exists {
		return false, err
	}
	if err := st.CreateSheet(ctx, name); err != nil {
		return false, err
	}
	if err := st.WriteRange(ctx, store.Row(name, 'A', lastColumn(header), 1), [][]string{header}); err != nil {
		return false, err
	}
	slog.Info("Sheet created", slog.String("sheet", name))
	return true, nil
}

func seedTemplate(ctx context.Context, st store.Store, templateStart time.Time, days int) error {
	if days <= 0 {
		return nil
	}
	start := calendar.Day(templateStart)
	rows := make([][]string, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		rows = append(rows, calendar.DayRow(domain.CalendarDay{Date: d, Weekend: calendar.IsWeekend(d)}))
	}
	return st.WriteRange(ctx, store.NewRange(calendar.TemplateSheet, 'A', firstDataRow, 'C', firstDataRow+days-1), rows)
}

func seedSprints(ctx context.Context, st store.Store, templateStart time.Time, days int) error {
	count := days / sprintLength
	if count == 0 {
		return nil
	}
	start := calendar.Day(templateStart)
	rows := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		from := start.AddDate(0, 0, i*sprintLength)
		to := from.AddDate(0, 0, sprintLength-1)
		rows = append(rows, []string{strconv.Itoa(i + 1), calendar.FormatDate(from), calendar.FormatDate(to)})
	}
	return st.WriteRange(ctx, store.NewRange(SprintsSheet, 'A', firstDataRow, 'C', firstDataRow+count-1), rows)
}
