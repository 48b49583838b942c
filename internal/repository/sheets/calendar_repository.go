package sheets

import (
	"context"
	"fmt"

	"github.com/gaganjakhotiya/ross/internal/calendar"
	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/store"
)

type calendarRepository struct {
	store store.Store
}

func NewCalendarRepository(st store.Store) *calendarRepository {
	return &calendarRepository{store: st}
}

// TemplateDays читает весь шаблон календаря начиная с первой строки данных
func (r *calendarRepository) TemplateDays(ctx context.Context) ([]domain.CalendarDay, error) {
	rows, err := readSheet(ctx, r.store, calendar.TemplateSheet, templateHeader)
	if err != nil {
		return nil, err
	}

	days := make([]domain.CalendarDay, 0, len(rows))
	for i, row := range rows {
		d, err := calendar.ParseDay(row)
		if err != nil {
			return nil, fmt.Errorf("template row %d: %w", firstDataRow+i, err)
		}
		days = append(days, d)
	}
	return days, nil
}

func (r *calendarRepository) TeamSheetExists(ctx context.Context, team string) (bool, error) {
	return r.store.SheetExists(ctx, team)
}

// CreateTeamSheet создает календарь команды: даты и типы дней из шаблона.
// Уже существующий лист переиспользуется, колонки дат переписываются.
func (r *calendarRepository) CreateTeamSheet(ctx context.Context, team string, days []domain.CalendarDay) error {
	exists, err := r.store.SheetExists(ctx, team)
	if err != nil {
		return err
	}
	if !exists {
		if err := r.store.CreateSheet(ctx, team); err != nil {
			return err
		}
	}

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, calendar.DayRow(d)[:2])
	}

	updates := []store.Update{
		{Range: store.Row(team, 'A', 'B', 1), Values: [][]string{teamHeader}},
	}
	if len(rows) > 0 {
		updates = append(updates, store.Update{
			Range:  store.NewRange(team, 'A', firstDataRow, 'B', firstDataRow+len(rows)-1),
			Values: rows,
		})
	}
	return r.store.BatchWrite(ctx, updates)
}

// Header возвращает handle участников в порядке колонок
func (r *calendarRepository) Header(ctx context.Context, team string) ([]string, error) {
	rows, err := r.store.ReadRange(ctx, store.Row(team, 'A', 'Z', 1))
	if err != nil {
		return nil, err
	}
	if err := checkHeader(team, teamHeader, rows); err != nil {
		return nil, err
	}

	handles := make([]string, 0, len(rows[0])-len(teamHeader))
	handles = append(handles, rows[0][len(teamHeader):]...)
	return handles, nil
}

func (r *calendarRepository) AddMemberColumn(ctx context.Context, team string, col byte, handle string, statuses []domain.Status) error {
	updates := []store.Update{
		{Range: store.Cell(team, col, 1), Values: [][]string{{handle}}},
	}
	if len(statuses) > 0 {
		updates = append(updates, store.Update{
			Range:  store.NewRange(team, col, firstDataRow, col, firstDataRow+len(statuses)-1),
			Values: statusColumn(statuses),
		})
	}
	return r.store.BatchWrite(ctx, updates)
}

// ReadStatuses читает колонку участника; пустые ячейки - YetToPlan
func (r *calendarRepository) ReadStatuses(ctx context.Context, team string, col byte, fromRow, toRow int) ([]domain.Status, error) {
	rows, err := r.store.ReadRange(ctx, store.NewRange(team, col, fromRow, col, toRow))
	if err != nil {
		return nil, err
	}

	statuses := make([]domain.Status, toRow-fromRow+1)
	for i, row := range rows {
		s, err := domain.ParseStatus(cell(row, 0))
		if err != nil {
			return nil, fmt.Errorf("%s!%c%d: %w", team, col, fromRow+i, err)
		}
		statuses[i] = s
	}
	return statuses, nil
}

func (r *calendarRepository) WriteStatuses(ctx context.Context, team string, col byte, fromRow int, statuses []domain.Status) error {
	if len(statuses) == 0 {
		return nil
	}
	return r.store.WriteRange(ctx, store.NewRange(team, col, fromRow, col, fromRow+len(statuses)-1), statusColumn(statuses))
}

// ReadDay читает статусы всех участников команды в строке
func (r *calendarRepository) ReadDay(ctx context.Context, team string, row int, members int) ([]domain.Status, error) {
	statuses := make([]domain.Status, members)
	if members == 0 {
		return statuses, nil
	}

	last, err := calendar.ColumnForOrdinal(calendar.FirstMemberColumn, members-1)
	if err != nil {
		return nil, err
	}
	rows, err := r.store.ReadRange(ctx, store.Row(team, calendar.FirstMemberColumn, last, row))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return statuses, nil
	}

	for i := range statuses {
		s, err := domain.ParseStatus(cell(rows[0], i))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", team, row, err)
		}
		statuses[i] = s
	}
	return statuses, nil
}

// MarkHoliday отмечает праздник в шаблоне и во всех календарях команд.
// Записи в разные листы не атомарны между собой.
func (r *calendarRepository) MarkHoliday(ctx context.Context, row int, teamMembers map[string]int) error {
	updates := []store.Update{
		{Range: store.Cell(calendar.TemplateSheet, 'C', row), Values: [][]string{{domain.StatusHoliday.Code()}}},
	}

	for team, members := range teamMembers {
		if members == 0 {
			continue
		}
		last, err := calendar.ColumnForOrdinal(calendar.FirstMemberColumn, members-1)
		if err != nil {
			return err
		}
		values := make([]string, members)
		for i := range values {
			values[i] = domain.StatusHoliday.Code()
		}
		updates = append(updates, store.Update{
			Range:  store.Row(team, calendar.FirstMemberColumn, last, row),
			Values: [][]string{values},
		})
	}

	return r.store.BatchWrite(ctx, updates)
}

func statusColumn(statuses []domain.Status) [][]string {
	values := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, []string{s.Code()})
	}
	return values
}
