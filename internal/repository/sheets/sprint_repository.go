package sheets

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gaganjakhotiya/ross/internal/calendar"
	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/store"
)

type sprintRepository struct {
	store store.Reader
}

func NewSprintRepository(st store.Reader) *sprintRepository {
	return &sprintRepository{store: st}
}

// List возвращает таблицу спринтов, где индекс 0 - строка заголовка
func (r *sprintRepository) List(ctx context.Context) ([]domain.Sprint, error) {
	rows, err := readSheet(ctx, r.store, SprintsSheet, sprintsHeader)
	if err != nil {
		return nil, err
	}

	table := make([]domain.Sprint, 0, len(rows)+1)
	table = append(table, domain.Sprint{})
	for i, row := range rows {
		id, err := strconv.Atoi(cell(row, 0))
		if err != nil {
			return nil, fmt.Errorf("sprint row %d: invalid id %q", firstDataRow+i, cell(row, 0))
		}
		start, err := calendar.ParseDate(cell(row, 1))
		if err != nil {
			return nil, fmt.Errorf("sprint row %d: %w", firstDataRow+i, err)
		}
		end, err := calendar.ParseDate(cell(row, 2))
		if err != nil {
			return nil, fmt.Errorf("sprint row %d: %w", firstDataRow+i, err)
		}
		table = append(table, domain.Sprint{ID: id, Start: start, End: end})
	}

	return table, nil
}
