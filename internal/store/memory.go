package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// MemoryStore - документ в памяти с семантикой Google Sheets:
// пустые хвосты строк и колонок при чтении обрезаются.
type MemoryStore struct {
	mu     sync.RWMutex
	sheets map[string][][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sheets: make(map[string][][]string)}
}

func (s *MemoryStore) ReadRange(ctx context.Context, rng Range) ([][]string, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	grid, ok := s.sheets[rng.Sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %s not found", rng.Sheet)
	}

	endRow := rng.EndRow
	if endRow == 0 || endRow > len(grid) {
		endRow = len(grid)
	}

	values := make([][]string, 0)
	for r := rng.StartRow; r <= endRow; r++ {
		row := grid[r-1]
		cells := make([]string, 0, int(rng.EndCol-rng.StartCol)+1)
		for c := int(rng.StartCol - 'A'); c <= int(rng.EndCol-'A'); c++ {
			if c < len(row) {
				cells = append(cells, row[c])
			} else {
				cells = append(cells, "")
			}
		}
		values = append(values, trimRow(cells))
	}

	return trimRows(values), nil
}

func (s *MemoryStore) BatchRead(ctx context.Context, ranges []Range) ([][][]string, error) {
	result := make([][][]string, 0, len(ranges))
	for _, rng := range ranges {
		values, err := s.ReadRange(ctx, rng)
		if err != nil {
			return nil, err
		}
		result = append(result, values)
	}
	return result, nil
}

func (s *MemoryStore) WriteRange(ctx context.Context, rng Range, values [][]string) error {
	if err := rng.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	grid, ok := s.sheets[rng.Sheet]
	if !ok {
		return fmt.Errorf("sheet %s not found", rng.Sheet)
	}

	width := int(rng.EndCol-rng.StartCol) + 1
	for i, row := range values {
		r := rng.StartRow + i
		if rng.EndRow != 0 && r > rng.EndRow {
			return fmt.Errorf("range %s: %d rows do not fit", rng, len(values))
		}
		if len(row) > width {
			return fmt.Errorf("range %s: %d columns do not fit", rng, len(row))
		}
		for len(grid) < r {
			grid = append(grid, []string{})
		}
		for j, value := range row {
			c := int(rng.StartCol-'A') + j
			for len(grid[r-1]) <= c {
				grid[r-1] = append(grid[r-1], "")
			}
			grid[r-1][c] = value
		}
	}
	s.sheets[rng.Sheet] = grid

	return nil
}

// BatchWrite применяет все обновления и собирает ошибки; атомарности между диапазонами нет
func (s *MemoryStore) BatchWrite(ctx context.Context, updates []Update) error {
	var errs *multierror.Error
	for _, u := range updates {
		if err := s.WriteRange(ctx, u.Range, u.Values); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

func (s *MemoryStore) CreateSheet(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sheets[name]; ok {
		return fmt.Errorf("sheet %s already exists", name)
	}
	s.sheets[name] = [][]string{}
	return nil
}

func (s *MemoryStore) SheetExists(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.sheets[name]
	return ok, nil
}

func trimRow(row []string) []string {
	end := len(row)
	for end > 0 && row[end-1] == "" {
		end--
	}
	return row[:end]
}

func trimRows(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && len(rows[end-1]) == 0 {
		end--
	}
	return rows[:end]
}
