package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Range - прямоугольный диапазон вида Sheet!A2:F2.
// Колонки - одна буква A-Z. EndRow == 0 означает диапазон до конца листа (Sheet!A2:F).
type Range struct {
	Sheet    string
	StartCol byte
	StartRow int
	EndCol   byte
	EndRow   int
}

func NewRange(sheet string, startCol byte, startRow int, endCol byte, endRow int) Range {
	return Range{Sheet: sheet, StartCol: startCol, StartRow: startRow, EndCol: endCol, EndRow: endRow}
}

// Cell возвращает диапазон из одной ячейки
func Cell(sheet string, col byte, row int) Range {
	return Range{Sheet: sheet, StartCol: col, StartRow: row, EndCol: col, EndRow: row}
}

// Row возвращает диапазон одной строки между колонками
func Row(sheet string, startCol, endCol byte, row int) Range {
	return Range{Sheet: sheet, StartCol: startCol, StartRow: row, EndCol: endCol, EndRow: row}
}

func (r Range) String() string {
	end := string(r.EndCol)
	if r.EndRow > 0 {
		end += strconv.Itoa(r.EndRow)
	}
	return fmt.Sprintf("%s!%c%d:%s", r.Sheet, r.StartCol, r.StartRow, end)
}

func (r Range) Validate() error {
	if r.Sheet == "" {
		return fmt.Errorf("range %q: empty sheet name", r.String())
	}
	if !isColumn(r.StartCol) || !isColumn(r.EndCol) {
		return fmt.Errorf("range %q: column outside A-Z", r.String())
	}
	if r.EndCol < r.StartCol {
		return fmt.Errorf("range %q: end column before start column", r.String())
	}
	if r.StartRow < 1 || (r.EndRow != 0 && r.EndRow < r.StartRow) {
		return fmt.Errorf("range %q: invalid rows", r.String())
	}
	return nil
}

// ParseRange разбирает выражение Sheet!A2:F3 или Sheet!A2:F
func ParseRange(expr string) (Range, error) {
	sheet, cells, ok := strings.Cut(expr, "!")
	if !ok {
		return Range{}, fmt.Errorf("range %q: missing sheet separator", expr)
	}
	from, to, ok := strings.Cut(cells, ":")
	if !ok {
		to = from
	}

	startCol, startRow, err := parseCell(from)
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w", expr, err)
	}
	endCol, endRow, err := parseCell(to)
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w", expr, err)
	}

	rng := Range{Sheet: sheet, StartCol: startCol, StartRow: startRow, EndCol: endCol, EndRow: endRow}
	return rng, rng.Validate()
}

func parseCell(cell string) (byte, int, error) {
	if cell == "" || !isColumn(cell[0]) {
		return 0, 0, fmt.Errorf("invalid cell %q", cell)
	}
	if len(cell) == 1 {
		return cell[0], 0, nil
	}
	row, err := strconv.Atoi(cell[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cell %q", cell)
	}
	return cell[0], row, nil
}

func isColumn(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
