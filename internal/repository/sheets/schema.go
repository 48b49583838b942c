package sheets

import (
	"context"
	"strings"

	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/store"
)

const (
	TeamsSheet   = "Teams"
	MembersSheet = "Members"
	SprintsSheet = "Sprints"

	// первая строка данных во всех листах
	firstDataRow = 2
)

var (
	teamsHeader    = []string{"Name", "Channel", "Owner", "Leader", "Members", "Active"}
	membersHeader  = []string{"Email", "Handle"}
	sprintsHeader  = []string{"Sprint", "Start", "End"}
	templateHeader = []string{"Date", "Day", "Status"}
	teamHeader     = []string{"Date", "Day"}
)

// checkHeader сверяет первую строку листа с ожидаемыми заголовками
func checkHeader(sheet string, expected []string, rows [][]string) error {
	if len(rows) == 0 {
		return domain.NewSchemaMismatchError(sheet, expected, nil)
	}
	actual := rows[0]
	if len(actual) < len(expected) {
		return domain.NewSchemaMismatchError(sheet, expected, actual)
	}
	for i, name := range expected {
		if !strings.EqualFold(strings.TrimSpace(actual[i]), name) {
			return domain.NewSchemaMismatchError(sheet, expected, actual)
		}
	}
	return nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func lastColumn(header []string) byte {
	return 'A' + byte(len(header)-1)
}

func readSheet(ctx context.Context, st store.Reader, sheet string, header []string) ([][]string, error) {
	rows, err := st.ReadRange(ctx, store.NewRange(sheet, 'A', 1, lastColumn(header), 0))
	if err != nil {
		return nil, err
	}
	if err := checkHeader(sheet, header, rows); err != nil {
		return nil, err
	}
	return rows[1:], nil
}
