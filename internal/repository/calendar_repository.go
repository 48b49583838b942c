package repository

import (
	"context"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

// CalendarRepository - шаблон календаря и календарные листы команд
type CalendarRepository interface {
	TemplateDays(ctx context.Context) ([]domain.CalendarDay, error)
	TeamSheetExists(ctx context.Context, team string) (bool, error)
	CreateTeamSheet(ctx context.Context, team string, days []domain.CalendarDay) error
	Header(ctx context.Context, team string) ([]string, error)
	AddMemberColumn(ctx context.Context, team string, col byte, handle string, statuses []domain.Status) error
	ReadStatuses(ctx context.Context, team string, col byte, fromRow, toRow int) ([]domain.Status, error)
	WriteStatuses(ctx context.Context, team string, col byte, fromRow int, statuses []domain.Status) error
	ReadDay(ctx context.Context, team string, row int, members int) ([]domain.Status, error)
	MarkHoliday(ctx context.Context, row int, teamMembers map[string]int) error
}
