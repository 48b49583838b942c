package service

import (
	"context"
	"time"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

type AttendanceService interface {
	UpdateStatus(ctx context.Context, team, handle string, date time.Time, status domain.Status) (bool, error)
	PlanLeave(ctx context.Context, team, handle string, start, end time.Time) ([]time.Time, error)
	MarkHoliday(ctx context.Context, date time.Time) error
	SetMemberActive(ctx context.Context, team, handle string, isActive bool, from, to time.Time) (int, error)
	DayStatus(ctx context.Context, team string, date time.Time) ([]domain.DayStatus, error)
}
