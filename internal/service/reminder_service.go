package service

import (
	"context"
	"time"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

type ReminderService interface {
	Pending(ctx context.Context, now time.Time) (*domain.ReminderDigest, error)
	MarkAway(ctx context.Context, now time.Time) (int, error)
	Leaves(ctx context.Context, at time.Time, offset int) (*domain.SprintLeaves, error)
}
