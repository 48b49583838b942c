package service

import (
	"context"
	"time"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

// SchedulerService - ежечасный цикл обслуживания кэша и напоминаний по будням
type SchedulerService interface {
	Run(ctx context.Context)
	Tick(ctx context.Context, now time.Time) (*domain.ReminderDigest, error)
	RunOnce(ctx context.Context, now time.Time) (*domain.ReminderDigest, error)
	SetEnabled(enabled bool)
	Enabled() bool
	FlushCache()
}
