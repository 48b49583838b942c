package service

import (
	"context"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"github.com/gaganjakhotiya/ross/internal/calendar"
	"github.com/gaganjakhotiya/ross/internal/domain"
)

type schedulerService struct {
	reads     *Reads
	reminders ReminderService
	interval  time.Duration
	enabled   atomic.Bool
}

// NewSchedulerService создает планировщик, срабатывающий в начале каждого регионального interval
func NewSchedulerService(reads *Reads, reminders ReminderService, interval time.Duration, enabled bool) SchedulerService {
	s := &schedulerService{
		reads:     reads,
		reminders: reminders,
		interval:  interval,
	}
	s.enabled.Store(enabled)
	return s
}

func (s *schedulerService) Run(ctx context.Context) {
	for {
		timer := time.NewTimer(time.Until(nextRun(timeNow(), s.interval)))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if _, err := s.Tick(ctx, timeNow()); err != nil {
			slog.Error("Scheduled work failed", slog.Any("error", err))
		}
	}
}

// nextRun - ближайшая граница interval по региональным часам строго после now
func nextRun(now time.Time, interval time.Duration) time.Time {
	regional := calendar.Shift(now)
	return regional.Truncate(interval).Add(interval).Add(-calendar.RegionalOffset)
}

// Tick выполняет плановую работу на момент now. В час открытия кэш сбрасывается целиком,
// в остальные часы удаляются только истекшие записи. В рабочие часы собираются напоминания.
// Возвращает nil, если планировщик выключен, сейчас выходной или нерабочий час.
func (s *schedulerService) Tick(ctx context.Context, now time.Time) (*domain.ReminderDigest, error) {
	if !s.enabled.Load() || calendar.IsWeekend(now) {
		return nil, nil
	}

	if calendar.IsOpeningHour(now) {
		s.reads.FlushAll()
	} else {
		s.reads.SweepExpired()
	}

	if !calendar.IsWorkingHours(now) {
		return nil, nil
	}
	return s.RunOnce(ctx, now)
}

// RunOnce собирает напоминания независимо от состояния планировщика;
// в час закрытия не отметившиеся переводятся в UnplannedLeave
func (s *schedulerService) RunOnce(ctx context.Context, now time.Time) (*domain.ReminderDigest, error) {
	digest, err := s.reminders.Pending(ctx, now)
	if err != nil {
		return nil, err
	}

	marked := 0
	away := slices.ContainsFunc(digest.Reminders, func(r domain.Reminder) bool { return r.Kind == domain.ReminderMarkedAway })
	if calendar.IsClosingHour(now) && away {
		if marked, err = s.reminders.MarkAway(ctx, now); err != nil {
			return nil, err
		}
	}

	slog.Info("Reminders collected",
		slog.Time("at", now),
		slog.Int("sprint", digest.Sprint.ID),
		slog.Int("day", digest.Day),
		slog.Int("reminders", len(digest.Reminders)),
		slog.Int("marked_away", marked))
	return digest, nil
}

func (s *schedulerService) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
	slog.Info("Scheduler toggled", slog.Bool("enabled", enabled))
}

func (s *schedulerService) Enabled() bool {
	return s.enabled.Load()
}

// FlushCache сбрасывает все кэшированные чтения
func (s *schedulerService) FlushCache() {
	s.reads.FlushAll()
	slog.Info("Cache flushed on request")
}
