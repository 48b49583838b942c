package service

import (
	"context"
	"log/slog"

	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/queue"
	"github.com/gaganjakhotiya/ross/internal/repository"
)

// NewDeadLetterHandler сохраняет упавшие задачи очереди записи в repo
func NewDeadLetterHandler(repo repository.DeadLetterRepository) queue.FailureHandler {
	return func(ctx context.Context, p *queue.Pending) {
		failed := &domain.FailedWrite{
			ID:       p.ID,
			Label:    p.Label,
			FailedAt: timeNow().UTC(),
		}
		if err := p.Err(); err != nil {
			failed.Error = err.Error()
		}

		if err := repo.Save(ctx, failed); err != nil {
			slog.Error("Failed to save dead letter",
				slog.String("task_id", p.ID),
				slog.String("label", p.Label),
				slog.Any("error", err))
		}
	}
}
