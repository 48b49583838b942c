package repository

import (
	"context"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

type DeadLetterRepository interface {
	Save(ctx context.Context, failed *domain.FailedWrite) error
	List(ctx context.Context, limit int) ([]*domain.FailedWrite, error)
}
