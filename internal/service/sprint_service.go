package service

import (
	"context"
	"time"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

type SprintService interface {
	Current(ctx context.Context, date time.Time) (domain.Sprint, error)
	Relative(ctx context.Context, date time.Time, offset int) (domain.Sprint, error)
	Progress(ctx context.Context, date time.Time) (*domain.SprintDetails, error)
}
