package repository

import (
	"context"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

type TeamRepository interface {
	List(ctx context.Context) ([]*domain.Team, error)
	Create(ctx context.Context, team *domain.Team) error
	Update(ctx context.Context, team *domain.Team) error
}
