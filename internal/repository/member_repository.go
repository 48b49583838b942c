package repository

import (
	"context"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

type MemberRepository interface {
	List(ctx context.Context) ([]*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) error
}
