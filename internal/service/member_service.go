package service

import (
	"context"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

type MemberService interface {
	RegisterMember(ctx context.Context, member *domain.Member) (*domain.Member, error)
	GetByHandle(ctx context.Context, handle string) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
}
