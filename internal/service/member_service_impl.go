package service

import (
	"context"
	"strings"

	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/queue"
	"github.com/gaganjakhotiya/ross/internal/repository"
)

type memberService struct {
	reads      *Reads
	queue      *queue.Queue
	memberRepo repository.MemberRepository
}

// NewMemberService создает новый экземпляр MemberService
func NewMemberService(reads *Reads, q *queue.Queue, memberRepo repository.MemberRepository) MemberService {
	return &memberService{
		reads:      reads,
		queue:      q,
		memberRepo: memberRepo,
	}
}

// RegisterMember добавляет участника в конец листа Members; email и handle уникальны
func (s *memberService) RegisterMember(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	email := strings.TrimSpace(member.Email)
	handle := strings.TrimSpace(member.Handle)
	if email == "" || handle == "" {
		return nil, domain.NewBadRequestError("member email and handle are required")
	}

	created, err := submit(ctx, s.queue, "registerMember "+handle, func(ctx context.Context) (*domain.Member, error) {
		members, err := s.memberRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			if m.Email == email || m.Handle == handle {
				return nil, domain.ErrMemberExists
			}
		}

		created := &domain.Member{Email: email, Handle: handle}
		if err := s.memberRepo.Create(ctx, created); err != nil {
			return nil, err
		}
		return created, nil
	})
	if err != nil {
		return nil, err
	}

	s.reads.InvalidateMembers()
	return created, nil
}

func (s *memberService) GetByHandle(ctx context.Context, handle string) (*domain.Member, error) {
	member, err := s.reads.MemberByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	copied := *member
	return &copied, nil
}

func (s *memberService) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	member, err := s.reads.MemberByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	copied := *member
	return &copied, nil
}
