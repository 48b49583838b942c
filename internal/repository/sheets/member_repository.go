package sheets

import (
	"context"

	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/store"
)

type memberRepository struct {
	store store.Store
}

func NewMemberRepository(st store.Store) *memberRepository {
	return &memberRepository{store: st}
}

func (r *memberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	rows, err := readSheet(ctx, r.store, MembersSheet, membersHeader)
	if err != nil {
		return nil, err
	}

	members := make([]*domain.Member, 0, len(rows))
	for i, row := range rows {
		if cell(row, 0) == "" {
			continue
		}
		members = append(members, &domain.Member{
			Email:  cell(row, 0),
			Handle: cell(row, 1),
			Row:    firstDataRow + i,
		})
	}

	return members, nil
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	rows, err := readSheet(ctx, r.store, MembersSheet, membersHeader)
	if err != nil {
		return err
	}

	member.Row = firstDataRow + len(rows)
	return r.store.WriteRange(ctx, store.Row(MembersSheet, 'A', 'B', member.Row), [][]string{{
		member.Email,
		member.Handle,
	}})
}
