package service

import (
	"context"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error)
	GetTeam(ctx context.Context, name string) (*domain.Team, error)
	GetTeamByChannel(ctx context.Context, channelID string) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	SetTeamActive(ctx context.Context, name string, isActive bool) (*domain.Team, error)
	SetLeader(ctx context.Context, name, leaderID string) (*domain.Team, error)
	AddMember(ctx context.Context, name, handle string) (*domain.Team, error)
}
