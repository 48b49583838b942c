package sheets

import (
	"context"
	"strconv"
	"strings"

	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/store"
)

type teamRepository struct {
	store store.Store
}

func NewTeamRepository(st store.Store) *teamRepository {
	return &teamRepository{store: st}
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	rows, err := readSheet(ctx, r.store, TeamsSheet, teamsHeader)
	if err != nil {
		return nil, err
	}

	teams := make([]*domain.Team, 0, len(rows))
	for i, row := range rows {
		if cell(row, 0) == "" {
			continue
		}
		count, _ := strconv.Atoi(cell(row, 4))
		teams = append(teams, &domain.Team{
			Name:        cell(row, 0),
			ChannelID:   cell(row, 1),
			OwnerID:     cell(row, 2),
			LeaderID:    cell(row, 3),
			MemberCount: count,
			IsActive:    strings.EqualFold(cell(row, 5), "TRUE"),
			Row:         firstDataRow + i,
		})
	}

	return teams, nil
}

// Create добавляет строку команды в конец листа и назначает team.Row
func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	rows, err := readSheet(ctx, r.store, TeamsSheet, teamsHeader)
	if err != nil {
		return err
	}

	team.Row = firstDataRow + len(rows)
	return r.write(ctx, team)
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	if team.Row < firstDataRow {
		return domain.NewNotFoundError("row of team " + team.Name)
	}
	return r.write(ctx, team)
}

func (r *teamRepository) write(ctx context.Context, team *domain.Team) error {
	active := "FALSE"
	if team.IsActive {
		active = "TRUE"
	}
	return r.store.WriteRange(ctx, store.Row(TeamsSheet, 'A', lastColumn(teamsHeader), team.Row), [][]string{{
		team.Name,
		team.ChannelID,
		team.OwnerID,
		team.LeaderID,
		strconv.Itoa(team.MemberCount),
		active,
	}})
}
