package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/gaganjakhotiya/ross/internal/calendar"
	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/queue"
	"github.com/gaganjakhotiya/ross/internal/repository"
	"github.com/gaganjakhotiya/ross/internal/repository/sheets"
)

// служебные листы документа, имена команд с ними совпадать не могут
var reservedSheets = []string{sheets.TeamsSheet, sheets.MembersSheet, sheets.SprintsSheet, calendar.TemplateSheet}

type teamService struct {
	reads        *Reads
	queue        *queue.Queue
	teamRepo     repository.TeamRepository
	calendarRepo repository.CalendarRepository
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(
	reads *Reads,
	q *queue.Queue,
	teamRepo repository.TeamRepository,
	calendarRepo repository.CalendarRepository,
) TeamService {
	return &teamService{
		reads:        reads,
		queue:        q,
		teamRepo:     teamRepo,
		calendarRepo: calendarRepo,
	}
}

// CreateTeam регистрирует команду и создает ее календарь из шаблона
func (s *teamService) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	if team.Name == "" || team.ChannelID == "" || team.OwnerID == "" {
		return nil, domain.NewBadRequestError("team name, channel and owner are required")
	}
	if slices.Contains(reservedSheets, team.Name) {
		return nil, domain.NewBadRequestError("team name " + team.Name + " is reserved")
	}

	created := &domain.Team{
		Name:      team.Name,
		ChannelID: team.ChannelID,
		OwnerID:   team.OwnerID,
		LeaderID:  team.LeaderID,
		IsActive:  true,
	}
	if created.LeaderID == "" {
		created.LeaderID = created.OwnerID
	}

	result, err := submit(ctx, s.queue, "createTeam "+team.Name, func(ctx context.Context) (*domain.Team, error) {
		teams, err := s.teamRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, t := range teams {
			if t.Name == created.Name || t.ChannelID == created.ChannelID {
				return nil, domain.ErrTeamExists
			}
		}
		// лист без строки в Teams остается от прерванной регистрации
		orphan, err := s.calendarRepo.TeamSheetExists(ctx, created.Name)
		if err != nil {
			return nil, err
		}
		if orphan {
			slog.Warn("Resuming onboarding over existing team sheet", slog.String("team", created.Name))
		}

		days, err := s.calendarRepo.TemplateDays(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.calendarRepo.CreateTeamSheet(ctx, created.Name, days); err != nil {
			return nil, err
		}
		if err := s.teamRepo.Create(ctx, created); err != nil {
			return nil, err
		}
		return created, nil
	})
	if err != nil {
		return nil, err
	}

	s.reads.FlushAll()
	slog.Info("Team onboarded", slog.String("team", result.Name), slog.Int("row", result.Row))

	result.Members = []domain.TeamMember{}
	return result, nil
}

// GetTeam получает команду с участниками по имени
func (s *teamService) GetTeam(ctx context.Context, name string) (*domain.Team, error) {
	team, err := s.reads.TeamByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.withMembers(ctx, team)
}

func (s *teamService) GetTeamByChannel(ctx context.Context, channelID string) (*domain.Team, error) {
	team, err := s.reads.TeamByChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	return s.withMembers(ctx, team)
}

func (s *teamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	teams, err := s.reads.Teams(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Team, 0, len(teams))
	for _, t := range teams {
		copied := *t
		result = append(result, &copied)
	}
	return result, nil
}

func (s *teamService) SetTeamActive(ctx context.Context, name string, isActive bool) (*domain.Team, error) {
	return s.updateTeam(ctx, "setTeamActive "+name, name, func(t *domain.Team) {
		t.IsActive = isActive
	})
}

// SetLeader меняет ведущего команды
func (s *teamService) SetLeader(ctx context.Context, name, leaderID string) (*domain.Team, error) {
	if leaderID == "" {
		return nil, domain.NewBadRequestError("leader is required")
	}
	return s.updateTeam(ctx, "setLeader "+name, name, func(t *domain.Team) {
		t.LeaderID = leaderID
	})
}

// AddMember добавляет зарегистрированного участника в календарь команды отдельной колонкой
func (s *teamService) AddMember(ctx context.Context, name, handle string) (*domain.Team, error) {
	if _, err := s.reads.MemberByHandle(ctx, handle); err != nil {
		return nil, err
	}

	updated, err := submit(ctx, s.queue, "addMember "+name+"/"+handle, func(ctx context.Context) (*domain.Team, error) {
		team, err := s.freshTeam(ctx, name)
		if err != nil {
			return nil, err
		}

		header, err := s.calendarRepo.Header(ctx, name)
		if err != nil {
			return nil, err
		}
		if slices.Contains(header, handle) {
			return nil, &domain.DomainError{
				Code:    domain.CodeMemberExists,
				Message: "member " + handle + " is already part of team " + name,
			}
		}
		col, err := calendar.ColumnForOrdinal(calendar.FirstMemberColumn, len(header))
		if err != nil {
			return nil, err
		}

		days, err := s.calendarRepo.TemplateDays(ctx)
		if err != nil {
			return nil, err
		}
		statuses := make([]domain.Status, len(days))
		for i, d := range days {
			statuses[i] = domain.InitialStatus(d)
		}
		if err := s.calendarRepo.AddMemberColumn(ctx, name, col, handle, statuses); err != nil {
			return nil, err
		}

		team.MemberCount = len(header) + 1
		team.IsActive = true
		if err := s.teamRepo.Update(ctx, team); err != nil {
			return nil, err
		}
		return team, nil
	})
	if err != nil {
		return nil, err
	}

	s.reads.InvalidateTeams()
	s.reads.InvalidateTeamCalendars()

	return s.withMembers(ctx, updated)
}

// updateTeam перечитывает строку команды внутри задачи очереди и перезаписывает ее целиком
func (s *teamService) updateTeam(ctx context.Context, label, name string, apply func(t *domain.Team)) (*domain.Team, error) {
	updated, err := submit(ctx, s.queue, label, func(ctx context.Context) (*domain.Team, error) {
		team, err := s.freshTeam(ctx, name)
		if err != nil {
			return nil, err
		}
		apply(team)
		if err := s.teamRepo.Update(ctx, team); err != nil {
			return nil, err
		}
		return team, nil
	})
	if err != nil {
		return nil, err
	}

	s.reads.InvalidateTeams()
	return updated, nil
}

func (s *teamService) freshTeam(ctx context.Context, name string) (*domain.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range teams {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, domain.NewNotFoundError("team with name " + name)
}

// withMembers возвращает копию команды с участниками из заголовка календаря
func (s *teamService) withMembers(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	header, err := s.reads.TeamHeader(ctx, team.Name)
	if err != nil {
		return nil, err
	}

	result := *team
	result.Members = make([]domain.TeamMember, 0, len(header))
	for i, handle := range header {
		result.Members = append(result.Members, domain.TeamMember{Handle: handle, Ordinal: i})
	}
	return &result, nil
}
