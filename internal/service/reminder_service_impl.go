package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/gaganjakhotiya/ross/internal/calendar"
	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/queue"
	"github.com/gaganjakhotiya/ross/internal/repository"
	"golang.org/x/sync/errgroup"
)

type reminderService struct {
	reads        *Reads
	queue        *queue.Queue
	teamRepo     repository.TeamRepository
	calendarRepo repository.CalendarRepository
}

// NewReminderService создает новый экземпляр ReminderService
func NewReminderService(
	reads *Reads,
	q *queue.Queue,
	teamRepo repository.TeamRepository,
	calendarRepo repository.CalendarRepository,
) ReminderService {
	return &reminderService{
		reads:        reads,
		queue:        q,
		teamRepo:     teamRepo,
		calendarRepo: calendarRepo,
	}
}

// Pending собирает напоминания активным командам на момент now.
// В час открытия - кто еще не отметился и кто в отпуске, в час закрытия - кто так и не
// отметился и чьи отметки не подтверждены. В выходные, праздники и вне рабочих часов пусто.
func (s *reminderService) Pending(ctx context.Context, now time.Time) (*domain.ReminderDigest, error) {
	digest := &domain.ReminderDigest{At: now, Reminders: []domain.Reminder{}}
	if calendar.IsWeekend(now) {
		return digest, nil
	}

	table, err := s.reads.Sprints(ctx)
	if err != nil {
		return nil, err
	}
	sprint, err := calendar.SprintContaining(now, table)
	if err != nil {
		return nil, err
	}
	holidays, err := s.reads.Holidays(ctx, sprint.Start, sprint.End)
	if err != nil {
		return nil, err
	}
	today := calendar.Day(now)
	if slices.ContainsFunc(holidays, func(h time.Time) bool { return calendar.Day(h).Equal(today) }) {
		return digest, nil
	}

	progress := calendar.SprintProgress(now, sprint, holidays)
	digest.Sprint = sprint
	digest.Day = progress.CompletedDays + 1
	digest.SprintStart = progress.CompletedDays == 0
	digest.SprintEnd = progress.RemainingDays == 1

	if !calendar.IsWorkingHours(now) {
		return digest, nil
	}

	statuses, err := s.teamStatuses(ctx, now)
	if err != nil {
		return nil, err
	}

	opening := calendar.IsOpeningHour(now)
	closing := calendar.IsClosingHour(now)
	for _, ts := range statuses {
		for _, ds := range ts.members {
			kind, ok := reminderKind(ds.Status, opening, closing)
			if !ok {
				continue
			}
			digest.Reminders = append(digest.Reminders, domain.Reminder{
				Kind:    kind,
				Team:    ts.team.Name,
				Channel: ts.team.ChannelID,
				Handle:  ds.Handle,
				Status:  ds.Status,
			})
		}
	}

	switch {
	case opening && digest.SprintStart:
		if digest.Leaves, err = s.Leaves(ctx, now, 0); err != nil {
			return nil, err
		}
		if digest.PreviousLeaves, err = s.adjacentLeaves(ctx, now, -1); err != nil {
			return nil, err
		}
	case opening && digest.SprintEnd:
		if digest.NextLeaves, err = s.adjacentLeaves(ctx, now, 1); err != nil {
			return nil, err
		}
	}

	return digest, nil
}

// adjacentLeaves - сводка соседнего спринта; nil, если его нет в таблице или в календаре
func (s *reminderService) adjacentLeaves(ctx context.Context, at time.Time, offset int) (*domain.SprintLeaves, error) {
	leaves, err := s.Leaves(ctx, at, offset)
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrOutOfRange) {
		return nil, nil
	}
	return leaves, err
}

// Leaves собирает дни планового и внепланового отпуска участников активных команд
// за спринт со смещением offset от спринта, содержащего at
func (s *reminderService) Leaves(ctx context.Context, at time.Time, offset int) (*domain.SprintLeaves, error) {
	table, err := s.reads.Sprints(ctx)
	if err != nil {
		return nil, err
	}
	var sprint domain.Sprint
	if offset == 0 {
		sprint, err = calendar.SprintContaining(at, table)
	} else {
		sprint, err = calendar.SprintRelativeTo(at, offset, table)
	}
	if err != nil {
		return nil, err
	}

	fromRow, err := s.reads.RowForDate(ctx, sprint.Start)
	if err != nil {
		return nil, err
	}
	toRow, err := s.reads.RowForDate(ctx, sprint.End)
	if err != nil {
		return nil, err
	}
	teams, err := s.reads.Teams(ctx)
	if err != nil {
		return nil, err
	}
	templateStart := s.reads.Index().TemplateStart()

	var mu sync.Mutex
	result := make([]teamLeaves, 0, len(teams))

	g, gctx := errgroup.WithContext(ctx)
	for _, team := range teams {
		if !team.IsActive {
			continue
		}
		g.Go(func() error {
			header, err := s.reads.TeamHeader(gctx, team.Name)
			if err != nil {
				return err
			}

			members := make([]domain.MemberLeaves, 0, len(header))
			for i, handle := range header {
				col, err := calendar.ColumnForOrdinal(calendar.FirstMemberColumn, i)
				if err != nil {
					return err
				}
				statuses, err := s.calendarRepo.ReadStatuses(gctx, team.Name, col, fromRow, toRow)
				if err != nil {
					return err
				}

				ml := domain.MemberLeaves{Handle: handle, Planned: []time.Time{}, Unplanned: []time.Time{}}
				for j, status := range statuses {
					date := calendar.DateForRow(fromRow+j, templateStart)
					switch status {
					case domain.StatusPlannedLeave:
						ml.Planned = append(ml.Planned, date)
					case domain.StatusUnplannedLeave:
						ml.Unplanned = append(ml.Unplanned, date)
					}
				}
				members = append(members, ml)
			}

			mu.Lock()
			result = append(result, teamLeaves{team: team, members: members})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(result, func(a, b teamLeaves) int { return a.team.Row - b.team.Row })

	summary := &domain.SprintLeaves{Sprint: sprint, Teams: make([]domain.TeamLeaves, 0, len(result))}
	for _, tl := range result {
		summary.Teams = append(summary.Teams, domain.TeamLeaves{
			Team:    tl.team.Name,
			Channel: tl.team.ChannelID,
			Members: tl.members,
		})
	}
	return summary, nil
}

type teamLeaves struct {
	team    *domain.Team
	members []domain.MemberLeaves
}

func reminderKind(status domain.Status, opening, closing bool) (domain.ReminderKind, bool) {
	pendingCheckIn := status == domain.StatusYetToPlan || status == domain.StatusAvailable

	switch {
	case opening && pendingCheckIn:
		return domain.ReminderCheckIn, true
	case opening && status == domain.StatusPlannedLeave:
		return domain.ReminderOnLeave, true
	case opening:
		return "", false
	case closing && pendingCheckIn:
		return domain.ReminderMarkedAway, true
	case pendingCheckIn:
		return domain.ReminderCheckIn, true
	case status == domain.StatusCheckedIn:
		return domain.ReminderAcknowledge, true
	}
	return "", false
}

// MarkAway переводит не отметившихся за день участников активных команд в UnplannedLeave
func (s *reminderService) MarkAway(ctx context.Context, now time.Time) (int, error) {
	if calendar.IsWeekend(now) {
		return 0, nil
	}
	row, err := s.reads.RowForDate(ctx, now)
	if err != nil {
		return 0, err
	}

	label := "markAway " + calendar.FormatDate(now)
	marked, err := submit(ctx, s.queue, label, func(ctx context.Context) (int, error) {
		days, err := s.calendarRepo.TemplateDays(ctx)
		if err != nil {
			return 0, err
		}
		if days[row-calendar.HeaderRows].Holiday {
			return 0, nil
		}

		teams, err := s.teamRepo.List(ctx)
		if err != nil {
			return 0, err
		}

		marked := 0
		for _, team := range teams {
			if !team.IsActive {
				continue
			}
			header, err := s.calendarRepo.Header(ctx, team.Name)
			if err != nil {
				return marked, err
			}
			statuses, err := s.calendarRepo.ReadDay(ctx, team.Name, row, len(header))
			if err != nil {
				return marked, err
			}
			for i, status := range statuses {
				if status != domain.StatusYetToPlan && status != domain.StatusAvailable {
					continue
				}
				col, err := calendar.ColumnForOrdinal(calendar.FirstMemberColumn, i)
				if err != nil {
					return marked, err
				}
				if err := s.calendarRepo.WriteStatuses(ctx, team.Name, col, row, []domain.Status{domain.StatusUnplannedLeave}); err != nil {
					return marked, fmt.Errorf("team %s member %s: %w", team.Name, header[i], err)
				}
				marked++
			}
		}
		return marked, nil
	})
	if err != nil {
		return 0, err
	}

	s.reads.invalidate(opTeamDay)
	slog.Info("Pending check-ins marked as away", slog.String("date", calendar.FormatDate(now)), slog.Int("members", marked))
	return marked, nil
}

type teamStatus struct {
	team    *domain.Team
	members []domain.DayStatus
}

// teamStatuses параллельно читает статусы дня всех активных команд
func (s *reminderService) teamStatuses(ctx context.Context, now time.Time) ([]teamStatus, error) {
	teams, err := s.reads.Teams(ctx)
	if err != nil {
		return nil, err
	}
	row, err := s.reads.RowForDate(ctx, now)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	result := make([]teamStatus, 0, len(teams))

	g, gctx := errgroup.WithContext(ctx)
	for _, team := range teams {
		if !team.IsActive {
			continue
		}
		g.Go(func() error {
			header, err := s.reads.TeamHeader(gctx, team.Name)
			if err != nil {
				return err
			}
			statuses, err := s.reads.TeamDay(gctx, team.Name, row)
			if err != nil {
				return err
			}

			members := make([]domain.DayStatus, 0, len(header))
			for i, handle := range header {
				status := domain.StatusYetToPlan
				if i < len(statuses) {
					status = statuses[i]
				}
				members = append(members, domain.DayStatus{Handle: handle, Status: status})
			}

			mu.Lock()
			result = append(result, teamStatus{team: team, members: members})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// порядок команд как в листе Teams
	slices.SortFunc(result, func(a, b teamStatus) int { return a.team.Row - b.team.Row })
	return result, nil
}
