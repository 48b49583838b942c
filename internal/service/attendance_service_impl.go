package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/gaganjakhotiya/ross/internal/calendar"
	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/queue"
	"github.com/gaganjakhotiya/ross/internal/repository"
	"golang.org/x/sync/errgroup"
)

type attendanceService struct {
	reads        *Reads
	queue        *queue.Queue
	teamRepo     repository.TeamRepository
	calendarRepo repository.CalendarRepository
}

// NewAttendanceService создает новый экземпляр AttendanceService
func NewAttendanceService(
	reads *Reads,
	q *queue.Queue,
	teamRepo repository.TeamRepository,
	calendarRepo repository.CalendarRepository,
) AttendanceService {
	return &attendanceService{
		reads:        reads,
		queue:        q,
		teamRepo:     teamRepo,
		calendarRepo: calendarRepo,
	}
}

// UpdateStatus меняет статус участника на дату по таблице переходов.
// Возвращает false, если статус уже был таким.
func (s *attendanceService) UpdateStatus(ctx context.Context, team, handle string, date time.Time, status domain.Status) (bool, error) {
	if !status.Valid() {
		return false, domain.NewBadRequestError(fmt.Sprintf("invalid status %d", status))
	}
	if _, err := s.reads.TeamByName(ctx, team); err != nil {
		return false, err
	}
	row, err := s.reads.RowForDate(ctx, date)
	if err != nil {
		return false, err
	}

	label := fmt.Sprintf("updateStatus %s/%s %s", team, handle, calendar.FormatDate(date))
	changed, err := submit(ctx, s.queue, label, func(ctx context.Context) (bool, error) {
		col, err := s.memberColumn(ctx, team, handle)
		if err != nil {
			return false, err
		}
		current, err := s.calendarRepo.ReadStatuses(ctx, team, col, row, row)
		if err != nil {
			return false, err
		}
		changed, err := domain.ApplyTransition(current[0], status)
		if err != nil || !changed {
			return false, err
		}
		return true, s.calendarRepo.WriteStatuses(ctx, team, col, row, []domain.Status{status})
	})
	if err != nil {
		return false, err
	}

	if changed {
		s.reads.invalidate(opTeamDay)
	}
	return changed, nil
}

// PlanLeave отмечает плановый отпуск с start по end включительно.
// Отпуск планируется минимум за спринт: даты должны лежать в следующем спринте.
// Выходные и праздники пропускаются.
// Колонка участника перезаписывается одной записью.
func (s *attendanceService) PlanLeave(ctx context.Context, team, handle string, start, end time.Time) ([]time.Time, error) {
	start, end = calendar.Day(start), calendar.Day(end)
	if end.Before(start) {
		return nil, domain.NewBadRequestError("leave end date precedes start date")
	}

	now := timeNow()
	table, err := s.reads.Sprints(ctx)
	if err != nil {
		return nil, err
	}
	current, err := calendar.SprintContaining(now, table)
	if err != nil {
		return nil, err
	}
	next, err := calendar.SprintRelativeTo(now, 1, table)
	if err != nil {
		return nil, err
	}
	if !start.After(calendar.Day(current.End)) {
		return nil, domain.NewBadRequestError(fmt.Sprintf(
			"leave dates must be beyond current sprint end date (%s)", calendar.FormatDate(current.End)))
	}
	if end.After(calendar.Day(next.End)) {
		return nil, domain.NewBadRequestError(fmt.Sprintf(
			"leave must fall within sprint %d (until %s)", next.ID, calendar.FormatDate(next.End)))
	}

	if _, err := s.reads.TeamByName(ctx, team); err != nil {
		return nil, err
	}
	fromRow, err := s.reads.RowForDate(ctx, start)
	if err != nil {
		return nil, err
	}
	toRow, err := s.reads.RowForDate(ctx, end)
	if err != nil {
		return nil, err
	}
	days, err := s.reads.TemplateDays(ctx)
	if err != nil {
		return nil, err
	}
	days = days[fromRow-calendar.HeaderRows : toRow-calendar.HeaderRows+1]

	label := fmt.Sprintf("planLeave %s/%s %s..%s", team, handle, calendar.FormatDate(start), calendar.FormatDate(end))
	planned, err := submit(ctx, s.queue, label, func(ctx context.Context) ([]time.Time, error) {
		col, err := s.memberColumn(ctx, team, handle)
		if err != nil {
			return nil, err
		}
		statuses, err := s.calendarRepo.ReadStatuses(ctx, team, col, fromRow, toRow)
		if err != nil {
			return nil, err
		}

		planned := make([]time.Time, 0, len(days))
		dirty := false
		for i, d := range days {
			if d.Weekend || d.Holiday {
				continue
			}
			changed, err := domain.ApplyTransition(statuses[i], domain.StatusPlannedLeave)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", calendar.FormatDate(d.Date), err)
			}
			if changed {
				statuses[i] = domain.StatusPlannedLeave
				dirty = true
			}
			planned = append(planned, d.Date)
		}

		if dirty {
			if err := s.calendarRepo.WriteStatuses(ctx, team, col, fromRow, statuses); err != nil {
				return nil, err
			}
		}
		return planned, nil
	})
	if err != nil {
		return nil, err
	}

	s.reads.invalidate(opTeamDay)
	return planned, nil
}

// MarkHoliday отмечает праздник в шаблоне и у всех участников всех команд
func (s *attendanceService) MarkHoliday(ctx context.Context, date time.Time) error {
	if calendar.Day(date).Before(calendar.Day(timeNow())) {
		return domain.NewBadRequestError("holiday date must not be in the past")
	}
	row, err := s.reads.RowForDate(ctx, date)
	if err != nil {
		return err
	}

	_, err = submit(ctx, s.queue, "markHoliday "+calendar.FormatDate(date), func(ctx context.Context) (struct{}, error) {
		teams, err := s.teamRepo.List(ctx)
		if err != nil {
			return struct{}{}, err
		}
		teamMembers := make(map[string]int, len(teams))
		for _, t := range teams {
			teamMembers[t.Name] = t.MemberCount
		}
		return struct{}{}, s.calendarRepo.MarkHoliday(ctx, row, teamMembers)
	})
	if err != nil {
		return err
	}

	s.reads.InvalidateCalendar()
	return nil
}

// SetMemberActive выключает участника (Inactive) или возвращает его (YetToPlan) на период.
// Праздники не трогаются; нулевой to означает конец календаря.
func (s *attendanceService) SetMemberActive(ctx context.Context, team, handle string, isActive bool, from, to time.Time) (int, error) {
	from = calendar.Day(from)
	if !from.After(calendar.Day(timeNow())) {
		return 0, domain.NewBadRequestError("from date must be in the future")
	}

	days, err := s.reads.TemplateDays(ctx)
	if err != nil {
		return 0, err
	}
	if to.IsZero() {
		if len(days) == 0 {
			return 0, domain.NewNotFoundError("calendar days")
		}
		to = days[len(days)-1].Date
	}
	to = calendar.Day(to)
	if to.Before(from) {
		return 0, domain.NewBadRequestError("to date precedes from date")
	}

	if _, err := s.reads.TeamByName(ctx, team); err != nil {
		return 0, err
	}
	fromRow, err := s.reads.RowForDate(ctx, from)
	if err != nil {
		return 0, err
	}
	toRow, err := s.reads.RowForDate(ctx, to)
	if err != nil {
		return 0, err
	}

	target := domain.StatusInactive
	if isActive {
		target = domain.StatusYetToPlan
	}

	label := fmt.Sprintf("setMemberActive %s/%s %t", team, handle, isActive)
	updated, err := submit(ctx, s.queue, label, func(ctx context.Context) (int, error) {
		col, err := s.memberColumn(ctx, team, handle)
		if err != nil {
			return 0, err
		}
		statuses, err := s.calendarRepo.ReadStatuses(ctx, team, col, fromRow, toRow)
		if err != nil {
			return 0, err
		}

		updated := 0
		for i, current := range statuses {
			if current == domain.StatusHoliday {
				continue
			}
			if isActive && current != domain.StatusInactive {
				continue
			}
			changed, err := domain.ApplyTransition(current, target)
			if err != nil {
				return 0, err
			}
			if changed {
				statuses[i] = target
				updated++
			}
		}

		if updated == 0 {
			return 0, nil
		}
		return updated, s.calendarRepo.WriteStatuses(ctx, team, col, fromRow, statuses)
	})
	if err != nil {
		return 0, err
	}

	s.reads.invalidate(opTeamDay)
	return updated, nil
}

// DayStatus возвращает статусы всех участников команды на дату
func (s *attendanceService) DayStatus(ctx context.Context, team string, date time.Time) ([]domain.DayStatus, error) {
	var (
		row    int
		header []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.reads.TeamByName(gctx, team)
		return err
	})
	g.Go(func() error {
		var err error
		row, err = s.reads.RowForDate(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		header, err = s.reads.TeamHeader(gctx, team)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	statuses, err := s.reads.TeamDay(ctx, team, row)
	if err != nil {
		return nil, err
	}

	result := make([]domain.DayStatus, 0, len(header))
	for i, handle := range header {
		status := domain.StatusYetToPlan
		if i < len(statuses) {
			status = statuses[i]
		}
		result = append(result, domain.DayStatus{Handle: handle, Status: status})
	}
	return result, nil
}

// memberColumn читает заголовок команды без кэша и возвращает колонку участника
func (s *attendanceService) memberColumn(ctx context.Context, team, handle string) (byte, error) {
	header, err := s.calendarRepo.Header(ctx, team)
	if err != nil {
		return 0, err
	}
	ordinal := slices.Index(header, handle)
	if ordinal < 0 {
		return 0, domain.NewNotFoundError("member " + handle + " in team " + team)
	}
	return calendar.ColumnForOrdinal(calendar.FirstMemberColumn, ordinal)
}
