package service

import (
	"context"
	"time"

	"github.com/gaganjakhotiya/ross/internal/cache"
	"github.com/gaganjakhotiya/ross/internal/calendar"
	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/repository"
)

// Имена кэшируемых операций
const (
	opTeams           = "teams"
	opTeamsByName     = "teamsByName"
	opTeamsByChannel  = "teamsByChannel"
	opMembers         = "members"
	opMembersByHandle = "membersByHandle"
	opMembersByEmail  = "membersByEmail"
	opSprints         = "sprints"
	opTemplateDays    = "templateDays"
	opHolidays        = "holidays"
	opWeekends        = "weekends"
	opTeamHeader      = "teamHeader"
	opTeamDay         = "teamDay"
)

var teamOps = []string{opTeams, opTeamsByName, opTeamsByChannel}

var memberOps = []string{opMembers, opMembersByHandle, opMembersByEmail}

// Reads - кэшируемые чтения документа, общие для всех сервисов.
// Возвращаемые значения разделяются между вызовами и не должны изменяться.
type Reads struct {
	memo  *cache.Memoizer
	index *calendar.Index
}

func NewReads(
	memo *cache.Memoizer,
	index *calendar.Index,
	teamRepo repository.TeamRepository,
	memberRepo repository.MemberRepository,
	sprintRepo repository.SprintRepository,
	calendarRepo repository.CalendarRepository,
) (*Reads, error) {
	r := &Reads{memo: memo, index: index}

	registrations := []struct {
		op     string
		tier   cache.Tier
		loader cache.Loader
	}{
		{opTeams, cache.Short, func(ctx context.Context, _ ...any) (any, error) {
			return teamRepo.List(ctx)
		}},
		{opTeamsByName, cache.Short, func(ctx context.Context, _ ...any) (any, error) {
			teams, err := r.Teams(ctx)
			if err != nil {
				return nil, err
			}
			byName := make(map[string]*domain.Team, len(teams))
			for _, t := range teams {
				byName[t.Name] = t
			}
			return byName, nil
		}},
		{opTeamsByChannel, cache.Short, func(ctx context.Context, _ ...any) (any, error) {
			teams, err := r.Teams(ctx)
			if err != nil {
				return nil, err
			}
			byChannel := make(map[string]*domain.Team, len(teams))
			for _, t := range teams {
				byChannel[t.ChannelID] = t
			}
			return byChannel, nil
		}},
		{opMembers, cache.Short, func(ctx context.Context, _ ...any) (any, error) {
			return memberRepo.List(ctx)
		}},
		{opMembersByHandle, cache.Short, func(ctx context.Context, _ ...any) (any, error) {
			members, err := cache.Call[[]*domain.Member](ctx, memo, opMembers)
			if err != nil {
				return nil, err
			}
			byHandle := make(map[string]*domain.Member, len(members))
			for _, m := range members {
				byHandle[m.Handle] = m
			}
			return byHandle, nil
		}},
		{opMembersByEmail, cache.Short, func(ctx context.Context, _ ...any) (any, error) {
			members, err := cache.Call[[]*domain.Member](ctx, memo, opMembers)
			if err != nil {
				return nil, err
			}
			byEmail := make(map[string]*domain.Member, len(members))
			for _, m := range members {
				byEmail[m.Email] = m
			}
			return byEmail, nil
		}},
		{opSprints, cache.Long, func(ctx context.Context, _ ...any) (any, error) {
			return sprintRepo.List(ctx)
		}},
		{opTemplateDays, cache.Long, func(ctx context.Context, _ ...any) (any, error) {
			return calendarRepo.TemplateDays(ctx)
		}},
		{opHolidays, cache.Long, func(ctx context.Context, args ...any) (any, error) {
			start, end, err := dateArgs(args)
			if err != nil {
				return nil, err
			}
			return index.HolidaysBetween(ctx, start, end)
		}},
		{opWeekends, cache.Long, func(ctx context.Context, args ...any) (any, error) {
			start, end, err := dateArgs(args)
			if err != nil {
				return nil, err
			}
			return index.WeekendsBetween(ctx, start, end)
		}},
		{opTeamHeader, cache.Long, func(ctx context.Context, args ...any) (any, error) {
			return calendarRepo.Header(ctx, args[0].(string))
		}},
		{opTeamDay, cache.Short, func(ctx context.Context, args ...any) (any, error) {
			team := args[0].(string)
			header, err := r.TeamHeader(ctx, team)
			if err != nil {
				return nil, err
			}
			return calendarRepo.ReadDay(ctx, team, args[1].(int), len(header))
		}},
	}

	for _, reg := range registrations {
		if err := memo.Register(reg.op, reg.tier, reg.loader); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func dateArgs(args []any) (time.Time, time.Time, error) {
	start, err := calendar.ParseDate(args[0].(string))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := calendar.ParseDate(args[1].(string))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func (r *Reads) Index() *calendar.Index {
	return r.index
}

func (r *Reads) Teams(ctx context.Context) ([]*domain.Team, error) {
	return cache.Call[[]*domain.Team](ctx, r.memo, opTeams)
}

func (r *Reads) TeamByName(ctx context.Context, name string) (*domain.Team, error) {
	byName, err := cache.Call[map[string]*domain.Team](ctx, r.memo, opTeamsByName)
	if err != nil {
		return nil, err
	}
	team, ok := byName[name]
	if !ok {
		return nil, domain.NewNotFoundError("team with name " + name)
	}
	return team, nil
}

func (r *Reads) TeamByChannel(ctx context.Context, channel string) (*domain.Team, error) {
	byChannel, err := cache.Call[map[string]*domain.Team](ctx, r.memo, opTeamsByChannel)
	if err != nil {
		return nil, err
	}
	team, ok := byChannel[channel]
	if !ok {
		return nil, domain.NewNotFoundError("team with channel " + channel)
	}
	return team, nil
}

func (r *Reads) MemberByHandle(ctx context.Context, handle string) (*domain.Member, error) {
	byHandle, err := cache.Call[map[string]*domain.Member](ctx, r.memo, opMembersByHandle)
	if err != nil {
		return nil, err
	}
	member, ok := byHandle[handle]
	if !ok {
		return nil, domain.NewNotFoundError("member with handle " + handle)
	}
	return member, nil
}

func (r *Reads) MemberByEmail(ctx context.Context, email string) (*domain.Member, error) {
	byEmail, err := cache.Call[map[string]*domain.Member](ctx, r.memo, opMembersByEmail)
	if err != nil {
		return nil, err
	}
	member, ok := byEmail[email]
	if !ok {
		return nil, domain.NewNotFoundError("member with email " + email)
	}
	return member, nil
}

func (r *Reads) Sprints(ctx context.Context) ([]domain.Sprint, error) {
	return cache.Call[[]domain.Sprint](ctx, r.memo, opSprints)
}

func (r *Reads) TemplateDays(ctx context.Context) ([]domain.CalendarDay, error) {
	return cache.Call[[]domain.CalendarDay](ctx, r.memo, opTemplateDays)
}

func (r *Reads) Holidays(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	return cache.Call[[]time.Time](ctx, r.memo, opHolidays, calendar.FormatDate(start), calendar.FormatDate(end))
}

func (r *Reads) Weekends(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	return cache.Call[[]time.Time](ctx, r.memo, opWeekends, calendar.FormatDate(start), calendar.FormatDate(end))
}

// TeamHeader - handle участников команды в порядке колонок
func (r *Reads) TeamHeader(ctx context.Context, team string) ([]string, error) {
	return cache.Call[[]string](ctx, r.memo, opTeamHeader, team)
}

// TeamDay - статусы участников команды в строке календаря
func (r *Reads) TeamDay(ctx context.Context, team string, row int) ([]domain.Status, error) {
	return cache.Call[[]domain.Status](ctx, r.memo, opTeamDay, team, row)
}

// RowForDate переводит дату в строку календаря и проверяет, что шаблон ее покрывает
func (r *Reads) RowForDate(ctx context.Context, date time.Time) (int, error) {
	row, err := r.index.RowForDate(date)
	if err != nil {
		return 0, err
	}
	days, err := r.TemplateDays(ctx)
	if err != nil {
		return 0, err
	}
	if last := calendar.HeaderRows + len(days) - 1; row > last {
		end := r.index.TemplateStart().AddDate(0, 0, len(days)-1)
		return 0, domain.NewAfterRangeError(calendar.FormatDate(date), calendar.FormatDate(end))
	}
	return row, nil
}

func (r *Reads) invalidate(ops ...string) {
	for _, op := range ops {
		r.memo.InvalidateNamespace(op)
	}
}

// InvalidateTeams сбрасывает список команд и производные индексы
func (r *Reads) InvalidateTeams() {
	r.invalidate(teamOps...)
}

func (r *Reads) InvalidateMembers() {
	r.invalidate(memberOps...)
}

// InvalidateCalendar сбрасывает шаблон и все производные от него чтения
func (r *Reads) InvalidateCalendar() {
	r.invalidate(opTemplateDays, opHolidays, opWeekends, opTeamDay)
}

func (r *Reads) InvalidateTeamCalendars() {
	r.invalidate(opTeamHeader, opTeamDay)
}

func (r *Reads) FlushAll() {
	r.memo.FlushAll()
}

// SweepExpired удаляет только истекшие записи
func (r *Reads) SweepExpired() {
	r.memo.SweepExpired()
}
