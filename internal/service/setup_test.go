package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gaganjakhotiya/ross/internal/cache"
	"github.com/gaganjakhotiya/ross/internal/calendar"
	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/queue"
	"github.com/gaganjakhotiya/ross/internal/repository/sheets"
	"github.com/gaganjakhotiya/ross/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 - понедельник; 56 дней шаблона дают 4 двухнедельных спринта
var templateStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const templateDays = 56

// local - момент времени по региональным часам
func local(month time.Month, day, hour, min int) time.Time {
	return time.Date(2024, month, day, hour, min, 0, 0, time.UTC).Add(-calendar.RegionalOffset)
}

func date(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 0, 0, 0, 0, time.UTC)
}

// setNow фиксирует текущее время сервисов на время теста
func setNow(t *testing.T, now time.Time) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = prev })
}

type fixture struct {
	store      *store.MemoryStore
	memo       *cache.Memoizer
	reads      *Reads
	queue      *queue.Queue
	teams      TeamService
	members    MemberService
	attendance AttendanceService
	sprints    SprintService
	reminders  ReminderService
}

// setupServices собирает сервисы поверх документа в памяти.
// Очередь записи дренируется в фоне с коротким тиком.
func setupServices(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	st := store.NewMemoryStore()
	require.NoError(t, sheets.Bootstrap(ctx, st, templateStart, templateDays))

	teamRepo := sheets.NewTeamRepository(st)
	memberRepo := sheets.NewMemberRepository(st)
	sprintRepo := sheets.NewSprintRepository(st)
	calendarRepo := sheets.NewCalendarRepository(st)

	memo := cache.New(time.Minute, time.Hour)
	reads, err := NewReads(memo, calendar.NewIndex(st, templateStart), teamRepo, memberRepo, sprintRepo, calendarRepo)
	require.NoError(t, err)

	q := queue.New(queue.WithInterval(time.Millisecond))
	runCtx, cancel := context.WithCancel(ctx)
	go q.Run(runCtx)
	t.Cleanup(func() {
		cancel()
		_ = q.Shutdown(context.Background())
	})

	setNow(t, local(time.January, 3, 10, 0))

	return &fixture{
		store:      st,
		memo:       memo,
		reads:      reads,
		queue:      q,
		teams:      NewTeamService(reads, q, teamRepo, calendarRepo),
		members:    NewMemberService(reads, q, memberRepo),
		attendance: NewAttendanceService(reads, q, teamRepo, calendarRepo),
		sprints:    NewSprintService(reads),
		reminders:  NewReminderService(reads, q, teamRepo, calendarRepo),
	}
}

// withTeam создает команду и добавляет в нее зарегистрированных участников
func (f *fixture) withTeam(t *testing.T, name, channel string, handles ...string) *domain.Team {
	t.Helper()
	ctx := context.Background()

	team, err := f.teams.CreateTeam(ctx, &domain.Team{Name: name, ChannelID: channel, OwnerID: "owner-" + name})
	require.NoError(t, err)

	for _, handle := range handles {
		_, err := f.members.RegisterMember(ctx, &domain.Member{Email: handle + "@example.com", Handle: handle})
		if err != nil && !errors.Is(err, domain.ErrMemberExists) {
			require.NoError(t, err)
		}
		team, err = f.teams.AddMember(ctx, name, handle)
		require.NoError(t, err)
	}
	return team
}

// assertCode проверяет код доменной ошибки
func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr), "ожидалась доменная ошибка, получено %v", err)
	assert.Equal(t, code, domainErr.Code)
}
