package service

import (
	"context"

	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

type MockSprintRepository struct {
	mock.Mock
}

func (m *MockSprintRepository) List(ctx context.Context) ([]domain.Sprint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sprint), args.Error(1)
}

type MockCalendarRepository struct {
	mock.Mock
}

func (m *MockCalendarRepository) TemplateDays(ctx context.Context) ([]domain.CalendarDay, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CalendarDay), args.Error(1)
}

func (m *MockCalendarRepository) TeamSheetExists(ctx context.Context, team string) (bool, error) {
	args := m.Called(ctx, team)
	return args.Bool(0), args.Error(1)
}

func (m *MockCalendarRepository) CreateTeamSheet(ctx context.Context, team string, days []domain.CalendarDay) error {
	args := m.Called(ctx, team, days)
	return args.Error(0)
}

func (m *MockCalendarRepository) Header(ctx context.Context, team string) ([]string, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCalendarRepository) AddMemberColumn(ctx context.Context, team string, col byte, handle string, statuses []domain.Status) error {
	args := m.Called(ctx, team, col, handle, statuses)
	return args.Error(0)
}

func (m *MockCalendarRepository) ReadStatuses(ctx context.Context, team string, col byte, fromRow, toRow int) ([]domain.Status, error) {
	args := m.Called(ctx, team, col, fromRow, toRow)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Status), args.Error(1)
}

func (m *MockCalendarRepository) WriteStatuses(ctx context.Context, team string, col byte, fromRow int, statuses []domain.Status) error {
	args := m.Called(ctx, team, col, fromRow, statuses)
	return args.Error(0)
}

func (m *MockCalendarRepository) ReadDay(ctx context.Context, team string, row int, members int) ([]domain.Status, error) {
	args := m.Called(ctx, team, row, members)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Status), args.Error(1)
}

func (m *MockCalendarRepository) MarkHoliday(ctx context.Context, row int, teamMembers map[string]int) error {
	args := m.Called(ctx, row, teamMembers)
	return args.Error(0)
}

type MockDeadLetterRepository struct {
	mock.Mock
}

func (m *MockDeadLetterRepository) Save(ctx context.Context, failed *domain.FailedWrite) error {
	args := m.Called(ctx, failed)
	return args.Error(0)
}

func (m *MockDeadLetterRepository) List(ctx context.Context, limit int) ([]*domain.FailedWrite, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FailedWrite), args.Error(1)
}
