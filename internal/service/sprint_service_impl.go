package service

import (
	"context"
	"time"

	"github.com/gaganjakhotiya/ross/internal/calendar"
	"github.com/gaganjakhotiya/ross/internal/domain"
	"golang.org/x/sync/errgroup"
)

type sprintService struct {
	reads *Reads
}

// NewSprintService создает новый экземпляр SprintService
func NewSprintService(reads *Reads) SprintService {
	return &sprintService{reads: reads}
}

func (s *sprintService) Current(ctx context.Context, date time.Time) (domain.Sprint, error) {
	table, err := s.reads.Sprints(ctx)
	if err != nil {
		return domain.Sprint{}, err
	}
	return calendar.SprintContaining(date, table)
}

func (s *sprintService) Relative(ctx context.Context, date time.Time, offset int) (domain.Sprint, error) {
	table, err := s.reads.Sprints(ctx)
	if err != nil {
		return domain.Sprint{}, err
	}
	return calendar.SprintRelativeTo(date, offset, table)
}

// Progress считает прогресс спринта на дату с учетом праздников
func (s *sprintService) Progress(ctx context.Context, date time.Time) (*domain.SprintDetails, error) {
	sprint, err := s.Current(ctx, date)
	if err != nil {
		return nil, err
	}

	var holidays, weekends []time.Time
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		holidays, err = s.reads.Holidays(gctx, sprint.Start, sprint.End)
		return err
	})
	g.Go(func() error {
		var err error
		weekends, err = s.reads.Weekends(gctx, sprint.Start, sprint.End)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.SprintDetails{
		Sprint:   sprint,
		Date:     calendar.Day(date),
		Progress: calendar.SprintProgress(date, sprint, holidays),
		Holidays: holidays,
		Weekends: weekends,
	}, nil
}
