package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeadLetterHandler(t *testing.T) {
	ctx := context.Background()
	now := local(time.January, 3, 10, 0)

	t.Run("упавшая задача сохраняется", func(t *testing.T) {
		setNow(t, now)
		repo := new(MockDeadLetterRepository)
		q := queue.New(queue.WithFailureHandler(NewDeadLetterHandler(repo)))

		var saved *domain.FailedWrite
		repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.FailedWrite")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.FailedWrite) }).
			Return(nil).Once()

		p := q.Submit("createTeam backend", func(ctx context.Context) (any, error) {
			return nil, errors.New("sheet is locked")
		})
		require.True(t, q.Tick(ctx))

		_, err := p.Wait(ctx)
		require.Error(t, err)
		repo.AssertExpectations(t)

		require.NotNil(t, saved)
		assert.Equal(t, p.ID, saved.ID)
		assert.Equal(t, "createTeam backend", saved.Label)
		assert.Equal(t, "sheet is locked", saved.Error)
		assert.Equal(t, now.UTC(), saved.FailedAt)
	})

	t.Run("успешная задача не сохраняется", func(t *testing.T) {
		repo := new(MockDeadLetterRepository)
		q := queue.New(queue.WithFailureHandler(NewDeadLetterHandler(repo)))

		q.Submit("noop", func(ctx context.Context) (any, error) { return 1, nil })
		require.True(t, q.Tick(ctx))

		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("ошибка сохранения не роняет очередь", func(t *testing.T) {
		repo := new(MockDeadLetterRepository)
		q := queue.New(queue.WithFailureHandler(NewDeadLetterHandler(repo)))
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

		q.Submit("broken", func(ctx context.Context) (any, error) { return nil, errors.New("boom") })
		second := q.Submit("next", func(ctx context.Context) (any, error) { return "ok", nil })

		require.True(t, q.Tick(ctx))
		require.True(t, q.Tick(ctx))

		value, err := second.Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ok", value)
		repo.AssertExpectations(t)
	})
}
