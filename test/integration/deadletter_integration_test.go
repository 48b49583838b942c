//go:build integration
// +build integration

package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gaganjakhotiya/ross/internal/domain"
	"github.com/gaganjakhotiya/ross/internal/queue"
	"github.com/gaganjakhotiya/ross/internal/repository/postgres"
	"github.com/gaganjakhotiya/ross/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadLetterRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := postgres.NewDeadLetterRepository(db)

	older := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	require.NoError(t, repo.Save(ctx, &domain.FailedWrite{ID: "t-1", Label: "createTeam backend", Error: "quota exceeded", FailedAt: older}))
	require.NoError(t, repo.Save(ctx, &domain.FailedWrite{ID: "t-2", Label: "markHoliday 2024-01-10", Error: "sheet is locked", FailedAt: newer}))

	// повторное сохранение того же id игнорируется
	require.NoError(t, repo.Save(ctx, &domain.FailedWrite{ID: "t-1", Label: "other", Error: "other", FailedAt: newer}))

	failed, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, failed, 2)
	assert.Equal(t, "t-2", failed[0].ID, "сначала самые свежие")
	assert.Equal(t, "createTeam backend", failed[1].Label)
	assert.True(t, older.Equal(failed[1].FailedAt))

	limited, err := repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestDeadLetterRepositoryWithTx(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, postgres.NewDeadLetterRepositoryWithTx(tx).Save(ctx, &domain.FailedWrite{
		ID: "t-1", Label: "createTeam backend", Error: "quota exceeded", FailedAt: time.Now(),
	}))
	require.NoError(t, tx.Rollback())

	failed, err := postgres.NewDeadLetterRepository(db).List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, failed, "откат транзакции не оставляет записей")
}

func TestQueueFailuresAreStored(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := postgres.NewDeadLetterRepository(db)

	q := queue.New(queue.WithFailureHandler(service.NewDeadLetterHandler(repo)))

	failing := q.Submit("addMember backend/alice", func(ctx context.Context) (any, error) {
		return nil, errors.New("sheet is locked")
	})
	q.Submit("noop", func(ctx context.Context) (any, error) { return nil, nil })

	require.True(t, q.Tick(ctx))
	require.True(t, q.Tick(ctx))

	failed, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, failing.ID, failed[0].ID)
	assert.Equal(t, "addMember backend/alice", failed[0].Label)
	assert.Equal(t, "sheet is locked", failed[0].Error)
}
