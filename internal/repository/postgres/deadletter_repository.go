package postgres

import (
	"context"
	"database/sql"

	"github.com/gaganjakhotiya/ross/internal/domain"
)

type deadLetterRepository struct {
	executor DBExecutor
}

func NewDeadLetterRepository(db *sql.DB) *deadLetterRepository {
	return &deadLetterRepository{executor: db}
}

func NewDeadLetterRepositoryWithTx(tx *sql.Tx) *deadLetterRepository {
	return &deadLetterRepository{executor: tx}
}

// Save сохраняет упавшую запись; повторное сохранение того же ID игнорируется
func (r *deadLetterRepository) Save(ctx context.Context, failed *domain.FailedWrite) error {
	query := `
		INSERT INTO failed_writes (id, label, error, failed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.executor.ExecContext(ctx, query, failed.ID, failed.Label, failed.Error, failed.FailedAt)
	return err
}

func (r *deadLetterRepository) List(ctx context.Context, limit int) ([]*domain.FailedWrite, error) {
	query := `
		SELECT id, label, error, failed_at
		FROM failed_writes
		ORDER BY failed_at DESC
		LIMIT $1
	`

	rows, err := r.executor.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	failed := make([]*domain.FailedWrite, 0)
	for rows.Next() {
		f := &domain.FailedWrite{}
		if err := rows.Scan(&f.ID, &f.Label, &f.Error, &f.FailedAt); err != nil {
			return nil, err
		}
		failed = append(failed, f)
	}

	return failed, rows.Err()
}
