//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB поднимает Postgres в контейнере и накатывает миграции dead letter
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:17.7",
		postgres.WithDatabase("ross_test"),
		postgres.WithUsername("ross"),
		postgres.WithPassword("ross"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, testcontainers.TerminateContainer(container))
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.PingContext(ctx))

	applyMigrations(t, db)
	return db
}

// applyMigrations выполняет все *.up.sql по порядку имен
func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()

	var files []string
	for _, dir := range []string{
		filepath.Join("..", "..", "migrations"),
		"migrations",
	} {
		matches, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
		require.NoError(t, err)
		if len(matches) > 0 {
			files = matches
			break
		}
	}
	require.NotEmpty(t, files, "migrations/*.up.sql not found")

	for _, file := range files {
		migration, err := os.ReadFile(file)
		require.NoError(t, err)
		_, err = db.Exec(string(migration))
		require.NoError(t, err, "failed to apply %s", filepath.Base(file))
	}
}
