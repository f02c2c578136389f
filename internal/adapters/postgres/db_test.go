package postgres

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"impactlens/internal/domain"
)

// newTestDB starts a throwaway Postgres, migrates it and connects. Set
// IMPACTLENS_PG_TESTS=1 to run; it needs a Docker daemon.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	if os.Getenv("IMPACTLENS_PG_TESTS") != "1" {
		t.Skip("IMPACTLENS_PG_TESTS not set")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("impactlens_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, dsn, "up"))

	db, err := Connect(ctx, dsn, PoolOptions{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func TestPoolConfig(t *testing.T) {
	cfg, err := poolConfig("postgres://u:p@localhost:5432/impactlens", PoolOptions{})
	require.NoError(t, err)
	assert.Equal(t, int32(10), cfg.MaxConns)
	assert.Equal(t, 30*time.Second, cfg.HealthCheckPeriod)
	assert.Equal(t, "impactlens", cfg.ConnConfig.RuntimeParams["application_name"])

	cfg, err = poolConfig("postgres://u:p@localhost:5432/impactlens?application_name=worker", PoolOptions{MaxConns: 3})
	require.NoError(t, err)
	assert.Equal(t, int32(3), cfg.MaxConns)
	assert.Equal(t, "worker", cfg.ConnConfig.RuntimeParams["application_name"])

	_, err = poolConfig("postgres://u:p@localhost:notaport/db", PoolOptions{})
	assert.ErrorContains(t, err, "parse DATABASE_URL")
}

func TestPostgresStore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	t.Run("kv", func(t *testing.T) {
		require.NoError(t, db.Put(ctx, "ws", "dashboardData", []byte(`{"a":1}`)))
		require.NoError(t, db.Put(ctx, "ws", "dashboardData", []byte(`{"a":2}`)))
		v, found, err := db.Get(ctx, "ws", "dashboardData")
		require.NoError(t, err)
		require.True(t, found)
		assert.JSONEq(t, `{"a":2}`, string(v))

		keys, err := db.Keys(ctx, "ws")
		require.NoError(t, err)
		assert.Equal(t, []string{"dashboardData"}, keys)

		deleted, err := db.Delete(ctx, "ws", "dashboardData")
		require.NoError(t, err)
		assert.True(t, deleted)
		_, found, err = db.Get(ctx, "ws", "dashboardData")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("reports", func(t *testing.T) {
		r, err := db.SaveReport(ctx, "report body", json.RawMessage(`{"x":1}`))
		require.NoError(t, err)
		got, err := db.GetReport(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, "report body", got.Content)
		assert.JSONEq(t, `{"x":1}`, string(got.Metrics))

		_, err = db.GetReport(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("jobs", func(t *testing.T) {
		id, err := db.EnqueueReportJob(ctx, json.RawMessage(`{"n":1}`))
		require.NoError(t, err)

		job, found, err := db.ClaimNext(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, id, job.ID)

		_, found, err = db.ClaimNext(ctx)
		require.NoError(t, err)
		assert.False(t, found)

		r, err := db.SaveReport(ctx, "done", nil)
		require.NoError(t, err)
		require.NoError(t, db.MarkCompleted(ctx, id, r.ID))

		st, err := db.JobStatus(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.JobCompleted, st.Status)
		require.NotNil(t, st.ReportID)
		assert.Equal(t, r.ID, *st.ReportID)
		assert.Equal(t, 1, st.Attempts)
	})
}
