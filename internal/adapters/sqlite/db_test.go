package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impactlens/internal/domain"
)

func openTest(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "impactlens.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestKV(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	_, found, err := db.Get(ctx, "ws", "investorPreferences")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, db.Put(ctx, "ws", "investorPreferences", []byte(`{"investorName":"A"}`)))
	require.NoError(t, db.Put(ctx, "ws", "investorPreferences", []byte(`{"investorName":"B"}`)))
	require.NoError(t, db.Put(ctx, "ws", "dashboardData", []byte(`{}`)))

	v, found, err := db.Get(ctx, "ws", "investorPreferences")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"investorName":"B"}`, string(v))

	keys, err := db.Keys(ctx, "ws")
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboardData", "investorPreferences"}, keys)

	keys, err = db.Keys(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, keys)

	deleted, err := db.Delete(ctx, "ws", "dashboardData")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = db.Delete(ctx, "ws", "dashboardData")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestReports(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	first, err := db.SaveReport(ctx, "first", nil)
	require.NoError(t, err)
	second, err := db.SaveReport(ctx, "second", json.RawMessage(`{"emissions":1}`))
	require.NoError(t, err)

	got, err := db.GetReport(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Content)
	assert.JSONEq(t, `{"emissions":1}`, string(got.Metrics))

	got, err = db.GetReport(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Metrics)

	_, err = db.GetReport(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := db.ListReports(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestJobsClaimOnce(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	const n = 5
	for i := 0; i < n; i++ {
		_, err := db.EnqueueReportJob(ctx, json.RawMessage(`{}`))
		require.NoError(t, err)
	}

	var (
		mu      sync.Mutex
		claimed = map[string]int{}
		wg      sync.WaitGroup
	)
	for w := 0; w < 3; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				job, found, err := db.ClaimNext(ctx)
				if err != nil || !found {
					return
				}
				mu.Lock()
				claimed[job.ID]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, claimed, n)
	for id, c := range claimed {
		assert.Equal(t, 1, c, "job %s claimed more than once", id)
	}
}

func TestJobStatusTransitions(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	id, err := db.EnqueueReportJob(ctx, json.RawMessage(`{"a":1}`))
	require.NoError(t, err)

	st, err := db.JobStatus(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.JobQueued, st.Status)
	assert.Nil(t, st.StartedAt)

	job, err := db.StartJob(ctx, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(job.Metrics))

	_, err = db.StartJob(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, db.MarkFailed(ctx, id, "upstream down"))
	st, err = db.JobStatus(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.JobFailed, st.Status)
	assert.Equal(t, "upstream down", st.Error)
	assert.NotNil(t, st.StartedAt)
	assert.NotNil(t, st.FinishedAt)
	assert.Equal(t, 1, st.Attempts)

	assert.ErrorIs(t, db.MarkCompleted(ctx, "missing", "r"), domain.ErrNotFound)
	_, err = db.JobStatus(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
