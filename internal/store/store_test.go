package store_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impactlens/internal/adapters/memstore"
	"impactlens/internal/domain"
	"impactlens/internal/store"
)

func TestWorkspace(t *testing.T) {
	assert.Equal(t, store.DefaultWorkspace, store.Workspace(context.Background()))
	assert.Equal(t, store.DefaultWorkspace, store.Workspace(store.WithWorkspace(context.Background(), "  ")))
	assert.Equal(t, "alice", store.Workspace(store.WithWorkspace(context.Background(), " alice ")))
	assert.Len(t, store.NormalizeWorkspace(strings.Repeat("x", 100)), 64)
}

func TestLoadSaveJSON(t *testing.T) {
	kv := memstore.New()
	ctx := store.WithWorkspace(context.Background(), "alice")

	_, found, err := store.LoadJSON[domain.InvestorPreferences](ctx, kv, store.KeyInvestorPreferences)
	require.NoError(t, err)
	assert.False(t, found)

	prefs := domain.InvestorPreferences{InvestorName: "Alice", SelectedSDGs: []int{7, 13}}
	require.NoError(t, store.SaveJSON(ctx, kv, store.KeyInvestorPreferences, prefs))

	got, found, err := store.LoadJSON[domain.InvestorPreferences](ctx, kv, store.KeyInvestorPreferences)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, prefs, got)

	other := store.WithWorkspace(context.Background(), "bob")
	_, found, err = store.LoadJSON[domain.InvestorPreferences](other, kv, store.KeyInvestorPreferences)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoadJSONCorruptBlob(t *testing.T) {
	kv := memstore.New()
	ctx := context.Background()
	require.NoError(t, kv.Put(ctx, store.DefaultWorkspace, store.KeyDashboardData, []byte(`not json`)))

	_, found, err := store.LoadJSON[domain.MetricSnapshot](ctx, kv, store.KeyDashboardData)
	require.Error(t, err)
	assert.False(t, found)
	assert.Contains(t, err.Error(), "decode dashboardData")
}

func TestCompletedFlag(t *testing.T) {
	kv := memstore.New()
	ctx := context.Background()

	done, err := store.IsCompleted(ctx, kv, store.KeyFashionOnboarding)
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, store.MarkCompleted(ctx, kv, store.KeyFashionOnboarding))
	done, err = store.IsCompleted(ctx, kv, store.KeyFashionOnboarding)
	require.NoError(t, err)
	assert.True(t, done)

	raw, _, _ := kv.Get(ctx, store.DefaultWorkspace, store.KeyFashionOnboarding)
	assert.Equal(t, `"completed"`, string(raw))
}

func TestCompletedFlagAcceptsAnyValue(t *testing.T) {
	kv := memstore.New()
	ctx := context.Background()

	tests := []struct {
		raw  string
		want bool
	}{
		{`"completed"`, true},
		{`true`, true},
		{`1`, true},
		{`{"done":true}`, true},
		{`"yes"`, true},
		{`null`, false},
		{` null `, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.NoError(t, kv.Put(ctx, store.DefaultWorkspace, store.KeyFashionOnboarding, []byte(tt.raw)))
			done, err := store.IsCompleted(ctx, kv, store.KeyFashionOnboarding)
			require.NoError(t, err)
			assert.Equal(t, tt.want, done)
		})
	}
}
