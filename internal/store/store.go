// Package store gives typed access to the workspace key/value store and
// carries the active workspace through request contexts.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"impactlens/internal/ports"
)

// Keys the dashboards persist under.
const (
	KeyDashboardData          = "dashboardData"
	KeyInvestorPreferences    = "investorPreferences"
	KeyInvestorInvestments    = "investorInvestments"
	KeyFashionOnboarding      = "sustainableFashionOnboarding"
	KeyFashionBrandData       = "sustainableFashionBrandData"
	KeySustainabilityMetrics  = "sustainabilityMetricsConfig"
	DefaultWorkspace          = "default"
	maxWorkspaceLen           = 64
	onboardingCompletedMarker = "completed"
)

type workspaceKey struct{}

// WithWorkspace scopes ctx to a workspace. Blank names map to the default.
func WithWorkspace(ctx context.Context, workspace string) context.Context {
	return context.WithValue(ctx, workspaceKey{}, NormalizeWorkspace(workspace))
}

// Workspace returns the workspace carried by ctx.
func Workspace(ctx context.Context) string {
	if ws, ok := ctx.Value(workspaceKey{}).(string); ok && ws != "" {
		return ws
	}
	return DefaultWorkspace
}

// NormalizeWorkspace trims and bounds a client supplied workspace id.
func NormalizeWorkspace(ws string) string {
	ws = strings.TrimSpace(ws)
	if ws == "" {
		return DefaultWorkspace
	}
	if len(ws) > maxWorkspaceLen {
		ws = ws[:maxWorkspaceLen]
	}
	return ws
}

// LoadJSON decodes the blob under key into T. A missing key is not an error.
func LoadJSON[T any](ctx context.Context, kv ports.KVStore, key string) (T, bool, error) {
	var out T
	raw, found, err := kv.Get(ctx, Workspace(ctx), key)
	if err != nil || !found {
		return out, false, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, true, nil
}

// SaveJSON encodes v and replaces the blob under key.
func SaveJSON(ctx context.Context, kv ports.KVStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Put(ctx, Workspace(ctx), key, raw)
}

// MarkCompleted stores the onboarding-complete flag under key.
func MarkCompleted(ctx context.Context, kv ports.KVStore, key string) error {
	return SaveJSON(ctx, kv, key, onboardingCompletedMarker)
}

// IsCompleted reports whether the flag under key is set. Any stored value
// other than JSON null counts, since clients write the flag through the raw
// store routes as well.
func IsCompleted(ctx context.Context, kv ports.KVStore, key string) (bool, error) {
	raw, found, err := kv.Get(ctx, Workspace(ctx), key)
	if err != nil || !found {
		return false, err
	}
	v := bytes.TrimSpace(raw)
	return len(v) > 0 && !bytes.Equal(v, []byte("null")), nil
}
