package ports

import (
	"context"
	"encoding/json"

	"impactlens/internal/domain"
)

// KVStore holds JSON blobs per workspace. It is the server side of the
// browser's local storage: one blob per key, last writer wins.
type KVStore interface {
	Get(ctx context.Context, workspace, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, workspace, key string, value []byte) error
	Delete(ctx context.Context, workspace, key string) (deleted bool, err error)
	Keys(ctx context.Context, workspace string) ([]string, error)
}

// ReportRepository stores generated and user-saved reports.
type ReportRepository interface {
	SaveReport(ctx context.Context, content string, metrics json.RawMessage) (domain.Report, error)
	GetReport(ctx context.Context, id string) (domain.Report, error)
	ListReports(ctx context.Context, limit int) ([]domain.Report, error)
}

// ReportCache memoizes report text by prompt hash.
type ReportCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}
