// Package memstore keeps workspace blobs, reports and report jobs in process
// memory. It is the default store for local runs and tests.
package memstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"impactlens/internal/domain"
	"impactlens/internal/ports"
)

type Store struct {
	mu      sync.Mutex
	kv      map[string]map[string][]byte
	reports map[string]domain.Report
	jobs    map[string]*domain.ReportJob
	queue   []string
	now     func() time.Time
}

var (
	_ ports.KVStore          = (*Store)(nil)
	_ ports.ReportRepository = (*Store)(nil)
	_ ports.JobRepository    = (*Store)(nil)
)

func New() *Store {
	return &Store{
		kv:      make(map[string]map[string][]byte),
		reports: make(map[string]domain.Report),
		jobs:    make(map[string]*domain.ReportJob),
		now:     time.Now,
	}
}

// KVStore

func (s *Store) Get(_ context.Context, workspace, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.kv[workspace][key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *Store) Put(_ context.Context, workspace, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.kv[workspace]
	if !ok {
		ws = make(map[string][]byte)
		s.kv[workspace] = ws
	}
	ws[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Delete(_ context.Context, workspace, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.kv[workspace][key]; !ok {
		return false, nil
	}
	delete(s.kv[workspace], key)
	return true, nil
}

func (s *Store) Keys(_ context.Context, workspace string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.kv[workspace]))
	for k := range s.kv[workspace] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// ReportRepository

func (s *Store) SaveReport(_ context.Context, content string, metrics json.RawMessage) (domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := domain.Report{
		ID:        uuid.NewString(),
		Content:   content,
		Metrics:   append(json.RawMessage(nil), metrics...),
		CreatedAt: s.now().UTC(),
	}
	s.reports[r.ID] = r
	return r, nil
}

func (s *Store) GetReport(_ context.Context, id string) (domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return domain.Report{}, domain.ErrNotFound
	}
	return r, nil
}

func (s *Store) ListReports(_ context.Context, limit int) ([]domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
