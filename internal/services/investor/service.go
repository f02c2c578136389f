// Package investor manages investor preferences, the investment list and the
// portfolio dashboard computed from it.
package investor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"impactlens/internal/catalog"
	"impactlens/internal/domain"
	"impactlens/internal/ports"
	"impactlens/internal/store"
)

type Service struct {
	kv  ports.KVStore
	cat *catalog.Catalog
	now func() time.Time
}

var _ ports.Investor = (*Service)(nil)

func New(kv ports.KVStore, cat *catalog.Catalog) *Service {
	return &Service{kv: kv, cat: cat, now: time.Now}
}

func (s *Service) Preferences(ctx context.Context) (domain.InvestorPreferences, error) {
	p, found, err := store.LoadJSON[domain.InvestorPreferences](ctx, s.kv, store.KeyInvestorPreferences)
	if err != nil {
		return p, err
	}
	if !found {
		return p, domain.ErrSetupRequired
	}
	p.ApplyDefaults()
	return p, nil
}

func (s *Service) SavePreferences(ctx context.Context, p domain.InvestorPreferences) (domain.InvestorPreferences, error) {
	p.InvestorName = strings.TrimSpace(p.InvestorName)
	p.ApplyDefaults()
	if err := domain.Validate(p); err != nil {
		return p, err
	}
	if err := store.SaveJSON(ctx, s.kv, store.KeyInvestorPreferences, p); err != nil {
		return p, err
	}
	return p, nil
}

// Investments lists the stored investments. Like every investment route it
// needs preferences first.
func (s *Service) Investments(ctx context.Context) ([]domain.Investment, error) {
	if _, err := s.Preferences(ctx); err != nil {
		return nil, err
	}
	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) ([]domain.Investment, error) {
	list, _, err := store.LoadJSON[[]domain.Investment](ctx, s.kv, store.KeyInvestorInvestments)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Investment{}
	}
	return list, nil
}

// CreateInvestment appends inv. A zero id is replaced by the creation time in
// milliseconds.
func (s *Service) CreateInvestment(ctx context.Context, inv domain.Investment) (domain.Investment, error) {
	list, err := s.Investments(ctx)
	if err != nil {
		return inv, err
	}
	if inv.ID == 0 {
		inv.ID = s.now().UnixMilli()
	}
	if err := prepare(&inv); err != nil {
		return inv, err
	}
	for _, existing := range list {
		if existing.ID == inv.ID {
			return inv, fmt.Errorf("%w: investment %d already exists", domain.ErrInvalid, inv.ID)
		}
	}
	list = append(list, inv)
	return inv, store.SaveJSON(ctx, s.kv, store.KeyInvestorInvestments, list)
}

// SaveInvestment replaces the investment with id, or appends it when absent.
func (s *Service) SaveInvestment(ctx context.Context, id int64, inv domain.Investment) (domain.Investment, error) {
	list, err := s.Investments(ctx)
	if err != nil {
		return inv, err
	}
	inv.ID = id
	if err := prepare(&inv); err != nil {
		return inv, err
	}
	replaced := false
	for i := range list {
		if list[i].ID == id {
			list[i] = inv
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, inv)
	}
	return inv, store.SaveJSON(ctx, s.kv, store.KeyInvestorInvestments, list)
}

func (s *Service) DeleteInvestment(ctx context.Context, id int64) error {
	list, err := s.Investments(ctx)
	if err != nil {
		return err
	}
	out := list[:0]
	for _, inv := range list {
		if inv.ID != id {
			out = append(out, inv)
		}
	}
	if len(out) == len(list) {
		return fmt.Errorf("investment %d: %w", id, domain.ErrNotFound)
	}
	return store.SaveJSON(ctx, s.kv, store.KeyInvestorInvestments, out)
}

func prepare(inv *domain.Investment) error {
	inv.CompanyName = strings.TrimSpace(inv.CompanyName)
	inv.InvestmentAmount = strings.TrimSpace(inv.InvestmentAmount)
	inv.ApplyDefaults()
	return domain.Validate(inv)
}

func (s *Service) Dashboard(ctx context.Context, f domain.PortfolioFilter) (domain.InvestorDashboard, error) {
	prefs, err := s.Preferences(ctx)
	if err != nil {
		return domain.InvestorDashboard{}, err
	}
	list, err := s.load(ctx)
	if err != nil {
		return domain.InvestorDashboard{}, err
	}
	return buildDashboard(prefs, list, f, s.cat), nil
}
