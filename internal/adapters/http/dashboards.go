package httpadapter

import (
	"net/http"

	"impactlens/internal/api"
	"impactlens/internal/domain"
)

func (s *Server) PutBusinessOnboarding(w http.ResponseWriter, r *http.Request, _ api.PutBusinessOnboardingParams) {
	var form api.PutBusinessOnboardingJSONRequestBody
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, r, err)
		return
	}
	snap, err := s.business.Onboard(r.Context(), form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) GetBusinessMetrics(w http.ResponseWriter, r *http.Request, _ api.GetBusinessMetricsParams) {
	snap, err := s.business.Snapshot(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) PatchBusinessMetrics(w http.ResponseWriter, r *http.Request, category string, _ api.PatchBusinessMetricsParams) {
	var form api.PatchBusinessMetricsJSONRequestBody
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, r, err)
		return
	}
	snap, err := s.business.UpdateCategory(r.Context(), category, form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) GetBusinessDashboard(w http.ResponseWriter, r *http.Request, params api.GetBusinessDashboardParams) {
	f := portfolioFilter(params.Q, params.Category)
	d, err := s.business.Dashboard(r.Context(), f.Category, f.Query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) GetInvestorPreferences(w http.ResponseWriter, r *http.Request, _ api.GetInvestorPreferencesParams) {
	p, err := s.investor.Preferences(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) PutInvestorPreferences(w http.ResponseWriter, r *http.Request, _ api.PutInvestorPreferencesParams) {
	var p api.PutInvestorPreferencesJSONRequestBody
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, err)
		return
	}
	saved, err := s.investor.SavePreferences(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) ListInvestments(w http.ResponseWriter, r *http.Request, _ api.ListInvestmentsParams) {
	list, err := s.investor.Investments(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) CreateInvestment(w http.ResponseWriter, r *http.Request, _ api.CreateInvestmentParams) {
	var inv api.CreateInvestmentJSONRequestBody
	if err := decodeJSON(r, &inv); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := s.investor.CreateInvestment(r.Context(), inv)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) SaveInvestment(w http.ResponseWriter, r *http.Request, id int64, _ api.SaveInvestmentParams) {
	var inv api.SaveInvestmentJSONRequestBody
	if err := decodeJSON(r, &inv); err != nil {
		writeError(w, r, err)
		return
	}
	saved, err := s.investor.SaveInvestment(r.Context(), id, inv)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) DeleteInvestment(w http.ResponseWriter, r *http.Request, id int64, _ api.DeleteInvestmentParams) {
	if err := s.investor.DeleteInvestment(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetInvestorDashboard(w http.ResponseWriter, r *http.Request, params api.GetInvestorDashboardParams) {
	d, err := s.investor.Dashboard(r.Context(), portfolioFilter(params.Q, params.Category))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) GetImpactDashboard(w http.ResponseWriter, r *http.Request, params api.GetImpactDashboardParams) {
	d, err := s.impact.Dashboard(r.Context(), portfolioFilter(params.Q, params.Category))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) GetSustainabilityDashboard(w http.ResponseWriter, r *http.Request, params api.GetSustainabilityDashboardParams) {
	d, err := s.impact.Sustainability(r.Context(), valueOr(params.Tab, ""), valueOr(params.Q, ""))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) GetMetricsConfig(w http.ResponseWriter, r *http.Request, _ api.GetMetricsConfigParams) {
	cfg, err := s.impact.MetricsConfig(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) ToggleMetric(w http.ResponseWriter, r *http.Request, tab string, id string, _ api.ToggleMetricParams) {
	cfg, err := s.impact.ToggleMetric(r.Context(), tab, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) GetFashionOnboarding(w http.ResponseWriter, r *http.Request, _ api.GetFashionOnboardingParams) {
	st, err := s.impact.OnboardingStatus(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) PostFashionOnboarding(w http.ResponseWriter, r *http.Request, _ api.PostFashionOnboardingParams) {
	var brand api.PostFashionOnboardingJSONRequestBody
	if err := decodeJSON(r, &brand); err != nil {
		writeError(w, r, err)
		return
	}
	saved, err := s.impact.Onboard(r.Context(), brand)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// GetCheckoutPreview prices the storefront sample order. Missing parameters
// mean one item, standard delivery and no offset.
func (s *Server) GetCheckoutPreview(w http.ResponseWriter, r *http.Request, params api.GetCheckoutPreviewParams) {
	p, err := s.impact.CheckoutPreview(r.Context(), domain.CheckoutRequest{
		Quantity: valueOr(params.Quantity, 1),
		Delivery: valueOr(params.Delivery, ""),
		Offset:   valueOr(params.Offset, false),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
