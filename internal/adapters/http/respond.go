package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"impactlens/internal/api"
	"impactlens/internal/domain"
	"impactlens/internal/logging"
)

const (
	maxBodyBytes       = 1 << 20
	investorSetupRoute = "/dashboards/investor/setup"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto status codes. Unexpected errors are
// logged and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrSetupRequired):
		writeJSON(w, http.StatusPreconditionRequired, api.SetupRequired{Error: "Investor preferences are not set up", Redirect: investorSetupRoute})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, api.Error{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalid):
		writeJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
	case errors.Is(err, domain.ErrUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, api.Error{Error: err.Error()})
	default:
		logging.FromContext(r.Context()).Error("request failed",
			zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, api.Error{Error: "internal error"})
	}
}

func (s *Server) contractError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Debug("request rejected by contract", zap.Error(err))
	writeJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
}

// paramError answers parameters the generated router could not bind.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalid, err))
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: decode body: %v", domain.ErrInvalid, err)
	}
	return nil
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func portfolioFilter(q *api.Query, category *api.Category) domain.PortfolioFilter {
	return domain.PortfolioFilter{Query: valueOr(q, ""), Category: valueOr(category, "")}
}
