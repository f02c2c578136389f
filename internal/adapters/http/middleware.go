package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"impactlens/internal/api"
	"impactlens/internal/logging"
	"impactlens/internal/store"
)

// WorkspaceHeader selects the key/value namespace of a request.
const WorkspaceHeader = "X-Workspace-ID"

func (s *Server) withWorkspace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := store.WithWorkspace(r.Context(), r.Header.Get(WorkspaceHeader))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withLogger puts a request-scoped logger in the context and logs each
// request when it completes.
func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := s.log.With(
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("workspace", store.Workspace(r.Context())),
		)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(logging.WithLogger(r.Context(), log)))
		log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", statusOf(ww)),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// observe records request metrics under the matched route pattern so ids in
// paths do not explode label cardinality.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		pattern := ""
		if rc := chi.RouteContext(r.Context()); rc != nil {
			pattern = rc.RoutePattern()
		}
		s.metrics.ObserveHTTP(pattern, r.Method, statusOf(ww), time.Since(start))
	})
}

func statusOf(ww middleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}

// allowReport answers 429 once the report routes exceed their rate.
func (s *Server) allowReport(w http.ResponseWriter) bool {
	if s.limiter == nil || s.limiter.Allow() {
		return true
	}
	w.Header().Set("Retry-After", "1")
	writeJSON(w, http.StatusTooManyRequests, api.Error{Error: "Too many report requests, try again shortly"})
	return false
}
