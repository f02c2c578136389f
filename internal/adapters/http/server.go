package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"impactlens/internal/api"
	"impactlens/internal/catalog"
	"impactlens/internal/ports"
	"impactlens/internal/telemetry"
	"impactlens/internal/workers/reportrunner"
)

// Deps are the services the handlers delegate to. Validator, Metrics and
// Logger are optional.
type Deps struct {
	Store     ports.KVStore
	Business  ports.Business
	Investor  ports.Investor
	Impact    ports.Impact
	Reports   ports.Reports
	Jobs      ports.JobRepository
	Processor reportrunner.Processor
	Catalog   *catalog.Catalog
	Validator *api.Validator
	Metrics   *telemetry.Metrics
	Logger    *zap.Logger

	// ReportRate limits the report generation routes in requests per second.
	// Zero disables the limit.
	ReportRate  float64
	ReportBurst int
}

type Server struct {
	store     ports.KVStore
	business  ports.Business
	investor  ports.Investor
	impact    ports.Impact
	reports   ports.Reports
	jobs      ports.JobRepository
	processor reportrunner.Processor
	catalog   *catalog.Catalog
	validator *api.Validator
	metrics   *telemetry.Metrics
	log       *zap.Logger
	limiter   *rate.Limiter
}

func New(d Deps) *Server {
	s := &Server{
		store:     d.Store,
		business:  d.Business,
		investor:  d.Investor,
		impact:    d.Impact,
		reports:   d.Reports,
		jobs:      d.Jobs,
		processor: d.Processor,
		catalog:   d.Catalog,
		validator: d.Validator,
		metrics:   d.Metrics,
		log:       d.Logger,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if d.ReportRate > 0 {
		burst := d.ReportBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(d.ReportRate), burst)
	}
	return s
}

var _ api.ServerInterface = (*Server)(nil)

// Routes returns a chi.Router with the middleware stack and every operation
// of the contract mounted through the generated router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.withWorkspace)
	r.Use(s.withLogger)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	if s.validator != nil {
		r.Use(s.validator.Middleware(s.contractError))
	}

	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	r.Get("/openapi.yaml", s.openapi)

	api.HandlerWithOptions(s, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.paramError,
	})
	return r
}

func (s *Server) GetHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, api.Health{Status: "ok"})
}

func (s *Server) openapi(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(api.SpecYAML())
}

func (s *Server) GetCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog)
}
