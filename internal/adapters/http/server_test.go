package httpadapter_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "impactlens/internal/adapters/http"
	"impactlens/internal/adapters/memstore"
	"impactlens/internal/api"
	"impactlens/internal/catalog"
	"impactlens/internal/domain"
	"impactlens/internal/llm"
	"impactlens/internal/services/business"
	"impactlens/internal/services/impact"
	"impactlens/internal/services/investor"
	"impactlens/internal/services/reports"
	"impactlens/internal/telemetry"
)

type fakeLLM struct {
	text string
	err  error
}

func (f *fakeLLM) Complete(context.Context, llm.Request) (string, error) { return f.text, f.err }
func (f *fakeLLM) Model() string                                      { return "test-model" }

type harness struct {
	handler http.Handler
	llm     *fakeLLM
	metrics *telemetry.Metrics
}

func newHarness(t *testing.T, mutate ...func(*httpadapter.Deps)) *harness {
	t.Helper()
	doc, err := api.Load(context.Background())
	require.NoError(t, err)
	v, err := api.NewValidator(doc)
	require.NoError(t, err)

	mem := memstore.New()
	cat := catalog.Default()
	fake := &fakeLLM{text: "# ESG Report\n\nAll good."}
	m := telemetry.NewMetrics()
	rep := reports.New(fake, mem, reports.WithMetrics(m))

	deps := httpadapter.Deps{
		Store:     mem,
		Business:  business.New(mem, cat),
		Investor:  investor.New(mem, cat),
		Impact:    impact.New(mem),
		Reports:   rep,
		Jobs:      mem,
		Processor: rep,
		Catalog:   cat,
		Validator: v,
		Metrics:   m,
	}
	for _, fn := range mutate {
		fn(&deps)
	}
	return &harness{handler: httpadapter.New(deps).Routes(), llm: fake, metrics: m}
}

type call struct {
	method, path, body string
	contentType        string
	workspace          string
}

func (h *harness) do(t *testing.T, c call) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if c.body != "" {
		body = strings.NewReader(c.body)
	}
	req := httptest.NewRequest(c.method, c.path, body)
	if c.body != "" {
		ct := c.contentType
		if ct == "" {
			ct = "application/json"
		}
		if ct != "-" {
			req.Header.Set("Content-Type", ct)
		}
	}
	if c.workspace != "" {
		req.Header.Set(httpadapter.WorkspaceHeader, c.workspace)
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthz(t *testing.T) {
	h := newHarness(t)
	rec := h.do(t, call{method: http.MethodGet, path: "/healthz"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = h.do(t, call{method: http.MethodGet, path: "/openapi.yaml"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
}

func TestInvestorFlow(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, call{method: http.MethodGet, path: "/api/investor/investments"})
	require.Equal(t, http.StatusPreconditionRequired, rec.Code)
	body := decode[map[string]string](t, rec)
	assert.Equal(t, "/dashboards/investor/setup", body["redirect"])

	rec = h.do(t, call{method: http.MethodPut, path: "/api/investor/preferences", body: `{"organization":"x"}`})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "contract requires investorName")

	rec = h.do(t, call{method: http.MethodPut, path: "/api/investor/preferences", body: `{"investorName":"Avery","selectedSDGs":[7]}`})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	prefs := decode[domain.InvestorPreferences](t, rec)
	assert.Equal(t, domain.RiskModerate, prefs.RiskTolerance)

	rec = h.do(t, call{method: http.MethodPost, path: "/api/investor/investments",
		body: `{"id":7,"companyName":"SunCo","sector":"Clean Energy","investmentAmount":"1000","expectedReturn":"10","sdgs":[7]}`})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = h.do(t, call{method: http.MethodPut, path: "/api/investor/investments/8",
		body: `{"companyName":"SchoolCo","sector":"Education","investmentAmount":"500","sdgs":[4]}`})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(8), decode[domain.Investment](t, rec).ID)

	rec = h.do(t, call{method: http.MethodPut, path: "/api/investor/investments/abc", body: `{"companyName":"X","investmentAmount":"1"}`})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, call{method: http.MethodGet, path: "/api/investor/dashboard?q=sun"})
	require.Equal(t, http.StatusOK, rec.Code)
	d := decode[domain.InvestorDashboard](t, rec)
	assert.Equal(t, 2, d.PortfolioSize)
	require.Len(t, d.Companies, 1)
	assert.Equal(t, "SunCo", d.Companies[0].Name)

	rec = h.do(t, call{method: http.MethodDelete, path: "/api/investor/investments/8"})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = h.do(t, call{method: http.MethodDelete, path: "/api/investor/investments/8"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.do(t, call{method: http.MethodGet, path: "/api/investor/investments", workspace: "other"})
	assert.Equal(t, http.StatusPreconditionRequired, rec.Code, "workspaces do not share preferences")
}

func TestBusinessFlow(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, call{method: http.MethodGet, path: "/api/business/metrics"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.do(t, call{method: http.MethodPut, path: "/api/business/onboarding",
		body: `{"production":"12000","emissions":15000,"gender":"40","dataQuality":90}`})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	snap := decode[domain.MetricSnapshot](t, rec)
	assert.Equal(t, 15000.0, snap.Environmental.Emissions)

	rec = h.do(t, call{method: http.MethodPatch, path: "/api/business/metrics/social", body: `{"gender":45}`})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 45.0, decode[domain.MetricSnapshot](t, rec).Social.Gender)

	rec = h.do(t, call{method: http.MethodPatch, path: "/api/business/metrics/unknown", body: `{}`})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, call{method: http.MethodGet, path: "/api/business/dashboard?category=environmental"})
	require.Equal(t, http.StatusOK, rec.Code)
	d := decode[domain.BusinessDashboard](t, rec)
	assert.True(t, d.OnboardingComplete)
	assert.Contains(t, d.Recommendations, "Increase renewable energy investment to meet 40% target")
}

func TestSustainabilityRoutes(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, call{method: http.MethodGet, path: "/api/sustainability/dashboard?tab=fashion"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[domain.SustainabilityDashboard](t, rec).OnboardingRequired)

	rec = h.do(t, call{method: http.MethodPost, path: "/api/sustainability/onboarding", body: `{"brandInfo":{"name":"EcoWear","website":"www.ecowear.co.uk"}}`})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "ecowear.co.uk", decode[domain.BrandData](t, rec).BrandInfo.Domain)

	rec = h.do(t, call{method: http.MethodGet, path: "/api/sustainability/onboarding"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[domain.OnboardingStatus](t, rec).Completed)

	rec = h.do(t, call{method: http.MethodPost, path: "/api/sustainability/metrics-config/solar/co2_avoided/toggle"})
	require.Equal(t, http.StatusOK, rec.Code)
	cfg := decode[domain.MetricsConfig](t, rec)
	assert.False(t, cfg["solar"][1].Enabled)

	rec = h.do(t, call{method: http.MethodPost, path: "/api/sustainability/metrics-config/solar/nope/toggle"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.do(t, call{method: http.MethodGet, path: "/api/impact/dashboard?category=clean"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[domain.ImpactDashboard](t, rec).Companies, 2)
}

func TestFashionFlagWrittenThroughStore(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, call{method: http.MethodPut, path: "/api/store/sustainableFashionOnboarding", body: `true`})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = h.do(t, call{method: http.MethodGet, path: "/api/sustainability/onboarding"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[domain.OnboardingStatus](t, rec).Completed)

	rec = h.do(t, call{method: http.MethodGet, path: "/api/sustainability/dashboard?tab=fashion"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.False(t, decode[domain.SustainabilityDashboard](t, rec).OnboardingRequired)
}

func TestStoreRoutes(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, call{method: http.MethodPut, path: "/api/store/dashboardData", body: `{"environmental":{"emissions":5}}`, workspace: "ws1"})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = h.do(t, call{method: http.MethodGet, path: "/api/store/dashboardData", workspace: "ws1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"environmental":{"emissions":5}}`, rec.Body.String())

	rec = h.do(t, call{method: http.MethodGet, path: "/api/store", workspace: "ws1"})
	assert.JSONEq(t, `{"keys":["dashboardData"]}`, rec.Body.String())

	rec = h.do(t, call{method: http.MethodGet, path: "/api/store/dashboardData"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.do(t, call{method: http.MethodPut, path: "/api/store/bad%20key", body: `1`})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, call{method: http.MethodDelete, path: "/api/store/dashboardData", workspace: "ws1"})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = h.do(t, call{method: http.MethodDelete, path: "/api/store/dashboardData", workspace: "ws1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateReport(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, call{method: http.MethodPost, path: "/api/generate-report", body: `{"metrics":{"environmental":{"emissions":1}}}`})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"report":"# ESG Report\n\nAll good."}`, rec.Body.String())

	rec = h.do(t, call{method: http.MethodPost, path: "/api/generate-report", body: `not json`, contentType: "-"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to generate ESG report"}`, rec.Body.String())

	for _, body := range []string{`null`, `{"metrics":{}} {"metrics":{}}`, `{"metrics":{}} trailing`} {
		rec = h.do(t, call{method: http.MethodPost, path: "/api/generate-report", body: body})
		assert.Equal(t, http.StatusInternalServerError, rec.Code, body)
		assert.JSONEq(t, `{"error":"Failed to generate ESG report"}`, rec.Body.String(), body)
	}

	h.llm.err = errors.New("upstream 502")
	rec = h.do(t, call{method: http.MethodPost, path: "/api/generate-report", body: `{"metrics":{"other":true}}`})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to generate ESG report"}`, rec.Body.String())
}

func TestGenerateReportRateLimit(t *testing.T) {
	h := newHarness(t, func(d *httpadapter.Deps) {
		d.ReportRate = 0.001
		d.ReportBurst = 1
	})
	rec := h.do(t, call{method: http.MethodPost, path: "/api/generate-report", body: `{"metrics":{}}`})
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = h.do(t, call{method: http.MethodPost, path: "/api/generate-report", body: `{"metrics":{}}`})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec), "error")
}

func TestSavedReports(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, call{method: http.MethodPost, path: "/api/save-report", body: `{"content":"Quarterly summary"}`, contentType: "text/plain;charset=UTF-8"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decode[map[string]string](t, rec)["id"]
	require.NotEmpty(t, id)

	rec = h.do(t, call{method: http.MethodPost, path: "/api/save-report", body: `{"content":"  "}`})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, call{method: http.MethodGet, path: "/api/reports/" + id})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Quarterly summary", decode[domain.Report](t, rec).Content)

	rec = h.do(t, call{method: http.MethodGet, path: "/api/reports?limit=5"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Report](t, rec), 1)

	rec = h.do(t, call{method: http.MethodGet, path: "/api/reports/missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.do(t, call{method: http.MethodGet, path: "/api/reports/" + id + "/pdf"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "no renderer configured")
}

func TestReportJobs(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, call{method: http.MethodPost, path: "/api/report-jobs", body: `{"metrics":{"a":1}}`})
	require.Equal(t, http.StatusAccepted, rec.Code)
	jobID := decode[map[string]string](t, rec)["jobId"]

	rec = h.do(t, call{method: http.MethodGet, path: "/api/report-jobs/" + jobID})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.JobQueued, decode[domain.ReportJob](t, rec).Status)

	rec = h.do(t, call{method: http.MethodPost, path: "/api/report-jobs?wait=true&timeout=5", body: `{"metrics":{"a":2}}`})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	job := decode[domain.ReportJob](t, rec)
	assert.Equal(t, domain.JobCompleted, job.Status)
	require.NotNil(t, job.ReportID)

	rec = h.do(t, call{method: http.MethodGet, path: "/api/reports/" + *job.ReportID})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"a":2}`, string(decode[domain.Report](t, rec).Metrics))

	h.llm.err = errors.New("boom")
	rec = h.do(t, call{method: http.MethodPost, path: "/api/report-jobs?wait=true", body: `{"metrics":{"a":3}}`})
	require.Equal(t, http.StatusOK, rec.Code)
	job = decode[domain.ReportJob](t, rec)
	assert.Equal(t, domain.JobFailed, job.Status)
	assert.Contains(t, job.Error, "boom")

	rec = h.do(t, call{method: http.MethodPost, path: "/api/report-jobs", body: `{}`})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, call{method: http.MethodGet, path: "/api/report-jobs/nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportJobWaitTimeoutIsBounded(t *testing.T) {
	h := newHarness(t, func(d *httpadapter.Deps) { d.Validator = nil })

	for _, timeout := range []string{"0", "-5", "9223372036854775807"} {
		rec := h.do(t, call{method: http.MethodPost, path: "/api/report-jobs?wait=true&timeout=" + timeout, body: `{"metrics":{"a":1}}`})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, domain.JobCompleted, decode[domain.ReportJob](t, rec).Status, timeout)
	}
}

func TestCheckoutPreview(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name      string
		query     string
		wantTotal string
		wantSaved float64
	}{
		{"defaults", "", "40.99", 3.8},
		{"express with offset", "?delivery=express&offset=true", "46.98", 8.6},
		{"carbon neutral", "?quantity=3&delivery=carbon_neutral", "112.99", 11.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.do(t, call{method: http.MethodGet, path: "/api/sustainability/checkout-preview" + tt.query})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			p := decode[domain.CheckoutPreview](t, rec)
			assert.Equal(t, tt.wantTotal, p.Total.String())
			assert.InDelta(t, tt.wantSaved, p.EmissionsSaved, 1e-9)
			assert.Len(t, p.DeliveryOptions, 3)
		})
	}

	rec := h.do(t, call{method: http.MethodGet, path: "/api/sustainability/checkout-preview?quantity=11"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = h.do(t, call{method: http.MethodGet, path: "/api/sustainability/checkout-preview?offset=maybe"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsUseRoutePatterns(t *testing.T) {
	h := newHarness(t)
	h.do(t, call{method: http.MethodGet, path: "/api/reports/abc"})

	rec := h.do(t, call{method: http.MethodGet, path: "/metrics"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/api/reports/{id}"`)
	assert.NotContains(t, rec.Body.String(), `route="/api/reports/abc"`)
}
