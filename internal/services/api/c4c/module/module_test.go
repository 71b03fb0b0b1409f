package module

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	modkit "c4ctexts/internal/modkit"
	mod "c4ctexts/internal/modkit/module"
	"c4ctexts/internal/modkit/swaggerkit"
	"c4ctexts/internal/platform/config"
	phttp "c4ctexts/internal/platform/net/http"
	"c4ctexts/internal/platform/testkit"
	"c4ctexts/internal/services/api/c4c/domain"
	csvc "c4ctexts/internal/services/api/c4c/service"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSvc struct{ csvc.Service }

func (stubSvc) TicketTexts(context.Context, domain.TicketQuery) (domain.TicketTexts, error) {
	return domain.TicketTexts{ObjectID: "stub"}, nil
}

func TestFromConfig(t *testing.T) {
	testkit.Env(t, map[string]string{
		"C4C_TENANT_URL":     "https://t.example",
		"C4C_USERNAME":       "svc",
		"C4C_PASSWORD":       "pw",
		"C4C_HTTP_TIMEOUT":   "15s",
		"C4C_MAX_BODY_BYTES": "1024",
		"C4C_MAX_REFERENCES": "25",
	})
	o := FromConfig(config.New())
	assert.Equal(t, csvc.Settings{TenantURL: "https://t.example", Username: "svc", Password: "pw", MaxReferences: 25}, o.Settings())
	assert.Equal(t, 15*time.Second, o.Client().Timeout)
	assert.Equal(t, int64(1024), o.Client().MaxBodyBytes)
}

func TestFromConfig_Defaults(t *testing.T) {
	testkit.Env(t, map[string]string{
		"C4C_TENANT_URL":     "",
		"C4C_HTTP_TIMEOUT":   "",
		"C4C_MAX_BODY_BYTES": "",
		"C4C_MAX_REFERENCES": "",
	})
	o := FromConfig(config.New())
	assert.Empty(t, o.TenantURL)
	assert.Zero(t, o.Timeout)
	assert.Equal(t, int64(32<<20), o.MaxBodyBytes)
	assert.Zero(t, o.MaxReferences)
}

func TestModule_InjectedServiceMounts(t *testing.T) {
	m := New(modkit.Deps{Cfg: config.New()}, modkit.WithPorts(Ports{Service: stubSvc{}}))
	assert.Equal(t, "c4c", m.Name())

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/c4c/service-request-texts", strings.NewReader(`{"ticketId":"TCK-1"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"objectId":"stub"`)

	req = httptest.NewRequest(http.MethodPost, "/c4c/internal-memos", strings.NewReader(`ticketId=1`))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)

	svc, ok := mod.PortsOf[csvc.Service](m)
	require.True(t, ok)
	got, err := svc.TicketTexts(context.Background(), domain.TicketQuery{})
	require.NoError(t, err)
	assert.Equal(t, "stub", got.ObjectID)
}

func TestModule_FromConfigReachesTenant(t *testing.T) {
	tenant := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "svc" || pass != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"d":{"results":[]}}`)
	}))
	defer tenant.Close()

	testkit.Env(t, map[string]string{
		"C4C_TENANT_URL": tenant.URL,
		"C4C_USERNAME":   "svc",
		"C4C_PASSWORD":   "pw",
	})
	reg := prometheus.NewRegistry()
	m := New(modkit.Deps{Cfg: config.New(), Metrics: reg, HTTP: tenant.Client()})
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/c4c/internal-memos", strings.NewReader(`{"ticketId":"TCK-404"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), "Ticket not found or missing ObjectID.")

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestModule_RegistersDocs(t *testing.T) {
	New(modkit.Deps{Cfg: config.New()}, modkit.WithPorts(Ports{Service: stubSvc{}}))
	paths := swaggerkit.Paths(swaggerkit.Spec())
	for _, p := range []string{"/c4c/health", "/c4c/internal-memos", "/c4c/email-notes-collection/export"} {
		assert.Contains(t, paths, p)
	}
	assert.Contains(t, swaggerkit.Schemas(swaggerkit.Spec()), "Note")
}
