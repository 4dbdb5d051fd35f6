package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fnf/internal/platform/config"
	"fnf/internal/platform/metrics"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func testConfig() config.Config {
	return config.Config{
		Environment:        "test",
		CORSAllowedOrigins: []string{"http://hr.example.com"},
		AllowedRoles:       []string{"hr"},
		MaxBodyBytes:       1 << 20,
		RequestTimeout:     time.Second,
		MetricsEnabled:     true,
		JWTSecret:          "secret",
	}
}

func serve(h http.Handler, method, target string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndReadiness(t *testing.T) {
	healthy := NewRouter(testConfig(), nil, metrics.New(), nil, pingFunc(func(context.Context) error { return nil }))
	assert.Equal(t, http.StatusOK, serve(healthy, http.MethodGet, "/healthz").Code)
	assert.Equal(t, http.StatusOK, serve(healthy, http.MethodGet, "/readyz").Code)

	down := NewRouter(testConfig(), nil, metrics.New(), nil, pingFunc(func(context.Context) error { return errors.New("db down") }))
	assert.Equal(t, http.StatusOK, serve(down, http.MethodGet, "/healthz").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(down, http.MethodGet, "/readyz").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := NewRouter(testConfig(), nil, metrics.New(), nil)
	serve(router, http.MethodGet, "/healthz")

	rec := serve(router, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requestsTotal"`)

	cfg := testConfig()
	cfg.MetricsEnabled = false
	assert.Equal(t, http.StatusNotFound, serve(NewRouter(cfg, nil, metrics.New(), nil), http.MethodGet, "/metrics").Code)
}

func TestSettlementRoutesRequireRoleWhenSecretSet(t *testing.T) {
	router := NewRouter(testConfig(), nil, metrics.New(), nil)

	rec := serve(router, http.MethodGet, "/api/v1/settlements/EMP-1/full-and-final")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	router := NewRouter(testConfig(), nil, metrics.New(), nil)

	rec := serve(router, http.MethodOptions, "/api/v1/settlements/EMP-1/full-and-final",
		"Origin", "http://hr.example.com",
		"Access-Control-Request-Method", http.MethodGet)
	assert.Equal(t, "http://hr.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(router, http.MethodOptions, "/api/v1/settlements/EMP-1/full-and-final",
		"Origin", "http://evil.example.com",
		"Access-Control-Request-Method", http.MethodGet)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
