package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/datalux_backend/config"
)

func TestFromCentralConfig(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "staging"},
		Observability: config.ObservabilityConfig{
			ServiceName:    "DataLux Consulting API",
			ServiceVersion: "1.0.0",
			Tracing: config.TracingConfig{
				Enabled:      true,
				OTLPEndpoint: "collector:4318",
				SamplingRate: 0.5,
			},
		},
	}

	got := FromCentralConfig(cfg)
	assert.Equal(t, "staging", got.Environment)
	assert.True(t, got.TracingEnabled)
	assert.Equal(t, "collector:4318", got.OTLPEndpoint)
	assert.Equal(t, 0.5, got.SamplingRate)
}

// The Prometheus exporter registers on the default registry, so the
// provider is initialised once for the whole package.
func TestInitTelemetry_MiddlewareExportsMetrics(t *testing.T) {
	p, err := InitTelemetry(context.Background(), Config{
		ServiceName:    "DataLux Consulting API",
		ServiceVersion: "1.0.0",
		Environment:    "test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	app := fiber.New()
	app.Use(FiberMiddleware())
	app.Get("/health", func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Trace-Id"))

	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "http_server_request_count")
}
