package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/datalux_backend/config"
	"github.com/Alijeyrad/datalux_backend/pkg/reqctx"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "production"},
		Observability: config.ObservabilityConfig{
			ServiceName:    "DataLux Consulting API",
			ServiceVersion: "1.0.0",
		},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: config.OutputConfig{Stdout: true},
		},
	}
}

func TestNew_JSONWithBaseAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithStdout(testConfig(), &buf)

	logger.Info("contact submission saved", "id", 7)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "contact submission saved", rec["msg"])
	assert.Equal(t, "DataLux Consulting API", rec["service"])
	assert.Equal(t, "1.0.0", rec["version"])
	assert.Equal(t, "production", rec["env"])
	assert.EqualValues(t, 7, rec["id"])
}

func TestNew_StampsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithStdout(testConfig(), &buf)

	ctx := reqctx.WithRequestMeta(context.Background(), &reqctx.RequestMeta{RequestID: "rid-42"})
	logger.InfoContext(ctx, "with request")
	logger.Info("without request")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "rid-42", first["request_id"])
	assert.NotContains(t, second, "request_id")
}

func TestNew_LevelFiltering(t *testing.T) {
	cfg := testConfig()
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	logger := newWithStdout(cfg, &buf)
	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestLokiWriter_PushesStream(t *testing.T) {
	var got lokiPush
	var user, pass string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/loki/api/v1/push", r.URL.Path)
		user, pass, _ = r.BasicAuth()
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.Logging.Output = config.OutputConfig{Loki: config.LokiConfig{
		Enabled:  true,
		Endpoint: srv.URL + "/",
		Username: "grafana",
		Password: "token",
	}}

	logger := newWithStdout(cfg, io.Discard)
	logger.Error("notification failed", "channel", "telegram")

	require.Len(t, got.Streams, 1)
	assert.Equal(t, "DataLux Consulting API", got.Streams[0].Stream["service"])
	require.Len(t, got.Streams[0].Values, 1)
	assert.Contains(t, got.Streams[0].Values[0][1], "notification failed")
	assert.Equal(t, "grafana", user)
	assert.Equal(t, "token", pass)
}

func TestNew_FansOutToStdoutAndLoki(t *testing.T) {
	var pushes int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pushes++
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.Logging.Output.Loki = config.LokiConfig{Enabled: true, Endpoint: srv.URL}

	var buf bytes.Buffer
	logger := newWithStdout(cfg, &buf)

	ctx := reqctx.WithRequestMeta(context.Background(), &reqctx.RequestMeta{RequestID: "rid-7"})
	logger.InfoContext(ctx, "contact form submission saved")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "contact form submission saved", rec["msg"])
	assert.Equal(t, "rid-7", rec["request_id"])
	assert.Equal(t, 1, pushes)
}

func TestDefault(t *testing.T) {
	logger := Default()
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
