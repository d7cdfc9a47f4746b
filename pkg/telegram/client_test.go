package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/datalux_backend/config"
)

const okResponse = `{"ok":true,"result":{"message_id":1,"date":1700000000,"chat":{"id":-100200,"type":"supergroup"}}}`

type captured struct {
	path      string
	chatID    string
	text      string
	parseMode string
}

func newBotServer(t *testing.T, status int, body string, delay time.Duration) (*httptest.Server, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.path = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			got.chatID = r.FormValue("chat_id")
			got.text = r.FormValue("text")
			got.parseMode = r.FormValue("parse_mode")
		}
		if delay > 0 {
			time.Sleep(delay)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestFromCentralConfig_Defaults(t *testing.T) {
	cfg := FromCentralConfig(config.TelegramConfig{BotToken: "123:abc", ChatID: "-100200"})
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.True(t, cfg.Enabled())
}

func TestNew_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no token", Config{ChatID: "-100200"}},
		{"no chat", Config{BotToken: "123:abc"}},
		{"nothing", Config{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.cfg)
			require.NoError(t, err)
			assert.False(t, c.Enabled())
			assert.ErrorIs(t, c.SendMarkdown(context.Background(), "hi"), ErrDisabled)
		})
	}
}

func TestSendMarkdown(t *testing.T) {
	srv, got := newBotServer(t, http.StatusOK, okResponse, 0)

	c, err := New(Config{BotToken: "123:abc", ChatID: "-100200", APIURL: srv.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	require.True(t, c.Enabled())

	require.NoError(t, c.SendMarkdown(context.Background(), "*New Contact Form Submission*"))
	assert.Equal(t, "/bot123:abc/sendMessage", got.path)
	assert.Equal(t, "-100200", got.chatID)
	assert.Equal(t, "*New Contact Form Submission*", got.text)
	assert.Equal(t, "Markdown", got.parseMode)
}

func TestSendMarkdown_APIError(t *testing.T) {
	srv, _ := newBotServer(t, http.StatusBadRequest,
		`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`, 0)

	c, err := New(Config{BotToken: "123:abc", ChatID: "-1", APIURL: srv.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	assert.Error(t, c.SendMarkdown(context.Background(), "hi"))
}

func TestSendMarkdown_NetworkError(t *testing.T) {
	srv, _ := newBotServer(t, http.StatusOK, okResponse, 0)
	url := srv.URL
	srv.Close()

	c, err := New(Config{BotToken: "123:abc", ChatID: "-1", APIURL: url, Timeout: 2 * time.Second})
	require.NoError(t, err)
	assert.Error(t, c.SendMarkdown(context.Background(), "hi"))
}

func TestSendMarkdown_Timeout(t *testing.T) {
	srv, _ := newBotServer(t, http.StatusOK, okResponse, 500*time.Millisecond)

	c, err := New(Config{BotToken: "123:abc", ChatID: "-1", APIURL: srv.URL, Timeout: 100 * time.Millisecond})
	require.NoError(t, err)

	start := time.Now()
	assert.Error(t, c.SendMarkdown(context.Background(), "hi"))
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}
