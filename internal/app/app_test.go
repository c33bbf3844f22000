package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/hangeul-backend/internal/config"
)

func testConfig(t *testing.T, env string) *config.Config {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)

	return &config.Config{
		App: config.AppConfig{Env: env},
		CORS: config.CORSConfig{
			AllowedOrigins: "http://localhost:5173",
			AllowedMethods: "GET,OPTIONS",
			AllowedHeaders: "Content-Type",
		},
		Data: config.DataConfig{
			Path:           filepath.Join(filepath.Dir(file), "testdata", "korean.csv"),
			CacheTTLMillis: 60_000,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewHandler_ServesVocabulary(t *testing.T) {
	t.Parallel()

	handler, data, err := NewHandler(testConfig(t, config.EnvTest), discardLogger())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/korean/flashcards", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var cards []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	assert.Len(t, cards, 5)

	_, refreshed := data.LastRefresh()
	assert.True(t, refreshed, "request should have populated the cache")
}

func TestNewHandler_HealthReportsVersion(t *testing.T) {
	t.Parallel()

	handler, _, err := NewHandler(testConfig(t, config.EnvProduction), discardLogger())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, BuildVersion(), body["version"])
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, srv, ln, time.Second, discardLogger())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServe_ReturnsServeError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	err = serve(context.Background(), &http.Server{}, ln, time.Second, discardLogger())
	assert.Error(t, err)
}

func TestBuildVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Version+" (commit: "+Commit+", built: "+BuildTime+")", BuildVersion())
}
