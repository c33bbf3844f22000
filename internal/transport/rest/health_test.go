package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/heartmarshall/hangeul-backend/internal/domain"
)

type dataProbeMock struct {
	entries     []domain.RawEntry
	refreshedAt time.Time
}

func (m *dataProbeMock) Entries(_ context.Context) []domain.RawEntry {
	return m.entries
}

func (m *dataProbeMock) LastRefresh() (time.Time, bool) {
	return m.refreshedAt, !m.refreshedAt.IsZero()
}

func loadedProbe() *dataProbeMock {
	return &dataProbeMock{
		entries:     []domain.RawEntry{{ID: "1", Korean: "사과", English: "apple"}},
		refreshedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dataProbeMock{}, "test-version")

	rec := serve(h.Live, "/live")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestReady_DataLoaded(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(loadedProbe(), "test-version")

	rec := serve(h.Ready, "/ready")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if resp := decodeHealth(t, rec); resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
}

func TestReady_NoData(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dataProbeMock{}, "test-version")

	rec := serve(h.Ready, "/ready")

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	if resp := decodeHealth(t, rec); resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}
}

func TestHealth_IncludesDataComponent(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(loadedProbe(), "v1.2.3")

	rec := serve(h.Health, "/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Version != "v1.2.3" {
		t.Errorf("expected version 'v1.2.3', got %q", resp.Version)
	}
	data, ok := resp.Components["data"]
	if !ok {
		t.Fatal("expected 'data' component")
	}
	if data.Status != "ok" || data.Entries != 1 {
		t.Errorf("expected ok with 1 entry, got %+v", data)
	}
	if data.RefreshedAt == nil || !data.RefreshedAt.Equal(loadedProbe().refreshedAt) {
		t.Errorf("expected refreshedAt to be reported, got %v", data.RefreshedAt)
	}
}

func TestHealth_NoData(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dataProbeMock{}, "v1.2.3")

	rec := serve(h.Health, "/health")

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if data := resp.Components["data"]; data.Status != "down" || data.RefreshedAt != nil {
		t.Errorf("expected down without refresh time, got %+v", data)
	}
}
