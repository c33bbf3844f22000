package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/hangeul-backend/internal/domain"
	"github.com/heartmarshall/hangeul-backend/internal/transport/response"
)

// dataProbe is the read side of the vocabulary cache.
type dataProbe interface {
	Entries(ctx context.Context) []domain.RawEntry
	LastRefresh() (time.Time, bool)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	data    dataProbe
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(data dataProbe, version string) *HealthHandler {
	return &HealthHandler{data: data, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status      string     `json:"status"`
	Entries     int        `json:"entries"`
	RefreshedAt *time.Time `json:"refreshedAt,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when vocabulary is loaded, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	comp := h.dataStatus(r.Context())
	status := http.StatusOK
	if comp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	response.JSON(w, r, status, HealthResponse{
		Status:    comp.Status,
		Timestamp: time.Now(),
	})
}

// Health is the full health check with the data component and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	comp := h.dataStatus(r.Context())
	status := http.StatusOK
	if comp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	response.JSON(w, r, status, HealthResponse{
		Status:     comp.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"data": comp},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) dataStatus(ctx context.Context) CompStatus {
	comp := CompStatus{Status: "down", Entries: len(h.data.Entries(ctx))}
	if comp.Entries > 0 {
		comp.Status = "ok"
	}
	if at, ok := h.data.LastRefresh(); ok {
		comp.RefreshedAt = &at
	}
	return comp
}
