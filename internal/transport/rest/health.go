package rest

import (
	"context"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// Overall health states reported by HealthHandler.
const (
	statusOK       = "ok"
	statusDown     = "down"
	statusDegraded = "degraded"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db       dbPinger
	version  string
	fallback bool
}

// NewHealthHandler creates a HealthHandler. fallback reports whether the API
// keeps answering with synthetic data while the database is down.
func NewHealthHandler(db dbPinger, version string, fallback bool) *HealthHandler {
	return &HealthHandler{db: db, version: version, fallback: fallback}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
// A server running on fallback data is not ready.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    statusDown,
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Pings DB with latency measurement and
// includes version. With the database down and fallback enabled the service
// still answers requests, so it reports "degraded" with 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus, 2)

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	overall, status := statusOK, http.StatusOK
	if err != nil {
		components["database"] = CompStatus{Status: statusDown}
		overall, status = statusDown, http.StatusServiceUnavailable
		if h.fallback {
			overall, status = statusDegraded, http.StatusOK
		}
	} else {
		components["database"] = CompStatus{Status: statusOK, Latency: latency.String()}
	}

	if h.fallback {
		components["fallback"] = CompStatus{Status: "enabled"}
	} else {
		components["fallback"] = CompStatus{Status: "disabled"}
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
